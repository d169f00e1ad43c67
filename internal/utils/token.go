package utils // package utils provides helpers for booking-session token creation

import (
	"time" // time utilities for computing expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// SessionToken represents a signed HS256 JWT identifying a booking
// session, along with its expiry.  The token is handed to the visitor
// when a seat map is opened and must accompany every session request.
// It carries the session id (sid) and the showtime id, so a tampered
// token can never address someone else's overlay.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs a session token.  The TTL matches
// the session's own lifetime so token and overlay expire together.
// Claims: sid (session id), showtime_id, exp and iat.
func NewSessionToken(secret, sessionID string, showtimeID uint64, ttlMin int) (SessionToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sid":         sessionID,
		"showtime_id": showtimeID,
		"exp":         exp.Unix(),
		"iat":         time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}
