package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/filmgate/storefront/internal/model"
)

// SessionStore keeps the live booking sessions in memory, keyed by a
// random UUID.  Sessions are transient per-visit state: they expire
// after their TTL and are purged lazily, and deleting one models the
// visitor navigating away.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewSessionStore returns an empty store whose sessions live for ttl.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create opens a new empty session over the given seat map and
// registers it under a fresh UUID.  Expired sessions are swept on the
// way in so the map does not grow without bound.
func (st *SessionStore) Create(showtimeID uint64, seats []model.Seat) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	now := time.Now().UTC()
	for id, s := range st.sessions {
		if s.Expired(now) {
			delete(st.sessions, id)
		}
	}
	s := NewSession(uuid.NewString(), showtimeID, seats, st.ttl)
	st.sessions[s.ID] = s
	return s
}

// Get returns the live session with the given id.  Expired sessions
// are treated as absent.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.Expired(time.Now().UTC()) {
		st.Delete(id)
		return nil, false
	}
	return s, true
}

// Delete discards a session.  Deleting an unknown id is a no-op.
func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len returns the number of sessions currently held, expired or not.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
