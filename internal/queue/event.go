// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a visitor confirms a seat
// selection.  The storefront keeps no durable booking record, so this
// event is the only artifact of a confirmation; it carries everything
// downstream consumers need for logging or notifications without
// querying the storefront.
type BookingConfirmedEvent struct {
	SessionID   string   `json:"session_id"`
	ShowtimeID  uint64   `json:"showtime_id"`
	MovieTitle  string   `json:"movie_title"`
	TheaterName string   `json:"theater_name"`
	ShowDate    string   `json:"show_date"`
	ShowTime    string   `json:"show_time"`
	SeatLabels  []string `json:"seats"`
	TotalCents  uint32   `json:"total_cents"`
	ConfirmedAt string   `json:"confirmed_at"`
}
