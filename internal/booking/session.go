// Package booking tracks a visitor's in-progress seat selection for a
// single showtime.  A session owns nothing but its own selection
// overlay: it never writes back to the catalog or to the generated
// seat map, and confirming a booking has no durable effect beyond the
// success signal (and a best-effort event published by the handler).
package booking

import (
	"errors"
	"sync"
	"time"

	"github.com/filmgate/storefront/internal/model"
)

// ErrEmptySelection is returned by Confirm when no seats are selected.
// The overlay is left untouched so the visitor can keep selecting.
var ErrEmptySelection = errors.New("empty selection")

// ErrSeatUnknown is returned when a toggled seat id is not part of the
// session's seat map.
var ErrSeatUnknown = errors.New("seat not in seat map")

// Session holds one visitor's seat map and selection overlay for one
// showtime.  The overlay is a set of seat ids plus the order in which
// they were picked.  One visitor drives one session, but HTTP requests
// for the same session may overlap, so mutation is guarded by a mutex.
type Session struct {
	ID         string
	ShowtimeID uint64
	CreatedAt  time.Time
	ExpiresAt  time.Time

	mu       sync.Mutex
	seats    []model.Seat             // generated order, never mutated
	byID     map[uint64]model.Seat    // seat lookup
	selected map[uint64]struct{}      // selection overlay
	order    []uint64                 // seat ids in selection order
}

// NewSession creates an empty session over the given seat map.  The
// seat slice is copied; the overlay starts empty.
func NewSession(id string, showtimeID uint64, seats []model.Seat, ttl time.Duration) *Session {
	now := time.Now().UTC()
	s := &Session{
		ID:         id,
		ShowtimeID: showtimeID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
		seats:      append([]model.Seat(nil), seats...),
		byID:       make(map[uint64]model.Seat, len(seats)),
		selected:   make(map[uint64]struct{}),
	}
	for _, seat := range s.seats {
		s.byID[seat.ID] = seat
	}
	return s
}

// Seats returns the seat map in generated order.
func (s *Session) Seats() []model.Seat {
	return append([]model.Seat(nil), s.seats...)
}

// Toggle flips the selection state of a seat.  Toggling an occupied
// seat is deliberately a no-op, not an error: the UI renders such
// seats disabled and a stray click must not disturb the overlay.  The
// returned bool is the seat's selection state after the call.
func (s *Session) Toggle(seatID uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seat, ok := s.byID[seatID]
	if !ok {
		return false, ErrSeatUnknown
	}
	if seat.Occupied {
		return false, nil
	}
	if _, picked := s.selected[seatID]; picked {
		delete(s.selected, seatID)
		for i, id := range s.order {
			if id == seatID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return false, nil
	}
	s.selected[seatID] = struct{}{}
	s.order = append(s.order, seatID)
	return true, nil
}

// IsSelected reports whether the seat id is in the selection overlay.
func (s *Session) IsSelected(seatID uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.selected[seatID]
	return ok
}

// Count returns the number of selected seats.
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selected)
}

// TotalCents is the running total: selected seats times the price per
// seat.  No taxes, fees or discounts apply.
func (s *Session) TotalCents(priceCents uint32) uint32 {
	return uint32(s.Count()) * priceCents
}

// Summary is the order summary derived from the selection overlay.
type Summary struct {
	SeatLabels []string `json:"seats"`
	Count      int      `json:"count"`
	TotalCents uint32   `json:"total_cents"`
}

// Summarize derives the current order summary.  Seat labels appear in
// selection order.
func (s *Session) Summarize(priceCents uint32) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	labels := make([]string, 0, len(s.order))
	for _, id := range s.order {
		labels = append(labels, s.byID[id].Label)
	}
	return Summary{
		SeatLabels: labels,
		Count:      len(labels),
		TotalCents: uint32(len(labels)) * priceCents,
	}
}

// Confirm validates the selection and returns the final summary.  An
// empty overlay yields ErrEmptySelection.  A non-empty selection
// always succeeds: there is no conflict check against other visitors
// and no capacity check against the theater, because nothing is ever
// committed to a shared store.
func (s *Session) Confirm(priceCents uint32) (Summary, error) {
	if s.Count() == 0 {
		return Summary{}, ErrEmptySelection
	}
	return s.Summarize(priceCents), nil
}

// Expired reports whether the session has passed its TTL.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
