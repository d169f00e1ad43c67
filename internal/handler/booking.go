package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/filmgate/storefront/internal/booking"
	"github.com/filmgate/storefront/internal/catalog"
	"github.com/filmgate/storefront/internal/queue"
	"github.com/filmgate/storefront/internal/seating"
	queue_publisher "github.com/filmgate/storefront/internal/service"
	"github.com/filmgate/storefront/internal/utils"
)

// BookingHandler drives the seat-selection flow: opening a session for
// a showtime, toggling seats, reading the running summary and
// confirming.  All session endpoints assume the SessionToken
// middleware has validated the bearer token and injected the session
// id into the context.
type BookingHandler struct {
	Store     *catalog.Store
	Generator *seating.Generator
	Sessions  *booking.SessionStore

	SessionSecret string
	SessionTTLMin int
	PriceCents    uint32

	// Publish emits the booking.confirmed event.  It defaults to the
	// RabbitMQ publisher; tests substitute a stub.
	Publish func(ctx context.Context, ev queue.BookingConfirmedEvent) error
}

// NewBookingHandler constructs a BookingHandler.  Store, generator and
// session store must be non-nil.
func NewBookingHandler(store *catalog.Store, gen *seating.Generator, sessions *booking.SessionStore, secret string, ttlMin int, priceCents uint32) *BookingHandler {
	if store == nil || gen == nil || sessions == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{
		Store:         store,
		Generator:     gen,
		Sessions:      sessions,
		SessionSecret: secret,
		SessionTTLMin: ttlMin,
		PriceCents:    priceCents,
		Publish:       queue_publisher.PublishBookingConfirmed,
	}
}

// getSessionID extracts the session id injected by the SessionToken
// middleware.
func getSessionID(c echo.Context) (string, error) {
	if sid, ok := c.Get("session_id").(string); ok && sid != "" {
		return sid, nil
	}
	return "", errors.New("no session id in context")
}

// session resolves the caller's live session or writes the error
// response.  A missing session means the token outlived the overlay
// (or the visitor already navigated away), which is terminal for the
// token: the visitor opens a fresh seat map to continue.
func (h *BookingHandler) session(c echo.Context) (*booking.Session, bool) {
	sid, err := getSessionID(c)
	if err != nil {
		_ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		return nil, false
	}
	s, ok := h.Sessions.Get(sid)
	if !ok {
		_ = c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
		return nil, false
	}
	return s, true
}

// seatView is a seat decorated with the caller's selection state.
type seatView struct {
	ID       uint64 `json:"id"`
	Label    string `json:"label"`
	Occupied bool   `json:"occupied"`
	Selected bool   `json:"selected"`
}

// rowView is one row of decorated seats.
type rowView struct {
	Label string     `json:"row"`
	Seats []seatView `json:"seats"`
}

// seatRows renders the session's seat map grouped by row with the
// selection overlay applied.
func seatRows(s *booking.Session) []rowView {
	rows := seating.GroupByRow(s.Seats())
	out := make([]rowView, 0, len(rows))
	for _, r := range rows {
		rv := rowView{Label: r.Label, Seats: make([]seatView, 0, len(r.Seats))}
		for _, seat := range r.Seats {
			rv.Seats = append(rv.Seats, seatView{
				ID:       seat.ID,
				Label:    seat.Label,
				Occupied: seat.Occupied,
				Selected: s.IsSelected(seat.ID),
			})
		}
		out = append(out, rv)
	}
	return out
}

// OpenSession handles POST /v1/showtimes/:id/session.  It resolves the
// showtime, generates a fresh seat map, opens an empty session over it
// and returns a signed session token together with the seat layout.
// Two calls for the same showtime yield different occupancy patterns;
// the seat map is not persisted anywhere.
func (h *BookingHandler) OpenSession(c echo.Context) error {
	showtimeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || showtimeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid showtime id"})
	}
	st, ok := h.Store.Showtime(showtimeID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
	}

	seats := h.Generator.Generate(showtimeID)
	s := h.Sessions.Create(showtimeID, seats)

	tok, err := utils.NewSessionToken(h.SessionSecret, s.ID, showtimeID, h.SessionTTLMin)
	if err != nil {
		h.Sessions.Delete(s.ID)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue session token"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"token":      tok.Token,
		"expires_at": tok.Exp.Format(time.RFC3339),
		"showtime":   st,
		"rows":       seatRows(s),
	})
}

// GetSeats handles GET /v1/session/seats and returns the seat map with
// the current selection overlay applied.
func (h *BookingHandler) GetSeats(c echo.Context) error {
	s, ok := h.session(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, echo.Map{"showtime_id": s.ShowtimeID, "rows": seatRows(s)})
}

// ToggleSeat handles POST /v1/session/toggle.  The body carries the
// seat id.  Toggling an occupied seat is not an error: the response
// simply reports selected=false, matching the UI where such seats are
// disabled.
func (h *BookingHandler) ToggleSeat(c echo.Context) error {
	s, ok := h.session(c)
	if !ok {
		return nil
	}
	var body struct {
		SeatID uint64 `json:"seat_id"`
	}
	if err := c.Bind(&body); err != nil || body.SeatID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_id is required"})
	}
	selected, err := s.Toggle(body.SeatID)
	if err != nil {
		if errors.Is(err, booking.ErrSeatUnknown) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to toggle seat"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"seat_id":  body.SeatID,
		"selected": selected,
		"summary":  s.Summarize(h.PriceCents),
	})
}

// GetSummary handles GET /v1/session/summary and returns the running
// order summary: selected seat labels, count and total.
func (h *BookingHandler) GetSummary(c echo.Context) error {
	s, ok := h.session(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, echo.Map{
		"summary":        s.Summarize(h.PriceCents),
		"price_per_seat": h.PriceCents,
		"showtime_id":    s.ShowtimeID,
	})
}

// Confirm handles POST /v1/session/confirm.  An empty selection yields
// 422 and leaves the overlay untouched.  A non-empty selection always
// succeeds: the storefront keeps no durable bookings, so confirmation
// publishes a best-effort booking.confirmed event and discards the
// session.  Publish failures are logged and ignored.
func (h *BookingHandler) Confirm(c echo.Context) error {
	s, ok := h.session(c)
	if !ok {
		return nil
	}
	sum, err := s.Confirm(h.PriceCents)
	if err != nil {
		if errors.Is(err, booking.ErrEmptySelection) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "empty selection"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to confirm"})
	}

	ev := queue.BookingConfirmedEvent{
		SessionID:   s.ID,
		ShowtimeID:  s.ShowtimeID,
		SeatLabels:  sum.SeatLabels,
		TotalCents:  sum.TotalCents,
		ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if st, found := h.Store.Showtime(s.ShowtimeID); found {
		ev.ShowDate = st.ShowDate
		ev.ShowTime = st.ShowTime
		if st.Movie != nil {
			ev.MovieTitle = st.Movie.Title
		}
		if st.Theater != nil {
			ev.TheaterName = st.Theater.Name
		}
	}
	if err := h.Publish(c.Request().Context(), ev); err != nil {
		log.Printf("booking confirm: event publish failed: %v", err)
	}

	h.Sessions.Delete(s.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "CONFIRMED",
		"summary": sum,
	})
}

// CloseSession handles DELETE /v1/session.  It discards the selection
// overlay, modeling the visitor navigating away.  Closing an already
// absent session is fine.
func (h *BookingHandler) CloseSession(c echo.Context) error {
	sid, err := getSessionID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	h.Sessions.Delete(sid)
	return c.NoContent(http.StatusNoContent)
}
