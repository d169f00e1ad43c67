package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmgate/storefront/internal/booking"
	"github.com/filmgate/storefront/internal/catalog"
	"github.com/filmgate/storefront/internal/handler"
	"github.com/filmgate/storefront/internal/queue"
	"github.com/filmgate/storefront/internal/router"
	"github.com/filmgate/storefront/internal/seating"
)

const testSecret = "test-secret"

// constSource pins the generator: 0 makes every seat occupied, 1<<61
// makes every seat free.
type constSource int64

func (s constSource) Int63() int64 { return int64(s) }
func (s constSource) Seed(int64)   {}

// bookingServer wires the full session flow with a deterministic seat
// generator and a stubbed event publisher.
func bookingServer(src constSource) (*echo.Echo, *[]queue.BookingConfirmedEvent) {
	store := catalog.Seed()
	sessions := booking.NewSessionStore(time.Minute)
	h := handler.NewBookingHandler(store, seating.NewGenerator(src), sessions, testSecret, 30, 1000)

	var published []queue.BookingConfirmedEvent
	h.Publish = func(ctx context.Context, ev queue.BookingConfirmedEvent) error {
		published = append(published, ev)
		return nil
	}

	e := echo.New()
	router.RegisterBooking(e, h, testSecret)
	return e, &published
}

func request(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// openSession opens a session for showtime 1 and returns the token.
func openSession(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := request(e, http.MethodPost, "/v1/showtimes/1/session", "", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func TestOpenSession(t *testing.T) {
	e, _ := bookingServer(1 << 61)

	rec := request(e, http.MethodPost, "/v1/showtimes/1/session", "", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)

	rows, ok := body["rows"].([]any)
	require.True(t, ok)
	require.Len(t, rows, 8)
	firstRow, ok := rows[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "A", firstRow["row"])
	assert.Len(t, firstRow["seats"], 10)

	showtime, ok := body["showtime"].(map[string]any)
	require.True(t, ok)
	movie, ok := showtime["movie"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Inception", movie["title"])
}

func TestOpenSession_UnknownShowtime(t *testing.T) {
	e, _ := bookingServer(1 << 61)

	rec := request(e, http.MethodPost, "/v1/showtimes/404/session", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionEndpoints_RequireToken(t *testing.T) {
	e, _ := bookingServer(1 << 61)

	rec := request(e, http.MethodGet, "/v1/session/summary", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = request(e, http.MethodGet, "/v1/session/summary", "not-a-jwt", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestToggleAndSummary(t *testing.T) {
	e, _ := bookingServer(1 << 61) // all seats free
	token := openSession(t, e)

	// Select seat 1 ("A1").
	rec := request(e, http.MethodPost, "/v1/session/toggle", token, `{"seat_id":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["selected"])

	rec = request(e, http.MethodGet, "/v1/session/summary", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	summary, ok := body["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"A1"}, summary["seats"])
	assert.EqualValues(t, 1, summary["count"])
	assert.EqualValues(t, 1000, summary["total_cents"])

	// Toggle off again: the overlay is empty.
	rec = request(e, http.MethodPost, "/v1/session/toggle", token, `{"seat_id":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, false, body["selected"])

	rec = request(e, http.MethodPost, "/v1/session/toggle", token, `{"seat_id":999}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggle_OccupiedSeatIgnored(t *testing.T) {
	e, _ := bookingServer(0) // every seat occupied
	token := openSession(t, e)

	rec := request(e, http.MethodPost, "/v1/session/toggle", token, `{"seat_id":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["selected"])

	summary, ok := body["summary"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 0, summary["count"])
}

func TestConfirm_EmptySelection(t *testing.T) {
	e, published := bookingServer(1 << 61)
	token := openSession(t, e)

	rec := request(e, http.MethodPost, "/v1/session/confirm", token, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, *published)

	// The session survives a failed confirmation.
	rec = request(e, http.MethodGet, "/v1/session/summary", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestConfirm_PublishesEventAndEndsSession(t *testing.T) {
	e, published := bookingServer(1 << 61)
	token := openSession(t, e)

	rec := request(e, http.MethodPost, "/v1/session/toggle", token, `{"seat_id":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = request(e, http.MethodPost, "/v1/session/toggle", token, `{"seat_id":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = request(e, http.MethodPost, "/v1/session/confirm", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "CONFIRMED", body["status"])

	require.Len(t, *published, 1)
	ev := (*published)[0]
	assert.Equal(t, uint64(1), ev.ShowtimeID)
	assert.Equal(t, "Inception", ev.MovieTitle)
	assert.Equal(t, "Cineplex 1", ev.TheaterName)
	assert.Equal(t, []string{"A1", "A2"}, ev.SeatLabels)
	assert.Equal(t, uint32(2000), ev.TotalCents)

	// The session is gone once confirmed.
	rec = request(e, http.MethodGet, "/v1/session/summary", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCloseSession(t *testing.T) {
	e, _ := bookingServer(1 << 61)
	token := openSession(t, e)

	rec := request(e, http.MethodDelete, "/v1/session", token, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = request(e, http.MethodGet, "/v1/session/seats", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Closing twice is fine.
	rec = request(e, http.MethodDelete, "/v1/session", token, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetSeats_AppliesSelectionOverlay(t *testing.T) {
	e, _ := bookingServer(1 << 61)
	token := openSession(t, e)

	rec := request(e, http.MethodPost, "/v1/session/toggle", token, `{"seat_id":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = request(e, http.MethodGet, "/v1/session/seats", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	rows, ok := body["rows"].([]any)
	require.True(t, ok)
	firstRow, ok := rows[0].(map[string]any)
	require.True(t, ok)
	seats, ok := firstRow["seats"].([]any)
	require.True(t, ok)
	a1, ok := seats[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "A1", a1["label"])
	assert.Equal(t, true, a1["selected"])
	a2, ok := seats[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, a2["selected"])
}
