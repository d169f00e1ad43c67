package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmgate/storefront/internal/booking"
	"github.com/filmgate/storefront/internal/model"
)

// testSeats builds a controlled seat map: A1..A3 free, A4 occupied.
func testSeats() []model.Seat {
	return []model.Seat{
		{ID: 1, ShowtimeID: 1, Label: "A1"},
		{ID: 2, ShowtimeID: 1, Label: "A2"},
		{ID: 3, ShowtimeID: 1, Label: "A3"},
		{ID: 4, ShowtimeID: 1, Label: "A4", Occupied: true},
	}
}

func newTestSession() *booking.Session {
	return booking.NewSession("test-session", 1, testSeats(), time.Minute)
}

func TestToggle_OnOffIsIdempotent(t *testing.T) {
	s := newTestSession()

	selected, err := s.Toggle(1)
	require.NoError(t, err)
	assert.True(t, selected)
	assert.True(t, s.IsSelected(1))

	selected, err = s.Toggle(1)
	require.NoError(t, err)
	assert.False(t, selected)
	assert.False(t, s.IsSelected(1))
	assert.Zero(t, s.Count())
}

func TestToggle_OccupiedSeatIsSilentlyIgnored(t *testing.T) {
	s := newTestSession()

	// Any number of toggles on an occupied seat changes nothing.
	for i := 0; i < 3; i++ {
		selected, err := s.Toggle(4)
		require.NoError(t, err)
		assert.False(t, selected)
	}
	assert.False(t, s.IsSelected(4))
	assert.Zero(t, s.Count())
}

func TestToggle_UnknownSeat(t *testing.T) {
	s := newTestSession()

	_, err := s.Toggle(99)
	assert.ErrorIs(t, err, booking.ErrSeatUnknown)
	assert.Zero(t, s.Count())
}

func TestToggle_OddCountsEndUpSelected(t *testing.T) {
	s := newTestSession()

	// Seat 1 toggled three times (odd), seat 2 twice (even), seat 4 is
	// occupied and never counts regardless.
	for _, id := range []uint64{1, 2, 4, 1, 2, 4, 1, 4} {
		_, err := s.Toggle(id)
		require.NoError(t, err)
	}
	assert.True(t, s.IsSelected(1))
	assert.False(t, s.IsSelected(2))
	assert.False(t, s.IsSelected(4))
	assert.Equal(t, 1, s.Count())
}

func TestTotalCents_Linear(t *testing.T) {
	s := newTestSession()
	assert.Equal(t, uint32(0), s.TotalCents(1000))

	_, _ = s.Toggle(1)
	_, _ = s.Toggle(2)
	assert.Equal(t, uint32(2000), s.TotalCents(1000))
	assert.Equal(t, uint32(0), s.TotalCents(0))
}

func TestSummarize_SelectionOrder(t *testing.T) {
	s := newTestSession()

	_, _ = s.Toggle(3)
	_, _ = s.Toggle(1)
	sum := s.Summarize(1000)
	assert.Equal(t, []string{"A3", "A1"}, sum.SeatLabels)
	assert.Equal(t, 2, sum.Count)
	assert.Equal(t, uint32(2000), sum.TotalCents)

	// Deselecting the first pick keeps the remaining order.
	_, _ = s.Toggle(3)
	sum = s.Summarize(1000)
	assert.Equal(t, []string{"A1"}, sum.SeatLabels)
}

func TestConfirm_EmptySelection(t *testing.T) {
	s := newTestSession()

	_, err := s.Confirm(1000)
	assert.ErrorIs(t, err, booking.ErrEmptySelection)
	// The overlay is untouched and the visitor may continue selecting.
	assert.Zero(t, s.Count())
	selected, err := s.Toggle(1)
	require.NoError(t, err)
	assert.True(t, selected)
}

func TestConfirm_Success(t *testing.T) {
	s := newTestSession()

	_, _ = s.Toggle(1)
	sum, err := s.Confirm(1000)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, sum.SeatLabels)
	assert.Equal(t, uint32(1000), sum.TotalCents)

	// Confirming does not alter the seat map or the overlay itself.
	assert.True(t, s.IsSelected(1))
	seats := s.Seats()
	require.Len(t, seats, 4)
	assert.False(t, seats[0].Occupied)
}

func TestSeats_ReturnsCopy(t *testing.T) {
	s := newTestSession()

	seats := s.Seats()
	seats[0].Occupied = true
	selected, err := s.Toggle(1)
	require.NoError(t, err)
	assert.True(t, selected, "mutating the returned slice must not mark session seats occupied")
}

func TestSessionStore_Lifecycle(t *testing.T) {
	st := booking.NewSessionStore(time.Minute)

	s := st.Create(1, testSeats())
	require.NotEmpty(t, s.ID)

	got, ok := st.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	st.Delete(s.ID)
	_, ok = st.Get(s.ID)
	assert.False(t, ok)

	// Unknown and repeated deletes are no-ops.
	st.Delete(s.ID)
	_, ok = st.Get("nope")
	assert.False(t, ok)
}

func TestSessionStore_ExpiryPurge(t *testing.T) {
	st := booking.NewSessionStore(-time.Second) // everything is born expired

	s := st.Create(1, testSeats())
	_, ok := st.Get(s.ID)
	assert.False(t, ok, "expired sessions are treated as absent")

	// Creating a new session sweeps the expired ones out.
	st.Create(1, testSeats())
	assert.Equal(t, 1, st.Len())
}
