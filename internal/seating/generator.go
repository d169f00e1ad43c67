// Package seating produces the seat map for a showtime.  Seat maps are
// not persisted anywhere: every request gets a freshly generated map
// with fresh random occupancy, which stands in for a real booking
// backend that would report actual availability.
package seating

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/filmgate/storefront/internal/model"
)

const (
	// rowLabels is the fixed ordered set of row letters.
	rowLabels = "ABCDEFGH"
	// seatsPerRow is the number of columns in every row.
	seatsPerRow = 10
	// occupiedProbability is the chance a seat starts out occupied.
	occupiedProbability = 0.2
)

// MapSize is the number of seats in every generated seat map.
const MapSize = len(rowLabels) * seatsPerRow

// Generator builds seat maps.  Randomness is an injected capability:
// production code seeds from the clock, tests supply a fixed source to
// pin the occupancy pattern.
type Generator struct {
	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewGenerator returns a generator drawing occupancy from the given
// source.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NewRandomGenerator returns a generator seeded from the clock.  Two
// calls to Generate for the same showtime will almost certainly yield
// different occupancy patterns; that is expected.
func NewRandomGenerator() *Generator {
	return NewGenerator(rand.NewSource(time.Now().UnixNano()))
}

// Generate builds the seat map for a showtime: rows A..H with columns
// 1..10, in row-major order.  Seat ids are sequential and scoped to
// this call only.  Each seat is independently occupied with
// probability 0.2.
func (g *Generator) Generate(showtimeID uint64) []model.Seat {
	g.mu.Lock()
	defer g.mu.Unlock()
	seats := make([]model.Seat, 0, MapSize)
	for _, row := range rowLabels {
		for col := 1; col <= seatsPerRow; col++ {
			seats = append(seats, model.Seat{
				ID:         uint64(len(seats) + 1),
				ShowtimeID: showtimeID,
				Label:      fmt.Sprintf("%c%d", row, col),
				Occupied:   g.rng.Float64() < occupiedProbability,
			})
		}
	}
	return seats
}
