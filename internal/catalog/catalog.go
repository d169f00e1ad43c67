// Package catalog holds the storefront's reference data: movies,
// theaters and showtimes.  The store is constructed once at startup
// and is immutable afterwards, so any number of readers may query it
// concurrently without coordination.  Absence of a record is reported
// as a boolean, never as an error.
package catalog

import (
	"sort"

	"github.com/filmgate/storefront/internal/model"
)

// Store is the read-only catalog.  Lookup maps are built once in
// NewStore; list methods return defensive copies so callers can never
// mutate the underlying data.
type Store struct {
	movies    []model.Movie
	theaters  []model.Theater
	showtimes []model.Showtime

	movieByID    map[uint64]int // index into movies
	theaterByID  map[uint64]int // index into theaters
	showtimeByID map[uint64]int // index into showtimes
}

// NewStore builds an immutable catalog from the given reference data.
// Input slices are copied, so the caller may reuse them freely.  List
// order is the insertion order of the input.
func NewStore(movies []model.Movie, theaters []model.Theater, showtimes []model.Showtime) *Store {
	s := &Store{
		movies:       append([]model.Movie(nil), movies...),
		theaters:     append([]model.Theater(nil), theaters...),
		showtimes:    append([]model.Showtime(nil), showtimes...),
		movieByID:    make(map[uint64]int, len(movies)),
		theaterByID:  make(map[uint64]int, len(theaters)),
		showtimeByID: make(map[uint64]int, len(showtimes)),
	}
	for i, m := range s.movies {
		s.movieByID[m.ID] = i
	}
	for i, t := range s.theaters {
		s.theaterByID[t.ID] = i
	}
	for i, st := range s.showtimes {
		s.showtimeByID[st.ID] = i
	}
	return s
}

// Movies returns all movies in insertion order.
func (s *Store) Movies() []model.Movie {
	return append([]model.Movie(nil), s.movies...)
}

// Movie looks up a movie by id.  The second return value is false when
// the id is unknown.
func (s *Store) Movie(id uint64) (model.Movie, bool) {
	i, ok := s.movieByID[id]
	if !ok {
		return model.Movie{}, false
	}
	return s.movies[i], true
}

// Theaters returns all theaters in insertion order.
func (s *Store) Theaters() []model.Theater {
	return append([]model.Theater(nil), s.theaters...)
}

// Theater looks up a theater by id.
func (s *Store) Theater(id uint64) (model.Theater, bool) {
	i, ok := s.theaterByID[id]
	if !ok {
		return model.Theater{}, false
	}
	return s.theaters[i], true
}

// Showtimes returns showtimes enriched with their resolved movie and
// theater.  A movieID of zero means no filter.  A showtime whose movie
// or theater reference is unknown is still returned; the corresponding
// enrichment field is left nil.
func (s *Store) Showtimes(movieID uint64) []model.EnrichedShowtime {
	out := make([]model.EnrichedShowtime, 0, len(s.showtimes))
	for _, st := range s.showtimes {
		if movieID != 0 && st.MovieID != movieID {
			continue
		}
		out = append(out, s.enrich(st))
	}
	return out
}

// Showtime looks up a single showtime by id, enriched.
func (s *Store) Showtime(id uint64) (model.EnrichedShowtime, bool) {
	i, ok := s.showtimeByID[id]
	if !ok {
		return model.EnrichedShowtime{}, false
	}
	return s.enrich(s.showtimes[i]), true
}

// enrich resolves the movie and theater references of a showtime.
// Copies are taken so the returned pointers never alias store data.
func (s *Store) enrich(st model.Showtime) model.EnrichedShowtime {
	e := model.EnrichedShowtime{Showtime: st}
	if m, ok := s.Movie(st.MovieID); ok {
		e.Movie = &m
	}
	if t, ok := s.Theater(st.TheaterID); ok {
		e.Theater = &t
	}
	return e
}

// Genres returns the unique movie genres in first-seen order.  This is
// a pure derivation over the movie list, recomputed on every call.
func (s *Store) Genres() []string {
	seen := make(map[string]struct{}, len(s.movies))
	out := make([]string, 0, len(s.movies))
	for _, m := range s.movies {
		if _, ok := seen[m.Genre]; ok {
			continue
		}
		seen[m.Genre] = struct{}{}
		out = append(out, m.Genre)
	}
	return out
}

// MoviesByGenre returns movies whose genre matches exactly, in
// insertion order.  An empty genre returns all movies.
func (s *Store) MoviesByGenre(genre string) []model.Movie {
	if genre == "" {
		return s.Movies()
	}
	out := make([]model.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if m.Genre == genre {
			out = append(out, m)
		}
	}
	return out
}

// ShowtimeDates returns the unique calendar dates on which the given
// movie is screened, ascending.  The first entry is the default date
// for the movie detail view.  A movieID of zero covers all showtimes.
func (s *Store) ShowtimeDates(movieID uint64) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(s.showtimes))
	for _, st := range s.showtimes {
		if movieID != 0 && st.MovieID != movieID {
			continue
		}
		if _, ok := seen[st.ShowDate]; ok {
			continue
		}
		seen[st.ShowDate] = struct{}{}
		out = append(out, st.ShowDate)
	}
	// Dates are ISO formatted, so lexical order is chronological.
	sort.Strings(out)
	return out
}

// ShowtimesOn returns the enriched showtimes of a movie on one
// calendar date, in insertion order.
func (s *Store) ShowtimesOn(movieID uint64, date string) []model.EnrichedShowtime {
	out := make([]model.EnrichedShowtime, 0, len(s.showtimes))
	for _, st := range s.showtimes {
		if movieID != 0 && st.MovieID != movieID {
			continue
		}
		if st.ShowDate != date {
			continue
		}
		out = append(out, s.enrich(st))
	}
	return out
}

// DateGroup is one calendar date together with its showtimes.  It is
// used for the per-theater schedule view.
type DateGroup struct {
	Date      string                   `json:"date"`
	Showtimes []model.EnrichedShowtime `json:"showtimes"`
}

// ShowtimesAtTheater returns the theater's showtimes grouped by date,
// dates ascending, showtimes in insertion order within each date.
func (s *Store) ShowtimesAtTheater(theaterID uint64) []DateGroup {
	byDate := make(map[string][]model.EnrichedShowtime)
	for _, st := range s.showtimes {
		if st.TheaterID != theaterID {
			continue
		}
		byDate[st.ShowDate] = append(byDate[st.ShowDate], s.enrich(st))
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	out := make([]DateGroup, 0, len(dates))
	for _, d := range dates {
		out = append(out, DateGroup{Date: d, Showtimes: byDate[d]})
	}
	return out
}
