// Package handler exposes the public browsing API.  These routes let
// a visitor list movies, theaters and showtimes without any
// authentication.  Absence of a record always maps to a 404 with an
// "error" message; the catalog itself cannot fail.

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/filmgate/storefront/internal/catalog"
)

// CatalogHandler serves the read-only browse endpoints over the
// immutable catalog store.
type CatalogHandler struct {
	Store *catalog.Store
}

// NewCatalogHandler constructs a CatalogHandler.  The store must be
// non-nil.
func NewCatalogHandler(store *catalog.Store) *CatalogHandler {
	if store == nil {
		panic("nil store passed to NewCatalogHandler")
	}
	return &CatalogHandler{Store: store}
}

// ListMovies handles GET /v1/movies.  The optional ?genre= query
// filters by exact genre match, mirroring the genre picker of the
// storefront UI.
func (h *CatalogHandler) ListMovies(c echo.Context) error {
	movies := h.Store.MoviesByGenre(c.QueryParam("genre"))
	return c.JSON(http.StatusOK, echo.Map{"items": movies, "count": len(movies)})
}

// ListGenres handles GET /v1/genres and returns the unique genre list
// used to build the filter bar.
func (h *CatalogHandler) ListGenres(c echo.Context) error {
	genres := h.Store.Genres()
	return c.JSON(http.StatusOK, echo.Map{"items": genres})
}

// GetMovie handles GET /v1/movies/:id.
func (h *CatalogHandler) GetMovie(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	m, ok := h.Store.Movie(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}
	return c.JSON(http.StatusOK, m)
}

// ListMovieShowtimes handles GET /v1/movies/:id/showtimes.  The
// response carries the movie's unique show dates and the showtimes of
// one selected date.  When ?date= is omitted the earliest date is
// used, which is the default of the movie detail view.
func (h *CatalogHandler) ListMovieShowtimes(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if _, ok := h.Store.Movie(id); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}
	dates := h.Store.ShowtimeDates(id)
	date := c.QueryParam("date")
	if date == "" && len(dates) > 0 {
		date = dates[0]
	}
	items := h.Store.ShowtimesOn(id, date)
	return c.JSON(http.StatusOK, echo.Map{
		"dates": dates,
		"date":  date,
		"items": items,
	})
}

// ListTheaters handles GET /v1/theaters.
func (h *CatalogHandler) ListTheaters(c echo.Context) error {
	theaters := h.Store.Theaters()
	return c.JSON(http.StatusOK, echo.Map{"items": theaters, "count": len(theaters)})
}

// ListTheaterShowtimes handles GET /v1/theaters/:id/showtimes and
// returns the theater's schedule grouped by date, dates ascending.
func (h *CatalogHandler) ListTheaterShowtimes(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	t, ok := h.Store.Theater(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "theater not found"})
	}
	groups := h.Store.ShowtimesAtTheater(id)
	return c.JSON(http.StatusOK, echo.Map{"theater": t, "items": groups})
}

// ListShowtimes handles GET /v1/showtimes.  The optional ?movie_id=
// query restricts the result to one movie.  Every entry is enriched
// with its resolved movie and theater; entries whose references are
// unknown simply omit the enrichment rather than failing the call.
func (h *CatalogHandler) ListShowtimes(c echo.Context) error {
	var movieID uint64
	if v := c.QueryParam("movie_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil || id == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie_id"})
		}
		movieID = id
	}
	items := h.Store.Showtimes(movieID)
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// GetShowtime handles GET /v1/showtimes/:id.
func (h *CatalogHandler) GetShowtime(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	st, ok := h.Store.Showtime(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
	}
	return c.JSON(http.StatusOK, st)
}
