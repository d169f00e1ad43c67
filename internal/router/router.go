package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing

	"github.com/filmgate/storefront/internal/handler"    // handlers implementing the endpoints
	"github.com/filmgate/storefront/internal/middleware" // session token guard
)

// RegisterRoutes registers routes that carry no middleware of their
// own.  Currently that is only the health check, used by load
// balancers to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterCatalog registers the unauthenticated browse endpoints under
// /v1.  The optional middlewares (response cache, rate limiter) are
// applied to the whole group; pass none to register the bare routes.
// Seat maps are deliberately NOT served here: their occupancy is
// random per request and must never hit the response cache.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)
	// All movies, optionally filtered by ?genre=.
	g.GET("/movies", h.ListMovies)
	// Unique genres for the filter bar.
	g.GET("/genres", h.ListGenres)
	// One movie by id.
	g.GET("/movies/:id", h.GetMovie)
	// A movie's show dates plus the showtimes of one selected date.
	g.GET("/movies/:id/showtimes", h.ListMovieShowtimes)
	// All theaters.
	g.GET("/theaters", h.ListTheaters)
	// One theater's schedule grouped by date.
	g.GET("/theaters/:id/showtimes", h.ListTheaterShowtimes)
	// All showtimes, enriched, optionally filtered by ?movie_id=.
	g.GET("/showtimes", h.ListShowtimes)
	// One showtime by id, enriched.
	g.GET("/showtimes/:id", h.GetShowtime)
}

// RegisterBooking registers the seat-selection flow.  Opening a
// session is public (it is how a visitor obtains a token); every other
// session endpoint requires the Bearer session token issued there.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, sessionSecret string) {
	// Opening a seat map issues the session token.
	e.POST("/v1/showtimes/:id/session", h.OpenSession)

	// Everything below operates on the caller's own session, resolved
	// from the validated token by the SessionToken middleware.
	s := e.Group("/v1/session")
	s.Use(middleware.SessionToken(sessionSecret))
	s.GET("/seats", h.GetSeats)
	s.POST("/toggle", h.ToggleSeat)
	s.GET("/summary", h.GetSummary)
	s.POST("/confirm", h.Confirm)
	s.DELETE("", h.CloseSession)
}
