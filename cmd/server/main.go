package main // Entry point package

import (
	"log"  // Logging library
	"time" // Session TTL arithmetic

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/filmgate/storefront/internal/booking"
	"github.com/filmgate/storefront/internal/catalog"
	"github.com/filmgate/storefront/internal/config"
	"github.com/filmgate/storefront/internal/handler"
	"github.com/filmgate/storefront/internal/middleware"
	"github.com/filmgate/storefront/internal/queue"
	"github.com/filmgate/storefront/internal/router"
	"github.com/filmgate/storefront/internal/seating"
)

func main() {
	_ = godotenv.Load() // Load .env if present, ignore error
	cfg := config.Load()

	// The catalog is constructed once and injected everywhere; nothing
	// mutates it after this point.
	store := catalog.Seed()
	gen := seating.NewRandomGenerator()
	sessions := booking.NewSessionStore(time.Duration(cfg.SessionTTLMin) * time.Minute)

	catalogHandler := handler.NewCatalogHandler(store)
	bookingHandler := handler.NewBookingHandler(
		store, gen, sessions,
		cfg.SessionSecret, cfg.SessionTTLMin, uint32(cfg.TicketPriceCents),
	)

	// Redis is optional: with no reachable server the cache and rate
	// limiter become pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterCatalog(e, catalogHandler,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewResponseCache(config.LoadCacheConfig(), rdb),
	)
	router.RegisterBooking(e, bookingHandler, cfg.SessionSecret)

	// Background consumer appends confirmed bookings to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
