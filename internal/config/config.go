package config // package config loads application configuration from environment variables

import (
	"log"     // log reports configuration errors and halts execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field maps to
// one environment variable.  Prices are carried in cents so handlers
// never do floating-point money arithmetic.
type Config struct {
	Env              string // application environment (e.g. "dev", "prod")
	Port             string // HTTP port to listen on
	SessionSecret    string // secret used to sign booking-session tokens
	TicketPriceCents int    // price of one seat in cents
	SessionTTLMin    int    // booking-session time-to-live in minutes
}

// Load reads configuration from the environment and returns a Config.
// Required variables are enforced by must(); a missing value exits the
// process with a fatal log message.
func Load() Config {
	return Config{
		Env:              must("APP_ENV"),                // environment (dev/test/prod)
		Port:             must("APP_PORT"),               // port to bind the HTTP server
		SessionSecret:    must("SESSION_SECRET"),         // signing secret for session tokens
		TicketPriceCents: mustInt("TICKET_PRICE_CENTS"),  // per-seat ticket price
		SessionTTLMin:    mustInt("SESSION_TTL_MIN"),     // session lifetime in minutes
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the value to an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
