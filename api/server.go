// ABOUTME: Huma API server configuration and setup
// ABOUTME: Chi router with CORS, request logging, and rate limiting middleware

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"tabclip-api/api/middleware"
	"tabclip-api/core/interfaces"
)

// Config holds configuration for the API layer.
type Config struct {
	Logger interfaces.Logger

	// RateLimit is the allowed requests per second per client; 0 disables
	// rate limiting
	RateLimit int

	// RateBurst is the rate limiter burst size
	RateBurst int
}

// New creates the Huma API on a chi router with middleware configured. The
// returned router also serves non-Huma routes such as the extension
// WebSocket endpoint.
func New(cfg Config) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// Browser extensions call from extension origins, so the CORS policy
	// is permissive; the service binds to loopback only.
	router.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}).Handler)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = cfg.RateLimit
		}
		limiter := middleware.NewRateLimiter(cfg.RateLimit, burst)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	humaCfg := huma.DefaultConfig("TabClip API", "1.0.0")
	humaCfg.Info.Description = "Renders browser tab selections with placeholder templates and delivers them to the system clipboard"

	api := humachi.New(router, humaCfg)

	return api, router
}
