// ABOUTME: Huma API server configuration and setup
// ABOUTME: Builds the chi router, middleware chain, OpenAPI surface and metrics endpoint

package api

import (
	"net/http"
	"time"

	"bingefeed-api/api/handlers"
	"bingefeed-api/api/middleware"
	"bingefeed-api/core/interfaces"
	"bingefeed-api/pkg/featureflags"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	apiTitle   = "Bingefeed API"
	apiVersion = "1.0.0"
)

// MetricsProvider serves metrics and counts bridge requests
type MetricsProvider interface {
	middleware.HTTPObserver
	Handler() http.Handler
}

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	Flags      featureflags.Manager
	Metrics    MetricsProvider
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window
}

// NewAPI creates a Huma API with CORS and no other middleware
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS must run first so preflight requests skip the rest of the chain
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Retry-After"},
		MaxAge:         300,
	}))

	flags := cfg.Flags
	if flags == nil {
		flags = featureflags.NewStaticManager(featureflags.Defaults)
	}
	router.Use(middleware.FeatureFlagMiddleware(flags))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.Metrics != nil {
		router.Use(middleware.MetricsMiddleware(cfg.Metrics))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	// chi rejects middleware registered after the first route
	if cfg.Metrics != nil {
		router.Handle("/metrics", metricsEndpoint(cfg.Metrics.Handler()))
	}

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "Paginated movie and TV feeds merged from a remote media catalog"

	api := humachi.New(router, config)

	return api, router
}

// RegisterHandlers wires every bridge handler onto api
func RegisterHandlers(api huma.API, controller handlers.FeedController, details handlers.TitleDetailService) {
	handlers.NewFeedHandler(controller).RegisterRoutes(api)
	handlers.NewErrorHandler(controller).RegisterRoutes(api)
	if details != nil {
		handlers.NewTitleHandler(details).RegisterRoutes(api)
	}
}

// metricsEndpoint hides the exposition handler while metrics_enabled is off
func metricsEndpoint(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !featureflags.IsEnabled(r.Context(), featureflags.MetricsEnabled) {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
