// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging, and metrics.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: Session-scoped cache backed by patrickmn/go-cache
// - http/standard: net/http transport with client-side throttling and optional backoff
// - logger/logrus: Structured logger backed by logrus with optional file rotation
// - metrics/prometheus: Prometheus collectors on a private registry
//
// # Cache
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "detail:3173903", payload, 15*time.Minute)
//	value, err := cache.Get(ctx, "detail:3173903")
//
// # HTTP Client
//
// The catalog transport never retries so every failure reaches the recovery policy:
//
//	client := standard.NewStandardHTTPClientWithOptions(standard.Options{
//	    Timeout:       10 * time.Second,
//	    RatePerSecond: 5,
//	    Burst:         2,
//	})
//	resp, err := client.Get(ctx, "https://api.watchmode.com/v1/list-titles/")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := applogger.NewLogger(applogger.Config{Level: "debug"})
//	logger.Info("Feed refreshed", map[string]interface{}{
//	    "category": "movie",
//	    "items":    40,
//	})
//
// # Metrics
//
//	metrics := prometheus.NewMetrics()
//	router.Handle("/metrics", metrics.Handler())
package infrastructure
