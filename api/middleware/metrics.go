// ABOUTME: Metrics middleware counts bridge requests by route pattern and status

package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HTTPObserver records one completed bridge request
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int)
}

// MetricsMiddleware reports each request to observer under its chi route pattern
func MetricsMiddleware(observer HTTPObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			observer.ObserveHTTP(r.Method, route, wrapped.statusCode)
		})
	}
}
