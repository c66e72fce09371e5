// ABOUTME: Feature flag middleware places the flag manager into each request context
// ABOUTME: Handlers and later middleware read flags through featureflags.IsEnabled

package middleware

import (
	"net/http"

	"bingefeed-api/pkg/featureflags"
)

// FeatureFlagMiddleware attaches manager to every request
func FeatureFlagMiddleware(manager featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(featureflags.WithManager(r.Context(), manager)))
		})
	}
}
