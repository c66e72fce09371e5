package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bingefeed-api/core/domain"
	"bingefeed-api/core/feed"
	"bingefeed-api/infrastructure/metrics/prometheus"
	"bingefeed-api/pkg/featureflags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubController struct{}

func (stubController) Refresh(ctx context.Context, category domain.Category) error  { return nil }
func (stubController) LoadMore(ctx context.Context, category domain.Category) error { return nil }
func (stubController) MaybeLoadMore(ctx context.Context, category domain.Category, key string) (bool, error) {
	return false, nil
}
func (stubController) LoadAdditional(ctx context.Context, category domain.Category, sort domain.SortKey) error {
	return nil
}
func (stubController) RetryLoad(ctx context.Context) error { return nil }
func (stubController) Snapshot(category domain.Category) (feed.State, error) {
	return feed.State{Category: category}, nil
}
func (stubController) CurrentError() *feed.ErrorState { return nil }
func (stubController) AcknowledgeError() bool          { return false }

func serve(router http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestNewAPI(t *testing.T) {
	api, router := NewAPI()

	require.NotNil(t, api)
	require.NotNil(t, router)
	assert.Equal(t, "Bingefeed API", api.OpenAPI().Info.Title)
	assert.Equal(t, "1.0.0", api.OpenAPI().Info.Version)
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI()

	rec := serve(router, "GET", "/openapi.json")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.oai.openapi+json", rec.Header().Get("Content-Type"))
}

func TestAPI_DocsEndpoint(t *testing.T) {
	_, router := NewAPI()

	rec := serve(router, "GET", "/docs")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))
}

func TestRegisterHandlers(t *testing.T) {
	api, router := NewAPI()
	RegisterHandlers(api, stubController{}, nil)

	assert.Equal(t, http.StatusOK, serve(router, "GET", "/feeds/movie").Code)
	assert.Equal(t, http.StatusOK, serve(router, "GET", "/errors/current").Code)
	assert.Nil(t, api.OpenAPI().Paths["/titles/{id}"], "titles are only registered with a detail service")
}

func TestMetricsEndpoint(t *testing.T) {
	metrics := prometheus.NewMetrics()
	api, router := NewAPIWithMiddleware(APIConfig{Metrics: metrics})
	RegisterHandlers(api, stubController{}, nil)

	serve(router, "GET", "/feeds/series")
	rec := serve(router, "GET", "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/feeds/{category}"`)
}

func TestMetricsEndpoint_DisabledByFlag(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{featureflags.MetricsEnabled: false})
	_, router := NewAPIWithMiddleware(APIConfig{Metrics: prometheus.NewMetrics(), Flags: flags})

	assert.Equal(t, http.StatusNotFound, serve(router, "GET", "/metrics").Code)
}

func TestRateLimit(t *testing.T) {
	api, router := NewAPIWithMiddleware(APIConfig{RateLimit: 1, RateWindow: time.Minute})
	RegisterHandlers(api, stubController{}, nil)

	assert.Equal(t, http.StatusOK, serve(router, "GET", "/feeds/movie").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(router, "GET", "/feeds/movie").Code)
}
