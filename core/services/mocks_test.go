package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"bingefeed-api/core/domain"
	"bingefeed-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
	calls   int
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.calls++
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, errors.New("no response configured")
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       []byte
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(bytes.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mapCache is an in-memory Cache for tests
type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (m *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return value, nil
}

func (m *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *mapCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// mockCatalog is a mock implementation of the CatalogService interface
type mockCatalog struct {
	detailFunc  func(ctx context.Context, id int) (*domain.TitleDetail, error)
	detailCalls int
}

func (m *mockCatalog) Search(ctx context.Context, req interfaces.SearchRequest) (*domain.FeedPage, error) {
	return nil, errors.New("not implemented")
}

func (m *mockCatalog) FetchDetail(ctx context.Context, id int) (*domain.TitleDetail, error) {
	m.detailCalls++
	if m.detailFunc != nil {
		return m.detailFunc(ctx, id)
	}
	return nil, errors.New("no detail configured")
}

// mockColors is a mock implementation of the PosterColorService interface
type mockColors struct {
	urls []string
}

func (m *mockColors) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	m.urls = append(m.urls, imageURL)
	return &domain.RGBColor{R: 10, G: 20, B: 30}, nil
}
