package feed

import (
	"context"
	"sync"
	"time"

	"bingefeed-api/core/domain"
	"bingefeed-api/core/interfaces"
)

// mockCatalog is a mock implementation of the CatalogService interface
type mockCatalog struct {
	searchFunc func(ctx context.Context, req interfaces.SearchRequest) (*domain.FeedPage, error)
	detailFunc func(ctx context.Context, id int) (*domain.TitleDetail, error)

	mu       sync.Mutex
	requests []interfaces.SearchRequest
}

func (m *mockCatalog) Search(ctx context.Context, req interfaces.SearchRequest) (*domain.FeedPage, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	if m.searchFunc != nil {
		return m.searchFunc(ctx, req)
	}
	return &domain.FeedPage{Page: req.Page}, nil
}

func (m *mockCatalog) FetchDetail(ctx context.Context, id int) (*domain.TitleDetail, error) {
	if m.detailFunc != nil {
		return m.detailFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCatalog) searches() []interfaces.SearchRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]interfaces.SearchRequest(nil), m.requests...)
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	mu     sync.Mutex
	errors []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg)
}

// mockMetrics records the latest feed size per category
type mockMetrics struct {
	mu    sync.Mutex
	sizes map[string]int
}

func (m *mockMetrics) ObserveFetch(operation, category, outcome string, duration time.Duration) {}

func (m *mockMetrics) SetFeedSize(category string, size int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sizes == nil {
		m.sizes = make(map[string]int)
	}
	m.sizes[category] = size
}

func (m *mockMetrics) size(category string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sizes[category]
}
