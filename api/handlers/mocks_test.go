package handlers

import (
	"context"

	"bingefeed-api/core/domain"
	"bingefeed-api/core/feed"
	"bingefeed-api/core/services"
	"bingefeed-api/pkg/featureflags"
	"github.com/danielgtaylor/huma/v2"
)

// mockController is a func-field implementation of FeedController
type mockController struct {
	refreshFunc        func(ctx context.Context, category domain.Category) error
	loadMoreFunc       func(ctx context.Context, category domain.Category) error
	maybeLoadMoreFunc  func(ctx context.Context, category domain.Category, key string) (bool, error)
	loadAdditionalFunc func(ctx context.Context, category domain.Category, sort domain.SortKey) error
	retryFunc          func(ctx context.Context) error
	states             map[domain.Category]feed.State
	current            *feed.ErrorState
	acknowledged       int
}

func newMockController() *mockController {
	return &mockController{
		states: map[domain.Category]feed.State{
			domain.Movie:  {Category: domain.Movie, Items: []domain.MediaItem{}, NextPage: 1},
			domain.Series: {Category: domain.Series, Items: []domain.MediaItem{}, NextPage: 1},
		},
	}
}

func (m *mockController) Refresh(ctx context.Context, category domain.Category) error {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx, category)
	}
	return nil
}

func (m *mockController) LoadMore(ctx context.Context, category domain.Category) error {
	if m.loadMoreFunc != nil {
		return m.loadMoreFunc(ctx, category)
	}
	return nil
}

func (m *mockController) MaybeLoadMore(ctx context.Context, category domain.Category, key string) (bool, error) {
	if m.maybeLoadMoreFunc != nil {
		return m.maybeLoadMoreFunc(ctx, category, key)
	}
	return false, nil
}

func (m *mockController) LoadAdditional(ctx context.Context, category domain.Category, sort domain.SortKey) error {
	if m.loadAdditionalFunc != nil {
		return m.loadAdditionalFunc(ctx, category, sort)
	}
	return nil
}

func (m *mockController) RetryLoad(ctx context.Context) error {
	if m.retryFunc != nil {
		return m.retryFunc(ctx)
	}
	return nil
}

func (m *mockController) Snapshot(category domain.Category) (feed.State, error) {
	return m.states[category], nil
}

func (m *mockController) CurrentError() *feed.ErrorState {
	return m.current
}

func (m *mockController) AcknowledgeError() bool {
	m.acknowledged++
	cleared := m.current != nil
	m.current = nil
	return cleared
}

// mockDetails is a func-field implementation of TitleDetailService
type mockDetails struct {
	getFunc func(ctx context.Context, id int, opts services.DetailOptions) (*domain.TitleDetail, error)
}

func (m *mockDetails) Get(ctx context.Context, id int, opts services.DetailOptions) (*domain.TitleDetail, error) {
	return m.getFunc(ctx, id, opts)
}

// withFlags installs a feature flag manager into every operation context
func withFlags(api huma.API, flags map[featureflags.FeatureFlag]bool) {
	manager := featureflags.NewStaticManager(flags)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, featureflags.WithManager(ctx.Context(), manager)))
	})
}

func items(category domain.Category, titles ...string) []domain.MediaItem {
	result := make([]domain.MediaItem, 0, len(titles))
	for i, title := range titles {
		result = append(result, domain.MediaItem{
			ID:         i + 1,
			Title:      title,
			Category:   category,
			DisplayKey: title + "_key",
		})
	}
	return result
}
