package services

import (
	"context"
	"testing"
	"time"

	"bingefeed-api/core/domain"
	apperrors "bingefeed-api/core/errors"
	"bingefeed-api/core/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDetail(id int) *domain.TitleDetail {
	return &domain.TitleDetail{
		MediaItem: domain.MediaItem{
			ID:          id,
			Title:       "Arrival",
			Category:    domain.Movie,
			PosterLarge: "https://img.test/large.jpg",
		},
		RuntimeMinutes: 116,
		GenreNames:     []string{"Drama", "Sci-Fi"},
	}
}

func TestTitleDetail_FetchesWithoutCache(t *testing.T) {
	catalog := &mockCatalog{detailFunc: func(ctx context.Context, id int) (*domain.TitleDetail, error) {
		return sampleDetail(id), nil
	}}
	cache := newMapCache()
	svc := NewTitleDetailService(catalog, nil, interfaces.Dependencies{Cache: cache}, 0)

	for i := 0; i < 2; i++ {
		detail, err := svc.Get(context.Background(), 7, DetailOptions{})
		require.NoError(t, err)
		assert.Equal(t, "Arrival", detail.Title)
	}

	assert.Equal(t, 2, catalog.detailCalls)
	assert.Empty(t, cache.data)
}

func TestTitleDetail_SessionCache(t *testing.T) {
	catalog := &mockCatalog{detailFunc: func(ctx context.Context, id int) (*domain.TitleDetail, error) {
		return sampleDetail(id), nil
	}}
	cache := newMapCache()
	svc := NewTitleDetailService(catalog, nil, interfaces.Dependencies{Cache: cache}, time.Minute)

	first, err := svc.Get(context.Background(), 7, DetailOptions{UseCache: true})
	require.NoError(t, err)
	second, err := svc.Get(context.Background(), 7, DetailOptions{UseCache: true})
	require.NoError(t, err)

	assert.Equal(t, 1, catalog.detailCalls)
	assert.Equal(t, first.GenreNames, second.GenreNames)
	assert.Equal(t, domain.Movie, second.Category)
	assert.Equal(t, time.Minute, cache.ttls["detail:7"])
}

func TestTitleDetail_CorruptCacheEntryIsRefetched(t *testing.T) {
	catalog := &mockCatalog{detailFunc: func(ctx context.Context, id int) (*domain.TitleDetail, error) {
		return sampleDetail(id), nil
	}}
	cache := newMapCache()
	cache.data["detail:7"] = []byte("{not json")
	svc := NewTitleDetailService(catalog, nil, interfaces.Dependencies{Cache: cache}, 0)

	detail, err := svc.Get(context.Background(), 7, DetailOptions{UseCache: true})

	require.NoError(t, err)
	assert.Equal(t, 7, detail.ID)
	assert.Equal(t, 1, catalog.detailCalls)
	assert.Equal(t, DefaultDetailTTL, cache.ttls["detail:7"])
}

func TestTitleDetail_AccentColor(t *testing.T) {
	catalog := &mockCatalog{detailFunc: func(ctx context.Context, id int) (*domain.TitleDetail, error) {
		return sampleDetail(id), nil
	}}
	colors := &mockColors{}
	svc := NewTitleDetailService(catalog, colors, interfaces.Dependencies{}, 0)

	plain, err := svc.Get(context.Background(), 3, DetailOptions{})
	require.NoError(t, err)
	assert.Nil(t, plain.AccentColor)

	colored, err := svc.Get(context.Background(), 3, DetailOptions{WithColor: true})
	require.NoError(t, err)
	require.NotNil(t, colored.AccentColor)
	assert.Equal(t, uint8(10), colored.AccentColor.R)
	assert.Equal(t, []string{"https://img.test/large.jpg"}, colors.urls)
}

func TestTitleDetail_PropagatesCatalogError(t *testing.T) {
	catalog := &mockCatalog{detailFunc: func(ctx context.Context, id int) (*domain.TitleDetail, error) {
		return nil, apperrors.NewCatalogError(apperrors.KindRateLimited, "detail", "", nil)
	}}
	svc := NewTitleDetailService(catalog, nil, interfaces.Dependencies{Cache: newMapCache()}, 0)

	_, err := svc.Get(context.Background(), 3, DetailOptions{UseCache: true})

	assert.True(t, apperrors.IsRateLimited(err))
}

func TestTitleDetail_MissingTitleIsNotFound(t *testing.T) {
	catalog := &mockCatalog{detailFunc: func(ctx context.Context, id int) (*domain.TitleDetail, error) {
		catalogErr := apperrors.NewCatalogError(apperrors.KindInvalidRequest, "detail", "Server returned status code 404", nil)
		catalogErr.StatusCode = 404
		return nil, catalogErr
	}}
	svc := NewTitleDetailService(catalog, nil, interfaces.Dependencies{}, 0)

	_, err := svc.Get(context.Background(), 42, DetailOptions{})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "title not found: 42", err.Error())
}

func TestTitleDetail_WrapsOtherFailures(t *testing.T) {
	catalog := &mockCatalog{detailFunc: func(ctx context.Context, id int) (*domain.TitleDetail, error) {
		catalogErr := apperrors.NewCatalogError(apperrors.KindServerFailure, "detail", "Server returned status code 500", nil)
		catalogErr.StatusCode = 500
		return nil, catalogErr
	}}
	svc := NewTitleDetailService(catalog, nil, interfaces.Dependencies{}, 0)

	_, err := svc.Get(context.Background(), 42, DetailOptions{})

	require.Error(t, err)
	assert.False(t, apperrors.IsNotFound(err))
	assert.Equal(t, apperrors.KindServerFailure, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "title 42: ")
}
