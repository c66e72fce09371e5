package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"bingefeed-api/core/domain"
	"bingefeed-api/core/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gray() *domain.RGBColor {
	return &domain.RGBColor{R: defaultColorValue, G: defaultColorValue, B: defaultColorValue}
}

func posterPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			c := color.NRGBA{R: 200, G: 30, B: 40, A: 255}
			switch {
			case x < 8:
				c = color.NRGBA{R: 30, G: 60, B: 200, A: 255}
			case y < 8:
				c = color.NRGBA{R: 220, G: 200, B: 40, A: 255}
			}
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestExtractColor_DefaultsWithoutDownload(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty url", ""},
		{"relative url", "/posters/1.jpg"},
		{"svg", "https://img.test/poster.SVG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpClient := &mockHTTPClient{}
			svc := NewPosterColorService(interfaces.Dependencies{HTTPClient: httpClient})

			color, err := svc.ExtractColor(context.Background(), tt.url)

			require.NoError(t, err)
			assert.Equal(t, gray(), color)
			assert.Equal(t, 0, httpClient.calls)
		})
	}
}

func TestExtractColor_DefaultsOnFailedDownload(t *testing.T) {
	tests := []struct {
		name    string
		getFunc func(ctx context.Context, url string) (interfaces.Response, error)
	}{
		{"transport error", func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, errors.New("timeout")
		}},
		{"not found", func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 404}, nil
		}},
		{"not an image", func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: []byte("<html></html>")}, nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newMapCache()
			svc := NewPosterColorService(interfaces.Dependencies{
				HTTPClient: &mockHTTPClient{getFunc: tt.getFunc},
				Cache:      cache,
			})

			color, err := svc.ExtractColor(context.Background(), "https://img.test/poster.jpg")

			require.NoError(t, err)
			assert.Equal(t, gray(), color)
			assert.Empty(t, cache.data, "failures are not cached")
		})
	}
}

func TestExtractColor_DecodesPoster(t *testing.T) {
	body := posterPNG(t)
	httpClient := &mockHTTPClient{getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
		return &mockResponse{statusCode: 200, body: body}, nil
	}}
	svc := NewPosterColorService(interfaces.Dependencies{HTTPClient: httpClient})

	color, err := svc.ExtractColor(context.Background(), "https://img.test/poster.png")

	require.NoError(t, err)
	require.NotNil(t, color)
	assert.Equal(t, 1, httpClient.calls)
}

func TestExtractColor_UsesCache(t *testing.T) {
	cache := newMapCache()
	cached, _ := json.Marshal(domain.RGBColor{R: 1, G: 2, B: 3})
	cache.data["posterColor:https://img.test/poster.jpg"] = cached
	httpClient := &mockHTTPClient{}
	svc := NewPosterColorService(interfaces.Dependencies{HTTPClient: httpClient, Cache: cache})

	color, err := svc.ExtractColor(context.Background(), "https://img.test/poster.jpg")

	require.NoError(t, err)
	assert.Equal(t, &domain.RGBColor{R: 1, G: 2, B: 3}, color)
	assert.Equal(t, 0, httpClient.calls)
}
