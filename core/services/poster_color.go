// ABOUTME: Poster color extraction for the title detail surface
// ABOUTME: Uses K-means clustering on the downloaded poster to find its most prominent color

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/url"
	"strings"
	"time"

	"bingefeed-api/core/domain"
	"bingefeed-api/core/interfaces"
	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/webp" // WebP support
)

const (
	defaultColorValue = 128
	colorCacheTTL     = 24 * time.Hour
	maxPosterBytes    = 8 << 20
)

// PosterColorService extracts accent colors from poster images
type PosterColorService struct {
	deps interfaces.Dependencies
}

// NewPosterColorService creates a poster color service.
// deps.HTTPClient downloads images and should not share the catalog rate limit.
func NewPosterColorService(deps interfaces.Dependencies) *PosterColorService {
	return &PosterColorService{
		deps: deps,
	}
}

// ExtractColor returns the prominent color of the image, or neutral gray when it cannot be computed
func (s *PosterColorService) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return defaultColor(), nil
	}

	cacheKey := "posterColor:" + imageURL
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var color domain.RGBColor
			if err := json.Unmarshal(data, &color); err == nil {
				return &color, nil
			}
		}
	}

	color, err := s.extractColorFromURL(ctx, imageURL)
	if err != nil {
		s.debug("Failed to extract poster color", map[string]interface{}{
			"url":   imageURL,
			"error": err.Error(),
		})
		return defaultColor(), nil
	}

	if s.deps.Cache != nil {
		if data, err := json.Marshal(color); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, colorCacheTTL)
		}
	}

	return color, nil
}

// extractColorFromURL downloads and clusters the image
func (s *PosterColorService) extractColorFromURL(ctx context.Context, imageURL string) (color *domain.RGBColor, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			color = nil
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	parsedURL, parseErr := url.Parse(imageURL)
	if parseErr != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid image URL: %s", imageURL)
	}
	if strings.HasSuffix(strings.ToLower(parsedURL.Path), ".svg") {
		return nil, fmt.Errorf("SVG images are not supported")
	}
	if s.deps.HTTPClient == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body(), maxPosterBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has empty bounds")
	}
	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.ArgumentDefault,
		imgNRGBA,
		prominentcolor.DefaultK,
		1,
		prominentcolor.GetDefaultMasks(),
	)
	if err != nil || len(colors) == 0 {
		// Retry without masks for posters that are mostly black or white
		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.ArgumentDefault,
			imgNRGBA,
			prominentcolor.DefaultK,
			1,
			nil,
		)
		if err != nil || len(colors) == 0 {
			return nil, fmt.Errorf("no colors extracted from image")
		}
	}

	return &domain.RGBColor{
		R: uint8(colors[0].Color.R),
		G: uint8(colors[0].Color.G),
		B: uint8(colors[0].Color.B),
	}, nil
}

func (s *PosterColorService) debug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

// defaultColor returns neutral gray
func defaultColor() *domain.RGBColor {
	return &domain.RGBColor{
		R: defaultColorValue,
		G: defaultColorValue,
		B: defaultColorValue,
	}
}
