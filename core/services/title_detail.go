// ABOUTME: Title detail service backs the detail surface behind a feed item
// ABOUTME: Adds an optional session cache and poster accent color on top of the catalog detail fetch

package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"bingefeed-api/core/domain"
	apperrors "bingefeed-api/core/errors"
	"bingefeed-api/core/interfaces"
)

// DefaultDetailTTL bounds how long a detail stays in the session cache
const DefaultDetailTTL = 15 * time.Minute

// DetailOptions selects the optional parts of a detail lookup
type DetailOptions struct {
	UseCache  bool
	WithColor bool
}

// TitleDetailService fetches title details
type TitleDetailService struct {
	catalog interfaces.CatalogService
	colors  interfaces.PosterColorService
	deps    interfaces.Dependencies
	ttl     time.Duration
}

// NewTitleDetailService creates a detail service. colors may be nil.
func NewTitleDetailService(catalog interfaces.CatalogService, colors interfaces.PosterColorService, deps interfaces.Dependencies, ttl time.Duration) *TitleDetailService {
	if ttl <= 0 {
		ttl = DefaultDetailTTL
	}
	return &TitleDetailService{
		catalog: catalog,
		colors:  colors,
		deps:    deps,
		ttl:     ttl,
	}
}

// Get returns the detail for a catalog id
func (s *TitleDetailService) Get(ctx context.Context, id int, opts DetailOptions) (*domain.TitleDetail, error) {
	if opts.UseCache {
		if detail := s.cached(ctx, id); detail != nil {
			return s.withColor(ctx, detail, opts), nil
		}
	}

	detail, err := s.catalog.FetchDetail(ctx, id)
	if err != nil {
		if isMissingTitle(err) {
			return nil, &apperrors.NotFoundError{Resource: "title", ID: strconv.Itoa(id)}
		}
		return nil, apperrors.WrapError(err, "title "+strconv.Itoa(id))
	}

	if opts.UseCache && s.deps.Cache != nil {
		if data, err := json.Marshal(detail); err == nil {
			_ = s.deps.Cache.Set(ctx, detailCacheKey(id), data, s.ttl)
		}
	}

	return s.withColor(ctx, detail, opts), nil
}

func (s *TitleDetailService) cached(ctx context.Context, id int) *domain.TitleDetail {
	if s.deps.Cache == nil {
		return nil
	}
	data, err := s.deps.Cache.Get(ctx, detailCacheKey(id))
	if err != nil || data == nil {
		return nil
	}

	var detail domain.TitleDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		_ = s.deps.Cache.Delete(ctx, detailCacheKey(id))
		return nil
	}
	return &detail
}

func (s *TitleDetailService) withColor(ctx context.Context, detail *domain.TitleDetail, opts DetailOptions) *domain.TitleDetail {
	if !opts.WithColor || s.colors == nil {
		return detail
	}
	color, err := s.colors.ExtractColor(ctx, detail.BestPosterURL())
	if err == nil {
		detail.AccentColor = color
	}
	return detail
}

// isMissingTitle reports whether the catalog answered 404 for the title
func isMissingTitle(err error) bool {
	var catalogErr *apperrors.CatalogError
	return errors.As(err, &catalogErr) && catalogErr.StatusCode == http.StatusNotFound
}

func detailCacheKey(id int) string {
	return "detail:" + strconv.Itoa(id)
}
