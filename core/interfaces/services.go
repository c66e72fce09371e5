// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"bingefeed-api/core/domain"
)

// SearchRequest selects one page of a category in one sort order
type SearchRequest struct {
	Category domain.Category
	Page     int
	Sort     domain.SortKey
}

// CatalogService is the remote catalog contract used by the feed controller
type CatalogService interface {
	// Search fetches one page of list results
	Search(ctx context.Context, req SearchRequest) (*domain.FeedPage, error)

	// FetchDetail fetches a single title by catalog id
	FetchDetail(ctx context.Context, id int) (*domain.TitleDetail, error)
}

// PosterColorService extracts an accent color from poster images
type PosterColorService interface {
	ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error)
}
