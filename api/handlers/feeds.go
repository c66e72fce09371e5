// ABOUTME: Feed handlers for the Huma API
// ABOUTME: Exposes refresh, load-more, prefetch and variety loads of the pagination controller

package handlers

import (
	"context"
	"errors"
	"net/http"

	"bingefeed-api/api/dto/mappers"
	"bingefeed-api/api/dto/requests"
	"bingefeed-api/api/dto/responses"
	"bingefeed-api/core/domain"
	"bingefeed-api/core/feed"
	"bingefeed-api/core/search"
	"bingefeed-api/pkg/featureflags"
	"github.com/danielgtaylor/huma/v2"
)

// FeedController is the part of the pagination controller the bridge drives
type FeedController interface {
	Refresh(ctx context.Context, category domain.Category) error
	LoadMore(ctx context.Context, category domain.Category) error
	MaybeLoadMore(ctx context.Context, category domain.Category, displayKey string) (bool, error)
	LoadAdditional(ctx context.Context, category domain.Category, currentSort domain.SortKey) error
	RetryLoad(ctx context.Context) error
	Snapshot(category domain.Category) (feed.State, error)
	CurrentError() *feed.ErrorState
	AcknowledgeError() bool
}

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	controller FeedController
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(controller FeedController) *FeedHandler {
	return &FeedHandler{controller: controller}
}

// RegisterRoutes registers all feed-related routes
func (h *FeedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getFeed",
		Method:      http.MethodGet,
		Path:        "/feeds/{category}",
		Summary:     "Get a feed snapshot",
		Description: "Returns the current list of a category, optionally filtered by title and windowed",
		Tags:        []string{"Feeds"},
	}, h.GetFeed)

	huma.Register(api, huma.Operation{
		OperationID: "refreshFeed",
		Method:      http.MethodPost,
		Path:        "/feeds/{category}/refresh",
		Summary:     "Refresh a feed",
		Description: "Replaces the list with a shuffled merge of two page-1 fetches",
		Tags:        []string{"Feeds"},
	}, h.Refresh)

	huma.Register(api, huma.Operation{
		OperationID: "loadMoreFeed",
		Method:      http.MethodPost,
		Path:        "/feeds/{category}/more",
		Summary:     "Load the next page",
		Description: "Appends the next catalog page. An exhausted feed is returned unchanged.",
		Tags:        []string{"Feeds"},
	}, h.LoadMore)

	huma.Register(api, huma.Operation{
		OperationID: "reportVisible",
		Method:      http.MethodPost,
		Path:        "/feeds/{category}/visible",
		Summary:     "Report the visible item",
		Description: "Loads the next page when the item is close to the end of the list",
		Tags:        []string{"Feeds"},
	}, h.Visible)

	huma.Register(api, huma.Operation{
		OperationID: "loadVariety",
		Method:      http.MethodPost,
		Path:        "/feeds/{category}/variety",
		Summary:     "Load additional variety",
		Description: "Merges page 1 of a different sort order into the list",
		Tags:        []string{"Feeds"},
	}, h.Variety)

	huma.Register(api, huma.Operation{
		OperationID: "retryLoad",
		Method:      http.MethodPost,
		Path:        "/feeds/retry",
		Summary:     "Retry the failed load",
		Description: "Refreshes movies when that list is empty, otherwise series",
		Tags:        []string{"Feeds"},
	}, h.Retry)
}

// CategoryInput selects a feed by path
type CategoryInput struct {
	Category string `path:"category" enum:"movie,series" doc:"Feed category"`
}

func (i *CategoryInput) category() (domain.Category, error) {
	category, err := domain.ParseCategory(i.Category)
	if err != nil {
		return 0, huma.Error400BadRequest(err.Error())
	}
	return category, nil
}

// GetFeedInput defines the input for the GetFeed operation
type GetFeedInput struct {
	CategoryInput
	Page    int    `query:"page" minimum:"0" doc:"Window number (1-based); 0 returns the whole list"`
	PerPage int    `query:"per_page" minimum:"0" maximum:"100" doc:"Window size; defaults to 20"`
	Query   string `query:"q" maxLength:"100" doc:"Fuzzy title filter"`
}

// FeedOutput wraps a single feed snapshot
type FeedOutput struct {
	Body responses.FeedResponse
}

// GetFeed handles GET /feeds/{category}
func (h *FeedHandler) GetFeed(ctx context.Context, input *GetFeedInput) (*FeedOutput, error) {
	category, err := input.category()
	if err != nil {
		return nil, err
	}

	state, err := h.controller.Snapshot(category)
	if err != nil {
		return nil, toHumaError(err)
	}

	items := state.Items
	if input.Query != "" {
		items = search.FilterItems(items, input.Query)
	}
	total := len(items)

	var window *responses.WindowResponse
	if input.Page > 0 {
		perPage := input.PerPage
		if perPage < 1 {
			perPage = feed.DefaultWindowSize
		}
		items = feed.PaginateItems(items, input.Page, perPage)
		window = &responses.WindowResponse{
			Page:         input.Page,
			PerPage:      perPage,
			TotalWindows: feed.WindowCount(total, perPage),
		}
	}

	body := mappers.ToFeedResponse(state, items, total)
	body.Query = input.Query
	body.Window = window
	return &FeedOutput{Body: body}, nil
}

// Refresh handles POST /feeds/{category}/refresh
func (h *FeedHandler) Refresh(ctx context.Context, input *CategoryInput) (*FeedOutput, error) {
	category, err := input.category()
	if err != nil {
		return nil, err
	}

	if err := h.controller.Refresh(ctx, category); err != nil {
		return nil, toHumaError(err)
	}
	return h.snapshot(category)
}

// LoadMore handles POST /feeds/{category}/more
func (h *FeedHandler) LoadMore(ctx context.Context, input *CategoryInput) (*FeedOutput, error) {
	category, err := input.category()
	if err != nil {
		return nil, err
	}

	if err := h.controller.LoadMore(ctx, category); err != nil && !errors.Is(err, feed.ErrExhausted) {
		return nil, toHumaError(err)
	}
	return h.snapshot(category)
}

// VisibleInput defines the input for the Visible operation
type VisibleInput struct {
	CategoryInput
	Body requests.VisibleRequest
}

// LoadOutput reports whether a conditional load ran
type LoadOutput struct {
	Body responses.LoadResponse
}

// Visible handles POST /feeds/{category}/visible
func (h *FeedHandler) Visible(ctx context.Context, input *VisibleInput) (*LoadOutput, error) {
	category, err := input.category()
	if err != nil {
		return nil, err
	}

	triggered, err := h.controller.MaybeLoadMore(ctx, category, input.Body.DisplayKey)
	if err != nil {
		return nil, toHumaError(err)
	}

	out, err := h.snapshot(category)
	if err != nil {
		return nil, err
	}
	return &LoadOutput{Body: responses.LoadResponse{Triggered: triggered, Feed: out.Body}}, nil
}

// VarietyInput defines the input for the Variety operation
type VarietyInput struct {
	CategoryInput
	Body requests.VarietyRequest
}

// Variety handles POST /feeds/{category}/variety
func (h *FeedHandler) Variety(ctx context.Context, input *VarietyInput) (*FeedOutput, error) {
	if !featureflags.IsEnabled(ctx, featureflags.AdditionalVariety) {
		return nil, huma.Error404NotFound("Additional variety is disabled")
	}

	category, err := input.category()
	if err != nil {
		return nil, err
	}

	input.Body.ApplyDefaults()
	sort, err := input.Body.Sort()
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	if err := h.controller.LoadAdditional(ctx, category, sort); err != nil {
		return nil, toHumaError(err)
	}
	return h.snapshot(category)
}

// FeedsOutput wraps both snapshots
type FeedsOutput struct {
	Body responses.FeedsResponse
}

// Retry handles POST /feeds/retry
func (h *FeedHandler) Retry(ctx context.Context, input *struct{}) (*FeedsOutput, error) {
	if err := h.controller.RetryLoad(ctx); err != nil {
		return nil, toHumaError(err)
	}

	movies, err := h.controller.Snapshot(domain.Movie)
	if err != nil {
		return nil, toHumaError(err)
	}
	series, err := h.controller.Snapshot(domain.Series)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &FeedsOutput{Body: responses.FeedsResponse{
		Movie:  mappers.ToStateResponse(movies),
		Series: mappers.ToStateResponse(series),
	}}, nil
}

func (h *FeedHandler) snapshot(category domain.Category) (*FeedOutput, error) {
	state, err := h.controller.Snapshot(category)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &FeedOutput{Body: mappers.ToStateResponse(state)}, nil
}
