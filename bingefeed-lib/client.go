// ABOUTME: Main client for the Bingefeed library providing paginated media feeds
// ABOUTME: Offers the feed controller and title details without HTTP bridge dependencies

package bingefeed

import (
	"context"

	"bingefeed-api/core/catalog"
	"bingefeed-api/core/feed"
	"bingefeed-api/core/interfaces"
	"bingefeed-api/core/merge"
	"bingefeed-api/core/services"
)

// Client is the main entry point for the Bingefeed library
type Client struct {
	controller *feed.Controller
	details    *services.TitleDetailService
	deps       interfaces.Dependencies
	config     Config
}

// NewClient creates a new Bingefeed client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Cache:      config.Cache,
		Logger:     config.Logger,
		Metrics:    config.Metrics,
	}

	var engineOpts []merge.Option
	if !config.Shuffle {
		engineOpts = append(engineOpts, merge.WithShuffler(merge.NoShuffle))
	}
	engine := merge.NewEngine(engineOpts...)

	// The catalog stamps keys from the engine's generator so no two keys collide
	catalogClient := catalog.NewClient(deps, catalog.Config{
		BaseURL: config.BaseURL,
		APIKey:  config.APIKey,
		Region:  config.Region,
	}, engine.Keys())

	var colors interfaces.PosterColorService
	if config.PosterColors {
		imageDeps := deps
		imageDeps.HTTPClient = config.ImageHTTPClient
		colors = services.NewPosterColorService(imageDeps)
	}

	return &Client{
		controller: feed.NewController(catalogClient, deps, feed.WithEngine(engine)),
		details:    services.NewTitleDetailService(catalogClient, colors, deps, config.DetailTTL),
		deps:       deps,
		config:     config,
	}, nil
}

// Refresh replaces a category's list with a fresh merge of page 1
func (c *Client) Refresh(ctx context.Context, category Category) error {
	return c.controller.Refresh(ctx, category)
}

// LoadMore appends the next page of a category
func (c *Client) LoadMore(ctx context.Context, category Category) error {
	return c.controller.LoadMore(ctx, category)
}

// MaybeLoadMore loads the next page when displayKey is near the end of the list.
// It reports whether a load ran.
func (c *Client) MaybeLoadMore(ctx context.Context, category Category, displayKey string) (bool, error) {
	return c.controller.MaybeLoadMore(ctx, category, displayKey)
}

// LoadAdditional merges page 1 of a sort order other than currentSort
func (c *Client) LoadAdditional(ctx context.Context, category Category, currentSort SortKey) error {
	return c.controller.LoadAdditional(ctx, category, currentSort)
}

// RetryLoad repeats the initial load of whichever list needs it
func (c *Client) RetryLoad(ctx context.Context) error {
	return c.controller.RetryLoad(ctx)
}

// Snapshot returns a copy of a category's state
func (c *Client) Snapshot(category Category) (State, error) {
	return c.controller.Snapshot(category)
}

// CurrentError returns the unacknowledged failure, or nil
func (c *Client) CurrentError() *ErrorState {
	return c.controller.CurrentError()
}

// AcknowledgeError clears the current failure
func (c *Client) AcknowledgeError() bool {
	return c.controller.AcknowledgeError()
}

// Subscribe delivers an event after every state change until cancel is called
func (c *Client) Subscribe(buffer int) (<-chan Event, func()) {
	return c.controller.Subscribe(buffer)
}

// Detail fetches the extended detail of one title
func (c *Client) Detail(ctx context.Context, id int) (*TitleDetail, error) {
	if id <= 0 {
		return nil, NewError(ErrorTypeValidation, "title id must be positive").WithContext("id", id)
	}
	return c.details.Get(ctx, id, services.DetailOptions{
		UseCache:  c.config.DetailCache,
		WithColor: c.config.PosterColors,
	})
}
