// Package core contains the business logic for the Bingefeed API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Category, SortKey, MediaItem, FeedPage, TitleDetail)
// - catalog: Client for the remote list and detail endpoints
// - merge: Display key generation and the merge/deduplicate/shuffle engine
// - feed: Pagination controller with per-category state and events
// - recovery: Maps a failure kind to a user-facing notice
// - search: In-memory fuzzy filtering of a loaded feed
// - services: Title detail lookup and poster accent colors
// - workers: Background pool that warms poster colors
// - errors: Catalog error kinds and common error types
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, metrics)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
//
// # Usage Example
//
//	import (
//	    "bingefeed-api/core/catalog"
//	    "bingefeed-api/core/domain"
//	    "bingefeed-api/core/feed"
//	    "bingefeed-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	client := catalog.NewClient(deps, catalog.Config{APIKey: key}, nil)
//	controller := feed.NewController(client, deps)
//
//	if err := controller.Refresh(ctx, domain.Movie); err != nil {
//	    notice := controller.CurrentError().Notice
//	}
package core
