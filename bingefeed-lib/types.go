// ABOUTME: Public types for the Bingefeed library API
// ABOUTME: Re-exports the domain and controller types callers work with

package bingefeed

import (
	"bingefeed-api/core/domain"
	"bingefeed-api/core/feed"
	"bingefeed-api/core/recovery"
)

type (
	// Category is movie or series
	Category = domain.Category

	// SortKey is a catalog sort order
	SortKey = domain.SortKey

	// MediaItem is one feed entry
	MediaItem = domain.MediaItem

	// TitleDetail is the extended detail of one title
	TitleDetail = domain.TitleDetail

	// State is a snapshot of one category
	State = feed.State

	// ErrorState is the current failure with its notice
	ErrorState = feed.ErrorState

	// Event is a controller notification
	Event = feed.Event

	// Notice is the user-facing presentation of a failure
	Notice = recovery.Notice
)

const (
	Movie  = domain.Movie
	Series = domain.Series

	SortPopularityDesc  = domain.SortPopularityDesc
	SortRelevanceDesc   = domain.SortRelevanceDesc
	SortReleaseDateDesc = domain.SortReleaseDateDesc

	EventState        = feed.EventState
	EventError        = feed.EventError
	EventErrorCleared = feed.EventErrorCleared
)
