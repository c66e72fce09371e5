// ABOUTME: Observable feed state types for each category and the shared error slot
// ABOUTME: Snapshots are copies; presentation layers never see controller-owned slices

package feed

import (
	"errors"
	"sync"
	"time"

	"bingefeed-api/core/domain"
	"bingefeed-api/core/recovery"
)

var (
	// ErrBusy is returned when a load of the same kind is already in progress
	ErrBusy = errors.New("feed: load already in progress")

	// ErrExhausted is returned when the catalog has no pages left for the category
	ErrExhausted = errors.New("feed: no more pages")
)

// Phase is the initial-load lifecycle of a category
type Phase int

const (
	// PhaseIdle has no items and no load in progress
	PhaseIdle Phase = iota

	// PhaseLoadingInitial is a refresh in progress
	PhaseLoadingInitial

	// PhaseReady has a list that can be extended
	PhaseReady
)

// String returns the snake_case phase name
func (p Phase) String() string {
	switch p {
	case PhaseLoadingInitial:
		return "loading_initial"
	case PhaseReady:
		return "ready"
	default:
		return "idle"
	}
}

// MarshalText encodes the phase as its name
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// State is a point-in-time copy of one category's feed
type State struct {
	Category       domain.Category    `json:"category"`
	Items          []domain.MediaItem `json:"items"`
	NextPage       int                `json:"next_page"`
	Exhausted      bool               `json:"exhausted"`
	LoadingInitial bool               `json:"loading_initial"`
	LoadingMore    bool               `json:"loading_more"`
	Phase          Phase              `json:"phase"`
}

// ErrorState is the most recent unacknowledged failure
type ErrorState struct {
	Category   domain.Category `json:"category"`
	Notice     recovery.Notice `json:"notice"`
	Err        error           `json:"-"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// EventType identifies what changed
type EventType int

const (
	// EventState carries a new category snapshot
	EventState EventType = iota

	// EventError carries a newly surfaced failure
	EventError

	// EventErrorCleared reports that the error slot was emptied
	EventErrorCleared
)

// Event is delivered to subscribers after every mutation
type Event struct {
	Type  EventType
	State *State
	Error *ErrorState
}

// categoryState is the controller-owned cursor of one category.
// Fields are guarded by mu and never touched while a fetch is outstanding.
type categoryState struct {
	mu             sync.Mutex
	category       domain.Category
	items          []domain.MediaItem
	nextPage       int
	exhausted      bool
	loadingInitial bool
	loadingMore    bool
	generation     uint64
}

func newCategoryState(category domain.Category) *categoryState {
	return &categoryState{
		category: category,
		nextPage: 1,
	}
}

// snapshot copies the state. Caller holds mu.
func (s *categoryState) snapshot() State {
	items := make([]domain.MediaItem, len(s.items))
	copy(items, s.items)

	return State{
		Category:       s.category,
		Items:          items,
		NextPage:       s.nextPage,
		Exhausted:      s.exhausted,
		LoadingInitial: s.loadingInitial,
		LoadingMore:    s.loadingMore,
		Phase:          s.phase(),
	}
}

func (s *categoryState) phase() Phase {
	switch {
	case s.loadingInitial:
		return PhaseLoadingInitial
	case len(s.items) > 0:
		return PhaseReady
	default:
		return PhaseIdle
	}
}

// indexOf returns the position of displayKey in the active list, or -1
func (s *categoryState) indexOf(displayKey string) int {
	for i := range s.items {
		if s.items[i].DisplayKey == displayKey {
			return i
		}
	}
	return -1
}
