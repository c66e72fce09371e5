// ABOUTME: Feed merge engine combines catalog pages into one display list
// ABOUTME: Membership is keyed by DisplayKey, never by catalog ID, and results are shuffled

package merge

import (
	"math/rand"

	"bingefeed-api/core/domain"
)

// Shuffler permutes n elements through swap
type Shuffler func(n int, swap func(i, j int))

// Result is the outcome of an initial merge
type Result struct {
	Items     []domain.MediaItem
	Exhausted bool
}

// Engine merges pages into a display list
type Engine struct {
	keys    KeyGenerator
	shuffle Shuffler
}

// Option configures an Engine
type Option func(*Engine)

// WithKeyGenerator sets the display key generator
func WithKeyGenerator(keys KeyGenerator) Option {
	return func(e *Engine) {
		e.keys = keys
	}
}

// WithShuffler sets the shuffle function, mainly for deterministic tests
func WithShuffler(shuffle Shuffler) Option {
	return func(e *Engine) {
		e.shuffle = shuffle
	}
}

// NoShuffle keeps insertion order
func NoShuffle(n int, swap func(i, j int)) {}

// NewEngine creates a merge engine
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		keys:    NewMonotonicKeys(),
		shuffle: rand.Shuffle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Keys returns the engine's key generator
func (e *Engine) Keys() KeyGenerator {
	return e.keys
}

// MergeInitial combines page 1 of two sort orders.
// Only primary's pagination metadata decides exhaustion.
func (e *Engine) MergeInitial(primary, secondary *domain.FeedPage) Result {
	set := newDisplaySet(pageLen(primary) + pageLen(secondary))

	for _, page := range []*domain.FeedPage{primary, secondary} {
		if page == nil {
			continue
		}
		for _, item := range page.Items {
			item.DisplayKey = e.keys.Next(item.ID, "")
			set.add(item)
		}
	}

	items := set.items()
	e.shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	exhausted := true
	if primary != nil {
		exhausted = !primary.HasMore()
	}

	return Result{
		Items:     items,
		Exhausted: exhausted,
	}
}

// MergeAppend re-keys the page's items, unions them into existing and reshuffles.
// An existing entry wins when keys collide.
func (e *Engine) MergeAppend(existing []domain.MediaItem, page *domain.FeedPage, suffix string) []domain.MediaItem {
	set := newDisplaySet(len(existing) + pageLen(page))
	for _, item := range existing {
		set.add(item)
	}

	if page != nil {
		for _, item := range page.Items {
			item.DisplayKey = e.keys.Next(item.ID, suffix)
			set.add(item)
		}
	}

	items := set.items()
	e.shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	return items
}

func pageLen(page *domain.FeedPage) int {
	if page == nil {
		return 0
	}
	return len(page.Items)
}

// displaySet is an insertion-ordered set of items keyed by DisplayKey
type displaySet struct {
	index map[string]struct{}
	order []domain.MediaItem
}

func newDisplaySet(capacity int) *displaySet {
	return &displaySet{
		index: make(map[string]struct{}, capacity),
		order: make([]domain.MediaItem, 0, capacity),
	}
}

func (s *displaySet) add(item domain.MediaItem) bool {
	if _, exists := s.index[item.DisplayKey]; exists {
		return false
	}
	s.index[item.DisplayKey] = struct{}{}
	s.order = append(s.order, item)
	return true
}

func (s *displaySet) items() []domain.MediaItem {
	return s.order
}
