// ABOUTME: Pagination controller drives refresh and load-more for each category
// ABOUTME: Owns per-category cursors, routes failures through the recovery policy, and publishes events

package feed

import (
	"context"
	"errors"
	"sync"
	"time"

	"bingefeed-api/core/domain"
	apperrors "bingefeed-api/core/errors"
	"bingefeed-api/core/interfaces"
	"bingefeed-api/core/merge"
	"bingefeed-api/core/recovery"
	"golang.org/x/sync/errgroup"
)

const (
	// PrefetchThreshold is how close to the end of the list a visible item must be to trigger a load
	PrefetchThreshold = 5

	// AdditionalSuffix marks display keys of items merged by LoadAdditional
	AdditionalSuffix = "additional"

	primarySort   = domain.SortPopularityDesc
	secondarySort = domain.SortReleaseDateDesc
)

// Controller is the pagination state machine for every category
type Controller struct {
	catalog interfaces.CatalogService
	deps    interfaces.Dependencies
	engine  *merge.Engine
	now     func() time.Time

	states map[domain.Category]*categoryState

	errMu   sync.Mutex
	current *ErrorState

	subsMu  sync.Mutex
	subs    map[int]chan Event
	nextSub int
}

// Option configures a Controller
type Option func(*Controller)

// WithEngine sets the merge engine
func WithEngine(engine *merge.Engine) Option {
	return func(c *Controller) {
		c.engine = engine
	}
}

// WithClock sets the clock used to stamp error states
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController creates a controller with an empty state for every category
func NewController(catalog interfaces.CatalogService, deps interfaces.Dependencies, opts ...Option) *Controller {
	c := &Controller{
		catalog: catalog,
		deps:    deps,
		now:     time.Now,
		states:  make(map[domain.Category]*categoryState, len(domain.Categories)),
		subs:    make(map[int]chan Event),
	}
	for _, category := range domain.Categories {
		c.states[category] = newCategoryState(category)
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.engine == nil {
		c.engine = merge.NewEngine()
	}
	return c
}

// Refresh replaces a category's list with a merge of two page-1 fetches
func (c *Controller) Refresh(ctx context.Context, category domain.Category) error {
	st, err := c.state(category)
	if err != nil {
		return err
	}

	st.mu.Lock()
	if st.loadingInitial {
		st.mu.Unlock()
		return ErrBusy
	}
	st.loadingInitial = true
	st.generation++
	generation := st.generation
	st.mu.Unlock()

	c.clearError()
	c.publishState(st)

	var primary, secondary *domain.FeedPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page, err := c.catalog.Search(gctx, interfaces.SearchRequest{Category: category, Page: 1, Sort: primarySort})
		primary = page
		return err
	})
	g.Go(func() error {
		page, err := c.catalog.Search(gctx, interfaces.SearchRequest{Category: category, Page: 1, Sort: secondarySort})
		secondary = page
		return err
	})
	fetchErr := g.Wait()

	st.mu.Lock()
	st.loadingInitial = false
	if fetchErr == nil && generation == st.generation {
		result := c.engine.MergeInitial(primary, secondary)
		st.items = result.Items
		st.nextPage = 2
		st.exhausted = result.Exhausted
	}
	size := len(st.items)
	st.mu.Unlock()

	if fetchErr != nil {
		c.reportError(category, "refresh", fetchErr)
		c.publishState(st)
		return fetchErr
	}

	c.recordSize(category, size)
	c.logInfo("Feed refreshed", map[string]interface{}{
		"category": category.String(),
		"items":    size,
	})
	c.publishState(st)
	return nil
}

// LoadMore appends the next catalog page to a category's list
func (c *Controller) LoadMore(ctx context.Context, category domain.Category) error {
	st, err := c.state(category)
	if err != nil {
		return err
	}

	st.mu.Lock()
	if st.loadingInitial || st.loadingMore {
		st.mu.Unlock()
		return ErrBusy
	}
	if st.exhausted {
		st.mu.Unlock()
		return ErrExhausted
	}
	st.loadingMore = true
	pageNumber := st.nextPage
	generation := st.generation
	st.mu.Unlock()

	c.publishState(st)

	page, fetchErr := c.catalog.Search(ctx, interfaces.SearchRequest{Category: category, Page: pageNumber, Sort: primarySort})

	st.mu.Lock()
	st.loadingMore = false
	stale := generation != st.generation
	if fetchErr == nil && !stale {
		st.items = c.engine.MergeAppend(st.items, page, "")
		st.nextPage = pageNumber + 1
		st.exhausted = !page.HasMore()
	}
	size := len(st.items)
	st.mu.Unlock()

	switch {
	case stale:
		c.discardStale(category, "load_more", pageNumber, fetchErr)
	case fetchErr != nil:
		c.reportError(category, "load_more", fetchErr)
	default:
		c.recordSize(category, size)
	}

	c.publishState(st)
	return fetchErr
}

// MaybeLoadMore triggers LoadMore when displayKey is within PrefetchThreshold of the end.
// It reports whether a load ran.
func (c *Controller) MaybeLoadMore(ctx context.Context, category domain.Category, displayKey string) (bool, error) {
	st, err := c.state(category)
	if err != nil {
		return false, err
	}

	st.mu.Lock()
	index := st.indexOf(displayKey)
	count := len(st.items)
	st.mu.Unlock()

	if index < 0 || index < count-PrefetchThreshold {
		return false, nil
	}

	err = c.LoadMore(ctx, category)
	if errors.Is(err, ErrBusy) || errors.Is(err, ErrExhausted) {
		return false, nil
	}
	return true, err
}

// LoadAdditional merges page 1 of a different sort order into the list.
// The page cursor and exhaustion flag are left alone.
func (c *Controller) LoadAdditional(ctx context.Context, category domain.Category, currentSort domain.SortKey) error {
	st, err := c.state(category)
	if err != nil {
		return err
	}

	st.mu.Lock()
	if st.loadingInitial || st.loadingMore {
		st.mu.Unlock()
		return ErrBusy
	}
	st.loadingMore = true
	generation := st.generation
	st.mu.Unlock()

	c.publishState(st)

	sort := domain.AlternateSort(currentSort)
	page, fetchErr := c.catalog.Search(ctx, interfaces.SearchRequest{Category: category, Page: 1, Sort: sort})

	st.mu.Lock()
	st.loadingMore = false
	stale := generation != st.generation
	if fetchErr == nil && !stale {
		st.items = c.engine.MergeAppend(st.items, page, AdditionalSuffix)
	}
	size := len(st.items)
	st.mu.Unlock()

	switch {
	case stale:
		c.discardStale(category, "load_additional", 1, fetchErr)
	case fetchErr != nil:
		c.reportError(category, "load_additional", fetchErr)
	default:
		c.recordSize(category, size)
	}

	c.publishState(st)
	return fetchErr
}

// RetryLoad refreshes movies when that list is empty, otherwise series
func (c *Controller) RetryLoad(ctx context.Context) error {
	target := domain.Series

	movies := c.states[domain.Movie]
	movies.mu.Lock()
	if len(movies.items) == 0 {
		target = domain.Movie
	}
	movies.mu.Unlock()

	return c.Refresh(ctx, target)
}

// Snapshot returns a copy of a category's state
func (c *Controller) Snapshot(category domain.Category) (State, error) {
	st, err := c.state(category)
	if err != nil {
		return State{}, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	return st.snapshot(), nil
}

// CurrentError returns the unacknowledged failure, or nil
func (c *Controller) CurrentError() *ErrorState {
	c.errMu.Lock()
	defer c.errMu.Unlock()
	if c.current == nil {
		return nil
	}
	copied := *c.current
	return &copied
}

// AcknowledgeError clears the error slot. It reports whether there was anything to clear.
func (c *Controller) AcknowledgeError() bool {
	return c.clearError()
}

// Subscribe registers for events. Events are dropped for a subscriber whose buffer is full.
func (c *Controller) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	c.subsMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	c.subsMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.subsMu.Lock()
			delete(c.subs, id)
			c.subsMu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (c *Controller) state(category domain.Category) (*categoryState, error) {
	st, ok := c.states[category]
	if !ok {
		return nil, &apperrors.ValidationError{Field: "category", Message: "must be movie or series"}
	}
	return st, nil
}

// reportError surfaces one failed fetch through the recovery policy
func (c *Controller) reportError(category domain.Category, operation string, err error) {
	errState := &ErrorState{
		Category:   category,
		Notice:     recovery.ResolveError(err, category),
		Err:        err,
		OccurredAt: c.now(),
	}

	c.errMu.Lock()
	c.current = errState
	c.errMu.Unlock()

	c.logError("Feed load failed", map[string]interface{}{
		"category":  category.String(),
		"operation": operation,
		"kind":      apperrors.KindOf(err).String(),
		"error":     err.Error(),
	})

	copied := *errState
	c.publish(Event{Type: EventError, Error: &copied})
}

// discardStale drops the outcome of a fetch that a newer refresh superseded.
// A failure is logged but never replaces the error slot of the newer list.
func (c *Controller) discardStale(category domain.Category, operation string, page int, err error) {
	fields := map[string]interface{}{
		"category":  category.String(),
		"operation": operation,
		"page":      page,
	}
	if err == nil {
		c.logDebug("Discarded superseded page", fields)
		return
	}
	fields["kind"] = apperrors.KindOf(err).String()
	fields["error"] = err.Error()
	c.logWarn("Discarded superseded page failure", fields)
}

func (c *Controller) clearError() bool {
	c.errMu.Lock()
	cleared := c.current != nil
	c.current = nil
	c.errMu.Unlock()

	if cleared {
		c.publish(Event{Type: EventErrorCleared})
	}
	return cleared
}

func (c *Controller) publishState(st *categoryState) {
	st.mu.Lock()
	snapshot := st.snapshot()
	st.mu.Unlock()

	c.publish(Event{Type: EventState, State: &snapshot})
}

func (c *Controller) publish(event Event) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	for _, ch := range c.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

func (c *Controller) recordSize(category domain.Category, size int) {
	if c.deps.Metrics != nil {
		c.deps.Metrics.SetFeedSize(category.String(), size)
	}
}

func (c *Controller) logDebug(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Debug(msg, fields)
	}
}

func (c *Controller) logInfo(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Info(msg, fields)
	}
}

func (c *Controller) logWarn(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Warn(msg, fields)
	}
}

func (c *Controller) logError(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Error(msg, fields)
	}
}
