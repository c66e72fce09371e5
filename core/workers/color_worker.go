// ABOUTME: Color worker warms the poster color cache for titles as they enter a feed
// ABOUTME: Provides a bounded worker pool so detail lookups find accent colors already computed

package workers

import (
	"context"
	"sync"
	"time"

	"bingefeed-api/core/domain"
	"bingefeed-api/core/interfaces"
)

// ColorJob is one poster to warm
type ColorJob struct {
	TitleID   int
	PosterURL string
}

// ColorWorker manages the background color extraction pool
type ColorWorker struct {
	colors     interfaces.PosterColorService
	logger     interfaces.Logger
	jobQueue   chan ColorJob
	maxWorkers int
	timeout    time.Duration

	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
	running bool

	seenMu sync.Mutex
	seen   map[string]struct{}
}

// WorkerConfig holds configuration for the color worker
type WorkerConfig struct {
	MaxWorkers int
	QueueSize  int

	// JobTimeout bounds a single download and extraction
	JobTimeout time.Duration
}

// DefaultWorkerConfig returns the default worker configuration
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MaxWorkers: 4,
		QueueSize:  100,
		JobTimeout: 10 * time.Second,
	}
}

// NewColorWorker creates a color worker. logger may be nil.
func NewColorWorker(colors interfaces.PosterColorService, logger interfaces.Logger, config WorkerConfig) *ColorWorker {
	defaults := DefaultWorkerConfig()
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = defaults.MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.JobTimeout <= 0 {
		config.JobTimeout = defaults.JobTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &ColorWorker{
		colors:     colors,
		logger:     logger,
		jobQueue:   make(chan ColorJob, config.QueueSize),
		maxWorkers: config.MaxWorkers,
		timeout:    config.JobTimeout,
		ctx:        ctx,
		cancel:     cancel,
		seen:       make(map[string]struct{}),
	}
}

// Start starts the worker pool
func (w *ColorWorker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}
	if w.ctx.Err() != nil {
		return ErrWorkerStopped
	}

	for i := 0; i < w.maxWorkers; i++ {
		w.wg.Add(1)
		go w.run()
	}

	w.running = true
	return nil
}

// Stop cancels in-flight jobs and waits for every worker to exit
func (w *ColorWorker) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.cancel()
	w.wg.Wait()
	w.running = false
	return nil
}

// Submit queues one job without blocking
func (w *ColorWorker) Submit(job ColorJob) error {
	w.mu.Lock()
	running := w.running
	w.mu.Unlock()
	if !running {
		return ErrWorkerNotRunning
	}

	select {
	case w.jobQueue <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Prewarm queues every poster not seen before and returns how many were queued.
// Posters dropped on a full queue are forgotten so a later call can retry them.
func (w *ColorWorker) Prewarm(items []domain.MediaItem) int {
	queued := 0
	for _, item := range items {
		url := item.BestPosterURL()
		if url == "" || !w.markSeen(url) {
			continue
		}
		if err := w.Submit(ColorJob{TitleID: item.ID, PosterURL: url}); err != nil {
			w.forget(url)
			if err == ErrWorkerNotRunning {
				return queued
			}
			continue
		}
		queued++
	}
	return queued
}

func (w *ColorWorker) run() {
	defer w.wg.Done()

	for {
		select {
		case job := <-w.jobQueue:
			w.process(job)
		case <-w.ctx.Done():
			return
		}
	}
}

func (w *ColorWorker) process(job ColorJob) {
	ctx, cancel := context.WithTimeout(w.ctx, w.timeout)
	defer cancel()

	start := time.Now()
	if _, err := w.colors.ExtractColor(ctx, job.PosterURL); err != nil {
		w.forget(job.PosterURL)
		if w.logger != nil {
			w.logger.Debug("Poster color warm failed", map[string]interface{}{
				"title_id": job.TitleID,
				"error":    err.Error(),
			})
		}
		return
	}

	if w.logger != nil {
		w.logger.Debug("Poster color warmed", map[string]interface{}{
			"title_id":    job.TitleID,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
}

// markSeen reports whether url was newly added
func (w *ColorWorker) markSeen(url string) bool {
	w.seenMu.Lock()
	defer w.seenMu.Unlock()
	if _, ok := w.seen[url]; ok {
		return false
	}
	w.seen[url] = struct{}{}
	return true
}

func (w *ColorWorker) forget(url string) {
	w.seenMu.Lock()
	delete(w.seen, url)
	w.seenMu.Unlock()
}

// Error definitions
var (
	ErrWorkerNotRunning = &WorkerError{Message: "worker pool is not running"}
	ErrWorkerStopped    = &WorkerError{Message: "worker pool was stopped"}
	ErrQueueFull        = &WorkerError{Message: "job queue is full"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
