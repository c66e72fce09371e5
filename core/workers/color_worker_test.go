package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bingefeed-api/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingColors struct {
	mu    sync.Mutex
	urls  []string
	done  chan string
	fail  bool
	block bool
}

func newRecordingColors() *recordingColors {
	return &recordingColors{done: make(chan string, 16)}
}

func (r *recordingColors) ExtractColor(ctx context.Context, url string) (*domain.RGBColor, error) {
	if r.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	r.mu.Lock()
	r.urls = append(r.urls, url)
	r.mu.Unlock()
	defer func() { r.done <- url }()
	if r.fail {
		return nil, errors.New("download failed")
	}
	return &domain.RGBColor{R: 1, G: 2, B: 3}, nil
}

func waitFor(t *testing.T, ch <-chan string, n int) []string {
	t.Helper()
	var got []string
	for len(got) < n {
		select {
		case url := <-ch:
			got = append(got, url)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %d of %d jobs", len(got), n)
		}
	}
	return got
}

func TestColorWorker_SubmitBeforeStart(t *testing.T) {
	w := NewColorWorker(newRecordingColors(), nil, WorkerConfig{})

	err := w.Submit(ColorJob{TitleID: 1, PosterURL: "http://img/1.jpg"})
	assert.Equal(t, ErrWorkerNotRunning, err)
}

func TestColorWorker_PrewarmDeduplicates(t *testing.T) {
	colors := newRecordingColors()
	w := NewColorWorker(colors, nil, WorkerConfig{MaxWorkers: 2})
	require.NoError(t, w.Start())
	defer w.Stop()

	items := []domain.MediaItem{
		{ID: 1, PosterLarge: "http://img/1.jpg"},
		{ID: 2, Poster: "http://img/2.jpg"},
		{ID: 3},
	}

	assert.Equal(t, 2, w.Prewarm(items))
	assert.Equal(t, 0, w.Prewarm(items))

	got := waitFor(t, colors.done, 2)
	assert.ElementsMatch(t, []string{"http://img/1.jpg", "http://img/2.jpg"}, got)
}

func TestColorWorker_FailedJobCanRetry(t *testing.T) {
	colors := newRecordingColors()
	colors.fail = true
	w := NewColorWorker(colors, nil, WorkerConfig{MaxWorkers: 1})
	require.NoError(t, w.Start())
	defer w.Stop()

	items := []domain.MediaItem{{ID: 1, Poster: "http://img/1.jpg"}}
	require.Equal(t, 1, w.Prewarm(items))
	waitFor(t, colors.done, 1)

	assert.Eventually(t, func() bool {
		return w.Prewarm(items) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestColorWorker_QueueFull(t *testing.T) {
	colors := newRecordingColors()
	colors.block = true
	w := NewColorWorker(colors, nil, WorkerConfig{MaxWorkers: 1, QueueSize: 1})
	require.NoError(t, w.Start())
	defer w.Stop()

	// One job sits in the blocked worker, one fills the queue
	require.NoError(t, w.Submit(ColorJob{TitleID: 1, PosterURL: "a"}))
	assert.Eventually(t, func() bool {
		return w.Submit(ColorJob{TitleID: 2, PosterURL: "b"}) == nil
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, ErrQueueFull, w.Submit(ColorJob{TitleID: 3, PosterURL: "c"}))
}

func TestColorWorker_StopIsFinal(t *testing.T) {
	w := NewColorWorker(newRecordingColors(), nil, WorkerConfig{})
	require.NoError(t, w.Start())
	require.NoError(t, w.Start())
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())

	assert.Equal(t, ErrWorkerStopped, w.Start())
	assert.Equal(t, 0, w.Prewarm([]domain.MediaItem{{ID: 1, Poster: "x"}}))
}
