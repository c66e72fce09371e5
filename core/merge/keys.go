// ABOUTME: Display key generation for feed members
// ABOUTME: Keys are "<id>_<timestamp>[_suffix]" with strictly increasing timestamps

package merge

import (
	"fmt"
	"sync"
	"time"
)

// KeyGenerator issues display keys for catalog items
type KeyGenerator interface {
	// Next returns a fresh display key for the catalog id.
	// An empty suffix produces "<id>_<timestamp>".
	Next(id int, suffix string) string
}

// MonotonicKeys stamps keys with the current time in microseconds.
// Two calls on the same generator never share a timestamp.
type MonotonicKeys struct {
	mu         sync.Mutex
	now        func() time.Time
	lastMicros int64
}

// NewMonotonicKeys creates a generator backed by the wall clock
func NewMonotonicKeys() *MonotonicKeys {
	return NewMonotonicKeysWithClock(time.Now)
}

// NewMonotonicKeysWithClock creates a generator backed by the given clock
func NewMonotonicKeysWithClock(now func() time.Time) *MonotonicKeys {
	if now == nil {
		now = time.Now
	}
	return &MonotonicKeys{now: now}
}

// Next implements KeyGenerator
func (g *MonotonicKeys) Next(id int, suffix string) string {
	g.mu.Lock()
	stamp := g.now().UnixMicro()
	if stamp <= g.lastMicros {
		stamp = g.lastMicros + 1
	}
	g.lastMicros = stamp
	g.mu.Unlock()

	key := fmt.Sprintf("%d_%d.%06d", id, stamp/1_000_000, stamp%1_000_000)
	if suffix != "" {
		key += "_" + suffix
	}
	return key
}
