// ABOUTME: Session-scoped in-memory cache backed by patrickmn/go-cache
// ABOUTME: Entries never outlive the process; a zero TTL uses the cache default

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	// DefaultTTL applies to entries stored with a zero TTL
	DefaultTTL = 15 * time.Minute

	defaultCleanupInterval = 5 * time.Minute
)

// ErrCacheMiss is returned when a key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

// MemoryCache implements the Cache interface using in-memory storage
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache creates a cache with the default TTL
func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithTTL(DefaultTTL, defaultCleanupInterval)
}

// NewMemoryCacheWithTTL creates a cache with the given default TTL and purge interval
func NewMemoryCacheWithTTL(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}
	return &MemoryCache{items: gocache.New(defaultTTL, cleanupInterval)}
}

// Get retrieves a copy of a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, found := c.items.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, ErrCacheMiss
	}

	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a copy of value with the given TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	c.items.Set(key, valueCopy, ttl)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.items.Delete(key)
	return nil
}

// Count returns the number of entries, including expired ones not yet purged
func (c *MemoryCache) Count() int {
	return c.items.ItemCount()
}

// Flush drops every entry
func (c *MemoryCache) Flush() {
	c.items.Flush()
}
