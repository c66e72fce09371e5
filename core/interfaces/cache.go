// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for session-scoped cache operations.
// Implementations keep values in memory only; nothing outlives the process.
//
// Example usage:
//
//	cache := someCache // implements Cache interface
//
//	// Store a title detail for fifteen minutes
//	err := cache.Set(ctx, "detail:3173903", payload, 15*time.Minute)
//
//	// Retrieve it later in the session
//	data, err := cache.Get(ctx, "detail:3173903")
//	if err != nil {
//		// handle error or cache miss
//	}
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the implementation default applies.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
