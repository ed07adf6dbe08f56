// Package interfaces defines the narrow collaborator contracts consumed by
// the core. These interfaces allow for dependency injection and make the
// rendering and delivery logic testable without a browser or an OS clipboard.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations. Implementations can be
// in-memory, Redis, SQLite, or any other caching solution. The core uses it
// to memoize extracted page metadata per URL.
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
