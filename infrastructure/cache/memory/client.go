// ABOUTME: In-memory cache implementation backed by go-cache
// ABOUTME: TTL support with periodic expired-item cleanup

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrCacheMiss is returned when a key is not present or has expired.
var ErrCacheMiss = errors.New("cache: key not found")

// MemoryCache implements the Cache interface using go-cache
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates an in-memory cache. defaultExpiration applies to
// entries stored with a zero TTL; expired items are purged every
// cleanupInterval.
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	val, found := c.cache.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}

	data, ok := val.([]byte)
	if !ok {
		return nil, ErrCacheMiss
	}

	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a value in the cache with the given TTL. A zero TTL uses the
// cache's default expiration.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(key, valueCopy, ttl)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Delete(key)
	return nil
}
