// ABOUTME: Redis cache implementation using the go-redis client
// ABOUTME: Shared metadata cache for multi-browser setups pointing at one Redis

package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"tabclip-api/pkg/config"
)

// ErrCacheMiss is returned when a key is not present in Redis.
var ErrCacheMiss = errors.New("cache: key not found")

// RedisCache implements the Cache interface using Redis
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis cache and verifies connectivity before
// returning.
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client}, nil
}

// Get retrieves a value from Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return val, nil
}

// Set stores a value in Redis with the given TTL; a zero TTL stores without
// expiration.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis. Deleting an absent key is not an error.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	c.client.Del(ctx, key)
	return nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
