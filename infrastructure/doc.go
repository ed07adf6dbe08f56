// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging, the OS clipboard, desktop
// notifications, and the browser extension bridge.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation using go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: File-backed cache that survives restarts
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured logger implementation backed by logrus
// - clipboard/system: OS clipboard adapter
// - surface/ws: WebSocket bridge driving the browser extension
// - notify: Desktop notification adapter
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour, 10*time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Extension Bridge
//
// The WebSocket bridge holds a single connection from the browser extension
// and multiplexes request/response pairs over it:
//
//	bridge := ws.NewBridge(logger)
//	router.Get("/ws", bridge.HandleUpgrade)
package infrastructure
