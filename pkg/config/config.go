// ABOUTME: Configuration management for the service with environment variable support
// ABOUTME: Covers server, cache, render, and notification settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration. It is loaded once at startup
// and threaded explicitly into the render and delivery entry points; nothing
// reads it ambiently.
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache backend configuration
	Cache CacheConfig

	// Render contains rendering configuration
	Render RenderConfig

	// Notifications contains notification configuration
	Notifications NotificationConfig

	// PresetsPath is an optional TOML file with named format presets
	PresetsPath string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP listen port
	Port string

	// RateLimit is the allowed requests per second per client, 0 disables
	RateLimit int

	// RateBurst is the rate limiter burst size
	RateBurst int
}

// CacheConfig holds cache backend configuration for extracted page metadata
type CacheConfig struct {
	// Type selects the backend: memory, redis, or sqlite
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// RenderConfig holds the configuration a render pass consumes
type RenderConfig struct {
	// LineFeedStyle is "lf" or "crlf"
	LineFeedStyle string

	// ReportErrors controls whether extraction problems are substituted
	// inline as placeholder text; when false the fields stay blank
	ReportErrors bool
}

// LineFeed returns the separator string for the configured style.
func (r RenderConfig) LineFeed() string {
	if r.LineFeedStyle == "crlf" {
		return "\r\n"
	}
	return "\n"
}

// NotificationConfig holds notification configuration
type NotificationConfig struct {
	// Enabled globally switches outcome notifications; when false,
	// failures are logged only
	Enabled bool

	// TimeoutSeconds is how long a notification stays before auto-clearing
	TimeoutSeconds int

	// IconURL optionally points at an icon image shown on outcome
	// notifications; empty means no icon
	IconURL string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8045"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 20),
			RateBurst: getEnvAsIntOrDefault("RATE_BURST", 40),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "tabclip-cache.db"),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		Render: RenderConfig{
			LineFeedStyle: getEnvOrDefault("LINE_FEED", "lf"),
			ReportErrors:  getEnvAsBoolOrDefault("REPORT_EXTRACTION_ERRORS", true),
		},
		Notifications: NotificationConfig{
			Enabled:        getEnvAsBoolOrDefault("NOTIFICATIONS_ENABLED", true),
			TimeoutSeconds: getEnvAsIntOrDefault("NOTIFICATION_TIMEOUT", 10),
			IconURL:        getEnvOrDefault("NOTIFICATION_ICON_URL", ""),
		},
		PresetsPath: getEnvOrDefault("FORMAT_PRESETS_PATH", ""),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Render.LineFeedStyle != "lf" && c.Render.LineFeedStyle != "crlf" {
		return errors.New("line feed style must be 'lf' or 'crlf'")
	}

	if c.Notifications.TimeoutSeconds < 1 {
		return errors.New("notification timeout must be at least 1 second")
	}

	return nil
}
