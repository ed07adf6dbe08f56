// ABOUTME: SQLite-based cache implementation for persistent metadata caching
// ABOUTME: File-backed cache that survives service restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrCacheMiss is returned when a key is not present or has expired.
var ErrCacheMiss = errors.New("cache: key not found")

// Client implements the Cache interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
}

// NewSQLiteCache opens (or creates) the cache database at filePath and
// starts the background expiry sweep.
func NewSQLiteCache(filePath string) (*Client, error) {
	if filePath == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{db: db, filePath: filePath}

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go client.cleanupRoutine()

	return client, nil
}

func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_expiry ON cache(expiry);
	`
	_, err := c.db.Exec(query)
	return err
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	var value []byte
	var expiry int64

	query := "SELECT value, expiry FROM cache WHERE key = ? AND expiry > ?"
	err := c.db.QueryRowContext(ctx, query, key, time.Now().Unix()).Scan(&value, &expiry)

	if err == sql.ErrNoRows {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value in the cache with TTL
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	expiry := time.Now().Add(ttl).Unix()

	query := "INSERT OR REPLACE INTO cache (key, value, expiry) VALUES (?, ?, ?)"
	if _, err := c.db.ExecContext(ctx, query, key, value, expiry); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	query := "DELETE FROM cache WHERE key = ?"
	if _, err := c.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}
	return nil
}

// cleanupRoutine periodically removes expired entries
func (c *Client) cleanupRoutine() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

func (c *Client) cleanup() {
	query := "DELETE FROM cache WHERE expiry <= ?"
	_, _ = c.db.Exec(query, time.Now().Unix())
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}
