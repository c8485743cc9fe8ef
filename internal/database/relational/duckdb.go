// Package relational persists fixture relations into DuckDB files.
package relational

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb" // Register DuckDB driver
)

// =============================================================================
// DATABASE CLIENT
// =============================================================================

// DatabaseConfig holds connection-level options for a fixture database.
type DatabaseConfig struct {
	Threads  int           // DuckDB worker threads (0 = DuckDB default)
	Timeout  time.Duration // Timeout for the initial ping (0 = none)
	ReadOnly bool          // Open an existing file without write access
}

// DuckDBClient owns the *sql.DB handle of one fixture file.
type DuckDBClient struct {
	db     *sql.DB
	config DatabaseConfig
}

// DuckDBOption configures the DuckDB client.
type DuckDBOption func(*DuckDBClient)

// WithThreads sets the number of DuckDB threads.
func WithThreads(n int) DuckDBOption {
	return func(c *DuckDBClient) {
		c.config.Threads = n
	}
}

// WithTimeout bounds the connectivity check done while opening.
func WithTimeout(d time.Duration) DuckDBOption {
	return func(c *DuckDBClient) {
		c.config.Timeout = d
	}
}

// WithReadOnly opens an existing file for reading only. Opening a missing
// file fails instead of creating it.
func WithReadOnly() DuckDBOption {
	return func(c *DuckDBClient) {
		c.config.ReadOnly = true
	}
}

// NewDuckDBClient opens a DuckDB database.
// An empty dsn or ":memory:" opens an in-memory database, anything else is a file path.
func NewDuckDBClient(dsn string, opts ...DuckDBOption) (*DuckDBClient, error) {
	client := &DuckDBClient{}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if dsn == "" {
		dsn = ":memory:"
	}
	if client.config.ReadOnly && dsn != ":memory:" {
		dsn += "?access_mode=READ_ONLY"
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}

	ctx := context.Background()
	if client.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, client.config.Timeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping duckdb: %w", err)
	}

	// One writer per fixture file; a single connection keeps the transaction
	// and the checkpoint on the same session.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	client.db = db

	if client.config.Threads > 0 {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA threads=%d", client.config.Threads)); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("setting threads: %w", err)
		}
	}

	return client, nil
}

// DB returns the underlying sql.DB instance.
func (c *DuckDBClient) DB() *sql.DB {
	return c.db
}

// Close releases database resources.
func (c *DuckDBClient) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// NewInMemoryDB creates a new in-memory DuckDB database.
func NewInMemoryDB(opts ...DuckDBOption) (*DuckDBClient, error) {
	return NewDuckDBClient(":memory:", opts...)
}

// NewFileDB creates or opens a file-based DuckDB database.
func NewFileDB(path string, opts ...DuckDBOption) (*DuckDBClient, error) {
	if path == "" {
		return nil, fmt.Errorf("database path required")
	}
	return NewDuckDBClient(path, opts...)
}
