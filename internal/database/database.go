package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/partnerlink/partnerlink/internal/config"
)

// PoolOptions controls connection pool sizing.
type PoolOptions struct {
	MaxConns int32
	MinConns int32
}

// DefaultPoolOptions are used when no options are given.
var DefaultPoolOptions = PoolOptions{MaxConns: config.DefaultMaxConns, MinConns: config.DefaultMinConns}

// DB wraps a pgxpool.Pool for database operations.
type DB struct {
	pool *pgxpool.Pool
}

// Pool returns the underlying connection pool.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// New creates a new database connection pool with default sizing.
func New(ctx context.Context, databaseURL string) (*DB, error) {
	return NewWithOptions(ctx, databaseURL, DefaultPoolOptions)
}

// NewWithOptions creates a new database connection pool and pings it.
func NewWithOptions(ctx context.Context, databaseURL string, opts PoolOptions) (*DB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	if opts.MaxConns > 0 {
		config.MaxConns = opts.MaxConns
	}
	if opts.MinConns > 0 && opts.MinConns <= config.MaxConns {
		config.MinConns = opts.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("database connected",
		"max_conns", config.MaxConns,
		"min_conns", config.MinConns,
	)

	return &DB{pool: pool}, nil
}

// Close closes the database connection pool.
func (db *DB) Close() {
	db.pool.Close()
	slog.Info("database connection closed")
}
