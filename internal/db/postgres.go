// Package db opens the shared Postgres pool and embeds the schema migrations.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotPostgresDSN rejects connection strings for anything but Postgres
// before the driver gets a chance to misparse them.
var ErrNotPostgresDSN = errors.New("DATABASE_URL must be a postgres:// or postgresql:// URL")

// Open opens a Postgres pool for the given DSN and verifies connectivity.
// Caller must Close it. The pool is kept small: every service binary holds
// its own pool against the same shared database.
func Open(dsn string) (*sql.DB, error) {
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return nil, ErrNotPostgresDSN
	}
	pool, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	pool.SetMaxOpenConns(10)
	pool.SetMaxIdleConns(5)
	pool.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return pool, nil
}
