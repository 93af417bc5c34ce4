// Package database wraps a pgx-backed *sql.DB with the conveniences the
// repositories rely on: transactional helpers, bounded per-operation
// timeouts, and a transient-failure sentinel for the error mapper.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Lslreddy/surplus-to-success/pkg/logger"
)

// ErrUnavailable marks persistence failures that are worth retrying:
// connection loss, pool exhaustion, or an operation exceeding its deadline.
// Check with errors.Is.
var ErrUnavailable = errors.New("persistence unavailable")

// OperationTimeout bounds every statement and transaction issued through
// this package so no repository call can block indefinitely.
const OperationTimeout = 5 * time.Second

// Database is the shared Postgres handle for all bounded contexts.
type Database struct {
	db  *sql.DB
	log logger.Logger
}

// NewPool opens a connection pool against url and verifies connectivity.
func NewPool(ctx context.Context, url string, log logger.Logger) (*Database, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Database{db: db, log: log}, nil
}

// DB returns the underlying *sql.DB for single-statement queries.
func (d *Database) DB() *sql.DB {
	return d.db
}

// WithTx runs fn inside a transaction with a bounded deadline.
// The transaction is rolled back if fn returns an error or panics,
// committed otherwise. Timeouts surface as ErrUnavailable.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	ctx, cancel := context.WithTimeout(ctx, OperationTimeout)
	defer cancel()

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return WrapTransient(fmt.Errorf("begin tx: %w", err))
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			d.log.ErrorContext(ctx, "tx rollback failed", "error", rbErr)
		}
		return WrapTransient(err)
	}

	if err := tx.Commit(); err != nil {
		return WrapTransient(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

// QueryCtx derives a context bounded by OperationTimeout for single-statement
// repository calls. The caller must invoke the returned cancel func.
func (d *Database) QueryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, OperationTimeout)
}

// Ping checks database connectivity for the health endpoint.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

// Close shuts down the pool.
func (d *Database) Close() {
	_ = d.db.Close()
}

// WrapTransient tags deadline and cancellation failures with ErrUnavailable
// so callers can distinguish retryable store trouble from domain errors.
// Other errors pass through unchanged.
func WrapTransient(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}
