package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// maxRetryDelay caps a single wait however many attempts are configured.
const maxRetryDelay = 2 * time.Second

// RetryPolicy bounds how often a statement is retried when the store is busy.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// newBackOff doubles BaseDelay per retry with 50% jitter and stops after
// MaxAttempts tries in total.
func (p RetryPolicy) newBackOff(ctx context.Context) backoff.BackOff {
	expo := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(p.BaseDelay),
		backoff.WithRandomizationFactor(0.5),
		backoff.WithMultiplier(2),
		backoff.WithMaxInterval(maxRetryDelay),
		backoff.WithMaxElapsedTime(0),
	)

	retries := uint64(0)
	if p.MaxAttempts > 1 {
		retries = uint64(p.MaxAttempts - 1)
	}
	return backoff.WithContext(backoff.WithMaxRetries(expo, retries), ctx)
}

// IsTransient reports whether err is a busy/locked condition of the store.
func IsTransient(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}
	return false
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

type retrier struct {
	policy RetryPolicy
	log    *zap.Logger
}

// do runs fn until it succeeds, fails with a non-transient error, or the
// attempts are exhausted. The last error is returned as is, or the context
// error when ctx ends while waiting.
func (r retrier) do(ctx context.Context, op string, fn func() error) error {
	attempt := 0
	return backoff.RetryNotify(func() error {
		attempt++
		err := fn()
		if err != nil && !IsTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}, r.policy.newBackOff(ctx), func(err error, delay time.Duration) {
		r.log.Warn("store busy, retrying",
			zap.String("op", op),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
	})
}

// conn applies the retry policy uniformly to execute, fetch-one and fetch-many.
type conn struct {
	db dbConn
	retrier
}

type scanner interface {
	Scan(dest ...any) error
}

func (c *conn) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var result sql.Result
	err := c.do(ctx, "exec", func() error {
		var err error
		result, err = c.db.ExecContext(ctx, query, args...)
		return err
	})
	return result, err
}

// fetchOne returns sql.ErrNoRows unwrapped when the query matches nothing.
func fetchOne[T any](ctx context.Context, c *conn, scan func(scanner) (T, error), query string, args ...any) (T, error) {
	var item T
	err := c.do(ctx, "fetch-one", func() error {
		var err error
		item, err = scan(c.db.QueryRowContext(ctx, query, args...))
		return err
	})
	return item, err
}

func fetchMany[T any](ctx context.Context, c *conn, scan func(scanner) (T, error), query string, args ...any) ([]T, error) {
	var items []T
	err := c.do(ctx, "fetch-many", func() error {
		items = items[:0]

		rows, err := c.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			item, err := scan(rows)
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		return rows.Err()
	})
	return items, err
}
