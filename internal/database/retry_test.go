package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: true},
		{name: "locked", err: sqlite3.Error{Code: sqlite3.ErrLocked}, want: true},
		{name: "wrapped busy", err: fmt.Errorf("failed to exec: %w", sqlite3.Error{Code: sqlite3.ErrBusy}), want: true},
		{name: "constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

func TestRetryPolicy_newBackOff(t *testing.T) {
	t.Run("Should double the delay with jitter and stop after max attempts", func(t *testing.T) {
		policy := RetryPolicy{MaxAttempts: 5, BaseDelay: 10 * time.Millisecond}
		b := policy.newBackOff(context.Background())
		b.Reset()

		base := policy.BaseDelay
		for retry := 1; retry < policy.MaxAttempts; retry++ {
			delay := b.NextBackOff()
			assert.GreaterOrEqual(t, delay, base/2, "retry %d", retry)
			assert.LessOrEqual(t, delay, base+base/2+time.Nanosecond, "retry %d", retry)
			base *= 2
		}
		assert.Equal(t, backoff.Stop, b.NextBackOff())
	})

	t.Run("Should keep delays positive and capped for large max attempts", func(t *testing.T) {
		policy := RetryPolicy{MaxAttempts: 200, BaseDelay: 10 * time.Millisecond}
		b := policy.newBackOff(context.Background())
		b.Reset()

		for retry := 1; retry < policy.MaxAttempts; retry++ {
			delay := b.NextBackOff()
			require.Greater(t, delay, time.Duration(0), "retry %d", retry)
			require.LessOrEqual(t, delay, maxRetryDelay+maxRetryDelay/2+time.Nanosecond, "retry %d", retry)
		}
	})

	t.Run("Should never retry when max attempts is one", func(t *testing.T) {
		b := RetryPolicy{MaxAttempts: 1, BaseDelay: time.Millisecond}.newBackOff(context.Background())
		b.Reset()
		assert.Equal(t, backoff.Stop, b.NextBackOff())
	})
}

func TestRetrier_do(t *testing.T) {
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	r := retrier{policy: RetryPolicy{MaxAttempts: 3, BaseDelay: time.Microsecond}, log: zap.NewNop()}

	t.Run("Should retry transient errors until success", func(t *testing.T) {
		calls := 0
		err := r.do(context.Background(), "test", func() error {
			calls++
			if calls < 3 {
				return busy
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Should surface the last transient error when attempts run out", func(t *testing.T) {
		calls := 0
		err := r.do(context.Background(), "test", func() error {
			calls++
			return busy
		})
		require.Error(t, err)
		assert.True(t, IsTransient(err))
		assert.Equal(t, 3, calls)
	})

	t.Run("Should not retry other errors", func(t *testing.T) {
		calls := 0
		err := r.do(context.Background(), "test", func() error {
			calls++
			return errors.New("syntax error")
		})
		require.EqualError(t, err, "syntax error")
		assert.Equal(t, 1, calls)
	})

	t.Run("Should stop waiting when context is done", func(t *testing.T) {
		slow := retrier{policy: RetryPolicy{MaxAttempts: 5, BaseDelay: time.Hour}, log: zap.NewNop()}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		err := slow.do(ctx, "test", func() error {
			calls++
			return busy
		})
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

// flakyConn fails the first calls of each primitive with a busy error.
type flakyConn struct {
	dbConn
	execFailures  int
	queryFailures int
	execCalls     int
	queryCalls    int
}

func (f *flakyConn) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.execCalls++
	if f.execFailures > 0 {
		f.execFailures--
		return nil, sqlite3.Error{Code: sqlite3.ErrBusy}
	}
	return f.dbConn.ExecContext(ctx, query, args...)
}

func (f *flakyConn) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	f.queryCalls++
	if f.queryFailures > 0 {
		f.queryFailures--
		return nil, sqlite3.Error{Code: sqlite3.ErrBusy}
	}
	return f.dbConn.QueryContext(ctx, query, args...)
}

func seedWeeks(t *testing.T, db *DB, weeks ...string) {
	t.Helper()
	for _, week := range weeks {
		_, err := db.conn.Exec(
			`INSERT INTO timeslot_configurations (week_start, created_by, created_at, updated_at) VALUES (?, 1, ?, ?)`,
			week, time.Now(), time.Now(),
		)
		require.NoError(t, err)
	}
}

func scanWeek(row scanner) (string, error) {
	var week string
	err := row.Scan(&week)
	return week, err
}

func TestConn_RetriesTransientFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("Should retry exec until the store accepts the write", func(t *testing.T) {
		db := SetupTestDB(t)
		defer CleanupTestDB(t, db)

		flaky := &flakyConn{dbConn: db.conn, execFailures: 2}
		c := db.wrap(flaky)

		_, err := c.exec(ctx,
			`INSERT INTO timeslot_configurations (week_start, created_by, created_at, updated_at) VALUES (?, 1, ?, ?)`,
			"2025-03-10", time.Now(), time.Now(),
		)
		require.NoError(t, err)
		assert.Equal(t, 3, flaky.execCalls)

		var count int
		require.NoError(t, db.conn.QueryRow(`SELECT COUNT(*) FROM timeslot_configurations`).Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("Should give up exec after max attempts", func(t *testing.T) {
		db := SetupTestDB(t)
		defer CleanupTestDB(t, db)

		flaky := &flakyConn{dbConn: db.conn, execFailures: 10}
		_, err := db.wrap(flaky).exec(ctx, `DELETE FROM timeslot_configurations`)
		require.Error(t, err)
		assert.True(t, IsTransient(err))
		assert.Equal(t, db.retrier.policy.MaxAttempts, flaky.execCalls)
	})

	t.Run("Should retry fetch-one when the scan reports busy", func(t *testing.T) {
		db := SetupTestDB(t)
		defer CleanupTestDB(t, db)
		seedWeeks(t, db, "2025-03-10")

		scans := 0
		week, err := fetchOne(ctx, db.wrap(db.conn), func(row scanner) (string, error) {
			scans++
			week, err := scanWeek(row)
			if err == nil && scans == 1 {
				return "", sqlite3.Error{Code: sqlite3.ErrLocked}
			}
			return week, err
		}, `SELECT week_start FROM timeslot_configurations WHERE week_start = ?`, "2025-03-10")
		require.NoError(t, err)
		assert.Equal(t, "2025-03-10", week)
		assert.Equal(t, 2, scans)
	})

	t.Run("Should not retry fetch-one on no rows", func(t *testing.T) {
		db := SetupTestDB(t)
		defer CleanupTestDB(t, db)

		scans := 0
		_, err := fetchOne(ctx, db.wrap(db.conn), func(row scanner) (string, error) {
			scans++
			return scanWeek(row)
		}, `SELECT week_start FROM timeslot_configurations WHERE week_start = ?`, "2025-03-10")
		require.ErrorIs(t, err, sql.ErrNoRows)
		assert.Equal(t, 1, scans)
	})

	t.Run("Should retry fetch-many when the query reports busy", func(t *testing.T) {
		db := SetupTestDB(t)
		defer CleanupTestDB(t, db)
		seedWeeks(t, db, "2025-03-10", "2025-03-17")

		flaky := &flakyConn{dbConn: db.conn, queryFailures: 1}
		weeks, err := fetchMany(ctx, db.wrap(flaky), scanWeek,
			`SELECT week_start FROM timeslot_configurations ORDER BY week_start`)
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-03-10", "2025-03-17"}, weeks)
		assert.Equal(t, 2, flaky.queryCalls)
	})

	t.Run("Should drop rows of a failed pass before retrying fetch-many", func(t *testing.T) {
		db := SetupTestDB(t)
		defer CleanupTestDB(t, db)
		seedWeeks(t, db, "2025-03-10", "2025-03-17", "2025-03-24")

		scans := 0
		weeks, err := fetchMany(ctx, db.wrap(db.conn), func(row scanner) (string, error) {
			scans++
			// first pass fails on its second row
			if scans == 2 {
				return "", sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return scanWeek(row)
		}, `SELECT week_start FROM timeslot_configurations ORDER BY week_start`)
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-03-10", "2025-03-17", "2025-03-24"}, weeks)
		assert.Equal(t, 5, scans)
	})
}
