package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diegoclair/shift-timeslots/internal/config"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// dbConn interface allows repositories to work with both *sql.DB and *sql.Tx
type dbConn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type DB struct {
	conn    *sql.DB
	retrier retrier
}

// New opens the SQLite store. Foreign keys are enforced on every pooled
// connection and transactions begin with BEGIN IMMEDIATE so writers serialize.
func New(cfg *config.Config, log *zap.Logger) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_txlock=immediate&_busy_timeout=%d",
		cfg.Database.Path, cfg.Database.BusyTimeoutMS)
	if cfg.Database.Path != ":memory:" {
		dsn += "&_journal_mode=WAL"
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// every pooled connection to :memory: would be a separate database
	if cfg.Database.Path == ":memory:" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database opened", zap.String("path", cfg.Database.Path))

	return &DB{
		conn: conn,
		retrier: retrier{
			policy: RetryPolicy{
				MaxAttempts: cfg.Retry.MaxAttempts,
				BaseDelay:   cfg.Retry.BaseDelay,
			},
			log: log,
		},
	}, nil
}

func (db *DB) DB() *sql.DB {
	return db.conn
}

func (db *DB) Close() error {
	return db.conn.Close()
}

// begin opens a transaction, retrying while the store reports contention.
func (db *DB) begin(ctx context.Context) (*sql.Tx, error) {
	var tx *sql.Tx
	err := db.retrier.do(ctx, "begin", func() error {
		var err error
		tx, err = db.conn.BeginTx(ctx, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// wrap decorates a connection or transaction with the retry policy.
func (db *DB) wrap(c dbConn) *conn {
	return &conn{db: c, retrier: db.retrier}
}
