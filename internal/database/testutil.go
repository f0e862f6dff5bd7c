package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/diegoclair/shift-timeslots/migrator/sqlite"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	// Create in-memory SQLite database
	sqlDB, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on&_txlock=immediate")
	require.NoError(t, err, "Failed to create test database")

	// a second pooled connection would open a second, empty database
	sqlDB.SetMaxOpenConns(1)

	// Run migrations to create tables
	err = sqlite.Migrate(sqlDB)
	require.NoError(t, err, "Failed to run migrations on test database")

	return &DB{
		conn: sqlDB,
		retrier: retrier{
			policy: RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond},
			log:    zap.NewNop(),
		},
	}
}

// CleanupTestDB closes the test database
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	err := db.Close()
	require.NoError(t, err, "Failed to close test database")
}

// SeedUser inserts a person the availability and assignment rows can point to
func SeedUser(t *testing.T, db *DB, name string) int64 {
	t.Helper()

	result, err := db.conn.Exec(`INSERT INTO users (name) VALUES (?)`, name)
	require.NoError(t, err, "Failed to seed user")

	id, err := result.LastInsertId()
	require.NoError(t, err)
	return id
}

// SeedAvailability inserts an availability row for date (YYYY-MM-DD) and time label
func SeedAvailability(t *testing.T, db *DB, userID int64, date, timeLabel string, available bool) {
	t.Helper()

	_, err := db.conn.Exec(
		`INSERT INTO availability (user_id, date, time, is_available) VALUES (?, ?, ?, ?)`,
		userID, date, timeLabel, available,
	)
	require.NoError(t, err, "Failed to seed availability")
}

// SeedAssignment inserts an assignment row for date (YYYY-MM-DD) and time label
func SeedAssignment(t *testing.T, db *DB, userID int64, date, timeLabel string) {
	t.Helper()

	_, err := db.conn.Exec(
		`INSERT INTO assignments (user_id, date, time) VALUES (?, ?, ?)`,
		userID, date, timeLabel,
	)
	require.NoError(t, err, "Failed to seed assignment")
}
