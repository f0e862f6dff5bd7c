package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftRepository_InRange(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newShiftRepo(db.wrap(db.conn))

	carla := SeedUser(t, db, "Carla")
	diego := SeedUser(t, db, "Diego")

	SeedAvailability(t, db, carla, "2025-03-16", "9:30pm", true)
	SeedAvailability(t, db, diego, "2025-03-10", "8:00am", true)
	SeedAvailability(t, db, diego, "2025-03-11", "8:00am", false)
	SeedAvailability(t, db, carla, "2025-03-17", "8:00am", true)
	SeedAssignment(t, db, carla, "2025-03-10", "8:00am")
	SeedAssignment(t, db, diego, "2025-03-09", "8:00am")

	from := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 0, 6)

	available, err := repo.GetAvailableInRange(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "Diego", available[0].UserName)
	assert.Equal(t, "2025-03-10", available[0].Date)
	assert.Equal(t, "Carla", available[1].UserName)
	assert.Equal(t, "2025-03-16", available[1].Date)

	assignments, err := repo.GetAssignmentsInRange(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, carla, assignments[0].UserID)
	assert.Equal(t, "8:00am", assignments[0].Time)
}
