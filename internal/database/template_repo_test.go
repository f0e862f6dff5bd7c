package database

import (
	"context"
	"testing"

	"github.com/diegoclair/shift-timeslots/internal/domain"
	"github.com/diegoclair/shift-timeslots/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTemplate(t *testing.T, repo *templateRepo, name string, isDefault bool) *entity.Template {
	t.Helper()

	template := &entity.Template{Name: name, CreatedBy: 1, IsDefault: isDefault}
	require.NoError(t, repo.Create(context.Background(), template), "Failed to create template")
	return template
}

func TestTemplateRepository_CreateAndGetByID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newTemplateRepo(db.wrap(db.conn)).(*templateRepo)

	template := &entity.Template{Name: "Standard", Description: "Weekdays", CreatedBy: 4}
	err := repo.Create(ctx, template)
	require.NoError(t, err)
	assert.NotZero(t, template.ID)
	assert.False(t, template.CreatedAt.IsZero())

	found, err := repo.GetByID(ctx, template.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Standard", found.Name)
	assert.Equal(t, "Weekdays", found.Description)
	assert.Equal(t, int64(4), found.CreatedBy)
	assert.False(t, found.IsDefault)

	// Test not found
	notFound, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, notFound)
}

func TestTemplateRepository_Default(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newTemplateRepo(db.wrap(db.conn)).(*templateRepo)

	none, err := repo.GetDefault(ctx)
	require.NoError(t, err)
	assert.Nil(t, none)

	first := createTestTemplate(t, repo, "Bravo", true)
	second := createTestTemplate(t, repo, "Alpha", false)

	// a second default is rejected by the store itself
	err = repo.SetDefault(ctx, second.ID)
	require.Error(t, err)

	require.NoError(t, repo.ClearDefault(ctx))
	require.NoError(t, repo.SetDefault(ctx, second.ID))

	current, err := repo.GetDefault(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, second.ID, current.ID)

	all, err := repo.GetAllDefaultFirst(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestTemplateRepository_SlotsAndDelete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newTemplateRepo(db.wrap(db.conn)).(*templateRepo)

	template := createTestTemplate(t, repo, "Weekend", false)
	slots := []*entity.TemplateSlot{
		{TemplateID: template.ID, DayOfWeek: 6, Time: "10:00am", Label: "Brunch", SlotOrder: 0},
		{TemplateID: template.ID, DayOfWeek: 5, Time: "8:00pm", Label: "Night", SlotOrder: 1},
		{TemplateID: template.ID, DayOfWeek: 5, Time: "10:00am", Label: "Brunch", SlotOrder: 0},
	}
	for _, slot := range slots {
		require.NoError(t, repo.CreateSlot(ctx, slot))
		assert.NotZero(t, slot.ID)
	}

	// same day and order twice
	err := repo.CreateSlot(ctx, &entity.TemplateSlot{TemplateID: template.ID, DayOfWeek: 6, Time: "1:00pm", Label: "Dup", SlotOrder: 0})
	require.ErrorIs(t, err, domain.ErrValidation)

	found, err := repo.GetSlots(ctx, template.ID)
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, "10:00am", found[0].Time)
	assert.Equal(t, 5, found[0].DayOfWeek)
	assert.Equal(t, "8:00pm", found[1].Time)
	assert.Equal(t, 6, found[2].DayOfWeek)

	require.NoError(t, repo.Delete(ctx, template.ID))

	deleted, err := repo.GetByID(ctx, template.ID)
	require.NoError(t, err)
	assert.Nil(t, deleted)

	orphans, err := repo.GetSlots(ctx, template.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)
}
