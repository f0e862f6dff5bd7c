package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/shift-timeslots/internal/domain"
	"github.com/diegoclair/shift-timeslots/internal/domain/contract"
	"github.com/diegoclair/shift-timeslots/internal/domain/entity"
)

type configurationRepo struct {
	db *conn
}

func newConfigurationRepo(db *conn) contract.ConfigurationRepo {
	return &configurationRepo{db: db}
}

const configurationColumns = `id, week_start, created_by, created_at, updated_at`

func scanConfiguration(row scanner) (*entity.Configuration, error) {
	config := &entity.Configuration{}
	var weekStart string
	err := row.Scan(
		&config.ID,
		&weekStart,
		&config.CreatedBy,
		&config.CreatedAt,
		&config.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	config.WeekStart, err = domain.ParseDate(weekStart)
	if err != nil {
		return nil, err
	}

	return config, nil
}

func scanTimeslot(row scanner) (*entity.Timeslot, error) {
	var id, configID int64
	slot := &entity.Timeslot{}
	err := row.Scan(
		&id,
		&configID,
		&slot.DayOfWeek,
		&slot.Time,
		&slot.Label,
		&slot.SlotOrder,
	)
	if err != nil {
		return nil, err
	}

	slot.ID = &id
	slot.ConfigID = &configID
	return slot, nil
}

func (r *configurationRepo) Create(ctx context.Context, config *entity.Configuration) error {
	query := `
		INSERT INTO timeslot_configurations (week_start, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`

	now := time.Now()
	if config.CreatedAt.IsZero() {
		config.CreatedAt = now
	}
	if config.UpdatedAt.IsZero() {
		config.UpdatedAt = now
	}

	result, err := r.db.exec(ctx, query,
		domain.FormatDate(config.WeekStart),
		config.CreatedBy,
		config.CreatedAt,
		config.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create configuration: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	config.ID = id
	return nil
}

func (r *configurationRepo) GetByID(ctx context.Context, id int64) (*entity.Configuration, error) {
	query := `SELECT ` + configurationColumns + ` FROM timeslot_configurations WHERE id = ?`

	config, err := fetchOne(ctx, r.db, scanConfiguration, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}

	return config, nil
}

func (r *configurationRepo) GetByWeekStart(ctx context.Context, weekStart time.Time) (*entity.Configuration, error) {
	query := `SELECT ` + configurationColumns + ` FROM timeslot_configurations WHERE week_start = ?`

	config, err := fetchOne(ctx, r.db, scanConfiguration, query, domain.FormatDate(weekStart))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration for week: %w", err)
	}

	return config, nil
}

func (r *configurationRepo) Touch(ctx context.Context, id int64, updatedAt time.Time) error {
	query := `UPDATE timeslot_configurations SET updated_at = ? WHERE id = ?`

	_, err := r.db.exec(ctx, query, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update configuration: %w", err)
	}

	return nil
}

func (r *configurationRepo) CreateSlot(ctx context.Context, slot *entity.Timeslot) error {
	query := `
		INSERT INTO timeslots (config_id, day_of_week, time, label, slot_order)
		VALUES (?, ?, ?, ?, ?)
	`

	if slot.ConfigID == nil {
		return fmt.Errorf("failed to create timeslot: missing configuration id")
	}

	result, err := r.db.exec(ctx, query,
		*slot.ConfigID,
		slot.DayOfWeek,
		slot.Time,
		slot.Label,
		slot.SlotOrder,
	)
	if isUniqueViolation(err) {
		return domain.NewValidationError("duplicate slot for day %d with order %d", slot.DayOfWeek, slot.SlotOrder)
	}
	if err != nil {
		return fmt.Errorf("failed to create timeslot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	slot.ID = &id
	return nil
}

func (r *configurationRepo) DeleteSlots(ctx context.Context, configID int64) error {
	query := `DELETE FROM timeslots WHERE config_id = ?`

	_, err := r.db.exec(ctx, query, configID)
	if err != nil {
		return fmt.Errorf("failed to delete timeslots: %w", err)
	}

	return nil
}

func (r *configurationRepo) GetSlots(ctx context.Context, configID int64) ([]*entity.Timeslot, error) {
	query := `
		SELECT id, config_id, day_of_week, time, label, slot_order
		FROM timeslots
		WHERE config_id = ?
		ORDER BY day_of_week ASC, slot_order ASC
	`

	slots, err := fetchMany(ctx, r.db, scanTimeslot, query, configID)
	if err != nil {
		return nil, fmt.Errorf("failed to get timeslots: %w", err)
	}

	return slots, nil
}
