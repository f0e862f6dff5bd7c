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

type templateRepo struct {
	db *conn
}

func newTemplateRepo(db *conn) contract.TemplateRepo {
	return &templateRepo{db: db}
}

const templateColumns = `id, name, description, created_by, is_default, created_at`

func scanTemplate(row scanner) (*entity.Template, error) {
	template := &entity.Template{}
	err := row.Scan(
		&template.ID,
		&template.Name,
		&template.Description,
		&template.CreatedBy,
		&template.IsDefault,
		&template.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return template, nil
}

func scanTemplateSlot(row scanner) (*entity.TemplateSlot, error) {
	slot := &entity.TemplateSlot{}
	err := row.Scan(
		&slot.ID,
		&slot.TemplateID,
		&slot.DayOfWeek,
		&slot.Time,
		&slot.Label,
		&slot.SlotOrder,
	)
	if err != nil {
		return nil, err
	}
	return slot, nil
}

func (r *templateRepo) Create(ctx context.Context, template *entity.Template) error {
	query := `
		INSERT INTO timeslot_templates (name, description, created_by, is_default, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	if template.CreatedAt.IsZero() {
		template.CreatedAt = time.Now()
	}

	result, err := r.db.exec(ctx, query,
		template.Name,
		template.Description,
		template.CreatedBy,
		template.IsDefault,
		template.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	template.ID = id
	return nil
}

func (r *templateRepo) CreateSlot(ctx context.Context, slot *entity.TemplateSlot) error {
	query := `
		INSERT INTO template_slots (template_id, day_of_week, time, label, slot_order)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.exec(ctx, query,
		slot.TemplateID,
		slot.DayOfWeek,
		slot.Time,
		slot.Label,
		slot.SlotOrder,
	)
	if isUniqueViolation(err) {
		return domain.NewValidationError("duplicate slot for day %d with order %d", slot.DayOfWeek, slot.SlotOrder)
	}
	if err != nil {
		return fmt.Errorf("failed to create template slot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	slot.ID = id
	return nil
}

func (r *templateRepo) GetByID(ctx context.Context, id int64) (*entity.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM timeslot_templates WHERE id = ?`

	template, err := fetchOne(ctx, r.db, scanTemplate, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	return template, nil
}

func (r *templateRepo) GetDefault(ctx context.Context) (*entity.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM timeslot_templates WHERE is_default = 1 LIMIT 1`

	template, err := fetchOne(ctx, r.db, scanTemplate, query)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get default template: %w", err)
	}

	return template, nil
}

func (r *templateRepo) GetAllDefaultFirst(ctx context.Context) ([]*entity.Template, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM timeslot_templates
		ORDER BY is_default DESC, name ASC, id ASC
	`

	templates, err := fetchMany(ctx, r.db, scanTemplate, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get templates: %w", err)
	}

	return templates, nil
}

func (r *templateRepo) GetSlots(ctx context.Context, templateID int64) ([]*entity.TemplateSlot, error) {
	query := `
		SELECT id, template_id, day_of_week, time, label, slot_order
		FROM template_slots
		WHERE template_id = ?
		ORDER BY day_of_week ASC, slot_order ASC
	`

	slots, err := fetchMany(ctx, r.db, scanTemplateSlot, query, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get template slots: %w", err)
	}

	return slots, nil
}

func (r *templateRepo) ClearDefault(ctx context.Context) error {
	query := `UPDATE timeslot_templates SET is_default = 0 WHERE is_default = 1`

	_, err := r.db.exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to clear default template: %w", err)
	}

	return nil
}

func (r *templateRepo) SetDefault(ctx context.Context, id int64) error {
	query := `UPDATE timeslot_templates SET is_default = 1 WHERE id = ?`

	_, err := r.db.exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to set default template: %w", err)
	}

	return nil
}

func (r *templateRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM timeslot_templates WHERE id = ?`

	_, err := r.db.exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	return nil
}
