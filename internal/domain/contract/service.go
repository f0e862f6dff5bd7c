package contract

import (
	"context"
	"time"

	"github.com/diegoclair/shift-timeslots/internal/domain/entity"
)

//go:generate mockgen -package mocks -source=service.go -destination=../../../mocks/service_mock.go

type TimeslotService interface {
	// GetTimeslotsForWeek resolves the slots of a week. WARNING: this read can
	// write. When the week has no configuration, is still mutable and a default
	// template exists, the template is applied and the new configuration is
	// persisted before being returned. Later calls return that same
	// configuration. Past weeks and setups without a default template get the
	// legacy schedule with a nil Config, and nothing is stored.
	GetTimeslotsForWeek(ctx context.Context, weekStart time.Time) (*entity.WeekTimeslots, error)
	CreateTimeslotConfiguration(ctx context.Context, weekStart time.Time, slots []entity.SlotInput, createdBy int64) (*entity.WeekTimeslots, error)
	UpdateTimeslotConfiguration(ctx context.Context, configID int64, slots []entity.SlotInput) (*entity.WeekTimeslots, error)
	ApplyTemplate(ctx context.Context, weekStart time.Time, templateID, createdBy int64) (*entity.WeekTimeslots, error)
	CopyFromPreviousWeek(ctx context.Context, targetWeekStart, sourceWeekStart time.Time, createdBy int64) (*entity.WeekTimeslots, error)
	CheckForConflicts(ctx context.Context, weekStart time.Time) (*entity.ConflictReport, error)

	CreateTemplate(ctx context.Context, input entity.NewTemplate) (*entity.Template, error)
	SetDefaultTemplate(ctx context.Context, templateID int64) error
	DeleteTemplate(ctx context.Context, templateID int64) error
	GetAllTemplates(ctx context.Context) ([]*entity.Template, error)
	GetDefaultTemplate(ctx context.Context) (*entity.Template, error)
	GetTemplateWithSlots(ctx context.Context, templateID int64) (*entity.TemplateWithSlots, error)
}
