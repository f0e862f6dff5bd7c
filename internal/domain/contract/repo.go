package contract

import (
	"context"
	"time"

	"github.com/diegoclair/shift-timeslots/internal/domain/entity"
)

//go:generate mockgen -package mocks -source=repo.go -destination=../../../mocks/repo_mock.go

// DataManager aggregates all repository interfaces
type DataManager interface {
	// WithTransaction runs fn against repositories bound to one transaction.
	// The transaction is opened with exclusive intent so concurrent writers
	// serialize. Any error returned by fn rolls it back.
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Template() TemplateRepo
	Configuration() ConfigurationRepo
	Shift() ShiftRepo
}

// TemplateRepo defines the contract for timeslot template repository.
// Lookups return nil, nil when the row does not exist.
type TemplateRepo interface {
	Create(ctx context.Context, template *entity.Template) error
	CreateSlot(ctx context.Context, slot *entity.TemplateSlot) error
	GetByID(ctx context.Context, id int64) (*entity.Template, error)
	GetDefault(ctx context.Context) (*entity.Template, error)
	GetAllDefaultFirst(ctx context.Context) ([]*entity.Template, error)
	GetSlots(ctx context.Context, templateID int64) ([]*entity.TemplateSlot, error)
	ClearDefault(ctx context.Context) error
	SetDefault(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// ConfigurationRepo defines the contract for weekly configuration repository
type ConfigurationRepo interface {
	Create(ctx context.Context, config *entity.Configuration) error
	GetByID(ctx context.Context, id int64) (*entity.Configuration, error)
	GetByWeekStart(ctx context.Context, weekStart time.Time) (*entity.Configuration, error)
	Touch(ctx context.Context, id int64, updatedAt time.Time) error
	CreateSlot(ctx context.Context, slot *entity.Timeslot) error
	DeleteSlots(ctx context.Context, configID int64) error
	GetSlots(ctx context.Context, configID int64) ([]*entity.Timeslot, error)
}

// ShiftRepo reads the availability and assignment records kept by the
// scheduling side. It never writes them.
type ShiftRepo interface {
	GetAvailableInRange(ctx context.Context, from, to time.Time) ([]*entity.AvailabilityConflict, error)
	GetAssignmentsInRange(ctx context.Context, from, to time.Time) ([]*entity.AssignmentConflict, error)
}
