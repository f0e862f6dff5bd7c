package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/shift-timeslots/internal/domain"
	"github.com/diegoclair/shift-timeslots/internal/domain/contract"
	"github.com/diegoclair/shift-timeslots/internal/domain/entity"
	"go.uber.org/zap"
)

// GetTimeslotsForWeek resolves a week in three tiers, in this order:
//  1. the persisted configuration of the week;
//  2. for a mutable week, the default template applied and persisted right
//     now (this read writes);
//  3. the legacy schedule, with a nil Config and nothing stored.
func (s *timeslotService) GetTimeslotsForWeek(ctx context.Context, weekStart time.Time) (*entity.WeekTimeslots, error) {
	weekStart = domain.WeekStartOf(weekStart)

	week, err := s.getForWeek(ctx, s.dm, weekStart)
	if err != nil {
		return nil, err
	}
	if week != nil {
		return week, nil
	}

	if !s.canModify(weekStart) {
		return legacyWeek(), nil
	}

	defaultTemplate, err := s.dm.Template().GetDefault(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get default template: %w", err)
	}
	if defaultTemplate == nil {
		return legacyWeek(), nil
	}

	return s.bootstrapWeek(ctx, weekStart)
}

// bootstrapWeek applies the default template to an unconfigured week inside a
// single transaction. The week and the default are read again under the
// transaction, so a concurrent bootstrap returns the winner's configuration
// instead of applying the template twice.
func (s *timeslotService) bootstrapWeek(ctx context.Context, weekStart time.Time) (*entity.WeekTimeslots, error) {
	var result *entity.WeekTimeslots
	var bootstrapped *entity.Template

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		existing, err := s.getForWeek(ctx, tx, weekStart)
		if err != nil {
			return err
		}
		if existing != nil {
			result = existing
			return nil
		}

		template, err := tx.Template().GetDefault(ctx)
		if err != nil {
			return fmt.Errorf("failed to get default template: %w", err)
		}
		if template == nil {
			result = legacyWeek()
			return nil
		}

		week, err := s.applyTemplate(ctx, tx, weekStart, template, template.CreatedBy)
		if errors.Is(err, domain.ErrValidation) {
			s.log.Warn("default template cannot be applied, using legacy schedule",
				zap.Int64("template_id", template.ID),
				zap.Error(err),
			)
			result = legacyWeek()
			return nil
		}
		if err != nil {
			return err
		}

		result = week
		bootstrapped = template
		return nil
	})
	if err != nil {
		return nil, err
	}

	if bootstrapped != nil {
		s.log.Info("week bootstrapped from default template",
			zap.String("week_start", domain.FormatDate(weekStart)),
			zap.Int64("template_id", bootstrapped.ID),
			zap.Int64("config_id", result.Config.ID),
		)
	}

	return result, nil
}

func (s *timeslotService) CreateTimeslotConfiguration(ctx context.Context, weekStart time.Time, slots []entity.SlotInput, createdBy int64) (*entity.WeekTimeslots, error) {
	weekStart = domain.WeekStartOf(weekStart)
	if !s.canModify(weekStart) {
		return nil, domain.NewPastWeekError("cannot modify past week %s", domain.FormatDate(weekStart))
	}

	var result *entity.WeekTimeslots
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		existing, err := tx.Configuration().GetByWeekStart(ctx, weekStart)
		if err != nil {
			return fmt.Errorf("failed to check configuration: %w", err)
		}
		if existing != nil {
			return domain.NewValidationError("week %s is already configured", domain.FormatDate(weekStart))
		}

		result, err = s.createConfiguration(ctx, tx, weekStart, slots, createdBy)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *timeslotService) UpdateTimeslotConfiguration(ctx context.Context, configID int64, slots []entity.SlotInput) (*entity.WeekTimeslots, error) {
	var result *entity.WeekTimeslots
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		config, err := tx.Configuration().GetByID(ctx, configID)
		if err != nil {
			return fmt.Errorf("failed to get configuration: %w", err)
		}
		if config == nil {
			return domain.NewNotFoundError("configuration %d not found", configID)
		}

		result, err = s.replaceSlots(ctx, tx, config, slots)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *timeslotService) ApplyTemplate(ctx context.Context, weekStart time.Time, templateID, createdBy int64) (*entity.WeekTimeslots, error) {
	weekStart = domain.WeekStartOf(weekStart)
	if !s.canModify(weekStart) {
		return nil, domain.NewPastWeekError("cannot modify past week %s", domain.FormatDate(weekStart))
	}

	var result *entity.WeekTimeslots
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		template, err := tx.Template().GetByID(ctx, templateID)
		if err != nil {
			return fmt.Errorf("failed to get template: %w", err)
		}
		if template == nil {
			return domain.NewNotFoundError("template %d not found", templateID)
		}

		result, err = s.applyTemplate(ctx, tx, weekStart, template, createdBy)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("template applied",
		zap.String("week_start", domain.FormatDate(weekStart)),
		zap.Int64("template_id", templateID),
		zap.Int64("config_id", result.Config.ID),
	)

	return result, nil
}

func (s *timeslotService) applyTemplate(ctx context.Context, dm contract.DataManager, weekStart time.Time, template *entity.Template, createdBy int64) (*entity.WeekTimeslots, error) {
	slots, err := dm.Template().GetSlots(ctx, template.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get template slots: %w", err)
	}
	if len(slots) == 0 {
		return nil, domain.NewValidationError("template has no slots")
	}

	return s.createOrReplace(ctx, dm, weekStart, templateSlotInputs(slots), createdBy)
}

// CopyFromPreviousWeek stamps the slots the source week resolves to onto the
// target week. Resolving the source goes through GetTimeslotsForWeek, so an
// unconfigured but mutable source may be bootstrapped on the way.
func (s *timeslotService) CopyFromPreviousWeek(ctx context.Context, targetWeekStart, sourceWeekStart time.Time, createdBy int64) (*entity.WeekTimeslots, error) {
	targetWeekStart = domain.WeekStartOf(targetWeekStart)
	if !s.canModify(targetWeekStart) {
		return nil, domain.NewPastWeekError("cannot modify past week %s", domain.FormatDate(targetWeekStart))
	}

	source, err := s.GetTimeslotsForWeek(ctx, sourceWeekStart)
	if err != nil {
		return nil, err
	}
	if source.Config == nil {
		return nil, domain.NewSourceNotConfiguredError("week %s has no configuration to copy",
			domain.FormatDate(domain.WeekStartOf(sourceWeekStart)))
	}

	var result *entity.WeekTimeslots
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		result, err = s.createOrReplace(ctx, tx, targetWeekStart, source.Slots.Flatten(), createdBy)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("week copied",
		zap.String("target_week", domain.FormatDate(targetWeekStart)),
		zap.Int64("source_config_id", source.Config.ID),
		zap.Int64("config_id", result.Config.ID),
	)

	return result, nil
}

func legacyWeek() *entity.WeekTimeslots {
	return &entity.WeekTimeslots{Config: nil, Slots: domain.LegacySchedule()}
}
