package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/shift-timeslots/internal/domain"
	"github.com/diegoclair/shift-timeslots/internal/domain/contract"
	"github.com/diegoclair/shift-timeslots/internal/domain/entity"
)

// getForWeek returns nil, nil when the week has no configuration.
func (s *timeslotService) getForWeek(ctx context.Context, dm contract.DataManager, weekStart time.Time) (*entity.WeekTimeslots, error) {
	config, err := dm.Configuration().GetByWeekStart(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}
	if config == nil {
		return nil, nil
	}

	slots, err := dm.Configuration().GetSlots(ctx, config.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get timeslots: %w", err)
	}

	return &entity.WeekTimeslots{Config: config, Slots: entity.GroupTimeslots(slots)}, nil
}

// createConfiguration inserts the configuration row and its slots through dm,
// which must be transactional, and returns them without reading back.
func (s *timeslotService) createConfiguration(ctx context.Context, dm contract.DataManager, weekStart time.Time, slots []entity.SlotInput, createdBy int64) (*entity.WeekTimeslots, error) {
	if !s.canModify(weekStart) {
		return nil, domain.NewPastWeekError("cannot modify past week %s", domain.FormatDate(weekStart))
	}
	if err := s.validateSlots(slots); err != nil {
		return nil, err
	}

	config := &entity.Configuration{
		WeekStart: weekStart,
		CreatedBy: createdBy,
	}
	if err := dm.Configuration().Create(ctx, config); err != nil {
		return nil, fmt.Errorf("failed to create configuration: %w", err)
	}

	inserted, err := s.insertSlots(ctx, dm, config.ID, slots)
	if err != nil {
		return nil, err
	}

	return &entity.WeekTimeslots{Config: config, Slots: entity.GroupTimeslots(inserted)}, nil
}

// replaceSlots swaps the whole slot set of config. It never merges: every
// existing row is deleted before the new ones are inserted.
func (s *timeslotService) replaceSlots(ctx context.Context, dm contract.DataManager, config *entity.Configuration, slots []entity.SlotInput) (*entity.WeekTimeslots, error) {
	if !s.canModify(config.WeekStart) {
		return nil, domain.NewPastWeekError("cannot modify past week %s", domain.FormatDate(config.WeekStart))
	}
	if err := s.validateSlots(slots); err != nil {
		return nil, err
	}

	if err := dm.Configuration().DeleteSlots(ctx, config.ID); err != nil {
		return nil, fmt.Errorf("failed to delete timeslots: %w", err)
	}

	inserted, err := s.insertSlots(ctx, dm, config.ID, slots)
	if err != nil {
		return nil, err
	}

	updatedAt := s.now()
	if err := dm.Configuration().Touch(ctx, config.ID, updatedAt); err != nil {
		return nil, fmt.Errorf("failed to update configuration: %w", err)
	}
	config.UpdatedAt = updatedAt

	return &entity.WeekTimeslots{Config: config, Slots: entity.GroupTimeslots(inserted)}, nil
}

// createOrReplace is the write shared by template application and week copy.
func (s *timeslotService) createOrReplace(ctx context.Context, dm contract.DataManager, weekStart time.Time, slots []entity.SlotInput, createdBy int64) (*entity.WeekTimeslots, error) {
	existing, err := dm.Configuration().GetByWeekStart(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}

	if existing != nil {
		return s.replaceSlots(ctx, dm, existing, slots)
	}
	return s.createConfiguration(ctx, dm, weekStart, slots, createdBy)
}

func (s *timeslotService) insertSlots(ctx context.Context, dm contract.DataManager, configID int64, slots []entity.SlotInput) ([]*entity.Timeslot, error) {
	inserted := make([]*entity.Timeslot, 0, len(slots))
	for _, input := range slots {
		id := configID
		slot := &entity.Timeslot{
			ConfigID:  &id,
			DayOfWeek: input.DayOfWeek,
			Time:      input.Time,
			Label:     input.Label,
			SlotOrder: input.SlotOrder,
		}
		if err := dm.Configuration().CreateSlot(ctx, slot); err != nil {
			return nil, fmt.Errorf("failed to create timeslot: %w", err)
		}
		inserted = append(inserted, slot)
	}
	return inserted, nil
}
