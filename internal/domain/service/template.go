package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/shift-timeslots/internal/domain"
	"github.com/diegoclair/shift-timeslots/internal/domain/contract"
	"github.com/diegoclair/shift-timeslots/internal/domain/entity"
	"go.uber.org/zap"
)

// CreateTemplate stores a template and its slots. When IsDefault is set the
// previous default is cleared in the same transaction.
func (s *timeslotService) CreateTemplate(ctx context.Context, input entity.NewTemplate) (*entity.Template, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, domain.NewValidationError("template name is required")
	}
	if err := s.validateSlots(input.Slots); err != nil {
		return nil, err
	}

	template := &entity.Template{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   input.CreatedBy,
		IsDefault:   input.IsDefault,
	}

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if template.IsDefault {
			if err := tx.Template().ClearDefault(ctx); err != nil {
				return fmt.Errorf("failed to clear default template: %w", err)
			}
		}

		if err := tx.Template().Create(ctx, template); err != nil {
			return fmt.Errorf("failed to create template: %w", err)
		}

		for _, in := range input.Slots {
			slot := &entity.TemplateSlot{
				TemplateID: template.ID,
				DayOfWeek:  in.DayOfWeek,
				Time:       in.Time,
				Label:      in.Label,
				SlotOrder:  in.SlotOrder,
			}
			if err := tx.Template().CreateSlot(ctx, slot); err != nil {
				return fmt.Errorf("failed to create template slot: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("template created",
		zap.Int64("template_id", template.ID),
		zap.Int("slots", len(input.Slots)),
		zap.Bool("is_default", template.IsDefault),
	)

	return template, nil
}

// SetDefaultTemplate moves the default flag to templateID. Clearing and
// setting happen in one transaction so no reader sees zero or two defaults.
func (s *timeslotService) SetDefaultTemplate(ctx context.Context, templateID int64) error {
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		template, err := tx.Template().GetByID(ctx, templateID)
		if err != nil {
			return fmt.Errorf("failed to get template: %w", err)
		}
		if template == nil {
			return domain.NewNotFoundError("template %d not found", templateID)
		}

		if err := tx.Template().ClearDefault(ctx); err != nil {
			return fmt.Errorf("failed to clear default template: %w", err)
		}

		if err := tx.Template().SetDefault(ctx, templateID); err != nil {
			return fmt.Errorf("failed to set default template: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("default template changed", zap.Int64("template_id", templateID))
	return nil
}

func (s *timeslotService) DeleteTemplate(ctx context.Context, templateID int64) error {
	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		template, err := tx.Template().GetByID(ctx, templateID)
		if err != nil {
			return fmt.Errorf("failed to get template: %w", err)
		}
		if template == nil {
			return domain.NewNotFoundError("template %d not found", templateID)
		}
		if template.IsDefault {
			return domain.NewInvariantViolation("cannot delete default template")
		}

		return tx.Template().Delete(ctx, templateID)
	})
}

func (s *timeslotService) GetAllTemplates(ctx context.Context) ([]*entity.Template, error) {
	return s.dm.Template().GetAllDefaultFirst(ctx)
}

func (s *timeslotService) GetDefaultTemplate(ctx context.Context) (*entity.Template, error) {
	return s.dm.Template().GetDefault(ctx)
}

func (s *timeslotService) GetTemplateWithSlots(ctx context.Context, templateID int64) (*entity.TemplateWithSlots, error) {
	template, err := s.dm.Template().GetByID(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	if template == nil {
		return nil, domain.NewNotFoundError("template %d not found", templateID)
	}

	slots, err := s.dm.Template().GetSlots(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get template slots: %w", err)
	}

	byDay := make(entity.TemplateSlotsByDay, 7)
	for day := domain.Monday; day <= domain.Sunday; day++ {
		byDay[day] = []*entity.TemplateSlot{}
	}
	for _, slot := range slots {
		byDay[slot.DayOfWeek] = append(byDay[slot.DayOfWeek], slot)
	}

	return &entity.TemplateWithSlots{Template: template, Slots: byDay}, nil
}

func templateSlotInputs(slots []*entity.TemplateSlot) []entity.SlotInput {
	inputs := make([]entity.SlotInput, 0, len(slots))
	for _, slot := range slots {
		inputs = append(inputs, entity.SlotInput{
			DayOfWeek: slot.DayOfWeek,
			Time:      slot.Time,
			Label:     slot.Label,
			SlotOrder: slot.SlotOrder,
		})
	}
	return inputs
}
