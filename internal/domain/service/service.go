package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/shift-timeslots/internal/domain"
	"github.com/diegoclair/shift-timeslots/internal/domain/contract"
	"github.com/diegoclair/shift-timeslots/internal/domain/entity"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// timeslotService is the timeslot engine. It keeps no state between calls
// besides the data manager handle; every read goes to the store.
type timeslotService struct {
	dm       contract.DataManager
	log      *zap.Logger
	validate *validator.Validate
	now      func() time.Time
}

func newTimeslot(dm contract.DataManager, log *zap.Logger) *timeslotService {
	return &timeslotService{
		dm:       dm,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (s *timeslotService) canModify(weekStart time.Time) bool {
	return domain.CanModify(weekStart, s.now())
}

// validateSlots checks structure only. Duplicate times on a day and the time
// label format are left to the caller.
func (s *timeslotService) validateSlots(slots []entity.SlotInput) error {
	if len(slots) == 0 {
		return domain.NewValidationError("slot list must not be empty")
	}

	for i, slot := range slots {
		if err := s.validate.Struct(slot); err != nil {
			return domain.NewValidationError("invalid slot %d: %s", i, describeValidation(err))
		}
	}

	return nil
}

func describeValidation(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, ", ")
}
