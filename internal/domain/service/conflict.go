package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/shift-timeslots/internal/domain"
	"github.com/diegoclair/shift-timeslots/internal/domain/entity"
)

// CheckForConflicts lists the available availability rows and the assignments
// dated inside the week. It only informs: nothing is blocked or changed.
func (s *timeslotService) CheckForConflicts(ctx context.Context, weekStart time.Time) (*entity.ConflictReport, error) {
	weekStart = domain.WeekStartOf(weekStart)
	weekEnd := domain.WeekEnd(weekStart)

	availability, err := s.dm.Shift().GetAvailableInRange(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to check availability: %w", err)
	}

	assignments, err := s.dm.Shift().GetAssignmentsInRange(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to check assignments: %w", err)
	}

	if availability == nil {
		availability = []*entity.AvailabilityConflict{}
	}
	if assignments == nil {
		assignments = []*entity.AssignmentConflict{}
	}

	return &entity.ConflictReport{
		HasConflicts: len(availability) > 0 || len(assignments) > 0,
		Availability: availability,
		Assignments:  assignments,
	}, nil
}
