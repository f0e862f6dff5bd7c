package database

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/shift-timeslots/internal/domain"
	"github.com/diegoclair/shift-timeslots/internal/domain/contract"
	"github.com/diegoclair/shift-timeslots/internal/domain/entity"
)

type shiftRepo struct {
	db *conn
}

func newShiftRepo(db *conn) contract.ShiftRepo {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) GetAvailableInRange(ctx context.Context, from, to time.Time) ([]*entity.AvailabilityConflict, error) {
	query := `
		SELECT a.id, a.user_id, u.name, a.date, a.time
		FROM availability a
		JOIN users u ON u.id = a.user_id
		WHERE a.date BETWEEN ? AND ? AND a.is_available = 1
		ORDER BY a.date ASC, a.id ASC
	`

	scan := func(row scanner) (*entity.AvailabilityConflict, error) {
		item := &entity.AvailabilityConflict{}
		err := row.Scan(&item.ID, &item.UserID, &item.UserName, &item.Date, &item.Time)
		if err != nil {
			return nil, err
		}
		return item, nil
	}

	items, err := fetchMany(ctx, r.db, scan, query, domain.FormatDate(from), domain.FormatDate(to))
	if err != nil {
		return nil, fmt.Errorf("failed to get availability: %w", err)
	}

	return items, nil
}

func (r *shiftRepo) GetAssignmentsInRange(ctx context.Context, from, to time.Time) ([]*entity.AssignmentConflict, error) {
	query := `
		SELECT a.id, a.user_id, u.name, a.date, a.time
		FROM assignments a
		JOIN users u ON u.id = a.user_id
		WHERE a.date BETWEEN ? AND ?
		ORDER BY a.date ASC, a.id ASC
	`

	scan := func(row scanner) (*entity.AssignmentConflict, error) {
		item := &entity.AssignmentConflict{}
		err := row.Scan(&item.ID, &item.UserID, &item.UserName, &item.Date, &item.Time)
		if err != nil {
			return nil, err
		}
		return item, nil
	}

	items, err := fetchMany(ctx, r.db, scan, query, domain.FormatDate(from), domain.FormatDate(to))
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	return items, nil
}
