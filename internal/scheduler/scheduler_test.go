package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/shift-timeslots/internal/config"
	"github.com/diegoclair/shift-timeslots/internal/domain"
	"github.com/diegoclair/shift-timeslots/internal/domain/entity"
	"github.com/diegoclair/shift-timeslots/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestScheduler(t *testing.T, weeksAhead int) (*Scheduler, *mocks.MockTimeslotService, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTimeslotService(ctrl)

	s := New(svc, config.MaterializerConfig{CronSpec: "@daily", WeeksAhead: weeksAhead}, zap.NewNop())
	// Thursday; the week starts on 2025-03-10
	s.now = func() time.Time { return time.Date(2025, time.March, 13, 3, 0, 0, 0, time.Local) }

	return s, svc, ctrl
}

func TestScheduler_RunOnce(t *testing.T) {
	t.Run("Should resolve the current week and the weeks ahead", func(t *testing.T) {
		s, svc, ctrl := newTestScheduler(t, 2)
		defer ctrl.Finish()

		gomock.InOrder(
			svc.EXPECT().GetTimeslotsForWeek(gomock.Any(), time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)).
				Return(&entity.WeekTimeslots{Config: &entity.Configuration{ID: 1}}, nil).Times(1),
			svc.EXPECT().GetTimeslotsForWeek(gomock.Any(), time.Date(2025, time.March, 17, 0, 0, 0, 0, time.Local)).
				Return(&entity.WeekTimeslots{Config: &entity.Configuration{ID: 2}}, nil).Times(1),
			svc.EXPECT().GetTimeslotsForWeek(gomock.Any(), time.Date(2025, time.March, 24, 0, 0, 0, 0, time.Local)).
				Return(&entity.WeekTimeslots{Slots: domain.LegacySchedule()}, nil).Times(1),
		)

		assert.Equal(t, 2, s.RunOnce(context.Background()))
	})

	t.Run("Should keep going after a failing week", func(t *testing.T) {
		s, svc, ctrl := newTestScheduler(t, 1)
		defer ctrl.Finish()

		gomock.InOrder(
			svc.EXPECT().GetTimeslotsForWeek(gomock.Any(), gomock.Any()).
				Return(nil, errors.New("database is locked")).Times(1),
			svc.EXPECT().GetTimeslotsForWeek(gomock.Any(), gomock.Any()).
				Return(&entity.WeekTimeslots{Config: &entity.Configuration{ID: 5}}, nil).Times(1),
		)

		assert.Equal(t, 1, s.RunOnce(context.Background()))
	})

	t.Run("Should stop when the context is cancelled", func(t *testing.T) {
		s, _, ctrl := newTestScheduler(t, 4)
		defer ctrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Zero(t, s.RunOnce(ctx))
	})
}

func TestScheduler_StartStop(t *testing.T) {
	s, _, ctrl := newTestScheduler(t, 1)
	defer ctrl.Finish()

	s.cfg.CronSpec = "not a cron spec"
	s.Start(context.Background())

	entries := s.cron.Entries()
	assert.Len(t, entries, 1)

	s.Stop()
}
