// Package scheduler persists upcoming weeks ahead of time so they are
// materialized from the default template before anyone reads them.
package scheduler

import (
	"context"
	"time"

	"github.com/diegoclair/shift-timeslots/internal/config"
	"github.com/diegoclair/shift-timeslots/internal/domain"
	"github.com/diegoclair/shift-timeslots/internal/domain/contract"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const fallbackSpec = "@daily"

type Scheduler struct {
	timeslotService contract.TimeslotService
	cfg             config.MaterializerConfig
	log             *zap.Logger
	now             func() time.Time

	cron   *cron.Cron
	runCtx context.Context
	cancel context.CancelFunc
}

func New(timeslotService contract.TimeslotService, cfg config.MaterializerConfig, log *zap.Logger) *Scheduler {
	return &Scheduler{
		timeslotService: timeslotService,
		cfg:             cfg,
		log:             log,
		now:             time.Now,
	}
}

// Start schedules RunOnce on the configured cron spec. An invalid spec falls
// back to @daily.
func (s *Scheduler) Start(ctx context.Context) {
	s.runCtx, s.cancel = context.WithCancel(ctx)

	c := cron.New()
	_, err := c.AddFunc(s.cfg.CronSpec, func() { s.RunOnce(s.runCtx) })
	if err != nil {
		s.log.Warn("materializer: invalid cron spec, falling back to @daily",
			zap.String("cron_spec", s.cfg.CronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackSpec, func() { s.RunOnce(s.runCtx) })
	}

	c.Start()
	s.cron = c
	s.log.Info("materializer started", zap.Int("weeks_ahead", s.cfg.WeeksAhead))
}

// Stop cancels a running pass and waits for it to return.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	s.log.Info("materializer stopped")
}

// RunOnce resolves the current week and the next WeeksAhead weeks. A failure
// on one week is logged and the remaining weeks are still processed. It
// returns how many weeks resolved to a persisted configuration.
func (s *Scheduler) RunOnce(ctx context.Context) int {
	weekStart := domain.WeekStartOf(s.now())
	persisted := 0

	for i := 0; i <= s.cfg.WeeksAhead; i++ {
		if ctx.Err() != nil {
			s.log.Info("materializer: pass cancelled", zap.Int("weeks_done", i))
			return persisted
		}

		week := weekStart.AddDate(0, 0, 7*i)
		result, err := s.timeslotService.GetTimeslotsForWeek(ctx, week)
		if err != nil {
			s.log.Error("materializer: failed to resolve week",
				zap.String("week_start", domain.FormatDate(week)),
				zap.Error(err),
			)
			continue
		}
		if result.Config != nil {
			persisted++
		}
	}

	s.log.Info("materializer: pass finished",
		zap.String("from_week", domain.FormatDate(weekStart)),
		zap.Int("persisted", persisted),
	)
	return persisted
}
