// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/talentforge/jobboard-service/internal/config"
	"github.com/talentforge/jobboard-service/internal/service"
)

// Scheduler wraps a cron runner with the service's periodic jobs.
type Scheduler struct {
	cron   *cron.Cron
	jobs   *service.JobService
	logger *zap.Logger
}

func New(cfg config.SchedulerConfig, jobs *service.JobService, logger *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(),
		jobs:   jobs,
		logger: logger,
	}

	spec := cfg.JobExpirySpec
	if spec == "" {
		spec = "@hourly"
	}

	if _, err := s.cron.AddFunc(spec, s.sweepExpiredJobs); err != nil {
		return nil, err
	}
	return s, nil
}

// Start launches the cron runner in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started")
}

// Stop halts the runner and waits for in-flight jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) sweepExpiredJobs() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	now := time.Now().UTC()
	if _, err := s.jobs.DeactivateExpired(ctx, now); err != nil {
		s.logger.Error("expired job sweep failed", zap.Error(err))
	}
}
