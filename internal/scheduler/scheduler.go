// internal/scheduler/scheduler.go
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is one scheduled unit of work. It returns how many items it handled.
type Job interface {
	Run(ctx context.Context) int
}

type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// New accepts six-field cron specs (with seconds) as well as descriptors
// like "@every 5m".
func New(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}
}

// Add registers job under name. Runs of the same job never overlap.
func (s *Scheduler) Add(ctx context.Context, name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		n := job.Run(ctx)
		s.logger.Info("scheduled job finished", zap.String("job", name), zap.Int("processed", n))
	})
	if err != nil {
		return fmt.Errorf("schedule %s with %q: %w", name, spec, err)
	}
	s.logger.Info("job scheduled", zap.String("job", name), zap.String("spec", spec))
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and returns a context that is done once running
// jobs have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
