package scheduler

import (
	"context"
	"sync"
	"time"

	"activity_notification_bot/internal/app" // For SweepRunner interface

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// sweepTimeout bounds one sweep run; the batch is small and sequential, so five
// minutes is generous headroom over the per-call HTTP timeouts.
const sweepTimeout = 5 * time.Minute

// SweepScheduler triggers the sweep on a recurring cron spec. Overlapping
// triggers are skipped, not queued: at most one sweep is in flight.
type SweepScheduler struct {
	cronEngine *cron.Cron
	sweep      app.SweepRunner
	logger     *logrus.Logger
	cronSpec   string
	running    sync.Mutex
}

func NewSweepScheduler(sweep app.SweepRunner, logger *logrus.Logger, cronSpec string) *SweepScheduler {
	return &SweepScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		sweep:      sweep,
		logger:     logger,
		cronSpec:   cronSpec,
	}
}

func (s *SweepScheduler) Start() error {
	s.logger.Info("Starting sweep scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpec, func() {
		s.logger.Info("Cron job triggered for activity sweep.")
		s.RunOnce()
	})
	if err != nil {
		return err
	}

	s.cronEngine.Start()
	s.logger.Infof("Sweep scheduler started with spec %q.", s.cronSpec)
	return nil
}

// RunOnce executes a single sweep with today as the reference date, unless a
// sweep is already running, in which case the trigger is dropped.
func (s *SweepScheduler) RunOnce() {
	if !s.running.TryLock() {
		s.logger.Warn("Previous sweep still running. Skipping this trigger.")
		return
	}
	defer s.running.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	if err := s.sweep.RunSweep(ctx, time.Now()); err != nil {
		s.logger.Errorf("Error during activity sweep: %v", err)
	}
}

func (s *SweepScheduler) Stop() {
	s.logger.Info("Stopping sweep scheduler...")
	ctx := s.cronEngine.Stop() // Stops new triggers, waits for running jobs.
	<-ctx.Done()
	s.logger.Info("Sweep scheduler gracefully stopped.")
}
