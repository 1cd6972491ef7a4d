package scheduler

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type blockingRunner struct {
	mu      sync.Mutex
	runs    int
	release chan struct{}
	started chan struct{}
}

func (r *blockingRunner) RunSweep(ctx context.Context, _ time.Time) error {
	r.mu.Lock()
	r.runs++
	r.mu.Unlock()
	r.started <- struct{}{}
	<-r.release
	return nil
}

func (r *blockingRunner) runCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs
}

func TestRunOnceSkipsOverlappingTrigger(t *testing.T) {
	runner := &blockingRunner{release: make(chan struct{}), started: make(chan struct{}, 1)}
	s := NewSweepScheduler(runner, discardLogger(), "@daily")

	done := make(chan struct{})
	go func() {
		s.RunOnce()
		close(done)
	}()
	<-runner.started // first sweep is in flight

	// A trigger arriving mid-sweep must return immediately without running.
	s.RunOnce()
	if got := runner.runCount(); got != 1 {
		t.Fatalf("expected overlapping trigger to be skipped, got %d runs", got)
	}

	close(runner.release)
	<-done

	// Once the first sweep finished, the next trigger runs again.
	runner.release = make(chan struct{})
	close(runner.release)
	s.RunOnce()
	if got := runner.runCount(); got != 2 {
		t.Fatalf("expected sweep to run after previous one finished, got %d runs", got)
	}
}

func TestSchedulerRejectsInvalidCronSpec(t *testing.T) {
	runner := &blockingRunner{release: make(chan struct{}), started: make(chan struct{}, 1)}
	s := NewSweepScheduler(runner, discardLogger(), "not a cron spec")

	if err := s.Start(); err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
}
