package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// ReportPurger defines the interface for removing expired reports
type ReportPurger interface {
	PurgeBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// Scheduler periodically purges reports older than the retention period
type Scheduler struct {
	purger   ReportPurger
	schedule string
	maxAge   time.Duration
	logger   *slog.Logger
	cron     *cron.Cron
	now      func() time.Time
	running  bool
	mu       sync.Mutex
}

// New creates a new retention scheduler. schedule is a standard five-field cron expression.
func New(purger ReportPurger, schedule string, maxAge time.Duration, logger *slog.Logger) (*Scheduler, error) {
	if maxAge <= 0 {
		return nil, fmt.Errorf("report retention must be positive, got %s", maxAge)
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("parsing retention schedule %q: %w", schedule, err)
	}

	return &Scheduler{
		purger:   purger,
		schedule: schedule,
		maxAge:   maxAge,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Start starts the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	// the schedule was validated in New
	if _, err := c.AddFunc(s.schedule, func() { s.RunOnce(ctx) }); err != nil {
		s.logger.Error("failed to schedule report retention", "error", err)
		return
	}
	c.Start()

	s.cron = c
	s.running = true
	s.logger.Info("report retention scheduler started", "schedule", s.schedule, "max_age", s.maxAge)
}

// Stop stops the scheduler and waits for a running purge to finish
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	c := s.cron
	s.cron = nil
	s.mu.Unlock()

	<-c.Stop().Done()
	s.logger.Info("report retention scheduler stopped")
}

// RunOnce purges expired reports immediately and returns how many were removed
func (s *Scheduler) RunOnce(ctx context.Context) int {
	cutoff := s.now().Add(-s.maxAge)
	s.logger.Debug("purging expired reports", "cutoff", cutoff)

	purged, err := s.purger.PurgeBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("failed to purge expired reports", "error", err)
		return 0
	}
	if purged > 0 {
		s.logger.Info("expired reports purged", "count", purged)
	}
	return purged
}
