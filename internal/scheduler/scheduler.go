package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/temperature-heatmap/internal/logger"
)

// Refresher is the work the scheduler runs on every tick.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefresherFunc adapts a plain function to Refresher.
type RefresherFunc func(ctx context.Context) error

func (f RefresherFunc) Refresh(ctx context.Context) error { return f(ctx) }

// Scheduler periodically refreshes the heat map dataset.
type Scheduler struct {
	scheduler *gocron.Scheduler
	refresher Refresher
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler. timeout bounds each run.
func New(interval, timeout time.Duration, refresher Refresher) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Scheduler{
		scheduler: s,
		refresher: refresher,
		interval:  interval,
		timeout:   timeout,
	}
}

// Start schedules the refresh job, which also runs once immediately.
// A non-positive interval runs the refresh once synchronously and schedules nothing.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		logger.Infof("scheduler: refresh interval disabled; running a single refresh")
		s.run()
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(s.run)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) run() {
	logger.Infof("scheduler: running dataset refresh job")

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.refresher.Refresh(ctx); err != nil {
		logger.Errorf("scheduler: refresh failed: %v", err)
		return
	}
	logger.Infof("scheduler: completed dataset refresh job")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
