package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Runner is one unit of periodic work, such as the cron sweep or the
// transcript reconciler.
type Runner interface {
	Run(ctx context.Context) error
}

type RunnerFunc func(ctx context.Context) error

func (f RunnerFunc) Run(ctx context.Context) error { return f(ctx) }

type Scheduler struct {
	name     string
	runner   Runner
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

// NewScheduler runs runner every interval. Each run is bounded by timeout;
// zero means no bound.
func NewScheduler(name string, runner Runner, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		name:     name,
		runner:   runner,
		interval: interval,
		timeout:  timeout,
		logger:   logger.With("scheduler", name),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "timeout", s.timeout)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	runCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := s.runner.Run(runCtx); err != nil {
		s.logger.Error("run failed", "error", err, "duration", time.Since(start))
		return
	}
	s.logger.Debug("run finished", "duration", time.Since(start))
}
