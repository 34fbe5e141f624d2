package usecase

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Task is one unit of recurring work
type Task func(ctx context.Context) error

// Scheduler runs a Task immediately and then on a fixed interval
type Scheduler struct {
	name     string
	interval time.Duration
	task     Task
}

// NewScheduler creates a new Scheduler
func NewScheduler(name string, interval time.Duration, task Task) (*Scheduler, error) {
	if interval <= 0 {
		return nil, goerr.New("scheduler interval must be positive",
			goerr.V("name", name),
			goerr.V("interval", interval))
	}
	if task == nil {
		return nil, goerr.New("scheduler task is nil", goerr.V("name", name))
	}

	return &Scheduler{
		name:     name,
		interval: interval,
		task:     task,
	}, nil
}

// Run blocks until ctx is cancelled. A failing or panicking task is logged and
// the next tick runs as usual.
func (s *Scheduler) Run(ctx context.Context) {
	logger := ctxlog.From(ctx)
	logger.Info("Scheduler started",
		slog.String("name", s.name),
		slog.Duration("interval", s.interval),
	)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Scheduler stopped", slog.String("name", s.name))
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			ctxlog.From(ctx).Error("Panic in scheduled task",
				"name", s.name,
				"recover", r,
				"stack", string(debug.Stack()),
			)
		}
	}()

	if err := s.task(ctx); err != nil {
		ctxlog.From(ctx).Error("Scheduled task failed",
			"name", s.name,
			"error", err,
		)
	}
}
