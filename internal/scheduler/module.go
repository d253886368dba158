// Package scheduler runs the in-memory housekeeping of the website.
package scheduler

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/numiflow/website/internal/config"
	"github.com/numiflow/website/internal/contact"
	"github.com/numiflow/website/internal/ratelimit"
	"github.com/numiflow/website/pkg/logger"
)

// Module provides scheduled task functionality
var Module = fx.Module("scheduler",
	fx.Provide(NewScheduler),
	fx.Invoke(
		RegisterTasks,
		RegisterSchedulerLifecycle,
	),
)

// TaskParams contains dependencies for creating scheduled tasks
type TaskParams struct {
	fx.In
	Scheduler *Scheduler
	Registry  *contact.Registry
	Limiter   *ratelimit.Limiter
	Log       *slog.Logger
	Cfg       *config.Config
}

// RegisterTasks registers all scheduled tasks
func RegisterTasks(p TaskParams) error {
	if !p.Cfg.Contact.SweepEnabled {
		p.Log.Info("scheduler disabled, skipping task registration")
		return nil
	}

	schedule := p.Cfg.Contact.SweepSchedule

	sweep := NewFormSweepTask(p.Registry, p.Log)
	if err := p.Scheduler.AddCronTask("contact_form_sweep", schedule, sweep.Run); err != nil {
		p.Log.Error("failed to register contact form sweep task", logger.Error(err))
		return err
	}

	prune := NewLimiterPruneTask(p.Limiter, p.Cfg.Contact.FormTTL, p.Log)
	if err := p.Scheduler.AddCronTask("rate_limiter_prune", schedule, prune.Run); err != nil {
		p.Log.Error("failed to register rate limiter prune task", logger.Error(err))
		return err
	}

	p.Log.Info("registered scheduled tasks",
		slog.Any("tasks", p.Scheduler.ListTasks()))

	return nil
}

// RegisterSchedulerLifecycle registers the scheduler with fx lifecycle
func RegisterSchedulerLifecycle(lc fx.Lifecycle, scheduler *Scheduler, cfg *config.Config) {
	if !cfg.Contact.SweepEnabled {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return scheduler.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Stop(ctx)
		},
	})
}
