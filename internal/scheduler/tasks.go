package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/numiflow/website/internal/contact"
	"github.com/numiflow/website/internal/ratelimit"
	"github.com/numiflow/website/pkg/logger"
)

// FormSweepTask drops contact forms that have been idle past their TTL.
type FormSweepTask struct {
	registry *contact.Registry
	log      *slog.Logger
}

func NewFormSweepTask(registry *contact.Registry, log *slog.Logger) *FormSweepTask {
	return &FormSweepTask{
		registry: registry,
		log:      log.With(logger.Scope("scheduler.form_sweep")),
	}
}

// Run executes the sweep
func (t *FormSweepTask) Run(ctx context.Context) error {
	removed := t.registry.Sweep()
	if removed > 0 {
		t.log.Debug("swept idle contact forms",
			slog.Int("removed", removed),
			slog.Int("remaining", t.registry.Len()))
	}
	return ctx.Err()
}

// LimiterPruneTask forgets clients that have not been seen for a while.
type LimiterPruneTask struct {
	limiter   *ratelimit.Limiter
	olderThan time.Duration
	log       *slog.Logger
}

func NewLimiterPruneTask(limiter *ratelimit.Limiter, olderThan time.Duration, log *slog.Logger) *LimiterPruneTask {
	return &LimiterPruneTask{
		limiter:   limiter,
		olderThan: olderThan,
		log:       log.With(logger.Scope("scheduler.limiter_prune")),
	}
}

// Run executes the prune
func (t *LimiterPruneTask) Run(ctx context.Context) error {
	removed := t.limiter.Prune(t.olderThan)
	if removed > 0 {
		t.log.Debug("pruned rate limiters", slog.Int("removed", removed))
	}
	return ctx.Err()
}
