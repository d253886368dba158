// Package leads delivers contact form submissions to the sales team.
package leads

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"go.uber.org/fx"

	"github.com/numiflow/website/internal/config"
	"github.com/numiflow/website/internal/contact"
	"github.com/numiflow/website/pkg/logger"
)

var Module = fx.Module("leads",
	fx.Provide(NewSubmitter),
)

// Fanout delivers a lead to every sink concurrently. Any failure fails the submission.
type Fanout []contact.Submitter

func (f Fanout) Submit(ctx context.Context, s contact.Submission) error {
	errs := make([]error, len(f))
	var wg sync.WaitGroup
	for i, sink := range f {
		wg.Add(1)
		go func(i int, sink contact.Submitter) {
			defer wg.Done()
			errs[i] = sink.Submit(ctx, s)
		}(i, sink)
	}
	wg.Wait()
	return errors.Join(errs...)
}

// NewSubmitter picks the configured sinks, falling back to the simulated one.
func NewSubmitter(cfg *config.Config, log *slog.Logger) (contact.Submitter, error) {
	log = log.With(logger.Scope("leads"))

	var sinks Fanout
	if cfg.Email.Enabled && cfg.Email.IsConfigured() && cfg.Contact.LeadsTo != "" {
		templates, err := NewTemplates(cfg.SiteName)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, NewMailgunSubmitter(cfg, templates, log))
	}
	if tg := NewTelegramSubmitter(cfg, log); tg != nil {
		sinks = append(sinks, tg)
	}

	switch len(sinks) {
	case 0:
		log.Info("no lead sink configured, using simulated submitter",
			slog.Duration("delay", cfg.Contact.SimulatedDelay))
		return contact.NewSimulatedSubmitter(cfg.Contact.SimulatedDelay), nil
	case 1:
		log.Info("lead delivery configured", slog.Int("sinks", 1))
		return sinks[0], nil
	default:
		log.Info("lead delivery configured", slog.Int("sinks", len(sinks)))
		return sinks, nil
	}
}
