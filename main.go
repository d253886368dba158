// Package main runs the NumiFlow marketing website.
package main

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/numiflow/website/internal/config"
	"github.com/numiflow/website/internal/contact"
	"github.com/numiflow/website/internal/content"
	"github.com/numiflow/website/internal/handlers"
	"github.com/numiflow/website/internal/leads"
	"github.com/numiflow/website/internal/ratelimit"
	"github.com/numiflow/website/internal/scheduler"
	"github.com/numiflow/website/internal/server"
	"github.com/numiflow/website/internal/tracing"
	"github.com/numiflow/website/pkg/logger"
)

func main() {
	// .env.local overrides .env; real environment variables win over both
	config.LoadDotEnv()

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure
		logger.Module,
		config.Module,
		tracing.Module,
		server.Module,

		// Site content and lead capture
		content.Module,
		leads.Module,
		contact.Module,
		ratelimit.Module,

		// Housekeeping (idle form sweep, limiter pruning)
		scheduler.Module,

		handlers.Module,
	).Run()
}
