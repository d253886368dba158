package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"

	"github.com/numiflow/website/internal/metrics"
	"github.com/numiflow/website/static"
)

var Module = fx.Module("handlers",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)

// RegisterRoutes registers the website routes
func RegisterRoutes(r *chi.Mux, h *Handler) {
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))

	r.Get("/health", h.Health)
	r.Handle("/metrics", metrics.Handler())

	r.Get("/", h.Root)
	r.Get("/{lang}", h.Landing)
	r.Post("/{lang}/contact", h.SubmitContact)
	r.Post("/api/contact", h.SubmitContactAPI)
}
