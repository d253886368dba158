package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	g "maragu.dev/gomponents"

	"github.com/numiflow/website/internal/components"
	"github.com/numiflow/website/internal/config"
	"github.com/numiflow/website/internal/contact"
	"github.com/numiflow/website/internal/content"
	"github.com/numiflow/website/internal/locale"
	"github.com/numiflow/website/internal/metrics"
	"github.com/numiflow/website/internal/ratelimit"
	"github.com/numiflow/website/pkg/logger"
)

// Handler serves the landing page, the contact endpoints and health.
type Handler struct {
	catalog  *content.Catalog
	registry *contact.Registry
	limiter  *ratelimit.Limiter
	cfg      *config.Config
	log      *slog.Logger
	startAt  time.Time
}

// NewHandler creates the website handler
func NewHandler(catalog *content.Catalog, registry *contact.Registry, limiter *ratelimit.Limiter, cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		catalog:  catalog,
		registry: registry,
		limiter:  limiter,
		cfg:      cfg,
		log:      log.With(logger.Scope("handlers")),
		startAt:  time.Now(),
	}
}

func (h *Handler) page(loc locale.Locale, r *http.Request) components.Page {
	return components.Page{
		Locale:   loc,
		T:        h.catalog.Table(loc),
		SiteName: h.cfg.SiteName,
		SiteURL:  h.cfg.SiteURL,
		Billing:  components.ParseBilling(r.URL.Query().Get("billing")),
	}
}

// Root serves GET / in the default locale.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.landing(w, r, locale.Resolve("", false))
}

// Landing serves GET /{lang}. Unsupported segments redirect to the default root.
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	h.landing(w, r, locale.Resolve(chi.URLParam(r, "lang"), true))
}

func (h *Handler) landing(w http.ResponseWriter, r *http.Request, res locale.Resolution) {
	if res.Redirect() {
		metrics.LocaleRedirects.Inc()
		http.Redirect(w, r, res.RedirectTo, http.StatusFound)
		return
	}

	p := h.page(res.Locale, r)
	// The form is registered lazily, on its first submit.
	p.Form = contact.Snapshot{ID: uuid.NewString()}

	metrics.PageRenders.WithLabelValues(res.Locale.String()).Inc()
	h.render(w, http.StatusOK, res.Locale, components.Landing(p))
}

func (h *Handler) render(w http.ResponseWriter, status int, loc locale.Locale, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", loc.Tag().String())
	w.WriteHeader(status)
	if err := node.Render(w); err != nil {
		h.log.Warn("render failed", logger.Error(err), slog.String("locale", loc.String()))
	}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(HealthResponse{
		Status: "ok",
		Uptime: time.Since(h.startAt).Round(time.Second).String(),
	})
}
