package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/numiflow/website/internal/components"
	"github.com/numiflow/website/internal/contact"
	"github.com/numiflow/website/internal/locale"
	"github.com/numiflow/website/internal/metrics"
	"github.com/numiflow/website/internal/server"
	"github.com/numiflow/website/pkg/apperror"
	"github.com/numiflow/website/pkg/logger"
)

const maxContactBody = 64 << 10

// submitResult is the HTTP view of one Form.Submit call.
type submitResult struct {
	snap    contact.Snapshot
	status  int
	outcome string
	invalid map[contact.Field]string
	err     error
}

func (h *Handler) submit(r *http.Request, form *contact.Form, loc locale.Locale) submitResult {
	meta := contact.Meta{
		Locale:     loc,
		RemoteAddr: server.ClientIP(r),
		UserAgent:  r.UserAgent(),
		Referrer:   r.Referer(),
	}

	start := time.Now()
	snap, err := form.Submit(r.Context(), meta)
	res := submitResult{snap: snap, status: http.StatusOK, err: err}

	var verr *contact.ValidationError
	switch {
	case err == nil:
		res.outcome = metrics.OutcomeSuccess
	case errors.As(err, &verr):
		res.status = http.StatusUnprocessableEntity
		res.outcome = metrics.OutcomeInvalid
		res.invalid = verr.Fields
	case errors.Is(err, contact.ErrInFlight):
		res.status = http.StatusConflict
		res.outcome = metrics.OutcomeInFlight
	default:
		res.outcome = metrics.OutcomeError
	}

	metrics.ContactSubmissions.WithLabelValues(loc.String(), res.outcome).Inc()
	switch res.outcome {
	case metrics.OutcomeSuccess:
		metrics.ContactSubmitDuration.WithLabelValues(res.outcome).Observe(time.Since(start).Seconds())
		h.log.Info("lead captured",
			slog.String("form_id", form.ID()),
			slog.String("locale", loc.String()),
		)
	case metrics.OutcomeError:
		metrics.ContactSubmitDuration.WithLabelValues(res.outcome).Observe(time.Since(start).Seconds())
		h.log.Warn("lead delivery failed",
			slog.String("form_id", form.ID()),
			slog.String("locale", loc.String()),
			logger.Error(err),
		)
	}
	return res
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// SubmitContact handles POST /{lang}/contact from the HTML form. htmx requests
// get the form fragment back; plain posts get the whole page.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	loc, ok := locale.Parse(chi.URLParam(r, "lang"))
	if !ok {
		metrics.LocaleRedirects.Inc()
		http.Redirect(w, r, locale.Default.Root(), http.StatusSeeOther)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	p := h.page(loc, r)

	if !h.limiter.Allow(server.ClientIP(r)) {
		metrics.ContactSubmissions.WithLabelValues(loc.String(), metrics.OutcomeRateLimited).Inc()
		var data contact.Data
		for _, f := range contact.Fields() {
			data = data.Set(f, r.PostForm.Get(string(f)))
		}
		p.Form = contact.Snapshot{ID: r.PostForm.Get("form_id"), Data: data, Status: contact.StatusError}
		h.respondForm(w, r, http.StatusTooManyRequests, p)
		return
	}

	form := h.registry.Form(r.PostForm.Get("form_id"))
	for _, f := range contact.Fields() {
		if _, posted := r.PostForm[string(f)]; posted {
			form.SetField(f, r.PostForm.Get(string(f)))
		}
	}

	res := h.submit(r, form, loc)
	p.Form = res.snap
	p.Invalid = res.invalid
	h.respondForm(w, r, res.status, p)
}

func (h *Handler) respondForm(w http.ResponseWriter, r *http.Request, status int, p components.Page) {
	if isHTMX(r) {
		h.render(w, status, p.Locale, components.ContactForm(p))
		return
	}
	h.render(w, status, p.Locale, components.Landing(p))
}

// ContactResponse is the body of a successful POST /api/contact
type ContactResponse struct {
	Status string `json:"status"`
	FormID string `json:"formId"`
	Locale string `json:"locale"`
}

// SubmitContactAPI handles POST /api/contact with a JSON lead. The locale
// comes from ?lang= or, failing that, Accept-Language.
func (h *Handler) SubmitContactAPI(w http.ResponseWriter, r *http.Request) {
	loc := locale.Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))

	if !h.limiter.Allow(server.ClientIP(r)) {
		metrics.ContactSubmissions.WithLabelValues(loc.String(), metrics.OutcomeRateLimited).Inc()
		apperror.WriteJSON(w, r, h.log, apperror.ErrTooManyRequests)
		return
	}

	var data contact.Data
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		apperror.WriteJSON(w, r, h.log, apperror.NewBadRequest("invalid JSON body").WithInternal(err))
		return
	}

	// No later request can address this form, so it is not registered.
	form := h.registry.Ephemeral()
	for _, f := range contact.Fields() {
		form.SetField(f, data.Get(f))
	}

	res := h.submit(r, form, loc)
	switch res.outcome {
	case metrics.OutcomeSuccess:
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Language", loc.Tag().String())
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(ContactResponse{
			Status: res.snap.Status.String(),
			FormID: form.ID(),
			Locale: loc.String(),
		})
	case metrics.OutcomeInvalid:
		fields := make(map[string]string, len(res.invalid))
		for f, rule := range res.invalid {
			fields[string(f)] = rule
		}
		apperror.WriteJSON(w, r, h.log, apperror.NewValidation(fields))
	case metrics.OutcomeInFlight:
		apperror.WriteJSON(w, r, h.log, apperror.ErrConflict)
	default:
		apperror.WriteJSON(w, r, h.log, apperror.ErrSubmissionFailed.WithInternal(res.err))
	}
}
