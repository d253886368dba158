package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Contact submission outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeError       = "error"
	OutcomeInvalid     = "invalid"
	OutcomeInFlight    = "in_flight"
	OutcomeRateLimited = "rate_limited"
)

var (
	// Landing page metrics
	PageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "numiflow_page_renders_total",
		Help: "Total number of landing page renders",
	}, []string{"locale"})

	LocaleRedirects = promauto.NewCounter(prometheus.CounterOpts{
		Name: "numiflow_locale_redirects_total",
		Help: "Total number of redirects caused by an unsupported locale segment",
	})

	// Contact form metrics
	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "numiflow_contact_submissions_total",
		Help: "Total number of contact form submissions by outcome",
	}, []string{"locale", "outcome"})

	ContactSubmitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "numiflow_contact_submit_duration_seconds",
		Help:    "Time spent delivering a contact form submission",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	}, []string{"outcome"})
)

// Handler serves the default registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
