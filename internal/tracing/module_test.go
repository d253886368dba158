package tracing

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/numiflow/website/internal/config"
)

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{2.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sampler(tt.rate).Description())
	}
	assert.Contains(t, sampler(0.5).Description(), "TraceIDRatioBased")
}

func TestNewTracerProvider_DisabledInstallsNoop(t *testing.T) {
	res, err := NewTracerProvider(&config.Config{}, slog.Default())
	require.NoError(t, err)
	assert.Nil(t, res.SDKProvider)
}

func TestMiddleware_PassesThrough(t *testing.T) {
	var sawSpan bool
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawSpan = trace.SpanFromContext(r.Context()) != nil
		w.WriteHeader(http.StatusTeapot)
	}))

	for _, path := range []string{"/en", "/health"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code, path)
		assert.True(t, sawSpan, path)
	}
}
