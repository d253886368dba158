package contact

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/numiflow/website/internal/config"
)

var Module = fx.Module("contact",
	fx.Provide(NewRegistryFromConfig),
)

// Option configures forms handed out by a Registry.
type Option func(*options)

type options struct {
	submitTimeout time.Duration
	ttl           time.Duration
	now           func() time.Time
}

func defaultOptions() options {
	return options{
		submitTimeout: 30 * time.Second,
		ttl:           30 * time.Minute,
		now:           time.Now,
	}
}

// WithSubmitTimeout bounds each delivery. Zero disables the bound.
func WithSubmitTimeout(d time.Duration) Option {
	return func(o *options) { o.submitTimeout = d }
}

// WithTTL sets how long an idle form is kept before Sweep drops it.
func WithTTL(d time.Duration) Option {
	return func(o *options) { o.ttl = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Registry hands out one Form per form id.
type Registry struct {
	submitter Submitter
	opts      []Option
	ttl       time.Duration
	now       func() time.Time

	mu    sync.Mutex
	forms map[string]*Form
}

// NewRegistry creates an empty registry whose forms deliver to s.
func NewRegistry(s Submitter, opts ...Option) *Registry {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry{
		submitter: s,
		opts:      opts,
		ttl:       o.ttl,
		now:       o.now,
		forms:     make(map[string]*Form),
	}
}

// NewRegistryFromConfig wires the registry from the contact settings.
func NewRegistryFromConfig(cfg *config.Config, s Submitter, log *slog.Logger) *Registry {
	log.Debug("contact registry configured",
		slog.Duration("submit_timeout", cfg.Contact.SubmitTimeout),
		slog.Duration("form_ttl", cfg.Contact.FormTTL))
	return NewRegistry(s,
		WithSubmitTimeout(cfg.Contact.SubmitTimeout),
		WithTTL(cfg.Contact.FormTTL),
	)
}

// Form returns the form for id, creating it when unknown. An id that is not
// a UUID is replaced by a fresh one.
func (r *Registry) Form(id string) *Form {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return r.NewForm()
	}
	key := parsed.String()

	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.forms[key]; ok {
		return f
	}
	f := NewForm(key, r.submitter, r.opts...)
	r.forms[key] = f
	return f
}

// NewForm registers and returns an empty form with a fresh id.
func (r *Registry) NewForm() *Form {
	id := uuid.NewString()
	f := NewForm(id, r.submitter, r.opts...)

	r.mu.Lock()
	r.forms[id] = f
	r.mu.Unlock()
	return f
}

// Ephemeral returns a fresh form with the registry's submitter and options
// that is never tracked. Its data is gone once the caller drops it.
func (r *Registry) Ephemeral() *Form {
	return NewForm(uuid.NewString(), r.submitter, r.opts...)
}

// Peek returns the form for id without creating it.
func (r *Registry) Peek(id string) (*Form, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.forms[id]
	return f, ok
}

// Sweep drops forms idle for longer than the TTL. In-flight forms are kept.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, f := range r.forms {
		if f.idleSince(cutoff) {
			delete(r.forms, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked forms.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}
