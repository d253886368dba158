package contact

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"

	"github.com/numiflow/website/pkg/tracing"
)

var (
	// ErrInFlight is returned when a submit arrives while another is running.
	ErrInFlight = errors.New("contact: submission already in flight")
	// ErrSubmit wraps every error returned by the Submitter.
	ErrSubmit = errors.New("contact: submission failed")
)

// ValidationError lists the fields that failed their constraints, keyed by
// field with the failed rule as value.
type ValidationError struct {
	Fields map[Field]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f, rule := range e.Fields {
		names = append(names, string(f)+"="+rule)
	}
	sort.Strings(names)
	return "contact: invalid fields: " + strings.Join(names, ", ")
}

// Has reports whether f failed validation.
func (e *ValidationError) Has(f Field) bool {
	_, ok := e.Fields[f]
	return ok
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name, _, _ := strings.Cut(sf.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return sf.Name
		}
		return name
	})
	return v
}

// Validate checks d against the same constraints the HTML form enforces.
func Validate(d Data) error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make(map[Field]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[Field(fe.Field())] = fe.Tag()
	}
	return out
}

// Snapshot is a point-in-time copy of a form for rendering.
type Snapshot struct {
	ID       string
	Data     Data
	Status   Status
	InFlight bool
}

// Form is one visitor's contact form. It is safe for concurrent use.
type Form struct {
	id        string
	submitter Submitter
	timeout   time.Duration
	now       func() time.Time

	mu         sync.Mutex
	data       Data
	status     Status
	inFlight   bool
	lastActive time.Time
}

// NewForm returns an empty idle form.
func NewForm(id string, s Submitter, opts ...Option) *Form {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Form{
		id:         id,
		submitter:  s,
		timeout:    o.submitTimeout,
		now:        o.now,
		lastActive: o.now(),
	}
}

// ID is the form id carried in the hidden form_id field.
func (f *Form) ID() string { return f.id }

// SetField updates exactly one field. Unknown fields are ignored.
func (f *Form) SetField(field Field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = f.data.Set(field, value)
	f.lastActive = f.now()
}

// Snapshot returns the current state.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Form) snapshotLocked() Snapshot {
	return Snapshot{ID: f.id, Data: f.data, Status: f.status, InFlight: f.inFlight}
}

// Submit hands the current values to the Submitter.
//
// A submit while another is in flight returns ErrInFlight, and values that
// fail validation return a *ValidationError; neither changes any state.
// Otherwise the status goes idle, then success (fields cleared) or error
// (fields kept). Delivery runs on a context detached from ctx's cancellation
// so a dropped client connection does not abandon the lead.
func (f *Form) Submit(ctx context.Context, meta Meta) (Snapshot, error) {
	f.mu.Lock()
	if f.inFlight {
		snap := f.snapshotLocked()
		f.mu.Unlock()
		return snap, ErrInFlight
	}
	if err := Validate(f.data); err != nil {
		snap := f.snapshotLocked()
		f.mu.Unlock()
		return snap, err
	}
	f.inFlight = true
	f.status = StatusIdle
	meta.FormID = f.id
	if meta.SubmittedAt.IsZero() {
		meta.SubmittedAt = f.now()
	}
	sub := Submission{Data: f.data, Meta: meta}
	f.mu.Unlock()

	err := f.deliver(ctx, sub)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false
	f.lastActive = f.now()
	if err != nil {
		f.status = StatusError
		return f.snapshotLocked(), fmt.Errorf("%w: %w", ErrSubmit, err)
	}
	f.data = Data{}
	f.status = StatusSuccess
	return f.snapshotLocked(), nil
}

func (f *Form) deliver(ctx context.Context, sub Submission) (err error) {
	ctx = context.WithoutCancel(ctx)
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	ctx, span := tracing.Start(ctx, "contact.submit",
		attribute.String("numiflow.form.id", sub.FormID),
		attribute.String("numiflow.locale", sub.Locale.String()),
		attribute.String("numiflow.employees", sub.Employees),
	)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("submitter panic: %v", r)
		}
		tracing.Fail(span, err)
	}()

	return f.submitter.Submit(ctx, sub)
}

// idleSince reports whether the form is not in flight and untouched since cutoff.
func (f *Form) idleSince(cutoff time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.inFlight && f.lastActive.Before(cutoff)
}
