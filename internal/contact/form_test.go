package contact

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numiflow/website/internal/locale"
)

func okSubmitter() Submitter {
	return SubmitterFunc(func(context.Context, Submission) error { return nil })
}

func fill(f *Form, d Data) {
	for _, field := range Fields() {
		f.SetField(field, d.Get(field))
	}
}

var valid = Data{Name: "A", Email: "a@b.com", Company: "Acme", Employees: "1-10", Message: "hi"}

func TestForm_StartsEmptyAndIdle(t *testing.T) {
	snap := NewForm("f1", okSubmitter()).Snapshot()

	assert.Equal(t, "f1", snap.ID)
	assert.True(t, snap.Data.IsEmpty())
	assert.Equal(t, StatusIdle, snap.Status)
	assert.False(t, snap.InFlight)
}

func TestForm_SetFieldChangesOnlyThatField(t *testing.T) {
	f := NewForm("f1", okSubmitter())
	fill(f, valid)

	f.SetField(FieldCompany, "Other")

	want := valid
	want.Company = "Other"
	assert.Equal(t, want, f.Snapshot().Data)
}

func TestForm_SetFieldIgnoresUnknown(t *testing.T) {
	f := NewForm("f1", okSubmitter())
	fill(f, valid)

	f.SetField(Field("phone"), "123")

	assert.Equal(t, valid, f.Snapshot().Data)
}

func TestForm_SubmitSuccessClearsFields(t *testing.T) {
	var got Submission
	f := NewForm("f1", SubmitterFunc(func(_ context.Context, s Submission) error {
		got = s
		return nil
	}))
	fill(f, valid)

	snap, err := f.Submit(context.Background(), Meta{Locale: locale.Latvian})
	require.NoError(t, err)

	assert.True(t, snap.Data.IsEmpty())
	assert.Equal(t, StatusSuccess, snap.Status)
	assert.False(t, snap.InFlight)

	assert.Equal(t, valid, got.Data)
	assert.Equal(t, "f1", got.FormID)
	assert.Equal(t, locale.Latvian, got.Locale)
	assert.False(t, got.SubmittedAt.IsZero())
}

func TestForm_SubmitFailureKeepsFields(t *testing.T) {
	boom := errors.New("boom")
	f := NewForm("f1", SubmitterFunc(func(context.Context, Submission) error { return boom }))
	fill(f, valid)

	snap, err := f.Submit(context.Background(), Meta{})

	assert.ErrorIs(t, err, ErrSubmit)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, valid, snap.Data)
	assert.Equal(t, StatusError, snap.Status)
	assert.False(t, snap.InFlight)
}

func TestForm_SubmitterPanicBecomesError(t *testing.T) {
	f := NewForm("f1", SubmitterFunc(func(context.Context, Submission) error { panic("nil map") }))
	fill(f, valid)

	snap, err := f.Submit(context.Background(), Meta{})

	assert.ErrorIs(t, err, ErrSubmit)
	assert.Equal(t, StatusError, snap.Status)
	assert.False(t, snap.InFlight)
}

func TestForm_RetryAfterErrorGoesThroughIdle(t *testing.T) {
	fail := true
	var statusDuring Status
	var f *Form
	f = NewForm("f1", SubmitterFunc(func(context.Context, Submission) error {
		statusDuring = f.Snapshot().Status
		if fail {
			return errors.New("down")
		}
		return nil
	}))
	fill(f, valid)

	_, err := f.Submit(context.Background(), Meta{})
	require.Error(t, err)

	fail = false
	snap, err := f.Submit(context.Background(), Meta{})
	require.NoError(t, err)

	assert.Equal(t, StatusIdle, statusDuring)
	assert.Equal(t, StatusSuccess, snap.Status)
}

func TestForm_ValidationFailureChangesNothing(t *testing.T) {
	called := false
	f := NewForm("f1", SubmitterFunc(func(context.Context, Submission) error {
		called = true
		return nil
	}))
	partial := valid
	partial.Email = "not-an-email"
	partial.Employees = "5000"
	partial.Message = ""
	fill(f, partial)

	snap, err := f.Submit(context.Background(), Meta{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[Field]string{
		FieldEmail:     "email",
		FieldEmployees: "oneof",
		FieldMessage:   "required",
	}, verr.Fields)
	assert.True(t, verr.Has(FieldEmail))
	assert.False(t, verr.Has(FieldName))
	assert.False(t, called)
	assert.Equal(t, partial, snap.Data)
	assert.Equal(t, StatusIdle, snap.Status)
}

func TestForm_SecondSubmitWhileInFlightIsRejected(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	f := NewForm("f1", SubmitterFunc(func(context.Context, Submission) error {
		close(started)
		<-release
		return nil
	}))
	fill(f, valid)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = f.Submit(context.Background(), Meta{})
	}()
	<-started

	during := f.Snapshot()
	assert.True(t, during.InFlight)

	snap, err := f.Submit(context.Background(), Meta{})
	assert.ErrorIs(t, err, ErrInFlight)
	assert.Equal(t, during, snap)

	close(release)
	wg.Wait()

	final := f.Snapshot()
	assert.False(t, final.InFlight)
	assert.Equal(t, StatusSuccess, final.Status)
}

func TestForm_DeliveryOutlivesCallerCancellation(t *testing.T) {
	f := NewForm("f1", SubmitterFunc(func(ctx context.Context, _ Submission) error {
		return ctx.Err()
	}))
	fill(f, valid)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Submit(ctx, Meta{})
	assert.NoError(t, err)
}

func TestForm_SubmitTimeout(t *testing.T) {
	f := NewForm("f1", NewSimulatedSubmitter(time.Second), WithSubmitTimeout(10*time.Millisecond))
	fill(f, valid)

	snap, err := f.Submit(context.Background(), Meta{})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StatusError, snap.Status)
	assert.Equal(t, valid, snap.Data)
}

func TestSimulatedSubmitter(t *testing.T) {
	s := NewSimulatedSubmitter(5 * time.Millisecond)
	assert.NoError(t, s.Submit(context.Background(), Submission{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, NewSimulatedSubmitter(time.Hour).Submit(ctx, Submission{}), context.Canceled)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[Field]string{FieldName: "required", FieldEmail: "email"}}
	assert.Equal(t, "contact: invalid fields: email=email, name=required", err.Error())
}

func TestParseField(t *testing.T) {
	for _, f := range Fields() {
		got, ok := ParseField(string(f))
		assert.True(t, ok)
		assert.Equal(t, f, got)
	}
	_, ok := ParseField("employeeBucket")
	assert.False(t, ok)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "error", StatusError.String())
	assert.Equal(t, "unknown", Status(9).String())
}
