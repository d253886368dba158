package contact

import (
	"context"
	"time"
)

// Submitter records a lead. Implementations must honor ctx cancellation.
type Submitter interface {
	Submit(ctx context.Context, s Submission) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, s Submission) error

func (f SubmitterFunc) Submit(ctx context.Context, s Submission) error {
	return f(ctx, s)
}

// SimulatedSubmitter waits for a fixed delay and then succeeds.
type SimulatedSubmitter struct {
	Delay time.Duration
}

// NewSimulatedSubmitter returns a submitter that always succeeds after delay.
func NewSimulatedSubmitter(delay time.Duration) *SimulatedSubmitter {
	return &SimulatedSubmitter{Delay: delay}
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, _ Submission) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
