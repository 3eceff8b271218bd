// Package clock provides a context-aware wait that tests can replace.
package clock

import (
	"context"
	"time"
)

// Clock blocks for a duration or until ctx is done.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Real waits on wall-clock time.
type Real struct{}

// Sleep returns after d, or with ctx.Err() if ctx ends first. A non-positive
// d returns immediately.
func (Real) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Recorder is a Clock that records requested waits without blocking.
type Recorder struct {
	Waits []time.Duration
}

// Sleep records d and returns ctx.Err().
func (r *Recorder) Sleep(ctx context.Context, d time.Duration) error {
	r.Waits = append(r.Waits, d)
	return ctx.Err()
}
