package engine

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrStale reports that a newer Analyze call started before this one's result
// was returned; the caller must discard the run.
var ErrStale = errors.New("analysis superseded by a newer invocation")

// Runner serializes result delivery across overlapping analysis calls with
// last-invocation-wins semantics. The zero value is ready to use, and one
// Runner may be shared by concurrent goroutines.
type Runner struct {
	gen atomic.Uint64
}

// Analyze runs a full report build. When another Analyze begins on the same
// Runner before this one finishes, the earlier call returns ErrStale instead
// of its (now outdated) report.
func (r *Runner) Analyze(ctx context.Context, title, text string, opts Options) (Report, error) {
	gen := r.gen.Add(1)
	rep := BuildReport(title, text, opts)
	return r.deliver(ctx, gen, rep)
}

// deliver hands back a finished report only when no newer invocation has
// started and the caller's context is still live.
func (r *Runner) deliver(ctx context.Context, gen uint64, rep Report) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	if r.gen.Load() != gen {
		return Report{}, ErrStale
	}
	return rep, nil
}
