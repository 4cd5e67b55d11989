// Package bridge runs work on a single shared background goroutine so that
// synchronous entry points can block for results without owning any
// scheduling machinery themselves.
//
// The carrier is started lazily on the first synchronous call and lives for
// the rest of the process. Jobs execute one at a time, in submission order.
// Each job runs with a marked context; submitting from within a job is
// detected through the mark and rejected, since blocking the carrier on
// itself would deadlock.
package bridge

import (
	"context"
	"sync"

	"github.com/spetersoncode/toolbox"
)

type carrierKey struct{}

type job struct {
	ctx  context.Context
	fn   func(ctx context.Context) (any, error)
	done chan result
}

type result struct {
	value any
	err   error
}

var (
	startOnce sync.Once
	jobs      chan job
)

func start() {
	jobs = make(chan job)
	go func() {
		for j := range jobs {
			v, err := j.fn(context.WithValue(j.ctx, carrierKey{}, true))
			j.done <- result{value: v, err: err}
		}
	}()
}

// InCarrier reports whether ctx belongs to a job currently executing on the
// carrier goroutine.
func InCarrier(ctx context.Context) bool {
	return ctx.Value(carrierKey{}) != nil
}

// Run executes fn on the shared carrier and blocks until it finishes or ctx
// is done. If ctx is canceled first, Run returns ctx.Err(); the job still
// runs to completion on the carrier and its result is discarded.
//
// Run fails fast with toolbox.ErrInvalidInvocationContext when called with a
// context already executing on the carrier.
func Run[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if InCarrier(ctx) {
		return zero, toolbox.ErrInvalidInvocationContext
	}

	startOnce.Do(start)

	j := job{
		ctx: ctx,
		fn: func(ctx context.Context) (any, error) {
			return fn(ctx)
		},
		// Buffered so the carrier never blocks on a caller that gave up.
		done: make(chan result, 1),
	}

	select {
	case jobs <- j:
	case <-ctx.Done():
		return zero, ctx.Err()
	}

	select {
	case r := <-j.done:
		if r.err != nil {
			return zero, r.err
		}
		v, _ := r.value.(T)
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
