package tree

import (
	"context"
	"sync/atomic"

	"github.com/vvka-141/pathname/pkg/pathname"
)

// completionGuard delivers the single outcome of one asynchronous invocation.
// Concurrent branches race to finish it; only the first call to win the
// compare-and-swap sends, every later call is discarded.
type completionGuard[T any] struct {
	done   atomic.Bool
	ch     chan pathname.Outcome[T]
	cancel context.CancelFunc
}

// newCompletionGuard returns a guard whose finish also calls cancel, stopping
// branches that are still running.
func newCompletionGuard[T any](cancel context.CancelFunc) *completionGuard[T] {
	return &completionGuard[T]{
		ch:     make(chan pathname.Outcome[T], 1),
		cancel: cancel,
	}
}

// finish delivers value or err and reports whether this call won.
func (g *completionGuard[T]) finish(value T, err error) bool {
	if !g.done.CompareAndSwap(false, true) {
		return false
	}
	if err != nil {
		var zero T
		value = zero
	}
	g.ch <- pathname.Outcome[T]{Value: value, Err: err}
	if g.cancel != nil {
		g.cancel()
	}
	return true
}

func (g *completionGuard[T]) fail(err error) bool {
	var zero T
	return g.finish(zero, err)
}

func (g *completionGuard[T]) completed() bool {
	return g.done.Load()
}

func (g *completionGuard[T]) outcome() <-chan pathname.Outcome[T] {
	return g.ch
}
