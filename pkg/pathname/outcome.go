package pathname

import "context"

// Outcome is the single result delivered by a non-blocking operation:
// either Value or Err, never both.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Go runs fn on its own goroutine and delivers its result on a buffered
// channel that receives exactly one Outcome.
func Go[T any](fn func() (T, error)) <-chan Outcome[T] {
	ch := make(chan Outcome[T], 1)
	go func() {
		v, err := fn()
		if err != nil {
			var zero T
			v = zero
		}
		ch <- Outcome[T]{Value: v, Err: err}
	}()
	return ch
}

// Await blocks until ch delivers or ctx is done.
func Await[T any](ctx context.Context, ch <-chan Outcome[T]) (T, error) {
	select {
	case out := <-ch:
		return out.Value, out.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
