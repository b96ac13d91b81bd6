package tree

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionGuard_FirstFinishWins(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := newCompletionGuard[int](cancel)

	assert.True(t, g.finish(1, nil))
	assert.False(t, g.finish(2, nil))
	assert.False(t, g.fail(errors.New("late")))
	assert.True(t, g.completed())
	assert.Error(t, ctx.Err(), "finish must cancel the invocation context")

	out := <-g.outcome()
	require.NoError(t, out.Err)
	assert.Equal(t, 1, out.Value)
	assert.Empty(t, g.outcome())
}

func TestCompletionGuard_FailClearsValue(t *testing.T) {
	g := newCompletionGuard[[]int](nil)
	boom := errors.New("boom")

	require.True(t, g.finish([]int{1}, boom))

	out := <-g.outcome()
	assert.ErrorIs(t, out.Err, boom)
	assert.Nil(t, out.Value)
}

func TestCompletionGuard_ConcurrentFinishersDeliverOnce(t *testing.T) {
	for i := 0; i < 100; i++ {
		g := newCompletionGuard[int](func() {})
		var wins atomic.Int32
		var wg sync.WaitGroup
		for n := 0; n < 16; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if g.fail(errors.New("branch failed")) {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), wins.Load())
		assert.Len(t, g.outcome(), 1)
	}
}
