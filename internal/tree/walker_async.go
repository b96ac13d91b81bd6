package tree

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/vvka-141/pathname/pkg/pathname"
)

// asyncWalk is the state of one WalkAsync invocation.
type asyncWalk struct {
	w     *Walker
	id    string
	reads *semaphore.Weighted
	guard *completionGuard[[]entry]
}

// walkEntriesAsync starts a concurrent walk of root. The returned channel
// receives exactly one outcome: the pre-order entries, or the first error
// that reached the guard.
func (w *Walker) walkEntriesAsync(ctx context.Context, root pathname.Path, depth pathname.Depth) <-chan pathname.Outcome[[]entry] {
	walkCtx, cancel := context.WithCancel(ctx)

	aw := &asyncWalk{
		w:     w,
		id:    uuid.New().String(),
		guard: newCompletionGuard[[]entry](cancel),
	}
	if w.opts.MaxConcurrentReads > 0 {
		aw.reads = semaphore.NewWeighted(int64(w.opts.MaxConcurrentReads))
	}

	w.logger.Verbose("walk %s: %s (depth %s, async)", aw.id, root, depth)

	go func() {
		entries, err := aw.visit(walkCtx, root, depth)
		if err != nil {
			aw.guard.fail(err)
			return
		}
		if aw.guard.finish(entries, nil) {
			w.logger.Verbose("walk %s: visited %d nodes", aw.id, len(entries))
		}
	}()

	return aw.guard.outcome()
}

// visit returns the pre-order entries of the subtree at p. Children are
// visited concurrently; each writes into its own slot so the join restores
// listing order regardless of completion order.
func (aw *asyncWalk) visit(ctx context.Context, p pathname.Path, depth pathname.Depth) ([]entry, error) {
	typ, err := pathname.Await(ctx, aw.w.async.TypeOf(ctx, p))
	if err != nil {
		return nil, aw.failed(err)
	}

	node := entry{path: p, typ: typ}
	if !divable(typ, depth) {
		return []entry{node}, nil
	}

	names, err := aw.list(ctx, p)
	if err != nil {
		return nil, aw.failed(err)
	}

	slots := make([][]entry, len(names))
	next := depth.Descend()

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			sub, err := aw.visit(gctx, p.Join(name), next)
			if err != nil {
				return err
			}
			slots[i] = sub
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	size := 1
	for _, s := range slots {
		size += len(s)
	}
	out := make([]entry, 0, size)
	out = append(out, node)
	for _, s := range slots {
		out = append(out, s...)
	}
	return out, nil
}

// list reads the children of p, holding a read slot while the listing is in flight.
func (aw *asyncWalk) list(ctx context.Context, p pathname.Path) ([]string, error) {
	if aw.reads != nil {
		if err := aw.reads.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		defer aw.reads.Release(1)
	}
	return pathname.Await(ctx, aw.w.async.ListChildren(ctx, p))
}

// failed hands err to the guard and returns it so the branch unwinds.
// Errors arriving after the walk completed are dropped.
func (aw *asyncWalk) failed(err error) error {
	if aw.guard.fail(err) {
		aw.w.logger.Verbose("walk %s: failed: %v", aw.id, err)
	}
	return err
}
