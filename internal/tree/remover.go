package tree

import (
	"context"
	"fmt"

	"github.com/vvka-141/pathname/pkg/pathname"
)

// Remover deletes a subtree bottom-up: it walks the whole subtree, reverses
// the pre-order listing into post-order and removes one node at a time, so
// every directory is empty by the time it is removed.
type Remover struct {
	walker *Walker
	probe  pathname.Probe
	logger pathname.Logger
}

var _ pathname.Remover = (*Remover)(nil)

// NewRemover creates a Remover that walks and deletes through walker's probe.
// Panics if walker is nil.
func NewRemover(walker *Walker) *Remover {
	if walker == nil {
		panic("walker cannot be nil")
	}
	return &Remover{
		walker: walker,
		probe:  walker.probe,
		logger: walker.logger,
	}
}

// Remove deletes root and everything below it and returns root.
// Symlinks are unlinked, never followed.
func (r *Remover) Remove(ctx context.Context, root pathname.Path) (pathname.Path, error) {
	entries, err := r.walker.walkEntries(ctx, root, pathname.Unbounded)
	if err != nil {
		return pathname.Path{}, err
	}
	if err := r.removeAll(ctx, entries); err != nil {
		return pathname.Path{}, err
	}
	return root, nil
}

// RemoveAsync walks root concurrently, then removes sequentially on the
// delivering goroutine.
func (r *Remover) RemoveAsync(ctx context.Context, root pathname.Path) <-chan pathname.Outcome[pathname.Path] {
	return pathname.Go(func() (pathname.Path, error) {
		out := <-r.walker.walkEntriesAsync(ctx, root, pathname.Unbounded)
		if out.Err != nil {
			return pathname.Path{}, out.Err
		}
		if err := r.removeAll(ctx, out.Value); err != nil {
			return pathname.Path{}, err
		}
		return root, nil
	})
}

// removeAll removes pre-order entries in reverse. A node whose type differs
// from the type recorded during the walk aborts the removal.
func (r *Remover) removeAll(ctx context.Context, entries []entry) error {
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]

		current, err := r.probe.TypeOf(ctx, e.path)
		if err != nil {
			return err
		}
		if current != e.typ {
			return pathname.NewError("remove", e.path, pathname.KindIO,
				fmt.Errorf("%w: was %s, now %s", pathname.ErrTypeChanged, e.typ, current))
		}

		if e.typ == pathname.TypeDirectory {
			err = r.probe.RemoveEmptyDirectory(ctx, e.path)
		} else {
			err = r.probe.RemoveFile(ctx, e.path)
		}
		if err != nil {
			return err
		}
		r.logger.Verbose("removed %s %s", e.typ, e.path)
	}
	return nil
}
