package tree

import (
	"context"

	"github.com/vvka-141/pathname/pkg/pathname"
)

// Children returns the entries of p as basenames, in listing order.
func (w *Walker) Children(ctx context.Context, p pathname.Path) ([]pathname.Path, error) {
	names, err := w.probe.ListChildren(ctx, p)
	if err != nil {
		return nil, err
	}
	children := make([]pathname.Path, len(names))
	for i, name := range names {
		children[i] = pathname.New(name)
	}
	return children, nil
}

// ChildrenAsync is Children delivered on a channel.
func (w *Walker) ChildrenAsync(ctx context.Context, p pathname.Path) <-chan pathname.Outcome[[]pathname.Path] {
	return pathname.Go(func() ([]pathname.Path, error) {
		return w.Children(ctx, p)
	})
}

// Siblings returns the entries of p's parent other than p itself, as basenames.
// The root has no siblings.
func (w *Walker) Siblings(ctx context.Context, p pathname.Path) ([]pathname.Path, error) {
	if p.IsRoot() {
		return []pathname.Path{}, nil
	}
	children, err := w.Children(ctx, p.Parent())
	if err != nil {
		return nil, err
	}
	self := p.Base()
	siblings := make([]pathname.Path, 0, len(children))
	for _, c := range children {
		if !c.Equal(self) {
			siblings = append(siblings, c)
		}
	}
	return siblings, nil
}

// SiblingsAsync is Siblings delivered on a channel.
func (w *Walker) SiblingsAsync(ctx context.Context, p pathname.Path) <-chan pathname.Outcome[[]pathname.Path] {
	return pathname.Go(func() ([]pathname.Path, error) {
		return w.Siblings(ctx, p)
	})
}
