package tree

import (
	"context"

	"github.com/google/uuid"

	"github.com/vvka-141/pathname/internal/files/filesystem"
	"github.com/vvka-141/pathname/pkg/pathname"
)

// entry is a walked node together with the type it had when it was visited.
type entry struct {
	path pathname.Path
	typ  pathname.NodeType
}

func entryPaths(entries []entry) []pathname.Path {
	paths := make([]pathname.Path, len(entries))
	for i, e := range entries {
		paths[i] = e.path
	}
	return paths
}

// divable reports whether a walk lists the children of a node.
// Symlinks are never followed.
func divable(typ pathname.NodeType, depth pathname.Depth) bool {
	return typ == pathname.TypeDirectory && !depth.Exhausted()
}

// Walker lists a subtree in pre-order: a node, then the subtrees of its
// children in listing order.
// Walker is safe for concurrent use by multiple goroutines as long as the
// provided probe is.
type Walker struct {
	probe  pathname.Probe
	async  *filesystem.Async
	logger pathname.Logger
	opts   Options
}

var _ pathname.Walker = (*Walker)(nil)

// NewWalker creates a Walker over probe.
// Panics if probe or logger is nil.
func NewWalker(probe pathname.Probe, logger pathname.Logger, opts Options) *Walker {
	if probe == nil {
		panic("probe cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Walker{
		probe:  probe,
		async:  filesystem.NewAsync(probe),
		logger: logger,
		opts:   opts,
	}
}

// Walk traverses root sequentially and returns every visited path in pre-order.
//
// Parameters:
//   - root: Path to start from; it is always the first element of the result
//   - depth: How far to descend; pathname.Unbounded or pathname.MaxDepth(n)
//
// Returns:
//   - []pathname.Path: Visited paths, root first
//   - error: The first failure; no partial result is returned
func (w *Walker) Walk(ctx context.Context, root pathname.Path, depth pathname.Depth) ([]pathname.Path, error) {
	entries, err := w.walkEntries(ctx, root, depth)
	if err != nil {
		return nil, err
	}
	return entryPaths(entries), nil
}

// WalkAsync traverses root with concurrent directory reads. The channel
// receives exactly one Outcome whose paths are ordered exactly as Walk orders them.
func (w *Walker) WalkAsync(ctx context.Context, root pathname.Path, depth pathname.Depth) <-chan pathname.Outcome[[]pathname.Path] {
	return pathname.Go(func() ([]pathname.Path, error) {
		out := <-w.walkEntriesAsync(ctx, root, depth)
		if out.Err != nil {
			return nil, out.Err
		}
		return entryPaths(out.Value), nil
	})
}

// walkEntries is the sequential walk. It keeps an explicit worklist so deep
// trees do not grow the goroutine stack; children are pushed in reverse so
// they pop in listing order.
func (w *Walker) walkEntries(ctx context.Context, root pathname.Path, depth pathname.Depth) ([]entry, error) {
	walkID := uuid.New().String()
	w.logger.Verbose("walk %s: %s (depth %s)", walkID, root, depth)

	typ, err := w.probe.TypeOf(ctx, root)
	if err != nil {
		return nil, err
	}

	type frame struct {
		node  entry
		depth pathname.Depth
	}

	stack := []frame{{node: entry{path: root, typ: typ}, depth: depth}}
	var visited []entry

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited = append(visited, f.node)

		if !divable(f.node.typ, f.depth) {
			continue
		}

		names, err := w.probe.ListChildren(ctx, f.node.path)
		if err != nil {
			return nil, err
		}

		next := f.depth.Descend()
		children := make([]frame, len(names))
		for i, name := range names {
			child := f.node.path.Join(name)
			childType, err := w.probe.TypeOf(ctx, child)
			if err != nil {
				return nil, err
			}
			children[i] = frame{node: entry{path: child, typ: childType}, depth: next}
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	w.logger.Verbose("walk %s: visited %d nodes", walkID, len(visited))
	return visited, nil
}
