package pathname

import "context"

// Walker produces a pre-order listing of a subtree.
type Walker interface {
	// Walk traverses root sequentially. The first error aborts the walk and
	// no partial result is returned.
	Walk(ctx context.Context, root Path, depth Depth) ([]Path, error)

	// WalkAsync traverses root with concurrent directory reads and delivers
	// exactly one Outcome. The delivered order matches Walk.
	WalkAsync(ctx context.Context, root Path, depth Depth) <-chan Outcome[[]Path]
}

// Remover deletes a subtree bottom-up.
type Remover interface {
	// Remove deletes root and everything below it, returning root.
	Remove(ctx context.Context, root Path) (Path, error)

	// RemoveAsync is Remove delivered on a channel.
	RemoveAsync(ctx context.Context, root Path) <-chan Outcome[Path]
}

// Creator creates a directory together with its missing ancestors.
type Creator interface {
	// Create makes every missing prefix of target, root first, returning target.
	Create(ctx context.Context, target Path) (Path, error)

	// CreateAsync is Create delivered on a channel.
	CreateAsync(ctx context.Context, target Path) <-chan Outcome[Path]
}
