package tree

import "github.com/vvka-141/pathname/pkg/pathname"

// Options tunes the tree operations.
type Options struct {
	// MaxConcurrentReads bounds in-flight directory listings during WalkAsync.
	// Zero or negative means unbounded.
	MaxConcurrentReads int

	// VerifyAncestors makes Create fail with ErrNotADirectory when an existing
	// prefix is not a directory. When false, existing prefixes are skipped unchecked.
	VerifyAncestors bool
}

// DefaultOptions returns the options used by the CLI when no configuration overrides them.
func DefaultOptions() Options {
	return Options{
		MaxConcurrentReads: pathname.DefaultMaxConcurrentReads,
	}
}
