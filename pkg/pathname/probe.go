package pathname

import (
	"context"
	"io/fs"
)

// NodeType classifies a filesystem node without following symbolic links.
type NodeType int

const (
	TypeOther NodeType = iota
	TypeFile
	TypeDirectory
	TypeSymlink
)

func (t NodeType) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeDirectory:
		return "directory"
	case TypeSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// NodeTypeOf maps an Lstat mode to a NodeType.
func NodeTypeOf(mode fs.FileMode) NodeType {
	switch {
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	case mode.IsDir():
		return TypeDirectory
	case mode.IsRegular():
		return TypeFile
	default:
		return TypeOther
	}
}

// Probe provides the single-node filesystem primitives tree operations are built on.
// Implementations must be safe for concurrent use by multiple goroutines.
//
// Errors returned by a Probe should be *Error values so callers can match
// them with errors.Is against the package sentinels.
type Probe interface {
	// Exists reports whether p exists. A dangling symlink exists.
	Exists(ctx context.Context, p Path) (bool, error)

	// TypeOf classifies p without resolving it through a symlink.
	TypeOf(ctx context.Context, p Path) (NodeType, error)

	// ListChildren returns the basenames of p's entries in listing order.
	// Fails if p is not a directory or cannot be read.
	ListChildren(ctx context.Context, p Path) ([]string, error)

	// CreateDirectory creates the single directory p.
	CreateDirectory(ctx context.Context, p Path) error

	// RemoveFile unlinks a file, symlink or other non-directory node.
	RemoveFile(ctx context.Context, p Path) error

	// RemoveEmptyDirectory removes p, failing if it still has entries.
	RemoveEmptyDirectory(ctx context.Context, p Path) error
}
