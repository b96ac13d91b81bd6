package components

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/pathname/pkg/pathname"
)

// PathCompleter completes partially typed filesystem paths for shell completion.
//
// Usage:
//
//	completer := NewPathCompleter(probe, true) // dirs only
//	candidates := completer.Complete(ctx, toComplete)
type PathCompleter struct {
	probe    pathname.Probe
	dirsOnly bool
}

// NewPathCompleter creates a new path completer.
// If dirsOnly is true, only directories are matched.
// Panics if probe is nil.
func NewPathCompleter(probe pathname.Probe, dirsOnly bool) *PathCompleter {
	if probe == nil {
		panic("probe cannot be nil")
	}
	return &PathCompleter{probe: probe, dirsOnly: dirsOnly}
}

// Complete returns the sorted candidates for input. Directories carry a
// trailing separator so the shell keeps completing below them.
// Unreadable parents yield no candidates.
func (c *PathCompleter) Complete(ctx context.Context, input string) []string {
	parent, prefix := splitPath(input)

	names, err := c.probe.ListChildren(ctx, pathname.New(parent))
	if err != nil {
		return nil
	}

	lowPrefix := strings.ToLower(prefix)
	var matches []string
	for _, name := range names {
		if !strings.HasPrefix(strings.ToLower(name), lowPrefix) {
			continue
		}
		candidate := filepath.Join(parent, name)
		isDir := c.isDir(ctx, candidate)
		if c.dirsOnly && !isDir {
			continue
		}
		if isDir {
			candidate += string(filepath.Separator)
		}
		matches = append(matches, candidate)
	}

	sort.Strings(matches)
	return matches
}

// isDir reports whether p is a directory or a symlink that may lead to one.
func (c *PathCompleter) isDir(ctx context.Context, p string) bool {
	typ, err := c.probe.TypeOf(ctx, pathname.New(p))
	if err != nil {
		return false
	}
	return typ == pathname.TypeDirectory || typ == pathname.TypeSymlink
}

// splitPath splits an input into parent directory and name prefix.
//
//	"./src/com" → ("src", "com")
//	"./src/"    → ("./src", "")
//	"my"        → (".", "my")
//	""          → (".", "")
//	"."         → (".", "")
func splitPath(input string) (parent, prefix string) {
	if input == "" || input == "." {
		return ".", ""
	}

	if strings.HasSuffix(input, string(filepath.Separator)) || strings.HasSuffix(input, "/") {
		trimmed := strings.TrimRight(input, `/\`)
		if trimmed == "" {
			return string(filepath.Separator), ""
		}
		return trimmed, ""
	}

	parent = filepath.Dir(input)
	prefix = filepath.Base(input)
	return parent, prefix
}
