package pathname

import (
	"path/filepath"
	"strings"
)

// Path is an immutable, normalized filesystem path.
//
// A Path never carries a trailing separator (the root excepted), and two
// Paths are equal exactly when their normalized strings are equal. Every
// method returns a new Path; the receiver is never modified.
type Path struct {
	p string
}

// New normalizes s into a Path. The empty string normalizes to ".".
func New(s string) Path {
	return Path{p: filepath.Clean(s)}
}

// Root returns the filesystem root.
func Root() Path {
	return Path{p: string(filepath.Separator)}
}

// String returns the normalized path.
func (p Path) String() string {
	if p.p == "" {
		return "."
	}
	return p.p
}

// Equal reports whether p and other name the same normalized path.
func (p Path) Equal(other Path) bool {
	return p.String() == other.String()
}

// IsAbs reports whether the path is absolute.
func (p Path) IsAbs() bool {
	return filepath.IsAbs(p.String())
}

// IsRoot reports whether the path is the filesystem root.
func (p Path) IsRoot() bool {
	s := p.String()
	return s == filepath.VolumeName(s)+string(filepath.Separator)
}

// Join appends segments to p and renormalizes the result.
// Absolute segments are appended rather than re-rooting the path.
func (p Path) Join(segments ...string) Path {
	elems := make([]string, 0, len(segments)+1)
	elems = append(elems, p.String())
	elems = append(elems, segments...)
	return New(filepath.Join(elems...))
}

// JoinPath is Join over Path values.
func (p Path) JoinPath(others ...Path) Path {
	segments := make([]string, len(others))
	for i, o := range others {
		segments[i] = o.String()
	}
	return p.Join(segments...)
}

// Parent returns the normalized parent directory. The parent of the root
// is the root itself; the parent of a single relative segment is ".".
func (p Path) Parent() Path {
	return New(filepath.Dir(p.String()))
}

// Dir is an alias for Parent.
func (p Path) Dir() Path {
	return p.Parent()
}

// Base returns the final path segment. When ext is given and the segment
// ends with it, the extension is stripped.
func (p Path) Base(ext ...string) Path {
	base := filepath.Base(p.String())
	if len(ext) > 0 && ext[0] != "" && base != ext[0] {
		base = strings.TrimSuffix(base, ext[0])
	}
	return Path{p: base}
}

// Ext returns the extension of the final segment including the leading dot,
// or "" when there is none.
func (p Path) Ext() string {
	return filepath.Ext(p.String())
}

// Segments returns the path split on the separator, without empty elements.
// The root of an absolute path is not included.
func (p Path) Segments() []string {
	s := p.String()
	s = s[len(filepath.VolumeName(s)):]
	parts := strings.Split(s, string(filepath.Separator))
	out := parts[:0]
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Components decomposes p into its ordered prefixes, from the filesystem
// root (or the first segment of a relative path) down to p itself.
//
//	/a/b/c -> /, /a, /a/b, /a/b/c
//	a/b    -> a, a/b
func (p Path) Components() []Path {
	s := p.String()
	segments := p.Segments()

	var (
		out     []Path
		current Path
	)
	if p.IsAbs() {
		current = New(filepath.VolumeName(s) + string(filepath.Separator))
		out = append(out, current)
	} else if len(segments) == 0 {
		return []Path{p}
	}

	for i, seg := range segments {
		if i == 0 && !p.IsAbs() {
			current = New(seg)
		} else {
			current = current.Join(seg)
		}
		out = append(out, current)
	}
	return out
}

// Traverse calls visit once per component of p, in root-to-leaf order,
// and stops at the first error visit returns.
func (p Path) Traverse(visit func(Path) error) error {
	for _, c := range p.Components() {
		if err := visit(c); err != nil {
			return err
		}
	}
	return nil
}

// Rel returns p expressed relative to base.
func (p Path) Rel(base Path) (Path, error) {
	rel, err := filepath.Rel(base.String(), p.String())
	if err != nil {
		return Path{}, err
	}
	return New(rel), nil
}

// HasPrefix reports whether ancestor is p or one of p's ancestors.
func (p Path) HasPrefix(ancestor Path) bool {
	for _, c := range p.Components() {
		if c.Equal(ancestor) {
			return true
		}
	}
	return false
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(text []byte) error {
	*p = New(string(text))
	return nil
}

// Strings converts a slice of Paths to their string forms.
func Strings(paths []Path) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.String()
	}
	return out
}
