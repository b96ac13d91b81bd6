package filesystem

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/vvka-141/pathname/pkg/pathname"
)

// MemoryProbe implements pathname.Probe over an in-memory filesystem.
// It is intended for tests; symbolic links are not supported.
type MemoryProbe struct {
	*Probe
	root pathname.Path
}

// NewMemoryProbe creates a new in-memory probe.
// Relative paths passed to AddFile and AddDir resolve against root, which
// is created up front.
func NewMemoryProbe(root string, opts ...Option) *MemoryProbe {
	fsys := afero.NewMemMapFs()
	r := pathname.New(filepath.ToSlash(root))
	_ = fsys.MkdirAll(r.String(), 0o755)
	return &MemoryProbe{Probe: NewProbe(fsys, opts...), root: r}
}

// Root returns the directory relative seeds resolve against.
func (m *MemoryProbe) Root() pathname.Path {
	return m.root
}

// AddFile adds a file to the in-memory filesystem, creating parent directories.
func (m *MemoryProbe) AddFile(filePath string, content string) pathname.Path {
	p := m.resolve(filePath)
	_ = m.fs.MkdirAll(p.Parent().String(), 0o755)
	_ = afero.WriteFile(m.fs, p.String(), []byte(content), 0o644)
	return p
}

// AddDir adds a directory (and its parents) to the in-memory filesystem.
func (m *MemoryProbe) AddDir(dirPath string) pathname.Path {
	p := m.resolve(dirPath)
	_ = m.fs.MkdirAll(p.String(), 0o755)
	return p
}

func (m *MemoryProbe) resolve(p string) pathname.Path {
	p = filepath.ToSlash(p)
	if filepath.IsAbs(p) {
		return pathname.New(p)
	}
	return m.root.Join(p)
}
