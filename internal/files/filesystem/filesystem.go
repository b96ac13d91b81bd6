package filesystem

import (
	"context"
	"io"
	"io/fs"
	"os"
	"syscall"

	"github.com/spf13/afero"

	"github.com/vvka-141/pathname/pkg/pathname"
)

// Probe implements pathname.Probe on top of an afero.Fs.
// Probe is safe for concurrent use as long as the underlying afero.Fs is.
type Probe struct {
	fs      afero.Fs
	dirMode fs.FileMode
}

// Option configures a Probe.
type Option func(*Probe)

// WithDirMode sets the permission bits used by CreateDirectory.
func WithDirMode(mode fs.FileMode) Option {
	return func(p *Probe) { p.dirMode = mode }
}

// NewProbe creates a Probe over fsys.
// Panics if fsys is nil.
func NewProbe(fsys afero.Fs, opts ...Option) *Probe {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	p := &Probe{fs: fsys, dirMode: pathname.DefaultDirMode}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// lstat stats name without following a final symlink when the backend supports it.
func (p *Probe) lstat(name string) (os.FileInfo, error) {
	if l, ok := p.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(name)
		return info, err
	}
	return p.fs.Stat(name)
}

func (p *Probe) Exists(ctx context.Context, path pathname.Path) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, pathname.Classify("exists", path, err)
	}
	_, err := p.lstat(path.String())
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, pathname.Classify("exists", path, err)
}

func (p *Probe) TypeOf(ctx context.Context, path pathname.Path) (pathname.NodeType, error) {
	if err := ctx.Err(); err != nil {
		return pathname.TypeOther, pathname.Classify("lstat", path, err)
	}
	info, err := p.lstat(path.String())
	if err != nil {
		return pathname.TypeOther, pathname.Classify("lstat", path, err)
	}
	return pathname.NodeTypeOf(info.Mode()), nil
}

func (p *Probe) ListChildren(ctx context.Context, path pathname.Path) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, pathname.Classify("list", path, err)
	}

	info, err := p.fs.Stat(path.String())
	if err != nil {
		return nil, pathname.Classify("list", path, err)
	}
	if !info.IsDir() {
		return nil, pathname.NewError("list", path, pathname.KindNotADirectory, syscall.ENOTDIR)
	}

	f, err := p.fs.Open(path.String())
	if err != nil {
		return nil, pathname.Classify("list", path, err)
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, pathname.Classify("list", path, err)
	}
	return names, nil
}

func (p *Probe) CreateDirectory(ctx context.Context, path pathname.Path) error {
	if err := ctx.Err(); err != nil {
		return pathname.Classify("mkdir", path, err)
	}

	// afero.MemMapFs creates missing parents implicitly; keep host semantics.
	if !path.IsRoot() {
		parent, err := p.fs.Stat(path.Parent().String())
		if err != nil {
			return pathname.Classify("mkdir", path, err)
		}
		if !parent.IsDir() {
			return pathname.NewError("mkdir", path, pathname.KindNotADirectory, syscall.ENOTDIR)
		}
	}

	if err := p.fs.Mkdir(path.String(), p.dirMode); err != nil {
		return pathname.Classify("mkdir", path, err)
	}
	return nil
}

func (p *Probe) RemoveFile(ctx context.Context, path pathname.Path) error {
	if err := ctx.Err(); err != nil {
		return pathname.Classify("unlink", path, err)
	}

	info, err := p.lstat(path.String())
	if err != nil {
		return pathname.Classify("unlink", path, err)
	}
	if info.IsDir() {
		return pathname.NewError("unlink", path, pathname.KindIO, syscall.EISDIR)
	}

	if err := p.fs.Remove(path.String()); err != nil {
		return pathname.Classify("unlink", path, err)
	}
	return nil
}

func (p *Probe) RemoveEmptyDirectory(ctx context.Context, path pathname.Path) error {
	if err := ctx.Err(); err != nil {
		return pathname.Classify("rmdir", path, err)
	}

	info, err := p.lstat(path.String())
	if err != nil {
		return pathname.Classify("rmdir", path, err)
	}
	if !info.IsDir() {
		return pathname.NewError("rmdir", path, pathname.KindNotADirectory, syscall.ENOTDIR)
	}

	// afero.MemMapFs.Remove drops non-empty directories; check first.
	f, err := p.fs.Open(path.String())
	if err != nil {
		return pathname.Classify("rmdir", path, err)
	}
	names, err := f.Readdirnames(1)
	f.Close()
	if err != nil && err != io.EOF {
		return pathname.Classify("rmdir", path, err)
	}
	if len(names) > 0 {
		return pathname.NewError("rmdir", path, pathname.KindDirectoryNotEmpty, syscall.ENOTEMPTY)
	}

	if err := p.fs.Remove(path.String()); err != nil {
		return pathname.Classify("rmdir", path, err)
	}
	return nil
}

// Verify Probe implements the interface at compile time
var _ pathname.Probe = (*Probe)(nil)
