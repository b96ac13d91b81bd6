package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/vvka-141/pathname/pkg/pathname"
)

func TestOSProbe_Exists(t *testing.T) {
	dir := t.TempDir()
	probe := NewOSProbe()
	ctx := context.Background()

	ok, err := probe.Exists(ctx, pathname.New(dir))
	if err != nil || !ok {
		t.Fatalf("Exists(%q) = %v, %v; want true, nil", dir, ok, err)
	}

	ok, err = probe.Exists(ctx, pathname.New(filepath.Join(dir, "nonexistent")))
	if err != nil || ok {
		t.Errorf("Exists(nonexistent) = %v, %v; want false, nil", ok, err)
	}
}

func TestOSProbe_TypeOf(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "file.txt")
	os.WriteFile(filePath, []byte("content"), 0644)
	linkPath := filepath.Join(dir, "link")
	if err := os.Symlink(dir, linkPath); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	probe := NewOSProbe()
	ctx := context.Background()

	tests := []struct {
		path string
		want pathname.NodeType
	}{
		{dir, pathname.TypeDirectory},
		{filePath, pathname.TypeFile},
		{linkPath, pathname.TypeSymlink},
	}
	for _, tt := range tests {
		got, err := probe.TypeOf(ctx, pathname.New(tt.path))
		if err != nil {
			t.Fatalf("TypeOf(%q) error = %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("TypeOf(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestOSProbe_TypeOf_Nonexistent(t *testing.T) {
	probe := NewOSProbe()

	_, err := probe.TypeOf(context.Background(), pathname.New(filepath.Join(t.TempDir(), "nope")))
	if !errors.Is(err, pathname.ErrNotFound) {
		t.Errorf("TypeOf(nonexistent) error = %v, want ErrNotFound", err)
	}
}

func TestOSProbe_ListChildren(t *testing.T) {
	dir := t.TempDir()

	// Create a tree:
	//   dir/
	//     a.txt
	//     sub/
	//       b.txt
	sub := filepath.Join(dir, "sub")
	os.Mkdir(sub, 0755)
	os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644)
	os.WriteFile(filepath.Join(sub, "b.txt"), []byte("b"), 0644)

	probe := NewOSProbe()
	names, err := probe.ListChildren(context.Background(), pathname.New(dir))
	if err != nil {
		t.Fatalf("ListChildren() error = %v", err)
	}

	sort.Strings(names)
	if len(names) != 2 || names[0] != "a.txt" || names[1] != "sub" {
		t.Errorf("ListChildren() = %v, want [a.txt sub]", names)
	}
}

func TestOSProbe_ListChildren_FileNotDirectory(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "file.txt")
	os.WriteFile(filePath, []byte("content"), 0644)

	probe := NewOSProbe()

	_, err := probe.ListChildren(context.Background(), pathname.New(filePath))
	if !errors.Is(err, pathname.ErrNotADirectory) {
		t.Errorf("ListChildren(file) error = %v, want ErrNotADirectory", err)
	}
}

func TestOSProbe_CreateDirectory(t *testing.T) {
	dir := t.TempDir()
	probe := NewOSProbe(WithDirMode(0o750))
	target := pathname.New(filepath.Join(dir, "new"))

	if err := probe.CreateDirectory(context.Background(), target); err != nil {
		t.Fatalf("CreateDirectory() error = %v", err)
	}
	info, err := os.Stat(target.String())
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Error("created path is not a directory")
	}
}

func TestOSProbe_CreateDirectory_MissingParent(t *testing.T) {
	probe := NewOSProbe()
	target := pathname.New(filepath.Join(t.TempDir(), "missing", "child"))

	err := probe.CreateDirectory(context.Background(), target)
	if !errors.Is(err, pathname.ErrNotFound) {
		t.Errorf("CreateDirectory() error = %v, want ErrNotFound", err)
	}
}

func TestOSProbe_RemoveFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "file.txt")
	os.WriteFile(filePath, []byte("content"), 0644)

	probe := NewOSProbe()
	if err := probe.RemoveFile(context.Background(), pathname.New(filePath)); err != nil {
		t.Fatalf("RemoveFile() error = %v", err)
	}
	if _, err := os.Lstat(filePath); !os.IsNotExist(err) {
		t.Errorf("file still exists after RemoveFile: %v", err)
	}
}

func TestOSProbe_RemoveFile_SymlinkKeepsTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	os.Mkdir(target, 0755)
	os.WriteFile(filepath.Join(target, "keep.txt"), []byte("keep"), 0644)
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	probe := NewOSProbe()
	if err := probe.RemoveFile(context.Background(), pathname.New(link)); err != nil {
		t.Fatalf("RemoveFile(symlink) error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(target, "keep.txt")); err != nil {
		t.Errorf("symlink target was touched: %v", err)
	}
}

func TestOSProbe_RemoveFile_Directory(t *testing.T) {
	probe := NewOSProbe()

	err := probe.RemoveFile(context.Background(), pathname.New(t.TempDir()))
	if err == nil {
		t.Error("RemoveFile(directory) should return error")
	}
}

func TestOSProbe_RemoveEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	os.Mkdir(sub, 0755)
	os.WriteFile(filepath.Join(sub, "f"), []byte("x"), 0644)

	probe := NewOSProbe()
	ctx := context.Background()

	err := probe.RemoveEmptyDirectory(ctx, pathname.New(sub))
	if !errors.Is(err, pathname.ErrDirectoryNotEmpty) {
		t.Fatalf("RemoveEmptyDirectory(non-empty) error = %v, want ErrDirectoryNotEmpty", err)
	}

	os.Remove(filepath.Join(sub, "f"))
	if err := probe.RemoveEmptyDirectory(ctx, pathname.New(sub)); err != nil {
		t.Fatalf("RemoveEmptyDirectory() error = %v", err)
	}
	if _, err := os.Stat(sub); !os.IsNotExist(err) {
		t.Errorf("directory still exists: %v", err)
	}
}

func TestOSProbe_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	probe := NewOSProbe()
	_, err := probe.ListChildren(ctx, pathname.New(t.TempDir()))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ListChildren() error = %v, want context.Canceled", err)
	}
}
