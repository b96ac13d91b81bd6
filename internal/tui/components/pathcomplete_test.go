package components

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/vvka-141/pathname/internal/files/filesystem"
)

func TestPathCompleter_SingleMatch(t *testing.T) {
	dir := t.TempDir()
	os.Mkdir(filepath.Join(dir, "build"), 0755)
	os.Mkdir(filepath.Join(dir, "scripts"), 0755)

	c := NewPathCompleter(filesystem.NewOSProbe(), true)
	got := c.Complete(context.Background(), filepath.Join(dir, "bu"))

	want := filepath.Join(dir, "build") + string(filepath.Separator)
	if len(got) != 1 || got[0] != want {
		t.Errorf("Complete() = %v, want [%s]", got, want)
	}
}

func TestPathCompleter_DirsOnly(t *testing.T) {
	dir := t.TempDir()
	os.Mkdir(filepath.Join(dir, "alpha"), 0755)
	os.WriteFile(filepath.Join(dir, "alpha.txt"), []byte("x"), 0644)

	dirs := NewPathCompleter(filesystem.NewOSProbe(), true).Complete(context.Background(), filepath.Join(dir, "al"))
	if len(dirs) != 1 {
		t.Errorf("dirsOnly Complete() = %v, want only the directory", dirs)
	}

	all := NewPathCompleter(filesystem.NewOSProbe(), false).Complete(context.Background(), filepath.Join(dir, "al"))
	if len(all) != 2 {
		t.Errorf("Complete() = %v, want directory and file", all)
	}
}

func TestPathCompleter_CaseInsensitiveAndSorted(t *testing.T) {
	dir := t.TempDir()
	os.Mkdir(filepath.Join(dir, "Beta"), 0755)
	os.Mkdir(filepath.Join(dir, "beta2"), 0755)
	os.Mkdir(filepath.Join(dir, "gamma"), 0755)

	got := NewPathCompleter(filesystem.NewOSProbe(), true).Complete(context.Background(), filepath.Join(dir, "be"))
	if len(got) != 2 {
		t.Fatalf("Complete() = %v, want 2 matches", got)
	}
	if got[0] > got[1] {
		t.Errorf("Complete() not sorted: %v", got)
	}
}

func TestPathCompleter_MissingParent(t *testing.T) {
	got := NewPathCompleter(filesystem.NewOSProbe(), false).Complete(context.Background(), "/nonexistent/abc123/x")
	if got != nil {
		t.Errorf("Complete() = %v, want nil", got)
	}
}

func TestPathCompleter_MemoryProbe(t *testing.T) {
	mp := filesystem.NewMemoryProbe("/proj")
	mp.AddDir("src")
	mp.AddFile("setup.cfg", "")

	got := NewPathCompleter(mp, false).Complete(context.Background(), "/proj/s")
	want := []string{"/proj/setup.cfg", "/proj/src/"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Complete() = %v, want %v", got, want)
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		input      string
		wantParent string
		wantPrefix string
	}{
		{"", ".", ""},
		{".", ".", ""},
		{"my", ".", "my"},
		{"./src/", "./src", ""},
		{"src/com", "src", "com"},
		{"/", "/", ""},
	}

	for _, tt := range tests {
		parent, prefix := splitPath(tt.input)
		if parent != tt.wantParent || prefix != tt.wantPrefix {
			t.Errorf("splitPath(%q) = (%q, %q), want (%q, %q)", tt.input, parent, prefix, tt.wantParent, tt.wantPrefix)
		}
	}
}
