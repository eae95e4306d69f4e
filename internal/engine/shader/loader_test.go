package shader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestFileLoaderReadsUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "basic.vert")
	src := "#version 410 core\n// Größe\nvoid main() {}\n"
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("failed to write shader: %v", err)
	}

	got, err := FileLoader{}.ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if got != src {
		t.Errorf("ReadAll: got %q, want %q", got, src)
	}
}

func TestFileLoaderMissing(t *testing.T) {
	_, err := FileLoader{}.ReadAll(filepath.Join(t.TempDir(), "missing.frag"))

	var re *ReadError
	if !errors.As(err, &re) {
		t.Fatalf("expected *ReadError, got %T", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestFSLoader(t *testing.T) {
	l := FSLoader{FS: fstest.MapFS{
		"shaders/a.frag": {Data: []byte("void main() {}")},
	}}

	got, err := l.ReadAll("shaders/a.frag")
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if got != "void main() {}" {
		t.Errorf("ReadAll: got %q", got)
	}

	if _, err := l.ReadAll("shaders/b.frag"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestStageKindString(t *testing.T) {
	tests := []struct {
		kind StageKind
		want string
	}{
		{StageVertex, "vertex"},
		{StageFragment, "fragment"},
		{StageKind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("StageKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
