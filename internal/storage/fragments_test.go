package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/changgoo/pub2tex/internal/cv"
)

func TestWriteFragments(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	frags := []cv.Fragment{
		{Name: "summary.tex", Text: "count: 2"},
		{Name: "pubs_ref.tex", Text: "\\item[{2.}]a\n\n\\item[{1.}]b"},
		{Name: "pubs_arxiv.tex", Text: ""},
	}

	paths, err := WriteFragments(dir, frags)
	if err != nil {
		t.Fatalf("WriteFragments() error = %v", err)
	}
	if len(paths) != len(frags) {
		t.Fatalf("WriteFragments() wrote %d files, want %d", len(paths), len(frags))
	}

	for _, f := range frags {
		data, err := os.ReadFile(filepath.Join(dir, f.Name))
		if err != nil {
			t.Fatalf("reading %s: %v", f.Name, err)
		}
		if string(data) != f.Text {
			t.Errorf("%s = %q, want %q", f.Name, data, f.Text)
		}
	}
}

func TestWriteFragments_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summary.tex")
	if err := os.WriteFile(path, []byte("stale content that is longer"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := WriteFragments(dir, []cv.Fragment{{Name: "summary.tex", Text: "fresh"}}); err != nil {
		t.Fatalf("WriteFragments() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "fresh" {
		t.Errorf("summary.tex = %q, want %q", data, "fresh")
	}
}

func TestWriteFragments_RejectsPaths(t *testing.T) {
	if _, err := WriteFragments(t.TempDir(), []cv.Fragment{{Name: "../escape.tex"}}); err == nil {
		t.Error("WriteFragments() should reject names with directories")
	}
}
