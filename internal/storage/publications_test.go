package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadPublications_JSONArray(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "pubs.json")

	content := `[
		{"title": "Three-phase ISM", "authors": ["Kim, Chang-Goo"], "pub": "The Astrophysical Journal",
		 "year": "2023", "volume": "946", "page": "3", "pubdate": "2023-03-00", "doi": null,
		 "arxiv": "2301.01234", "citations": 42, "url": "https://ui.adsabs.harvard.edu/abs/X"},
		{"title": "Outflows", "authors": ["Kim, Chang-Goo"], "pub": "arXiv e-prints",
		 "year": 2024, "volume": null, "page": null, "pubdate": "2024-06-00", "doi": null,
		 "arxiv": "2406.00001", "citations": 0, "url": "https://ui.adsabs.harvard.edu/abs/Y"}
	]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	pubs, err := ReadPublications(path)
	if err != nil {
		t.Fatalf("ReadPublications() error = %v", err)
	}
	if len(pubs) != 2 {
		t.Fatalf("ReadPublications() returned %d records, want 2", len(pubs))
	}
	if pubs[0].Year.Int() != 2023 || pubs[0].Citations.Int() != 42 {
		t.Errorf("first record = %+v", pubs[0])
	}
	if !pubs[1].IsPreprint() {
		t.Error("second record should be a preprint")
	}
}

func TestReadPublications_JSONL(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "pubs.jsonl")

	content := `{"title": "A", "authors": [], "pub": "Nature", "year": 2020, "citations": 1, "url": ""}

{"title": "B", "authors": [], "pub": "Nature", "year": 2021, "citations": 2, "url": ""}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	pubs, err := ReadPublications(path)
	if err != nil {
		t.Fatalf("ReadPublications() error = %v", err)
	}
	if len(pubs) != 2 || pubs[0].Title != "A" || pubs[1].Title != "B" {
		t.Errorf("ReadPublications() = %+v, want records A and B", pubs)
	}
}

func TestReadPublications_JSONLBadLine(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "pubs.jsonl")

	if err := os.WriteFile(path, []byte("{\"title\": \"A\"}\nnot json\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := ReadPublications(path)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("ReadPublications() error = %v, want error naming line 2", err)
	}
}

func TestReadPublications_NotFound(t *testing.T) {
	_, err := ReadPublications(filepath.Join(t.TempDir(), "pubs.json"))
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("ReadPublications() error = %v, want ErrInputNotFound", err)
	}
}

func TestReadPublications_Malformed(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "pubs.json")
	if err := os.WriteFile(path, []byte(`{"title": "not an array"}`), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := ReadPublications(path)
	if err == nil || errors.Is(err, ErrInputNotFound) {
		t.Errorf("ReadPublications() error = %v, want parse error", err)
	}
}
