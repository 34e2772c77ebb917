package cv

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	"github.com/changgoo/pub2tex/internal/logging"
	"github.com/changgoo/pub2tex/internal/reference"
	"github.com/changgoo/pub2tex/internal/rules"
)

// newTestFormatter returns a Formatter with the built-in rules whose
// diagnostics are captured as JSON lines.
func newTestFormatter(t *testing.T) (*Formatter, *bytes.Buffer) {
	t.Helper()
	r, err := rules.Default()
	if err != nil {
		t.Fatalf("rules.Default() error = %v", err)
	}
	var buf bytes.Buffer
	log := logging.New(logging.Config{Level: "debug", Format: "json", Output: &buf})
	return New(r, log), &buf
}

// article returns a first-author ApJ paper that passes every filter.
func article(title string) reference.Publication {
	return reference.Publication{
		Title:     title,
		Authors:   []string{"Kim, Chang-Goo", "Ostriker, Eve C."},
		Pub:       "The Astrophysical Journal",
		Year:      2023,
		Volume:    "946",
		Page:      "3",
		PubDate:   "2023-03-00",
		Citations: 0,
		URL:       "https://ui.adsabs.harvard.edu/abs/X",
	}
}

func preprint(title string) reference.Publication {
	return reference.Publication{
		Title:   title,
		Authors: []string{"Kim, Chang-Goo"},
		Pub:     "arXiv e-prints",
		Year:    2024,
		PubDate: "2024-06-00",
		ArXiv:   "2406.00001",
		URL:     "https://ui.adsabs.harvard.edu/abs/Y",
	}
}

func TestNew_ZeroLoggerDiscards(t *testing.T) {
	f := New(rules.MustDefault(), zerolog.Logger{})
	p := reference.Publication{Authors: []string{"Planck Collaboration", "Kim, Chang-Goo"}, Year: 2023}

	if got := f.FormatAuthors(p); got != `Planck Collaboration; \textbf{Kim, Chang-Goo}` {
		t.Errorf("FormatAuthors() = %q", got)
	}
}

func TestWithMaxAuthors(t *testing.T) {
	f, _ := newTestFormatter(t)

	if got := f.WithMaxAuthors(2).maxAuthors; got != 2 {
		t.Errorf("maxAuthors = %d, want 2", got)
	}
	if got := f.WithMaxAuthors(0).maxAuthors; got != DefaultMaxAuthors {
		t.Errorf("maxAuthors = %d, want default %d", got, DefaultMaxAuthors)
	}
	if f.maxAuthors != DefaultMaxAuthors {
		t.Error("WithMaxAuthors() modified the receiver")
	}
}
