// Package cv turns publication records into the LaTeX lists and citation
// metrics printed in a CV: refereed papers split by authorship role,
// preprints, and summary statistics.
package cv

import (
	"github.com/rs/zerolog"

	"github.com/changgoo/pub2tex/internal/rules"
)

// DefaultMaxAuthors is the number of authors shown before "et al.".
const DefaultMaxAuthors = 4

// Formatter runs the filter, format and classify stages with a fixed rule
// set. It holds no mutable state and may be reused.
type Formatter struct {
	rules      *rules.Rules
	maxAuthors int
	log        zerolog.Logger
}

// New returns a Formatter using the given rules. Diagnostics go to log; a
// zero Logger discards them.
func New(r *rules.Rules, log zerolog.Logger) *Formatter {
	return &Formatter{
		rules:      r,
		maxAuthors: DefaultMaxAuthors,
		log:        log,
	}
}

// WithMaxAuthors returns a copy of f that shows up to n authors.
// Values below 1 are ignored.
func (f *Formatter) WithMaxAuthors(n int) *Formatter {
	c := *f
	if n >= 1 {
		c.maxAuthors = n
	}
	return &c
}

// Rules returns the rule set in use.
func (f *Formatter) Rules() *rules.Rules {
	return f.rules
}
