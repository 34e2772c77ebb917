package cv

import (
	"github.com/changgoo/pub2tex/internal/latex"
	"github.com/changgoo/pub2tex/internal/reference"
	"github.com/changgoo/pub2tex/internal/rules"
)

// Lists holds the five publication lists. Every refereed entry appears in
// Refereed and in exactly one of FirstAuthor, Significant and Other.
type Lists struct {
	Refereed    []string
	Preprint    []string
	FirstAuthor []string
	Significant []string
	Other       []string
}

// Build formats, classifies and numbers records that already passed
// Filter.
func (f *Formatter) Build(pubs []reference.Publication, window *DateRange) Lists {
	return Split(f.Entries(pubs, window)).Numbered()
}

// Split sorts entries into the five lists without numbering them.
func Split(entries []Entry) Lists {
	var l Lists
	for _, e := range entries {
		if e.Preprint {
			l.Preprint = append(l.Preprint, e.Text)
			continue
		}
		l.Refereed = append(l.Refereed, e.Text)
		switch e.Bucket {
		case rules.BucketFirst:
			l.FirstAuthor = append(l.FirstAuthor, e.Text)
		case rules.BucketSignificant:
			l.Significant = append(l.Significant, e.Text)
		default:
			l.Other = append(l.Other, e.Text)
		}
	}
	return l
}

// Numbered returns a copy of l with list-item markup applied.
func (l Lists) Numbered() Lists {
	first, sig, other := NumberRoles(l.FirstAuthor, l.Significant, l.Other)
	return Lists{
		Refereed:    NumberDescending(l.Refereed),
		Preprint:    Itemize(l.Preprint),
		FirstAuthor: first,
		Significant: sig,
		Other:       other,
	}
}

// Itemize prefixes each entry with a plain \item, keeping order.
func Itemize(entries []string) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = latex.Item(e)
	}
	return out
}

// NumberDescending numbers entries N, N-1, ..., 1.
func NumberDescending(entries []string) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = latex.NumberedItem(len(entries)-i, e)
	}
	return out
}

// NumberRoles numbers the three role lists with one shared counter that
// starts at their combined size and walks first, significant, then other.
func NumberRoles(first, significant, other []string) ([]string, []string, []string) {
	next := len(first) + len(significant) + len(other)
	number := func(entries []string) []string {
		out := make([]string, len(entries))
		for i, e := range entries {
			out[i] = latex.NumberedItem(next, e)
			next--
		}
		return out
	}
	f := number(first)
	s := number(significant)
	o := number(other)
	return f, s, o
}
