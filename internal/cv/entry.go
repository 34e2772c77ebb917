package cv

import (
	"fmt"
	"strings"

	"github.com/changgoo/pub2tex/internal/latex"
	"github.com/changgoo/pub2tex/internal/logging"
	"github.com/changgoo/pub2tex/internal/reference"
	"github.com/changgoo/pub2tex/internal/rules"
)

// Entry is one formatted paper.
type Entry struct {
	Publication reference.Publication
	Text        string       // LaTeX citation, without list markup
	Preprint    bool
	Bucket      rules.Bucket // role bucket; empty for preprints
}

// Entries formats and classifies filtered records in input order. When
// window is non-nil, records published outside it are left out; records
// whose date cannot be read are left out with a warning.
func (f *Formatter) Entries(pubs []reference.Publication, window *DateRange) []Entry {
	var entries []Entry
	for _, p := range pubs {
		if f.rules.Skip.Match(p.Pub) {
			continue
		}

		e, ok := f.entry(p)
		if !ok {
			continue
		}
		entries = append(entries, e)
	}
	if window != nil {
		return f.Within(entries, *window)
	}
	return entries
}

// Within returns the entries published inside window, keeping order.
// Entries whose date cannot be read are left out with a warning.
func (f *Formatter) Within(entries []Entry, window DateRange) []Entry {
	var out []Entry
	for _, e := range entries {
		if f.inWindow(e.Publication, window) {
			out = append(out, e)
		}
	}
	return out
}

// entry builds the citation text for one record. It returns false when
// the record must be left out.
func (f *Formatter) entry(p reference.Publication) (Entry, bool) {
	log := logging.WithPaper(f.log, p.Title, p.Pub)

	authors := f.FormatAuthors(p)

	var b strings.Builder
	b.WriteString(authors)
	b.WriteString(", ")
	b.WriteString(latex.Subscripts(latex.Italic(latex.ToLatexSafe(p.Title))))

	preprint := p.IsPreprint()
	if !preprint {
		abbr, ok := f.rules.Venues.Lookup(p.Pub)
		if !ok {
			log.Warn().Msg("journal not recognized, skipping")
			return Entry{}, false
		}
		if p.DOI != "" {
			abbr = latex.DOIForm(p.DOI, abbr)
		}
		b.WriteString(", " + abbr)
	}

	if p.Volume != "" {
		b.WriteString(", " + latex.Bold(p.Volume.String()))
	}
	if p.Page != "" {
		b.WriteString(", " + p.Page.String())
	}
	if p.PubDate != "" {
		b.WriteString(", " + pubYear(p.PubDate))
	}
	if p.ArXiv != "" {
		b.WriteString(" (" + latex.ArXiv(p.ArXiv) + ")")
	}
	if n := p.Citations.Int(); n > 1 {
		b.WriteString(" [" + latex.Href(p.URL, fmt.Sprintf("%d citations", n)) + "]")
	}

	e := Entry{Publication: p, Preprint: preprint}
	if preprint {
		if f.rules.ExcludedPreprint(p.Author(0)) {
			log.Debug().Msg("preprint excluded by first author")
			return Entry{}, false
		}
		b.WriteString(f.rules.PreprintStatus)
	} else {
		e.Bucket = f.rules.Roles.Classify(f.rules.Subject, rules.Candidate{
			Authors:   p.Authors,
			AuthorTex: authors,
		})
	}

	e.Text = b.String()
	return e, true
}

func (f *Formatter) inWindow(p reference.Publication, window DateRange) bool {
	d, err := reference.ParsePublicationDate(p.PubDate)
	if err != nil {
		log := logging.WithPaper(f.log, p.Title, p.Pub)
		log.Warn().
			Err(err).
			Str("window", window.String()).
			Msg("unreadable publication date, leaving paper out of dated list")
		return false
	}
	return window.Contains(d.Time())
}

// pubYear returns the year part of a pubdate.
func pubYear(pubdate string) string {
	if len(pubdate) < 4 {
		return pubdate
	}
	return pubdate[:4]
}
