package cv

import (
	"strings"
	"time"

	"github.com/changgoo/pub2tex/internal/reference"
)

// DefaultADSLink is the LaTeX macro holding the ADS query URL.
const DefaultADSLink = `\adsurl`

// Fragment file names. The CV document \input's these.
const (
	FileSummary             = "summary.tex"
	FileSummaryFirst        = "summary_1st.tex"
	FileSummarySignificant  = "summary_2nd.tex"
	FileSummaryCoAuthor     = "summary_co.tex"
	FileRefereed            = "pubs_ref.tex"
	FileRefereedFirst       = "pubs_ref_1st.tex"
	FileRefereedSignificant = "pubs_ref_2nd.tex"
	FileRefereedCoAuthor    = "pubs_ref_co.tex"
	FilePreprints           = "pubs_arxiv.tex"
)

// Fragment is one named piece of LaTeX output.
type Fragment struct {
	Name string
	Text string
}

// Window is the output of a run restricted to a date range.
type Window struct {
	Range DateRange
	Lists Lists
}

// Report is the complete output of one run.
type Report struct {
	Lists   Lists
	Summary Summary
	Windows []Window
}

// Report filters pubs and builds the full lists, the summary, and one set
// of lists per date window.
func (f *Formatter) Report(pubs []reference.Publication, asOf time.Time, windows []DateRange) Report {
	filtered := f.Filter(pubs)
	entries := f.Entries(filtered, nil)

	r := Report{
		Lists:   Split(entries).Numbered(),
		Summary: NewSummary(entries, asOf),
	}
	for _, w := range windows {
		r.Windows = append(r.Windows, Window{Range: w, Lists: Split(f.Within(entries, w)).Numbered()})
	}
	return r
}

// Fragments returns every output file of the report in a fixed order.
func (r Report) Fragments(adsLink string) []Fragment {
	frags := []Fragment{
		{Name: FileSummary, Text: r.Summary.Text(adsLink)},
		{Name: FileSummaryFirst, Text: r.Summary.FirstAuthorText()},
		{Name: FileSummarySignificant, Text: r.Summary.SignificantText()},
		{Name: FileSummaryCoAuthor, Text: r.Summary.CoAuthorText()},
		{Name: FileRefereed, Text: JoinEntries(r.Lists.Refereed)},
		{Name: FileRefereedFirst, Text: JoinEntries(r.Lists.FirstAuthor)},
		{Name: FileRefereedSignificant, Text: JoinEntries(r.Lists.Significant)},
		{Name: FileRefereedCoAuthor, Text: JoinEntries(r.Lists.Other)},
		{Name: FilePreprints, Text: JoinEntries(r.Lists.Preprint)},
	}
	for _, w := range r.Windows {
		label := w.Range.Label()
		frags = append(frags,
			Fragment{Name: "pubs_ref_" + label + ".tex", Text: JoinEntries(w.Lists.Refereed)},
			Fragment{Name: "pubs_arxiv_" + label + ".tex", Text: JoinEntries(w.Lists.Preprint)},
		)
	}
	return frags
}

// JoinEntries separates list items by a blank line.
func JoinEntries(items []string) string {
	return strings.Join(items, "\n\n")
}
