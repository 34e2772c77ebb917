package cv

import (
	"fmt"
	"sort"
	"time"

	"github.com/changgoo/pub2tex/internal/reference"
	"github.com/changgoo/pub2tex/internal/rules"
)

// Metrics are the citation statistics of a set of papers.
type Metrics struct {
	Count     int `json:"count"`
	Citations int `json:"citations"`
	HIndex    int `json:"h_index"`
}

// Summarize computes Metrics over pubs.
func Summarize(pubs []reference.Publication) Metrics {
	cites := make([]int, len(pubs))
	total := 0
	for i, p := range pubs {
		cites[i] = p.Citations.Int()
		total += cites[i]
	}
	return Metrics{
		Count:     len(pubs),
		Citations: total,
		HIndex:    HIndex(cites),
	}
}

// HIndex returns the number of ranks i (0-based, citations sorted in
// descending order) at which the paper has more than i citations.
func HIndex(citations []int) int {
	sorted := make([]int, len(citations))
	copy(sorted, citations)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	h := 0
	for i, c := range sorted {
		if c > i {
			h++
		}
	}
	return h
}

// Summary holds the metrics printed at the top of the publication list.
type Summary struct {
	AsOf        time.Time `json:"as_of"`
	Refereed    Metrics   `json:"refereed"`
	FirstAuthor Metrics   `json:"first_author"`
	Significant Metrics   `json:"significant"`
	CoAuthor    Metrics   `json:"co_author"`
}

// NewSummary computes the summary over the refereed entries. Co-author
// count and citations are what remains after the first-author and
// significant papers are taken out.
func NewSummary(entries []Entry, asOf time.Time) Summary {
	var refereed, first, sig, other []reference.Publication
	for _, e := range entries {
		if e.Preprint {
			continue
		}
		refereed = append(refereed, e.Publication)
		switch e.Bucket {
		case rules.BucketFirst:
			first = append(first, e.Publication)
		case rules.BucketSignificant:
			sig = append(sig, e.Publication)
		default:
			other = append(other, e.Publication)
		}
	}

	s := Summary{
		AsOf:        asOf,
		Refereed:    Summarize(refereed),
		FirstAuthor: Summarize(first),
		Significant: Summarize(sig),
	}
	s.CoAuthor = Metrics{
		Count:     s.Refereed.Count - s.FirstAuthor.Count - s.Significant.Count,
		Citations: s.Refereed.Citations - s.FirstAuthor.Citations - s.Significant.Citations,
		HIndex:    Summarize(other).HIndex,
	}
	return s
}

// Text renders the overall metrics line. adsLink is the \href target for
// the ADS query.
func (s Summary) Text(adsLink string) string {
	return fmt.Sprintf(
		`Metrics for Refereed Publications (from \href{%s}{ADS} as of \textit{%s}) \\`+
			`count: %d --- citations: %d --- h-index: %d`,
		adsLink, s.AsOf.Format(time.DateOnly),
		s.Refereed.Count, s.Refereed.Citations, s.Refereed.HIndex,
	)
}

// FirstAuthorText renders the first-author metrics line.
func (s Summary) FirstAuthorText() string {
	return fmt.Sprintf(" as First Author (count: %d --- citations: %d)",
		s.FirstAuthor.Count, s.FirstAuthor.Citations)
}

// SignificantText renders the significant-contribution metrics line.
func (s Summary) SignificantText() string {
	return fmt.Sprintf(" w/ Significant Contribution (count: %d --- citations: %d)",
		s.Significant.Count, s.Significant.Citations)
}

// CoAuthorText renders the co-author metrics line.
func (s Summary) CoAuthorText() string {
	return fmt.Sprintf(" as Co-Author (count: %d --- citations: %d)",
		s.CoAuthor.Count, s.CoAuthor.Citations)
}
