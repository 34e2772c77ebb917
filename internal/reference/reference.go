// Package reference defines the publication record consumed by the
// formatting pipeline.
package reference

import "strings"

// PreprintVenue is the venue name used by ADS for arXiv preprints.
const PreprintVenue = "ArXiv e-prints"

// Publication is one record of the publication list, as exported by the
// bibliographic query that produces pubs.json.
type Publication struct {
	Title     string         `json:"title"`
	Authors   []string       `json:"authors"` // "Last, First Middle"
	Pub       string         `json:"pub"`     // Venue name; empty when unknown
	Year      FlexibleInt    `json:"year"`
	Volume    FlexibleString `json:"volume,omitempty"`
	Page      FlexibleString `json:"page,omitempty"`
	PubDate   string         `json:"pubdate,omitempty"` // YYYY-MM-DD, day may be 00
	DOI       string         `json:"doi,omitempty"`
	ArXiv     string         `json:"arxiv,omitempty"`
	Citations FlexibleInt    `json:"citations"`
	URL       string         `json:"url"`
}

// IsPreprint reports whether the venue marks an arXiv preprint.
func (p Publication) IsPreprint() bool {
	return strings.EqualFold(p.Pub, PreprintVenue)
}

// Author returns the i-th raw author name, or "" when the list is shorter.
func (p Publication) Author(i int) string {
	if i < 0 || i >= len(p.Authors) {
		return ""
	}
	return p.Authors[i]
}
