package cv

import "github.com/changgoo/pub2tex/internal/reference"

// Exclusion reasons reported by Screen.
const (
	ReasonNoVenue      = "no venue"
	ReasonSkippedVenue = "skipped venue"
	ReasonUnknownVenue = "unrecognized venue"
	ReasonBlockedTitle = "blocked title"
)

// Verdict is the outcome of screening one record.
type Verdict struct {
	Kept   bool   `json:"kept"`
	Reason string `json:"reason,omitempty"`
}

// Screen decides whether a record belongs in the lists at all.
func (f *Formatter) Screen(p reference.Publication) Verdict {
	if p.Pub == "" {
		return Verdict{Reason: ReasonNoVenue}
	}
	if f.rules.Skip.Match(p.Pub) {
		return Verdict{Reason: ReasonSkippedVenue}
	}
	if !p.IsPreprint() {
		if _, ok := f.rules.Venues.Lookup(p.Pub); !ok {
			return Verdict{Reason: ReasonUnknownVenue}
		}
	}
	if f.rules.BlockedTitle(p.Title) {
		return Verdict{Reason: ReasonBlockedTitle}
	}
	return Verdict{Kept: true}
}

// Filter returns the records that pass Screen, in input order. Excluded
// records are dropped silently.
func (f *Formatter) Filter(pubs []reference.Publication) []reference.Publication {
	kept := make([]reference.Publication, 0, len(pubs))
	for _, p := range pubs {
		if f.Screen(p).Kept {
			kept = append(kept, p)
		}
	}
	return kept
}
