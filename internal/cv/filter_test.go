package cv

import (
	"reflect"
	"testing"

	"github.com/changgoo/pub2tex/internal/reference"
)

func TestScreen(t *testing.T) {
	f, _ := newTestFormatter(t)

	withVenue := func(venue string) reference.Publication {
		p := article("A paper")
		p.Pub = venue
		return p
	}
	blocked := article("The Astropy Problem")

	tests := []struct {
		name string
		pub  reference.Publication
		want Verdict
	}{
		{"journal article", article("A paper"), Verdict{Kept: true}},
		{"preprint", preprint("A preprint"), Verdict{Kept: true}},
		{"no venue", withVenue(""), Verdict{Reason: ReasonNoVenue}},
		{"vizier catalog", withVenue("VizieR Online Data Catalog (J/ApJ/900/61)"), Verdict{Reason: ReasonSkippedVenue}},
		{"aas abstract", withVenue("American Astronomical Society Meeting Abstracts #241"), Verdict{Reason: ReasonSkippedVenue}},
		{"unknown journal", withVenue("Journal of Plasma Physics"), Verdict{Reason: ReasonUnknownVenue}},
		{"numbered venue", withVenue("The Astrophysical Journal 2"), Verdict{Kept: true}},
		{"blocked title", blocked, Verdict{Reason: ReasonBlockedTitle}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Screen(tt.pub); got != tt.want {
				t.Errorf("Screen() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFilter_PreservesOrderAndIsIdempotent(t *testing.T) {
	f, logs := newTestFormatter(t)

	catalog := article("Catalog")
	catalog.Pub = "VizieR Online Data Catalog"
	unknown := article("Plasma")
	unknown.Pub = "Journal of Plasma Physics"

	pubs := []reference.Publication{
		article("First"),
		catalog,
		preprint("Second"),
		unknown,
		article("Third"),
	}

	once := f.Filter(pubs)
	var titles []string
	for _, p := range once {
		titles = append(titles, p.Title)
	}
	if want := []string{"First", "Second", "Third"}; !reflect.DeepEqual(titles, want) {
		t.Errorf("Filter() titles = %v, want %v", titles, want)
	}

	twice := f.Filter(once)
	if !reflect.DeepEqual(once, twice) {
		t.Error("Filter() is not idempotent")
	}

	if logs.Len() != 0 {
		t.Errorf("Filter() should exclude silently, logged %q", logs.String())
	}
}
