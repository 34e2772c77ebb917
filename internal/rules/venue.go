package rules

import "strings"

// VenueMap maps normalized venue names to their LaTeX abbreviation.
type VenueMap map[string]string

// NewVenueMap builds a VenueMap from canonical names.
func NewVenueMap(venues map[string]string) VenueMap {
	m := make(VenueMap, len(venues))
	for name, abbr := range venues {
		m[NormalizeVenue(name)] = abbr
	}
	return m
}

// NormalizeVenue strips leading and trailing digits, '#' and spaces and
// lower-cases the result, so "The Astrophysical Journal 2" and
// "#the astrophysical journal" share a key.
func NormalizeVenue(venue string) string {
	return strings.ToLower(strings.Trim(venue, "0123456789# "))
}

// Lookup returns the abbreviation for a venue.
func (m VenueMap) Lookup(venue string) (string, bool) {
	abbr, ok := m[NormalizeVenue(venue)]
	return abbr, ok
}
