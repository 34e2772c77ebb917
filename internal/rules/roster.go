package rules

import "strings"

// YearRange is an inclusive range of years.
type YearRange struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Contains reports whether year falls within the range.
func (y YearRange) Contains(year int) bool {
	return year >= y.Start && year <= y.End
}

// StudentRoster maps a lower-case surname token to the years the student
// was supervised.
type StudentRoster map[string]YearRange

// Match reports whether name belongs to a student who was active in year.
func (s StudentRoster) Match(name string, year int) bool {
	lower := strings.ToLower(name)
	for token, years := range s {
		if strings.Contains(lower, token) && years.Contains(year) {
			return true
		}
	}
	return false
}
