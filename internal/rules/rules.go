// Package rules holds the fixed lookup tables that drive the publication
// pipeline: journal abbreviations, skipped venues, the student roster and
// the authorship-role table.
package rules

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultYAML []byte

// Rules is the immutable rule set passed to every pipeline stage.
type Rules struct {
	Subject            Subject
	Venues             VenueMap
	Skip               SkipPatterns
	Students           StudentRoster
	TitleBlocklist     []string // lower-case substrings
	PreprintStatus     string
	PreprintExclusions []string // lower-case first-author tokens
	Roles              RoleTable
}

// file mirrors the YAML layout of default.yml.
type file struct {
	Subject        Subject              `yaml:"subject"`
	Venues         map[string]string    `yaml:"venues"`
	Skip           []string             `yaml:"skip"`
	TitleBlocklist []string             `yaml:"title_blocklist"`
	Students       map[string]YearRange `yaml:"students"`
	Preprint       struct {
		Status              string   `yaml:"status"`
		ExcludeFirstAuthors []string `yaml:"exclude_first_authors"`
	} `yaml:"preprint"`
	Roles []RoleRule `yaml:"roles"`
}

// Default returns the built-in rule set.
func Default() (*Rules, error) {
	return Parse(defaultYAML)
}

// MustDefault returns the built-in rule set and panics if it is invalid.
func MustDefault() *Rules {
	r, err := Default()
	if err != nil {
		panic(fmt.Sprintf("rules: invalid built-in rules: %v", err))
	}
	return r
}

// Parse builds a rule set from its YAML form.
func Parse(data []byte) (*Rules, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}

	if strings.TrimSpace(f.Subject.Token) == "" {
		return nil, fmt.Errorf("rules must define subject.token")
	}

	skip, err := compileSkipPatterns(f.Skip)
	if err != nil {
		return nil, err
	}

	roster := make(StudentRoster, len(f.Students))
	for token, yr := range f.Students {
		if yr.End < yr.Start {
			return nil, fmt.Errorf("student %q: end year %d before start year %d", token, yr.End, yr.Start)
		}
		roster[strings.ToLower(token)] = yr
	}

	for i, rule := range f.Roles {
		if !rule.Bucket.Valid() {
			return nil, fmt.Errorf("role rule %d: unknown bucket %q", i+1, rule.Bucket)
		}
		for j, tok := range rule.FirstAuthorContains {
			f.Roles[i].FirstAuthorContains[j] = strings.ToLower(tok)
		}
	}

	return &Rules{
		Subject:            f.Subject,
		Venues:             NewVenueMap(f.Venues),
		Skip:               skip,
		Students:           roster,
		TitleBlocklist:     lowerAll(f.TitleBlocklist),
		PreprintStatus:     f.Preprint.Status,
		PreprintExclusions: lowerAll(f.Preprint.ExcludeFirstAuthors),
		Roles:              RoleTable(f.Roles),
	}, nil
}

// BlockedTitle reports whether the title hits the title blocklist.
func (r *Rules) BlockedTitle(title string) bool {
	return containsAny(strings.ToLower(title), r.TitleBlocklist)
}

// ExcludedPreprint reports whether a preprint by this first author is
// left out of the lists.
func (r *Rules) ExcludedPreprint(firstAuthor string) bool {
	return containsAny(strings.ToLower(firstAuthor), r.PreprintExclusions)
}

// Subject identifies the owner of the CV.
type Subject struct {
	Token    string `yaml:"token" json:"token"`       // distinguishing given name, e.g. "Chang-Goo"
	Display  string `yaml:"display" json:"display"`   // name as printed in bold
	Initials string `yaml:"initials" json:"initials"` // used in "incl. CGK"
}

// In reports whether name belongs to the subject (case-insensitive).
func (s Subject) In(name string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(s.Token))
}

// SkipPatterns excludes venues such as data catalogs and conference
// abstracts.
type SkipPatterns []*regexp.Regexp

func compileSkipPatterns(patterns []string) (SkipPatterns, error) {
	out := make(SkipPatterns, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("^(?:" + strings.ToLower(p) + ")")
		if err != nil {
			return nil, fmt.Errorf("compiling skip pattern %q: %w", p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// Match reports whether the venue starts with any skipped pattern.
func (s SkipPatterns) Match(venue string) bool {
	venue = strings.ToLower(venue)
	for _, re := range s {
		if re.MatchString(venue) {
			return true
		}
	}
	return false
}

// Strings returns the compiled patterns.
func (s SkipPatterns) Strings() []string {
	out := make([]string, len(s))
	for i, re := range s {
		out[i] = re.String()
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if tok != "" && strings.Contains(s, tok) {
			return true
		}
	}
	return false
}
