package rules

import (
	"strings"

	"github.com/changgoo/pub2tex/internal/latex"
)

// Bucket is the authorship role a refereed paper is listed under.
type Bucket string

const (
	BucketFirst       Bucket = "first"
	BucketSignificant Bucket = "significant"
	BucketOther       Bucket = "other"
)

// Valid reports whether b is a known bucket.
func (b Bucket) Valid() bool {
	switch b {
	case BucketFirst, BucketSignificant, BucketOther:
		return true
	}
	return false
}

// Candidate is what a role rule is evaluated against.
type Candidate struct {
	Authors   []string // raw author names
	AuthorTex string   // formatted author list, with emphasis markup
}

// RoleRule assigns Bucket when every condition it sets holds. A rule with
// no conditions always matches.
type RoleRule struct {
	Bucket              Bucket   `yaml:"bucket"`
	SubjectAt           *int     `yaml:"subject_at,omitempty"`
	StudentMarked       bool     `yaml:"student_marked,omitempty"`
	FirstAuthorContains []string `yaml:"first_author_contains,omitempty"`
}

// Matches evaluates the rule for a paper.
func (r RoleRule) Matches(subject Subject, c Candidate) bool {
	if r.SubjectAt != nil {
		i := *r.SubjectAt
		if i < 0 || i >= len(c.Authors) || !subject.In(c.Authors[i]) {
			return false
		}
	}
	if r.StudentMarked && !latex.HasStudent(c.AuthorTex) {
		return false
	}
	if len(r.FirstAuthorContains) > 0 {
		if len(c.Authors) == 0 || !containsAny(strings.ToLower(c.Authors[0]), r.FirstAuthorContains) {
			return false
		}
	}
	return true
}

// RoleTable is an ordered list of role rules; the first match wins.
type RoleTable []RoleRule

// Classify returns the bucket of the first matching rule, or BucketOther.
func (t RoleTable) Classify(subject Subject, c Candidate) Bucket {
	for _, rule := range t {
		if rule.Matches(subject, c) {
			return rule.Bucket
		}
	}
	return BucketOther
}
