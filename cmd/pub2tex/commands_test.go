package main

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/changgoo/pub2tex/internal/cv"
	"github.com/changgoo/pub2tex/internal/reference"
	"github.com/changgoo/pub2tex/internal/rules"
)

func TestParseAsOf(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	got, err := parseAsOf("", now)
	if err != nil || !got.Equal(now) {
		t.Errorf("parseAsOf(\"\") = %v, %v; want now", got, err)
	}

	got, err = parseAsOf("2024-12-31", now)
	if err != nil {
		t.Fatalf("parseAsOf() error = %v", err)
	}
	if got.Format(time.DateOnly) != "2024-12-31" {
		t.Errorf("parseAsOf() = %v", got)
	}

	if _, err := parseAsOf("12/31/2024", now); err == nil {
		t.Error("parseAsOf() should reject non-ISO dates")
	}
}

func TestParsePeriods(t *testing.T) {
	windows, err := parsePeriods([]string{"2023-01-01:2024-12-31", "2025-01-01:2025-12-31"})
	if err != nil {
		t.Fatalf("parsePeriods() error = %v", err)
	}
	if len(windows) != 2 {
		t.Fatalf("parsePeriods() returned %d windows, want 2", len(windows))
	}
	if windows[0].Label() != "2023-2024" || windows[1].Label() != "2025" {
		t.Errorf("labels = %q, %q", windows[0].Label(), windows[1].Label())
	}

	_, err = parsePeriods([]string{"2024-12-31:2023-01-01"})
	if !errors.Is(err, cv.ErrInvalidDateRange) {
		t.Errorf("parsePeriods() error = %v, want ErrInvalidDateRange", err)
	}
}

func TestScreenAll(t *testing.T) {
	f := cv.New(rules.MustDefault(), zerolog.Nop())
	pubs := []reference.Publication{
		{Title: "Kept", Pub: "The Astrophysical Journal"},
		{Title: "Catalog", Pub: "VizieR Online Data Catalog"},
		{Title: "Unknown", Pub: "Journal of Nothing"},
		{Title: "Preprint", Pub: "arXiv e-prints"},
	}

	result := screenAll(f, pubs, false)
	if result.Records != 4 || result.Kept != 2 || result.Excluded != 2 {
		t.Errorf("counts = %d/%d/%d, want 4/2/2", result.Records, result.Kept, result.Excluded)
	}
	if len(result.Items) != 4 {
		t.Fatalf("len(Items) = %d, want 4", len(result.Items))
	}
	if result.Items[1].Reason != cv.ReasonSkippedVenue {
		t.Errorf("Items[1].Reason = %q, want %q", result.Items[1].Reason, cv.ReasonSkippedVenue)
	}
	if result.Items[2].Reason != cv.ReasonUnknownVenue {
		t.Errorf("Items[2].Reason = %q, want %q", result.Items[2].Reason, cv.ReasonUnknownVenue)
	}

	excluded := screenAll(f, pubs, true)
	if len(excluded.Items) != 2 || excluded.Kept != 2 {
		t.Errorf("excluded-only listing = %+v", excluded)
	}
	for _, item := range excluded.Items {
		if item.Kept {
			t.Errorf("excluded-only listing contains kept record %q", item.Title)
		}
	}
}

func TestScreenAll_EmptyItemsNotNull(t *testing.T) {
	f := cv.New(rules.MustDefault(), zerolog.Nop())
	result := screenAll(f, nil, false)
	if result.Items == nil {
		t.Error("Items should be an empty slice so JSON prints []")
	}
}

func TestDescribeRules(t *testing.T) {
	resp := describeRules(rules.MustDefault())

	if resp.Subject.Initials != "CGK" {
		t.Errorf("Subject.Initials = %q, want CGK", resp.Subject.Initials)
	}
	if len(resp.Roles) == 0 || resp.Roles[len(resp.Roles)-1].Bucket != string(rules.BucketOther) {
		t.Errorf("last role should be the %q fallback: %+v", rules.BucketOther, resp.Roles)
	}
	if describeRole(resp.Roles[0]) != "subject is author 1" {
		t.Errorf("describeRole(first) = %q", describeRole(resp.Roles[0]))
	}
	if describeRole(RoleJSON{Bucket: "other"}) != "always" {
		t.Error("a rule without conditions should read as always")
	}
	for _, p := range resp.Skip {
		if !strings.HasPrefix(p, "^") {
			t.Errorf("skip pattern %q is not anchored", p)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a longer title here", 10, "a longe..."},
		{"Pérez Núñez", 8, "Pérez..."},
	}

	for _, tt := range tests {
		if got := truncateString(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
