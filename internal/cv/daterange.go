package cv

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateRange is returned for malformed or inverted date windows.
var ErrInvalidDateRange = errors.New("invalid date range")

// DateRange is an inclusive window of publication dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a window from two ISO dates (YYYY-MM-DD).
func NewDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(time.DateOnly, strings.TrimSpace(start))
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: start %q: %v", ErrInvalidDateRange, start, err)
	}
	e, err := time.Parse(time.DateOnly, strings.TrimSpace(end))
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: end %q: %v", ErrInvalidDateRange, end, err)
	}
	if e.Before(s) {
		return DateRange{}, fmt.Errorf("%w: %s is before %s", ErrInvalidDateRange, end, start)
	}
	return DateRange{Start: s, End: e}, nil
}

// ParseDateRange parses "start:end", e.g. "2023-01-01:2024-12-31".
func ParseDateRange(s string) (DateRange, error) {
	start, end, ok := strings.Cut(s, ":")
	if !ok {
		return DateRange{}, fmt.Errorf("%w: %q (expected START:END)", ErrInvalidDateRange, s)
	}
	return NewDateRange(start, end)
}

// Contains reports whether t falls inside the window.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Label names the window by its years, e.g. "2023-2024".
func (r DateRange) Label() string {
	if r.Start.Year() == r.End.Year() {
		return fmt.Sprintf("%d", r.Start.Year())
	}
	return fmt.Sprintf("%d-%d", r.Start.Year(), r.End.Year())
}

func (r DateRange) String() string {
	return r.Start.Format(time.DateOnly) + ":" + r.End.Format(time.DateOnly)
}
