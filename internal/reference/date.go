package reference

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PublicationDate represents a publication date with optional month and day.
type PublicationDate struct {
	Year  int `json:"year"`
	Month int `json:"month,omitempty"` // 1-12, 0 if unknown
	Day   int `json:"day,omitempty"`   // 1-31, 0 if unknown
}

// ParsePublicationDate parses an ADS pubdate ("2023-05-00"). Month and day
// may be "00" when unknown; a bare year is accepted as well.
func ParsePublicationDate(s string) (PublicationDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PublicationDate{}, fmt.Errorf("empty date")
	}

	parts := strings.Split(s, "-")
	if len(parts) > 3 {
		return PublicationDate{}, fmt.Errorf("invalid date %q", s)
	}

	var fields [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return PublicationDate{}, fmt.Errorf("invalid date %q", s)
		}
		fields[i] = n
	}

	d := PublicationDate{Year: fields[0], Month: fields[1], Day: fields[2]}
	if len(parts[0]) != 4 || d.Month < 0 || d.Month > 12 || d.Day < 0 || d.Day > 31 {
		return PublicationDate{}, fmt.Errorf("invalid date %q", s)
	}
	if d.Month > 0 && d.Day > 0 && d.Time().Day() != d.Day {
		return PublicationDate{}, fmt.Errorf("invalid date %q: day out of range for month", s)
	}
	return d, nil
}

// Time returns the date as a UTC time, treating an unknown month or day
// as the first.
func (d PublicationDate) Time() time.Time {
	month := d.Month
	if month == 0 {
		month = 1
	}
	day := d.Day
	if day == 0 {
		day = 1
	}
	return time.Date(d.Year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
