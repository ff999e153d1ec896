package timeline

import (
	"errors"
	"fmt"
	"time"
)

// ErrBadDate is returned when a date string cannot be parsed as YYYY-MM-DD.
var ErrBadDate = errors.New("timeline: invalid date")

// DateLayout is the wire format for dates in all input tables.
const DateLayout = "2006-01-02"

const secondsPerDay = 86400

// Date is a calendar day, stored as the number of days since the Unix
// epoch (1970-01-01). Being a plain integer makes day arithmetic exact:
// Add and Sub can never be off by an hour across a DST boundary, and map
// keys built from Date compare by value.
type Date int

// NewDate builds a Date from a calendar (year, month, day) triple.
// Out-of-range components are normalized the same way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime truncates t to its calendar day (in t's own location) and
// converts it to a Date. The time-of-day component is discarded.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	// UTC midnights are exact multiples of secondsPerDay, so the division
	// below is exact for any date, including pre-1970 ones.
	return Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

// ParseDate parses a YYYY-MM-DD string into a Date.
// Returns ErrBadDate (wrapped with the offending input) on malformed text.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadDate, s)
	}

	return FromTime(t), nil
}

// Time returns the Date as a time.Time at UTC midnight.
func (d Date) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

// String renders the Date as YYYY-MM-DD.
func (d Date) String() string { return d.Time().Format(DateLayout) }

// Add returns the Date shifted by the given number of days (negative allowed).
func (d Date) Add(days int) Date { return d + Date(days) }

// Sub returns the number of whole days from o to d (d - o).
func (d Date) Sub(o Date) int { return int(d - o) }

// Before reports whether d falls strictly before o.
func (d Date) Before(o Date) bool { return d < o }

// After reports whether d falls strictly after o.
func (d Date) After(o Date) bool { return d > o }

// Span returns every Date from first to last inclusive, in ascending order.
// An empty slice is returned when last precedes first.
func Span(first, last Date) []Date {
	if last < first {
		return nil
	}
	out := make([]Date, 0, last-first+1)
	for d := first; d <= last; d++ {
		out = append(out, d)
	}

	return out
}
