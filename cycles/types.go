package cycles

import (
	"fmt"

	"github.com/katalvlaran/cyclefeat/timeline"
)

// Record is one sparse cycle interval as recorded upstream: read-only input
// to this package.
type Record struct {
	User         string
	CycleID      int64
	Start        timeline.Date
	Length       int // total cycle length in days, > 0
	PeriodLength int // leading period days, in [0, Length]
}

// Validate checks the record's constraints.
// Returns ErrInvalidCycleRecord wrapped with user and cycle id context so a
// single bad record is reportable without losing the batch position.
func (r Record) Validate() error {
	switch {
	case r.Length <= 0:
		return fmt.Errorf("user %q cycle %d: %w: cycle_length %d must be > 0",
			r.User, r.CycleID, ErrInvalidCycleRecord, r.Length)
	case r.PeriodLength < 0:
		return fmt.Errorf("user %q cycle %d: %w: period_length %d must be >= 0",
			r.User, r.CycleID, ErrInvalidCycleRecord, r.PeriodLength)
	case r.PeriodLength > r.Length:
		return fmt.Errorf("user %q cycle %d: %w: period_length %d exceeds cycle_length %d",
			r.User, r.CycleID, ErrInvalidCycleRecord, r.PeriodLength, r.Length)
	}

	return nil
}

// DayRow is one densified calendar day of one cycle.
type DayRow struct {
	CycleID    int64
	DayInCycle int  // 1-based ordinal within the owning cycle
	Period     bool // true for exactly the first PeriodLength days
}

// Day pairs a table key with its row; the unit Expand emits.
type Day struct {
	Key timeline.Key
	Row DayRow
}

// Table is the dense cycle calendar: one DayRow per covered (user, date).
type Table map[timeline.Key]DayRow

// SortedKeys returns the table's keys in canonical (user asc, date asc) order.
func SortedKeys(t Table) []timeline.Key {
	keys := make([]timeline.Key, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	timeline.SortKeys(keys)

	return keys
}

// LastActivity returns each user's maximum covered date — the anchor the
// window clipper counts back from.
func LastActivity(t Table) map[string]timeline.Date {
	out := make(map[string]timeline.Date)
	for k := range t {
		if last, ok := out[k.User]; !ok || k.Date.After(last) {
			out[k.User] = k.Date
		}
	}

	return out
}

// FirstUse returns each user's minimum cycle start — the anchor absolute-day
// offsets are measured from.
func FirstUse(recs []Record) map[string]timeline.Date {
	out := make(map[string]timeline.Date)
	for _, r := range recs {
		if first, ok := out[r.User]; !ok || r.Start.Before(first) {
			out[r.User] = r.Start
		}
	}

	return out
}
