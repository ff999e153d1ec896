package cycles

import (
	"sort"

	"github.com/katalvlaran/cyclefeat/timeline"
)

// Expand densifies one validated cycle record into exactly Length
// consecutive days starting at Start. The i-th day (0-based) carries
// DayInCycle = i+1 and Period = (i < PeriodLength).
//
// Complexity: O(Length) time and space.
func Expand(rec Record) ([]Day, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	days := make([]Day, rec.Length)
	for i := 0; i < rec.Length; i++ {
		days[i] = Day{
			Key: timeline.Key{User: rec.User, Date: rec.Start.Add(i)},
			Row: DayRow{
				CycleID:    rec.CycleID,
				DayInCycle: i + 1,
				Period:     i < rec.PeriodLength,
			},
		}
	}

	return days, nil
}

// ExpandAll expands every record and unions the results into one dense
// calendar table keyed by (user, date).
//
// Every record is validated up front; the first invalid one aborts the call
// with its user and cycle id attached. Expansion then proceeds over a copy
// of the input sorted by (user, start, cycle id), writing last-write-wins,
// so a day covered by overlapping cycles deterministically belongs to the
// cycle with the latest start date (see the package doc for rationale).
//
// Complexity: O(R log R + D) where R = len(recs) and D = total covered days.
func ExpandAll(recs []Record) (Table, error) {
	for _, r := range recs {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}

	ordered := make([]Record, len(recs))
	copy(ordered, recs)
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.User != b.User {
			return a.User < b.User
		}
		if a.Start != b.Start {
			return a.Start.Before(b.Start)
		}

		return a.CycleID < b.CycleID
	})

	table := make(Table)
	for _, r := range ordered {
		days, err := Expand(r)
		if err != nil {
			// Unreachable after the validation pass above; kept so Expand's
			// contract is honored even if validation rules diverge.
			return nil, err
		}
		for _, d := range days {
			table[d.Key] = d.Row
		}
	}

	return table, nil
}
