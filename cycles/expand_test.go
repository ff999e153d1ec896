package cycles_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/cyclefeat/cycles"
	"github.com/katalvlaran/cyclefeat/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) timeline.Date { return timeline.NewDate(y, m, d) }

// TestExpand_Completeness verifies the canonical expansion: length L yields
// exactly L rows, day-in-cycle 1..L in order, period flag on exactly the
// first period_length days.
func TestExpand_Completeness(t *testing.T) {
	rec := cycles.Record{
		User:         "u1",
		CycleID:      7,
		Start:        date(2020, time.January, 1),
		Length:       5,
		PeriodLength: 2,
	}

	days, err := cycles.Expand(rec)
	require.NoError(t, err, "valid record must expand")
	require.Len(t, days, 5, "expansion yields exactly Length rows")

	for i, d := range days {
		assert.Equal(t, "u1", d.Key.User)
		assert.Equal(t, rec.Start.Add(i), d.Key.Date, "dates are consecutive from Start")
		assert.Equal(t, int64(7), d.Row.CycleID)
		assert.Equal(t, i+1, d.Row.DayInCycle, "day-in-cycle is a contiguous run from 1")
		assert.Equal(t, i < 2, d.Row.Period, "period covers exactly the first period_length days")
	}
	assert.Equal(t, "2020-01-05", days[4].Key.Date.String(), "last day closes the [start, start+length) range")
}

// TestExpand_ZeroPeriodLength verifies a cycle with no period days expands
// with the flag false throughout.
func TestExpand_ZeroPeriodLength(t *testing.T) {
	days, err := cycles.Expand(cycles.Record{User: "u1", CycleID: 1, Start: date(2020, time.March, 1), Length: 3})
	require.NoError(t, err)
	for _, d := range days {
		assert.False(t, d.Row.Period, "period_length 0 means no period days")
	}
}

// TestExpand_InvalidRecords verifies each constraint violation surfaces
// ErrInvalidCycleRecord with the offender named.
func TestExpand_InvalidRecords(t *testing.T) {
	start := date(2020, time.January, 1)
	for name, rec := range map[string]cycles.Record{
		"zero length":        {User: "u1", CycleID: 1, Start: start, Length: 0, PeriodLength: 0},
		"negative length":    {User: "u1", CycleID: 2, Start: start, Length: -3, PeriodLength: 0},
		"negative period":    {User: "u1", CycleID: 3, Start: start, Length: 5, PeriodLength: -1},
		"period over length": {User: "u1", CycleID: 4, Start: start, Length: 5, PeriodLength: 6},
	} {
		_, err := cycles.Expand(rec)
		assert.ErrorIs(t, err, cycles.ErrInvalidCycleRecord, "%s must be rejected", name)
		assert.ErrorContains(t, err, `user "u1"`, "%s: error must carry the user", name)
	}
}

// TestExpandAll_Union verifies independent cycles across users union into
// one table with every covered day present exactly once.
func TestExpandAll_Union(t *testing.T) {
	recs := []cycles.Record{
		{User: "u2", CycleID: 21, Start: date(2020, time.February, 1), Length: 3, PeriodLength: 1},
		{User: "u1", CycleID: 11, Start: date(2020, time.January, 1), Length: 4, PeriodLength: 2},
		{User: "u1", CycleID: 12, Start: date(2020, time.January, 5), Length: 2, PeriodLength: 1},
	}

	table, err := cycles.ExpandAll(recs)
	require.NoError(t, err)
	require.Len(t, table, 9, "4 + 2 + 3 non-overlapping days")

	// Adjacent cycles: day 5 belongs to cycle 12, day 4 still to cycle 11.
	assert.Equal(t, int64(11), table[timeline.Key{User: "u1", Date: date(2020, time.January, 4)}].CycleID)
	row := table[timeline.Key{User: "u1", Date: date(2020, time.January, 5)}]
	assert.Equal(t, int64(12), row.CycleID)
	assert.Equal(t, 1, row.DayInCycle, "new cycle restarts the ordinal")
	assert.True(t, row.Period)

	keys := cycles.SortedKeys(table)
	require.Len(t, keys, 9)
	assert.Equal(t, "u1", keys[0].User, "canonical order: user asc, date asc")
	assert.Equal(t, "u2", keys[8].User)
}

// TestExpandAll_OverlapLatestStartWins pins the documented overlap policy:
// a day covered by two cycles belongs to the cycle with the later start,
// regardless of input order.
func TestExpandAll_OverlapLatestStartWins(t *testing.T) {
	early := cycles.Record{User: "u1", CycleID: 1, Start: date(2020, time.January, 1), Length: 6, PeriodLength: 2}
	late := cycles.Record{User: "u1", CycleID: 2, Start: date(2020, time.January, 4), Length: 4, PeriodLength: 1}

	for name, recs := range map[string][]cycles.Record{
		"early first": {early, late},
		"late first":  {late, early},
	} {
		table, err := cycles.ExpandAll(recs)
		require.NoError(t, err, name)
		require.Len(t, table, 7, "%s: union covers Jan 1..7", name)

		overlap := table[timeline.Key{User: "u1", Date: date(2020, time.January, 4)}]
		assert.Equal(t, int64(2), overlap.CycleID, "%s: later-starting cycle owns the overlap", name)
		assert.Equal(t, 1, overlap.DayInCycle, "%s: ordinal counts within the owning cycle", name)
		assert.Equal(t, int64(1), table[timeline.Key{User: "u1", Date: date(2020, time.January, 3)}].CycleID,
			"%s: days before the overlap stay with the earlier cycle", name)
	}
}

// TestExpandAll_RejectsBadRecord verifies validation happens before any
// expansion work.
func TestExpandAll_RejectsBadRecord(t *testing.T) {
	_, err := cycles.ExpandAll([]cycles.Record{
		{User: "u1", CycleID: 1, Start: date(2020, time.January, 1), Length: 3, PeriodLength: 1},
		{User: "u2", CycleID: 9, Start: date(2020, time.January, 1), Length: 2, PeriodLength: 5},
	})
	assert.ErrorIs(t, err, cycles.ErrInvalidCycleRecord)
	assert.ErrorContains(t, err, "cycle 9", "error must carry the cycle id")
}

// TestLastActivity verifies per-user maximum covered dates.
func TestLastActivity(t *testing.T) {
	table, err := cycles.ExpandAll([]cycles.Record{
		{User: "u1", CycleID: 1, Start: date(2020, time.January, 1), Length: 4, PeriodLength: 1},
		{User: "u1", CycleID: 2, Start: date(2020, time.January, 10), Length: 2, PeriodLength: 1},
		{User: "u2", CycleID: 3, Start: date(2020, time.March, 1), Length: 1, PeriodLength: 0},
	})
	require.NoError(t, err)

	last := cycles.LastActivity(table)
	assert.Equal(t, date(2020, time.January, 11), last["u1"])
	assert.Equal(t, date(2020, time.March, 1), last["u2"])
}

// TestFirstUse verifies per-user minimum cycle start, independent of order.
func TestFirstUse(t *testing.T) {
	first := cycles.FirstUse([]cycles.Record{
		{User: "u1", CycleID: 2, Start: date(2020, time.February, 1), Length: 5},
		{User: "u1", CycleID: 1, Start: date(2020, time.January, 1), Length: 5},
		{User: "u2", CycleID: 3, Start: date(2019, time.December, 15), Length: 5},
	})
	assert.Equal(t, date(2020, time.January, 1), first["u1"])
	assert.Equal(t, date(2019, time.December, 15), first["u2"])
	_, ok := first["u3"]
	assert.False(t, ok, "users without cycles have no anchor")
}
