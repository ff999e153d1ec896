package timeline_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/cyclefeat/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDate_ParseFormatRoundTrip verifies that parsing and printing are inverse.
func TestDate_ParseFormatRoundTrip(t *testing.T) {
	d, err := timeline.ParseDate("2020-01-31")
	require.NoError(t, err, "well-formed date must parse")
	assert.Equal(t, "2020-01-31", d.String(), "String must reproduce the parsed input")
}

// TestDate_ParseRejectsMalformed verifies ErrBadDate on malformed input.
func TestDate_ParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "2020-13-01", "01/02/2020", "2020-1-1", "yesterday"} {
		_, err := timeline.ParseDate(s)
		assert.ErrorIs(t, err, timeline.ErrBadDate, "input %q must be rejected", s)
	}
}

// TestDate_Arithmetic verifies Add/Sub are exact day arithmetic, including
// across a DST transition (2020-03-29 in most of Europe).
func TestDate_Arithmetic(t *testing.T) {
	d := timeline.NewDate(2020, time.March, 28)
	assert.Equal(t, "2020-03-30", d.Add(2).String(), "adding 2 days must cross DST cleanly")
	assert.Equal(t, 2, d.Add(2).Sub(d), "Sub must invert Add")
	assert.Equal(t, -2, d.Sub(d.Add(2)), "Sub is signed")
	assert.True(t, d.Before(d.Add(1)), "Before on consecutive days")
	assert.True(t, d.Add(1).After(d), "After on consecutive days")
}

// TestDate_FromTimeDropsClock verifies the time-of-day component is discarded
// and the calendar day is taken in the value's own location.
func TestDate_FromTimeDropsClock(t *testing.T) {
	noon := time.Date(2020, time.June, 15, 12, 34, 56, 0, time.UTC)
	assert.Equal(t, timeline.NewDate(2020, time.June, 15), timeline.FromTime(noon),
		"noon must map to the same calendar day as midnight")
}

// TestDate_PreEpoch verifies day counting is exact before 1970.
func TestDate_PreEpoch(t *testing.T) {
	d := timeline.NewDate(1969, time.December, 31)
	assert.Equal(t, "1969-12-31", d.String(), "pre-epoch dates must round-trip")
	assert.Equal(t, 1, timeline.NewDate(1970, time.January, 1).Sub(d), "one day from epoch eve to epoch")
}

// TestSpan verifies inclusive ascending ranges and the empty case.
func TestSpan(t *testing.T) {
	first := timeline.NewDate(2020, time.January, 1)
	got := timeline.Span(first, first.Add(2))
	require.Len(t, got, 3, "inclusive span of 3 days")
	assert.Equal(t, first, got[0])
	assert.Equal(t, first.Add(2), got[2])

	assert.Empty(t, timeline.Span(first, first.Add(-1)), "reversed bounds yield empty span")
	assert.Equal(t, []timeline.Date{first}, timeline.Span(first, first), "degenerate span is one day")
}

// TestSortKeys verifies the canonical (user asc, date asc) order.
func TestSortKeys(t *testing.T) {
	d := timeline.NewDate(2020, time.January, 1)
	keys := []timeline.Key{
		{User: "u2", Date: d},
		{User: "u1", Date: d.Add(1)},
		{User: "u1", Date: d},
	}
	timeline.SortKeys(keys)
	assert.Equal(t, []timeline.Key{
		{User: "u1", Date: d},
		{User: "u1", Date: d.Add(1)},
		{User: "u2", Date: d},
	}, keys, "user ascending, then date ascending")
}

// TestKey_String verifies the error-context rendering.
func TestKey_String(t *testing.T) {
	k := timeline.Key{User: "u1", Date: timeline.NewDate(2020, time.February, 3)}
	assert.Equal(t, "u1@2020-02-03", k.String())
}
