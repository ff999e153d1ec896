// SPDX-License-Identifier: MIT
// Package: cyclefeat/features
//
// types.go — the merged feature row and table.

package features

import (
	"sort"

	"github.com/katalvlaran/cyclefeat/timeline"
)

// Row is the canonical merged representation of one (user, date):
// per-symptom counts in vocabulary order, plus the three derived columns.
type Row struct {
	Counts      []int // one slot per vocabulary entry, never nil
	DayInCycle  int   // 1-based within the covering cycle; 0 when none covers
	AbsoluteDay int   // 1-based offset from the user's first cycle start
	Period      bool  // true on period days of the covering cycle
}

// ZeroRow returns an all-zero Row of the given vocabulary width — the
// backfill value for days outside a user's recorded history.
func ZeroRow(width int) Row {
	return Row{Counts: make([]int, width)}
}

// Vector flattens the row in training-column order: counts…, day_in_cycle,
// absolute_day, period (0/1). This is the exact layout named by
// vocab.TrainingColumns and consumed by the sequence model.
func (r Row) Vector() []float64 {
	out := make([]float64, 0, len(r.Counts)+3)
	for _, c := range r.Counts {
		out = append(out, float64(c))
	}
	out = append(out, float64(r.DayInCycle), float64(r.AbsoluteDay))
	if r.Period {
		out = append(out, 1)
	} else {
		out = append(out, 0)
	}

	return out
}

// clone deep-copies the row so derived tables never alias source storage.
func (r Row) clone() Row {
	counts := make([]int, len(r.Counts))
	copy(counts, r.Counts)
	r.Counts = counts

	return r
}

// Table is the merged feature table keyed by (user, date).
type Table map[timeline.Key]Row

// SortedKeys returns the table's keys in canonical (user asc, date asc) order.
func SortedKeys(t Table) []timeline.Key {
	keys := make([]timeline.Key, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	timeline.SortKeys(keys)

	return keys
}

// Users returns the distinct users of the table in ascending order.
func Users(t Table) []string {
	seen := make(map[string]struct{})
	for k := range t {
		seen[k.User] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for u := range seen {
		out = append(out, u)
	}
	sort.Strings(out)

	return out
}
