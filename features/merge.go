// SPDX-License-Identifier: MIT
// Package: cyclefeat/features
//
// merge.go — outer join of the cycle calendar and the symptom table.

package features

import (
	"fmt"

	"github.com/katalvlaran/cyclefeat/cycles"
	"github.com/katalvlaran/cyclefeat/timeline"
	"github.com/katalvlaran/cyclefeat/tracking"
	"github.com/katalvlaran/cyclefeat/vocab"
)

// merger holds the mutable state of one Merge pass.
type merger struct {
	opts     Options
	width    int
	firstUse map[string]timeline.Date
	out      Table
}

// Merge outer-joins the dense cycle calendar and the dense symptom table on
// (user, date) and anchors every row to the user's first cycle start.
//
// Semantics per key of the union:
//   - symptom counts default to zero when only the calendar covers the day;
//   - day_in_cycle and period default to 0/false when only symptoms exist;
//   - absolute_day = (date − min cycle_start of the user) + 1, always ≥ 1.
//
// A user present in symptomTable with no record in recs has no anchor:
// strict mode returns ErrNoCyclesForUser; permissive mode drops that user's
// symptom rows, reporting each through the OnIssue hook. A computed
// absolute day < 1 likewise yields ErrNegativeAbsoluteDay or a reported
// skip — never a clamped or undefined value.
//
// Keys are processed in canonical order, so the first error is the same on
// every run over the same input.
//
// Complexity: O(U log U + U·|v|) where U = |cycleTable ∪ symptomTable|.
func Merge(cycleTable cycles.Table, symptomTable tracking.Table, recs []cycles.Record, v *vocab.Vocabulary, opts ...Option) (Table, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNilVocabulary
	}

	m := &merger{
		opts:     o,
		width:    v.Size(),
		firstUse: cycles.FirstUse(recs),
		out:      make(Table, len(cycleTable)+len(symptomTable)),
	}

	for _, k := range unionKeys(cycleTable, symptomTable) {
		if err = m.mergeKey(k, cycleTable, symptomTable); err != nil {
			return nil, err
		}
	}

	return m.out, nil
}

// mergeKey assembles the row for one (user, date) key, or skips it in
// permissive mode.
func (m *merger) mergeKey(k timeline.Key, cycleTable cycles.Table, symptomTable tracking.Table) error {
	crow, covered := cycleTable[k]

	counts := make([]int, m.width)
	if srow, ok := symptomTable[k]; ok {
		if len(srow.Counts) != m.width {
			return fmt.Errorf("%s: %w: got %d, want %d", k, ErrDimensionMismatch, len(srow.Counts), m.width)
		}
		copy(counts, srow.Counts)
	}

	anchor, anchored := m.firstUse[k.User]
	if !anchored {
		return m.skipOrFail(Issue{
			User: k.User,
			Date: k.Date,
			Err:  fmt.Errorf("user %q: %w", k.User, ErrNoCyclesForUser),
		})
	}

	abs := k.Date.Sub(anchor) + 1
	if abs < 1 {
		return m.skipOrFail(Issue{
			User:    k.User,
			Date:    k.Date,
			CycleID: crow.CycleID,
			Err: fmt.Errorf("%s: %w: day %d relative to first use %s",
				k, ErrNegativeAbsoluteDay, abs, anchor),
		})
	}

	m.out[k] = Row{
		Counts:      counts,
		DayInCycle:  crow.DayInCycle, // zero value when !covered
		AbsoluteDay: abs,
		Period:      covered && crow.Period,
	}

	return nil
}

// skipOrFail enforces the strict/permissive policy for one issue.
func (m *merger) skipOrFail(is Issue) error {
	if !m.opts.Permissive {
		return is.Err
	}
	m.opts.OnIssue(is)

	return nil
}

// unionKeys returns the sorted union of both tables' key sets.
func unionKeys(ct cycles.Table, st tracking.Table) []timeline.Key {
	seen := make(map[timeline.Key]struct{}, len(ct)+len(st))
	for k := range ct {
		seen[k] = struct{}{}
	}
	for k := range st {
		seen[k] = struct{}{}
	}
	keys := make([]timeline.Key, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	timeline.SortKeys(keys)

	return keys
}
