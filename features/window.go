// SPDX-License-Identifier: MIT
// Package: cyclefeat/features
//
// window.go — fixed-length trailing windows per user.

package features

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cyclefeat/cycles"
	"github.com/katalvlaran/cyclefeat/timeline"
	"github.com/katalvlaran/cyclefeat/vocab"
)

// Clip reindexes the merged feature table to exactly MaxLen consecutive
// calendar days per user, ending (inclusive) at that user's maximum date in
// the cycle calendar. Days inside the window with no feature row become
// all-zero rows — every column, including day_in_cycle, absolute_day and
// period, is 0 — so each user contributes a sequence of identical shape.
//
// A user present in f but absent from cycleTable has no last-activity
// anchor: strict mode returns ErrNoActivity; permissive mode drops the
// user and reports one Issue. Users present in cycleTable always produce
// exactly MaxLen rows, even when f holds nothing for them.
//
// The result never aliases f's storage; rows are deep-copied.
//
// Complexity: O(F + W·|v|) where F = len(f) and W = users × MaxLen.
func Clip(f Table, cycleTable cycles.Table, v *vocab.Vocabulary, opts ...Option) (Table, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNilVocabulary
	}

	last := cycles.LastActivity(cycleTable)

	// Surface anchorless users deterministically before building windows.
	for _, u := range Users(f) {
		if _, ok := last[u]; ok {
			continue
		}
		is := Issue{User: u, Err: fmt.Errorf("user %q: %w", u, ErrNoActivity)}
		if !o.Permissive {
			return nil, is.Err
		}
		o.OnIssue(is)
	}

	users := make([]string, 0, len(last))
	for u := range last {
		users = append(users, u)
	}
	sort.Strings(users)

	out := make(Table, len(users)*o.MaxLen)
	width := v.Size()
	for _, u := range users {
		first := last[u].Add(1 - o.MaxLen)
		for _, d := range timeline.Span(first, last[u]) {
			k := timeline.Key{User: u, Date: d}
			if row, ok := f[k]; ok {
				out[k] = row.clone()
			} else {
				out[k] = ZeroRow(width)
			}
		}
	}

	return out, nil
}

// UserSequences arranges a feature table into per-user dense matrices:
// one row per date in ascending order, columns in training-column order.
// This is the exact input shape of the downstream sequence model.
func UserSequences(f Table, v *vocab.Vocabulary) (map[string][][]float64, error) {
	if v == nil {
		return nil, ErrNilVocabulary
	}

	out := make(map[string][][]float64)
	for _, k := range SortedKeys(f) {
		row := f[k]
		if len(row.Counts) != v.Size() {
			return nil, fmt.Errorf("%s: %w: got %d, want %d", k, ErrDimensionMismatch, len(row.Counts), v.Size())
		}
		out[k.User] = append(out[k.User], row.Vector())
	}

	return out, nil
}
