package tracking

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cyclefeat/timeline"
	"github.com/katalvlaran/cyclefeat/vocab"
)

// ErrNilVocabulary indicates Aggregate was called without a catalog.
var ErrNilVocabulary = errors.New("tracking: vocabulary is nil")

// Event is one sparse symptom log entry. Multiple events may share
// (user, date), with distinct or identical symptom names.
type Event struct {
	User    string
	Date    timeline.Date
	Symptom string
}

// DayRow is the dense daily view: Counts[i] holds how many times the
// vocabulary's i-th symptom was logged that day. len(Counts) always equals
// the vocabulary size.
type DayRow struct {
	Counts []int
}

// Table is the dense symptom table keyed by (user, date).
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

// Aggregate one-hot expands events against v and sums per (user, date).
// An event naming a symptom outside the catalog aborts with
// vocab.ErrUnknownSymptom, wrapped with the offending user and date.
//
// Complexity: O(E) time for E events, O(K·|v|) space for K distinct keys.
func Aggregate(events []Event, v *vocab.Vocabulary) (Table, error) {
	if v == nil {
		return nil, ErrNilVocabulary
	}

	table := make(Table)
	for _, e := range events {
		idx, err := v.Index(e.Symptom)
		if err != nil {
			return nil, fmt.Errorf("user %q date %s: %w", e.User, e.Date, err)
		}

		k := timeline.Key{User: e.User, Date: e.Date}
		row, ok := table[k]
		if !ok {
			row = DayRow{Counts: make([]int, v.Size())}
			table[k] = row
		}
		// Counts is shared backing storage; incrementing through the copy
		// retrieved above updates the stored row.
		row.Counts[idx]++
	}

	return table, nil
}
