// SPDX-License-Identifier: MIT
// Package: cyclefeat/vocab
//
// vocab.go — Vocabulary construction and lookup.

package vocab

import "fmt"

// Names of the non-symptom feature columns appended after the catalog.
const (
	ColDayInCycle  = "day_in_cycle"
	ColAbsoluteDay = "absolute_day"
	ColPeriod      = "period"
)

// Vocabulary is an ordered, deduplicated symptom catalog with a stable
// integer position per name. It is immutable after construction and safe
// for concurrent readers; build it once and pass it into every transform.
type Vocabulary struct {
	names    []string       // curated subset first, then the rest
	index    map[string]int // name -> position in names
	interest int            // length of the curated prefix
}

// Default returns the canonical catalog: the 16 curated symptoms of
// interest followed by the 65 remaining symptoms (see catalog.go).
func Default() *Vocabulary {
	v, err := New(symptomsOfInterest, otherSymptoms)
	if err != nil {
		// The literal catalog is reviewed data; failing to build it is a
		// programmer error, not a runtime condition.
		panic(fmt.Sprintf("vocab: default catalog invalid: %v", err))
	}

	return v
}

// New builds a custom catalog from a curated prefix and the remaining
// names, preserving the given order exactly.
// Returns ErrEmptyVocabulary when both lists are empty, or
// ErrDuplicateSymptom (wrapped with the offending name) on any repeat.
func New(interest, others []string) (*Vocabulary, error) {
	total := len(interest) + len(others)
	if total == 0 {
		return nil, ErrEmptyVocabulary
	}

	v := &Vocabulary{
		names:    make([]string, 0, total),
		index:    make(map[string]int, total),
		interest: len(interest),
	}
	for _, name := range interest {
		if err := v.add(name); err != nil {
			return nil, err
		}
	}
	for _, name := range others {
		if err := v.add(name); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// add appends one name, rejecting duplicates.
func (v *Vocabulary) add(name string) error {
	if _, seen := v.index[name]; seen {
		return fmt.Errorf("%w: %q", ErrDuplicateSymptom, name)
	}
	v.index[name] = len(v.names)
	v.names = append(v.names, name)

	return nil
}

// Index returns the stable position of name in the catalog, or
// ErrUnknownSymptom (wrapped with the name) when absent.
func (v *Vocabulary) Index(name string) (int, error) {
	i, ok := v.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymptom, name)
	}

	return i, nil
}

// Contains reports whether name has a position in the catalog.
func (v *Vocabulary) Contains(name string) bool {
	_, ok := v.index[name]

	return ok
}

// Size returns the number of catalog entries.
func (v *Vocabulary) Size() int { return len(v.names) }

// Names returns a copy of the full catalog in position order.
func (v *Vocabulary) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)

	return out
}

// Interest returns a copy of the curated prefix in position order.
func (v *Vocabulary) Interest() []string {
	out := make([]string, v.interest)
	copy(out, v.names[:v.interest])

	return out
}

// TrainingColumns returns the canonical output-column set: every catalog
// name in position order, then day_in_cycle, absolute_day and period.
func (v *Vocabulary) TrainingColumns() []string {
	out := make([]string, 0, len(v.names)+3)
	out = append(out, v.names...)
	out = append(out, ColDayInCycle, ColAbsoluteDay, ColPeriod)

	return out
}
