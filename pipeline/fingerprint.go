package pipeline

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/katalvlaran/cyclefeat/cycles"
	"github.com/katalvlaran/cyclefeat/tracking"
	"github.com/katalvlaran/cyclefeat/vocab"
)

// Cache-key prefixes per artifact kind.
const (
	keyCycles   = "cycles:"
	keyFeatures = "features:"
)

// fingerprintRecords hashes the cycle record set, order-independently:
// a permutation of the same records yields the same key.
func fingerprintRecords(recs []cycles.Record) string {
	ordered := make([]cycles.Record, len(recs))
	copy(ordered, recs)
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.User != b.User {
			return a.User < b.User
		}
		if a.CycleID != b.CycleID {
			return a.CycleID < b.CycleID
		}

		return a.Start < b.Start
	})

	h := fnv.New64a()
	for _, r := range ordered {
		fmt.Fprintf(h, "%s|%d|%d|%d|%d\n", r.User, r.CycleID, r.Start, r.Length, r.PeriodLength)
	}

	return fmt.Sprintf("%016x", h.Sum64())
}

// fingerprintInputs hashes everything the merged table depends on: the
// cycle records, the event log, and the vocabulary ordering.
func fingerprintInputs(recs []cycles.Record, events []tracking.Event, v *vocab.Vocabulary) string {
	ordered := make([]tracking.Event, len(events))
	copy(ordered, events)
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.User != b.User {
			return a.User < b.User
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}

		return a.Symptom < b.Symptom
	})

	h := fnv.New64a()
	fmt.Fprintf(h, "recs:%s\n", fingerprintRecords(recs))
	for _, e := range ordered {
		fmt.Fprintf(h, "%s|%d|%s\n", e.User, e.Date, e.Symptom)
	}
	for _, name := range v.Names() {
		fmt.Fprintf(h, "v:%s\n", name)
	}

	return fmt.Sprintf("%016x", h.Sum64())
}
