// Package tracking aggregates sparse symptom-event logs into dense daily
// count vectors.
//
// Each event is one point-in-time log: (user, date, symptom). Aggregate
// one-hot expands every event against a vocab.Vocabulary and sums all
// events sharing a (user, date) key, so logging the same symptom twice on
// one day yields a count of 2 — duplicates are data, not errors. Every row
// always carries the full vocabulary width; a symptom never logged that day
// is an explicit 0, not an absent column.
package tracking
