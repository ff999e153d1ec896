// SPDX-License-Identifier: MIT
// Package: cyclefeat/features
//
// errors.go — sentinel errors for merge and window clipping.
//
// Error policy (explicit and strict):
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context (user, date, cycle) is attached via %w wrapping at detection
//     sites; sentinels themselves stay parameter-free.
//   • Data-quality errors never panic and are never retried — retrying does
//     not change a data error.

package features

import "errors"

// ErrNoCyclesForUser indicates a user appears in the symptom table but has
// zero cycle records, so no first-use anchor exists for absolute-day
// arithmetic. The permissive alternative to this error is dropping the
// user's symptom rows and reporting each through the OnIssue hook; silently
// producing undefined absolute days is never an option.
var ErrNoCyclesForUser = errors.New("features: user has no cycle records")

// ErrNegativeAbsoluteDay indicates a computed absolute day < 1: activity
// was logged before the user's earliest cycle start. This is a data
// inconsistency to surface, not to clamp.
var ErrNegativeAbsoluteDay = errors.New("features: absolute day before first use")

// ErrNoActivity indicates a window was requested for a user with no cycle
// calendar entries, so there is no last-activity date to count back from.
var ErrNoActivity = errors.New("features: user has no cycle calendar activity")

// ErrOptionViolation indicates an invalid Option was supplied (for example
// a non-positive MaxLen). Surfaced when the transform is invoked, never as
// a panic.
var ErrOptionViolation = errors.New("features: invalid option supplied")

// ErrNilVocabulary indicates a transform was called without a catalog.
var ErrNilVocabulary = errors.New("features: vocabulary is nil")

// ErrDimensionMismatch indicates a symptom row whose count vector width
// differs from the vocabulary size — a programmer error in table plumbing,
// detected rather than silently misaligned.
var ErrDimensionMismatch = errors.New("features: symptom vector width mismatch")
