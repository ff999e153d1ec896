// SPDX-License-Identifier: MIT
// Package: cyclefeat/vocab
//
// errors.go — sentinel errors for the vocab package.
//
// Error policy (explicit and strict):
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Sentinels carry no parameters; context is attached via %w wrapping at
//     the call site that detected the problem.

package vocab

import "errors"

// ErrUnknownSymptom indicates a lookup for a name outside the catalog.
// Any event log referencing such a name is a data-quality error that must
// abort the batch (strict mode) or be skipped and reported (permissive).
// Usage: if errors.Is(err, vocab.ErrUnknownSymptom) { ... }.
var ErrUnknownSymptom = errors.New("vocab: unknown symptom")

// ErrDuplicateSymptom indicates the same name appears twice while building
// a custom catalog. Positions must be total, so duplicates are rejected
// rather than silently collapsed.
var ErrDuplicateSymptom = errors.New("vocab: duplicate symptom")

// ErrEmptyVocabulary indicates an attempt to build a catalog with no names.
var ErrEmptyVocabulary = errors.New("vocab: empty vocabulary")
