// SPDX-License-Identifier: MIT
// Package: cyclefeat/features
//
// options.go — functional configuration for Merge and Clip.
//
// Design:
//   - Options is the single source of truth for all knobs; defaults are
//     deterministic and documented.
//   - Invalid values are recorded inside Options and surfaced as
//     ErrOptionViolation when the transform runs, so option construction
//     itself never panics or errors.

package features

import (
	"fmt"

	"github.com/katalvlaran/cyclefeat/timeline"
)

// DefaultMaxLen is the trailing-window length handed to the sequence model
// when no WithMaxLen option is supplied.
const DefaultMaxLen = 90

// Issue describes one skipped row or user in permissive mode.
type Issue struct {
	User    string
	Date    timeline.Date
	CycleID int64 // 0 when no cycle covers the offending date
	Err     error // the sentinel (wrapped) that caused the skip
}

// Option configures Merge and Clip via functional arguments.
type Option func(*Options)

// Options holds the transform knobs. Zero-value behavior is defined by
// DefaultOptions; always start from there.
type Options struct {
	// Permissive switches from abort-on-first-error to skip-and-report.
	Permissive bool

	// OnIssue receives one call per skipped row or user in permissive
	// mode. Ignored (never called) in strict mode.
	OnIssue func(Issue)

	// MaxLen is the trailing-window length used by Clip; must be > 0.
	MaxLen int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the deterministic defaults:
//   - strict mode (abort on first data-quality error)
//   - no-op OnIssue hook
//   - MaxLen = DefaultMaxLen (90 days)
func DefaultOptions() Options {
	return Options{
		Permissive: false,
		OnIssue:    func(Issue) {},
		MaxLen:     DefaultMaxLen,
		err:        nil,
	}
}

// WithPermissive switches to skip-and-report mode: offending rows or users
// are dropped and each drop is announced through the OnIssue hook.
func WithPermissive() Option {
	return func(o *Options) { o.Permissive = true }
}

// WithOnIssue registers a callback invoked once per skip in permissive mode.
func WithOnIssue(fn func(Issue)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIssue = fn
		}
	}
}

// WithMaxLen sets the trailing-window length for Clip.
//
//	n > 0: window of n days
//	n ≤ 0: invalid option → ErrOptionViolation when the transform runs
func WithMaxLen(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxLen must be positive, got %d", ErrOptionViolation, n)

			return
		}
		o.MaxLen = n
	}
}

// gatherOptions applies opts over the defaults and surfaces any recorded
// violation. Last write wins.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
