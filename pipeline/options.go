package pipeline

import (
	"github.com/katalvlaran/cyclefeat/features"
	"github.com/katalvlaran/cyclefeat/staging"
)

// Option configures a Pipeline at construction time.
type Option func(*Options)

// Options holds the pipeline knobs; start from DefaultOptions.
type Options struct {
	// Cache memoizes intermediate tables between runs; nil disables it.
	Cache staging.Cache

	// Force bypasses cache reads (writes still happen), recomputing
	// every artifact from the live inputs.
	Force bool

	// featureOpts are forwarded to features.Merge and features.Clip.
	featureOpts []features.Option

	// permissive mirrors WithPermissive so caching can exclude
	// skip-and-report results (see Pipeline.Features).
	permissive bool
}

// DefaultOptions returns the deterministic defaults: no cache, no force,
// strict mode, DefaultMaxLen window.
func DefaultOptions() Options {
	return Options{Cache: nil, Force: false}
}

// WithCache injects the artifact cache used between runs.
func WithCache(c staging.Cache) Option {
	return func(o *Options) { o.Cache = c }
}

// WithForce makes every run recompute from the live inputs, ignoring
// cached artifacts. The recomputed artifacts are still written back.
func WithForce() Option {
	return func(o *Options) { o.Force = true }
}

// WithPermissive forwards skip-and-report mode to the merge and clip
// stages. Permissive results are never written to or served from the
// cache: a table with offending rows dropped must not satisfy a strict
// run, and every permissive run must re-report its issues through the
// OnIssue hook.
func WithPermissive() Option {
	return func(o *Options) {
		o.featureOpts = append(o.featureOpts, features.WithPermissive())
		o.permissive = true
	}
}

// WithOnIssue forwards the per-skip callback to the merge and clip stages.
func WithOnIssue(fn func(features.Issue)) Option {
	return func(o *Options) { o.featureOpts = append(o.featureOpts, features.WithOnIssue(fn)) }
}

// WithMaxLen forwards the trailing-window length to the clip stage.
func WithMaxLen(n int) Option {
	return func(o *Options) { o.featureOpts = append(o.featureOpts, features.WithMaxLen(n)) }
}
