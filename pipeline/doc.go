// Package pipeline runs the whole feature-engineering pass end to end:
// expand cycles, aggregate symptoms, merge, and window — with optional
// disk memoization of the expensive intermediates.
//
// ⚙️ Usage:
//
//	p, err := pipeline.New(vocab.Default(),
//	  pipeline.WithCache(store),   // staging.Store or any staging.Cache
//	  pipeline.WithMaxLen(90),
//	)
//	f, err := p.Features(records, events)   // dense merged table
//	w, err := p.Windowed(records, events)   // fixed-length trailing windows
//
// Memoization contract:
//
//	Artifacts are keyed by a fingerprint of the exact inputs, so a cache
//	hit is only possible for byte-identical input sets. Reads that fail or
//	decode badly fall through to recomputation; WithForce bypasses reads
//	entirely. With or without a cache, the same inputs always produce the
//	same tables — the cache is invisible to callers.
package pipeline
