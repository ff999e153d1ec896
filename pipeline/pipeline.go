package pipeline

import (
	"bytes"
	"encoding/gob"
	"errors"

	"github.com/katalvlaran/cyclefeat/cycles"
	"github.com/katalvlaran/cyclefeat/features"
	"github.com/katalvlaran/cyclefeat/tracking"
	"github.com/katalvlaran/cyclefeat/vocab"
)

// ErrNilVocabulary indicates New was called without a catalog.
var ErrNilVocabulary = errors.New("pipeline: vocabulary is nil")

// Pipeline binds a vocabulary and run configuration; its methods are the
// end-to-end entry points of the library.
type Pipeline struct {
	vocab *vocab.Vocabulary
	opts  Options
}

// New builds a Pipeline over the given catalog.
func New(v *vocab.Vocabulary, opts ...Option) (*Pipeline, error) {
	if v == nil {
		return nil, ErrNilVocabulary
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Pipeline{vocab: v, opts: o}, nil
}

// CycleTable expands the record set into the dense cycle calendar,
// memoized under a fingerprint of the records.
func (p *Pipeline) CycleTable(recs []cycles.Record) (cycles.Table, error) {
	key := keyCycles + fingerprintRecords(recs)

	var cached cycles.Table
	if p.load(key, &cached) {
		return cached, nil
	}

	table, err := cycles.ExpandAll(recs)
	if err != nil {
		return nil, err
	}
	p.store(key, table)

	return table, nil
}

// Features runs the full merge: dense cycle calendar, aggregated symptom
// table, outer join with absolute-day anchoring. Strict results are
// memoized under a fingerprint of both inputs and the vocabulary;
// permissive results are never cached, so a table with offending rows
// dropped cannot satisfy a strict run and every permissive run
// re-reports its issues through the OnIssue hook.
func (p *Pipeline) Features(recs []cycles.Record, events []tracking.Event) (features.Table, error) {
	key := keyFeatures + fingerprintInputs(recs, events, p.vocab)

	var cached features.Table
	if !p.opts.permissive && p.load(key, &cached) {
		return cached, nil
	}

	cycleTable, err := p.CycleTable(recs)
	if err != nil {
		return nil, err
	}
	symptomTable, err := tracking.Aggregate(events, p.vocab)
	if err != nil {
		return nil, err
	}
	merged, err := features.Merge(cycleTable, symptomTable, recs, p.vocab, p.opts.featureOpts...)
	if err != nil {
		return nil, err
	}
	if !p.opts.permissive {
		p.store(key, merged)
	}

	return merged, nil
}

// Windowed runs Features and clips the result to fixed-length trailing
// windows per user — the exact shape the sequence model consumes.
func (p *Pipeline) Windowed(recs []cycles.Record, events []tracking.Event) (features.Table, error) {
	merged, err := p.Features(recs, events)
	if err != nil {
		return nil, err
	}
	cycleTable, err := p.CycleTable(recs)
	if err != nil {
		return nil, err
	}

	return features.Clip(merged, cycleTable, p.vocab, p.opts.featureOpts...)
}

// load fetches and decodes a cached artifact into out. Any failure —
// disabled cache, forced run, miss, read error, decode error — reports
// false and the caller recomputes; the cache can slow a run down, never
// corrupt it.
func (p *Pipeline) load(key string, out any) bool {
	if p.opts.Cache == nil || p.opts.Force {
		return false
	}
	payload, found, err := p.opts.Cache.Get(key)
	if err != nil || !found {
		return false
	}
	if err = gob.NewDecoder(bytes.NewReader(payload)).Decode(out); err != nil {
		return false
	}

	return true
}

// store encodes and writes an artifact, best effort: a failed write only
// costs the next run a recompute.
func (p *Pipeline) store(key string, artifact any) {
	if p.opts.Cache == nil {
		return
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(artifact); err != nil {
		return
	}
	_ = p.opts.Cache.Put(key, buf.Bytes())
}
