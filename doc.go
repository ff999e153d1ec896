// Package cyclefeat turns sparse menstrual-cycle records and symptom logs
// into dense, day-indexed feature tables ready for sequence models.
//
// 🚀 What is cyclefeat?
//
//	A deterministic, single-pass batch transform that:
//		• Expands sparse cycle records into complete daily calendars
//		• One-hot encodes and aggregates symptom events per (user, day)
//		• Outer-joins both views into one aligned timeline per user
//		• Clips/pads each user's timeline to a fixed trailing window
//
// ✨ Why choose cyclefeat?
//
//   - Correct temporal alignment – inactive days are materialized, not lost
//   - Deterministic by construction – sorted iteration, explicit seeds, no globals
//   - Strict by default – data-quality problems surface as sentinel errors,
//     with an explicit permissive mode that skips and reports instead
//   - Pure transforms – disk memoization is injected, never baked in
//
// Everything is organized under flat subpackages:
//
//	timeline/ — day-granularity Date and (user, date) Key primitives
//	vocab/    — fixed, ordered symptom catalog with stable indices
//	cycles/   — per-cycle and whole-set daily expansion
//	tracking/ — one-hot daily symptom aggregation
//	features/ — outer-join merge, absolute-day anchoring, window clipping
//	staging/  — SQLite-backed get-or-compute artifact cache
//	dataset/  — CSV loaders for the four input tables
//	split/    — seeded train/test user partition
//	pipeline/ — end-to-end orchestration with optional memoization
//
// Quick sketch:
//
//	cycles:   (user, start, length, period_length)   — sparse intervals
//	tracking: (user, date, symptom)                  — sparse points
//	      ↓ expand            ↓ aggregate
//	      └────── outer join on (user, date) ────────┘
//	                        ↓
//	  dense rows: symptoms… day_in_cycle absolute_day period
//	                        ↓ clip(maxLen)
//	  fixed-length, zero-padded per-user sequences
//
// Dive into pipeline/ for the façade, or use the packages directly when you
// need only one stage.
package cyclefeat
