// Package cycles expands sparse cycle records (start date + length) into
// dense day-by-day calendar tables.
//
// 🚀 What does it do?
//
//	A cycle is recorded as one interval: user, start, total length, period
//	length. Expand densifies a single record into one row per covered day,
//	tagging each with its 1-based day-in-cycle ordinal and a period flag.
//	ExpandAll does this for a whole record set and unions the results into
//	one (user, date)-keyed table — the complete daily calendar the merge
//	stage aligns symptom logs against.
//
// Overlap policy (deterministic, tested):
//
//	Records are sorted by (user, start, cycle id) before expansion and
//	written in that order with last-write-wins per (user, date). A day
//	covered by two cycles therefore always belongs to the cycle with the
//	LATEST start date. Overlaps are upstream data-quality violations; the
//	policy only guarantees they resolve the same way every run.
//
// Errors:
//   - ErrInvalidCycleRecord — length/ordering constraint violated; wrapped
//     with the owning user and cycle id so the offender is reportable.
package cycles
