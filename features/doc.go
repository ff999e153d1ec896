// Package features aligns the dense cycle calendar and the dense symptom
// table into one per-user, per-day feature table, then clips it to the
// fixed-length trailing windows a sequence model consumes.
//
// 🚀 What does it do?
//
//	Merge outer-joins both views on (user, date), zero-fills whichever side
//	is missing, anchors every row to the user's first observed cycle start
//	(absolute_day, 1-based), and restricts the output to the canonical
//	column set: vocabulary counts + day_in_cycle + absolute_day + period.
//
//	Clip reindexes the merged table to exactly MaxLen consecutive calendar
//	days per user, ending at that user's last cycle-calendar date. Days the
//	user has no history for become all-zero rows, so every user's sequence
//	has identical shape.
//
// ⚙️ Modes:
//
//	Strict (default) aborts the batch on the first data-quality problem.
//	WithPermissive() skips the offending row or user instead and reports
//	each skip through the WithOnIssue hook — an explicit choice, never an
//	implicit fallback. Undefined values are never produced: a user without
//	cycle records or a computed absolute day < 1 is an error in strict mode
//	and a reported skip in permissive mode.
//
// Errors:
//   - ErrNoCyclesForUser    — symptom rows exist but no cycle anchors them
//   - ErrNegativeAbsoluteDay — activity logged before the first-use anchor
//   - ErrNoActivity          — window requested for a user absent from the
//     cycle calendar
//   - ErrOptionViolation     — invalid option (e.g. MaxLen ≤ 0)
package features
