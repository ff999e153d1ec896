// Package timeline provides the day-granularity calendar primitives shared
// by every cyclefeat table: Date (a pure day count, immune to time zones and
// DST) and Key (the (user, date) composite every table is indexed by).
//
// Determinism contract:
//   - Date arithmetic is integer day arithmetic; no time-of-day component
//     ever leaks into comparisons or spans.
//   - SortKeys defines the single canonical (user asc, date asc) order used
//     whenever a table is iterated for output, error reporting, or hashing.
package timeline
