// Package dataset reads the four upstream CSV tables into the types the
// core transforms consume: cycle records, symptom events, the user roster,
// and active-day pairs.
//
// Loaders take an io.Reader (formats only — where the bytes live is the
// caller's business), require the named header columns (extra columns are
// tolerated, order is free), and report malformed rows with their line
// number so a single bad record is actionable.
package dataset
