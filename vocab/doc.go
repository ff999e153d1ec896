// Package vocab defines the fixed, ordered symptom catalog and the stable
// integer position of every symptom in it.
//
// The catalog is the single source of truth for feature-column ordering:
// the curated symptoms of interest come first (hand-ordered, grouped by
// domain), followed by every remaining symptom in an equally fixed order.
// Position assignment is total and immutable for the lifetime of a run —
// the downstream feature table's column layout depends on it.
//
// Build a Vocabulary once (vocab.Default or vocab.New) and pass it
// explicitly into each transform; there is no package-level global.
package vocab
