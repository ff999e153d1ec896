package staging

// schemaVersion is stamped into meta at creation time; bump it whenever the
// artifact payload encoding changes so stale staging files are detectable.
const schemaVersion = "1"

// schemaSQL bootstraps an empty staging database. Idempotent.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS artifacts (
	key        TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	payload    BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`
