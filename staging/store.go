package staging

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// SQLite driver, registered under "sqlite3".
	_ "github.com/mattn/go-sqlite3"
)

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("staging: store is closed")

// Cache is the narrow get-or-compute surface the pipeline depends on.
// Get reports (payload, found, error); a miss is (nil, false, nil).
type Cache interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, payload []byte) error
}

// Store is a SQLite-backed Cache persisted at a fixed on-disk location.
type Store struct {
	db *sql.DB
}

var _ Cache = (*Store)(nil)

// Open creates or opens the staging database at path, creating parent
// directories and bootstrapping the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("staging: init dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("staging: open %s: %w", path, err)
	}
	if _, err = db.Exec(schemaSQL); err != nil {
		db.Close()

		return nil, fmt.Errorf("staging: apply schema: %w", err)
	}

	// Stamp creation metadata once; later opens leave it untouched.
	_, err = db.Exec(
		`INSERT OR IGNORE INTO meta (key, value) VALUES
			('schema_version', ?),
			('created_at', ?)`,
		schemaVersion,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		db.Close()

		return nil, fmt.Errorf("staging: stamp meta: %w", err)
	}

	return &Store{db: db}, nil
}

// Get fetches the payload stored under key. A missing key is not an error:
// it reports found=false so callers fall through to recomputation.
func (s *Store) Get(key string) ([]byte, bool, error) {
	if s.db == nil {
		return nil, false, ErrClosed
	}

	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM artifacts WHERE key = ?`, key).Scan(&payload)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("staging: get %q: %w", key, err)
	}

	return payload, true, nil
}

// Put stores payload under key, replacing any previous artifact.
func (s *Store) Put(key string, payload []byte) error {
	if s.db == nil {
		return ErrClosed
	}

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO artifacts (key, created_at, payload) VALUES (?, ?, ?)`,
		key, time.Now().UTC().Format(time.RFC3339), payload,
	)
	if err != nil {
		return fmt.Errorf("staging: put %q: %w", key, err)
	}

	return nil
}

// Delete removes the artifact stored under key, if any.
func (s *Store) Delete(key string) error {
	if s.db == nil {
		return ErrClosed
	}
	if _, err := s.db.Exec(`DELETE FROM artifacts WHERE key = ?`, key); err != nil {
		return fmt.Errorf("staging: delete %q: %w", key, err)
	}

	return nil
}

// Keys lists all stored artifact keys in ascending order.
func (s *Store) Keys() ([]string, error) {
	if s.db == nil {
		return nil, ErrClosed
	}

	rows, err := s.db.Query(`SELECT key FROM artifacts ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("staging: list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err = rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("staging: scan key: %w", err)
		}
		keys = append(keys, k)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("staging: iterate keys: %w", err)
	}

	return keys, nil
}

// Close releases the underlying database. The Store is unusable afterwards.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}
