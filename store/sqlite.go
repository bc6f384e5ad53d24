package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore caches decoded input documents in a local SQLite file
// (or an in-memory database, for tests).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if necessary) a SQLite-backed cache
// at path. Pass ":memory:" for a throwaway, process-local cache.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite cache: %w", err)
	}

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS graph_cache (
    hash TEXT PRIMARY KEY,
    payload BLOB NOT NULL,
    cached_at TIMESTAMP NOT NULL
);`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating graph_cache table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(hash string) (*Entry, bool, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM graph_cache WHERE hash = ?`, hash).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache entry %q: %w", hash, err)
	}

	entry, err := decodeEntry(payload)
	if err != nil {
		return nil, false, err
	}
	return entry, true, nil
}

func (s *SQLiteStore) Put(hash string, entry *Entry) error {
	payload, err := encodeEntry(entry)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
INSERT INTO graph_cache (hash, payload, cached_at) VALUES (?, ?, ?)
ON CONFLICT (hash) DO UPDATE SET payload = excluded.payload, cached_at = excluded.cached_at`,
		hash, payload, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("writing cache entry %q: %w", hash, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
