package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// PostgresStore caches decoded input documents in Postgres, for
// deployments that share one cache across multiple search-service
// instances.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a Postgres-backed cache using a
// lib/pq-style connection string.
func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening postgres cache: %w", err)
	}

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS graph_cache (
    hash TEXT PRIMARY KEY,
    payload BYTEA NOT NULL,
    cached_at TIMESTAMPTZ NOT NULL
);`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating graph_cache table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(hash string) (*Entry, bool, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM graph_cache WHERE hash = $1`, hash).Scan(&payload)
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

func (s *PostgresStore) Put(hash string, entry *Entry) error {
	payload, err := encodeEntry(entry)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
INSERT INTO graph_cache (hash, payload, cached_at) VALUES ($1, $2, $3)
ON CONFLICT (hash) DO UPDATE SET payload = excluded.payload, cached_at = excluded.cached_at`,
		hash, payload, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("writing cache entry %q: %w", hash, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
