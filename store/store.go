// Package store caches decoded (stops, schedules) document pairs,
// keyed by the SHA-256 hash of their raw bytes, so that repeated graph
// builds against unchanged input documents can skip re-decoding.
package store

import "github.com/vilnius-transit/routesearch/model"

// Entry is one cached, already-decoded input document pair.
type Entry struct {
	Stops     []model.Stop
	Schedules []model.Schedule
}

// Storage is the cache backend. Implementations (SQLite, Postgres)
// must treat Put as an upsert: writing an entry under a hash that
// already exists replaces it.
type Storage interface {
	// Get retrieves the cached entry for hash. The second return
	// value is false if no entry exists for that hash.
	Get(hash string) (*Entry, bool, error)

	// Put stores (or replaces) the entry for hash.
	Put(hash string, entry *Entry) error

	Close() error
}
