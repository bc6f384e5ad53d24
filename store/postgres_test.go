package store_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vilnius-transit/routesearch/model"
	"github.com/vilnius-transit/routesearch/store"
)

// TestPostgresStoreRoundTrips only runs when pointed at a real
// Postgres instance; it's skipped in normal CI/local runs where
// ROUTESEARCH_TEST_POSTGRES_DSN is unset.
func TestPostgresStoreRoundTrips(t *testing.T) {
	dsn := os.Getenv("ROUTESEARCH_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("ROUTESEARCH_TEST_POSTGRES_DSN not set")
	}

	s, err := store.NewPostgresStore(dsn)
	require.NoError(t, err)
	defer s.Close()

	entry := &store.Entry{
		Stops: []model.Stop{{ID: "a", Name: "Stop A", Loc: model.Point{Lat: 1, Lng: 2}}},
	}
	hash := store.ContentHash([]byte("pg-stops"), []byte("pg-schedules"))

	require.NoError(t, s.Put(hash, entry))

	got, found, err := s.Get(hash)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, entry, got)
}
