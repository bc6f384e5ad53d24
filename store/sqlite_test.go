package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vilnius-transit/routesearch/model"
	"github.com/vilnius-transit/routesearch/store"
)

func TestSQLiteStoreRoundTrips(t *testing.T) {
	s, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	entry := &store.Entry{
		Stops: []model.Stop{{ID: "a", Name: "Stop A", Loc: model.Point{Lat: 1, Lng: 2}}},
		Schedules: []model.Schedule{{
			ID:            "7",
			Name:          "7",
			TransportType: model.Bus,
		}},
	}

	hash := store.ContentHash([]byte("stops-doc"), []byte("schedules-doc"))

	_, found, err := s.Get(hash)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Put(hash, entry))

	got, found, err := s.Get(hash)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, entry, got)
}

func TestSQLiteStorePutOverwritesExistingHash(t *testing.T) {
	s, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	hash := store.ContentHash([]byte("doc"), nil)

	require.NoError(t, s.Put(hash, &store.Entry{Stops: []model.Stop{{ID: "a"}}}))
	require.NoError(t, s.Put(hash, &store.Entry{Stops: []model.Stop{{ID: "b"}}}))

	got, found, err := s.Get(hash)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got.Stops, 1)
	assert.Equal(t, "b", got.Stops[0].ID)
}

func TestContentHashIsStableAndSensitiveToInput(t *testing.T) {
	a := store.ContentHash([]byte("stops-v1"), []byte("schedules-v1"))
	b := store.ContentHash([]byte("stops-v1"), []byte("schedules-v1"))
	c := store.ContentHash([]byte("stops-v2"), []byte("schedules-v1"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
