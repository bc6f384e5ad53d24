package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vilnius-transit/routesearch/model"
)

func TestDistance(t *testing.T) {
	// Two points in Vilnius, with distance measured in Google Maps.
	p1 := model.Point{Lat: 54.690740, Lng: 25.241002}
	p2 := model.Point{Lat: 54.701723, Lng: 25.264866}

	d := model.Distance(p1, p2)
	assert.InDelta(t, 1960.0, d, 5.0)
}

func TestDistanceIsSymmetric(t *testing.T) {
	p1 := model.Point{Lat: 54.690740, Lng: 25.241002}
	p2 := model.Point{Lat: 54.701723, Lng: 25.264866}

	assert.InDelta(t, model.Distance(p1, p2), model.Distance(p2, p1), 1e-9)
}

func TestWalkTime(t *testing.T) {
	for _, tc := range []struct {
		name     string
		distance float64
		speedKmh float64
		want     uint64
	}{
		{"one km at default speed", 1000, 0, 900},
		{"rounds up", 1, 0, 1},
		{"zero distance", 0, 0, 0},
		{"custom speed", 2000, 10, 720},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, model.WalkTime(tc.distance, tc.speedKmh))
		})
	}
}
