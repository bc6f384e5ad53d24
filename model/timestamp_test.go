package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vilnius-transit/routesearch/model"
)

func ts(day model.Day, h, m uint64) model.Timestamp {
	return model.NewTimestamp(day, model.NewDayTime(h, m))
}

func TestCompareUsingDeparture(t *testing.T) {
	dep := ts(model.Monday, 10, 0)

	assert.Equal(t, model.Less, ts(model.Monday, 12, 0).CompareUsingDeparture(ts(model.Sunday, 9, 0), dep))
	assert.Equal(t, model.Greater, ts(model.Tuesday, 9, 0).CompareUsingDeparture(ts(model.Monday, 11, 0), dep))
}

func TestCompareUsingDepartureIsReflexive(t *testing.T) {
	dep := ts(model.Monday, 10, 0)
	x := ts(model.Wednesday, 7, 15)
	assert.Equal(t, model.Equal, x.CompareUsingDeparture(x, dep))
}

func TestCompareUsingDepartureAtDeparture(t *testing.T) {
	dep := ts(model.Monday, 10, 0)
	other := ts(model.Friday, 3, 0)
	assert.Equal(t, model.Less, dep.CompareUsingDeparture(other, dep))
	assert.Equal(t, model.Greater, other.CompareUsingDeparture(dep, dep))
}

func TestIsFollowedBy(t *testing.T) {
	assert.True(t, ts(model.Monday, 10, 0).IsFollowedBy(ts(model.Tuesday, 10, 0)))
	assert.False(t, ts(model.Monday, 10, 0).IsFollowedBy(ts(model.Thursday, 10, 0)))
}

func TestIsFollowedBySameInstant(t *testing.T) {
	x := ts(model.Wednesday, 12, 0)
	assert.True(t, x.IsFollowedBy(x))
}
