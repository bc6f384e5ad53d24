package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vilnius-transit/routesearch/model"
)

func TestDayTimeFormatting(t *testing.T) {
	assert.Equal(t, "24:00", model.NewDayTime(0, 0).String())
	assert.Equal(t, "16:30", model.NewDayTime(16, 30).String())
	assert.Equal(t, "16:45", model.NewDayTime(16, 30).Offset(900).String())
}

func TestDayTimeOffsetCarriesPastMidnight(t *testing.T) {
	dt := model.NewDayTime(23, 30).Offset(3600)
	assert.Equal(t, uint64(23*3600+30*60+3600), dt.Raw)
	assert.Equal(t, "00:30", dt.String())
}

func TestDayTimeNegOffset(t *testing.T) {
	dt := model.NewDayTime(10, 0).NegOffset(600)
	assert.Equal(t, "09:50", dt.String())
}

func TestNewDayTimePanicsOnOutOfRangeInput(t *testing.T) {
	assert.Panics(t, func() { model.NewDayTime(24, 0) })
	assert.Panics(t, func() { model.NewDayTime(0, 60) })
}
