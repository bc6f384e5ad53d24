package input_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vilnius-transit/routesearch/input"
	"github.com/vilnius-transit/routesearch/model"
)

func TestCSVStopSourceParsesStops(t *testing.T) {
	content := `
stop_id,stop_name,stop_lat,stop_lon
s1,Gedimino pr.,54.6872,25.2797
s2,Lukiskiu a.,54.6889,25.2766`

	src, err := input.NewCSVStopSource(bytes.NewBufferString(content))
	require.NoError(t, err)

	stops, err := src.Stops()
	require.NoError(t, err)
	assert.Equal(t, []model.Stop{
		{ID: "s1", Name: "Gedimino pr.", Loc: model.Point{Lat: 54.6872, Lng: 25.2797}},
		{ID: "s2", Name: "Lukiskiu a.", Loc: model.Point{Lat: 54.6889, Lng: 25.2766}},
	}, stops)

	schedules, err := src.Schedules()
	require.NoError(t, err)
	assert.Empty(t, schedules)
}

func TestCSVStopSourceRejectsRepeatedID(t *testing.T) {
	content := `
stop_id,stop_name,stop_lat,stop_lon
s1,Name One,1.1,2.2
s1,Name Two,3.3,4.4`

	_, err := input.NewCSVStopSource(bytes.NewBufferString(content))
	assert.Error(t, err)
}

func TestCSVStopSourceRejectsBlankID(t *testing.T) {
	content := `
stop_id,stop_name,stop_lat,stop_lon
,Name,1.1,2.2`

	_, err := input.NewCSVStopSource(bytes.NewBufferString(content))
	assert.Error(t, err)
}

func TestCSVStopSourceAcceptsZeroValuedCoordinate(t *testing.T) {
	content := `
stop_id,stop_name,stop_lat,stop_lon
s1,Null Island,0,0`

	src, err := input.NewCSVStopSource(bytes.NewBufferString(content))
	require.NoError(t, err)

	stops, err := src.Stops()
	require.NoError(t, err)
	assert.Equal(t, []model.Stop{
		{ID: "s1", Name: "Null Island", Loc: model.Point{Lat: 0, Lng: 0}},
	}, stops)
}
