package graph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vilnius-transit/routesearch/graph"
	"github.com/vilnius-transit/routesearch/model"
)

func dt(h, m uint64) model.DayTime { return model.NewDayTime(h, m) }

func mondayBit() uint8 { return uint8(1) << uint(model.Monday.Index()) }

func threeStopSchedule() ([]model.Stop, []model.Schedule) {
	stops := []model.Stop{
		{ID: "a", Name: "Stop A", Loc: model.Point{Lat: 1, Lng: 1}},
		{ID: "b", Name: "Stop B", Loc: model.Point{Lat: 2, Lng: 2}},
		{ID: "c", Name: "Stop C", Loc: model.Point{Lat: 3, Lng: 3}},
	}

	schedules := []model.Schedule{
		{
			ID:            "7",
			Name:          "7",
			TransportType: model.Bus,
			Tracks: []model.Track{
				{
					Name:  "7 outbound",
					Stops: []string{"a", "b", "c"},
					Timetables: []model.Timetable{
						{
							Days: mondayBit(),
							Departures: []model.Departure{
								{Kind: model.DepartureExact, Exact: dt(8, 0)},
								{Kind: model.DeparturePeriodic, Periodic: model.PeriodicWindow{From: dt(9, 0), To: dt(17, 0)}},
							},
							Durations: []model.StopDurations{
								{Entries: []model.DurationEntry{{From: dt(0, 0), To: dt(23, 59), Duration: 0}}},
								{Entries: []model.DurationEntry{{From: dt(0, 0), To: dt(23, 59), Duration: 300}}},
								{Entries: []model.DurationEntry{{From: dt(0, 0), To: dt(23, 59), Duration: 700}}},
							},
						},
					},
				},
			},
		},
	}

	return stops, schedules
}

func TestBuildProducesSortedEdgesWithConsistentDurations(t *testing.T) {
	stops, schedules := threeStopSchedule()

	g, err := graph.Build(stops, schedules)
	require.NoError(t, err)

	aIdx, ok := g.Index("a")
	require.True(t, ok)

	routes := g.Routes(aIdx)
	require.Len(t, routes, 1, "the periodic departure must be ignored")

	r := routes[0]
	assert.Equal(t, model.NewTimestamp(model.Monday, dt(8, 0)), r.Departure)
	assert.Equal(t, model.NewTimestamp(model.Monday, dt(8, 5)), r.Arrival)
	assert.Equal(t, uint64(300), r.Duration)
	assert.True(t, sort.SliceIsSorted(routes, func(i, j int) bool {
		return routes[i].Departure.Time.Raw < routes[j].Departure.Time.Raw
	}))
}

func TestBuildRejectsUnknownStop(t *testing.T) {
	stops, schedules := threeStopSchedule()
	schedules[0].Tracks[0].Stops = []string{"a", "nonexistent", "c"}

	_, err := graph.Build(stops, schedules)
	require.Error(t, err)
	assert.ErrorIs(t, err, graph.ErrUnknownStop)
}

func TestBuildRejectsMissingDurationWindow(t *testing.T) {
	stops, schedules := threeStopSchedule()
	// Narrow stop b's window so that the 08:00 departure falls outside it.
	schedules[0].Tracks[0].Timetables[0].Durations[1] = model.StopDurations{
		Entries: []model.DurationEntry{{From: dt(12, 0), To: dt(13, 0), Duration: 60}},
	}

	_, err := graph.Build(stops, schedules)
	require.Error(t, err)
	assert.ErrorIs(t, err, graph.ErrNoStopTime)
}

func TestBuildRejectsNegativeRideDuration(t *testing.T) {
	stops, schedules := threeStopSchedule()
	// Stop b now appears to be reached before stop a: duration underflow.
	schedules[0].Tracks[0].Timetables[0].Durations[1] = model.StopDurations{
		Entries: []model.DurationEntry{{From: dt(0, 0), To: dt(23, 59), Duration: 0}},
	}
	schedules[0].Tracks[0].Timetables[0].Durations[0] = model.StopDurations{
		Entries: []model.DurationEntry{{From: dt(0, 0), To: dt(23, 59), Duration: 10}},
	}

	_, err := graph.Build(stops, schedules)
	require.Error(t, err)
	assert.ErrorIs(t, err, graph.ErrNegativeRide)
}

func TestTimetableIgnoresDaysItDoesNotRunOn(t *testing.T) {
	stops, schedules := threeStopSchedule()

	g, err := graph.Build(stops, schedules)
	require.NoError(t, err)

	aIdx, _ := g.Index("a")
	for _, r := range g.Routes(aIdx) {
		assert.Equal(t, model.Monday, r.Departure.Day)
	}
}
