package model

import "errors"

// ErrNoStopTime is returned by Timetable.FindStopTime when no duration
// window covers the requested departure. It signals corrupt input data,
// not a user-facing condition.
var ErrNoStopTime = errors.New("model: no stop-duration window covers this departure")

// Stop is a single boarding point, as decoded from the stops document.
type Stop struct {
	ID   string
	Name string
	Loc  Point
}

// Schedule is a single bus/trolley line, as decoded from the schedules
// document. One Schedule owns one or more Tracks (directions of travel).
type Schedule struct {
	ID            string
	Name          string
	LongName      string
	TransportType TransportKind
	Tracks        []Track
}

// Track is a direction of travel along a Schedule: an ordered list of
// stops, and the timetables that run along it.
type Track struct {
	Name       string
	Stops      []string
	Timetables []Timetable
}

// Timetable is the set of departures that run on a fixed set of days.
type Timetable struct {
	// Days is a 7-bit mask; use WorksOnDay rather than testing it
	// directly, since the bit layout is Sunday=0..Saturday=6.
	Days       uint8
	Departures []Departure
	// Durations holds one entry per stop index on the owning Track,
	// giving the cumulative ride time from the track's first stop.
	Durations []StopDurations
}

// WorksOnDay reports whether the timetable runs on the given day.
func (tt Timetable) WorksOnDay(day Day) bool {
	bit := uint8(1) << uint(day.Index())
	return tt.Days&bit != 0
}

// FindStopTime returns the DayTime at which a vehicle departing at dep
// (from the track's first stop) reaches the stop at the given index.
// Returns ErrNoStopTime if no window in Durations[index] covers dep.
func (tt Timetable) FindStopTime(index int, dep DayTime) (DayTime, error) {
	if index < 0 || index >= len(tt.Durations) {
		return DayTime{}, ErrNoStopTime
	}
	for _, entry := range tt.Durations[index].Entries {
		if entry.From.Raw <= dep.Raw && dep.Raw < entry.To.Raw {
			return dep.Offset(entry.Duration), nil
		}
	}
	return DayTime{}, ErrNoStopTime
}

// DepartureKind tags which variant a Departure holds.
type DepartureKind int

const (
	DepartureExact DepartureKind = iota
	DeparturePeriodic
)

// Departure is either an Exact time of day, or a Periodic window
// (explicitly ignored by the graph builder, which only logs it).
type Departure struct {
	Kind     DepartureKind
	Exact    DayTime
	Periodic PeriodicWindow
}

// PeriodicWindow is a frequency-based departure window. The graph
// builder does not expand these into concrete departures.
type PeriodicWindow struct {
	From DayTime
	To   DayTime
}

// StopDurations holds the time-of-day-segmented cumulative durations to
// one stop on a track.
type StopDurations struct {
	Entries []DurationEntry
}

// DurationEntry gives the ride duration from a track's first stop to a
// later stop, for departures in [From, To).
type DurationEntry struct {
	From     DayTime
	To       DayTime
	Duration uint64
}
