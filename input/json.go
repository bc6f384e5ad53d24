package input

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vilnius-transit/routesearch/model"
)

// JSONSource decodes the two JSON input documents (stops and
// schedules) described by the external interface into model records.
type JSONSource struct {
	stops     []model.Stop
	schedules []model.Schedule
}

type stopsDocument struct {
	Stops []jsonStop
}

type jsonStop struct {
	Id   string
	Name string
	Lat  float64
	Lng  float64
}

type schedulesDocument struct {
	Schedules []jsonSchedule
}

type jsonSchedule struct {
	Id          string
	Name        string
	LongName    string
	TransportId string
	Tracks      []jsonTrack
}

type jsonTrack struct {
	Name       string
	Stops      []jsonTrackStop
	Timetables []jsonTimetable
}

type jsonTrackStop struct {
	StopId string
}

type jsonTimetable struct {
	Days          uint8
	Departures    []jsonDeparture
	StopDurations []jsonStopDurations
}

type jsonStopDurations struct {
	Durations []jsonDurationEntry
}

type jsonDurationEntry struct {
	FromTime uint64
	ToTime   uint64
	Duration uint64
}

// jsonDeparture decodes either a bare integer (an Exact departure, in
// seconds) or an object {FromTime, ToTime} (a Periodic window).
type jsonDeparture struct {
	model.Departure
}

func (d *jsonDeparture) UnmarshalJSON(data []byte) error {
	var seconds uint64
	if err := json.Unmarshal(data, &seconds); err == nil {
		d.Departure = model.Departure{
			Kind:  model.DepartureExact,
			Exact: model.DayTime{Raw: seconds},
		}
		return nil
	}

	var window struct {
		FromTime uint64
		ToTime   uint64
	}
	if err := json.Unmarshal(data, &window); err != nil {
		return fmt.Errorf("decoding departure: neither an exact time nor a {FromTime, ToTime} window: %w", err)
	}
	d.Departure = model.Departure{
		Kind: model.DeparturePeriodic,
		Periodic: model.PeriodicWindow{
			From: model.DayTime{Raw: window.FromTime},
			To:   model.DayTime{Raw: window.ToTime},
		},
	}
	return nil
}

// NewJSONSource decodes the stops document and the schedules document
// (each a separate JSON reader, per the external interface) into
// model records.
func NewJSONSource(stopsDoc, schedulesDoc io.Reader) (*JSONSource, error) {
	var sd stopsDocument
	if err := json.NewDecoder(stopsDoc).Decode(&sd); err != nil {
		return nil, fmt.Errorf("decoding stops document: %w", err)
	}

	stops := make([]model.Stop, 0, len(sd.Stops))
	for _, s := range sd.Stops {
		stops = append(stops, model.Stop{
			ID:   s.Id,
			Name: s.Name,
			Loc:  model.Point{Lat: s.Lat, Lng: s.Lng},
		})
	}

	var cd schedulesDocument
	if err := json.NewDecoder(schedulesDoc).Decode(&cd); err != nil {
		return nil, fmt.Errorf("decoding schedules document: %w", err)
	}

	schedules := make([]model.Schedule, 0, len(cd.Schedules))
	for _, s := range cd.Schedules {
		transportType, ok := model.ParseTransportKind(s.TransportId)
		if !ok {
			return nil, fmt.Errorf("schedule %q: unrecognized TransportId %q", s.Id, s.TransportId)
		}

		tracks := make([]model.Track, 0, len(s.Tracks))
		for _, tr := range s.Tracks {
			stopIDs := make([]string, 0, len(tr.Stops))
			for _, st := range tr.Stops {
				stopIDs = append(stopIDs, st.StopId)
			}

			timetables := make([]model.Timetable, 0, len(tr.Timetables))
			for _, tt := range tr.Timetables {
				departures := make([]model.Departure, 0, len(tt.Departures))
				for _, dep := range tt.Departures {
					departures = append(departures, dep.Departure)
				}

				durations := make([]model.StopDurations, 0, len(tt.StopDurations))
				for _, sd := range tt.StopDurations {
					entries := make([]model.DurationEntry, 0, len(sd.Durations))
					for _, e := range sd.Durations {
						entries = append(entries, model.DurationEntry{
							From:     model.DayTime{Raw: e.FromTime},
							To:       model.DayTime{Raw: e.ToTime},
							Duration: e.Duration,
						})
					}
					durations = append(durations, model.StopDurations{Entries: entries})
				}

				timetables = append(timetables, model.Timetable{
					Days:       tt.Days,
					Departures: departures,
					Durations:  durations,
				})
			}

			tracks = append(tracks, model.Track{
				Name:       tr.Name,
				Stops:      stopIDs,
				Timetables: timetables,
			})
		}

		schedules = append(schedules, model.Schedule{
			ID:            s.Id,
			Name:          s.Name,
			LongName:      s.LongName,
			TransportType: transportType,
			Tracks:        tracks,
		})
	}

	return &JSONSource{stops: stops, schedules: schedules}, nil
}

func (s *JSONSource) Stops() ([]model.Stop, error) {
	return s.stops, nil
}

func (s *JSONSource) Schedules() ([]model.Schedule, error) {
	return s.schedules, nil
}

// EncodeStopsDocument writes stops to w in the wire shape NewJSONSource
// expects, for tools (e.g. the bulk CSV importer) that need to produce
// a stops document rather than consume one.
func EncodeStopsDocument(stops []model.Stop, w io.Writer) error {
	doc := stopsDocument{Stops: make([]jsonStop, 0, len(stops))}
	for _, s := range stops {
		doc.Stops = append(doc.Stops, jsonStop{
			Id:   s.ID,
			Name: s.Name,
			Lat:  s.Loc.Lat,
			Lng:  s.Loc.Lng,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding stops document: %w", err)
	}
	return nil
}
