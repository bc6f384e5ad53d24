package input

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/spkg/bom"

	"github.com/vilnius-transit/routesearch/model"
)

// stopRecord is the on-disk shape of one row of a bulk stop import
// file (e.g. exported from a GTFS stops.txt).
type stopRecord struct {
	ID   string  `csv:"stop_id"`
	Name string  `csv:"stop_name"`
	Lat  float64 `csv:"stop_lat"`
	Lon  float64 `csv:"stop_lon"`
}

// CSVStopSource decodes stops from a CSV document. It has no
// schedules of its own; Schedules always returns nil.
type CSVStopSource struct {
	stops []model.Stop
}

// NewCSVStopSource reads and validates every row of data as a stop
// record. The BOM reader strips a leading unicode BOM if present, and
// the lazy CSV reader tolerates the sloppy quoting real-world exports
// tend to have.
func NewCSVStopSource(data io.Reader) (*CSVStopSource, error) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		return gocsv.LazyCSVReader(bom.NewReader(in))
	})

	var records []*stopRecord
	if err := gocsv.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshaling stops csv: %w", err)
	}

	seen := map[string]bool{}
	stops := make([]model.Stop, 0, len(records))
	for _, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("empty stop_id")
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("repeated stop_id %q", r.ID)
		}
		seen[r.ID] = true

		if r.Name == "" {
			return nil, fmt.Errorf("empty stop_name for stop_id %q", r.ID)
		}

		stops = append(stops, model.Stop{
			ID:   r.ID,
			Name: r.Name,
			Loc:  model.Point{Lat: r.Lat, Lng: r.Lon},
		})
	}

	return &CSVStopSource{stops: stops}, nil
}

func (s *CSVStopSource) Stops() ([]model.Stop, error) {
	return s.stops, nil
}

func (s *CSVStopSource) Schedules() ([]model.Schedule, error) {
	return nil, nil
}
