// Package graph builds the in-memory transit graph consumed by the
// search engine: a dense arena of stops, each holding its outgoing
// scheduled-departure edges sorted by departure time.
package graph

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vilnius-transit/routesearch/model"
	"github.com/vilnius-transit/routesearch/searchmetrics"
)

// StopRoute is one concrete scheduled hop from its owning stop to
// NextStop, an index into the owning Graph's arena.
type StopRoute struct {
	Bus       string
	Type      model.TransportKind
	NextStop  int
	Departure model.Timestamp
	Arrival   model.Timestamp
	Duration  uint64
}

type stop struct {
	id     string
	name   string
	loc    model.Point
	routes []StopRoute
}

// Graph is the immutable, built transit graph. It is safe for
// concurrent reads once Build returns.
type Graph struct {
	stops []stop
	index map[string]int
}

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	logger  logrus.FieldLogger
	metrics searchmetrics.Recorder
}

// WithLogger attaches a logger that receives build-time diagnostics
// (node/edge counts, ignored periodic departures).
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *buildOptions) { o.logger = l }
}

// WithMetrics attaches a metrics recorder for graph-construction
// observations.
func WithMetrics(m searchmetrics.Recorder) Option {
	return func(o *buildOptions) { o.metrics = m }
}

// Build materializes a Graph from stop and schedule records. It fails
// fatally (and does not return a partial graph) on any data-integrity
// violation: an unknown stop reference, a missing duration window, or
// an arithmetic underflow while computing a ride duration.
func Build(stops []model.Stop, schedules []model.Schedule, opts ...Option) (*Graph, error) {
	o := buildOptions{logger: logrus.StandardLogger(), metrics: searchmetrics.Noop{}}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph{
		stops: make([]stop, len(stops)),
		index: make(map[string]int, len(stops)),
	}
	for i, s := range stops {
		g.stops[i] = stop{id: s.ID, name: s.Name, loc: s.Loc}
		g.index[s.ID] = i
	}

	for _, schedule := range schedules {
		for _, track := range schedule.Tracks {
			if err := g.addTrack(schedule, track, o.logger); err != nil {
				return nil, err
			}
		}
	}

	totalEdges := 0
	for i := range g.stops {
		sortRoutesByDeparture(g.stops[i].routes)
		totalEdges += len(g.stops[i].routes)
	}

	o.logger.WithFields(logrus.Fields{
		"stops": len(g.stops),
		"edges": totalEdges,
	}).Debug("built transit graph")
	o.metrics.GraphBuilt(len(g.stops), totalEdges)

	return g, nil
}

func (g *Graph) addTrack(schedule model.Schedule, track model.Track, logger logrus.FieldLogger) error {
	for i := 0; i+1 < len(track.Stops); i++ {
		aID, bID := track.Stops[i], track.Stops[i+1]

		aIdx, ok := g.index[aID]
		if !ok {
			return errors.Wrapf(ErrUnknownStop, "track %q references stop %q", track.Name, aID)
		}
		bIdx, ok := g.index[bID]
		if !ok {
			return errors.Wrapf(ErrUnknownStop, "track %q references stop %q", track.Name, bID)
		}

		for _, day := range model.AllDays {
			for _, tt := range track.Timetables {
				if !tt.WorksOnDay(day) {
					continue
				}
				for _, dep := range tt.Departures {
					if dep.Kind != model.DepartureExact {
						logger.WithFields(logrus.Fields{
							"schedule": schedule.Name,
							"track":    track.Name,
						}).Trace("ignoring periodic departure")
						continue
					}

					stopTimeA, err := tt.FindStopTime(i, dep.Exact)
					if err != nil {
						return errors.Wrapf(ErrNoStopTime, "schedule %q track %q stop %q", schedule.Name, track.Name, aID)
					}
					stopTimeB, err := tt.FindStopTime(i+1, dep.Exact)
					if err != nil {
						return errors.Wrapf(ErrNoStopTime, "schedule %q track %q stop %q", schedule.Name, track.Name, bID)
					}
					if stopTimeB.Raw < stopTimeA.Raw {
						return errors.Wrapf(ErrNegativeRide, "schedule %q track %q stop %q->%q", schedule.Name, track.Name, aID, bID)
					}

					g.stops[aIdx].routes = append(g.stops[aIdx].routes, StopRoute{
						Bus:       schedule.Name,
						Type:      schedule.TransportType,
						NextStop:  bIdx,
						Departure: model.NewTimestamp(day, stopTimeA),
						Arrival:   model.NewTimestamp(day, stopTimeB),
						Duration:  stopTimeB.Raw - stopTimeA.Raw,
					})
				}
			}
		}
	}
	return nil
}

func sortRoutesByDeparture(routes []StopRoute) {
	sort.Slice(routes, func(i, j int) bool {
		return timestampLess(routes[i].Departure, routes[j].Departure)
	})
}

func timestampLess(a, b model.Timestamp) bool {
	if a.Day != b.Day {
		return a.Day < b.Day
	}
	return a.Time.Raw < b.Time.Raw
}

// NStops returns the number of stops in the arena.
func (g *Graph) NStops() int { return len(g.stops) }

// Index returns the arena index for a stop ID.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// StopID returns the stop ID at the given arena index.
func (g *Graph) StopID(i int) string { return g.stops[i].id }

// StopName returns the stop name at the given arena index.
func (g *Graph) StopName(i int) string { return g.stops[i].name }

// StopLoc returns the stop location at the given arena index.
func (g *Graph) StopLoc(i int) model.Point { return g.stops[i].loc }

// Routes returns the outgoing, departure-sorted edges of the stop at
// the given arena index. The returned slice must not be mutated.
func (g *Graph) Routes(i int) []StopRoute { return g.stops[i].routes }

// NameByID translates a stop ID to its human-readable name.
func (g *Graph) NameByID(id string) (string, bool) {
	i, ok := g.index[id]
	if !ok {
		return "", false
	}
	return g.stops[i].name, true
}
