// Package searchmetrics instruments graph construction and route
// search with counters/histograms/gauges, without coupling either to a
// specific metrics backend.
package searchmetrics

import "time"

// Recorder receives observations from the graph builder and the search
// engine. All methods must be safe for concurrent use, since a single
// Graph/Searcher may be shared by concurrent queries.
type Recorder interface {
	// GraphBuilt is called once after a Graph finishes construction.
	GraphBuilt(stops, edges int)

	// QueryStarted is called at the beginning of FindRoute.
	QueryStarted()

	// QueryCompleted is called when FindRoute returns, regardless of
	// outcome.
	QueryCompleted(duration time.Duration, found bool)

	// FrontierSize reports the priority queue's size at its peak
	// during a single query.
	FrontierSize(n int)
}

// Noop is a Recorder that discards every observation. It is the
// default used when no Recorder is supplied.
type Noop struct{}

func (Noop) GraphBuilt(stops, edges int)                  {}
func (Noop) QueryStarted()                                {}
func (Noop) QueryCompleted(duration time.Duration, ok bool) {}
func (Noop) FrontierSize(n int)                           {}
