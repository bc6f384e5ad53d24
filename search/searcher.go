// Package search implements the best-first route search over a built
// transit graph.Graph, plus the route reconstruction and
// post-processing pipeline that turns search state into a Route.
package search

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vilnius-transit/routesearch/graph"
	"github.com/vilnius-transit/routesearch/routeconfig"
	"github.com/vilnius-transit/routesearch/searchmetrics"
)

// Searcher answers route queries against one immutable Graph. A
// Searcher may be shared across goroutines: each call to FindRoute
// owns its own search state.
type Searcher struct {
	graph   *graph.Graph
	params  *routeconfig.Parameters
	logger  logrus.FieldLogger
	metrics searchmetrics.Recorder
}

// NewSearcher builds a Searcher over g. Defaults to
// routeconfig.Defaults(), a standard logrus logger, and a no-op
// metrics recorder unless overridden with Option.
func NewSearcher(g *graph.Graph, opts ...Option) *Searcher {
	s := &Searcher{
		graph:   g,
		params:  routeconfig.Defaults(),
		logger:  logrus.StandardLogger(),
		metrics: searchmetrics.Noop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newQueryID() string {
	return uuid.NewString()
}
