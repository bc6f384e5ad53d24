package search

import (
	"github.com/sirupsen/logrus"

	"github.com/vilnius-transit/routesearch/model"
	"github.com/vilnius-transit/routesearch/routeconfig"
	"github.com/vilnius-transit/routesearch/searchmetrics"
)

// Option configures a Searcher at construction time.
type Option func(*Searcher)

// WithParameters overrides the engine's tunable parameters (walking
// distance/speed, transfer delay/penalty). Defaults to
// routeconfig.Defaults().
func WithParameters(p *routeconfig.Parameters) Option {
	return func(s *Searcher) { s.params = p }
}

// WithLogger attaches a logger that receives per-query diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Searcher) { s.logger = l }
}

// WithMetrics attaches a metrics recorder for query observations.
func WithMetrics(m searchmetrics.Recorder) Option {
	return func(s *Searcher) { s.metrics = m }
}

// FindOption configures a single FindRoute call.
type FindOption func(*findOptions)

type findOptions struct {
	rawOut *[]model.Segment
}

// WithRawSegments makes FindRoute also write the pre-coalescing
// segment trace into dst, for callers that need the raw per-edge path
// (coalescing merges segments, so the returned Route loses it). The raw
// trace keeps stop IDs in ride segments; only the Route gets names.
func WithRawSegments(dst *[]model.Segment) FindOption {
	return func(o *findOptions) { o.rawOut = dst }
}
