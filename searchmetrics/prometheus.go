package searchmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus is a Recorder backed by github.com/prometheus/client_golang.
// Register it with a prometheus.Registerer, then pass it to
// search.WithMetrics.
type Prometheus struct {
	graphStops   prometheus.Gauge
	graphEdges   prometheus.Gauge
	queriesTotal *prometheus.CounterVec
	queryLatency prometheus.Histogram
	frontierPeak prometheus.Gauge
}

// NewPrometheus builds and registers the recorder's metrics under the
// given namespace (e.g. "routesearch").
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	p := &Prometheus{
		graphStops: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_stops",
			Help:      "Number of stops in the currently loaded graph.",
		}),
		graphEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Number of scheduled-departure edges in the currently loaded graph.",
		}),
		queriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Number of FindRoute calls, labeled by whether a route was found.",
		}, []string{"found"}),
		queryLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Wall-clock time spent inside FindRoute.",
			Buckets:   prometheus.DefBuckets,
		}),
		frontierPeak: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "frontier_peak_size",
			Help:      "Largest observed size of the search frontier in the most recent query.",
		}),
	}

	reg.MustRegister(p.graphStops, p.graphEdges, p.queriesTotal, p.queryLatency, p.frontierPeak)

	return p
}

func (p *Prometheus) GraphBuilt(stops, edges int) {
	p.graphStops.Set(float64(stops))
	p.graphEdges.Set(float64(edges))
}

func (p *Prometheus) QueryStarted() {}

func (p *Prometheus) QueryCompleted(duration time.Duration, found bool) {
	p.queryLatency.Observe(duration.Seconds())
	label := "false"
	if found {
		label = "true"
	}
	p.queriesTotal.WithLabelValues(label).Inc()
}

func (p *Prometheus) FrontierSize(n int) {
	p.frontierPeak.Set(float64(n))
}
