package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vilnius-transit/routesearch/searchmetrics"
)

var rootCmd = &cobra.Command{
	Use:          "routesearch",
	Short:        "Vilnius transit route search",
	Long:         "Computes door-to-door transit itineraries over a built stop/schedule graph",
	SilenceUsage: true,
}

var (
	stopsFile     string
	schedulesFile string
	configFile    string
	logLevel      string
	metricsAddr   string
	cacheFile     string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&stopsFile, "stops", "stops.json", "Path to the stops JSON document")
	rootCmd.PersistentFlags().StringVar(&schedulesFile, "schedules", "schedules.json", "Path to the schedules JSON document")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to an optional routesearch.yaml config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "If set, serve Prometheus metrics on this address (e.g. :9090)")
	rootCmd.PersistentFlags().StringVar(&cacheFile, "cache", "", "If set, cache decoded input documents in this SQLite file, keyed by content hash")

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(bulkImportCmd)
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// newMetricsRecorder starts a /metrics endpoint on metricsAddr, when set,
// and returns a Recorder wired to it. With no address it returns a Noop
// recorder so callers never need a nil check.
func newMetricsRecorder(log *logrus.Logger) searchmetrics.Recorder {
	if metricsAddr == "" {
		return searchmetrics.Noop{}
	}

	registry := prometheus.NewRegistry()
	recorder := searchmetrics.NewPrometheus(registry, "routesearch")

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	go func() {
		if err := http.ListenAndServe(metricsAddr, mux); err != nil {
			log.WithError(err).Error("metrics server stopped")
		}
	}()

	log.WithField("addr", metricsAddr).Info("serving prometheus metrics")
	return recorder
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
