package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vilnius-transit/routesearch/graph"
	"github.com/vilnius-transit/routesearch/input"
	"github.com/vilnius-transit/routesearch/model"
	"github.com/vilnius-transit/routesearch/routeconfig"
	"github.com/vilnius-transit/routesearch/search"
	"github.com/vilnius-transit/routesearch/store"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Finds a route between two points and prints it",
	RunE:  runFind,
}

var (
	originLat float64
	originLng float64
	destLat   float64
	destLng   float64
	depDay    string
	depTime   string
)

func init() {
	// Defaults reproduce the reference scenario: the old Trafi office
	// to a bus station across town, departing Tuesday afternoon.
	findCmd.Flags().Float64Var(&originLat, "origin-lat", 54.684885, "Origin latitude")
	findCmd.Flags().Float64Var(&originLng, "origin-lng", 25.281161, "Origin longitude")
	findCmd.Flags().Float64Var(&destLat, "dest-lat", 54.670592, "Destination latitude")
	findCmd.Flags().Float64Var(&destLng, "dest-lng", 25.282193, "Destination longitude")
	findCmd.Flags().StringVar(&depDay, "day", "Tuesday", "Departure day of week")
	findCmd.Flags().StringVar(&depTime, "time", "16:30", "Departure time of day (HH:MM)")
}

func parseDay(s string) (model.Day, error) {
	abbrev := s
	if len(abbrev) > 3 {
		abbrev = abbrev[:3]
	}
	for _, d := range model.AllDays {
		if strings.EqualFold(d.String(), abbrev) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unrecognized day %q", s)
}

func parseDayTime(s string) (model.DayTime, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return model.DayTime{}, fmt.Errorf("expected HH:MM, got %q", s)
	}
	hours, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return model.DayTime{}, fmt.Errorf("invalid hours in %q: %w", s, err)
	}
	minutes, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return model.DayTime{}, fmt.Errorf("invalid minutes in %q: %w", s, err)
	}
	return model.NewDayTime(hours, minutes), nil
}

// loadInput reads the stops/schedules JSON documents and decodes them,
// consulting the content-addressed cache at --cache first when one is
// configured so repeated runs against unchanged documents skip
// re-decoding and re-validation.
func loadInput(log logrus.FieldLogger) ([]model.Stop, []model.Schedule, error) {
	stopsBytes, err := os.ReadFile(stopsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", stopsFile, err)
	}
	schedulesBytes, err := os.ReadFile(schedulesFile)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", schedulesFile, err)
	}

	if cacheFile == "" {
		return decodeInput(stopsBytes, schedulesBytes)
	}

	cache, err := store.NewSQLiteStore(cacheFile)
	if err != nil {
		return nil, nil, fmt.Errorf("opening cache %s: %w", cacheFile, err)
	}
	defer cache.Close()

	hash := store.ContentHash(stopsBytes, schedulesBytes)

	if entry, ok, err := cache.Get(hash); err != nil {
		return nil, nil, fmt.Errorf("reading cache: %w", err)
	} else if ok {
		log.WithField("hash", hash).Debug("loaded input documents from cache")
		return entry.Stops, entry.Schedules, nil
	}

	stops, schedules, err := decodeInput(stopsBytes, schedulesBytes)
	if err != nil {
		return nil, nil, err
	}

	if err := cache.Put(hash, &store.Entry{Stops: stops, Schedules: schedules}); err != nil {
		return nil, nil, fmt.Errorf("writing cache: %w", err)
	}
	log.WithField("hash", hash).Debug("cached decoded input documents")

	return stops, schedules, nil
}

func decodeInput(stopsBytes, schedulesBytes []byte) ([]model.Stop, []model.Schedule, error) {
	src, err := input.NewJSONSource(bytes.NewReader(stopsBytes), bytes.NewReader(schedulesBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("decoding input documents: %w", err)
	}

	stops, err := src.Stops()
	if err != nil {
		return nil, nil, err
	}
	schedules, err := src.Schedules()
	if err != nil {
		return nil, nil, err
	}
	return stops, schedules, nil
}

func runFind(cmd *cobra.Command, args []string) error {
	log := newLogger()

	stops, schedules, err := loadInput(log)
	if err != nil {
		return err
	}

	recorder := newMetricsRecorder(log)

	g, err := graph.Build(stops, schedules, graph.WithLogger(log), graph.WithMetrics(recorder))
	if err != nil {
		return fmt.Errorf("building graph: %w", err)
	}

	params := routeconfig.Defaults()
	if configFile != "" {
		params, err = routeconfig.Load(configFile)
		if err != nil {
			return err
		}
	}

	day, err := parseDay(depDay)
	if err != nil {
		return err
	}
	dayTime, err := parseDayTime(depTime)
	if err != nil {
		return err
	}
	departure := model.NewTimestamp(day, dayTime)

	searcher := search.NewSearcher(g, search.WithParameters(params), search.WithLogger(log), search.WithMetrics(recorder))

	route, err := searcher.FindRoute(
		context.Background(),
		model.Point{Lat: originLat, Lng: originLng},
		model.Point{Lat: destLat, Lng: destLng},
		departure,
	)
	if err != nil {
		return fmt.Errorf("searching for route: %w", err)
	}

	if route == nil {
		fmt.Println("No route found")
		return nil
	}

	fmt.Println("Got route")
	walkColor := color.New(color.FgCyan)
	rideColor := color.New(color.FgGreen)
	for _, seg := range route.Segments {
		if seg.Kind == model.SegmentWalk {
			walkColor.Println(seg.String())
		} else {
			rideColor.Println(seg.String())
		}
	}

	return nil
}
