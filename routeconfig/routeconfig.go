// Package routeconfig holds the tunable parameters of the search
// engine (walking distance/speed, transfer delay and penalty), with
// defaults matching the spec and optional overrides loaded via viper.
package routeconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// Parameters are the knobs the search engine reads on every query.
type Parameters struct {
	// MaxWalkDistanceMeters bounds both the initial/final walk and
	// any walking transfer between stops.
	MaxWalkDistanceMeters float64

	// TransferPenaltySeconds is added, per transfer, to the arrival
	// time when ranking candidate itineraries.
	TransferPenaltySeconds uint64

	// TransferDelaySeconds is the boarding buffer imposed before a
	// passenger can catch a departure after walking or switching
	// buses.
	TransferDelaySeconds uint64

	// WalkingSpeedKmh is the assumed pedestrian speed.
	WalkingSpeedKmh float64
}

// Defaults returns the parameters used by the reference implementation.
func Defaults() *Parameters {
	return &Parameters{
		MaxWalkDistanceMeters:  500,
		TransferPenaltySeconds: 120,
		TransferDelaySeconds:   180,
		WalkingSpeedKmh:        4,
	}
}

// Load reads parameters from (in increasing priority) the defaults, an
// optional routesearch.yaml config file at path, and ROUTESEARCH_*
// environment variables. Pass an empty path to skip the config file.
func Load(path string) (*Parameters, error) {
	v := viper.New()
	v.SetEnvPrefix("ROUTESEARCH")
	v.AutomaticEnv()

	defaults := Defaults()
	v.SetDefault("max_walk_distance_meters", defaults.MaxWalkDistanceMeters)
	v.SetDefault("transfer_penalty_seconds", defaults.TransferPenaltySeconds)
	v.SetDefault("transfer_delay_seconds", defaults.TransferDelaySeconds)
	v.SetDefault("walking_speed_kmh", defaults.WalkingSpeedKmh)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	return &Parameters{
		MaxWalkDistanceMeters:  v.GetFloat64("max_walk_distance_meters"),
		TransferPenaltySeconds: v.GetUint64("transfer_penalty_seconds"),
		TransferDelaySeconds:   v.GetUint64("transfer_delay_seconds"),
		WalkingSpeedKmh:        v.GetFloat64("walking_speed_kmh"),
	}, nil
}
