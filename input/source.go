// Package input decodes the external stop and schedule documents into
// the records graph.Build consumes. Decoding itself is a collaborator
// the search engine does not depend on; this package is the one
// concrete implementation of that contract.
package input

import "github.com/vilnius-transit/routesearch/model"

// Source produces the stop and schedule records for one graph build.
type Source interface {
	Stops() ([]model.Stop, error)
	Schedules() ([]model.Schedule, error)
}
