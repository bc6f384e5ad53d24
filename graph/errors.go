package graph

import "errors"

// These are the three fatal, data-integrity error classes that can
// occur while building a Graph. They all indicate corrupt input and
// are not meant to be retried.
var (
	ErrUnknownStop  = errors.New("graph: track references a stop that does not exist")
	ErrNoStopTime   = errors.New("graph: no stop-duration window covers a scheduled departure")
	ErrNegativeRide = errors.New("graph: computed ride duration is negative")
)
