package model

import "fmt"

// SegmentKind tags which variant a Segment holds.
type SegmentKind int

const (
	SegmentWalk SegmentKind = iota
	SegmentRide
)

// NamedPoint is an endpoint of a Walk segment: either a named stop, or a
// raw coordinate pair for the journey's origin/destination.
type NamedPoint struct {
	Loc  Point
	Name string // empty means "use Loc"
}

func (p NamedPoint) String() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("(%v; %v)", p.Loc.Lat, p.Loc.Lng)
}

// WalkSegment is a walking leg of an itinerary.
type WalkSegment struct {
	From     NamedPoint
	To       NamedPoint
	Start    DayTime
	Duration uint64
}

// RideSegment is a scheduled bus/trolley leg of an itinerary. FromStop
// and ToStop hold stop IDs until post-processing substitutes stop
// names.
type RideSegment struct {
	Bus      string
	Type     TransportKind
	FromStop string
	ToStop   string
	Start    DayTime
	Duration uint64
}

// Segment is one step of a Route: a tagged union of WalkSegment and
// RideSegment, distinguished by Kind.
type Segment struct {
	Kind SegmentKind
	Walk *WalkSegment
	Ride *RideSegment
}

// minutes rounds a duration in seconds to the nearest minute,
// half-minute rounding up.
func minutes(seconds uint64) uint64 {
	return (seconds + 30) / 60
}

func (s Segment) String() string {
	switch s.Kind {
	case SegmentWalk:
		w := s.Walk
		return fmt.Sprintf(
			"At %s - walk from %s to %s, walking time: %d minutes",
			w.Start, w.From, w.To, minutes(w.Duration),
		)
	case SegmentRide:
		r := s.Ride
		return fmt.Sprintf(
			"At %s - take %s %s from %s to %s, ride time: %d minutes",
			r.Start, r.Type, r.Bus, r.FromStop, r.ToStop, minutes(r.Duration),
		)
	default:
		return "?"
	}
}

// Route is a complete door-to-door itinerary.
type Route struct {
	Segments      []Segment
	DepartureTime DayTime
	ArrivalTime   DayTime
}
