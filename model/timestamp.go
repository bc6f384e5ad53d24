package model

import "fmt"

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	Less Ordering = iota
	Equal
	Greater
)

// Timestamp is a point in the weekly schedule: a day plus a time of day.
// Its natural ordering (used internally by CompareUsingDeparture) is
// lexicographic on (Day, Time), with Day ordered Monday..Sunday.
type Timestamp struct {
	Day  Day
	Time DayTime
}

// NewTimestamp builds a Timestamp from a day and a time of day.
func NewTimestamp(day Day, time DayTime) Timestamp {
	return Timestamp{Day: day, Time: time}
}

// Offset advances the time of day, keeping the day unchanged even if the
// raw seconds carry past midnight.
func (t Timestamp) Offset(seconds uint64) Timestamp {
	return Timestamp{Day: t.Day, Time: t.Time.Offset(seconds)}
}

// NegOffset moves the time of day back, keeping the day unchanged.
func (t Timestamp) NegOffset(seconds uint64) Timestamp {
	return Timestamp{Day: t.Day, Time: t.Time.NegOffset(seconds)}
}

// naturalLess is the plain (non-cyclic) lexicographic ordering on
// (Day, Time), used only as a building block for CompareUsingDeparture.
func naturalLess(a, b Timestamp) bool {
	if a.Day != b.Day {
		return a.Day < b.Day
	}
	return a.Time.Raw < b.Time.Raw
}

// CompareUsingDeparture orders t against other as if the week were
// unrolled into a line starting at departure: points at or after
// departure come before points that had to wrap around to be reached.
// Equal timestamps compare Equal regardless of departure.
func (t Timestamp) CompareUsingDeparture(other, departure Timestamp) Ordering {
	switch {
	case t == other:
		return Equal
	case t == departure:
		return Less
	case other == departure:
		return Greater
	case naturalLess(t, other) && naturalLess(other, departure):
		return Less
	case naturalLess(other, departure) && naturalLess(departure, t):
		return Less
	case naturalLess(departure, t) && naturalLess(t, other):
		return Less
	default:
		return Greater
	}
}

// IsFollowedBy reports whether other is reachable from t within roughly
// two calendar days on the weekly cycle. It is used to keep the search
// from ever wrapping all the way around the week.
func (t Timestamp) IsFollowedBy(other Timestamp) bool {
	horizonDay := Day((int(t.Day) + 2) % 7)
	horizon := NewTimestamp(horizonDay, NewDayTime(0, 0))
	return t.CompareUsingDeparture(other, horizon) != Greater
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%s %s", t.Day, t.Time)
}
