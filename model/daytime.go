package model

import "fmt"

// DayTime is a time of day stored as seconds since 00:00. The raw count
// is allowed to exceed 86400 (one day) — callers that walk or ride past
// midnight carry the overflow rather than wrapping it, and only the
// display form collapses it back down.
type DayTime struct {
	Raw uint64
}

// NewDayTime builds a DayTime from an hour and a minute. Panics if either
// is out of range; it exists for constructing literal timestamps (tests,
// demo data), not for parsing arbitrary input.
func NewDayTime(hours, minutes uint64) DayTime {
	if hours >= 24 {
		panic("hours should be in range [0; 23]")
	}
	if minutes >= 60 {
		panic("minutes should be in range [0; 59]")
	}
	return DayTime{Raw: hours*3600 + minutes*60}
}

// Offset returns the time advanced by the given number of seconds. The
// result may exceed 86400 seconds.
func (d DayTime) Offset(seconds uint64) DayTime {
	return DayTime{Raw: d.Raw + seconds}
}

// NegOffset returns the time moved back by the given number of seconds.
func (d DayTime) NegOffset(seconds uint64) DayTime {
	return DayTime{Raw: d.Raw - seconds}
}

// String formats the time as HH:MM. A raw value that lands exactly on a
// day boundary (including zero) is displayed as 24:00 rather than 00:00 —
// this reproduces how the source data distinguishes "still within
// yesterday's overflow" from "a fresh midnight".
func (d DayTime) String() string {
	minutes := d.Raw / 60 % 60
	hours := d.Raw / 3600 % 24
	if hours == 0 && minutes == 0 {
		hours = 24
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
