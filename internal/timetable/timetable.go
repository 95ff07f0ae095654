// Package timetable holds the static weekly schedule of a single route and
// the pure functions that turn it into departure instants.
//
// Every value in this package is immutable once constructed. Structural
// problems in the schedule are reported when a DayTimetable is built, never
// while it is being queried.
package timetable

import (
	"errors"
	"fmt"
)

const (
	hoursPerDay    = 24
	minutesPerHour = 60
)

// ErrInvalidTimetable is wrapped by every ConfigError.
var ErrInvalidTimetable = errors.New("invalid timetable")

// ConfigError describes a malformed schedule entry found at construction time.
type ConfigError struct {
	// Index of the offending entry within its day, -1 when not entry specific.
	Index  int
	Hour   int
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid timetable: %s", e.Reason)
	}
	return fmt.Sprintf("invalid timetable: entry %d (hour %d): %s", e.Index, e.Hour, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidTimetable
}

// ScheduleEntry lists the departure minutes within one hour of the day.
type ScheduleEntry struct {
	Hour    int   `yaml:"hour"`
	Minutes []int `yaml:"minutes"`
}

// DayTimetable is the validated, ordered list of entries for one day type.
// The zero value is an empty day with no departures.
type DayTimetable struct {
	entries []ScheduleEntry
}

// NewDayTimetable validates entries and returns a DayTimetable that owns a
// private copy of them. Hours must be strictly increasing across entries and
// minutes strictly increasing within an entry.
func NewDayTimetable(entries []ScheduleEntry) (DayTimetable, error) {
	owned := make([]ScheduleEntry, 0, len(entries))
	prevHour := -1

	for i, entry := range entries {
		if entry.Hour < 0 || entry.Hour >= hoursPerDay {
			return DayTimetable{}, &ConfigError{Index: i, Hour: entry.Hour, Reason: "hour out of range 0-23"}
		}
		if entry.Hour <= prevHour {
			return DayTimetable{}, &ConfigError{Index: i, Hour: entry.Hour,
				Reason: fmt.Sprintf("hour does not increase after %d", prevHour)}
		}
		if len(entry.Minutes) == 0 {
			return DayTimetable{}, &ConfigError{Index: i, Hour: entry.Hour, Reason: "no minutes listed"}
		}

		prevMinute := -1
		for _, minute := range entry.Minutes {
			if minute < 0 || minute >= minutesPerHour {
				return DayTimetable{}, &ConfigError{Index: i, Hour: entry.Hour,
					Reason: fmt.Sprintf("minute %d out of range 0-59", minute)}
			}
			if minute <= prevMinute {
				return DayTimetable{}, &ConfigError{Index: i, Hour: entry.Hour,
					Reason: fmt.Sprintf("minute %d does not increase after %d", minute, prevMinute)}
			}
			prevMinute = minute
		}

		owned = append(owned, ScheduleEntry{
			Hour:    entry.Hour,
			Minutes: append([]int(nil), entry.Minutes...),
		})
		prevHour = entry.Hour
	}

	return DayTimetable{entries: owned}, nil
}

// MustDayTimetable is like NewDayTimetable but panics on invalid input.
// It is intended for literal schedules in tests and package initialisation.
func MustDayTimetable(entries []ScheduleEntry) DayTimetable {
	day, err := NewDayTimetable(entries)
	if err != nil {
		panic(err)
	}
	return day
}

// Entries returns a copy of the day's entries.
func (d DayTimetable) Entries() []ScheduleEntry {
	out := make([]ScheduleEntry, len(d.entries))
	for i, entry := range d.entries {
		out[i] = ScheduleEntry{Hour: entry.Hour, Minutes: append([]int(nil), entry.Minutes...)}
	}
	return out
}

// Len reports the number of departures in the day.
func (d DayTimetable) Len() int {
	n := 0
	for _, entry := range d.entries {
		n += len(entry.Minutes)
	}
	return n
}

// Timetable pairs the weekday and weekend schedules of a route.
type Timetable struct {
	Weekday DayTimetable
	Weekend DayTimetable
}

// For selects the schedule that applies to dayType.
func (t Timetable) For(dayType DayType) DayTimetable {
	if dayType == Weekend {
		return t.Weekend
	}
	return t.Weekday
}

// Route is the single physical route shown on the board.
type Route struct {
	ID          string
	Origin      string
	Destination string
	Line        string
	Timetable   Timetable
}

// NewRoute builds a Route. The timetable halves are expected to have been
// validated already through NewDayTimetable.
func NewRoute(id, origin, destination, line string, tt Timetable) (Route, error) {
	if id == "" {
		return Route{}, &ConfigError{Index: -1, Reason: "route id is empty"}
	}
	return Route{
		ID:          id,
		Origin:      origin,
		Destination: destination,
		Line:        line,
		Timetable:   tt,
	}, nil
}
