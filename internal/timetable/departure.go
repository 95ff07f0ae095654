package timetable

import (
	"fmt"
	"strings"
	"time"
)

// DayType selects which half of a Timetable applies.
type DayType int

const (
	Weekday DayType = iota
	Weekend
)

func (d DayType) String() string {
	switch d {
	case Weekday:
		return "weekday"
	case Weekend:
		return "weekend"
	default:
		return fmt.Sprintf("DayType(%d)", int(d))
	}
}

// ParseDayType accepts "weekday" or "weekend", case-insensitively.
func ParseDayType(s string) (DayType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weekday":
		return Weekday, nil
	case "weekend", "holiday":
		return Weekend, nil
	default:
		return Weekday, fmt.Errorf("unknown day type %q: expected weekday or weekend", s)
	}
}

// Classify maps a timestamp to its day type using the timestamp's own
// location. Saturday and Sunday are Weekend, every other day is Weekday.
func Classify(t time.Time) DayType {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return Weekend
	default:
		return Weekday
	}
}

// Departure is a single scheduled departure within a day.
type Departure struct {
	Hour   int
	Minute int
	// AbsoluteMinute is minutes since local midnight.
	AbsoluteMinute int
}

// ID is stable for a departure within its day, e.g. "8-12".
func (d Departure) ID() string {
	return fmt.Sprintf("%d-%d", d.Hour, d.Minute)
}

// Clock renders the departure as zero-padded HH:MM.
func (d Departure) Clock() string {
	return fmt.Sprintf("%02d:%02d", d.Hour, d.Minute)
}

// Flatten expands a day into its departures in chronological order. The
// order follows directly from the construction invariants of DayTimetable,
// so no sorting happens here. Each call returns a fresh slice.
func Flatten(d DayTimetable) []Departure {
	out := make([]Departure, 0, d.Len())
	for _, entry := range d.entries {
		for _, minute := range entry.Minutes {
			out = append(out, Departure{
				Hour:           entry.Hour,
				Minute:         minute,
				AbsoluteMinute: entry.Hour*minutesPerHour + minute,
			})
		}
	}
	return out
}

// MinuteOfDay truncates t to whole minutes since its local midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*minutesPerHour + t.Minute()
}
