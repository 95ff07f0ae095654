// Package departures derives the upcoming departures of a route for a given
// instant. It never reads a clock: callers pass the timestamp in, and the
// same (route, now, count) always yields the same result.
package departures

import (
	"time"

	"departureboard.org/internal/timetable"
)

// DefaultCount is the number of departures the board shows: one highlighted
// and two following.
const DefaultCount = 3

// UpcomingDeparture is one future departure together with its wait.
type UpcomingDeparture struct {
	Departure   timetable.Departure
	WaitMinutes int
	WaitLabel   string
}

// Engine answers departure queries. The zero value is not usable; use NewEngine.
type Engine struct {
	formatter Formatter
}

// Option configures an Engine.
type Option func(*Engine)

// WithFormatter replaces the wait label formatter.
func WithFormatter(f Formatter) Option {
	return func(e *Engine) {
		if f != nil {
			e.formatter = f
		}
	}
}

// NewEngine returns an engine using English labels unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{formatter: EnglishFormatter{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine()

// NextDepartures queries with the default engine.
func NextDepartures(route timetable.Route, now time.Time, count int) []UpcomingDeparture {
	return defaultEngine.NextDepartures(route, now, count)
}

// NextDepartures returns at most count departures of route scheduled strictly
// after the minute containing now, in chronological order.
//
// Seconds are discarded, so a departure in the current minute has already
// left. An empty result means service has ended for the day; departures never
// roll over into the next day's schedule.
func (e *Engine) NextDepartures(route timetable.Route, now time.Time, count int) []UpcomingDeparture {
	if count <= 0 {
		return []UpcomingDeparture{}
	}

	day := route.Timetable.For(timetable.Classify(now))
	nowMinute := timetable.MinuteOfDay(now)

	result := make([]UpcomingDeparture, 0, count)
	for _, dep := range timetable.Flatten(day) {
		if dep.AbsoluteMinute <= nowMinute {
			continue
		}
		wait := dep.AbsoluteMinute - nowMinute
		result = append(result, UpcomingDeparture{
			Departure:   dep,
			WaitMinutes: wait,
			WaitLabel:   e.formatter.FormatWait(wait),
		})
		if len(result) == count {
			break
		}
	}
	return result
}

// Remaining reports how many departures of the current day type are still
// ahead of now.
func Remaining(route timetable.Route, now time.Time) int {
	day := route.Timetable.For(timetable.Classify(now))
	nowMinute := timetable.MinuteOfDay(now)

	n := 0
	for _, dep := range timetable.Flatten(day) {
		if dep.AbsoluteMinute > nowMinute {
			n++
		}
	}
	return n
}
