// Package board is the presentation layer of the departure board: it turns
// engine results into a snapshot, renders snapshots to a terminal and keeps
// re-rendering them on a polling cadence.
package board

import (
	"time"

	"departureboard.org/internal/departures"
	"departureboard.org/internal/timetable"
	"departureboard.org/internal/urgency"
)

// Snapshot is everything one render of the board needs.
type Snapshot struct {
	Route   timetable.Route
	Now     time.Time
	DayType timetable.DayType

	// Next is nil when service has ended for the day.
	Next      *departures.UpcomingDeparture
	Following []departures.UpcomingDeparture
	// Remaining counts every departure still ahead today, shown or not.
	Remaining int

	Tier     urgency.Tier
	Style    urgency.Style
	Progress int
}

// ServiceEnded reports whether no departures remain today.
func (s Snapshot) ServiceEnded() bool {
	return s.Next == nil
}

// Upcoming is the number of departures shown.
func (s Snapshot) Upcoming() int {
	if s.Next == nil {
		return 0
	}
	return 1 + len(s.Following)
}

// Build queries the engine once and derives the presentation cues from the
// soonest departure.
func Build(engine *departures.Engine, route timetable.Route, now time.Time, count int) Snapshot {
	snap := Snapshot{
		Route:   route,
		Now:     now,
		DayType: timetable.Classify(now),
	}

	upcoming := engine.NextDepartures(route, now, count)
	if len(upcoming) == 0 {
		return snap
	}

	snap.Remaining = departures.Remaining(route, now)
	next := upcoming[0]
	snap.Next = &next
	snap.Following = upcoming[1:]
	snap.Tier = urgency.TierFor(next.WaitMinutes)
	snap.Style = urgency.StyleFor(snap.Tier)
	snap.Progress = urgency.Progress(next.WaitMinutes)
	return snap
}
