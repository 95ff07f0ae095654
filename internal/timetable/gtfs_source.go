package timetable

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/OneBusAway/go-gtfs"
)

var (
	ErrRouteNotFound  = errors.New("route not found in GTFS feed")
	ErrNoStopServices = errors.New("no departures at stop for route")
)

// GTFSSelector picks the single route and boarding stop to extract from a feed.
type GTFSSelector struct {
	RouteID string
	StopID  string
}

// LoadGTFSFile reads a local GTFS zip and extracts one route at one stop.
func LoadGTFSFile(path string, sel GTFSSelector) (Route, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Route{}, fmt.Errorf("error reading local GTFS file: %w", err)
	}
	return RouteFromGTFS(b, sel)
}

// RouteFromGTFS parses raw GTFS zip bytes and extracts one route at one stop.
func RouteFromGTFS(data []byte, sel GTFSSelector) (Route, error) {
	staticData, err := gtfs.ParseStatic(data, gtfs.ParseStaticOptions{})
	if err != nil {
		return Route{}, fmt.Errorf("error parsing GTFS data: %w", err)
	}
	return RouteFromStatic(staticData, sel)
}

// RouteFromStatic builds a Route from the departures of sel.RouteID at
// sel.StopID. Services running on any of Monday to Friday feed the weekday
// schedule; services running on Saturday or Sunday feed the weekend one.
// Departures past 24:00 belong to the next calendar day and are dropped, as
// are stop times where the trip terminates.
func RouteFromStatic(staticData *gtfs.Static, sel GTFSSelector) (Route, error) {
	logger := slog.Default().With(slog.String("component", "gtfs_timetable"))

	var route *gtfs.Route
	for i := range staticData.Routes {
		if staticData.Routes[i].Id == sel.RouteID {
			route = &staticData.Routes[i]
			break
		}
	}
	if route == nil {
		return Route{}, fmt.Errorf("%w: %q", ErrRouteNotFound, sel.RouteID)
	}

	weekday := make(map[int]struct{})
	weekend := make(map[int]struct{})
	var origin, destination string
	dropped := 0

	for _, trip := range staticData.Trips {
		if trip.Route == nil || trip.Route.Id != sel.RouteID || trip.Service == nil {
			continue
		}
		runsWeekday := trip.Service.Monday || trip.Service.Tuesday || trip.Service.Wednesday ||
			trip.Service.Thursday || trip.Service.Friday
		runsWeekend := trip.Service.Saturday || trip.Service.Sunday

		for i, st := range trip.StopTimes {
			if st.Stop == nil || st.Stop.Id != sel.StopID {
				continue
			}
			if i == len(trip.StopTimes)-1 {
				continue
			}
			if st.DepartureTime >= 24*time.Hour || st.DepartureTime < 0 {
				dropped++
				continue
			}

			minute := int(st.DepartureTime / time.Minute)
			if runsWeekday {
				weekday[minute] = struct{}{}
			}
			if runsWeekend {
				weekend[minute] = struct{}{}
			}
			if origin == "" {
				origin = st.Stop.Name
			}
			if destination == "" {
				destination = trip.Headsign
			}
		}
	}

	if len(weekday) == 0 && len(weekend) == 0 {
		return Route{}, fmt.Errorf("%w: route %q stop %q", ErrNoStopServices, sel.RouteID, sel.StopID)
	}
	if dropped > 0 {
		logger.Warn("dropped departures after midnight",
			slog.String("route_id", sel.RouteID),
			slog.String("stop_id", sel.StopID),
			slog.Int("count", dropped))
	}

	weekdayDay, err := NewDayTimetable(entriesFromMinutes(weekday))
	if err != nil {
		return Route{}, fmt.Errorf("weekday schedule: %w", err)
	}
	weekendDay, err := NewDayTimetable(entriesFromMinutes(weekend))
	if err != nil {
		return Route{}, fmt.Errorf("weekend schedule: %w", err)
	}

	line := route.ShortName
	if line == "" {
		line = route.LongName
	}

	return NewRoute(route.Id+"@"+sel.StopID, origin, destination, line, Timetable{
		Weekday: weekdayDay,
		Weekend: weekendDay,
	})
}

// entriesFromMinutes groups a set of absolute minutes into hourly entries.
func entriesFromMinutes(set map[int]struct{}) []ScheduleEntry {
	minutes := make([]int, 0, len(set))
	for m := range set {
		minutes = append(minutes, m)
	}
	sort.Ints(minutes)

	var entries []ScheduleEntry
	for _, m := range minutes {
		hour := m / minutesPerHour
		if len(entries) == 0 || entries[len(entries)-1].Hour != hour {
			entries = append(entries, ScheduleEntry{Hour: hour})
		}
		last := &entries[len(entries)-1]
		last.Minutes = append(last.Minutes, m%minutesPerHour)
	}
	return entries
}
