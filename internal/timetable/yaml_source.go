package timetable

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/yakushido-sendai.yaml
var defaultRouteYAML []byte

type routeDocument struct {
	ID          string          `yaml:"id"`
	Origin      string          `yaml:"origin"`
	Destination string          `yaml:"destination"`
	Line        string          `yaml:"line"`
	Weekday     []ScheduleEntry `yaml:"weekday"`
	Weekend     []ScheduleEntry `yaml:"weekend"`
}

// ParseRoute decodes a YAML route document and validates both day schedules.
// Unknown keys are rejected so that typos do not silently drop departures.
func ParseRoute(data []byte) (Route, error) {
	var doc routeDocument

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return Route{}, fmt.Errorf("error decoding route document: %w", err)
	}

	weekday, err := NewDayTimetable(doc.Weekday)
	if err != nil {
		return Route{}, fmt.Errorf("weekday schedule: %w", err)
	}
	weekend, err := NewDayTimetable(doc.Weekend)
	if err != nil {
		return Route{}, fmt.Errorf("weekend schedule: %w", err)
	}

	return NewRoute(doc.ID, doc.Origin, doc.Destination, doc.Line, Timetable{
		Weekday: weekday,
		Weekend: weekend,
	})
}

// LoadRouteFile reads and parses a YAML route document from disk.
func LoadRouteFile(path string) (Route, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Route{}, fmt.Errorf("error reading route file: %w", err)
	}
	route, err := ParseRoute(b)
	if err != nil {
		return Route{}, fmt.Errorf("%s: %w", path, err)
	}
	return route, nil
}

// DefaultRoute returns the route compiled into the binary.
func DefaultRoute() Route {
	route, err := ParseRoute(defaultRouteYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded route data is invalid: %v", err))
	}
	return route
}
