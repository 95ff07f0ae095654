// Package appconf holds the runtime configuration of the departure board.
package appconf

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// ParseEnvironment accepts the short and long environment names.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dev", "development":
		return Development, nil
	case "test":
		return Test, nil
	case "prod", "production":
		return Production, nil
	default:
		return Development, fmt.Errorf("invalid environment %q: expected development, test or production", s)
	}
}

// RefreshIntervals are the polling cadences offered by the board settings.
var RefreshIntervals = []time.Duration{
	5 * time.Second,
	10 * time.Second,
	30 * time.Second,
	time.Minute,
}

const DefaultRefreshInterval = 10 * time.Second

type Config struct {
	Env     Environment
	Verbose bool

	// RoutePath is a YAML route document. Empty with an empty GTFSPath means
	// the embedded route.
	RoutePath string

	GTFSPath    string
	GTFSRouteID string
	GTFSStopID  string

	Count           int
	RefreshInterval time.Duration
	Locale          string

	// FixedTime pins the board's starting clock, e.g. "2024-06-12 23:40".
	FixedTime string

	MetricsTextfile string
}

// Validate reports the first configuration problem found.
func (c Config) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	if !validRefreshInterval(c.RefreshInterval) {
		return fmt.Errorf("refresh interval %s not supported: expected one of %v", c.RefreshInterval, RefreshIntervals)
	}
	if c.RoutePath != "" && c.GTFSPath != "" {
		return errors.New("route file and GTFS file are mutually exclusive")
	}
	if c.GTFSPath != "" && (c.GTFSRouteID == "" || c.GTFSStopID == "") {
		return errors.New("GTFS source requires both a route id and a stop id")
	}
	return nil
}

func validRefreshInterval(d time.Duration) bool {
	for _, allowed := range RefreshIntervals {
		if d == allowed {
			return true
		}
	}
	return false
}

// LoadDotenv loads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are ignored; malformed ones are reported.
func LoadDotenv(files ...string) error {
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("error loading env file: %w", err)
	}
	return nil
}
