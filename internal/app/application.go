package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"departureboard.org/internal/appconf"
	"departureboard.org/internal/board"
	"departureboard.org/internal/clock"
	"departureboard.org/internal/departures"
	"departureboard.org/internal/logging"
	"departureboard.org/internal/metrics"
	"departureboard.org/internal/timetable"
)

// Application holds the resolved dependencies shared by every command: the
// configuration, the loaded route, the query engine and the clock the board
// reads.
type Application struct {
	Config  appconf.Config
	Logger  *slog.Logger
	Route   timetable.Route
	Engine  *departures.Engine
	Clock   clock.Clock
	Metrics *metrics.Metrics
}

// New loads the configured route and wires the engine and clock. The config
// is expected to have passed Validate.
func New(cfg appconf.Config, logger *slog.Logger) (*Application, error) {
	formatter, err := departures.FormatterFor(cfg.Locale)
	if err != nil {
		return nil, err
	}

	route, err := LoadRoute(cfg)
	if err != nil {
		logging.LogError(logger, "failed to load route", err)
		return nil, err
	}
	logging.LogOperation(logger, "route_loaded",
		slog.String("component", "timetable"),
		slog.String("route", route.ID),
		slog.Int("weekday_departures", route.Timetable.Weekday.Len()),
		slog.Int("weekend_departures", route.Timetable.Weekend.Len()))

	var clk clock.Clock = clock.RealClock{}
	if cfg.FixedTime != "" {
		start, err := clock.ParseFixed(cfg.FixedTime, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid fixed time: %w", err)
		}
		clk = clock.NewOffsetClock(start)
	}

	return &Application{
		Config:  cfg,
		Logger:  logger,
		Route:   route,
		Engine:  departures.NewEngine(departures.WithFormatter(formatter)),
		Clock:   clk,
		Metrics: metrics.NewWithLogger(logger),
	}, nil
}

// LoadRoute picks the route source: a GTFS feed, a YAML document, or the
// embedded route when neither is configured.
func LoadRoute(cfg appconf.Config) (timetable.Route, error) {
	switch {
	case cfg.GTFSPath != "":
		return timetable.LoadGTFSFile(cfg.GTFSPath, timetable.GTFSSelector{
			RouteID: cfg.GTFSRouteID,
			StopID:  cfg.GTFSStopID,
		})
	case cfg.RoutePath != "":
		return timetable.LoadRouteFile(cfg.RoutePath)
	default:
		return timetable.DefaultRoute(), nil
	}
}

// Board returns a board writing to out. Metrics are attached only when a
// textfile is configured.
func (a *Application) Board(out io.Writer) *board.Board {
	b := &board.Board{
		Engine:   a.Engine,
		Route:    a.Route,
		Clock:    a.Clock,
		Count:    a.Config.Count,
		Interval: a.Config.RefreshInterval,
		Out:      out,
		Logger:   a.Logger.With(slog.String("component", "board")),
	}
	if a.Config.MetricsTextfile != "" {
		b.Metrics = a.Metrics
		b.MetricsPath = a.Config.MetricsTextfile
	}
	return b
}
