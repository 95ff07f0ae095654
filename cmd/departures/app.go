package main

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"departureboard.org/internal/app"
	"departureboard.org/internal/appconf"
	"departureboard.org/internal/board"
	"departureboard.org/internal/departures"
	"departureboard.org/internal/logging"
	"departureboard.org/internal/timetable"
	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"
)

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "env",
			Value:   "development",
			Usage:   "runtime environment (development, test, production)",
			EnvVars: []string{"DEPARTURES_ENV"},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Usage:   "enable debug logging",
			EnvVars: []string{"DEPARTURES_VERBOSE"},
		},
		&cli.StringFlag{
			Name:    "route-file",
			Usage:   "YAML route document; the built-in route is used when empty",
			EnvVars: []string{"DEPARTURES_ROUTE_FILE"},
		},
		&cli.StringFlag{
			Name:    "gtfs-file",
			Usage:   "local GTFS zip to read the route from",
			EnvVars: []string{"DEPARTURES_GTFS_FILE"},
		},
		&cli.StringFlag{
			Name:    "gtfs-route",
			Usage:   "route_id to extract from the GTFS feed",
			EnvVars: []string{"DEPARTURES_GTFS_ROUTE"},
		},
		&cli.StringFlag{
			Name:    "gtfs-stop",
			Usage:   "stop_id whose departures are shown",
			EnvVars: []string{"DEPARTURES_GTFS_STOP"},
		},
		&cli.StringFlag{
			Name:    "locale",
			Value:   "en",
			Usage:   "wait label language (en, ja)",
			EnvVars: []string{"DEPARTURES_LOCALE"},
		},
		&cli.IntFlag{
			Name:    "count",
			Value:   departures.DefaultCount,
			Usage:   "number of departures to show",
			EnvVars: []string{"DEPARTURES_COUNT"},
		},
		&cli.StringFlag{
			Name:    "at",
			Usage:   "pin the starting time, e.g. \"2024-06-12 08:10\"",
			EnvVars: []string{"DEPARTURES_FIXED_TIME"},
		},
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "departures",
		Usage:     "upcoming departures for a single route",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			{
				Name:  "next",
				Usage: "print the upcoming departures once",
				Flags: sourceFlags(),
				Action: func(c *cli.Context) error {
					a, err := setup(c)
					if err != nil {
						return err
					}
					b := a.Board(c.App.Writer)
					_, err = b.Tick()
					return err
				},
			},
			{
				Name:  "watch",
				Usage: "keep the board updated until interrupted",
				Flags: append(sourceFlags(),
					&cli.DurationFlag{
						Name:    "interval",
						Value:   appconf.DefaultRefreshInterval,
						Usage:   "refresh interval (5s, 10s, 30s or 1m)",
						EnvVars: []string{"DEPARTURES_REFRESH_INTERVAL"},
					},
					&cli.StringFlag{
						Name:    "metrics-textfile",
						Usage:   "write Prometheus metrics to this file after every refresh",
						EnvVars: []string{"DEPARTURES_METRICS_TEXTFILE"},
					},
					&cli.BoolFlag{
						Name:  "clear",
						Value: true,
						Usage: "clear the terminal between refreshes",
					},
				),
				Action: func(c *cli.Context) error {
					a, err := setup(c)
					if err != nil {
						return err
					}
					b := a.Board(c.App.Writer)
					b.ClearScreen = c.Bool("clear")

					ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
					defer stop()
					return b.Run(logging.WithLogger(ctx, a.Logger))
				},
			},
			{
				Name:  "timetable",
				Usage: "print the full timetable for a day type",
				Flags: append(sourceFlags(),
					&cli.StringFlag{
						Name:  "day",
						Usage: "weekday or weekend; defaults to today's day type",
					},
				),
				Action: func(c *cli.Context) error {
					a, err := setup(c)
					if err != nil {
						return err
					}
					dayType := timetable.Classify(a.Clock.Now())
					if c.String("day") != "" {
						dayType, err = timetable.ParseDayType(c.String("day"))
						if err != nil {
							return err
						}
					}
					return board.RenderTimetable(c.App.Writer, a.Route, dayType)
				},
			},
			{
				Name:  "validate",
				Usage: "load and validate the configured route",
				Flags: append(sourceFlags(),
					&cli.BoolFlag{
						Name:  "dump",
						Usage: "dump the parsed route",
					},
				),
				Action: func(c *cli.Context) error {
					a, err := setup(c)
					if err != nil {
						return err
					}
					r := a.Route
					fmt.Fprintf(c.App.Writer, "route %s ok: %d weekday and %d weekend departures\n",
						r.ID, r.Timetable.Weekday.Len(), r.Timetable.Weekend.Len())
					if c.Bool("dump") {
						spew.Fdump(c.App.Writer, struct {
							ID, Origin, Destination, Line string
							Weekday, Weekend              []timetable.ScheduleEntry
						}{
							r.ID, r.Origin, r.Destination, r.Line,
							r.Timetable.Weekday.Entries(), r.Timetable.Weekend.Entries(),
						})
					}
					return nil
				},
			},
		},
	}
}

func configFromContext(c *cli.Context) (appconf.Config, error) {
	env, err := appconf.ParseEnvironment(c.String("env"))
	if err != nil {
		return appconf.Config{}, err
	}

	interval := c.Duration("interval")
	if interval == 0 {
		interval = appconf.DefaultRefreshInterval
	}

	cfg := appconf.Config{
		Env:             env,
		Verbose:         c.Bool("verbose"),
		RoutePath:       c.String("route-file"),
		GTFSPath:        c.String("gtfs-file"),
		GTFSRouteID:     c.String("gtfs-route"),
		GTFSStopID:      c.String("gtfs-stop"),
		Count:           c.Int("count"),
		RefreshInterval: interval,
		Locale:          c.String("locale"),
		FixedTime:       c.String("at"),
		MetricsTextfile: c.String("metrics-textfile"),
	}
	if err := cfg.Validate(); err != nil {
		return appconf.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setup(c *cli.Context) (*app.Application, error) {
	cfg, err := configFromContext(c)
	if err != nil {
		return nil, err
	}
	logger := logging.NewLogger(c.App.ErrWriter, cfg.Env, cfg.Verbose)
	return app.New(cfg, logger)
}
