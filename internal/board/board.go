package board

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"departureboard.org/internal/clock"
	"departureboard.org/internal/departures"
	"departureboard.org/internal/logging"
	"departureboard.org/internal/metrics"
	"departureboard.org/internal/timetable"
)

const clearScreen = "\033[H\033[2J"

// Board re-renders the departures of one route on a fixed cadence. The board
// owns the clock; every tick reads it once and passes the time to the engine.
type Board struct {
	Engine   *departures.Engine
	Route    timetable.Route
	Clock    clock.Clock
	Count    int
	Interval time.Duration
	Out      io.Writer

	// ClearScreen redraws in place on ANSI terminals.
	ClearScreen bool

	// Metrics and MetricsPath are optional.
	Metrics     *metrics.Metrics
	MetricsPath string

	Logger *slog.Logger
}

func (b *Board) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.Default().With(slog.String("component", "board"))
	}
	return b.Logger
}

// Tick builds and renders one snapshot at the clock's current time.
func (b *Board) Tick() (Snapshot, error) {
	snap := Build(b.Engine, b.Route, b.Clock.Now(), b.Count)

	if b.ClearScreen {
		if _, err := io.WriteString(b.Out, clearScreen); err != nil {
			return snap, err
		}
	}
	if err := Render(b.Out, snap); err != nil {
		return snap, err
	}

	if b.Metrics != nil {
		wait := 0
		if snap.Next != nil {
			wait = snap.Next.WaitMinutes
		}
		b.Metrics.ObserveRender(snap.DayType.String(), snap.Upcoming(), wait, snap.ServiceEnded())
		if err := b.Metrics.WriteTextfile(b.MetricsPath); err != nil {
			logging.LogError(b.logger(), "metrics export failed", err)
		}
	}

	b.logger().Debug("board_rendered",
		slog.String("day_type", snap.DayType.String()),
		slog.Int("upcoming", snap.Upcoming()),
		slog.Bool("service_ended", snap.ServiceEnded()))

	return snap, nil
}

// Run renders immediately and then on every interval until ctx is done.
// It returns nil on cancellation and the first render error otherwise.
func (b *Board) Run(ctx context.Context) error {
	if b.Interval <= 0 {
		return errors.New("board refresh interval must be positive")
	}

	if b.Logger == nil {
		b.Logger = logging.FromContext(ctx).With(slog.String("component", "board"))
	}
	logger := b.Logger
	logging.LogOperation(logger, "board_started",
		slog.String("route", b.Route.ID),
		slog.Duration("interval", b.Interval))

	if _, err := b.Tick(); err != nil {
		return err
	}

	ticker := time.NewTicker(b.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := b.Tick(); err != nil {
				return err
			}
		case <-ctx.Done():
			logging.LogOperation(logger, "board_stopped")
			return nil
		}
	}
}
