// Package metrics provides Prometheus metrics for the departure board.
// The board has no network surface, so metrics are exported by writing the
// registry to a node_exporter textfile.
package metrics

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for the board.
type Metrics struct {
	// Registry is the Prometheus registry for this metrics instance
	Registry *prometheus.Registry

	RendersTotal     *prometheus.CounterVec
	NextWaitMinutes  prometheus.Gauge
	UpcomingCount    prometheus.Gauge
	ServiceEnded     prometheus.Gauge
	TextfileFailures prometheus.Counter

	logger *slog.Logger
}

// New creates and registers all board metrics with a new registry.
func New() *Metrics {
	return NewWithLogger(nil)
}

// NewWithLogger creates metrics with a logger for error reporting.
func NewWithLogger(logger *slog.Logger) *Metrics {
	registry := prometheus.NewRegistry()

	rendersTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "departures_board_renders_total",
			Help: "Total number of board renders by day type",
		},
		[]string{"day_type"},
	)

	nextWaitMinutes := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "departures_board_next_wait_minutes",
		Help: "Minutes until the highlighted departure, -1 when service has ended",
	})

	upcomingCount := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "departures_board_upcoming",
		Help: "Number of departures shown on the last render",
	})

	serviceEnded := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "departures_board_service_ended",
		Help: "1 when no departures remain for the day",
	})

	textfileFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "departures_board_textfile_write_failures_total",
		Help: "Total number of failed metrics textfile writes",
	})

	registry.MustRegister(
		rendersTotal,
		nextWaitMinutes,
		upcomingCount,
		serviceEnded,
		textfileFailures,
	)

	return &Metrics{
		Registry:         registry,
		RendersTotal:     rendersTotal,
		NextWaitMinutes:  nextWaitMinutes,
		UpcomingCount:    upcomingCount,
		ServiceEnded:     serviceEnded,
		TextfileFailures: textfileFailures,
		logger:           logger,
	}
}

// ObserveRender records one board render. wait is ignored when ended is true.
func (m *Metrics) ObserveRender(dayType string, upcoming int, wait int, ended bool) {
	m.RendersTotal.WithLabelValues(dayType).Inc()
	m.UpcomingCount.Set(float64(upcoming))
	if ended {
		m.ServiceEnded.Set(1)
		m.NextWaitMinutes.Set(-1)
		return
	}
	m.ServiceEnded.Set(0)
	m.NextWaitMinutes.Set(float64(wait))
}

// WriteTextfile writes the registry in the text exposition format to path.
// An empty path is a no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		m.TextfileFailures.Inc()
		if m.logger != nil {
			m.logger.Error("failed to write metrics textfile", "path", path, "error", err)
		}
		return fmt.Errorf("error writing metrics textfile: %w", err)
	}
	return nil
}
