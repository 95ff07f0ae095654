package app

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"departureboard.org/internal/appconf"
	"departureboard.org/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() appconf.Config {
	return appconf.Config{
		Env:             appconf.Test,
		Count:           3,
		RefreshInterval: appconf.DefaultRefreshInterval,
		Locale:          "en",
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestNew_DefaultRoute(t *testing.T) {
	a, err := New(testConfig(), testLogger())
	require.NoError(t, err)

	assert.Equal(t, "yakushido-sendai", a.Route.ID)
	assert.IsType(t, clock.RealClock{}, a.Clock)
	assert.NotNil(t, a.Engine)
	assert.NotNil(t, a.Metrics)
}

func TestNew_FixedTime(t *testing.T) {
	cfg := testConfig()
	cfg.FixedTime = "2024-06-12T08:10:00Z"

	a, err := New(cfg, testLogger())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Date(2024, 6, 12, 8, 10, 0, 0, time.UTC), a.Clock.Now(), 5*time.Second)
}

func TestNew_Errors(t *testing.T) {
	cfg := testConfig()
	cfg.Locale = "xx"
	_, err := New(cfg, testLogger())
	assert.Error(t, err)

	cfg = testConfig()
	cfg.FixedTime = "tomorrow"
	_, err = New(cfg, testLogger())
	assert.Error(t, err)

	cfg = testConfig()
	cfg.RoutePath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = New(cfg, testLogger())
	assert.Error(t, err)

	cfg = testConfig()
	cfg.GTFSPath = filepath.Join(t.TempDir(), "missing.zip")
	cfg.GTFSRouteID = "R"
	cfg.GTFSStopID = "S"
	_, err = New(cfg, testLogger())
	assert.Error(t, err)
}

func TestLoadRoute_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "route.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: file-route\nweekday:\n  - {hour: 6, minutes: [0]}\n"), 0o600))

	cfg := testConfig()
	cfg.RoutePath = path
	route, err := LoadRoute(cfg)
	require.NoError(t, err)
	assert.Equal(t, "file-route", route.ID)
}

func TestBoard_MetricsOnlyWithTextfile(t *testing.T) {
	a, err := New(testConfig(), testLogger())
	require.NoError(t, err)

	b := a.Board(&bytes.Buffer{})
	assert.Nil(t, b.Metrics)
	assert.Equal(t, appconf.DefaultRefreshInterval, b.Interval)
	assert.Equal(t, 3, b.Count)

	a.Config.MetricsTextfile = filepath.Join(t.TempDir(), "board.prom")
	b = a.Board(&bytes.Buffer{})
	assert.Same(t, a.Metrics, b.Metrics)
	assert.Equal(t, a.Config.MetricsTextfile, b.MetricsPath)
}
