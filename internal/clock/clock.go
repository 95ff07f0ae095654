// Package clock supplies the board with the current time. The departure
// engine itself never reads a clock; only the polling board does, through
// this interface, so tests and demos can pin or move time.
package clock

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the host clock in the host's local zone.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a controllable, thread-safe Clock for tests.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
}

// NewMockClock creates a MockClock set to t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

// Set moves the clock to t.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the clock by d, which may be negative.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// OffsetClock runs at real speed from a pinned starting instant. It lets a
// demo show, say, the 23:40 end-of-service state at any time of day.
type OffsetClock struct {
	offset time.Duration
	loc    *time.Location
	now    func() time.Time
}

// NewOffsetClock returns a clock that reads start at the moment of the call
// and then advances with the host clock.
func NewOffsetClock(start time.Time) *OffsetClock {
	return &OffsetClock{
		offset: time.Until(start),
		loc:    start.Location(),
		now:    time.Now,
	}
}

func (o *OffsetClock) Now() time.Time {
	return o.now().Add(o.offset).In(o.loc)
}

var fixedLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// ParseFixed parses a start time for an OffsetClock. RFC3339 values carry
// their own zone; the other accepted layouts are read in loc.
func ParseFixed(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("fixed time is empty")
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	if loc == nil {
		return time.Time{}, errors.New("timezone not configured")
	}
	for _, layout := range fixedLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse time %q: expected RFC3339 or YYYY-MM-DD HH:MM[:SS]", value)
}
