package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealClock_Now(t *testing.T) {
	c := RealClock{}
	before := time.Now()
	result := c.Now()
	after := time.Now()

	assert.False(t, result.Before(before))
	assert.False(t, result.After(after))
}

func TestMockClock_SetAndAdvance(t *testing.T) {
	start := time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC)
	c := NewMockClock(start)
	assert.Equal(t, start, c.Now())
	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Second)
	assert.Equal(t, time.Date(2024, 6, 12, 8, 1, 30, 0, time.UTC), c.Now())

	c.Advance(-30 * time.Second)
	assert.Equal(t, time.Date(2024, 6, 12, 8, 1, 0, 0, time.UTC), c.Now())

	later := time.Date(2024, 6, 15, 23, 45, 0, 0, time.UTC)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}

func TestMockClock_ConcurrentAccess(t *testing.T) {
	c := NewMockClock(time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = c.Now()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, time.Date(2024, 6, 12, 8, 0, 2, 0, time.UTC), c.Now())
}

func TestOffsetClock(t *testing.T) {
	start := time.Date(2024, 6, 12, 23, 40, 0, 0, time.UTC)
	host := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	c := &OffsetClock{offset: start.Sub(host), loc: time.UTC, now: func() time.Time { return host }}
	assert.True(t, start.Equal(c.Now()))

	host = host.Add(5 * time.Minute)
	assert.True(t, start.Add(5*time.Minute).Equal(c.Now()))
}

func TestNewOffsetClock_KeepsLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	start := time.Date(2024, 6, 12, 8, 0, 0, 0, tokyo)

	c := NewOffsetClock(start)
	now := c.Now()

	assert.Equal(t, tokyo, now.Location())
	assert.WithinDuration(t, start, now, 5*time.Second)
}

func TestParseFixed(t *testing.T) {
	loc := time.FixedZone("JST", 9*3600)

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"RFC3339", "2024-06-12T08:10:00Z", time.Date(2024, 6, 12, 8, 10, 0, 0, time.UTC)},
		{"space with seconds", "2024-06-12 08:10:30", time.Date(2024, 6, 12, 8, 10, 30, 0, loc)},
		{"T with seconds", "2024-06-12T08:10:30", time.Date(2024, 6, 12, 8, 10, 30, 0, loc)},
		{"space minutes only", " 2024-06-12 23:45 ", time.Date(2024, 6, 12, 23, 45, 0, 0, loc)},
		{"T minutes only", "2024-06-12T23:45", time.Date(2024, 6, 12, 23, 45, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFixed(tt.input, loc)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
		})
	}
}

func TestParseFixed_Errors(t *testing.T) {
	_, err := ParseFixed("", time.UTC)
	assert.Error(t, err)

	_, err = ParseFixed("yesterday", time.UTC)
	assert.Error(t, err)

	_, err = ParseFixed("2024-06-12 08:10", nil)
	assert.Error(t, err)

	got, err := ParseFixed("2024-06-12T08:10:00Z", nil)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Hour())
}
