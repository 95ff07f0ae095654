package urgency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		wait     int
		expected Tier
	}{
		{-1, Imminent},
		{0, Imminent},
		{1, Imminent},
		{2, Rushing},
		{3, Rushing},
		{4, SoonWarning},
		{5, SoonWarning},
		{6, Prepare},
		{10, Prepare},
		{11, Relaxed},
		{600, Relaxed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TierFor(tt.wait), "wait=%d", tt.wait)
	}
}

func TestTierFor_Monotone(t *testing.T) {
	prev := TierFor(0)
	for wait := 1; wait <= 120; wait++ {
		tier := TierFor(wait)
		assert.GreaterOrEqual(t, tier, prev, "wait=%d", wait)
		prev = tier
	}
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "imminent", Imminent.String())
	assert.Equal(t, "relaxed", Relaxed.String())
	assert.Equal(t, "Tier(9)", Tier(9).String())
}

func TestStyleFor(t *testing.T) {
	for _, tier := range []Tier{Imminent, Rushing, SoonWarning, Prepare, Relaxed} {
		s := StyleFor(tier)
		assert.NotEmpty(t, s.Color, tier.String())
		assert.NotEmpty(t, s.Message, tier.String())
		assert.Positive(t, s.Pulse, tier.String())
	}

	assert.Equal(t, "red", StyleFor(Imminent).Color)
	assert.True(t, StyleFor(Imminent).Glow)
	assert.Equal(t, "green", StyleFor(Relaxed).Color)
	assert.Equal(t, StyleFor(Relaxed), StyleFor(Tier(-3)))

	// Faster pulses for more urgent tiers.
	assert.Less(t, StyleFor(Rushing).Pulse, StyleFor(Prepare).Pulse)
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 100, Progress(0))
	assert.Equal(t, 90, Progress(1))
	assert.Equal(t, 50, Progress(5))
	assert.Equal(t, 10, Progress(9))
	assert.Equal(t, 10, Progress(10))
	assert.Equal(t, 10, Progress(45))
}
