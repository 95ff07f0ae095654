// Package urgency buckets a wait into tiers and maps each tier to the cues
// the board uses to present it.
package urgency

import (
	"fmt"
	"time"
)

// Tier is a discrete bucket of wait time. Lower values are more urgent.
type Tier int

const (
	Imminent    Tier = iota // one minute or less
	Rushing                 // three minutes or less
	SoonWarning             // five minutes or less
	Prepare                 // ten minutes or less
	Relaxed                 // more than ten minutes
)

var tierNames = [...]string{"imminent", "rushing", "soon", "prepare", "relaxed"}

func (t Tier) String() string {
	if t < Imminent || t > Relaxed {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// TierFor classifies a wait in minutes. It is monotone: a longer wait never
// yields a more urgent tier.
func TierFor(waitMinutes int) Tier {
	switch {
	case waitMinutes <= 1:
		return Imminent
	case waitMinutes <= 3:
		return Rushing
	case waitMinutes <= 5:
		return SoonWarning
	case waitMinutes <= 10:
		return Prepare
	default:
		return Relaxed
	}
}

// Style is the presentation of a tier.
type Style struct {
	Color string
	// Pulse is the period of the highlight animation.
	Pulse   time.Duration
	Message string
	// Glow marks the tier for the extra attention effect.
	Glow bool
}

var styles = map[Tier]Style{
	Imminent:    {Color: "red", Pulse: 250 * time.Millisecond, Message: "Arriving now", Glow: true},
	Rushing:     {Color: "orange", Pulse: 500 * time.Millisecond, Message: "Hurry!"},
	SoonWarning: {Color: "yellow", Pulse: 2 * time.Second, Message: "Almost time"},
	Prepare:     {Color: "blue", Pulse: 3 * time.Second, Message: "Get ready"},
	Relaxed:     {Color: "green", Pulse: 5 * time.Second, Message: "Plenty of time"},
}

// StyleFor looks up the presentation of a tier. Unknown tiers get the
// Relaxed style.
func StyleFor(t Tier) Style {
	if s, ok := styles[t]; ok {
		return s
	}
	return styles[Relaxed]
}

// Progress is the fill percentage of the countdown bar: it grows from 10%
// as the departure comes within ten minutes and never drops below 10%.
func Progress(waitMinutes int) int {
	if waitMinutes > 10 {
		return 10
	}
	return max(10, 100-waitMinutes*10)
}
