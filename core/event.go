package core

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-clock/constants"
)

// Event records one detected alignment
type Event struct {
	Frame    int64
	At       time.Time // simulated time at detection, unrounded
	Score    float64
	Strategy Strategy
}

// Rounded returns the detection time rounded to the nearest second, half a second rounds up
func (e Event) Rounded() time.Time {
	return RoundSecond(e.At)
}

// Label returns the strategy's event label
func (e Event) Label() string {
	return e.Strategy.Label()
}

// String formats the console line, "<label>: HH:MM:SS"
func (e Event) String() string {
	return fmt.Sprintf("%s: %s", e.Label(), e.Rounded().Format(constants.TimeLayout))
}

// RoundSecond adds half a second and truncates to the whole second
func RoundSecond(t time.Time) time.Time {
	shifted := t.Add(500 * time.Millisecond)
	return shifted.Add(-time.Duration(shifted.Nanosecond()))
}
