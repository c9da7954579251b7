package core

import (
	"time"

	"github.com/lixenwraith/vi-clock/constants"
)

// SimClock maps frame indices to simulated time
// Each frame advances FastForward * 100ms of simulated time
type SimClock struct {
	Start       time.Time
	FastForward float64
}

// NewSimClock creates a simulation clock anchored at start
func NewSimClock(start time.Time, fastForward float64) SimClock {
	return SimClock{Start: start, FastForward: fastForward}
}

// Elapsed returns the simulated time covered by frame frames
func (c SimClock) Elapsed(frame int64) time.Duration {
	seconds := float64(frame) * c.FastForward * constants.FrameSeconds
	return time.Duration(seconds * float64(time.Second))
}

// At returns the simulated time of frame after applying the accumulated skip offset
// skipOffset stays 0 under the pause strategy
func (c SimClock) At(frame, skipOffset int64) time.Time {
	return c.Start.Add(c.Elapsed(frame + skipOffset))
}

// JumpSpan returns the simulated time skipped by jumpFrames frames
func (c SimClock) JumpSpan(jumpFrames int64) time.Duration {
	return c.Elapsed(jumpFrames)
}
