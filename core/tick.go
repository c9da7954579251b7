package core

import (
	"fmt"
	"time"
)

// Frame is everything the render driver needs to draw one tick
type Frame struct {
	Index  int64
	Time   time.Time
	Angles HandAngles
	Score  float64

	// Event is set on the tick that detected an alignment
	Event *Event
	// Last is the most recent event, nil until the first detection
	Last  *Event
	Count int

	// ResumeAt is non-zero when this tick opened a pause window; tick delivery halts until then
	ResumeAt time.Time
	Paused   bool
}

// ScoreText formats the alignment score to 4 decimal places
func (f Frame) ScoreText() string {
	return fmt.Sprintf("%.4f", f.Score)
}

// EventLabel returns the most recent event line, empty before the first detection
func (f Frame) EventLabel() string {
	if f.Last == nil {
		return ""
	}
	return f.Last.String()
}

// Core wires the simulation clock, angle model, scorer and reactor for one simulation
// Not safe for concurrent use; the render driver owns it
type Core struct {
	clock   SimClock
	reactor *Reactor
	state   State
}

// NewCore creates a core in the armed state
func NewCore(clock SimClock, reactor *Reactor) *Core {
	return &Core{clock: clock, reactor: reactor}
}

// OnTick advances the simulation to frame and reports the result
func (c *Core) OnTick(frame int64) Frame {
	at := c.clock.At(frame, c.state.SkipOffset)
	angles := AnglesAt(TimestampOf(at))
	score := Score(angles)

	next, ev := c.reactor.Observe(c.state, frame, at, score)
	c.state = next

	f := Frame{
		Index:  frame,
		Time:   at,
		Angles: angles,
		Score:  score,
		Event:  ev,
		Last:   next.Last,
		Count:  next.Count,
		Paused: next.Paused,
	}
	if ev != nil && next.Paused {
		f.ResumeAt = next.PausedUntil
	}
	return f
}

// State returns a copy of the current clock state
func (c *Core) State() State {
	return c.state
}

// Clock returns the simulation clock
func (c *Core) Clock() SimClock {
	return c.clock
}

// Strategy returns the reactor's strategy
func (c *Core) Strategy() Strategy {
	return c.reactor.cfg.Strategy
}
