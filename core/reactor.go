package core

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// State is the clock state carried across ticks
// The zero value is armed with no events seen
type State struct {
	// Paused is set while a pause window is open; no detections run
	Paused bool
	// PausedUntil is the wall-clock deadline of the open pause window
	PausedUntil time.Time
	// SkipOffset is the accumulated frame jump, skip strategy only
	SkipOffset int64
	// Last is the most recent event, kept for display
	Last *Event
	// Count is the number of events detected so far
	Count int
}

// Armed reports whether the next observation will evaluate the score
func (s State) Armed(now time.Time) bool {
	return !s.Paused || !now.Before(s.PausedUntil)
}

// ReactorConfig carries the reactor's tunables
type ReactorConfig struct {
	Strategy      Strategy
	Threshold     float64
	PauseInterval time.Duration // pause strategy
	JumpInterval  int64         // skip strategy, frames
}

// Reactor turns alignment scores into events and state transitions
type Reactor struct {
	cfg   ReactorConfig
	clock clockwork.Clock
}

// NewReactor creates a reactor; clock supplies wall time for pause deadlines
func NewReactor(cfg ReactorConfig, clock clockwork.Clock) *Reactor {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Reactor{cfg: cfg, clock: clock}
}

// Config returns the reactor's tunables
func (r *Reactor) Config() ReactorConfig {
	return r.cfg
}

// Observe evaluates one tick and returns the next state plus the event, if one fired
// An expired pause re-arms before evaluation; an open pause suppresses it
func (r *Reactor) Observe(state State, frame int64, at time.Time, score float64) (State, *Event) {
	now := r.clock.Now()
	if state.Paused {
		if now.Before(state.PausedUntil) {
			return state, nil
		}
		state.Paused = false
		state.PausedUntil = time.Time{}
	}

	if score >= r.cfg.Threshold {
		return state, nil
	}

	ev := &Event{
		Frame:    frame,
		At:       at,
		Score:    score,
		Strategy: r.cfg.Strategy,
	}
	state.Last = ev
	state.Count++

	switch r.cfg.Strategy {
	case PauseOnAlign:
		state.Paused = true
		state.PausedUntil = now.Add(r.cfg.PauseInterval)
	case SkipOnAlign:
		state.SkipOffset += r.cfg.JumpInterval
	}
	return state, ev
}
