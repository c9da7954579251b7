package engine

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// PausableClock tracks suspension windows of tick delivery on a wall clock
// Owned by the driver goroutine; not safe for concurrent use
type PausableClock struct {
	clock clockwork.Clock

	// Current window
	pausedFrom time.Time
	resumeAt   time.Time

	// Completed windows
	pauses      int
	totalPaused time.Duration
}

// NewPausableClock creates a pausable clock on the given wall clock
func NewPausableClock(clock clockwork.Clock) *PausableClock {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &PausableClock{clock: clock}
}

// Clock returns the underlying wall clock
func (pc *PausableClock) Clock() clockwork.Clock {
	return pc.clock
}

// PauseUntil opens a suspension window ending at t, deadlines in the past are ignored
func (pc *PausableClock) PauseUntil(t time.Time) {
	now := pc.clock.Now()
	if !t.After(now) {
		return
	}
	pc.settle(now)
	pc.pausedFrom = now
	pc.resumeAt = t
	pc.pauses++
}

// IsPaused reports whether the current window is still open
func (pc *PausableClock) IsPaused() bool {
	return pc.clock.Now().Before(pc.resumeAt)
}

// ResumeAt returns the deadline of the latest window, zero if none was opened
func (pc *PausableClock) ResumeAt() time.Time {
	return pc.resumeAt
}

// Remaining returns the time left in the current window, 0 if not paused
func (pc *PausableClock) Remaining() time.Duration {
	r := pc.resumeAt.Sub(pc.clock.Now())
	if r < 0 {
		return 0
	}
	return r
}

// Count returns the number of windows opened
func (pc *PausableClock) Count() int {
	return pc.pauses
}

// TotalPaused returns cumulative suspended time, including the open window so far
func (pc *PausableClock) TotalPaused() time.Duration {
	total := pc.totalPaused
	if !pc.resumeAt.IsZero() {
		end := pc.clock.Now()
		if pc.resumeAt.Before(end) {
			end = pc.resumeAt
		}
		total += end.Sub(pc.pausedFrom)
	}
	return total
}

// settle folds an expired window into the total
func (pc *PausableClock) settle(now time.Time) {
	if pc.resumeAt.IsZero() || now.Before(pc.resumeAt) {
		return
	}
	pc.totalPaused += pc.resumeAt.Sub(pc.pausedFrom)
	pc.pausedFrom = time.Time{}
	pc.resumeAt = time.Time{}
}
