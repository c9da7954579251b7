package engine

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/lixenwraith/vi-clock/core"
)

// Driver owns the frame loop: it numbers frames, calls the core once per tick and hands
// results to the frame callback. A tick that opens a pause window stops the ticker until
// the window's deadline; the core never blocks
type Driver struct {
	core     *core.Core
	pause    *PausableClock
	interval time.Duration
	onFrame  func(core.Frame)

	frame   int64
	last    core.Frame
	hasLast bool

	refresh chan struct{}
}

// NewDriver creates a driver ticking every interval on clock
func NewDriver(c *core.Core, clock clockwork.Clock, interval time.Duration, onFrame func(core.Frame)) *Driver {
	if onFrame == nil {
		onFrame = func(core.Frame) {}
	}
	return &Driver{
		core:     c,
		pause:    NewPausableClock(clock),
		interval: interval,
		onFrame:  onFrame,
		refresh:  make(chan struct{}, 1),
	}
}

// Pauses exposes the suspension tracker
func (d *Driver) Pauses() *PausableClock {
	return d.pause
}

// NextFrame returns the index the next delivered tick will carry
func (d *Driver) NextFrame() int64 {
	return d.frame
}

// Last returns the most recently delivered frame
func (d *Driver) Last() (core.Frame, bool) {
	return d.last, d.hasLast
}

// Tick delivers one frame to the core unless tick delivery is suspended
// Frames are numbered consecutively; suspended ticks do not consume an index
func (d *Driver) Tick() (core.Frame, bool) {
	if d.pause.IsPaused() {
		return core.Frame{}, false
	}

	f := d.core.OnTick(d.frame)
	d.frame++
	if !f.ResumeAt.IsZero() {
		d.pause.PauseUntil(f.ResumeAt)
	}
	d.last, d.hasLast = f, true
	return f, true
}

// Refresh requests a redraw of the last frame, also honored while suspended
// Safe to call from any goroutine
func (d *Driver) Refresh() {
	select {
	case d.refresh <- struct{}{}:
	default:
	}
}

// Run ticks until ctx is done, returning ctx.Err()
func (d *Driver) Run(ctx context.Context) error {
	clock := d.pause.Clock()
	ticker := clock.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-d.refresh:
			d.redraw()

		case <-ticker.Chan():
			f, ok := d.Tick()
			if !ok {
				continue
			}
			if f.ResumeAt.IsZero() {
				d.onFrame(f)
				continue
			}

			// Ticker off and deadline armed before the frame goes out
			stopAndDrainTicker(ticker)
			timer := clock.NewTimer(d.pause.Remaining())
			d.onFrame(f)

			err := d.hold(ctx, timer)
			timer.Stop()
			if err != nil {
				return err
			}
			ticker.Reset(d.interval)
		}
	}
}

// hold waits out a pause window, still serving redraw requests
func (d *Driver) hold(ctx context.Context, timer clockwork.Timer) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.refresh:
			d.redraw()
		case <-timer.Chan():
			return nil
		}
	}
}

// redraw repeats the last frame without its event so callbacks do not record it twice
func (d *Driver) redraw() {
	if !d.hasLast {
		return
	}
	f := d.last
	f.Event = nil
	f.ResumeAt = time.Time{}
	d.onFrame(f)
}

// stopAndDrainTicker stops the ticker and drops a tick already buffered
func stopAndDrainTicker(t clockwork.Ticker) {
	t.Stop()
	select {
	case <-t.Chan():
	default:
	}
}
