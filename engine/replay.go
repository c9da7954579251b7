package engine

import (
	"context"

	"github.com/jonboulle/clockwork"
)

// Replay runs frames ticks on a fake wall clock as fast as the core allows
// The clock advances one tick interval per tick and jumps across pause windows,
// so wall-clock pauses cost no real time. d must have been created on fc
func Replay(ctx context.Context, d *Driver, fc *clockwork.FakeClock, frames int64) error {
	for d.NextFrame() < frames {
		if err := ctx.Err(); err != nil {
			return err
		}

		fc.Advance(d.interval)
		if d.pause.IsPaused() {
			fc.Advance(d.pause.Remaining())
		}

		if f, ok := d.Tick(); ok {
			d.onFrame(f)
		}
	}
	return nil
}
