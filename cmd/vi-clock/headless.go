package main

import (
	"context"
	"io"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/vi-clock/config"
	"github.com/lixenwraith/vi-clock/engine"
)

// runHeadless replays frames ticks on a fake wall clock and prints one line per event to out
func runHeadless(ctx context.Context, cfg config.Config, frames int64, out io.Writer) error {
	fc := clockwork.NewFakeClock()
	c, err := newCore(cfg, time.Now(), fc)
	if err != nil {
		return err
	}

	sink := &eventSink{out: out}
	driver := engine.NewDriver(c, fc, cfg.TickInterval, sink.record)

	if err := engine.Replay(ctx, driver, fc, frames); err != nil {
		return err
	}

	last, _ := driver.Last()
	log.Info().
		Int64("frames", driver.NextFrame()).
		Int("events", c.State().Count).
		Int64("skip_offset", c.State().SkipOffset).
		Dur("paused", driver.Pauses().TotalPaused()).
		Time("sim_end", last.Time).
		Msg("replay finished")
	return nil
}
