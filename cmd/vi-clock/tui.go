package main

import (
	"context"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/vi-clock/audio"
	"github.com/lixenwraith/vi-clock/config"
	"github.com/lixenwraith/vi-clock/core"
	"github.com/lixenwraith/vi-clock/engine"
	"github.com/lixenwraith/vi-clock/render"
)

// runTUI animates the clock until the user quits or ctx is done
// Event lines are printed to out once the screen is released
func runTUI(ctx context.Context, cfg config.Config, out io.Writer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	sink := &eventSink{}
	if cfg.Audio {
		chime := audio.NewChime()
		if err := chime.Initialize(); err != nil {
			// Non-fatal, the clock runs silent
			log.Warn().Err(err).Msg("audio initialization failed")
		} else {
			sink.chime = chime
			defer chime.Close()
		}
	}

	wall := clockwork.NewRealClock()
	c, err := newCore(cfg, wall.Now(), wall)
	if err != nil {
		screen.Fini()
		return err
	}

	renderer := render.NewFaceRenderer(screen, cfg.Strategy)
	driver := engine.NewDriver(c, wall, cfg.TickInterval, func(f core.Frame) {
		sink.record(f)
		renderer.Render(f)
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	core.Go(func() { pollInput(screen, driver, cancel) })

	runErr := driver.Run(ctx)

	core.SetCrashScreen(nil)
	screen.Fini()
	sink.flush(out)

	p := driver.Pauses()
	log.Info().
		Int64("frames", driver.NextFrame()).
		Int("events", c.State().Count).
		Int("pauses", p.Count()).
		Dur("paused", p.TotalPaused()).
		Msg("clock stopped")
	return runErr
}

// pollInput forwards quit keys and resizes until the screen is finalized
func pollInput(screen tcell.Screen, driver *engine.Driver, quit context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if isQuit(ev) {
				quit()
				return
			}
		case *tcell.EventResize:
			screen.Sync()
			driver.Refresh()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
