package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/vi-clock/config"
	"github.com/lixenwraith/vi-clock/core"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseFlags(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-clock: %v\n", err)
		return 2
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-clock: %v\n", err)
		return 1
	}

	log.Info().
		Str("strategy", cfg.Strategy.String()).
		Float64("fast_forward", cfg.FastForward).
		Float64("threshold", cfg.EffectiveThreshold()).
		Dur("pause_interval", cfg.PauseInterval).
		Int64("jump_interval", cfg.JumpInterval).
		Dur("tick_interval", cfg.TickInterval).
		Bool("headless", opts.headless).
		Msg("starting clock")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.headless {
		err = runHeadless(ctx, cfg, opts.frames, os.Stdout)
	} else {
		err = runTUI(ctx, cfg, os.Stdout)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("clock stopped")
		fmt.Fprintf(os.Stderr, "vi-clock: %v\n", err)
		return 1
	}
	return 0
}

// newCore builds the simulation; start resolves against now, pause deadlines use wall
func newCore(cfg config.Config, now time.Time, wall clockwork.Clock) (*core.Core, error) {
	start, err := cfg.StartTime(now)
	if err != nil {
		return nil, err
	}
	sim := core.NewSimClock(start, cfg.FastForward)
	return core.NewCore(sim, core.NewReactor(cfg.ReactorConfig(), wall)), nil
}
