package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/lixenwraith/vi-clock/config"
	"github.com/lixenwraith/vi-clock/constants"
	"github.com/lixenwraith/vi-clock/core"
)

// options holds parsed command-line flags
type options struct {
	configPath string
	envFile    string
	headless   bool
	frames     int64
	debug      bool

	// overrides carries only the flags given explicitly
	overrides []func(*config.Config) error
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var (
		opts        options
		strategy    string
		start       string
		fastForward float64
		threshold   float64
		pause       time.Duration
		jump        int64
		tick        time.Duration
		noAudio     bool
	)

	fs := flag.NewFlagSet("vi-clock", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.StringVar(&opts.envFile, "env", ".env", "dotenv file with VICLOCK_* overrides")
	fs.BoolVar(&opts.headless, "headless", false, "replay without a screen, printing events to stdout")
	fs.Int64Var(&opts.frames, "frames", constants.HeadlessFrames, "frames to replay in headless mode")
	fs.BoolVar(&opts.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	fs.StringVar(&strategy, "strategy", "", "reaction to an alignment: pause or skip")
	fs.StringVar(&start, "start", "", "simulated start: now, midnight, HH:MM:SS or RFC3339")
	fs.Float64Var(&fastForward, "fast-forward", 0, "simulated time multiplier")
	fs.Float64Var(&threshold, "threshold", 0, "alignment score threshold")
	fs.DurationVar(&pause, "pause", 0, "pause length after an alignment (pause strategy)")
	fs.Int64Var(&jump, "jump", 0, "frames skipped after an alignment (skip strategy)")
	fs.DurationVar(&tick, "tick", 0, "wall-clock interval between frames")
	fs.BoolVar(&noAudio, "no-audio", false, "disable the alignment chime")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strategy":
			opts.overrides = append(opts.overrides, func(c *config.Config) error {
				s, err := core.ParseStrategy(strategy)
				if err != nil {
					return fmt.Errorf("%w: --strategy: %v", config.ErrInvalid, err)
				}
				c.Strategy = s
				return nil
			})
		case "start":
			opts.overrides = append(opts.overrides, func(c *config.Config) error { c.Start = start; return nil })
		case "fast-forward":
			opts.overrides = append(opts.overrides, func(c *config.Config) error { c.FastForward = fastForward; return nil })
		case "threshold":
			opts.overrides = append(opts.overrides, func(c *config.Config) error { c.Threshold = threshold; return nil })
		case "pause":
			opts.overrides = append(opts.overrides, func(c *config.Config) error { c.PauseInterval = pause; return nil })
		case "jump":
			opts.overrides = append(opts.overrides, func(c *config.Config) error { c.JumpInterval = jump; return nil })
		case "tick":
			opts.overrides = append(opts.overrides, func(c *config.Config) error { c.TickInterval = tick; return nil })
		case "no-audio":
			opts.overrides = append(opts.overrides, func(c *config.Config) error { c.Audio = !noAudio; return nil })
		}
	})
	return opts, nil
}

// loadConfig layers file, environment and flags, then validates
func loadConfig(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(opts.envFile); err != nil {
		return cfg, err
	}
	for _, apply := range opts.overrides {
		if err := apply(&cfg); err != nil {
			return cfg, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
