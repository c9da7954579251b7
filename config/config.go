// Package config resolves startup configuration from defaults, a YAML file,
// a .env file plus the process environment, and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-clock/constants"
	"github.com/lixenwraith/vi-clock/core"
)

// ErrInvalid wraps every configuration validation failure
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix prefixes every environment override
const EnvPrefix = "VICLOCK_"

// Start keywords
const (
	StartNow      = "now"
	StartMidnight = "midnight"
)

// Config holds every startup option
// Zero Threshold and empty Start resolve to the strategy's defaults
type Config struct {
	Strategy      core.Strategy `yaml:"strategy"`
	Start         string        `yaml:"start"`
	FastForward   float64       `yaml:"fast_forward"`
	Threshold     float64       `yaml:"threshold"`
	PauseInterval time.Duration `yaml:"pause_interval"`
	JumpInterval  int64         `yaml:"jump_interval"`
	TickInterval  time.Duration `yaml:"tick_interval"`
	Audio         bool          `yaml:"audio"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Strategy:      core.PauseOnAlign,
		FastForward:   constants.DefaultFastForward,
		PauseInterval: constants.DefaultPauseInterval,
		JumpInterval:  constants.DefaultJumpInterval,
		TickInterval:  constants.TickInterval,
		Audio:         true,
	}
}

// Load returns the defaults overlaid with the YAML file at path, if path is set
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv loads envFile into the environment, then applies VICLOCK_* overrides
// A missing envFile is not an error; variables already set win over the file
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if v, ok := lookup("STRATEGY"); ok {
		s, err := core.ParseStrategy(v)
		if err != nil {
			return fmt.Errorf("%w: %sSTRATEGY: %v", ErrInvalid, EnvPrefix, err)
		}
		c.Strategy = s
	}
	if v, ok := lookup("START"); ok {
		c.Start = v
	}
	if err := envFloat("FAST_FORWARD", &c.FastForward); err != nil {
		return err
	}
	if err := envFloat("THRESHOLD", &c.Threshold); err != nil {
		return err
	}
	if err := envDuration("PAUSE_INTERVAL", &c.PauseInterval); err != nil {
		return err
	}
	if v, ok := lookup("JUMP_INTERVAL"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sJUMP_INTERVAL: %v", ErrInvalid, EnvPrefix, err)
		}
		c.JumpInterval = n
	}
	if err := envDuration("TICK_INTERVAL", &c.TickInterval); err != nil {
		return err
	}
	if v, ok := lookup("AUDIO"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sAUDIO: %v", ErrInvalid, EnvPrefix, err)
		}
		c.Audio = b
	}
	return nil
}

// Validate checks ranges for the selected strategy
func (c Config) Validate() error {
	switch {
	case c.Strategy != core.PauseOnAlign && c.Strategy != core.SkipOnAlign:
		return fmt.Errorf("%w: unknown strategy %v", ErrInvalid, c.Strategy)
	case !(c.FastForward > 0):
		return fmt.Errorf("%w: fast_forward must be positive, got %v", ErrInvalid, c.FastForward)
	case c.Threshold < 0:
		return fmt.Errorf("%w: threshold must not be negative, got %v", ErrInvalid, c.Threshold)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick_interval must be positive, got %v", ErrInvalid, c.TickInterval)
	case c.Strategy == core.PauseOnAlign && c.PauseInterval <= 0:
		return fmt.Errorf("%w: pause_interval must be positive, got %v", ErrInvalid, c.PauseInterval)
	case c.Strategy == core.SkipOnAlign && c.JumpInterval <= 0:
		return fmt.Errorf("%w: jump_interval must be positive, got %d", ErrInvalid, c.JumpInterval)
	}
	if _, err := c.StartTime(time.Now()); err != nil {
		return err
	}
	return nil
}

// EffectiveThreshold returns Threshold, or the strategy default when unset
func (c Config) EffectiveThreshold() float64 {
	if c.Threshold > 0 {
		return c.Threshold
	}
	return c.Strategy.DefaultThreshold()
}

// StartTime resolves Start against now
// Empty means now for pause and midnight for skip; HH:MM:SS is taken on now's date
func (c Config) StartTime(now time.Time) (time.Time, error) {
	start := strings.ToLower(strings.TrimSpace(c.Start))
	if start == "" {
		start = StartNow
		if c.Strategy == core.SkipOnAlign {
			start = StartMidnight
		}
	}

	switch start {
	case StartNow:
		return now, nil
	case StartMidnight:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), nil
	}

	if t, err := time.ParseInLocation(constants.TimeLayout, start, now.Location()); err == nil {
		y, m, d := now.Date()
		return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, now.Location()), nil
	}
	if t, err := time.Parse(time.RFC3339, c.Start); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: start %q is not now, midnight, HH:MM:SS or RFC3339", ErrInvalid, c.Start)
}

// ReactorConfig returns the reactor tunables
func (c Config) ReactorConfig() core.ReactorConfig {
	return core.ReactorConfig{
		Strategy:      c.Strategy,
		Threshold:     c.EffectiveThreshold(),
		PauseInterval: c.PauseInterval,
		JumpInterval:  c.JumpInterval,
	}
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func envFloat(key string, dst *float64) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%w: %s%s: %v", ErrInvalid, EnvPrefix, key, err)
	}
	*dst = f
	return nil
}

func envDuration(key string, dst *time.Duration) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%w: %s%s: %v", ErrInvalid, EnvPrefix, key, err)
	}
	*dst = d
	return nil
}
