package core

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-clock/constants"
)

// Strategy selects how the reactor responds to an alignment
type Strategy uint8

const (
	// PauseOnAlign halts tick delivery for a fixed wall-clock interval
	PauseOnAlign Strategy = iota
	// SkipOnAlign jumps simulated time forward by a fixed frame offset
	SkipOnAlign
)

// ParseStrategy accepts "pause" or "skip", case-insensitive
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pause":
		return PauseOnAlign, nil
	case "skip":
		return SkipOnAlign, nil
	}
	return 0, fmt.Errorf("unknown strategy %q", s)
}

func (s Strategy) String() string {
	switch s {
	case PauseOnAlign:
		return "pause"
	case SkipOnAlign:
		return "skip"
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// Label is the event label shown on screen and in the console line
func (s Strategy) Label() string {
	if s == SkipOnAlign {
		return "Aligned at"
	}
	return "Paused at"
}

// DefaultThreshold returns the score threshold tuned for the strategy
func (s Strategy) DefaultThreshold() float64 {
	if s == SkipOnAlign {
		return constants.DefaultSkipThreshold
	}
	return constants.DefaultPauseThreshold
}

// UnmarshalText lets config decoders read strategy names
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText writes the strategy name
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
