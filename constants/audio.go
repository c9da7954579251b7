package constants

import "time"

// Chime Sound Timing
const (
	ChimeDuration = 900 * time.Millisecond
	ChimeAttack   = 5 * time.Millisecond
	ChimeRelease  = 700 * time.Millisecond
)

// Chime partials: fundamental and a bell-like overtone
const (
	ChimeFundamentalHz = 880.0
	ChimeOvertoneHz    = 2217.0
	ChimeOvertoneGain  = 0.35
	ChimeVolume        = -1.0
)

// SpeakerBuffer is the speaker buffer length
const SpeakerBuffer = 100 * time.Millisecond
