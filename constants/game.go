package constants

import "time"

// Simulation Loop Timing Constants
const (
	// TickInterval is the wall-clock interval between simulation frames
	TickInterval = 100 * time.Millisecond

	// FrameSeconds is the simulated seconds one frame advances at fast-forward 1.0
	FrameSeconds = 0.1
)

// Simulation Defaults
const (
	// DefaultFastForward multiplies simulated time per frame
	DefaultFastForward = 3.0

	// DefaultPauseThreshold is the alignment score below which the pause strategy triggers
	DefaultPauseThreshold = 0.00125

	// DefaultSkipThreshold is looser; the skip strategy only needs proximity before jumping away
	DefaultSkipThreshold = 0.00250

	// DefaultPauseInterval is how long tick delivery halts after an alignment
	DefaultPauseInterval = 5 * time.Second

	// DefaultJumpInterval is the frame offset added after each alignment in skip mode
	// 13000 frames at 3x is 65 simulated minutes, just short of the ~65.45 minute alignment period
	DefaultJumpInterval = 13000

	// HeadlessFrames is the default replay length: 12 simulated hours at 3x
	HeadlessFrames = 144000
)
