package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-clock/constants"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Chime plays a bell each time the hands align
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewChime creates a silent chime; call Initialize to open the speaker
func NewChime() *Chime {
	return &Chime{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker and starts the mixer
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.SpeakerBuffer)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Enabled reports whether the speaker is open
func (c *Chime) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// Play rings the bell once; no-op before Initialize
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	bell := &effects.Volume{
		Streamer: NewBellGenerator(sampleRate, constants.ChimeDuration),
		Base:     2,
		Volume:   constants.ChimeVolume,
	}

	speaker.Lock()
	c.mixer.Add(bell)
	speaker.Unlock()
}

// Close silences the mixer
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()

	c.initialized = false
}

// BellGenerator generates a struck bell: fundamental plus overtone under an attack/exponential release
type BellGenerator struct {
	sr      beep.SampleRate
	pos     int
	total   int
	attack  int
	release float64
}

// NewBellGenerator creates a bell lasting duration
func NewBellGenerator(sr beep.SampleRate, duration time.Duration) *BellGenerator {
	return &BellGenerator{
		sr:      sr,
		total:   sr.N(duration),
		attack:  max(1, sr.N(constants.ChimeAttack)),
		release: constants.ChimeRelease.Seconds(),
	}
}

func (g *BellGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}

		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 5 / g.release)
		if g.pos < g.attack {
			envelope *= float64(g.pos) / float64(g.attack)
		}

		sample := math.Sin(2*math.Pi*constants.ChimeFundamentalHz*t) +
			constants.ChimeOvertoneGain*math.Sin(2*math.Pi*constants.ChimeOvertoneHz*t)
		sample *= envelope / (1 + constants.ChimeOvertoneGain)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BellGenerator) Err() error {
	return nil
}
