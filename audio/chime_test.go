package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestBellGeneratorRange verifies samples stay within [-1, 1]
func TestBellGeneratorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	bell := NewBellGenerator(rate, 200*time.Millisecond)

	samples := make([][2]float64, 512)
	total := 0
	for {
		n, ok := bell.Stream(samples)
		for i := 0; i < n; i++ {
			if math.Abs(samples[i][0]) > 1.0 || samples[i][0] != samples[i][1] {
				t.Fatalf("Sample %d out of range or not mono: %v", total+i, samples[i])
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if want := rate.N(200 * time.Millisecond); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
	if bell.Err() != nil {
		t.Errorf("Expected no error, got: %v", bell.Err())
	}
}

// TestBellGeneratorDecays verifies the tail is quieter than the strike
func TestBellGeneratorDecays(t *testing.T) {
	rate := beep.SampleRate(44100)
	bell := NewBellGenerator(rate, 900*time.Millisecond)

	samples := make([][2]float64, rate.N(900*time.Millisecond))
	n, _ := bell.Stream(samples)

	peak := func(from, to int) float64 {
		p := 0.0
		for i := from; i < to && i < n; i++ {
			p = math.Max(p, math.Abs(samples[i][0]))
		}
		return p
	}

	head := peak(0, rate.N(50*time.Millisecond))
	tail := peak(n-rate.N(50*time.Millisecond), n)
	if tail >= head/4 {
		t.Errorf("Expected decayed tail, head peak %v, tail peak %v", head, tail)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample under the attack ramp, got %v", samples[0][0])
	}
}

// TestChimePlayWithoutSpeaker verifies an uninitialized chime is a silent no-op
func TestChimePlayWithoutSpeaker(t *testing.T) {
	c := NewChime()
	if c.Enabled() {
		t.Fatal("Expected new chime to be disabled")
	}
	c.Play()
	c.Close()
}
