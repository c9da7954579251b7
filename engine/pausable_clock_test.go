package engine

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestPausableClockWindow(t *testing.T) {
	fc := clockwork.NewFakeClockAt(wall)
	pc := NewPausableClock(fc)

	if pc.IsPaused() {
		t.Fatal("Expected a fresh clock not to be paused")
	}

	pc.PauseUntil(wall.Add(5 * time.Second))
	if !pc.IsPaused() {
		t.Fatal("Expected clock to be paused")
	}
	if pc.Remaining() != 5*time.Second {
		t.Errorf("Expected 5s remaining, got %v", pc.Remaining())
	}

	fc.Advance(2 * time.Second)
	if got := pc.TotalPaused(); got != 2*time.Second {
		t.Errorf("Expected 2s paused so far, got %v", got)
	}

	fc.Advance(4 * time.Second)
	if pc.IsPaused() {
		t.Error("Expected window to have closed")
	}
	if pc.Remaining() != 0 {
		t.Errorf("Expected no time remaining, got %v", pc.Remaining())
	}
	if got := pc.TotalPaused(); got != 5*time.Second {
		t.Errorf("Expected total capped at the window length, got %v", got)
	}

	pc.PauseUntil(fc.Now().Add(time.Second))
	fc.Advance(time.Second)
	if pc.Count() != 2 {
		t.Errorf("Expected 2 windows, got %d", pc.Count())
	}
	if got := pc.TotalPaused(); got != 6*time.Second {
		t.Errorf("Expected 6s total, got %v", got)
	}
}

func TestPausableClockIgnoresPastDeadline(t *testing.T) {
	fc := clockwork.NewFakeClockAt(wall)
	pc := NewPausableClock(fc)

	pc.PauseUntil(wall.Add(-time.Second))
	pc.PauseUntil(wall)
	if pc.IsPaused() || pc.Count() != 0 {
		t.Errorf("Expected no window for past deadlines, count %d", pc.Count())
	}
}
