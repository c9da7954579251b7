package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-clock/core"
)

var (
	midnight = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	wall     = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
)

const tick = 100 * time.Millisecond

func newPauseCore(fc clockwork.Clock) *core.Core {
	return core.NewCore(core.NewSimClock(midnight, 3.0), core.NewReactor(core.ReactorConfig{
		Strategy:      core.PauseOnAlign,
		Threshold:     0.00125,
		PauseInterval: 5 * time.Second,
	}, fc))
}

func newSkipCore(fc clockwork.Clock) *core.Core {
	return core.NewCore(core.NewSimClock(midnight, 3.0), core.NewReactor(core.ReactorConfig{
		Strategy:     core.SkipOnAlign,
		Threshold:    0.0025,
		JumpInterval: 13000,
	}, fc))
}

func TestDriverTickSuspendsDuringPause(t *testing.T) {
	fc := clockwork.NewFakeClockAt(wall)
	d := NewDriver(newPauseCore(fc), fc, tick, nil)

	f, ok := d.Tick()
	require.True(t, ok)
	require.NotNil(t, f.Event, "midnight is an alignment")
	assert.Equal(t, wall.Add(5*time.Second), f.ResumeAt)

	// No frames are processed anywhere inside the window
	for elapsed := tick; elapsed < 5*time.Second; elapsed += tick {
		fc.Advance(tick)
		_, ok := d.Tick()
		require.False(t, ok, "tick delivered %v into the pause", elapsed)
	}
	assert.Equal(t, int64(1), d.NextFrame(), "suspended ticks must not consume frame indices")

	fc.Advance(tick)
	f, ok = d.Tick()
	require.True(t, ok)
	assert.Equal(t, int64(1), f.Index)
	assert.Equal(t, midnight.Add(300*time.Millisecond), f.Time, "ticking resumes where it left off")
	assert.Equal(t, 2, d.Pauses().Count(), "00:00:00.3 still aligns and pauses again")
}

func TestDriverRunHoldsTickerForPause(t *testing.T) {
	fc := clockwork.NewFakeClockAt(wall)
	frames := make(chan core.Frame, 8)
	d := NewDriver(newPauseCore(fc), fc, tick, func(f core.Frame) { frames <- f })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	require.NoError(t, fc.BlockUntilContext(ctx, 1), "ticker")
	fc.Advance(tick)

	f := receive(t, frames)
	require.Equal(t, int64(0), f.Index)
	require.Equal(t, wall.Add(tick+5*time.Second), f.ResumeAt)

	// Redraw requests are served while suspended
	d.Refresh()
	redraw := receive(t, frames)
	assert.Equal(t, int64(0), redraw.Index)
	assert.Nil(t, redraw.Event, "redraws must not repeat the event")

	fc.Advance(5*time.Second - time.Millisecond)
	select {
	case f := <-frames:
		t.Fatalf("Frame %d delivered inside the pause window", f.Index)
	default:
	}

	fc.Advance(time.Millisecond)
	require.NoError(t, fc.BlockUntilContext(ctx, 1), "ticker after resume")
	fc.Advance(tick)

	f = receive(t, frames)
	assert.Equal(t, int64(1), f.Index)
	assert.Equal(t, midnight.Add(300*time.Millisecond), f.Time)

	cancel()
	err := <-done
	assert.True(t, errors.Is(err, context.Canceled), "expected context.Canceled, got %v", err)
}

func TestDriverRunSkipNeverSuspends(t *testing.T) {
	fc := clockwork.NewFakeClockAt(wall)
	frames := make(chan core.Frame, 8)
	d := NewDriver(newSkipCore(fc), fc, tick, func(f core.Frame) { frames <- f })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	go func() { _ = d.Run(ctx) }()

	require.NoError(t, fc.BlockUntilContext(ctx, 1))
	fc.Advance(tick)
	first := receive(t, frames)
	require.NotNil(t, first.Event)
	assert.True(t, first.ResumeAt.IsZero())

	fc.Advance(tick)
	second := receive(t, frames)
	assert.Equal(t, int64(1), second.Index)
	assert.Equal(t, midnight.Add(65*time.Minute+300*time.Millisecond), second.Time, "jump applied on the next tick")
	assert.Nil(t, second.Event)
}

func receive(t *testing.T, frames <-chan core.Frame) core.Frame {
	t.Helper()
	select {
	case f := <-frames:
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for a frame")
		return core.Frame{}
	}
}
