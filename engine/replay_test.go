package engine

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-clock/core"
)

func TestReplaySkipTwelveHours(t *testing.T) {
	fc := clockwork.NewFakeClockAt(wall)
	var events []*core.Event
	d := NewDriver(newSkipCore(fc), fc, tick, func(f core.Frame) {
		if f.Event != nil {
			events = append(events, f.Event)
		}
	})

	// Jumps cover most of the 12 hours; 990 ticks reach the 10:54:55 alignment
	require.NoError(t, Replay(context.Background(), d, fc, 990))

	require.GreaterOrEqual(t, len(events), 11)
	require.LessOrEqual(t, len(events), 12)
	assert.Equal(t, "Aligned at: 00:00:00", events[0].String())
	assert.Equal(t, "Aligned at: 01:05:05", events[1].String())
	assert.Zero(t, d.Pauses().Count(), "skip never suspends ticks")
}

func TestReplayPauseCostsNoRealTime(t *testing.T) {
	fc := clockwork.NewFakeClockAt(wall)
	var events int
	d := NewDriver(newPauseCore(fc), fc, tick, func(f core.Frame) {
		if f.Event != nil {
			events++
		}
	})

	start := time.Now()
	require.NoError(t, Replay(context.Background(), d, fc, 20000))
	assert.Less(t, time.Since(start), 5*time.Second)

	assert.Equal(t, events, d.Pauses().Count(), "one suspension per event")
	assert.Equal(t, time.Duration(events)*5*time.Second, d.Pauses().TotalPaused())
	assert.Equal(t, int64(20000), d.NextFrame())
}

func TestReplayHonorsCancel(t *testing.T) {
	fc := clockwork.NewFakeClockAt(wall)
	d := NewDriver(newSkipCore(fc), fc, tick, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Replay(ctx, d, fc, 10), context.Canceled)
}
