package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-clock/config"
	"github.com/lixenwraith/vi-clock/core"
)

func TestRunHeadlessSkip(t *testing.T) {
	cfg := config.Default()
	cfg.Strategy = core.SkipOnAlign
	cfg.Start = config.StartMidnight
	require.NoError(t, cfg.Validate())

	var out bytes.Buffer
	require.NoError(t, runHeadless(context.Background(), cfg, 990, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "Aligned at: 00:00:00", lines[0])
	assert.Equal(t, "Aligned at: 01:05:05", lines[1])
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "Aligned at: "), line)
	}
}

func TestRunHeadlessPause(t *testing.T) {
	cfg := config.Default()
	cfg.Start = "00:00:00"
	require.NoError(t, cfg.Validate())

	var out bytes.Buffer
	require.NoError(t, runHeadless(context.Background(), cfg, 10, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "Paused at: 00:00:00", lines[0])
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := runHeadless(ctx, config.Default(), 100, &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestEventSinkHoldsLinesWithoutWriter(t *testing.T) {
	sink := &eventSink{}
	at := time.Date(2024, 1, 1, 8, 43, 43, 600_000_000, time.UTC)
	sink.record(core.Frame{Event: &core.Event{At: at, Strategy: core.PauseOnAlign}, Count: 1})
	sink.record(core.Frame{})

	require.Len(t, sink.lines, 1)

	var out bytes.Buffer
	sink.flush(&out)
	assert.Equal(t, "Paused at: 08:43:44\n", out.String())
	assert.Empty(t, sink.lines)
}
