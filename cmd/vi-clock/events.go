package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/vi-clock/audio"
	"github.com/lixenwraith/vi-clock/core"
)

// eventSink reports detected alignments: one console line each, a log entry and a chime
// With a nil out the lines are held until flush, since the screen owns stdout
type eventSink struct {
	out   io.Writer
	lines []string
	chime *audio.Chime
}

func (s *eventSink) record(f core.Frame) {
	ev := f.Event
	if ev == nil {
		return
	}
	line := ev.String()

	log.Info().
		Str("label", ev.Label()).
		Time("at", ev.At).
		Float64("score", ev.Score).
		Int64("frame", ev.Frame).
		Int("count", f.Count).
		Time("resume_at", f.ResumeAt).
		Msg(line)

	if s.out != nil {
		fmt.Fprintln(s.out, line)
	} else {
		s.lines = append(s.lines, line)
	}
	if s.chime != nil {
		s.chime.Play()
	}
}

// flush writes held lines to w
func (s *eventSink) flush(w io.Writer) {
	for _, line := range s.lines {
		fmt.Fprintln(w, line)
	}
	s.lines = nil
}
