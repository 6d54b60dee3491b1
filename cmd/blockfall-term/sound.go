package main

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/plus3/blockfall/engine"
)

const sampleRate = beep.SampleRate(44100)

// sounds plays short tones for progression events.
type sounds struct {
	rate beep.SampleRate
}

func newSounds() (*sounds, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &sounds{rate: sampleRate}, nil
}

type note struct {
	freq float64
	dur  time.Duration
}

// melody returns the notes for an event, or nil for silent events.
func melody(e engine.Event) []note {
	switch e.Kind {
	case engine.EventLocked:
		if e.Rows == 0 {
			return []note{{220, 30 * time.Millisecond}}
		}
	case engine.EventCleared:
		notes := make([]note, 0, e.Rows)
		for i := range e.Rows {
			notes = append(notes, note{523.25 * float64(i+2) / 2, 60 * time.Millisecond})
		}
		return notes
	case engine.EventLevelUp:
		return []note{{659.25, 80 * time.Millisecond}, {880, 120 * time.Millisecond}}
	case engine.EventGameOver:
		return []note{{392, 150 * time.Millisecond}, {330, 150 * time.Millisecond}, {262, 300 * time.Millisecond}}
	}
	return nil
}

func (s *sounds) stream(notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(s.rate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(s.rate.N(n.dur), tone))
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: -2}, nil
}

func (s *sounds) play(e engine.Event) {
	notes := melody(e)
	if len(notes) == 0 {
		return
	}
	st, err := s.stream(notes)
	if err != nil {
		return
	}
	speaker.Play(st)
}
