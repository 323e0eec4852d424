package main

import (
	"log"

	cfg "github.com/automoto/trajectory/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// sounds plays the short sine cues. It is a no-op when no speaker is
// available.
type sounds struct {
	rate    beep.SampleRate
	enabled bool
}

func newSounds(mute bool) *sounds {
	s := &sounds{rate: beep.SampleRate(cfg.Audio.SampleRate)}
	if mute {
		return s
	}
	if err := speaker.Init(s.rate, s.rate.N(cfg.Audio.BufferSize)); err != nil {
		// Non-fatal, the game runs without sound
		log.Printf("Audio initialization failed: %v", err)
		return s
	}
	s.enabled = true
	return s
}

func (s *sounds) play(id cfg.SoundID) {
	if !s.enabled {
		return
	}
	tone, ok := cfg.Audio.Tones[id]
	if !ok {
		return
	}
	sine, err := generators.SineTone(s.rate, tone.Frequency)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(s.rate.N(tone.Duration), sine))
}

func (s *sounds) close() {
	if s.enabled {
		speaker.Close()
	}
}
