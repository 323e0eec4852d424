package config

import "time"

// SoundID represents a logical sound cue
type SoundID int

const (
	SoundNone SoundID = iota
	SoundFire
	SoundHit
	SoundEscalate
)

// Tone is a short synthesized cue.
type Tone struct {
	Frequency float64
	Duration  time.Duration
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	BufferSize time.Duration
	Tones      map[SoundID]Tone
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		BufferSize: time.Second / 10,
		Tones: map[SoundID]Tone{
			SoundFire:     {Frequency: 440, Duration: 40 * time.Millisecond},
			SoundHit:      {Frequency: 880, Duration: 150 * time.Millisecond},
			SoundEscalate: {Frequency: 220, Duration: 120 * time.Millisecond},
		},
	}
}
