package components

import (
	cfg "github.com/automoto/trajectory/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SessionData mirrors the round state the renderers need each frame.
type SessionData struct {
	Variant     cfg.VariantID
	RoundID     string
	Turn        int
	VInitMax    float64
	Shots       int
	Escalations int
	ShowRange   bool
	LastError   string
}

var Session = donburi.NewComponentType[SessionData]()

// TransitionData runs the fade played after a hit. Input is ignored while
// it is active.
type TransitionData struct {
	Tween  *gween.Tween
	Alpha  float32
	Active bool
}

var Transition = donburi.NewComponentType[TransitionData]()

// PulseData drives the breathing turn marker.
type PulseData struct {
	Tween   *gween.Tween
	Scale   float32
	Growing bool
}

var Pulse = donburi.NewComponentType[PulseData]()
