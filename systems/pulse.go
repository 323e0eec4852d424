package systems

import (
	"github.com/automoto/trajectory/components"
	cfg "github.com/automoto/trajectory/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const (
	pulseMin    = 0.85
	pulseMax    = 1.0
	pulsePeriod = 0.6 // seconds per half cycle
)

// UpdatePulse breathes the turn marker between pulseMin and pulseMax.
func UpdatePulse(e *ecs.ECS) {
	p := getOrCreatePulse(e)
	scale, done := p.Tween.Update(1 / float32(cfg.C.TPS))
	p.Scale = scale
	if done {
		p.Growing = !p.Growing
		p.Tween = newPulseTween(p.Growing)
	}
}

func newPulseTween(growing bool) *gween.Tween {
	if growing {
		return gween.New(pulseMin, pulseMax, pulsePeriod, ease.InOutSine)
	}
	return gween.New(pulseMax, pulseMin, pulsePeriod, ease.InOutSine)
}

func getOrCreatePulse(e *ecs.ECS) *components.PulseData {
	entry, ok := components.Pulse.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pulse))
		components.Pulse.SetValue(entry, components.PulseData{
			Tween: newPulseTween(false),
			Scale: pulseMax,
		})
	}
	return components.Pulse.Get(entry)
}

// pulseScale returns the current marker scale, or 1 when no pulse runs.
func pulseScale(e *ecs.ECS) float64 {
	entry, ok := components.Pulse.First(e.World)
	if !ok {
		return 1
	}
	return float64(components.Pulse.Get(entry).Scale)
}
