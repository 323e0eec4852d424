package core

import (
	"github.com/automoto/trajectory/components"
	"github.com/automoto/trajectory/config"
	"github.com/automoto/trajectory/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Integrator advances projectiles one tick through a force field.
//
// The per-tick displacement is v*dt + a*dt^2/2, where v is the stored launch
// velocity. Friction scales the displacement, boosting rescales the stored
// velocity when the displacement gets too short, and VMin floors the
// displacement length.
type Integrator struct {
	Field ForceField
	Dt    float64

	Friction        float64 // 0 disables
	BoostFactor     float64
	BoostThresholds []float64
	VMin            float64 // 0 disables
}

// NewIntegrator configures an integrator for a variant.
func NewIntegrator(field ForceField, cfg config.VariantConfig, dt float64) *Integrator {
	in := &Integrator{Field: field, Dt: dt}
	switch cfg.ID {
	case config.VariantGolf:
		in.Friction = cfg.Terrain.Friction
		in.BoostFactor = cfg.Terrain.BoostFactor
		in.BoostThresholds = cfg.Terrain.BoostThresholds
	case config.VariantSlingshot:
		in.VMin = cfg.Gravity.VMin
	}
	return in
}

// Step moves the projectile at pos, records the new position in its trail
// and returns it. The field is sampled once per step.
func (in *Integrator) Step(pos dmath.Vec2, p *components.ProjectileData) dmath.Vec2 {
	a := in.Field.Acceleration(pos)
	disp := in.displacement(p.Velocity, a)

	if in.Friction > 0 {
		speed := disp.Magnitude()
		boosted := false
		for _, th := range in.BoostThresholds {
			if speed <= th {
				p.Velocity = p.Velocity.MulScalar(in.BoostFactor)
				boosted = true
			}
		}
		if boosted {
			disp = in.displacement(p.Velocity, a)
		}
	}
	if in.VMin > 0 {
		disp = gamemath.FloorMagnitude(disp, in.VMin)
	}

	next := pos.Add(disp)
	p.Trail.Append(next)
	p.Steps++
	return next
}

func (in *Integrator) displacement(v, a dmath.Vec2) dmath.Vec2 {
	d := v.MulScalar(in.Dt).Add(a.MulScalar(in.Dt * in.Dt / 2))
	if in.Friction > 0 {
		d = d.MulScalar(in.Friction)
	}
	return d
}
