package core

import (
	"github.com/automoto/trajectory/components"
	"github.com/automoto/trajectory/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// Collider answers the narrow-phase questions the termination policy asks.
type Collider interface {
	// ShooterAt returns the lowest index of a shooter whose disc contains pos.
	ShooterAt(pos dmath.Vec2) (int, bool)
	// SourceAt reports whether pos lies inside any gravity source, active or not.
	SourceAt(pos dmath.Vec2) bool
}

// Bounds is the playable rectangle [0,Width) x [0,Height).
type Bounds struct {
	Width, Height float64
}

func (b Bounds) Contains(p dmath.Vec2) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.Width && p.Y < b.Height
}

// TerminationPolicy decides when a projectile stops flying.
type TerminationPolicy struct {
	Config config.TerminationConfig
	Bounds Bounds
}

// Evaluate returns the projectile's state after a step, checking hit,
// crash, bounds, exhaustion and stalling in that order. For a hit, the
// shooter index is returned too.
func (tp TerminationPolicy) Evaluate(p *components.ProjectileData, pos dmath.Vec2, c Collider) (config.ProjectileState, int) {
	if c != nil {
		if idx, ok := c.ShooterAt(pos); ok {
			return config.StateHit, idx
		}
		if c.SourceAt(pos) {
			return config.StateCrashed, -1
		}
	}
	if !tp.Bounds.Contains(pos) {
		return config.StateOutOfBounds, -1
	}
	if p.Steps > tp.Config.MaxSteps {
		return config.StateExhausted, -1
	}
	if tp.stalled(p) {
		return config.StateStalled, -1
	}
	return config.StateFlying, -1
}

func (tp TerminationPolicy) stalled(p *components.ProjectileData) bool {
	if tp.Config.MinSpeed > 0 && p.Velocity.Magnitude() < tp.Config.MinSpeed {
		return true
	}
	if p.Trail == nil {
		return false
	}
	n := p.Trail.Len()
	last := p.Trail.Last()
	for _, w := range tp.Config.StallWindows {
		if w.Points <= 0 || n <= w.Points {
			continue
		}
		if p.Trail.At(n-w.Points).Distance(last) < w.MinDistance {
			return true
		}
	}
	return false
}
