package core

import (
	"fmt"

	"github.com/automoto/trajectory/config"
	"github.com/automoto/trajectory/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// FanSize is the number of projectiles spawned per shot.
const FanSize = 9

// InvalidAimError reports an aim vector that has no usable direction.
type InvalidAimError struct {
	From   dmath.Vec2
	Target dmath.Vec2
	Reason string
}

func (e *InvalidAimError) Error() string {
	return fmt.Sprintf("invalid aim from (%g, %g) to (%g, %g): %s",
		e.From.X, e.From.Y, e.Target.X, e.Target.Y, e.Reason)
}

// Shot is the launch state of one projectile in a fan.
type Shot struct {
	Position dmath.Vec2
	Velocity dmath.Vec2
}

// ExpandFan turns one aim into a 3x3 grid of launches around it. Every aim
// is divided by the fan divisor and clamped to vInitMax; projectiles start
// just outside the shooter's rim. Nothing is returned when any aim is
// degenerate.
func ExpandFan(shooter dmath.Vec2, radius float64, target dmath.Vec2, fan config.FanConfig, vInitMax float64) ([]Shot, error) {
	if !gamemath.Finite(shooter) || !gamemath.Finite(target) {
		return nil, &InvalidAimError{From: shooter, Target: target, Reason: "non-finite coordinates"}
	}
	base := target.Sub(shooter)
	if base.X == 0 && base.Y == 0 {
		return nil, &InvalidAimError{From: shooter, Target: target, Reason: "target is the shooter"}
	}
	if fan.Divisor <= 0 {
		return nil, &InvalidAimError{From: shooter, Target: target, Reason: "non-positive fan divisor"}
	}

	offsets := [3]float64{-fan.Spread, 0, fan.Spread}
	shots := make([]Shot, 0, FanSize)
	for _, i := range offsets {
		for _, j := range offsets {
			aim := dmath.Vec2{X: base.X + i, Y: base.Y + j}
			if aim.Magnitude() == 0 || !gamemath.Finite(aim) {
				return nil, &InvalidAimError{From: shooter, Target: target, Reason: "fan offset cancels the aim"}
			}
			shots = append(shots, Shot{
				Position: gamemath.OnRim(shooter, aim, radius+fan.SpawnOffset),
				Velocity: gamemath.ClampMagnitude(aim.MulScalar(1/fan.Divisor), vInitMax),
			})
		}
	}
	return shots, nil
}
