package components

import (
	"github.com/automoto/trajectory/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ProjectileData is one shot of a fan. Velocity is the stored launch
// velocity; the per-tick displacement is derived from it.
type ProjectileData struct {
	Velocity dmath.Vec2
	Owner    int
	Origin   dmath.Vec2 // aim point of the volley
	Volley   int
	Trail    *Trail
	Steps    int
	State    config.ProjectileState
}

var Projectile = donburi.NewComponentType[ProjectileData]()
