package core

import (
	"math"

	"github.com/automoto/trajectory/shared/gamemath"
	"github.com/automoto/trajectory/shared/noise"
	dmath "github.com/yohamta/donburi/features/math"
)

//go:generate go tool mockgen -destination=./mocks/forcefield_mock.go -package=mocks . ForceField

// ForceField yields the acceleration a projectile feels at a position. The
// field's strength constant is already folded in.
type ForceField interface {
	Acceleration(pos dmath.Vec2) dmath.Vec2
}

// PointMass is one gravity source as seen by the field.
type PointMass struct {
	Position dmath.Vec2
	Weight   float64
}

// GravityField sums the pull of every active point mass and caps the total.
type GravityField struct {
	G       float64
	Coeff   float64
	AMax    float64
	Sources []PointMass
}

func (f *GravityField) Acceleration(pos dmath.Vec2) dmath.Vec2 {
	var a dmath.Vec2
	for _, s := range f.Sources {
		if s.Weight <= 0 {
			continue
		}
		d := s.Position.Sub(pos)
		dist := d.Magnitude()
		if dist == 0 {
			continue
		}
		a = a.Add(d.MulScalar(s.Weight / math.Pow(dist, f.Coeff+1) * f.G))
	}
	return gamemath.ClampMagnitude(a, f.AMax)
}

// TerrainField pulls projectiles downhill on an altitude map whose cells
// are one world unit wide.
type TerrainField struct {
	Field *noise.Field
	G     float64
}

func (f *TerrainField) Acceleration(pos dmath.Vec2) dmath.Vec2 {
	row, col := gamemath.Cell(f.Field, pos)
	return gamemath.Gradient(f.Field, row, col).MulScalar(-f.G)
}
