package core

import (
	"math"
	"testing"

	"github.com/automoto/trajectory/shared/noise"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestGravityFieldPullsTowardSource(t *testing.T) {
	f := &GravityField{
		G: 250, Coeff: 2, AMax: 30,
		Sources: []PointMass{{Position: dmath.Vec2{X: 500, Y: 500}, Weight: math.Pi * 30 * 30}},
	}

	a := f.Acceleration(dmath.Vec2{X: 500, Y: 100})
	if a.Y <= 0 || math.Abs(a.X) > 1e-12 {
		t.Fatalf("Acceleration = %+v, want pull in +Y only", a)
	}
	want := math.Pi * 900 / math.Pow(400, 3) * 400 * 250
	if math.Abs(a.Y-want) > 1e-9 {
		t.Fatalf("a.Y = %f, want %f", a.Y, want)
	}
}

func TestGravityFieldCapsSummedAcceleration(t *testing.T) {
	f := &GravityField{
		G: 250, Coeff: 2, AMax: 30,
		Sources: []PointMass{
			{Position: dmath.Vec2{X: 110, Y: 100}, Weight: 5000},
			{Position: dmath.Vec2{X: 100, Y: 112}, Weight: 5000},
			{Position: dmath.Vec2{X: 95, Y: 95}, Weight: 5000},
		},
	}
	for x := 50.0; x < 150; x += 7 {
		for y := 50.0; y < 150; y += 7 {
			if m := f.Acceleration(dmath.Vec2{X: x, Y: y}).Magnitude(); m > 30+1e-9 {
				t.Fatalf("|a| at (%v, %v) = %f, want <= 30", x, y, m)
			}
		}
	}
}

func TestGravityFieldIgnoresInertAndCoincidentSources(t *testing.T) {
	f := &GravityField{
		G: 250, Coeff: 2, AMax: 30,
		Sources: []PointMass{
			{Position: dmath.Vec2{X: 10, Y: 10}, Weight: 0},
			{Position: dmath.Vec2{X: 2000, Y: 2000}, Weight: 1},
		},
	}
	if a := f.Acceleration(dmath.Vec2{X: 12, Y: 10}); a.Magnitude() > 1e-3 {
		t.Fatalf("inert source contributed: |a| = %f", a.Magnitude())
	}
	if a := f.Acceleration(dmath.Vec2{X: 2000, Y: 2000}); a.X != 0 || a.Y != 0 {
		t.Fatalf("query on a source centre = %+v, want zero", a)
	}
}

func TestTerrainFieldPullsDownhill(t *testing.T) {
	field := noise.NewField(10, 10)
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			field.Set(r, c, 0.01*float64(c))
		}
	}
	f := &TerrainField{Field: field, G: 5000}

	a := f.Acceleration(dmath.Vec2{X: 4.5, Y: 3.2})
	if math.Abs(a.X+50) > 1e-9 || a.Y != 0 {
		t.Fatalf("Acceleration = %+v, want {-50 0}", a)
	}
}
