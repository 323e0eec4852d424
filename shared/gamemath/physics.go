package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// ClampMagnitude scales v down so its length is at most max.
func ClampMagnitude(v dmath.Vec2, max float64) dmath.Vec2 {
	m := v.Magnitude()
	if m <= max || m == 0 {
		return v
	}
	return v.MulScalar(max / m)
}

// FloorMagnitude scales v up so its length is at least min. A zero vector has
// no direction and is returned unchanged.
func FloorMagnitude(v dmath.Vec2, min float64) dmath.Vec2 {
	m := v.Magnitude()
	if m >= min || m == 0 {
		return v
	}
	return v.MulScalar(min / m)
}

// Finite reports whether both components are neither NaN nor infinite.
func Finite(v dmath.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// WithinCircle reports whether p lies strictly inside the circle.
func WithinCircle(center dmath.Vec2, radius float64, p dmath.Vec2) bool {
	return center.Distance(p) < radius
}

// OnRim returns the point at distance d from center along dir.
func OnRim(center, dir dmath.Vec2, d float64) dmath.Vec2 {
	m := dir.Magnitude()
	if m == 0 {
		return center
	}
	return center.Add(dir.MulScalar(d / m))
}
