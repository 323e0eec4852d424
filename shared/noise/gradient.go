package noise

import (
	"math"
	"math/rand"
)

// gradientTable holds unit gradient vectors addressed by a lattice hash.
type gradientTable struct {
	gx, gy []float64
}

func newGradientTable(rng *rand.Rand, size int) gradientTable {
	t := gradientTable{
		gx: make([]float64, size),
		gy: make([]float64, size),
	}
	for i := 0; i < size; i++ {
		angle := rng.Float64() * 2 * math.Pi
		t.gx[i] = math.Cos(angle)
		t.gy[i] = math.Sin(angle)
	}
	return t
}

func (t gradientTable) index(x, y int) int {
	n := len(t.gx)
	h := (x*1619 + y*31337) % n
	if h < 0 {
		h += n
	}
	return h
}

func (t gradientTable) dot(x, y int, dx, dy float64) float64 {
	i := t.index(x, y)
	return t.gx[i]*dx + t.gy[i]*dy
}

// sample evaluates one layer of gradient noise at (x, y). The value is zero
// on every lattice point.
func (t gradientTable) sample(x, y float64) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	tx := x - float64(x0)
	ty := y - float64(y0)

	n00 := t.dot(x0, y0, tx, ty)
	n10 := t.dot(x0+1, y0, tx-1, ty)
	n01 := t.dot(x0, y0+1, tx, ty-1)
	n11 := t.dot(x0+1, y0+1, tx-1, ty-1)

	u := smoothstep(tx)
	v := smoothstep(ty)
	nx0 := lerp(n00, n10, u)
	nx1 := lerp(n01, n11, u)
	return lerp(nx0, nx1, v)
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
