package components

import dmath "github.com/yohamta/donburi/features/math"

// Trail is a bounded, append-only record of positions. Once full, the
// oldest points are overwritten.
type Trail struct {
	points []dmath.Vec2
	start  int
	size   int
}

func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{points: make([]dmath.Vec2, capacity)}
}

func (t *Trail) Append(p dmath.Vec2) {
	c := len(t.points)
	if t.size < c {
		t.points[(t.start+t.size)%c] = p
		t.size++
		return
	}
	t.points[t.start] = p
	t.start = (t.start + 1) % c
}

func (t *Trail) Len() int {
	return t.size
}

// At returns the i-th retained point, oldest first.
func (t *Trail) At(i int) dmath.Vec2 {
	return t.points[(t.start+i)%len(t.points)]
}

func (t *Trail) Last() dmath.Vec2 {
	return t.At(t.size - 1)
}

// Points copies the retained points, oldest first.
func (t *Trail) Points() []dmath.Vec2 {
	out := make([]dmath.Vec2, t.size)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}
