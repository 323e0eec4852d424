package components

import (
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func TestTrailKeepsNewestPoints(t *testing.T) {
	tr := NewTrail(3)
	for i := 0; i < 5; i++ {
		tr.Append(dmath.Vec2{X: float64(i)})
	}
	if tr.Len() != 3 {
		t.Fatalf("Len = %d, want 3", tr.Len())
	}
	got := tr.Points()
	for i, want := range []float64{2, 3, 4} {
		if got[i].X != want {
			t.Fatalf("Points[%d].X = %v, want %v", i, got[i].X, want)
		}
	}
	if tr.Last().X != 4 {
		t.Fatalf("Last = %v, want 4", tr.Last().X)
	}
}

func TestArchivedFaded(t *testing.T) {
	a := &ArchivedData{Fade: 0.5}
	a.Color.R, a.Color.G, a.Color.B, a.Color.A = 200, 100, 51, 255
	got := a.Faded()
	if got.R != 100 || got.G != 50 || got.B != 25 || got.A != 255 {
		t.Fatalf("Faded = %+v, want {100 50 25 255}", got)
	}
}
