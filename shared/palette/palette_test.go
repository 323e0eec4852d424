package palette

import (
	"image/color"
	"math"
	"testing"
)

func TestTerrainLightnessFollowsAltitude(t *testing.T) {
	if got := Terrain(0); got != (color.RGBA{A: 255}) {
		t.Fatalf("Terrain(0) = %v, want black", got)
	}
	low, high := Norm(Terrain(0.2)), Norm(Terrain(0.9))
	if high <= low {
		t.Fatalf("norm at 0.9 = %f, want more than at 0.2 (%f)", high, low)
	}
}

func TestVisible(t *testing.T) {
	tests := []struct {
		c    color.RGBA
		want bool
	}{
		{color.RGBA{R: 255, G: 255, B: 255}, true},
		{color.RGBA{R: 100}, false},
		{color.RGBA{R: 101}, true},
		{color.RGBA{}, false},
	}
	for _, tt := range tests {
		if got := Visible(tt.c, 100); got != tt.want {
			t.Errorf("Visible(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
	if n := Norm(color.RGBA{R: 3, G: 4}); math.Abs(n-5) > 1e-12 {
		t.Fatalf("Norm = %f, want 5", n)
	}
}
