package core

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/trajectory/config"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestExpandFanProducesNineClampedShots(t *testing.T) {
	cfg := config.Variant(config.VariantSlingshot)
	shooter := dmath.Vec2{X: 300, Y: 260}
	target := dmath.Vec2{X: 900, Y: 100}

	shots, err := ExpandFan(shooter, 20, target, cfg.Fan, cfg.VInitMax)
	if err != nil {
		t.Fatalf("ExpandFan: %v", err)
	}
	if len(shots) != FanSize {
		t.Fatalf("len(shots) = %d, want %d", len(shots), FanSize)
	}
	for i, s := range shots {
		if s.Velocity.Magnitude() > cfg.VInitMax+1e-9 {
			t.Errorf("shot %d speed %f exceeds %f", i, s.Velocity.Magnitude(), cfg.VInitMax)
		}
		if d := s.Position.Distance(shooter); math.Abs(d-30) > 1e-9 {
			t.Errorf("shot %d spawned %f from the shooter, want 30", i, d)
		}
	}
}

func TestExpandFanSpreadsAroundAim(t *testing.T) {
	fan := config.FanConfig{Spread: 1, Divisor: 10, SpawnOffset: 0}
	shots, err := ExpandFan(dmath.Vec2{}, 1, dmath.Vec2{X: 20, Y: 0}, fan, 100)
	if err != nil {
		t.Fatalf("ExpandFan: %v", err)
	}
	// offsets run i-major over {-1, 0, +1}
	centre := shots[4].Velocity
	if math.Abs(centre.X-2) > 1e-12 || centre.Y != 0 {
		t.Fatalf("centre shot velocity = %+v, want {2 0}", centre)
	}
	first := shots[0].Velocity
	if math.Abs(first.X-1.9) > 1e-12 || math.Abs(first.Y+0.1) > 1e-12 {
		t.Fatalf("first shot velocity = %+v, want {1.9 -0.1}", first)
	}
}

func TestExpandFanRejectsInvalidAim(t *testing.T) {
	fan := config.Variant(config.VariantGolf).Fan
	shooter := dmath.Vec2{X: 100, Y: 100}

	tests := []struct {
		name   string
		target dmath.Vec2
	}{
		{"target on shooter", shooter},
		{"nan target", dmath.Vec2{X: math.NaN(), Y: 3}},
		{"infinite target", dmath.Vec2{X: 5, Y: math.Inf(1)}},
		{"offset cancels aim", dmath.Vec2{X: 101, Y: 101}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shots, err := ExpandFan(shooter, 15, tt.target, fan, 3)
			var aimErr *InvalidAimError
			if !errors.As(err, &aimErr) {
				t.Fatalf("err = %v, want *InvalidAimError", err)
			}
			if shots != nil {
				t.Fatalf("got %d shots, want none", len(shots))
			}
		})
	}
}
