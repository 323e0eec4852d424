package core

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/automoto/trajectory/config"
	dmath "github.com/yohamta/donburi/features/math"
)

func slingShooters() []ShooterSpec {
	return []ShooterSpec{
		{Position: dmath.Vec2{X: 300, Y: 260}, Radius: 20},
		{Position: dmath.Vec2{X: 1200, Y: 520}, Radius: 20},
	}
}

func TestPlaceSourcesLayout(t *testing.T) {
	cfg := config.Variant(config.VariantSlingshot)
	shooters := slingShooters()

	sources, err := PlaceSources(rand.New(rand.NewSource(99)), cfg, shooters, nil)
	if err != nil {
		t.Fatalf("PlaceSources: %v", err)
	}
	if len(sources) != cfg.Gravity.NumSources {
		t.Fatalf("len(sources) = %d, want %d", len(sources), cfg.Gravity.NumSources)
	}

	last := sources[len(sources)-1]
	if !last.Fixed || last.Radius != cfg.Gravity.FixedRadius {
		t.Fatalf("last source = %+v, want the fixed central source", last)
	}
	if d := last.Position.Distance(dmath.Vec2{X: 750, Y: 390}); d > 30*1.5 {
		t.Fatalf("fixed source %f from the centre", d)
	}

	for i := 0; i < len(sources)-1; i++ {
		s := sources[i]
		if s.Fixed {
			t.Fatalf("source %d is fixed, only the last may be", i)
		}
		if i > 0 && s.Weight() > sources[i-1].Weight() {
			t.Fatalf("source %d heavier than source %d", i, i-1)
		}
		for _, sh := range shooters {
			if s.Position.Distance(sh.Position) < 2*s.Radius+sh.Radius+cfg.Gravity.ShooterClearance {
				t.Fatalf("source %d crowds a shooter", i)
			}
		}
		for j := 0; j < i; j++ {
			o := sources[j]
			if s.Position.Distance(o.Position) < 2*s.Radius+2*o.Radius+cfg.Gravity.SourceClearance {
				t.Fatalf("sources %d and %d overlap", i, j)
			}
		}
	}
}

func TestPlaceSourcesIsDeterministic(t *testing.T) {
	cfg := config.Variant(config.VariantSlingshot)
	a, err := PlaceSources(rand.New(rand.NewSource(5)), cfg, slingShooters(), nil)
	if err != nil {
		t.Fatalf("PlaceSources: %v", err)
	}
	b, err := PlaceSources(rand.New(rand.NewSource(5)), cfg, slingShooters(), nil)
	if err != nil {
		t.Fatalf("PlaceSources: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("source %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestPlaceSourcesHonoursFixedPosition(t *testing.T) {
	cfg := config.Variant(config.VariantSlingshot)
	fixed := dmath.Vec2{X: 700, Y: 400}
	sources, err := PlaceSources(rand.New(rand.NewSource(1)), cfg, slingShooters(), &fixed)
	if err != nil {
		t.Fatalf("PlaceSources: %v", err)
	}
	if got := sources[len(sources)-1].Position; got != fixed {
		t.Fatalf("fixed source at %+v, want %+v", got, fixed)
	}
}

func TestPlaceSourcesGivesUp(t *testing.T) {
	cfg := config.Variant(config.VariantSlingshot)
	cfg.Width, cfg.Height = 200, 200
	cfg.Gravity.MaxPlacementTries = 50

	_, err := PlaceSources(rand.New(rand.NewSource(1)), cfg, slingShooters(), nil)
	if !errors.Is(err, ErrPlacementFailed) {
		t.Fatalf("err = %v, want ErrPlacementFailed", err)
	}
}
