package core

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"sort"

	"github.com/automoto/trajectory/config"
	"github.com/lucasb-eyer/go-colorful"
	dmath "github.com/yohamta/donburi/features/math"
)

var ErrPlacementFailed = errors.New("core: could not place gravity sources")

// SourceSpec describes a gravity source before it is spawned.
type SourceSpec struct {
	Position dmath.Vec2
	Radius   float64
	Fixed    bool
	Color    color.RGBA
}

// Weight is the source mass, proportional to its area.
func (s SourceSpec) Weight() float64 {
	return math.Pi * s.Radius * s.Radius
}

// ShooterSpec places a shooter disc.
type ShooterSpec struct {
	Position dmath.Vec2
	Radius   float64
}

// PlaceSources lays out the gravity sources of a slingshot round by
// rejection sampling. The fixed source sits at fixed when given, otherwise
// near the centre. The result is in escalation order: movable sources
// heaviest first, then the fixed source.
func PlaceSources(rng *rand.Rand, cfg config.VariantConfig, shooters []ShooterSpec, fixed *dmath.Vec2) ([]SourceSpec, error) {
	g := cfg.Gravity
	if g.NumSources <= 0 {
		return nil, nil
	}

	centre := dmath.Vec2{X: float64(cfg.Width / 2), Y: float64(cfg.Height / 2)}
	if fixed != nil {
		centre = *fixed
	} else if g.FixedJitter > 0 {
		centre.X += float64(randRange(rng, -g.FixedJitter, g.FixedJitter))
		centre.Y += float64(randRange(rng, -g.FixedJitter, g.FixedJitter))
	}
	sources := []SourceSpec{{
		Position: centre,
		Radius:   g.FixedRadius,
		Fixed:    true,
		Color:    SourceColor(rng),
	}}

	tries := 0
	for len(sources) < g.NumSources {
		if tries >= g.MaxPlacementTries {
			return nil, fmt.Errorf("placed %d of %d after %d tries: %w",
				len(sources), g.NumSources, tries, ErrPlacementFailed)
		}
		tries++

		radius := float64(randRange(rng, g.MinRadius, g.MaxRadius))
		margin := g.EdgeMargin * radius
		lo, hiX, hiY := int(margin), int(float64(cfg.Width)-margin), int(float64(cfg.Height)-margin)
		if hiX < lo || hiY < lo {
			continue
		}
		pos := dmath.Vec2{
			X: float64(randRange(rng, lo, hiX)),
			Y: float64(randRange(rng, lo, hiY)),
		}
		if !clearOf(pos, radius, shooters, sources, g) {
			continue
		}
		sources = append(sources, SourceSpec{
			Position: pos,
			Radius:   radius,
			Color:    SourceColor(rng),
		})
	}

	movable := sources[1:]
	sort.SliceStable(movable, func(i, j int) bool {
		return movable[i].Weight() > movable[j].Weight()
	})
	return append(append([]SourceSpec(nil), movable...), sources[0]), nil
}

func clearOf(pos dmath.Vec2, radius float64, shooters []ShooterSpec, sources []SourceSpec, g config.GravityConfig) bool {
	for _, s := range shooters {
		if pos.Distance(s.Position) < 2*radius+s.Radius+g.ShooterClearance {
			return false
		}
	}
	for _, s := range sources {
		if pos.Distance(s.Position) < 2*radius+2*s.Radius+g.SourceClearance {
			return false
		}
	}
	return true
}

// SourceColor picks a random pastel hue.
func SourceColor(rng *rand.Rand) color.RGBA {
	c := colorful.Hsl(rng.Float64()*360, 0.7, 0.85)
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// randRange returns an integer in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
