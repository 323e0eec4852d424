package components

import (
	"image/color"

	"github.com/automoto/trajectory/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ArchivedData is the frozen trace of a finished projectile.
type ArchivedData struct {
	Points  []dmath.Vec2
	Origin  dmath.Vec2
	Owner   int
	Outcome config.ProjectileState
	Color   color.RGBA
	Fade    float64
}

// Faded returns the base colour scaled by the fade intensity.
func (a *ArchivedData) Faded() color.RGBA {
	scale := func(c uint8) uint8 {
		v := float64(c) * a.Fade
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return color.RGBA{R: scale(a.Color.R), G: scale(a.Color.G), B: scale(a.Color.B), A: a.Color.A}
}

var Archived = donburi.NewComponentType[ArchivedData]()
