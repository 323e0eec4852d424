package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// BodyData is the drawable disc shared by shooters, sources and projectiles.
type BodyData struct {
	Position dmath.Vec2
	Radius   float64
	Color    color.RGBA
}

var Body = donburi.NewComponentType[BodyData]()
