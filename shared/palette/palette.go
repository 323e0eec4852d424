// Package palette maps game values to display colours for every front-end.
package palette

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Terrain colours an altitude in [0,1]. Hue cycles ten times over the
// range, lightness follows the altitude and saturation is fixed.
func Terrain(alt float64) color.RGBA {
	turns := (1 - alt) * 10
	hue := (turns - math.Floor(turns)) * 360
	c := colorful.Hsl(hue, 0.9, math.Abs(alt*0.5)).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Norm is the Euclidean length of the colour's RGB triple.
func Norm(c color.RGBA) float64 {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	return math.Sqrt(r*r + g*g + b*b)
}

// Visible reports whether an archived trace of colour c is still drawn.
func Visible(c color.RGBA, threshold float64) bool {
	return Norm(c) > threshold
}
