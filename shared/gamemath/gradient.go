package gamemath

import (
	"github.com/automoto/trajectory/shared/noise"
	dmath "github.com/yohamta/donburi/features/math"
)

// Gradient returns the discrete gradient of f at (row, col) as
// (d/dcol, d/drow). Interior cells use central differences, border cells use
// one-sided differences, and an axis of length one has no slope.
func Gradient(f *noise.Field, row, col int) dmath.Vec2 {
	row = CheckIndex(row, f.Height)
	col = CheckIndex(col, f.Width)

	var g dmath.Vec2
	switch {
	case f.Width == 1:
	case col == 0:
		g.X = f.At(row, 1) - f.At(row, 0)
	case col == f.Width-1:
		g.X = f.At(row, col) - f.At(row, col-1)
	default:
		g.X = (f.At(row, col+1) - f.At(row, col-1)) / 2
	}
	switch {
	case f.Height == 1:
	case row == 0:
		g.Y = f.At(1, col) - f.At(0, col)
	case row == f.Height-1:
		g.Y = f.At(row, col) - f.At(row-1, col)
	default:
		g.Y = (f.At(row+1, col) - f.At(row-1, col)) / 2
	}
	return g
}

// Cell maps a world position to the grid cell containing it.
func Cell(f *noise.Field, pos dmath.Vec2) (row, col int) {
	return CheckIndex(int(pos.Y), f.Height), CheckIndex(int(pos.X), f.Width)
}
