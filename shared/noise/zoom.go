package noise

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidFactor = errors.New("noise: zoom factor must be positive")

// Zoom upsamples f by an integer factor with Catmull-Rom bicubic
// interpolation. Source and destination corners coincide, and the result is
// clamped to [0,1].
func Zoom(f *Field, factor int) (*Field, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("zoom by %d: %w", factor, ErrInvalidFactor)
	}
	if f == nil || f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("zoom empty field: %w", ErrInvalidSize)
	}
	if factor == 1 {
		out := NewField(f.Width, f.Height)
		copy(out.Values, f.Values)
		return out, nil
	}

	out := NewField(f.Width*factor, f.Height*factor)
	sx := sourceStep(f.Width, out.Width)
	sy := sourceStep(f.Height, out.Height)

	// Interpolate along rows first, then down the columns.
	rows := make([]float64, f.Height*out.Width)
	for r := 0; r < f.Height; r++ {
		for c := 0; c < out.Width; c++ {
			rows[r*out.Width+c] = cubicAt(float64(c)*sx, f.Width, func(i int) float64 {
				return f.Values[r*f.Width+i]
			})
		}
	}
	for c := 0; c < out.Width; c++ {
		for r := 0; r < out.Height; r++ {
			v := cubicAt(float64(r)*sy, f.Height, func(i int) float64 {
				return rows[i*out.Width+c]
			})
			out.Values[r*out.Width+c] = clamp01(v)
		}
	}
	return out, nil
}

func sourceStep(in, out int) float64 {
	if out <= 1 || in <= 1 {
		return 0
	}
	return float64(in-1) / float64(out-1)
}

// cubicAt samples a line of n values at fractional position x.
func cubicAt(x float64, n int, at func(int) float64) float64 {
	i := int(math.Floor(x))
	t := x - float64(i)
	p0 := at(clampIndex(i-1, n))
	p1 := at(clampIndex(i, n))
	p2 := at(clampIndex(i+1, n))
	p3 := at(clampIndex(i+2, n))
	return catmullRom(p0, p1, p2, p3, t)
}

func catmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * (2*p1 +
		(p2-p0)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(3*p1-p0-3*p2+p3)*t3)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
