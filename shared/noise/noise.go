// Package noise generates fractal gradient-noise height fields.
package noise

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

var (
	ErrInvalidSize  = errors.New("noise: width and height must be positive")
	ErrInvalidScale = errors.New("noise: scale must be positive and finite")
)

// Field is a row-major grid of altitudes.
type Field struct {
	Width  int
	Height int
	Values []float64
}

func NewField(width, height int) *Field {
	return &Field{
		Width:  width,
		Height: height,
		Values: make([]float64, width*height),
	}
}

// Flat returns a field with every cell set to v.
func Flat(width, height int, v float64) *Field {
	f := NewField(width, height)
	for i := range f.Values {
		f.Values[i] = v
	}
	return f
}

func (f *Field) At(row, col int) float64 {
	return f.Values[row*f.Width+col]
}

func (f *Field) Set(row, col int, v float64) {
	f.Values[row*f.Width+col] = v
}

// Range returns the smallest and largest value in the field.
func (f *Field) Range() (lo, hi float64) {
	if len(f.Values) == 0 {
		return 0, 0
	}
	lo, hi = f.Values[0], f.Values[0]
	for _, v := range f.Values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Options tunes the fractal sum. Zero values fall back to DefaultOptions.
type Options struct {
	Octaves     int
	Persistence float64
	Lacunarity  float64
	TableSize   int

	// Rand supplies the gradient tables. A nil Rand is seeded from the clock.
	Rand *rand.Rand
}

func DefaultOptions() Options {
	return Options{
		Octaves:     6,
		Persistence: 0.5,
		Lacunarity:  2.0,
		TableSize:   256,
	}
}

// Seeded returns the default options backed by a deterministic source.
func Seeded(seed int64) Options {
	o := DefaultOptions()
	o.Rand = rand.New(rand.NewSource(seed))
	return o
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Octaves <= 0 {
		o.Octaves = d.Octaves
	}
	if o.Persistence <= 0 {
		o.Persistence = d.Persistence
	}
	if o.Lacunarity <= 0 {
		o.Lacunarity = d.Lacunarity
	}
	if o.TableSize <= 0 {
		o.TableSize = d.TableSize
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

// Generate sums Octaves layers of gradient noise over a width x height grid
// and rescales the result to span [0,1]. A field whose raw values are all
// equal comes back as all zeros.
func Generate(width, height int, scale float64, opts Options) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("generate %dx%d: %w", width, height, ErrInvalidSize)
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("generate scale %v: %w", scale, ErrInvalidScale)
	}
	opts = opts.withDefaults()

	field := NewField(width, height)
	for i := 0; i < opts.Octaves; i++ {
		freq := scale * math.Pow(opts.Lacunarity, float64(i))
		amp := math.Pow(opts.Persistence, float64(i))
		table := newGradientTable(opts.Rand, opts.TableSize)

		for row := 0; row < height; row++ {
			y := float64(row) / float64(height) * freq
			for col := 0; col < width; col++ {
				x := float64(col) / float64(width) * freq
				field.Values[row*width+col] += amp * table.sample(x, y)
			}
		}
	}

	normalize(field)
	return field, nil
}

func normalize(f *Field) {
	lo, hi := f.Range()
	if hi == lo {
		for i := range f.Values {
			f.Values[i] = 0
		}
		return
	}
	span := hi - lo
	for i, v := range f.Values {
		f.Values[i] = (v - lo) / span
	}
}
