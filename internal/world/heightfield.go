package world

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

const (
	sampleScale    = 0.025
	heightScale    = 15.0
	heightExponent = 0.9
)

// ErrNoUnitOctave is returned when the octave set has no n=1 entry, which
// leaves the height normalizer at zero.
var ErrNoUnitOctave = errors.New("octave set must contain n=1")

// HeightField maps a world column to a terrain height using layered octaves.
type HeightField struct {
	octaves []Octave
	divisor float64
}

// NewHeightField captures the octave set. The normalizer is the sum of 1/n
// using integer division, so only n=1 contributes to it.
func NewHeightField(octaves []Octave) (*HeightField, error) {
	divisor := 0
	for _, o := range octaves {
		if o.N <= 0 {
			return nil, fmt.Errorf("octave %d must be positive", o.N)
		}
		divisor += 1 / o.N
	}
	if divisor == 0 {
		return nil, ErrNoUnitOctave
	}
	return &HeightField{
		octaves: slices.Clone(octaves),
		divisor: float64(divisor),
	}, nil
}

// Height computes the surface height (block Y) at world X,Z.
func (h *HeightField) Height(worldX, worldZ int) int {
	x := float32(worldX)
	z := float32(worldZ)

	raw := 0.0
	for _, o := range h.octaves {
		n := float32(o.N)
		raw += o.Noise.Eval2(float64(x*n*sampleScale), float64(z*n*sampleScale)) / float64(o.N)
	}
	raw /= h.divisor

	v := math.Round(math.Pow((raw+1)*heightScale, heightExponent))
	switch {
	case math.IsNaN(v):
		// raw < -1 gives a negative base
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	}
	return int(v)
}
