package world

import (
	"fmt"
	"math/rand"

	"blocks/internal/config"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// NoiseSource is a seeded 2D noise function returning values in roughly [-1, 1].
// opensimplex.Noise satisfies it directly.
type NoiseSource interface {
	Eval2(x, y float64) float64
}

// Octave binds an octave number to its own noise generator.
type Octave struct {
	N     int
	Noise NoiseSource
}

// NewOctaves builds one independently seeded generator per octave number.
// Per-octave seeds are drawn in order from a source seeded with seed, so the
// same seed always yields the same set.
func NewOctaves(seed int64, backend string, ns []int) ([]Octave, error) {
	rng := rand.New(rand.NewSource(seed))
	octaves := make([]Octave, 0, len(ns))
	for _, n := range ns {
		if n <= 0 {
			return nil, fmt.Errorf("octave %d must be positive", n)
		}
		src, err := newNoiseSource(backend, rng.Int63())
		if err != nil {
			return nil, err
		}
		octaves = append(octaves, Octave{N: n, Noise: src})
	}
	return octaves, nil
}

func newNoiseSource(backend string, seed int64) (NoiseSource, error) {
	switch backend {
	case config.NoiseOpenSimplex, "":
		return opensimplex.New(seed), nil
	case config.NoisePerlin:
		// alpha=2, beta=2, n=3 gives terrain-like noise
		return perlinSource{p: perlin.NewPerlin(2, 2, 3, seed)}, nil
	}
	return nil, fmt.Errorf("unknown noise backend %q", backend)
}

type perlinSource struct {
	p *perlin.Perlin
}

func (s perlinSource) Eval2(x, y float64) float64 {
	return s.p.Noise2D(x, y)
}
