package world

import (
	"sync/atomic"
	"testing"
)

// constNoise returns the same sample everywhere, which yields flat terrain.
type constNoise float64

func (c constNoise) Eval2(x, y float64) float64 { return float64(c) }

// countingNoise counts samples taken from the wrapped source.
type countingNoise struct {
	inner NoiseSource
	calls atomic.Int64
}

func (c *countingNoise) Eval2(x, y float64) float64 {
	c.calls.Add(1)
	return c.inner.Eval2(x, y)
}

var defaultOctaveNumbers = []int{1, 2, 4, 8, 16}

// flatHeight is round((15)^0.9) for a zero sample.
const flatHeight = 11

func octavesFrom(src NoiseSource) []Octave {
	octaves := make([]Octave, 0, len(defaultOctaveNumbers))
	for _, n := range defaultOctaveNumbers {
		octaves = append(octaves, Octave{N: n, Noise: src})
	}
	return octaves
}

func mustHeightField(t testing.TB, octaves []Octave) *HeightField {
	t.Helper()
	hf, err := NewHeightField(octaves)
	if err != nil {
		t.Fatalf("NewHeightField: %v", err)
	}
	return hf
}

func newTestWorld(t testing.TB, src NoiseSource, radius int) *World {
	t.Helper()
	w := NewWithHeightField(mustHeightField(t, octavesFrom(src)), Options{
		WindowRadius: radius,
		Deadzone:     3,
		Workers:      4,
	})
	t.Cleanup(w.Close)
	return w
}

// emptyChunk returns a chunk with no solid voxels for hand-built layouts.
func emptyChunk(coord ChunkCoord) *Chunk {
	return &Chunk{coord: coord}
}

func (c *Chunk) setForTest(x, y, z int, v Voxel) {
	if c.voxels[x][z][y] == VoxelEmpty && v != VoxelEmpty {
		c.solid++
	} else if c.voxels[x][z][y] != VoxelEmpty && v == VoxelEmpty {
		c.solid--
	}
	c.voxels[x][z][y] = v
}
