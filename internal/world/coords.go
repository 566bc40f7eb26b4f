package world

import (
	"fmt"
	"math"
)

const (
	// Chunk dimensions
	ChunkSize   = 16
	ChunkHeight = 64
)

// ChunkCoord addresses a chunk on the integer grid.
type ChunkCoord struct {
	X, Z int
}

// Origin returns the world position of the chunk's (0, 0) column.
func (c ChunkCoord) Origin() (int, int) {
	return c.X * ChunkSize, c.Z * ChunkSize
}

func (c ChunkCoord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Z)
}

// WindowAround lists every chunk coordinate within radius of center on both
// axes, x-major.
func WindowAround(center ChunkCoord, radius int) []ChunkCoord {
	side := 2*radius + 1
	out := make([]ChunkCoord, 0, side*side)
	for x := center.X - radius; x <= center.X+radius; x++ {
		for z := center.Z - radius; z <= center.Z+radius; z++ {
			out = append(out, ChunkCoord{X: x, Z: z})
		}
	}
	return out
}

// viewpointChunk maps a viewpoint axis to a chunk axis: the float is
// truncated toward zero, then divided toward zero. For negative positions
// this differs from floor division (-1 maps to chunk 0, not -1).
func viewpointChunk(p float32) int {
	return truncToInt(p) / ChunkSize
}

// truncToInt converts toward zero, saturating at the int32 range. NaN maps to 0.
func truncToInt(f float32) int {
	switch {
	case f != f:
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
