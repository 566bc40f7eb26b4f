package world

import (
	"errors"
	"fmt"
	"sync"

	"blocks/internal/instance"
)

// ErrOutOfBounds reports a local voxel or column coordinate outside the chunk.
var ErrOutOfBounds = errors.New("coordinate out of chunk bounds")

// Chunk is a 16x64x16 voxel grid. It is never modified after GenerateChunk
// returns, so any number of goroutines may read it concurrently.
type Chunk struct {
	coord   ChunkCoord
	voxels  [ChunkSize][ChunkSize][ChunkHeight]Voxel // [x][z][y]
	heights [ChunkSize][ChunkSize]int                // [x][z]
	solid   int

	// memoized Extract result, see ExtractPool
	extractOnce sync.Once
	extracted   []instance.Record
}

// GenerateChunk samples the height field for every column of the chunk at coord.
func GenerateChunk(coord ChunkCoord, hf *HeightField) *Chunk {
	c := &Chunk{coord: coord}
	ox, oz := coord.Origin()
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			c.fillColumn(x, z, hf.Height(x+ox, z+oz))
		}
	}
	return c
}

// fillColumn lays a single surface: soil below h, turf at h, empty above.
func (c *Chunk) fillColumn(x, z, h int) {
	c.heights[x][z] = h
	col := &c.voxels[x][z]
	for y := 0; y < ChunkHeight; y++ {
		switch {
		case y == h:
			col[y] = VoxelTurf
		case y < h:
			col[y] = VoxelSoil
		default:
			col[y] = VoxelEmpty
			continue
		}
		c.solid++
	}
}

// Coord returns the chunk's grid coordinate.
func (c *Chunk) Coord() ChunkCoord {
	return c.coord
}

// SolidCount returns the number of non-empty voxels.
func (c *Chunk) SolidCount() int {
	return c.solid
}

// Voxel returns the voxel at local coordinates.
func (c *Chunk) Voxel(x, y, z int) (Voxel, error) {
	if !inChunk(x, y, z) {
		return VoxelEmpty, fmt.Errorf("voxel (%d,%d,%d) in chunk %v: %w", x, y, z, c.coord, ErrOutOfBounds)
	}
	return c.voxels[x][z][y], nil
}

// ColumnHeight returns the sampled surface height of a local column. It may
// lie above the chunk, in which case the column has no turf.
func (c *Chunk) ColumnHeight(x, z int) (int, error) {
	if x < 0 || x >= ChunkSize || z < 0 || z >= ChunkSize {
		return 0, fmt.Errorf("column (%d,%d) in chunk %v: %w", x, z, c.coord, ErrOutOfBounds)
	}
	return c.heights[x][z], nil
}

func inChunk(x, y, z int) bool {
	return x >= 0 && x < ChunkSize &&
		y >= 0 && y < ChunkHeight &&
		z >= 0 && z < ChunkSize
}
