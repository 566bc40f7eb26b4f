package world

import (
	"blocks/internal/instance"

	"github.com/go-gl/mathgl/mgl32"
)

// verticalShift recenters the terrain band around y=0.
const verticalShift = 7.5

// Extract returns one instance record per non-empty voxel.
func (c *Chunk) Extract() []instance.Record {
	return c.AppendInstances(make([]instance.Record, 0, c.solid))
}

// AppendInstances appends one record per non-empty voxel to dst. Faces are
// exposed when the neighbor is empty or lies outside this chunk; neighboring
// chunks are never consulted. Fully enclosed voxels are emitted with a zero mask.
func (c *Chunk) AppendInstances(dst []instance.Record) []instance.Record {
	ox, oz := c.coord.Origin()
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			for y, v := range &c.voxels[x][z] {
				if v == VoxelEmpty {
					continue
				}
				dst = append(dst, instance.Record{
					Position: mgl32.Vec3{float32(x + ox), float32(y) - verticalShift, float32(z + oz)},
					Texture:  v.TextureSlot(),
					Faces:    c.faceMask(x, y, z),
				})
			}
		}
	}
	return dst
}

func (c *Chunk) faceMask(x, y, z int) instance.FaceMask {
	var m instance.FaceMask
	if c.exposed(x, y, z+1) {
		m |= 1 << instance.FaceFront
	}
	if c.exposed(x, y, z-1) {
		m |= 1 << instance.FaceBack
	}
	if c.exposed(x-1, y, z) {
		m |= 1 << instance.FaceLeft
	}
	if c.exposed(x+1, y, z) {
		m |= 1 << instance.FaceRight
	}
	if c.exposed(x, y+1, z) {
		m |= 1 << instance.FaceTop
	}
	if c.exposed(x, y-1, z) {
		m |= 1 << instance.FaceBottom
	}
	return m
}

// exposed treats the chunk boundary as open space.
func (c *Chunk) exposed(x, y, z int) bool {
	if !inChunk(x, y, z) {
		return true
	}
	return c.voxels[x][z][y] == VoxelEmpty
}

// instances returns the memoized extraction of this chunk.
func (c *Chunk) instances() []instance.Record {
	c.extractOnce.Do(func() {
		c.extracted = c.Extract()
	})
	return c.extracted
}
