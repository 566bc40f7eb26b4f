package world

import "fmt"

// Voxel is the kind of a single terrain cell.
type Voxel uint8

const (
	VoxelEmpty Voxel = iota
	VoxelSoil
	VoxelTurf
)

// AtlasRowHeight is the height of one row of the texture atlas in UV units.
const AtlasRowHeight float32 = 1.0 / 4.0

// IsEmpty reports whether the voxel is empty space.
func (v Voxel) IsEmpty() bool {
	return v == VoxelEmpty
}

// TextureSlot returns the atlas offset sampled by this voxel kind.
// Asking for the slot of VoxelEmpty is a programming error and panics.
func (v Voxel) TextureSlot() float32 {
	var row float32
	switch v {
	case VoxelSoil:
		row = 2
	case VoxelTurf:
		row = 3
	case VoxelEmpty:
		panic("world: texture slot requested for an empty voxel")
	default:
		panic(fmt.Sprintf("world: texture slot requested for unknown voxel kind %d", uint8(v)))
	}
	return row * AtlasRowHeight
}

func (v Voxel) String() string {
	switch v {
	case VoxelEmpty:
		return "Empty"
	case VoxelSoil:
		return "Soil"
	case VoxelTurf:
		return "Turf"
	}
	return fmt.Sprintf("Voxel(%d)", uint8(v))
}
