package instance

import (
	"math/bits"

	"github.com/go-gl/mathgl/mgl32"
)

// Face identifies one of the six axis-aligned faces of a voxel.
// The numeric value is the bit index inside a FaceMask.
type Face int

const (
	FaceFront  Face = iota // +z
	FaceBack               // -z
	FaceLeft               // -x
	FaceRight              // +x
	FaceTop                // +y
	FaceBottom             // -y

	NumFaces = 6
)

// FaceMask is a 6-bit set of exposed faces. Bit i is set when Face(i) is exposed.
type FaceMask uint32

// AllFaces has every face bit set.
const AllFaces FaceMask = 1<<NumFaces - 1

// Has reports whether face f is exposed.
func (m FaceMask) Has(f Face) bool {
	return m&(1<<uint(f)) != 0
}

// Count returns the number of exposed faces.
func (m FaceMask) Count() int {
	return bits.OnesCount32(uint32(m & AllFaces))
}

// Record describes one renderable voxel: where it is, which atlas slot it
// samples and which of its faces should be drawn.
type Record struct {
	Position mgl32.Vec3
	Texture  float32
	Faces    FaceMask
}

// NewRecord packs a per-face visibility array into a Record.
func NewRecord(pos mgl32.Vec3, tex float32, faces [NumFaces]bool) Record {
	var mask FaceMask
	for i, show := range faces {
		if show {
			mask |= 1 << uint(i)
		}
	}
	return Record{Position: pos, Texture: tex, Faces: mask}
}
