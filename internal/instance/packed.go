package instance

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Stride is the byte size of one packed record: vec4 position (w=0), f32 texture, u32 faces.
const Stride = 24

// AppendPacked appends the vertex-buffer layout of recs to dst, little-endian.
func AppendPacked(dst []byte, recs []Record) []byte {
	if need := len(dst) + len(recs)*Stride; cap(dst) < need {
		n := make([]byte, len(dst), need)
		copy(n, dst)
		dst = n
	}
	le := binary.LittleEndian
	for _, r := range recs {
		dst = le.AppendUint32(dst, math.Float32bits(r.Position[0]))
		dst = le.AppendUint32(dst, math.Float32bits(r.Position[1]))
		dst = le.AppendUint32(dst, math.Float32bits(r.Position[2]))
		dst = le.AppendUint32(dst, 0)
		dst = le.AppendUint32(dst, math.Float32bits(r.Texture))
		dst = le.AppendUint32(dst, uint32(r.Faces))
	}
	return dst
}

// Unpack decodes a buffer produced by AppendPacked.
func Unpack(buf []byte) ([]Record, error) {
	if len(buf)%Stride != 0 {
		return nil, fmt.Errorf("packed instances: length %d is not a multiple of %d", len(buf), Stride)
	}
	le := binary.LittleEndian
	recs := make([]Record, 0, len(buf)/Stride)
	for off := 0; off < len(buf); off += Stride {
		b := buf[off : off+Stride]
		faces := FaceMask(le.Uint32(b[20:]))
		if faces&^AllFaces != 0 {
			return nil, fmt.Errorf("packed instances: record %d has face bits 0x%x outside the 6-bit mask", off/Stride, uint32(faces))
		}
		recs = append(recs, Record{
			Position: mgl32.Vec3{
				math.Float32frombits(le.Uint32(b[0:])),
				math.Float32frombits(le.Uint32(b[4:])),
				math.Float32frombits(le.Uint32(b[8:])),
			},
			Texture: math.Float32frombits(le.Uint32(b[16:])),
			Faces:   faces,
		})
	}
	return recs, nil
}
