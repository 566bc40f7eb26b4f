package world

import (
	"errors"
	"testing"

	"blocks/internal/config"
)

func TestVoxelTextureSlots(t *testing.T) {
	if s := VoxelSoil.TextureSlot(); s != 0.5 {
		t.Errorf("Expected soil slot 0.5, got %v", s)
	}
	if s := VoxelTurf.TextureSlot(); s != 0.75 {
		t.Errorf("Expected turf slot 0.75, got %v", s)
	}
}

func TestEmptyTextureSlotPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for empty voxel texture slot")
		}
	}()
	_ = VoxelEmpty.TextureSlot()
}

func TestColumnMonotonicityExample(t *testing.T) {
	// -0.07 per octave lands the surface at exactly 10
	c := GenerateChunk(ChunkCoord{X: 2, Z: -1}, mustHeightField(t, octavesFrom(constNoise(-0.07))))

	h, err := c.ColumnHeight(3, 5)
	if err != nil {
		t.Fatal(err)
	}
	if h != 10 {
		t.Fatalf("Expected column height 10, got %d", h)
	}

	want := map[int]Voxel{9: VoxelSoil, 10: VoxelTurf, 11: VoxelEmpty}
	for y, kind := range want {
		v, err := c.Voxel(3, y, 5)
		if err != nil {
			t.Fatal(err)
		}
		if v != kind {
			t.Errorf("Expected %v at (3,%d,5), got %v", kind, y, v)
		}
	}
}

func TestColumnMonotonicity(t *testing.T) {
	octaves, err := NewOctaves(777, config.NoiseOpenSimplex, defaultOctaveNumbers)
	if err != nil {
		t.Fatal(err)
	}
	hf := mustHeightField(t, octaves)

	for _, coord := range []ChunkCoord{{0, 0}, {-3, 5}, {17, -9}} {
		c := GenerateChunk(coord, hf)
		ox, oz := coord.Origin()
		solid := 0
		for x := 0; x < ChunkSize; x++ {
			for z := 0; z < ChunkSize; z++ {
				h, _ := c.ColumnHeight(x, z)
				if want := hf.Height(x+ox, z+oz); h != want {
					t.Fatalf("chunk %v column (%d,%d): stored height %d, height field %d", coord, x, z, h, want)
				}
				for y := 0; y < ChunkHeight; y++ {
					v, _ := c.Voxel(x, y, z)
					var want Voxel
					switch {
					case y == h:
						want = VoxelTurf
					case y < h:
						want = VoxelSoil
					default:
						want = VoxelEmpty
					}
					if v != want {
						t.Fatalf("chunk %v voxel (%d,%d,%d): expected %v, got %v (h=%d)", coord, x, y, z, want, v, h)
					}
					if !v.IsEmpty() {
						solid++
					}
				}
			}
		}
		if solid != c.SolidCount() {
			t.Errorf("chunk %v: SolidCount %d, counted %d", coord, c.SolidCount(), solid)
		}
	}
}

func TestGenerateChunkIdempotent(t *testing.T) {
	octaves, _ := NewOctaves(31337, config.NoiseOpenSimplex, defaultOctaveNumbers)
	hf := mustHeightField(t, octaves)

	a := GenerateChunk(ChunkCoord{X: -1, Z: 4}, hf)
	b := GenerateChunk(ChunkCoord{X: -1, Z: 4}, hf)
	if a.voxels != b.voxels || a.heights != b.heights {
		t.Error("Regenerating the same coordinate produced different content")
	}
}

func TestVoxelOutOfBounds(t *testing.T) {
	c := GenerateChunk(ChunkCoord{}, mustHeightField(t, octavesFrom(constNoise(0))))

	for _, p := range [][3]int{{-1, 0, 0}, {ChunkSize, 0, 0}, {0, -1, 0}, {0, ChunkHeight, 0}, {0, 0, ChunkSize}} {
		if _, err := c.Voxel(p[0], p[1], p[2]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Voxel%v: expected ErrOutOfBounds, got %v", p, err)
		}
	}
	if _, err := c.ColumnHeight(0, ChunkSize); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("ColumnHeight: expected ErrOutOfBounds, got %v", err)
	}
}

func TestTallColumnHasNoTurf(t *testing.T) {
	c := emptyChunk(ChunkCoord{})
	c.fillColumn(0, 0, ChunkHeight+5)
	for y := 0; y < ChunkHeight; y++ {
		if v, _ := c.Voxel(0, y, 0); v != VoxelSoil {
			t.Fatalf("Expected soil at y=%d for a column above the chunk, got %v", y, v)
		}
	}
}

func BenchmarkGenerateChunk(b *testing.B) {
	octaves, _ := NewOctaves(12345, config.NoiseOpenSimplex, defaultOctaveNumbers)
	hf := mustHeightField(b, octaves)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GenerateChunk(ChunkCoord{X: i, Z: -i}, hf)
	}
}
