package export

import (
	"bytes"
	"errors"
	"testing"

	"blocks/internal/instance"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/image/bmp"
)

func TestInstanceDump(t *testing.T) {
	recs := []instance.Record{
		{Position: mgl32.Vec3{-16, 3.5, 32}, Texture: 0.75, Faces: instance.AllFaces},
		{Position: mgl32.Vec3{0, -7.5, 1}, Texture: 0.5, Faces: 1 << instance.FaceBottom},
	}

	var buf bytes.Buffer
	if err := WriteInstances(&buf, recs); err != nil {
		t.Fatalf("WriteInstances: %v", err)
	}
	got, err := ReadInstances(&buf)
	if err != nil {
		t.Fatalf("ReadInstances: %v", err)
	}
	if len(got) != len(recs) {
		t.Fatalf("Expected %d records, got %d", len(recs), len(got))
	}
	for i := range recs {
		if got[i] != recs[i] {
			t.Errorf("record %d: expected %+v, got %+v", i, recs[i], got[i])
		}
	}
}

func TestReadInstancesBadMagic(t *testing.T) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	enc.Write([]byte("NOPE\x00\x00\x00\x00"))
	enc.Close()

	if _, err := ReadInstances(&buf); !errors.Is(err, ErrBadMagic) {
		t.Errorf("Expected ErrBadMagic, got %v", err)
	}
}

type slope struct{}

func (slope) HeightAt(x, z int) int { return x + z }

func TestHeightmap(t *testing.T) {
	img, err := Heightmap(slope{}, -2, 0, 80, 4)
	if err != nil {
		t.Fatal(err)
	}
	if g := img.GrayAt(0, 0).Y; g != 0 {
		t.Errorf("Expected negative height clamped to 0, got %d", g)
	}
	if g := img.GrayAt(5, 1).Y; g != 16 {
		t.Errorf("Expected (3+1)*4=16, got %d", g)
	}
	if g := img.GrayAt(79, 3).Y; g != 255 {
		t.Errorf("Expected clamp to 255, got %d", g)
	}

	if _, err := Heightmap(slope{}, 0, 0, 0, 4); err == nil {
		t.Error("Expected error for empty area")
	}
}

func TestWriteHeightmapDecodes(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHeightmap(&buf, slope{}, 0, 0, 16, 8); err != nil {
		t.Fatal(err)
	}
	img, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("bmp.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("Expected 16x8, got %v", b)
	}
}
