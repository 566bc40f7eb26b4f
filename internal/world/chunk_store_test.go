package world

import (
	"sync"
	"testing"
)

func TestChunkStoreInsertOnly(t *testing.T) {
	cs := NewChunkStore()
	coord := ChunkCoord{X: 1, Z: -1}
	first := emptyChunk(coord)
	second := emptyChunk(coord)

	if !cs.AddChunk(coord, first) {
		t.Fatal("Expected first insert to succeed")
	}
	if cs.AddChunk(coord, second) {
		t.Error("Expected second insert of the same coordinate to be rejected")
	}
	got, ok := cs.GetChunk(coord)
	if !ok || got != first {
		t.Errorf("Expected the first chunk to stay cached")
	}
	if cs.Len() != 1 || cs.GetModCount() != 1 {
		t.Errorf("Expected 1 chunk / 1 mod, got %d / %d", cs.Len(), cs.GetModCount())
	}
}

func TestChunkStoreAppendChunksSkipsMissing(t *testing.T) {
	cs := NewChunkStore()
	a := ChunkCoord{X: 0, Z: 0}
	b := ChunkCoord{X: 5, Z: 5}
	cs.AddChunk(a, emptyChunk(a))
	cs.AddChunk(b, emptyChunk(b))

	got := cs.AppendChunks([]ChunkCoord{b, {X: 9, Z: 9}, a}, nil)
	if len(got) != 2 {
		t.Fatalf("Expected 2 chunks, got %d", len(got))
	}
	if got[0].Coord() != b || got[1].Coord() != a {
		t.Errorf("Expected order %v,%v, got %v,%v", b, a, got[0].Coord(), got[1].Coord())
	}
}

func TestChunkStoreConcurrentReaders(t *testing.T) {
	cs := NewChunkStore()
	for _, c := range WindowAround(ChunkCoord{}, 2) {
		cs.AddChunk(c, emptyChunk(c))
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, c := range WindowAround(ChunkCoord{}, 3) {
				cs.HasChunk(c)
				cs.GetChunk(c)
			}
		}()
	}
	wg.Wait()

	if cs.Len() != 25 {
		t.Errorf("Expected 25 chunks, got %d", cs.Len())
	}
}

func TestWindowAround(t *testing.T) {
	w := WindowAround(ChunkCoord{X: -2, Z: 7}, 8)
	if len(w) != 289 {
		t.Fatalf("Expected 289 coordinates, got %d", len(w))
	}
	seen := make(map[ChunkCoord]bool, len(w))
	for _, c := range w {
		if c.X < -10 || c.X > 6 || c.Z < -1 || c.Z > 15 {
			t.Errorf("%v outside window", c)
		}
		if seen[c] {
			t.Errorf("%v listed twice", c)
		}
		seen[c] = true
	}
}

func TestViewpointChunkTruncates(t *testing.T) {
	cases := []struct {
		in   float32
		want int
	}{
		{0, 0},
		{15.9, 0},
		{16, 1},
		{47, 2},
		{64, 4},
		{-1, 0},
		{-15.9, 0},
		{-16, -1},
		{-63.5, -3},
		{-64, -4},
	}
	for _, c := range cases {
		if got := viewpointChunk(c.in); got != c.want {
			t.Errorf("viewpointChunk(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFloorDivAndMod(t *testing.T) {
	cases := []struct{ a, div, mod int }{
		{0, 0, 0},
		{15, 0, 15},
		{16, 1, 0},
		{-1, -1, 15},
		{-16, -1, 0},
		{-17, -2, 15},
	}
	for _, c := range cases {
		if got := floorDiv(c.a, ChunkSize); got != c.div {
			t.Errorf("floorDiv(%d) = %d, want %d", c.a, got, c.div)
		}
		if got := mod(c.a, ChunkSize); got != c.mod {
			t.Errorf("mod(%d) = %d, want %d", c.a, got, c.mod)
		}
	}
}
