package world

import (
	"sync"
)

// ChunkStore is the insert-only chunk cache. Chunks are added once and never
// replaced or removed for the life of the store.
type ChunkStore struct {
	// Map of chunks indexed by their coordinates
	chunks   map[ChunkCoord]*Chunk
	mu       sync.RWMutex
	modCount uint64 // Increases on every insert
}

// NewChunkStore creates a new chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// GetChunk returns the chunk at coord, if present.
func (cs *ChunkStore) GetChunk(coord ChunkCoord) (*Chunk, bool) {
	cs.mu.RLock()
	chunk, ok := cs.chunks[coord]
	cs.mu.RUnlock()
	return chunk, ok
}

// HasChunk checks if a chunk exists.
func (cs *ChunkStore) HasChunk(coord ChunkCoord) bool {
	cs.mu.RLock()
	_, exists := cs.chunks[coord]
	cs.mu.RUnlock()
	return exists
}

// AddChunk inserts a generated chunk. It reports false and leaves the store
// untouched when coord is already present.
func (cs *ChunkStore) AddChunk(coord ChunkCoord, chunk *Chunk) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if _, ok := cs.chunks[coord]; ok {
		return false
	}
	cs.chunks[coord] = chunk
	cs.modCount++
	return true
}

// Len returns the number of cached chunks.
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}

// GetModCount returns the number of inserts so far.
func (cs *ChunkStore) GetModCount() uint64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.modCount
}

// AppendChunks appends the cached chunks for coords to dst, in order,
// skipping coordinates that are not loaded.
func (cs *ChunkStore) AppendChunks(coords []ChunkCoord, dst []*Chunk) []*Chunk {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	for _, c := range coords {
		if ch, ok := cs.chunks[c]; ok {
			dst = append(dst, ch)
		}
	}
	return dst
}
