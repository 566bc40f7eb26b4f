package world

import (
	"errors"
	"fmt"

	"blocks/internal/config"
	"blocks/internal/instance"
	"blocks/internal/profiling"
)

// ErrChunkNotLoaded is returned by lookups into chunks that were never generated.
var ErrChunkNotLoaded = errors.New("chunk not loaded")

// Options controls the streaming policy.
type Options struct {
	WindowRadius    int // chunks on each side of the loaded center
	Deadzone        int // chunks the viewpoint may drift before a refresh
	Workers         int // extraction workers, 0 = NumCPU
	ReuseExtraction bool
}

// OptionsFromConfig extracts the streaming options from cfg.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		WindowRadius:    cfg.WindowRadius,
		Deadzone:        cfg.Deadzone,
		Workers:         cfg.Workers,
		ReuseExtraction: cfg.ReuseExtraction,
	}
}

// World owns the chunk cache and decides which chunks exist around the viewpoint.
// NeedsRefresh and Refresh must be called from a single goroutine.
type World struct {
	store   *ChunkStore
	heights *HeightField
	pool    *ExtractPool
	opts    Options

	// last chunk around which a window was computed
	loaded ChunkCoord
}

// New creates a world from cfg, seeding one generator per configured octave.
func New(cfg config.Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world config: %w", err)
	}
	octaves, err := NewOctaves(cfg.Seed, cfg.Noise, cfg.Octaves)
	if err != nil {
		return nil, err
	}
	hf, err := NewHeightField(octaves)
	if err != nil {
		return nil, err
	}
	return NewWithHeightField(hf, OptionsFromConfig(cfg)), nil
}

// NewWithHeightField creates a world around an existing height field.
func NewWithHeightField(hf *HeightField, opts Options) *World {
	return &World{
		store:   NewChunkStore(),
		heights: hf,
		pool:    NewExtractPool(opts.Workers, opts.ReuseExtraction),
		opts:    opts,
	}
}

// NeedsRefresh reports whether the viewpoint left the deadzone around the
// loaded center on either axis.
func (w *World) NeedsRefresh(px, pz float32) bool {
	cx := viewpointChunk(px)
	cz := viewpointChunk(pz)
	d := w.opts.Deadzone

	return cx < w.loaded.X-d ||
		cx > w.loaded.X+d ||
		cz < w.loaded.Z-d ||
		cz > w.loaded.Z+d
}

// Refresh moves the loaded center one chunk toward the viewpoint on each axis,
// generates any missing chunks in the window around it and returns the
// instance records of the whole window.
func (w *World) Refresh(px, pz float32) ([]instance.Record, error) {
	defer profiling.Track("world.Refresh")()
	if w.pool.closed.Load() {
		return nil, ErrClosed
	}

	w.loaded.X += sign(viewpointChunk(px) - w.loaded.X)
	w.loaded.Z += sign(viewpointChunk(pz) - w.loaded.Z)

	window := w.Window()
	w.generateMissing(window)

	stop := profiling.Track("world.extract")
	defer stop()
	chunks := w.store.AppendChunks(window, make([]*Chunk, 0, len(window)))
	return w.pool.Extract(chunks)
}

// generateMissing populates the cache sequentially before any reader runs.
func (w *World) generateMissing(window []ChunkCoord) {
	defer profiling.Track("world.generate")()
	generated := 0
	for _, coord := range window {
		if w.store.HasChunk(coord) {
			continue
		}
		if w.store.AddChunk(coord, GenerateChunk(coord, w.heights)) {
			generated++
		}
	}
	profiling.Count("world.chunksGenerated", generated)
}

// Window returns the working window around the loaded center.
func (w *World) Window() []ChunkCoord {
	return WindowAround(w.loaded, w.opts.WindowRadius)
}

// LoadedCenter returns the chunk the current window is centered on.
func (w *World) LoadedCenter() ChunkCoord {
	return w.loaded
}

// Chunk returns a cached chunk.
func (w *World) Chunk(coord ChunkCoord) (*Chunk, bool) {
	return w.store.GetChunk(coord)
}

// ChunkCount returns the number of generated chunks.
func (w *World) ChunkCount() int {
	return w.store.Len()
}

// HeightAt returns the terrain height at a world column, loaded or not.
func (w *World) HeightAt(worldX, worldZ int) int {
	return w.heights.Height(worldX, worldZ)
}

// VoxelAt returns the voxel at a world position from the cache.
func (w *World) VoxelAt(worldX, y, worldZ int) (Voxel, error) {
	coord := ChunkCoord{X: floorDiv(worldX, ChunkSize), Z: floorDiv(worldZ, ChunkSize)}
	ch, ok := w.store.GetChunk(coord)
	if !ok {
		return VoxelEmpty, fmt.Errorf("voxel (%d,%d,%d): chunk %v: %w", worldX, y, worldZ, coord, ErrChunkNotLoaded)
	}
	return ch.Voxel(mod(worldX, ChunkSize), y, mod(worldZ, ChunkSize))
}

// Options returns the streaming options the world was built with.
func (w *World) Options() Options {
	return w.opts
}

// Workers returns the extraction concurrency.
func (w *World) Workers() int {
	return w.pool.Workers()
}

// Close stops the extraction workers. Refresh fails with ErrClosed afterwards.
func (w *World) Close() {
	w.pool.Close()
}
