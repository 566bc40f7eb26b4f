package world

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"blocks/internal/instance"

	"github.com/alitto/pond/v2"
)

// ErrClosed is returned when work is requested after Close.
var ErrClosed = errors.New("world closed")

// ExtractPool fans chunk face extraction out over a fixed set of workers.
type ExtractPool struct {
	pool    pond.ResultPool[[]instance.Record]
	workers int
	reuse   bool
	closed  atomic.Bool
}

// NewExtractPool creates a pool with the given number of workers (<= 0 means
// one per CPU). With reuse set, each chunk is extracted at most once and the
// memoized records are returned on later calls.
func NewExtractPool(workers int, reuse bool) *ExtractPool {
	if workers <= 0 {
		workers = max(runtime.NumCPU(), 1)
	}
	return &ExtractPool{
		pool:    pond.NewResultPool[[]instance.Record](workers),
		workers: workers,
		reuse:   reuse,
	}
}

// Extract runs one task per chunk and concatenates the results in chunk order.
func (p *ExtractPool) Extract(chunks []*Chunk) ([]instance.Record, error) {
	if p.closed.Load() {
		return nil, ErrClosed
	}

	group := p.pool.NewGroup()
	for _, ch := range chunks {
		if p.reuse {
			group.Submit(ch.instances)
		} else {
			group.Submit(ch.Extract)
		}
	}
	parts, err := group.Wait()
	if err != nil {
		return nil, fmt.Errorf("extract %d chunks: %w", len(chunks), err)
	}

	total := 0
	for _, part := range parts {
		total += len(part)
	}
	out := make([]instance.Record, 0, total)
	for _, part := range parts {
		out = append(out, part...)
	}
	return out, nil
}

// Workers returns the maximum number of concurrent extractions.
func (p *ExtractPool) Workers() int {
	return p.workers
}

// Close stops the workers after in-flight tasks finish. It is safe to call twice.
func (p *ExtractPool) Close() {
	if p.closed.Swap(true) {
		return
	}
	p.pool.StopAndWait()
}
