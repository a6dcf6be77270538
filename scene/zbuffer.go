// SPDX-License-Identifier: Unlicense OR MIT

// Package scene implements the SceneBuilder collaborator of spec §5:
// it owns the TextureAllocator, the monotone alpha-tile counter, and
// the occlusion z-buffer, and drives one or many Tilers to produce the
// ordered RenderCommand stream.
package scene

import (
	"sync"
	"sync/atomic"

	"golang.org/x/exp/maps"

	"github.com/vectorcore/tiler/geom"
)

// ZBuffer tracks, per tile coordinate, the maximum object index of any
// opaque solid tile registered there (spec §5, §8 property 8). Update
// is safe for concurrent use: looking up or creating a coordinate's
// cell takes the ZBuffer's mutex, and each cell is its own
// atomic.Uint32, compare-and-swapped in a loop until the stored value
// is no smaller than objectIndex, so paths tiled in parallel by
// Builder.BuildParallel serialize correctly.
type ZBuffer struct {
	mu    sync.Mutex
	cells map[geom.Vector2I]*atomic.Uint32
}

// NewZBuffer creates an empty ZBuffer.
func NewZBuffer() *ZBuffer {
	return &ZBuffer{cells: make(map[geom.Vector2I]*atomic.Uint32)}
}

// Update registers objectIndex at coords, keeping the maximum ever
// seen. Implements tiler.ZBuffer.
func (z *ZBuffer) Update(coords geom.Vector2I, objectIndex uint32) {
	cell := z.cellFor(coords)
	for {
		cur := cell.Load()
		if objectIndex <= cur {
			return
		}
		if cell.CompareAndSwap(cur, objectIndex) {
			return
		}
	}
}

// Get returns the object index currently registered at coords, or
// (0, false) if none has been.
func (z *ZBuffer) Get(coords geom.Vector2I) (uint32, bool) {
	z.mu.Lock()
	cell, ok := z.cells[coords]
	z.mu.Unlock()
	if !ok {
		return 0, false
	}
	return cell.Load(), true
}

// OccupiedCoordinates returns every tile coordinate the z-buffer
// currently holds an entry for, in no particular order.
// Builder.resolveSolidTiles reads it to build the DrawSolidTiles command.
func (z *ZBuffer) OccupiedCoordinates() []geom.Vector2I {
	z.mu.Lock()
	defer z.mu.Unlock()
	return maps.Keys(z.cells)
}

func (z *ZBuffer) cellFor(coords geom.Vector2I) *atomic.Uint32 {
	z.mu.Lock()
	defer z.mu.Unlock()
	cell, ok := z.cells[coords]
	if !ok {
		cell = new(atomic.Uint32)
		z.cells[coords] = cell
	}
	return cell
}
