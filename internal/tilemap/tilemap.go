// SPDX-License-Identifier: Unlicense OR MIT

// Package tilemap implements the dense 2D tile grid of spec §3:
// DenseTileMap<T>, a rectangular grid keyed by integer tile coordinates
// with O(1) coordinate-to-linear-index mapping.
package tilemap

import "github.com/vectorcore/tiler/geom"

// DenseTileMap is a rectangular grid of T, addressed by Vector2I tile
// coordinates in [rect.Origin, rect.Origin+rect.Size).
type DenseTileMap[T any] struct {
	Data []T
	Rect geom.RectI
}

// New allocates a DenseTileMap covering rect, with every entry set to
// the zero value of T.
func New[T any](rect geom.RectI) DenseTileMap[T] {
	return DenseTileMap[T]{
		Data: make([]T, rect.Area()),
		Rect: rect,
	}
}

// NewFilled allocates a DenseTileMap covering rect, with every entry
// initialized by fill.
func NewFilled[T any](rect geom.RectI, fill func() T) DenseTileMap[T] {
	data := make([]T, rect.Area())
	for i := range data {
		data[i] = fill()
	}
	return DenseTileMap[T]{Data: data, Rect: rect}
}

// CoordToIndex converts a tile coordinate to its linear index into Data.
// The second return value is false if coords falls outside Rect.
func (m *DenseTileMap[T]) CoordToIndex(coords geom.Vector2I) (uint32, bool) {
	if !m.Rect.Contains(coords) {
		return 0, false
	}
	local := coords.Sub(m.Rect.Origin)
	return uint32(local.Y)*uint32(m.Rect.Width()) + uint32(local.X), true
}

// IndexToCoord converts a linear index back into tile coordinates. The
// index must have been produced by CoordToIndex against the same Rect.
func (m *DenseTileMap[T]) IndexToCoord(index uint32) geom.Vector2I {
	width := uint32(m.Rect.Width())
	local := geom.Pt2I(int32(index%width), int32(index/width))
	return m.Rect.Origin.Add(local)
}

// Get returns the entry at coords and whether it is in bounds.
func (m *DenseTileMap[T]) Get(coords geom.Vector2I) (T, bool) {
	var zero T
	i, ok := m.CoordToIndex(coords)
	if !ok {
		return zero, false
	}
	return m.Data[i], true
}

// Set writes the entry at coords, reporting whether it was in bounds.
func (m *DenseTileMap[T]) Set(coords geom.Vector2I, v T) bool {
	i, ok := m.CoordToIndex(coords)
	if !ok {
		return false
	}
	m.Data[i] = v
	return true
}
