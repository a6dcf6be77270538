// SPDX-License-Identifier: Unlicense OR MIT

package gpudata

import (
	"github.com/vectorcore/tiler/config"
	"github.com/vectorcore/tiler/geom"
	"github.com/vectorcore/tiler/internal/tilemap"
)

// BuiltObject accumulates fills and alpha-tiles for one path as the
// Tiler sweeps it, and is consumed once by the renderer (spec §3).
type BuiltObject struct {
	Bounds      geom.RectF
	Fills       []FillBatchPrimitive
	Tiles       tilemap.DenseTileMap[TileObjectPrimitive]
	AlphaTiles  []AlphaTile
	RenderStage RenderStage
	PathID      PathId

	tileWidth, tileHeight uint32
}

// NewBuiltObject creates a BuiltObject whose tile map covers tileRect
// (already clipped to the view box and snapped to tile boundaries by
// the caller), filled with default solid tile records. bounds is
// recorded as given.
func NewBuiltObject(bounds geom.RectF, tileRect geom.RectI, cfg config.Config, stage RenderStage, pathID PathId) *BuiltObject {
	return &BuiltObject{
		Bounds:      bounds,
		Tiles:       tilemap.NewFilled(tileRect, NewTileObjectPrimitive),
		RenderStage: stage,
		PathID:      pathID,
		tileWidth:   cfg.TileWidth,
		tileHeight:  cfg.TileHeight,
	}
}

// TileRect returns the rectangle of tile coordinates this object covers.
func (b *BuiltObject) TileRect() geom.RectI { return b.Tiles.Rect }

// LocalTileIndexToCoords converts a linear tile-map index back to tile
// coordinates.
func (b *BuiltObject) LocalTileIndexToCoords(index uint32) geom.Vector2I {
	return b.Tiles.IndexToCoord(index)
}

// TileCoordsToLocalIndex converts tile coordinates to their linear
// index, or false if coords falls outside this object's tile rect.
func (b *BuiltObject) TileCoordsToLocalIndex(coords geom.Vector2I) (uint32, bool) {
	return b.Tiles.CoordToIndex(coords)
}

// allocAlphaTileSlot returns the tile's existing alpha-tile slot, or
// allocates one lazily via next and records it, implementing the
// "allocate lazily per (tile_x, tile_y)" rule of spec §4.F.
func (b *BuiltObject) allocAlphaTileSlot(tileCoords geom.Vector2I, next func() uint16) uint16 {
	prim, ok := b.Tiles.Get(tileCoords)
	if !ok {
		return SolidTileIndex
	}
	if prim.IsSolid() {
		prim.AlphaTileIndex = next()
		b.Tiles.Set(tileCoords, prim)
	}
	return prim.AlphaTileIndex
}

// GenerateFillPrimitivesForLine walks line's tile-x range at tile row
// tileY, splitting it at every vertical tile boundary; for each tile
// crossed it emits one FillBatchPrimitive quantized to that tile's
// local 4.8 fixed-point space, allocating an alpha-tile slot lazily
// (spec §4.F).
func (b *BuiltObject) GenerateFillPrimitivesForLine(line geom.LineSegment2F, tileY int32, next func() uint16) {
	if line.From.X == line.To.X && line.From.Y == line.To.Y {
		return
	}
	tw, th := float32(b.tileWidth), float32(b.tileHeight)

	left, right := line.From, line.To
	leftToRight := true
	if left.X > right.X {
		left, right = right, left
		leftToRight = false
	}

	startTileX := int32(left.X) / int32(b.tileWidth)
	endTileX := int32(right.X) / int32(b.tileWidth)
	if right.X == float32(endTileX)*tw && endTileX > startTileX {
		endTileX--
	}
	// A purely vertical line lying exactly on a tile-grid column (other
	// than the leftmost, x==0) belongs to the tile to its left: it
	// represents that tile's right-hand coverage boundary, not the
	// start of the next tile over.
	if left.X == right.X && left.X > 0 && startTileX == endTileX && float32(startTileX)*tw == left.X {
		startTileX--
		endTileX--
	}

	dx, dy := right.X-left.X, right.Y-left.Y
	curX := left
	for tx := startTileX; tx <= endTileX; tx++ {
		tileRightX := float32(tx+1) * tw
		segEnd := right
		if tx < endTileX {
			segEnd = left
			segEnd.X = tileRightX
			if dx != 0 {
				t := (tileRightX - left.X) / dx
				segEnd.Y = left.Y + dy*t
			}
		}

		from, to := curX, segEnd
		if !leftToRight {
			from, to = to, from
		}
		localFrom := geom.Pt2F(from.X-float32(tx)*tw, from.Y-float32(tileY)*th)
		localTo := geom.Pt2F(to.X-float32(tx)*tw, to.Y-float32(tileY)*th)

		coords := geom.Pt2I(tx, tileY)
		idx := b.allocAlphaTileSlot(coords, next)
		fill := NewFillBatchPrimitive(geom.Line(localFrom, localTo), tw, th, idx)
		b.Fills = append(b.Fills, fill)

		curX = segEnd
	}
}

// AddActiveFill emits the horizontal sub-tile fill generated during
// backdrop propagation for one tile (spec §4.F). A winding of zero
// emits nothing.
func (b *BuiltObject) AddActiveFill(currentX, endX float32, winding int32, tileCoords geom.Vector2I, next func() uint16) {
	if winding == 0 || currentX == endX {
		return
	}
	tw, th := float32(b.tileWidth), float32(b.tileHeight)
	tileLeftX := float32(tileCoords.X) * tw

	from := geom.Pt2F(currentX-tileLeftX, 0)
	to := geom.Pt2F(endX-tileLeftX, 0)
	if winding < 0 {
		from, to = to, from
	}

	idx := b.allocAlphaTileSlot(tileCoords, next)
	fill := NewFillBatchPrimitive(geom.Line(from, to), tw, th, idx)
	b.Fills = append(b.Fills, fill)
}
