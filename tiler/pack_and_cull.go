// SPDX-License-Identifier: Unlicense OR MIT

package tiler

import (
	"github.com/vectorcore/tiler/geom"
	"github.com/vectorcore/tiler/gpudata"
	"github.com/vectorcore/tiler/paint"
)

// ZBuffer is the occlusion collaborator owned by the SceneBuilder (spec
// §5): it tracks, per tile coordinate, the maximum object index of any
// opaque solid tile registered there. Implemented by scene.ZBuffer;
// declared here (rather than imported from scene) so tiler has no
// dependency on its caller.
type ZBuffer interface {
	Update(coords geom.Vector2I, objectIndex uint32)
}

// PackAndCullIfNecessary implements spec §4.F's
// pack_and_cull_if_necessary exactly, as a three-way branch over every
// tile of the BuiltObject: a blank solid tile (backdrop == 0) is
// dropped, an opaque solid tile is registered with the z-buffer and
// emits no alpha-tile, and all other tiles — including solid tiles
// whose paint isn't opaque — emit an AlphaTile quad. SolidTileVertex
// records are not built here at all: the Tiler only ever registers a
// coordinate's winning object index with the z-buffer, and it is the
// SceneBuilder's job to turn the z-buffer's final, fully-resolved state
// into the DrawSolidTiles command once every path has tiled (spec §5:
// "letting later opaque tiles occlude earlier ones" requires the whole
// z-buffer, not one path's view of it). A clip-path object (restored
// PathId tagging, SUPPLEMENTED FEATURES) tiles identically but never
// contributes a z-buffer update, opaque or not: it still emits its
// AlphaTile quads, since the mask itself is the point of a clip path.
func (t *Tiler) PackAndCullIfNecessary(meta paint.Metadata, zbuf ZBuffer, objectIndex uint32) (alphaTiles []gpudata.AlphaTile) {
	maskTilesAcross := t.Config.MaskTilesAcross
	isClip := t.Object.PathID.IsClip()
	for index, tile := range t.Object.Tiles.Data {
		coords := t.Object.LocalTileIndexToCoords(uint32(index))

		if tile.IsSolid() {
			if tile.Backdrop == 0 {
				continue
			}
			if meta.IsOpaque() && !isClip {
				zbuf.Update(coords, objectIndex)
				continue
			}
		}

		alphaTiles = append(alphaTiles, newAlphaTile(coords, tile.AlphaTileIndex, tile.Backdrop, objectIndex, meta, maskTilesAcross))
	}
	return alphaTiles
}

var alphaTileQuadOffsets = [4]geom.Vector2I{
	geom.Pt2I(0, 0),
	geom.Pt2I(1, 0),
	geom.Pt2I(0, 1),
	geom.Pt2I(1, 1),
}

// newAlphaTile constructs the four-vertex masked tile quad of spec
// §4.F: color UVs come from the paint metadata for the tile's
// position; mask UVs address the global alpha-tile slot's cell in the
// mask texture, laid out maskTilesAcross cells per row.
func newAlphaTile(coords geom.Vector2I, alphaTileIndex uint16, backdrop int8, objectIndex uint32, meta paint.Metadata, maskTilesAcross uint32) gpudata.AlphaTile {
	colorUV := meta.CalculateTexCoords(coords).Scale(65535)

	maskCell := geom.Pt2I(int32(uint32(alphaTileIndex)%maskTilesAcross), int32(uint32(alphaTileIndex)/maskTilesAcross))
	maskScale := float32(65535) / float32(maskTilesAcross)

	var quad gpudata.AlphaTile
	for i, offset := range alphaTileQuadOffsets {
		maskU := (float32(maskCell.X) + float32(offset.X)) * maskScale
		maskV := (float32(maskCell.Y) + float32(offset.Y)) * maskScale
		quad.Vertices[i] = gpudata.AlphaTileVertex{
			TileX:       int16(coords.X),
			TileY:       int16(coords.Y),
			ColorU:      uint16(colorUV.X),
			ColorV:      uint16(colorUV.Y),
			MaskU:       uint16(maskU),
			MaskV:       uint16(maskV),
			Backdrop:    backdrop,
			ObjectIndex: uint16(objectIndex),
		}
	}
	return quad
}
