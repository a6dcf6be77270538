// SPDX-License-Identifier: Unlicense OR MIT

package gpudata

// SolidTileIndex is the sentinel AlphaTileIndex value meaning "this
// tile needs no mask" (spec §3).
const SolidTileIndex uint16 = 0xFFFF

// TileObjectPrimitive is one entry of a BuiltObject's DenseTileMap: the
// alpha-tile slot (if any) and the signed winding backdrop contributed
// by edges strictly above the tile (spec §3). The zero value is not the
// solid default (its AlphaTileIndex is 0, not SolidTileIndex); use
// NewTileObjectPrimitive for the default: solid, backdrop 0.
type TileObjectPrimitive struct {
	AlphaTileIndex uint16
	Backdrop       int8
}

// NewTileObjectPrimitive returns the default solid tile record.
func NewTileObjectPrimitive() TileObjectPrimitive {
	return TileObjectPrimitive{AlphaTileIndex: SolidTileIndex}
}

// IsSolid reports whether the tile needs no alpha mask.
func (t TileObjectPrimitive) IsSolid() bool { return t.AlphaTileIndex == SolidTileIndex }
