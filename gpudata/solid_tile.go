// SPDX-License-Identifier: Unlicense OR MIT

package gpudata

import "encoding/binary"

// SolidTileVertex is the 12-byte C-layout record a solid (unmasked)
// tile quad vertex packs to for the GPU (spec §6).
type SolidTileVertex struct {
	TileX, TileY             int16
	ColorU, ColorV           uint16
	ObjectIndex              uint16
	pad                      uint16
}

// Bytes returns the 12-byte little-endian wire encoding of v, in the
// field order given by spec §6.
func (v SolidTileVertex) Bytes() [12]byte {
	var b [12]byte
	binary.LittleEndian.PutUint16(b[0:2], uint16(v.TileX))
	binary.LittleEndian.PutUint16(b[2:4], uint16(v.TileY))
	binary.LittleEndian.PutUint16(b[4:6], v.ColorU)
	binary.LittleEndian.PutUint16(b[6:8], v.ColorV)
	binary.LittleEndian.PutUint16(b[8:10], v.ObjectIndex)
	binary.LittleEndian.PutUint16(b[10:12], v.pad)
	return b
}
