// SPDX-License-Identifier: Unlicense OR MIT

package gpudata

import "encoding/binary"

// AlphaTileVertex is one corner of an alpha-tile quad: a 16-byte
// C-layout record in the field order given by spec §3.
type AlphaTileVertex struct {
	TileX, TileY       int16
	ColorU, ColorV     uint16
	MaskU, MaskV       uint16
	Backdrop           int8
	_                  int8 // alignment pad, matches the 16-byte C layout
	ObjectIndex        uint16
}

// Bytes returns the 16-byte little-endian wire encoding of v.
func (v AlphaTileVertex) Bytes() [16]byte {
	var b [16]byte
	binary.LittleEndian.PutUint16(b[0:2], uint16(v.TileX))
	binary.LittleEndian.PutUint16(b[2:4], uint16(v.TileY))
	binary.LittleEndian.PutUint16(b[4:6], v.ColorU)
	binary.LittleEndian.PutUint16(b[6:8], v.ColorV)
	binary.LittleEndian.PutUint16(b[8:10], v.MaskU)
	binary.LittleEndian.PutUint16(b[10:12], v.MaskV)
	b[12] = byte(v.Backdrop)
	binary.LittleEndian.PutUint16(b[14:16], v.ObjectIndex)
	return b
}

// AlphaTile is the quad of four AlphaTileVertex corners emitted for one
// masked tile, at corner offsets (0,0), (1,0), (0,1), (1,1) (spec
// §4.F's pack_and_cull_if_necessary).
type AlphaTile struct {
	Vertices [4]AlphaTileVertex
}
