// SPDX-License-Identifier: Unlicense OR MIT

// Package paint describes the collaborator interface the tiler needs
// from the (out-of-scope) scene/paint front end: where a path's paint
// texture lives and how to map a tile to its UV rectangle, plus the
// upload payload for the AddPaintData render command.
package paint

import (
	"image/color"

	"github.com/vectorcore/tiler/geom"
)

// Metadata is everything the tiler needs to know about a path's paint
// in order to bake color UVs into alpha-tile vertices (spec §6). The
// solid-tile vertices scene.Builder builds from the z-buffer do not
// consult it: their ColorU/ColorV stay zero. Implementations are owned by the scene/paint front end,
// which is out of this module's scope; Metadata is the seam.
type Metadata interface {
	// ColorTexRect is the paint's placement inside its atlas page, in
	// pixel coordinates.
	ColorTexRect() geom.RectF
	// IsOpaque reports whether every texel the paint can produce has
	// alpha == 255, enabling the z-buffer occlusion path of spec §4.F.
	IsOpaque() bool
	// CalculateTexCoords maps a tile position (in tile units) to a
	// page-normalized [0,1] UV coordinate.
	CalculateTexCoords(tilePosition geom.Vector2I) geom.Vector2F
}

// Data is the texel payload of an AddPaintData render command,
// restored from original_source/renderer/src/gpu_data.rs's PaintData
// (elided from the distilled spec's §3 by name only, since §3 does
// name the AddPaintData command itself).
type Data struct {
	Size   geom.Vector2I
	Texels []color.RGBA
}
