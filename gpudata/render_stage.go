// SPDX-License-Identifier: Unlicense OR MIT

// Package gpudata holds the wire-facing types the Tiler produces and the
// (out-of-scope) GPU renderer consumes: BuiltObject, the packed fill and
// tile vertex records, and the RenderCommand stream (spec §3, §4.E-G,
// §6). Restored from original_source/renderer/src/gpu_data.rs, which
// the distilled spec names but does not fully reproduce.
package gpudata

// RenderStage distinguishes a BuiltObject destined for an offscreen
// clip/mask pass (Stage0) from one drawn directly to the final target
// (Stage1). gpu_data.rs names both variants; the distilled spec elides
// their meaning, restored here per SUPPLEMENTED FEATURES.
type RenderStage uint8

const (
	Stage0 RenderStage = iota
	Stage1
)
