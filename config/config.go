// SPDX-License-Identifier: Unlicense OR MIT

// Package config collects the core's recognized options (spec §6): tile
// geometry, curve flattening tolerance, and atlas sizing. These are
// small, static, compile-time-sane defaults — gio's own analogous
// constants (TILE_WIDTH/TILE_HEIGHT in the original tiles.rs,
// MASK_TILES_ACROSS in gpu/compute.go) are plain exported values, not a
// parsed config file, and this core follows suit: no file format, no
// environment variables, per §6.
package config

// Config holds the options every path producer and the atlas allocator
// read. Zero value is invalid; use Default or DefaultConfig to build a
// sane starting point.
type Config struct {
	// TileWidth and TileHeight must divide evenly into the view-box
	// rounded out. Default 16x16.
	TileWidth, TileHeight uint32
	// FlatteningTolerance is the maximum device-pixel deviation of a
	// cubic's control polygon from its baseline before the tiler stops
	// subdividing. Default 0.1.
	FlatteningTolerance float32
	// AtlasTextureLength is the side length of a newly created atlas
	// page; must be a power of two. Default 1024.
	AtlasTextureLength uint32
	// MaskTilesAcross is the number of alpha-tile mask slots per row of
	// the mask texture; must be a power of two. Default 256.
	MaskTilesAcross uint32
	// FillBatchThreshold is the number of pending FillBatchPrimitives the
	// SceneBuilder accumulates before emitting an AddFills command
	// followed by FlushFills (spec §5's "batched"/"when the fill buffer
	// reaches threshold" ordering guarantee). Default 3072.
	FillBatchThreshold uint32
}

// DefaultConfig returns the spec §6 defaults.
func DefaultConfig() Config {
	return Config{
		TileWidth:           16,
		TileHeight:          16,
		FlatteningTolerance: 0.1,
		AtlasTextureLength:  1024,
		MaskTilesAcross:     256,
		FillBatchThreshold:  3072,
	}
}

// Default is the package-level shared default configuration, used by
// callers that don't need to override any option.
var Default = DefaultConfig()
