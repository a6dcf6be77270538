// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"sort"
	"sync/atomic"

	"github.com/vectorcore/tiler/atlas"
	"github.com/vectorcore/tiler/config"
	"github.com/vectorcore/tiler/geom"
	"github.com/vectorcore/tiler/gpudata"
	"github.com/vectorcore/tiler/internal/parallel"
	"github.com/vectorcore/tiler/outline"
	"github.com/vectorcore/tiler/paint"
	"github.com/vectorcore/tiler/tiler"
)

// PathInput is one path's complete tiling request, as the scene/path
// front end (out of this module's scope, per §1) would hand it to the
// Builder.
type PathInput struct {
	Outline     *outline.Outline
	ViewBox     geom.RectF
	Stage       gpudata.RenderStage
	PathID      gpudata.PathId
	Paint       paint.Metadata
	ObjectIndex uint32
}

// Builder is the SceneBuilder collaborator of spec §5: it owns the
// TextureAllocator, the monotone alpha-tile-index counter, and the
// ZBuffer, and turns a batch of PathInputs into the ordered
// RenderCommand stream (§3's stream grammar: one Start, any mix of
// paint/fill/draw commands, one Finish).
type Builder struct {
	Config    config.Config
	Allocator *atlas.TextureAllocator
	ZBuf      *ZBuffer

	alphaTileCounter    atomic.Uint32
	renderTargetCounter atomic.Uint32
}

// NewBuilder creates a Builder with its own TextureAllocator and
// ZBuffer, ready to build render command streams under cfg.
func NewBuilder(cfg config.Config) *Builder {
	return &Builder{
		Config:    cfg,
		Allocator: atlas.New(cfg.AtlasTextureLength),
		ZBuf:      NewZBuffer(),
	}
}

// NextRenderTargetId draws the next id from the Builder's monotone
// render-target counter (spec §5: the TextureAllocator is owned by the
// SceneBuilder, and so is the id space for its RenderTarget pages).
func (b *Builder) NextRenderTargetId() atlas.RenderTargetId {
	return atlas.RenderTargetId(b.renderTargetCounter.Add(1) - 1)
}

func (b *Builder) nextAlphaTileIndex() uint16 {
	return uint16(b.alphaTileCounter.Add(1) - 1)
}

// tiledPath is one path's output after GenerateTiles + PackAndCullIfNecessary.
// Solid-occlusion tiles aren't part of this: PackAndCullIfNecessary only
// ever registers a coordinate's winning object index with the ZBuffer,
// and emit resolves the DrawSolidTiles command from the ZBuffer's final
// state once every path has tiled.
type tiledPath struct {
	fills      []gpudata.FillBatchPrimitive
	alphaTiles []gpudata.AlphaTile
}

func (b *Builder) tileOne(p PathInput) tiledPath {
	tl := tiler.New(p.Outline, p.ViewBox, b.Config, p.Stage, p.PathID, b.nextAlphaTileIndex)
	tl.GenerateTiles()
	alphaTiles := tl.PackAndCullIfNecessary(p.Paint, b.ZBuf, p.ObjectIndex)
	return tiledPath{fills: tl.Object.Fills, alphaTiles: alphaTiles}
}

// Build runs every path's Tiler to completion, one after another
// (spec §5's single-threaded-cooperative default), and emits the
// resulting RenderCommand stream. paintData is uploaded via one
// AddPaintData command per entry, immediately after Start, matching
// §2's "paint textures are placed by the Allocator before tiling".
// buildTimeNanos is recorded verbatim into the Finish command, left for
// the caller to measure since this package does not otherwise depend
// on a clock.
func (b *Builder) Build(paths []PathInput, paintData []paint.Data, boundingQuad gpudata.BoundingQuad, buildTimeNanos int64) []gpudata.RenderCommand {
	tiled := make([]tiledPath, len(paths))
	for i, p := range paths {
		tiled[i] = b.tileOne(p)
	}
	return b.emit(tiled, paintData, boundingQuad, buildTimeNanos)
}

// BuildParallel fans each path's GenerateTiles call across a worker
// pool (spec §5 permits, does not mandate, parallel tiling: "paths may
// be tiled in parallel if and only if they do not share a BuiltObject
// and the z-buffer update is serialized"). Each path gets its own
// Tiler/BuiltObject, the alpha-tile counter is a shared atomic, and
// ZBuffer.Update is itself compare-and-swap based, so no additional
// locking is needed here. Command emission still happens afterward, in
// path order, so BuildParallel emits the same sequence of commands as
// Build for the same input. The alpha-tile indices inside those
// commands are not reproducible: paths tiled concurrently draw from the
// shared counter in whatever order their workers reach it.
func (b *Builder) BuildParallel(paths []PathInput, workers int, paintData []paint.Data, boundingQuad gpudata.BoundingQuad, buildTimeNanos int64) []gpudata.RenderCommand {
	tiled := make([]tiledPath, len(paths))
	pool := parallel.New(workers)
	jobs := make([]func(), len(paths))
	for i, p := range paths {
		i, p := i, p
		jobs[i] = func() { tiled[i] = b.tileOne(p) }
	}
	pool.Run(jobs)
	return b.emit(tiled, paintData, boundingQuad, buildTimeNanos)
}

// emit serializes tiled's accumulated output into the ordered command
// stream: Start, AddPaintData per paintData entry, then each path's
// AddFills (chunked at Config.FillBatchThreshold, each chunk followed
// by FlushFills) and DrawAlphaTiles, then one DrawSolidTiles built from
// the ZBuffer's final state, then Finish (spec §5's ordering guarantee:
// "all AddFills/FlushFills for a path's alpha tiles appear before the
// DrawAlphaTiles that references them"). DrawSolidTiles is deliberately
// emitted once, after every path's alpha tiles, rather than per path:
// it is the only way for a tile occluded by one path and then
// re-occluded by a later, higher-object-index opaque path to resolve to
// the later path's record, matching "letting later opaque tiles occlude
// earlier ones".
func (b *Builder) emit(tiled []tiledPath, paintData []paint.Data, boundingQuad gpudata.BoundingQuad, buildTimeNanos int64) []gpudata.RenderCommand {
	cmds := []gpudata.RenderCommand{gpudata.StartCommand(uint32(len(tiled)), boundingQuad)}

	for _, data := range paintData {
		cmds = append(cmds, gpudata.AddPaintDataCommand(data))
	}

	threshold := int(b.Config.FillBatchThreshold)
	if threshold <= 0 {
		threshold = 1
	}

	for _, tp := range tiled {
		for start := 0; start < len(tp.fills); start += threshold {
			end := start + threshold
			if end > len(tp.fills) {
				end = len(tp.fills)
			}
			cmds = append(cmds, gpudata.AddFillsCommand(tp.fills[start:end]))
			cmds = append(cmds, gpudata.FlushFillsCommand())
		}
		if len(tp.alphaTiles) > 0 {
			cmds = append(cmds, gpudata.DrawAlphaTilesCommand(tp.alphaTiles))
		}
	}

	if solidTiles := b.resolveSolidTiles(); len(solidTiles) > 0 {
		cmds = append(cmds, gpudata.DrawSolidTilesCommand(solidTiles))
	}

	cmds = append(cmds, gpudata.FinishCommand(buildTimeNanos))
	return cmds
}

// resolveSolidTiles snapshots the ZBuffer's current entries into
// SolidTileVertex records, sorted by tile coordinate for a
// deterministic command stream (ZBuffer.OccupiedCoordinates makes no
// ordering guarantee of its own).
func (b *Builder) resolveSolidTiles() []gpudata.SolidTileVertex {
	coords := b.ZBuf.OccupiedCoordinates()
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})

	tiles := make([]gpudata.SolidTileVertex, 0, len(coords))
	for _, c := range coords {
		objectIndex, ok := b.ZBuf.Get(c)
		if !ok {
			continue
		}
		tiles = append(tiles, gpudata.SolidTileVertex{
			TileX:       int16(c.X),
			TileY:       int16(c.Y),
			ObjectIndex: uint16(objectIndex),
		})
	}
	return tiles
}
