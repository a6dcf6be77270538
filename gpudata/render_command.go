// SPDX-License-Identifier: Unlicense OR MIT

package gpudata

import "github.com/vectorcore/tiler/paint"

// BoundingQuad is the four device-space corners of a Start command's
// overall bounds, in the order top-left, top-right, bottom-right,
// bottom-left.
type BoundingQuad [4][2]float32

// RenderCommandKind tags the variant carried by a RenderCommand,
// following the teacher's preference (internal/scene's Command) for an
// explicit tag plus a struct carrying only the fields that kind uses,
// rather than a Go interface per path/command.
type RenderCommandKind uint8

const (
	CommandStart RenderCommandKind = iota
	CommandAddPaintData
	CommandAddFills
	CommandFlushFills
	CommandDrawAlphaTiles
	CommandDrawSolidTiles
	CommandFinish
)

// RenderCommand is one entry of the ordered stream the core emits for
// the downstream GPU renderer (spec §3, §5): exactly one Start, any mix
// of paint/fill/draw commands, then exactly one Finish.
type RenderCommand struct {
	Kind RenderCommandKind

	// CommandStart
	PathCount    uint32
	BoundingQuad BoundingQuad

	// CommandAddPaintData
	PaintData paint.Data

	// CommandAddFills / CommandDrawAlphaTiles / CommandDrawSolidTiles
	Fills      []FillBatchPrimitive
	AlphaTiles []AlphaTile
	SolidTiles []SolidTileVertex

	// CommandFinish
	BuildTimeNanos int64
}

func StartCommand(pathCount uint32, quad BoundingQuad) RenderCommand {
	return RenderCommand{Kind: CommandStart, PathCount: pathCount, BoundingQuad: quad}
}

func AddPaintDataCommand(data paint.Data) RenderCommand {
	return RenderCommand{Kind: CommandAddPaintData, PaintData: data}
}

func AddFillsCommand(fills []FillBatchPrimitive) RenderCommand {
	return RenderCommand{Kind: CommandAddFills, Fills: fills}
}

func FlushFillsCommand() RenderCommand {
	return RenderCommand{Kind: CommandFlushFills}
}

func DrawAlphaTilesCommand(tiles []AlphaTile) RenderCommand {
	return RenderCommand{Kind: CommandDrawAlphaTiles, AlphaTiles: tiles}
}

func DrawSolidTilesCommand(tiles []SolidTileVertex) RenderCommand {
	return RenderCommand{Kind: CommandDrawSolidTiles, SolidTiles: tiles}
}

func FinishCommand(buildTimeNanos int64) RenderCommand {
	return RenderCommand{Kind: CommandFinish, BuildTimeNanos: buildTimeNanos}
}
