// SPDX-License-Identifier: Unlicense OR MIT

// Package tiler implements the scanline tile generator of spec §4.F:
// an endpoint priority queue drives an active-edge list sorted by
// x-intercept, swept strip by strip, emitting fill primitives into a
// BuiltObject. Direct translation of
// original_source/renderer/src/tiles.rs.
package tiler

import (
	"math"

	"github.com/vectorcore/tiler/config"
	"github.com/vectorcore/tiler/geom"
	"github.com/vectorcore/tiler/gpudata"
	"github.com/vectorcore/tiler/internal/log"
	"github.com/vectorcore/tiler/internal/sortedvec"
	"github.com/vectorcore/tiler/outline"
)

// QueuedEndpoint is one entry of the Tiler's endpoint priority queue.
type QueuedEndpoint struct {
	Point outline.PointIndex
}

// ActiveEdge is one edge currently crossing the strip being processed,
// sorted in the active set by ascending Crossing.X. Segment keeps its
// true original direction — never forced downward — since both the
// non-zero winding rule and the signed From→To encoding fill
// primitives carry for GPU coverage depend on it. Winding is
// sign(baseline.to_y − baseline.from_y) (spec's edge_winding formula),
// computed once from that original direction and then reused, via
// Orient, to keep every piece split off the edge (bridging lines,
// flattened cubic residuals) consistently oriented.
type ActiveEdge struct {
	Segment  geom.Segment
	Crossing geom.Vector2F
	Winding  int32
}

// Tiler sweeps one path's Outline into its BuiltObject.
type Tiler struct {
	Outline *outline.Outline
	ViewBox geom.RectF
	Config  config.Config
	Object  *gpudata.BuiltObject

	// NextAlphaTileIndex draws from the SceneBuilder's monotone
	// alpha-tile counter (spec §5: the counter is owned by the
	// SceneBuilder collaborator, not the Tiler).
	NextAlphaTileIndex func() uint16

	pointQueue     *sortedvec.SortedVector[QueuedEndpoint]
	activeEdges    *sortedvec.SortedVector[ActiveEdge]
	oldActiveEdges []ActiveEdge
}

// New constructs a Tiler for outline against viewBox, with the
// BuiltObject's tile rect snapped to tile boundaries and clipped to the
// view box (spec §4.F). A geometrically degenerate outline (empty
// bounds) yields a Tiler whose BuiltObject has an empty tile rect and
// generates no fills, per the §7 "geometry degeneracy" taxonomy entry.
func New(o *outline.Outline, viewBox geom.RectF, cfg config.Config, stage gpudata.RenderStage, pathID gpudata.PathId, nextAlphaTileIndex func() uint16) *Tiler {
	bounds := o.Bounds().Intersection(viewBox)
	tileRect := tileRectForBounds(bounds, cfg).Intersection(tileRectForBounds(viewBox, cfg))

	obj := gpudata.NewBuiltObject(bounds, tileRect, cfg, stage, pathID)

	less := func(a, b QueuedEndpoint) bool { return o.PointIsLogicallyAbove(a.Point, b.Point) }
	activeLess := func(a, b ActiveEdge) bool { return a.Crossing.X < b.Crossing.X }

	return &Tiler{
		Outline:            o,
		ViewBox:            viewBox,
		Config:             cfg,
		Object:             obj,
		NextAlphaTileIndex: nextAlphaTileIndex,
		pointQueue:         sortedvec.New(less),
		activeEdges:        sortedvec.New(activeLess),
	}
}

func tileRectForBounds(bounds geom.RectF, cfg config.Config) geom.RectI {
	if bounds.Empty() {
		return geom.RectI{}
	}
	tileSize := geom.Pt2F(float32(cfg.TileWidth), float32(cfg.TileHeight))
	return bounds.ScaleXY(geom.SplatF(1).Div(tileSize)).RoundOut().ToI()
}

// initPointQueue pushes every local minimum endpoint: one that is
// logically above both of its contour neighbors (spec §4.F).
func (t *Tiler) initPointQueue() {
	for ci := range t.Outline.Contours {
		c := &t.Outline.Contours[ci]
		for pi := range c.Points {
			if !c.OnCurve[pi] {
				continue
			}
			idx := outline.PointIndex{Contour: uint32(ci), Point: uint32(pi)}
			prev := t.Outline.PrevEndpointIndexOf(idx)
			next := t.Outline.NextEndpointIndexOf(idx)
			if t.Outline.PointIsLogicallyAbove(idx, prev) && t.Outline.PointIsLogicallyAbove(idx, next) {
				t.pointQueue.Push(QueuedEndpoint{Point: idx})
			}
		}
	}
}

// GenerateTiles runs the full scanline sweep described in spec §4.F's
// generate_tiles: initialize the endpoint queue, then process the
// BuiltObject's tile rows top to bottom one strip at a time.
func (t *Tiler) GenerateTiles() {
	t.initPointQueue()
	t.activeEdges.Clear()
	t.oldActiveEdges = t.oldActiveEdges[:0]

	tileRect := t.Object.TileRect()
	if tileRect.Empty() {
		return
	}
	for stripY := tileRect.MinY(); stripY < tileRect.MaxY(); stripY++ {
		t.generateStrip(stripY)
	}
}

// generateStrip implements spec §4.F's generate_strip.
func (t *Tiler) generateStrip(stripY int32) {
	log.Debugf("---------- tile y %d(%d) ----------", stripY, stripY*int32(t.Config.TileHeight))
	t.processOldActiveEdges(stripY)

	boundary := float32(stripY+1) * float32(t.Config.TileHeight)
	for {
		e, ok := t.pointQueue.Peek()
		if !ok {
			break
		}
		if t.Outline.PositionOf(e.Point).Y > boundary {
			break
		}
		t.addNewActiveEdge(stripY)
	}
}

// addNewActiveEdge implements spec §4.F's add_new_active_edge: pop the
// topmost queued endpoint and, for whichever neighbor(s) lie below it
// in the monotone chain, seed the active set and enqueue the neighbor
// for later processing.
func (t *Tiler) addNewActiveEdge(stripY int32) {
	e, ok := t.pointQueue.Pop()
	if !ok {
		return
	}

	prev := t.Outline.PrevEndpointIndexOf(e.Point)
	next := t.Outline.NextEndpointIndexOf(e.Point)

	for _, n := range [2]outline.PointIndex{prev, next} {
		if !t.Outline.PointIsLogicallyAbove(e.Point, n) {
			continue
		}
		var seg geom.Segment
		if n == prev {
			seg = t.Outline.SegmentAfter(n)
		} else {
			seg = t.Outline.SegmentAfter(e.Point)
		}
		if seg.IsNone() {
			t.pointQueue.Push(QueuedEndpoint{Point: n})
			continue
		}
		// seg keeps whatever direction SegmentAfter handed back; its
		// winding is read straight off that direction, not forced.
		winding := seg.Baseline.YWinding()
		ae := ActiveEdge{Segment: seg, Crossing: t.Outline.PositionOf(e.Point), Winding: winding}
		if residual, ok := t.processActiveEdge(ae, stripY); ok {
			t.activeEdges.Push(residual)
		}
		t.pointQueue.Push(QueuedEndpoint{Point: n})
	}
}

// processOldActiveEdges implements spec §4.F's
// process_old_active_edges: sweeps the previous strip's active edges
// left to right by ascending crossing.x, emitting partial fills,
// propagating backdrops between edges, and re-queuing residual edges
// for the next strip.
func (t *Tiler) processOldActiveEdges(stripY int32) {
	t.oldActiveEdges = append(t.oldActiveEdges[:0], t.activeEdges.Array()...)
	t.activeEdges.Clear()

	tileWidth := float32(t.Config.TileWidth)
	tileRect := t.Object.TileRect()
	currentTileX := tileRect.MinX()
	var currentSubtileX float32
	var currentWinding int32

	for _, ae := range t.oldActiveEdges {
		segmentX := ae.Crossing.X
		edgeWinding := ae.Winding
		segmentTileX := int32(math.Floor(float64(segmentX) / float64(tileWidth)))
		log.Debugf("tile Y %d: segment_x=%v edge_winding=%d current_tile_x=%d current_subtile_x=%v current_winding=%d",
			stripY, segmentX, edgeWinding, currentTileX, currentSubtileX, currentWinding)

		if currentTileX < segmentTileX && currentSubtileX > 0 {
			tileRightX := float32(currentTileX+1) * tileWidth
			t.Object.AddActiveFill(float32(currentTileX)*tileWidth+currentSubtileX, tileRightX, currentWinding,
				geom.Pt2I(currentTileX, stripY), t.NextAlphaTileIndex)
			currentTileX++
			currentSubtileX = 0
		}

		for currentTileX < segmentTileX {
			coords := geom.Pt2I(currentTileX, stripY)
			if prim, ok := t.Object.Tiles.Get(coords); ok {
				prim.Backdrop = clampI8(currentWinding)
				t.Object.Tiles.Set(coords, prim)
			}
			currentTileX++
		}

		segmentSubtileX := segmentX - float32(currentTileX)*tileWidth
		if segmentSubtileX > currentSubtileX {
			from := float32(currentTileX)*tileWidth + currentSubtileX
			to := float32(currentTileX)*tileWidth + segmentSubtileX
			t.Object.AddActiveFill(from, to, currentWinding, geom.Pt2I(currentTileX, stripY), t.NextAlphaTileIndex)
			currentSubtileX = segmentSubtileX
		}

		currentWinding += edgeWinding

		if residual, ok := t.processActiveEdge(ae, stripY); ok {
			t.activeEdges.Push(residual)
		}
	}
}

func clampI8(v int32) int8 {
	switch {
	case v > 127:
		return 127
	case v < -128:
		return -128
	default:
		return int8(v)
	}
}
