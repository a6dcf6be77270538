// SPDX-License-Identifier: Unlicense OR MIT

package tiler

import (
	"github.com/vectorcore/tiler/geom"
	"github.com/vectorcore/tiler/internal/log"
)

// processActiveEdge implements spec §4.F's ActiveEdge::process: consume
// as much of ae's segment as fits within the current strip, emitting
// fill primitives along the way, and return the residual edge (if any)
// to be re-inserted into the active set for the next strip.
func (t *Tiler) processActiveEdge(ae ActiveEdge, stripY int32) (ActiveEdge, bool) {
	log.Debugf("about to process active edge %+v at tile_y=%d", ae, stripY)
	seg := ae.Segment

	// A curve's control polygon can bulge above its baseline's upper
	// point; if the recorded crossing sits above the segment's true
	// top, emit the short connecting line first, oriented to match the
	// edge's own direction.
	if ae.Crossing.Y < seg.Baseline.MinY() {
		upper := seg.Baseline.UpperPoint()
		bridge := geom.Line(ae.Crossing, upper).Orient(ae.Winding)
		t.processLineSegment(bridge, stripY)
	}

	if seg.IsLine() {
		lower, consumed := t.processLineSegment(seg.Baseline, stripY)
		if consumed {
			return ActiveEdge{}, false
		}
		return ActiveEdge{Segment: geom.LineSeg(lower), Crossing: lower.UpperPoint(), Winding: ae.Winding}, true
	}

	return t.flattenCubic(seg.ToCubic(), stripY, ae.Winding)
}

// flattenCubic implements spec §4.F's halve-flatten loop: repeatedly
// bisect the leading portion of the curve until it is flat enough to
// treat as a line, submit that line to process_line_segment, and
// continue with the remaining curve. Stops early (returning a residual
// cubic) the moment a leading line bridges the strip boundary. Every
// piece split off is reoriented by the edge's own winding rather than
// forced downward, so the curve's true direction survives into the
// fill primitives it generates.
func (t *Tiler) flattenCubic(remaining geom.Segment, stripY int32, winding int32) (ActiveEdge, bool) {
	for {
		before := remaining
		split := float32(1.0)
		var after geom.Segment
		// Cap the bisection depth: each halving roughly doubles
		// flatness precision, so 32 halvings is far beyond any
		// device-pixel tolerance and guards against a curve that
		// never satisfies IsFlat due to floating-point degeneracy.
		for i := 0; i < 32 && !before.IsFlat(t.Config.FlatteningTolerance); i++ {
			split *= 0.5
			before, after = remaining.Split(split)
		}

		lower, consumed := t.processLineSegment(before.Baseline.Orient(winding), stripY)
		if !consumed {
			if split == 1.0 {
				return ActiveEdge{Segment: geom.LineSeg(lower), Crossing: lower.UpperPoint(), Winding: winding}, true
			}
			return ActiveEdge{Segment: after.Orient(winding), Crossing: lower.UpperPoint(), Winding: winding}, true
		}

		if split == 1.0 {
			return ActiveEdge{}, false
		}
		remaining = after
	}
}

// processLineSegment implements spec §4.F's process_line_segment: emit
// fills for whatever part of line lies within the current strip. If
// line crosses the strip's bottom boundary, the part below it is
// returned as the residual with consumed == false.
func (t *Tiler) processLineSegment(line geom.LineSegment2F, stripY int32) (residual geom.LineSegment2F, consumed bool) {
	if line.From == line.To {
		return geom.LineSegment2F{}, true
	}
	tileBottom := float32(stripY+1) * float32(t.Config.TileHeight)
	if line.MaxY() <= tileBottom {
		t.Object.GenerateFillPrimitivesForLine(line, stripY, t.NextAlphaTileIndex)
		return geom.LineSegment2F{}, true
	}
	upper, lower := line.SplitAtY(tileBottom)
	t.Object.GenerateFillPrimitivesForLine(upper, stripY, t.NextAlphaTileIndex)
	return lower, false
}
