// SPDX-License-Identifier: Unlicense OR MIT

// Package outline implements the immutable path input to the Tiler
// (spec §3): an ordered sequence of closed Contours, each an ordered
// sequence of endpoints with interleaved control-point metadata.
package outline

import "github.com/vectorcore/tiler/geom"

// PointIndex names a point inside a specific contour of an Outline.
type PointIndex struct {
	Contour uint32
	Point   uint32
}

// Contour is a closed loop of on-curve endpoints with interleaved
// off-curve control points: a segment between two consecutive endpoints
// carries zero control points (line), one (quadratic), or two (cubic).
type Contour struct {
	Points  []geom.Vector2F
	OnCurve []bool
}

// Len returns the number of points (endpoints and control points
// together) in the contour.
func (c *Contour) Len() int { return len(c.Points) }

func (c *Contour) wrap(i int) int {
	n := len(c.Points)
	return ((i % n) + n) % n
}

// PositionOf returns the position of the point at index i.
func (c *Contour) PositionOf(i uint32) geom.Vector2F { return c.Points[i] }

// PrevEndpointIndexOf returns the index of the nearest on-curve point
// strictly before i, wrapping around the contour.
func (c *Contour) PrevEndpointIndexOf(i uint32) uint32 {
	j := c.wrap(int(i) - 1)
	for !c.OnCurve[j] {
		j = c.wrap(j - 1)
	}
	return uint32(j)
}

// NextEndpointIndexOf returns the index of the nearest on-curve point
// strictly after i, wrapping around the contour.
func (c *Contour) NextEndpointIndexOf(i uint32) uint32 {
	j := c.wrap(int(i) + 1)
	for !c.OnCurve[j] {
		j = c.wrap(j + 1)
	}
	return uint32(j)
}

// SegmentAfter builds the Segment running from the endpoint at i to the
// next endpoint, consuming whatever control points lie between them.
func (c *Contour) SegmentAfter(i uint32) geom.Segment {
	next := c.NextEndpointIndexOf(i)
	from, to := c.Points[i], c.Points[next]

	var ctrls []geom.Vector2F
	for j := c.wrap(int(i) + 1); ; j = c.wrap(j + 1) {
		if c.OnCurve[j] {
			break
		}
		ctrls = append(ctrls, c.Points[j])
		if uint32(j) == next {
			break
		}
	}

	baseline := geom.Line(from, to)
	switch len(ctrls) {
	case 0:
		if from == to {
			return geom.NoneSeg()
		}
		return geom.LineSeg(baseline)
	case 1:
		return geom.QuadraticSeg(baseline, ctrls[0])
	case 2:
		return geom.CubicSeg(baseline, ctrls[0], ctrls[1])
	default:
		panic("outline: more than two control points between endpoints")
	}
}

// Outline is an ordered sequence of Contours (spec §3).
type Outline struct {
	Contours []Contour
}

// Bounds returns the bounding box over every point (on- and off-curve)
// in the outline. Since a quadratic or cubic Bézier always lies within
// the convex hull of its control polygon, this is a valid (if loose)
// bound for every segment it contains.
func (o *Outline) Bounds() geom.RectF {
	var min, max geom.Vector2F
	first := true
	for _, c := range o.Contours {
		for _, p := range c.Points {
			if first {
				min, max = p, p
				first = false
				continue
			}
			min = min.Min(p)
			max = max.Max(p)
		}
	}
	if first {
		return geom.RectF{}
	}
	return geom.RectFFromPoints(min, max.Sub(min))
}

// PositionOf returns the device-space position named by idx.
func (o *Outline) PositionOf(idx PointIndex) geom.Vector2F {
	return o.Contours[idx.Contour].PositionOf(idx.Point)
}

// PrevEndpointIndexOf returns the endpoint preceding idx within its contour.
func (o *Outline) PrevEndpointIndexOf(idx PointIndex) PointIndex {
	return PointIndex{Contour: idx.Contour, Point: o.Contours[idx.Contour].PrevEndpointIndexOf(idx.Point)}
}

// NextEndpointIndexOf returns the endpoint following idx within its contour.
func (o *Outline) NextEndpointIndexOf(idx PointIndex) PointIndex {
	return PointIndex{Contour: idx.Contour, Point: o.Contours[idx.Contour].NextEndpointIndexOf(idx.Point)}
}

// SegmentAfter returns the Segment running from idx to its contour's
// next endpoint.
func (o *Outline) SegmentAfter(idx PointIndex) geom.Segment {
	return o.Contours[idx.Contour].SegmentAfter(idx.Point)
}

// PointIsLogicallyAbove reports whether a lies above b: strictly
// smaller y, with ties broken by point index to guarantee a strict
// total order (spec §3).
func (o *Outline) PointIsLogicallyAbove(a, b PointIndex) bool {
	pa, pb := o.PositionOf(a), o.PositionOf(b)
	if pa.Y != pb.Y {
		return pa.Y < pb.Y
	}
	if a.Contour != b.Contour {
		return a.Contour < b.Contour
	}
	return a.Point < b.Point
}
