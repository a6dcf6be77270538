// SPDX-License-Identifier: Unlicense OR MIT

package geom

import "testing"

func TestRectIIntersection(t *testing.T) {
	a := RectIFromPoints(Pt2I(0, 0), Pt2I(10, 10))
	b := RectIFromPoints(Pt2I(5, 5), Pt2I(10, 10))
	got := a.Intersection(b)
	want := RectIFromPoints(Pt2I(5, 5), Pt2I(5, 5))
	if got != want {
		t.Fatalf("Intersection = %+v, want %+v", got, want)
	}
}

func TestRectIIntersectionEmpty(t *testing.T) {
	a := RectIFromPoints(Pt2I(0, 0), Pt2I(5, 5))
	b := RectIFromPoints(Pt2I(10, 10), Pt2I(5, 5))
	if got := a.Intersection(b); !got.Empty() {
		t.Fatalf("Intersection = %+v, want empty", got)
	}
}

func TestRectFRoundOut(t *testing.T) {
	r := RectFFromPoints(Pt2F(0.1, 0.9), Pt2F(31.2, 31.2))
	got := r.RoundOut()
	if got.MinX() != 0 || got.MinY() != 0 {
		t.Fatalf("RoundOut origin = %+v, want (0,0)", got.Origin)
	}
	if got.MaxX() != 32 || got.MaxY() != 33 {
		t.Fatalf("RoundOut max = (%v,%v), want (32,33)", got.MaxX(), got.MaxY())
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[uint32]uint32{0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 1023: 1024, 1024: 1024}
	for in, want := range cases {
		if got := NextPowerOfTwo(in); got != want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestLineSegmentSplitAtY(t *testing.T) {
	l := Line(Pt2F(0, 0), Pt2F(10, 10))
	upper, lower := l.SplitAtY(4)
	if upper.To != (Vector2F{4, 4}) || lower.From != (Vector2F{4, 4}) {
		t.Fatalf("SplitAtY mismatch: upper=%+v lower=%+v", upper, lower)
	}
}

func TestSegmentToCubicAndFlat(t *testing.T) {
	line := LineSeg(Line(Pt2F(0, 0), Pt2F(10, 0)))
	cubic := line.ToCubic()
	if !cubic.IsFlat(0.01) {
		t.Fatalf("a degree-elevated line should always be flat")
	}
	quad := QuadraticSeg(Line(Pt2F(0, 0), Pt2F(10, 0)), Pt2F(5, 10))
	cubicFromQuad := quad.ToCubic()
	if cubicFromQuad.IsFlat(0.01) {
		t.Fatalf("a curved quadratic should not be flat at a tight tolerance")
	}
}

func TestSegmentSplit(t *testing.T) {
	c := CubicSeg(Line(Pt2F(0, 0), Pt2F(10, 0)), Pt2F(0, 10), Pt2F(10, 10))
	before, after := c.Split(0.5)
	if before.Baseline.From != (Vector2F{0, 0}) {
		t.Fatalf("before.Baseline.From = %+v", before.Baseline.From)
	}
	if after.Baseline.To != (Vector2F{10, 0}) {
		t.Fatalf("after.Baseline.To = %+v", after.Baseline.To)
	}
	if before.Baseline.To != after.Baseline.From {
		t.Fatalf("split halves should share the midpoint")
	}
}
