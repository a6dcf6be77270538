// SPDX-License-Identifier: Unlicense OR MIT

package tilemap

import (
	"testing"

	"github.com/vectorcore/tiler/geom"
)

func TestRoundTrip(t *testing.T) {
	rect := geom.RectIFromPoints(geom.Pt2I(2, 3), geom.Pt2I(4, 5))
	m := New[int](rect)
	if got, want := int64(len(m.Data)), rect.Area(); got != want {
		t.Fatalf("len(Data) = %d, want %d", got, want)
	}
	for y := rect.MinY(); y < rect.MaxY(); y++ {
		for x := rect.MinX(); x < rect.MaxX(); x++ {
			coord := geom.Pt2I(x, y)
			idx, ok := m.CoordToIndex(coord)
			if !ok {
				t.Fatalf("CoordToIndex(%+v) reported out of bounds", coord)
			}
			if back := m.IndexToCoord(idx); back != coord {
				t.Fatalf("IndexToCoord(CoordToIndex(%+v)) = %+v", coord, back)
			}
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	rect := geom.RectIFromPoints(geom.Pt2I(0, 0), geom.Pt2I(2, 2))
	m := New[int](rect)
	if _, ok := m.CoordToIndex(geom.Pt2I(5, 5)); ok {
		t.Fatal("CoordToIndex should reject out-of-bounds coordinates")
	}
	if ok := m.Set(geom.Pt2I(-1, 0), 7); ok {
		t.Fatal("Set should reject out-of-bounds coordinates")
	}
}

func TestGetSet(t *testing.T) {
	rect := geom.RectIFromPoints(geom.Pt2I(0, 0), geom.Pt2I(3, 3))
	m := New[int](rect)
	m.Set(geom.Pt2I(1, 1), 42)
	v, ok := m.Get(geom.Pt2I(1, 1))
	if !ok || v != 42 {
		t.Fatalf("Get = %d, %v want 42, true", v, ok)
	}
}
