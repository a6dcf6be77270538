// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"testing"

	"github.com/vectorcore/tiler/config"
	"github.com/vectorcore/tiler/geom"
	"github.com/vectorcore/tiler/gpudata"
	"github.com/vectorcore/tiler/outline"
)

type fakeMetadata struct{ opaque bool }

func (f fakeMetadata) ColorTexRect() geom.RectF { return geom.RectF{} }
func (f fakeMetadata) IsOpaque() bool           { return f.opaque }
func (f fakeMetadata) CalculateTexCoords(tilePosition geom.Vector2I) geom.Vector2F {
	return geom.Vector2F{}
}

func squareOutline(x0, y0, x1, y1 float32) *outline.Outline {
	return &outline.Outline{Contours: []outline.Contour{{
		Points: []geom.Vector2F{
			geom.Pt2F(x0, y0), geom.Pt2F(x1, y0),
			geom.Pt2F(x1, y1), geom.Pt2F(x0, y1),
		},
		OnCurve: []bool{true, true, true, true},
	}}}
}

func triangleOutline(a, b, c geom.Vector2F) *outline.Outline {
	return &outline.Outline{Contours: []outline.Contour{{
		Points:  []geom.Vector2F{a, b, c},
		OnCurve: []bool{true, true, true},
	}}}
}

// Property 8, restated at the ZBuffer level: updates to the same
// coordinate arriving out of order (2, 9, 5, 1) leave the maximum
// object index in place.
func TestZBufferMaxTracking(t *testing.T) {
	z := NewZBuffer()
	coords := geom.Pt2I(3, 4)
	for _, v := range []uint32{2, 9, 5, 1} {
		z.Update(coords, v)
	}
	got, ok := z.Get(coords)
	if !ok || got != 9 {
		t.Fatalf("zbuffer holds (%d, %v), want (9, true)", got, ok)
	}
}

func TestZBufferGetMissing(t *testing.T) {
	z := NewZBuffer()
	if _, ok := z.Get(geom.Pt2I(0, 0)); ok {
		t.Fatal("Get on an untouched coordinate reported ok, want false")
	}
}

// The command stream for a single path follows §3's grammar: exactly
// one Start, then fills/draws, then exactly one Finish, with every
// AddFills/FlushFills pair for a path preceding its DrawAlphaTiles.
func TestBuildCommandStreamGrammar(t *testing.T) {
	b := NewBuilder(config.DefaultConfig())
	paths := []PathInput{{
		Outline:     triangleOutline(geom.Pt2F(0, 0), geom.Pt2F(16, 0), geom.Pt2F(0, 16)),
		ViewBox:     geom.RectFFromPoints(geom.Pt2F(0, 0), geom.Pt2F(16, 16)),
		Stage:       gpudata.Stage1,
		PathID:      gpudata.DrawPathId(0),
		Paint:       fakeMetadata{opaque: false},
		ObjectIndex: 0,
	}}
	cmds := b.Build(paths, nil, gpudata.BoundingQuad{}, 1234)

	if len(cmds) < 2 {
		t.Fatalf("len(cmds) = %d, want at least Start+Finish", len(cmds))
	}
	if cmds[0].Kind != gpudata.CommandStart {
		t.Fatalf("cmds[0].Kind = %v, want CommandStart", cmds[0].Kind)
	}
	if last := cmds[len(cmds)-1]; last.Kind != gpudata.CommandFinish || last.BuildTimeNanos != 1234 {
		t.Fatalf("last command = %+v, want Finish{BuildTimeNanos: 1234}", last)
	}
	for _, c := range cmds[1 : len(cmds)-1] {
		if c.Kind == gpudata.CommandStart || c.Kind == gpudata.CommandFinish {
			t.Fatalf("Start/Finish must appear exactly once each, found %v in the middle", c.Kind)
		}
	}

	sawFillsBeforeDraw := false
	for _, c := range cmds {
		switch c.Kind {
		case gpudata.CommandAddFills, gpudata.CommandFlushFills:
			sawFillsBeforeDraw = true
		case gpudata.CommandDrawAlphaTiles:
			if !sawFillsBeforeDraw {
				t.Fatal("DrawAlphaTiles appeared before any AddFills/FlushFills")
			}
		}
	}
}

func TestBuildFillBatchingRespectsThreshold(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FillBatchThreshold = 1
	b := NewBuilder(cfg)
	paths := []PathInput{{
		Outline:     triangleOutline(geom.Pt2F(0, 0), geom.Pt2F(16, 0), geom.Pt2F(0, 16)),
		ViewBox:     geom.RectFFromPoints(geom.Pt2F(0, 0), geom.Pt2F(16, 16)),
		Stage:       gpudata.Stage1,
		PathID:      gpudata.DrawPathId(0),
		Paint:       fakeMetadata{opaque: false},
		ObjectIndex: 0,
	}}
	cmds := b.Build(paths, nil, gpudata.BoundingQuad{}, 0)

	var addFills, flushes int
	for i, c := range cmds {
		switch c.Kind {
		case gpudata.CommandAddFills:
			addFills++
			if len(c.Fills) != 1 {
				t.Fatalf("AddFills batch at %d has %d fills, want 1 with threshold 1", i, len(c.Fills))
			}
			if cmds[i+1].Kind != gpudata.CommandFlushFills {
				t.Fatalf("AddFills at %d not immediately followed by FlushFills", i)
			}
		case gpudata.CommandFlushFills:
			flushes++
		}
	}
	if addFills == 0 {
		t.Fatal("expected at least one AddFills command")
	}
	if addFills != flushes {
		t.Fatalf("addFills=%d flushes=%d, want equal (one flush per batch)", addFills, flushes)
	}
}

// Property 9 at the Builder level: BuildParallel emits the same
// sequence of command kinds as Build for the same non-overlapping
// paths, and both register the same z-buffer maxima.
func TestBuildParallelMatchesBuildForNonOverlappingPaths(t *testing.T) {
	newPaths := func() []PathInput {
		return []PathInput{
			{
				Outline:     squareOutline(0, 0, 48, 48),
				ViewBox:     geom.RectFFromPoints(geom.Pt2F(0, 0), geom.Pt2F(48, 48)),
				Stage:       gpudata.Stage1,
				PathID:      gpudata.DrawPathId(0),
				Paint:       fakeMetadata{opaque: true},
				ObjectIndex: 1,
			},
			{
				Outline:     squareOutline(100, 0, 148, 48),
				ViewBox:     geom.RectFFromPoints(geom.Pt2F(0, 0), geom.Pt2F(200, 48)),
				Stage:       gpudata.Stage1,
				PathID:      gpudata.DrawPathId(1),
				Paint:       fakeMetadata{opaque: true},
				ObjectIndex: 2,
			},
		}
	}

	seq := NewBuilder(config.DefaultConfig())
	seqCmds := seq.Build(newPaths(), nil, gpudata.BoundingQuad{}, 0)

	par := NewBuilder(config.DefaultConfig())
	parCmds := par.BuildParallel(newPaths(), 4, nil, gpudata.BoundingQuad{}, 0)

	if len(seqCmds) != len(parCmds) {
		t.Fatalf("len(seqCmds)=%d len(parCmds)=%d, want equal", len(seqCmds), len(parCmds))
	}
	for i := range seqCmds {
		if seqCmds[i].Kind != parCmds[i].Kind {
			t.Fatalf("command %d kind differs: %v vs %v", i, seqCmds[i].Kind, parCmds[i].Kind)
		}
	}

	seqCoords := seq.ZBuf.OccupiedCoordinates()
	if len(seqCoords) == 0 {
		t.Fatal("expected the sequential build to register solid occlusion tiles")
	}
	for _, c := range seqCoords {
		seqV, _ := seq.ZBuf.Get(c)
		parV, ok := par.ZBuf.Get(c)
		if !ok || seqV != parV {
			t.Fatalf("zbuffer at %+v: sequential=%d parallel=(%d,%v), want equal", c, seqV, parV, ok)
		}
	}
}
