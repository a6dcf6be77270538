// SPDX-License-Identifier: Unlicense OR MIT

// Package atlas implements the quadtree texture allocator of spec §4.D:
// a recursive power-of-two bin-packer across multiple GPU-resident
// atlas pages, plus plain image and render-target pages for requests
// too large to share an atlas.
package atlas

import "github.com/vectorcore/tiler/geom"

// AtlasTextureLength is the default side length of a newly created
// atlas page (spec §6).
const AtlasTextureLength = 1024

// PaintPageId indexes a page inside a TextureAllocator. Pages are
// append-only and never re-indexed (spec §3).
type PaintPageId uint32

// RenderTargetId names a render-target page, assigned by the caller
// (the SceneBuilder owns the counter; spec §5).
type RenderTargetId uint32

// TextureLocation is the result of a successful allocation: which page
// it landed on, and where within that page.
type TextureLocation struct {
	Page PaintPageId
	Rect geom.RectI
}

type pageKind uint8

const (
	pageAtlas pageKind = iota
	pageImage
	pageRenderTarget
)

type texturePage struct {
	kind           pageKind
	atlas          *TextureAtlasAllocator
	size           geom.Vector2I
	renderTargetID RenderTargetId
}

// TextureAllocator owns every GPU-resident page the renderer will
// upload paint data into: quadtree atlases for small requests, and
// dedicated image/render-target pages for oversize ones.
type TextureAllocator struct {
	pages         []texturePage
	atlasLength   uint32
}

// New creates an empty TextureAllocator. atlasLength overrides the
// default 1024px atlas page side; 0 selects the default.
func New(atlasLength uint32) *TextureAllocator {
	if atlasLength == 0 {
		atlasLength = AtlasTextureLength
	}
	return &TextureAllocator{atlasLength: atlasLength}
}

// Allocate places a requestedSize paint texture deterministically: an
// oversize request (either dimension larger than the atlas length)
// always gets its own Image page; otherwise the first atlas page with
// room wins, and a new atlas page is appended if none has room.
func (a *TextureAllocator) Allocate(requestedSize geom.Vector2I) TextureLocation {
	if requestedSize.X > int32(a.atlasLength) || requestedSize.Y > int32(a.atlasLength) {
		return a.allocateImage(requestedSize)
	}

	for i := range a.pages {
		p := &a.pages[i]
		if p.kind != pageAtlas {
			continue
		}
		if rect, ok := p.atlas.Allocate(requestedSize); ok {
			return TextureLocation{Page: PaintPageId(i), Rect: rect}
		}
	}

	page := PaintPageId(len(a.pages))
	newAtlas := newTextureAtlasAllocator(a.atlasLength)
	rect, ok := newAtlas.Allocate(requestedSize)
	if !ok {
		panic("atlas: allocation into a freshly created page failed")
	}
	a.pages = append(a.pages, texturePage{kind: pageAtlas, atlas: newAtlas})
	return TextureLocation{Page: page, Rect: rect}
}

func (a *TextureAllocator) allocateImage(requestedSize geom.Vector2I) TextureLocation {
	page := PaintPageId(len(a.pages))
	a.pages = append(a.pages, texturePage{kind: pageImage, size: requestedSize})
	return TextureLocation{Page: page, Rect: geom.RectIFromPoints(geom.Vector2I{}, requestedSize)}
}

// AllocateRenderTarget always appends a fresh render-target page sized
// exactly to requestedSize and tagged with id.
func (a *TextureAllocator) AllocateRenderTarget(requestedSize geom.Vector2I, id RenderTargetId) TextureLocation {
	page := PaintPageId(len(a.pages))
	a.pages = append(a.pages, texturePage{kind: pageRenderTarget, size: requestedSize, renderTargetID: id})
	return TextureLocation{Page: page, Rect: geom.RectIFromPoints(geom.Vector2I{}, requestedSize)}
}

// Free releases a previously returned atlas allocation. loc must have
// been returned by this allocator's Allocate for an Atlas page, or
// behavior is unspecified (spec §4.D).
func (a *TextureAllocator) Free(loc TextureLocation) {
	p := &a.pages[loc.Page]
	if p.kind != pageAtlas {
		return
	}
	p.atlas.Free(loc.Rect)
}

// PageSize returns the pixel dimensions of page.
func (a *TextureAllocator) PageSize(page PaintPageId) geom.Vector2I {
	p := &a.pages[page]
	switch p.kind {
	case pageAtlas:
		return geom.SplatI(int32(p.atlas.size))
	default:
		return p.size
	}
}

// PageScale returns 1/PageSize(page), the factor that maps pixel
// coordinates within the page to normalized [0,1] texture coordinates.
func (a *TextureAllocator) PageScale(page PaintPageId) geom.Vector2F {
	size := a.PageSize(page).ToF()
	return geom.SplatF(1).Div(size)
}

// PageCount returns the number of pages appended so far.
func (a *TextureAllocator) PageCount() uint32 { return uint32(len(a.pages)) }

// PageRenderTargetId returns the render-target id for page, or false if
// page is not a render-target page.
func (a *TextureAllocator) PageRenderTargetId(page PaintPageId) (RenderTargetId, bool) {
	p := &a.pages[page]
	if p.kind != pageRenderTarget {
		return 0, false
	}
	return p.renderTargetID, true
}
