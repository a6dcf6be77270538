// SPDX-License-Identifier: Unlicense OR MIT

package atlas

import "github.com/vectorcore/tiler/geom"

// TextureAtlasAllocator is a single power-of-two quadtree bin-packer,
// grounded directly on original_source/renderer/src/allocator.rs.
type TextureAtlasAllocator struct {
	root *treeNode
	size uint32
}

func newTextureAtlasAllocator(length uint32) *TextureAtlasAllocator {
	return &TextureAtlasAllocator{root: &treeNode{kind: nodeEmptyLeaf}, size: length}
}

// Allocate reserves a requestedSize square inside the atlas, rounding
// up to the next power of two. ok is false if the atlas has no room.
func (t *TextureAtlasAllocator) Allocate(requestedSize geom.Vector2I) (rect geom.RectI, ok bool) {
	requested := geom.NextPowerOfTwo(uint32(maxI32(requestedSize.X, requestedSize.Y)))
	return t.root.allocate(geom.Vector2I{}, t.size, requested)
}

// Free releases a rectangle previously returned by Allocate.
func (t *TextureAtlasAllocator) Free(rect geom.RectI) {
	requested := uint32(rect.Width())
	t.root.free(geom.Vector2I{}, t.size, rect.Origin, requested)
}

// IsEmpty reports whether the atlas holds no live allocations.
func (t *TextureAtlasAllocator) IsEmpty() bool { return t.root.kind == nodeEmptyLeaf }

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

type nodeKind uint8

const (
	nodeEmptyLeaf nodeKind = iota
	nodeFullLeaf
	nodeParent
)

// treeNode is the boxed-enum quadtree node of spec §4.D: EmptyLeaf,
// FullLeaf, or Parent with four children ordered top-left, top-right,
// bottom-left, bottom-right.
type treeNode struct {
	kind     nodeKind
	children [4]*treeNode
}

// allocate implements the five-step algorithm of spec §4.D verbatim.
func (n *treeNode) allocate(thisOrigin geom.Vector2I, thisSize, requested uint32) (geom.RectI, bool) {
	if n.kind == nodeFullLeaf || thisSize < requested {
		return geom.RectI{}, false
	}

	if n.kind == nodeEmptyLeaf {
		if thisSize == requested {
			n.kind = nodeFullLeaf
			return geom.RectIFromPoints(thisOrigin, geom.SplatI(int32(thisSize))), true
		}
		n.kind = nodeParent
		for i := range n.children {
			n.children[i] = &treeNode{kind: nodeEmptyLeaf}
		}
	}

	kidSize := thisSize / 2
	origins := [4]geom.Vector2I{
		thisOrigin,
		thisOrigin.Add(geom.Pt2I(int32(kidSize), 0)),
		thisOrigin.Add(geom.Pt2I(0, int32(kidSize))),
		thisOrigin.Add(geom.SplatI(int32(kidSize))),
	}
	for i, kid := range n.children {
		if rect, ok := kid.allocate(origins[i], kidSize, requested); ok {
			return rect, true
		}
	}

	n.mergeIfNecessary()
	return geom.RectI{}, false
}

// free implements spec §4.D's free algorithm: descend by comparing the
// requested origin to this node's center (y first, then x), then
// collapse empty subtrees back up on the way out.
func (n *treeNode) free(thisOrigin geom.Vector2I, thisSize uint32, requestedOrigin geom.Vector2I, requestedSize uint32) {
	if thisSize <= requestedSize {
		if thisSize == requestedSize && thisOrigin == requestedOrigin {
			n.kind = nodeEmptyLeaf
			n.children = [4]*treeNode{}
		}
		return
	}

	childSize := thisSize / 2
	center := thisOrigin.Add(geom.SplatI(int32(childSize)))

	var childIndex int
	childOrigin := thisOrigin
	if requestedOrigin.Y < center.Y {
		if requestedOrigin.X < center.X {
			childIndex = 0
		} else {
			childIndex = 1
			childOrigin = childOrigin.Add(geom.Pt2I(int32(childSize), 0))
		}
	} else {
		if requestedOrigin.X < center.X {
			childIndex = 2
			childOrigin = childOrigin.Add(geom.Pt2I(0, int32(childSize)))
		} else {
			childIndex = 3
			childOrigin = center
		}
	}

	if n.kind != nodeParent {
		// Freeing something that was never allocated through this
		// allocator; spec §4.D leaves this case unspecified. Do nothing
		// rather than panic, since the original Rust source would hit
		// an `unreachable!()` only because its caller contract already
		// guarantees a Parent here.
		return
	}
	n.children[childIndex].free(childOrigin, childSize, requestedOrigin, requestedSize)
	n.mergeIfNecessary()
}

// mergeIfNecessary collapses a Parent whose four children are all
// EmptyLeaf back into a single EmptyLeaf, maintaining the invariant
// that a node is EmptyLeaf iff no descendant leaf is full.
func (n *treeNode) mergeIfNecessary() {
	if n.kind != nodeParent {
		return
	}
	for _, kid := range n.children {
		if kid.kind != nodeEmptyLeaf {
			return
		}
	}
	n.kind = nodeEmptyLeaf
	n.children = [4]*treeNode{}
}
