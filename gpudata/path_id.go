// SPDX-License-Identifier: Unlicense OR MIT

package gpudata

// PathIdKind tags a PathId as a drawn path or a clip/mask path.
type PathIdKind uint8

const (
	PathDraw PathIdKind = iota
	PathClip
)

// PathId names the path a BuiltObject was produced from, restored from
// tiles.rs's two-variant tagging (Draw(u32) vs a clip-path variant); the
// distilled spec elides the clip variant by name only. pack_and_cull
// uses Kind to skip z-buffer registration and solid-occlusion records
// for clip paths: a clip path tiles identically to a drawn path but
// never occludes or is occluded.
type PathId struct {
	Kind  PathIdKind
	Index uint32
}

func DrawPathId(index uint32) PathId { return PathId{Kind: PathDraw, Index: index} }
func ClipPathId(index uint32) PathId { return PathId{Kind: PathClip, Index: index} }

func (p PathId) IsClip() bool { return p.Kind == PathClip }
