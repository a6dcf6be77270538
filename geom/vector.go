// SPDX-License-Identifier: Unlicense OR MIT

/*
Package geom provides the integer and float vector, rectangle, and line
segment primitives shared by the tiler and texture allocator.

The coordinate space has the origin in the top left corner with the axes
extending right and down, matching device-pixel convention.
*/
package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vector2I is a two dimensional integer vector.
type Vector2I struct {
	X, Y int32
}

// Pt2I returns a Vector2I with the given components.
func Pt2I(x, y int32) Vector2I { return Vector2I{X: x, Y: y} }

// SplatI returns a Vector2I with both components set to v.
func SplatI(v int32) Vector2I { return Vector2I{X: v, Y: v} }

func (a Vector2I) Add(b Vector2I) Vector2I { return Vector2I{a.X + b.X, a.Y + b.Y} }
func (a Vector2I) Sub(b Vector2I) Vector2I { return Vector2I{a.X - b.X, a.Y - b.Y} }

func (a Vector2I) Min(b Vector2I) Vector2I {
	return Vector2I{minI32(a.X, b.X), minI32(a.Y, b.Y)}
}

func (a Vector2I) Max(b Vector2I) Vector2I {
	return Vector2I{maxI32(a.X, b.X), maxI32(a.Y, b.Y)}
}

// ToF converts a to floating point.
func (a Vector2I) ToF() Vector2F { return Vector2F{X: float32(a.X), Y: float32(a.Y)} }

// Vector2F is a two dimensional float32 vector.
type Vector2F struct {
	X, Y float32
}

// Pt2F returns a Vector2F with the given components.
func Pt2F(x, y float32) Vector2F { return Vector2F{X: x, Y: y} }

// SplatF returns a Vector2F with both components set to v.
func SplatF(v float32) Vector2F { return Vector2F{X: v, Y: v} }

func (a Vector2F) Add(b Vector2F) Vector2F   { return Vector2F{a.X + b.X, a.Y + b.Y} }
func (a Vector2F) Sub(b Vector2F) Vector2F   { return Vector2F{a.X - b.X, a.Y - b.Y} }
func (a Vector2F) Scale(s float32) Vector2F  { return Vector2F{a.X * s, a.Y * s} }
func (a Vector2F) Div(b Vector2F) Vector2F   { return Vector2F{a.X / b.X, a.Y / b.Y} }
func (a Vector2F) Lerp(b Vector2F, t float32) Vector2F {
	return a.Add(b.Sub(a).Scale(t))
}

func (a Vector2F) Min(b Vector2F) Vector2F {
	return Vector2F{minF32(a.X, b.X), minF32(a.Y, b.Y)}
}

func (a Vector2F) Max(b Vector2F) Vector2F {
	return Vector2F{maxF32(a.X, b.X), maxF32(a.Y, b.Y)}
}

// ToI converts a to integers, truncating toward zero.
func (a Vector2F) ToI() Vector2I { return Vector2I{X: int32(a.X), Y: int32(a.Y)} }

// Floor returns a with both components rounded toward negative infinity.
func (a Vector2F) Floor() Vector2F {
	return Vector2F{X: float32(math.Floor(float64(a.X))), Y: float32(math.Floor(float64(a.Y)))}
}

// Ceil returns a with both components rounded toward positive infinity.
func (a Vector2F) Ceil() Vector2F {
	return Vector2F{X: float32(math.Ceil(float64(a.X))), Y: float32(math.Ceil(float64(a.Y)))}
}

func minOf[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxOf[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func minI32(a, b int32) int32     { return minOf(a, b) }
func maxI32(a, b int32) int32     { return maxOf(a, b) }
func minF32(a, b float32) float32 { return minOf(a, b) }
func maxF32(a, b float32) float32 { return maxOf(a, b) }

// NextPowerOfTwo returns the smallest power of two >= v, with v == 0
// mapping to 1.
func NextPowerOfTwo(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v++
	return v
}
