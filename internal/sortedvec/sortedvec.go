// SPDX-License-Identifier: Unlicense OR MIT

// Package sortedvec implements the monotone-insertion ordered container
// of spec §4.B: a priority queue (endpoint events, ordered by ascending
// key) and an active-edge list (ordered by ascending x-intercept) both
// reduce to "keep a slice sorted under single-element insertion". n is
// small — typically at most a few dozen active edges — so an O(n)
// insertion sort beats the constant overhead of a heap.
package sortedvec

import "golang.org/x/exp/slices"

// Less reports whether a sorts before b. Implementations must supply a
// strict total order — ties must be broken deterministically, since the
// tiler depends on reproducible (contour, point) tie-breaking for its
// endpoint queue (spec §4.F).
type Less[T any] func(a, b T) bool

// SortedVector is a slice kept sorted by less under Push/Pop/Peek.
type SortedVector[T any] struct {
	array []T
	less  Less[T]
}

// New creates an empty SortedVector ordered by less.
func New[T any](less Less[T]) *SortedVector[T] {
	return &SortedVector[T]{less: less}
}

// Clear empties the vector without releasing its backing array.
func (v *SortedVector[T]) Clear() { v.array = v.array[:0] }

// Len reports the number of elements currently held.
func (v *SortedVector[T]) Len() int { return len(v.array) }

// Push inserts item, maintaining sort order.
func (v *SortedVector[T]) Push(item T) {
	i, _ := slices.BinarySearchFunc(v.array, item, func(a, b T) int {
		switch {
		case v.less(a, b):
			return -1
		case v.less(b, a):
			return 1
		default:
			return 0
		}
	})
	v.array = slices.Insert(v.array, i, item)
}

// Peek returns the first (smallest, per less) element without removing
// it. The second return value is false when the vector is empty.
func (v *SortedVector[T]) Peek() (T, bool) {
	var zero T
	if len(v.array) == 0 {
		return zero, false
	}
	return v.array[0], true
}

// Pop removes and returns the first element. The second return value is
// false when the vector is empty.
func (v *SortedVector[T]) Pop() (T, bool) {
	var zero T
	if len(v.array) == 0 {
		return zero, false
	}
	item := v.array[0]
	v.array = v.array[1:]
	return item, true
}

// Array exposes the backing slice without copying it. The tiler's strip
// sweep copies it into its reusable scratch buffer at the start of each
// strip.
func (v *SortedVector[T]) Array() []T { return v.array }

// SetArray replaces the backing slice directly. Callers are responsible
// for maintaining sort order.
func (v *SortedVector[T]) SetArray(a []T) { v.array = a }
