package sarray

import (
	"iter"
	"math"

	"golang.org/x/exp/constraints"
)

// Array owns a fixed number of contiguously stored elements.
//
// The length is set at construction and never changes. All indexed access
// goes through [Array.At], which validates the index and returns a [Ref].
type Array[T any] struct {
	data []T
}

// New returns an Array of n zero-valued elements.
//
// Panics if n is negative.
func New[T any](n int) *Array[T] {
	if n < 0 {
		panic("sarray: negative length")
	}

	return &Array[T]{data: make([]T, n)}
}

// Of returns an Array that adopts backing as its storage.
//
// The length is len(backing) for the lifetime of the Array. Passing a slice
// of a Go array (buf[:]) keeps the storage layout of that array. The caller
// must not retain other references to backing if it wants the bounds
// guarantees to hold for all writes.
func Of[T any](backing []T) *Array[T] {
	return &Array[T]{data: backing[:len(backing):len(backing)]}
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// IsValidIndex reports whether 0 <= i < Len().
func (a *Array[T]) IsValidIndex(i int) bool {
	return i >= 0 && i < len(a.data)
}

// At returns a Ref for index i.
//
// A valid index yields a Ref bound to the live slot. Any other index
// (negative, Len() or beyond) yields an invalid Ref with its own zero-valued
// backing storage. At never panics and never touches memory outside the
// array.
func (a *Array[T]) At(i int) Ref[T] {
	if !a.IsValidIndex(i) {
		return a.invalid(i)
	}

	return Ref[T]{ptr: &a.data[i], valid: true, index: i, length: len(a.data)}
}

// AtIndex is [Array.At] for any integer type.
//
// Values that do not fit in an int (large uint64, or int64 on 32-bit
// platforms) always yield an invalid Ref.
func AtIndex[T any, I constraints.Integer](a *Array[T], i I) Ref[T] {
	if i < 0 {
		if int64(i) < math.MinInt {
			return a.invalid(math.MinInt)
		}

		return a.invalid(int(i))
	}

	if uint64(i) >= uint64(len(a.data)) {
		if uint64(i) > math.MaxInt {
			return a.invalid(math.MaxInt)
		}

		return a.invalid(int(i))
	}

	return a.At(int(i))
}

func (a *Array[T]) invalid(i int) Ref[T] {
	return Ref[T]{ptr: new(T), index: i, length: len(a.data)}
}

// ValueOr returns the element at i, or def if i is out of range.
func (a *Array[T]) ValueOr(i int, def T) T {
	if !a.IsValidIndex(i) {
		return def
	}

	return a.data[i]
}

// Begin returns an iterator at position 0.
func (a *Array[T]) Begin() Iterator[T] {
	return Iterator[T]{arr: a, pos: 0}
}

// End returns an iterator at position Len(), one past the last element.
func (a *Array[T]) End() Iterator[T] {
	return Iterator[T]{arr: a, pos: len(a.data)}
}

// All yields every index with its Ref, in order.
func (a *Array[T]) All() iter.Seq2[int, Ref[T]] {
	return func(yield func(int, Ref[T]) bool) {
		for it := a.Begin(); it.Less(a.End()); it = it.Next() {
			if !yield(it.Pos(), it.Ref()) {
				return
			}
		}
	}
}

// Values yields every element value, in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, ref := range a.All() {
			if !yield(ref.Get()) {
				return
			}
		}
	}
}

// Unsafe returns a view of the raw storage with no bounds checking.
//
// Intended for generic code that requires genuine mutable references.
// Nothing reached through the view is protected by this package.
func (a *Array[T]) Unsafe() UnsafeView[T] {
	return UnsafeView[T]{arr: a}
}
