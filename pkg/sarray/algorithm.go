package sarray

import (
	"cmp"
	"sort"
)

// Generic algorithms over an iterator range [first, last).
//
// Every element access goes through a Ref, so these never observe memory
// outside the array. A range that reaches past the array contains invalid
// Refs; reading them uses their backing values and swapping them panics
// (see [Ref.Swap]). An empty or inverted range is a no-op.

// refRange adapts an iterator range to [sort.Interface].
type refRange[T any] struct {
	first Iterator[T]
	n     int
	cmpFn func(a, b T) int
}

func newRefRange[T any](first, last Iterator[T], cmpFn func(a, b T) int) refRange[T] {
	return refRange[T]{first: first, n: max(last.Sub(first), 0), cmpFn: cmpFn}
}

func (r refRange[T]) Len() int {
	return r.n
}

func (r refRange[T]) Less(i, j int) bool {
	return r.first.Add(i).Ref().CompareFunc(r.first.Add(j).Ref(), r.cmpFn) < 0
}

func (r refRange[T]) Swap(i, j int) {
	Swap(r.first.Add(i).Ref(), r.first.Add(j).Ref())
}

// Sort sorts [first, last) in ascending order.
func Sort[T cmp.Ordered](first, last Iterator[T]) {
	SortFunc(first, last, cmp.Compare[T])
}

// SortFunc sorts [first, last) by cmpFn. The sort is not stable.
func SortFunc[T any](first, last Iterator[T], cmpFn func(a, b T) int) {
	sort.Sort(newRefRange(first, last, cmpFn))
}

// SortStableFunc sorts [first, last) by cmpFn, keeping equal elements in
// their original order.
func SortStableFunc[T any](first, last Iterator[T], cmpFn func(a, b T) int) {
	sort.Stable(newRefRange(first, last, cmpFn))
}

// IsSortedFunc reports whether [first, last) is sorted by cmpFn.
func IsSortedFunc[T any](first, last Iterator[T], cmpFn func(a, b T) int) bool {
	return sort.IsSorted(newRefRange(first, last, cmpFn))
}

// IterSwap swaps the Refs denoted by a and b.
func IterSwap[T any](a, b Iterator[T]) {
	Swap(a.Ref(), b.Ref())
}

// Fill sets every element of [first, last) to v.
func Fill[T any](first, last Iterator[T], v T) {
	for it := first; it.Less(last); it = it.Next() {
		it.Ref().Set(v)
	}
}

// Find returns the first iterator in [first, last) whose element equals v,
// or last if there is none. Invalid positions never match.
func Find[T comparable](first, last Iterator[T], v T) Iterator[T] {
	for it := first; it.Less(last); it = it.Next() {
		if ref := it.Ref(); ref.Valid() && ref.Get() == v {
			return it
		}
	}

	return last
}

// Reverse reverses [first, last) in place.
func Reverse[T any](first, last Iterator[T]) {
	for lo, hi := first, last.Prev(); lo.Less(hi); lo, hi = lo.Next(), hi.Prev() {
		IterSwap(lo, hi)
	}
}
