package sarray

import (
	"cmp"
	"fmt"
)

// Ref is a handle that either refers to a live slot of an [Array] or holds
// a private backing value of its own.
//
// Refs are obtained from [Array.At] and are cheap to copy. Copies of an
// invalid Ref share the same backing value. A Ref must not be used after
// the Array it came from is no longer referenced; it does not keep
// additional storage alive beyond the slot it points at.
//
// The zero Ref is invalid and denotes the zero value of T. Writes through
// a zero Ref are discarded.
type Ref[T any] struct {
	ptr    *T
	valid  bool
	index  int
	length int
}

// Valid reports whether r refers to a live slot.
func (r Ref[T]) Valid() bool {
	return r.valid
}

// Get returns the slot value.
//
// Panics with a [*ContractViolation] wrapping [ErrInvalidDeref] if r is
// invalid.
func (r Ref[T]) Get() T {
	if !r.valid {
		panic(&ContractViolation{Err: ErrInvalidDeref, Left: r.requested(), Right: noIndex, Len: r.length})
	}

	return *r.ptr
}

// Ptr returns the storage r denotes: the live slot when valid, otherwise
// the Ref's own backing value. Writing through the pointer of an invalid
// Ref never reaches the array.
func (r Ref[T]) Ptr() *T {
	if r.ptr == nil {
		return new(T)
	}

	return r.ptr
}

// Set writes v to the storage r denotes.
func (r Ref[T]) Set(v T) {
	if r.ptr == nil {
		return
	}

	*r.ptr = v
}

// ValueOr returns the slot value if r is valid, else def.
func (r Ref[T]) ValueOr(def T) T {
	if !r.valid {
		return def
	}

	return *r.ptr
}

// Assign copies the value denoted by src into the storage r denotes.
// Neither Ref is rebound.
func (r Ref[T]) Assign(src Ref[T]) {
	r.Set(src.value())
}

// Swap exchanges the slot values of r and other.
//
// Panics with a [*ContractViolation] wrapping [ErrInvalidSwap] if either
// Ref is invalid.
func (r Ref[T]) Swap(other Ref[T]) {
	if !r.valid || !other.valid {
		length := r.length
		if !r.valid && other.length > length {
			length = other.length
		}

		panic(&ContractViolation{Err: ErrInvalidSwap, Left: r.requested(), Right: other.requested(), Len: length})
	}

	*r.ptr, *other.ptr = *other.ptr, *r.ptr
}

// CompareFunc orders r and other by the values they denote, using cmpFn.
// An invalid Ref participates with its backing value.
func (r Ref[T]) CompareFunc(other Ref[T], cmpFn func(a, b T) int) int {
	return cmpFn(r.value(), other.value())
}

// String formats the denoted value, marking invalid Refs.
func (r Ref[T]) String() string {
	if !r.valid {
		return fmt.Sprintf("Ref(invalid:%v)", r.value())
	}

	return fmt.Sprintf("Ref(%v)", *r.ptr)
}

// value returns the denoted value: slot, backing, or zero.
func (r Ref[T]) value() T {
	if r.ptr == nil {
		var zero T

		return zero
	}

	return *r.ptr
}

func (r Ref[T]) requested() int {
	if r.ptr == nil {
		return noIndex
	}

	return r.index
}

// Compare orders a and b by the values they denote.
// It agrees with [cmp.Compare] on those values for every combination of
// valid and invalid Refs.
func Compare[T cmp.Ordered](a, b Ref[T]) int {
	return a.CompareFunc(b, cmp.Compare[T])
}

// Less reports whether a denotes a smaller value than b.
func Less[T cmp.Ordered](a, b Ref[T]) bool {
	return Compare(a, b) < 0
}

// Swap exchanges the slot values of a and b. See [Ref.Swap].
func Swap[T any](a, b Ref[T]) {
	a.Swap(b)
}
