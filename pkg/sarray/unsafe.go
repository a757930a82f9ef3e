package sarray

import "unsafe"

// UnsafeView exposes the raw storage of an [Array].
//
// SAFETY: nothing reached through an UnsafeView is validated by this
// package. Pointers and slices obtained from it alias the Array's slots
// and must not outlive the Array.
type UnsafeView[T any] struct {
	arr *Array[T]
}

// Slice returns the backing storage. Its length is the Array's length.
func (v UnsafeView[T]) Slice() []T {
	return v.arr.data
}

// Len returns the number of elements in the view.
func (v UnsafeView[T]) Len() int {
	return len(v.arr.data)
}

// Begin returns the address of the first element, or nil when the Array
// is empty.
func (v UnsafeView[T]) Begin() *T {
	if len(v.arr.data) == 0 {
		return nil
	}

	return unsafe.SliceData(v.arr.data)
}

// At returns the address of element i without any bounds check.
//
// The caller must guarantee 0 <= i < Len(); any other i yields a pointer
// outside the storage.
func (v UnsafeView[T]) At(i int) *T {
	var zero T

	base := unsafe.Pointer(unsafe.SliceData(v.arr.data))

	return (*T)(unsafe.Add(base, i*int(unsafe.Sizeof(zero))))
}
