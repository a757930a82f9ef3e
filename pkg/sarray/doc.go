// Package sarray provides a fixed-size array whose indexed access never
// reads or writes outside its storage.
//
// Indexing returns a [Ref], a handle that either points at a live slot or
// carries its own private backing value. A Ref can be read with a fallback,
// written, assigned, compared and swapped without the caller first checking
// whether the index was in range.
//
// # Basic Usage
//
//	arr := sarray.New[int](20)
//
//	arr.At(1).Set(5)
//	v := arr.At(1).Get()          // 5
//	d := arr.At(100).ValueOr(66)  // 66, index 100 is out of range
//	ok := arr.At(-1).Valid()      // false
//
//	sarray.Swap(arr.At(1), arr.At(2))
//	sarray.Sort(arr.Begin(), arr.End())
//
// # Contract Violations
//
// Out-of-range indices are not errors: they produce an invalid Ref. Two
// operations have a validity precondition instead:
//   - [Ref.Get] on an invalid Ref
//   - [Ref.Swap] (and [Swap], [IterSwap]) when either side is invalid
//
// Violating a precondition is a programming error and panics with a
// [*ContractViolation] that wraps [ErrInvalidDeref] or [ErrInvalidSwap].
// Use [Ref.ValueOr] when validity is not known.
//
// # Escape Hatch
//
// [Array.Unsafe] returns an [UnsafeView] over the raw storage for code that
// needs genuine mutable references, such as [slices.SortFunc]. Nothing
// obtained through it is bounds checked by this package.
//
// # Concurrency
//
// Array, Ref, Iterator and UnsafeView are not safe for concurrent use.
// Callers sharing an Array across goroutines must serialize access.
package sarray
