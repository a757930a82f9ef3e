package sarray

// Iterator is a random-access cursor over an [Array].
//
// Its position may be anywhere, including End() and beyond or below zero.
// Dereferencing goes through [Array.At], so an out-of-range iterator yields
// an invalid [Ref] rather than touching memory outside the array.
//
// Comparing iterators from different arrays is not meaningful and is not
// checked.
type Iterator[T any] struct {
	arr *Array[T]
	pos int
}

// Ref returns the Ref at the current position.
func (it Iterator[T]) Ref() Ref[T] {
	return it.arr.At(it.pos)
}

// Valid reports whether the current position is a valid index.
func (it Iterator[T]) Valid() bool {
	return it.arr.IsValidIndex(it.pos)
}

// ValueOr returns the element at the current position, or def.
func (it Iterator[T]) ValueOr(def T) T {
	return it.arr.ValueOr(it.pos, def)
}

// Pos returns the current position.
func (it Iterator[T]) Pos() int {
	return it.pos
}

// Next returns an iterator one position forward.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Add(1)
}

// Prev returns an iterator one position back.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Add(-1)
}

// Add returns an iterator offset by n positions.
func (it Iterator[T]) Add(n int) Iterator[T] {
	return Iterator[T]{arr: it.arr, pos: it.pos + n}
}

// Sub returns the signed distance it - other.
func (it Iterator[T]) Sub(other Iterator[T]) int {
	return it.pos - other.pos
}

// Equal reports whether both iterators are at the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.pos == other.pos
}

// Less reports whether it is positioned before other.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.pos < other.pos
}
