// Package model provides a deliberately simple, in-memory state model of
// sarray's publicly observable behavior.
//
// The model is intentionally easy to audit: it stores plain values and
// spells out every bounds check, so fuzz tests can compare it against the
// real Array operation by operation.
package model

import (
	"cmp"
	"slices"
)

// ArrayModel mirrors an sarray.Array.
//
// Operations that would violate a contract on the real Array report ok=false
// and leave the model unchanged.
type ArrayModel[T cmp.Ordered] struct {
	Values []T
}

// New returns a model of n zero values.
func New[T cmp.Ordered](n int) *ArrayModel[T] {
	return &ArrayModel[T]{Values: make([]T, n)}
}

// Clone makes a deep copy so metamorphic tests can fork the same state.
func (m *ArrayModel[T]) Clone() *ArrayModel[T] {
	if m == nil {
		return nil
	}

	return &ArrayModel[T]{Values: slices.Clone(m.Values)}
}

// Len returns the number of elements.
func (m *ArrayModel[T]) Len() int {
	return len(m.Values)
}

// Valid reports whether i addresses an element.
func (m *ArrayModel[T]) Valid(i int) bool {
	return i >= 0 && i < len(m.Values)
}

// Get returns the value at i. ok is false when reading i would be a
// contract violation.
func (m *ArrayModel[T]) Get(i int) (T, bool) {
	if !m.Valid(i) {
		var zero T

		return zero, false
	}

	return m.Values[i], true
}

// ValueOr returns the value at i, or def when i is out of range.
func (m *ArrayModel[T]) ValueOr(i int, def T) T {
	if !m.Valid(i) {
		return def
	}

	return m.Values[i]
}

// Set writes v at i. Writes to an out-of-range index are dropped.
func (m *ArrayModel[T]) Set(i int, v T) {
	if m.Valid(i) {
		m.Values[i] = v
	}
}

// Assign copies the value at src to dst. An out-of-range src denotes the
// zero value; an out-of-range dst drops the write.
func (m *ArrayModel[T]) Assign(dst, src int) {
	var v T
	if m.Valid(src) {
		v = m.Values[src]
	}

	m.Set(dst, v)
}

// Swap exchanges the values at i and j. ok is false when either index is
// out of range.
func (m *ArrayModel[T]) Swap(i, j int) bool {
	if !m.Valid(i) || !m.Valid(j) {
		return false
	}

	m.Values[i], m.Values[j] = m.Values[j], m.Values[i]

	return true
}

// Fill sets every value to v.
func (m *ArrayModel[T]) Fill(v T) {
	for i := range m.Values {
		m.Values[i] = v
	}
}

// Sort orders the values ascending, or descending when desc is set.
func (m *ArrayModel[T]) Sort(desc bool) {
	slices.Sort(m.Values)

	if desc {
		slices.Reverse(m.Values)
	}
}

// Reverse reverses the values in place.
func (m *ArrayModel[T]) Reverse() {
	slices.Reverse(m.Values)
}

// Find returns the first index holding v, or Len() when absent.
func (m *ArrayModel[T]) Find(v T) int {
	idx := slices.Index(m.Values, v)
	if idx < 0 {
		return len(m.Values)
	}

	return idx
}
