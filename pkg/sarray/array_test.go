package sarray_test

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/sarray/pkg/sarray"
)

func Test_New_Returns_Zero_Values_When_Created(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2, 20, 1000} {
		ints := sarray.New[int](n)
		require.Equal(t, n, ints.Len())

		for i := range n {
			assert.Equal(t, 0, ints.At(i).Get(), "int element %d of %d", i, n)
		}

		strs := sarray.New[string](n)
		for i := range n {
			assert.Empty(t, strs.At(i).Get(), "string element %d of %d", i, n)
		}
	}
}

func Test_New_Panics_When_Length_Negative(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { sarray.New[int](-1) })
}

func Test_At_Returns_Valid_Ref_When_Index_In_Range(t *testing.T) {
	t.Parallel()

	arr := sarray.New[int](5)

	for i := range 5 {
		ref := arr.At(i)
		require.True(t, ref.Valid(), "index %d should be valid", i)

		ref.Set(i * 10)
		assert.Equal(t, i*10, arr.At(i).Get(), "write through index %d should be observed", i)
	}
}

func Test_At_Returns_Invalid_Ref_When_Index_Out_Of_Range(t *testing.T) {
	t.Parallel()

	arr := sarray.New[int](20)

	for _, idx := range []int{-1, 20, 21, 100, 100000000, math.MaxInt, math.MinInt} {
		ref := arr.At(idx)

		assert.False(t, ref.Valid(), "index %d should be invalid", idx)
		assert.False(t, arr.IsValidIndex(idx), "IsValidIndex(%d)", idx)
		assert.Equal(t, 77, ref.ValueOr(77), "ValueOr on index %d", idx)
		assert.Equal(t, 77, arr.ValueOr(idx, 77), "Array.ValueOr on index %d", idx)
	}
}

func Test_At_Does_Not_Touch_Storage_When_Writing_Through_Invalid_Ref(t *testing.T) {
	t.Parallel()

	arr := sarray.New[int](3)
	arr.At(0).Set(1)
	arr.At(1).Set(2)
	arr.At(2).Set(3)

	ref := arr.At(3)
	ref.Set(99)
	*arr.At(-1).Ptr() = 42

	assert.Equal(t, 99, *ref.Ptr(), "write should be observable on the same ref")
	assert.Equal(t, 0, *arr.At(3).Ptr(), "a fresh invalid ref should not observe the write")

	diff := cmp.Diff([]int{1, 2, 3}, slices.Collect(arr.Values()))
	assert.Empty(t, diff, "array contents must be unchanged")
}

func Test_AtIndex_Returns_Invalid_Ref_When_Integer_Out_Of_Range(t *testing.T) {
	t.Parallel()

	arr := sarray.New[int](20)
	arr.At(19).Set(5)

	assert.False(t, sarray.AtIndex(arr, uint64(math.MaxUint64)).Valid())
	assert.False(t, sarray.AtIndex(arr, uint64(20)).Valid())
	assert.False(t, sarray.AtIndex(arr, int64(math.MinInt64)).Valid())
	assert.False(t, sarray.AtIndex(arr, int8(-1)).Valid())
	assert.False(t, sarray.AtIndex(arr, uint8(255)).Valid())

	assert.Equal(t, 5, sarray.AtIndex(arr, uint8(19)).Get())
	assert.Equal(t, 5, sarray.AtIndex(arr, int64(19)).Get())
	assert.Equal(t, 5, sarray.AtIndex(arr, uintptr(19)).Get())
}

func Test_Of_Shares_Storage_When_Wrapping_Go_Array(t *testing.T) {
	t.Parallel()

	var buf [4]int

	arr := sarray.Of(buf[:])
	require.Equal(t, 4, arr.Len())

	arr.At(2).Set(7)
	assert.Equal(t, 7, buf[2], "write should land in the wrapped Go array")

	arr.At(4).Set(9)
	assert.Equal(t, [4]int{0, 0, 7, 0}, buf, "out-of-range write must not touch the Go array")
}

func Test_Of_Clips_Capacity_When_Backing_Has_Spare_Capacity(t *testing.T) {
	t.Parallel()

	backing := make([]int, 2, 8)
	arr := sarray.Of(backing)

	assert.Equal(t, 2, cap(arr.Unsafe().Slice()))
	assert.False(t, arr.At(2).Valid())
}

func Test_All_Yields_Indices_And_Refs_When_Ranged(t *testing.T) {
	t.Parallel()

	arr := descending20()

	var indices []int

	for i, ref := range arr.All() {
		indices = append(indices, i)

		require.True(t, ref.Valid())
		ref.Set(ref.Get() * 2)
	}

	assert.Len(t, indices, 20)
	assert.Equal(t, 40, arr.At(0).Get())
	assert.Equal(t, 2, arr.At(19).Get())
}

func Test_Values_Stops_When_Consumer_Breaks(t *testing.T) {
	t.Parallel()

	arr := descending20()

	var seen []int

	for v := range arr.Values() {
		seen = append(seen, v)
		if len(seen) == 3 {
			break
		}
	}

	assert.Equal(t, []int{20, 19, 18}, seen)
}
