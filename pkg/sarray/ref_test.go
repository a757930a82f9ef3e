package sarray_test

import (
	"cmp"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/sarray/pkg/sarray"
)

func Test_Ref_Get_Panics_When_Ref_Invalid(t *testing.T) {
	t.Parallel()

	arr := sarray.New[int](20)

	violation := requireViolation(t, sarray.ErrInvalidDeref, func() {
		_ = arr.At(20).Get()
	})

	assert.Equal(t, 20, violation.Left)
	assert.Equal(t, 20, violation.Len)
	assert.Contains(t, violation.Error(), "index 20, len 20")
}

func Test_Ref_Get_Panics_When_Ref_Is_Zero_Value(t *testing.T) {
	t.Parallel()

	var ref sarray.Ref[int]

	assert.False(t, ref.Valid())
	assert.Equal(t, 3, ref.ValueOr(3))

	violation := requireViolation(t, sarray.ErrInvalidDeref, func() { _ = ref.Get() })
	assert.Equal(t, -1, violation.Left)
}

func Test_Ref_Set_Is_Discarded_When_Ref_Is_Zero_Value(t *testing.T) {
	t.Parallel()

	var ref sarray.Ref[int]

	ref.Set(5)
	*ref.Ptr() = 6

	assert.Equal(t, 0, *ref.Ptr())
}

func Test_Ref_Copies_Share_Backing_When_Ref_Invalid(t *testing.T) {
	t.Parallel()

	arr := sarray.New[string](2)

	ref := arr.At(-5)
	alias := ref

	ref.Set("kept")

	assert.Equal(t, "kept", *alias.Ptr())
	assert.Equal(t, "fallback", alias.ValueOr("fallback"), "ValueOr ignores the backing value")
}

func Test_Ref_Assign_Copies_Value_When_Both_Valid(t *testing.T) {
	t.Parallel()

	arr := sarray.New[int](3)
	arr.At(0).Set(10)

	dst := arr.At(2)
	dst.Assign(arr.At(0))

	assert.Equal(t, 10, arr.At(2).Get())
	assert.Equal(t, 10, arr.At(0).Get(), "source keeps its value")

	arr.At(0).Set(11)
	assert.Equal(t, 10, dst.Get(), "assign copies the value and does not rebind")
}

func Test_Ref_Assign_Uses_Backing_When_Either_Side_Invalid(t *testing.T) {
	t.Parallel()

	arr := sarray.New[int](2)
	arr.At(0).Set(4)
	arr.At(1).Set(8)

	invalid := arr.At(9)
	invalid.Assign(arr.At(0))
	assert.Equal(t, 4, *invalid.Ptr(), "valid -> invalid writes the backing value")
	assert.Equal(t, []int{4, 8}, arr.Unsafe().Slice())

	invalid.Set(15)
	arr.At(1).Assign(invalid)
	assert.Equal(t, 15, arr.At(1).Get(), "invalid -> valid copies the backing value")

	fresh := arr.At(-1)
	fresh.Assign(invalid)
	assert.Equal(t, 15, *fresh.Ptr(), "invalid -> invalid copies between backing values")
}

func Test_Ref_Swap_Exchanges_Values_When_Both_Valid(t *testing.T) {
	t.Parallel()

	arr := descending20()

	sarray.Swap(arr.At(1), arr.At(2))

	assert.Equal(t, 18, arr.At(1).Get())
	assert.Equal(t, 19, arr.At(2).Get())

	for i := range 20 {
		if i == 1 || i == 2 {
			continue
		}

		assert.Equal(t, 20-i, arr.At(i).Get(), "index %d must be unchanged", i)
	}
}

func Test_Ref_Swap_Is_Noop_When_Same_Slot(t *testing.T) {
	t.Parallel()

	arr := descending20()

	arr.At(4).Swap(arr.At(4))

	assert.Equal(t, 16, arr.At(4).Get())
}

func Test_Ref_Swap_Panics_When_Either_Side_Invalid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		left  int
		right int
	}{
		{name: "LeftInvalid", left: -1, right: 3},
		{name: "RightInvalid", left: 3, right: 20},
		{name: "BothInvalid", left: 20, right: 100000000},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			arr := descending20()

			violation := requireViolation(t, sarray.ErrInvalidSwap, func() {
				sarray.Swap(arr.At(testCase.left), arr.At(testCase.right))
			})

			assert.Equal(t, testCase.left, violation.Left)
			assert.Equal(t, testCase.right, violation.Right)
			assert.Equal(t, 17, arr.At(3).Get(), "a failed swap must not modify the array")
		})
	}
}

func Test_Compare_Agrees_With_Values_When_Validity_Varies(t *testing.T) {
	t.Parallel()

	arr := sarray.New[int](3)
	arr.At(0).Set(-4)
	arr.At(1).Set(0)
	arr.At(2).Set(9)

	makeInvalid := func(v int) sarray.Ref[int] {
		ref := arr.At(-1)
		ref.Set(v)

		return ref
	}

	refs := map[string]sarray.Ref[int]{
		"valid(-4)":   arr.At(0),
		"valid(0)":    arr.At(1),
		"valid(9)":    arr.At(2),
		"invalid(-9)": makeInvalid(-9),
		"invalid(0)":  arr.At(3),
		"invalid(4)":  makeInvalid(4),
		"invalid(9)":  makeInvalid(9),
	}

	for leftName, left := range refs {
		for rightName, right := range refs {
			want := cmp.Compare(*left.Ptr(), *right.Ptr())

			assert.Equal(t, want, sarray.Compare(left, right), "Compare(%s, %s)", leftName, rightName)
			assert.Equal(t, want < 0, sarray.Less(left, right), "Less(%s, %s)", leftName, rightName)
		}
	}
}

func Test_Ref_CompareFunc_Uses_Custom_Order_When_Element_Not_Ordered(t *testing.T) {
	t.Parallel()

	type point struct{ x, y int }

	arr := sarray.New[point](2)
	arr.At(0).Set(point{x: 1, y: 5})
	arr.At(1).Set(point{x: 1, y: 2})

	byY := func(a, b point) int { return cmp.Compare(a.y, b.y) }

	require.Positive(t, arr.At(0).CompareFunc(arr.At(1), byY))
	require.Negative(t, arr.At(2).CompareFunc(arr.At(1), byY), "invalid ref compares with zero backing")
}

func Test_Ref_String_Marks_Invalid_When_Formatted(t *testing.T) {
	t.Parallel()

	arr := sarray.New[int](1)
	arr.At(0).Set(3)

	assert.Equal(t, "Ref(3)", fmt.Sprint(arr.At(0)))
	assert.Equal(t, "Ref(invalid:0)", arr.At(1).String())
}
