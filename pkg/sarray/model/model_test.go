package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/sarray/pkg/sarray/model"
)

func Test_Model_Returns_Zero_Values_When_Created(t *testing.T) {
	t.Parallel()

	m := model.New[int](4)

	diff := cmp.Diff([]int{0, 0, 0, 0}, m.Values)
	assert.Empty(t, diff, "fresh model should hold zero values")
}

func Test_Model_Clone_Returns_Nil_When_Model_Is_Nil(t *testing.T) {
	t.Parallel()

	var m *model.ArrayModel[int]

	assert.Nil(t, m.Clone(), "clone of nil model should be nil")
}

func Test_Model_Clone_Is_Independent_When_Original_Mutated(t *testing.T) {
	t.Parallel()

	m := model.New[int](3)
	m.Set(1, 7)

	clone := m.Clone()
	require.Empty(t, cmp.Diff(m, clone), "clone should match original")

	m.Set(1, 9)

	v, ok := clone.Get(1)
	require.True(t, ok)
	assert.Equal(t, 7, v, "clone should not observe writes to the original")
}

func Test_Model_Reports_Violation_When_Index_Out_Of_Range(t *testing.T) {
	t.Parallel()

	m := model.New[int](3)

	for _, idx := range []int{-1, 3, 1 << 40} {
		_, ok := m.Get(idx)
		assert.False(t, ok, "Get(%d) should report a violation", idx)
		assert.Equal(t, 42, m.ValueOr(idx, 42), "ValueOr(%d) should return the default", idx)
	}

	assert.False(t, m.Swap(0, 3), "swap with an out-of-range side should report a violation")
}

func Test_Model_Assign_Uses_Zero_When_Source_Out_Of_Range(t *testing.T) {
	t.Parallel()

	m := model.New[int](2)
	m.Fill(5)

	m.Assign(0, -1)

	assert.Equal(t, []int{0, 5}, m.Values)
}

func Test_Model_Sort_Orders_Values_When_Desc_Set(t *testing.T) {
	t.Parallel()

	m := &model.ArrayModel[int]{Values: []int{3, 1, 2}}

	m.Sort(true)
	assert.Equal(t, []int{3, 2, 1}, m.Values)

	m.Sort(false)
	assert.Equal(t, []int{1, 2, 3}, m.Values)
}

func Test_Model_Find_Returns_Len_When_Value_Absent(t *testing.T) {
	t.Parallel()

	m := &model.ArrayModel[int]{Values: []int{4, 5, 4}}

	assert.Equal(t, 0, m.Find(4))
	assert.Equal(t, 3, m.Find(6))
}
