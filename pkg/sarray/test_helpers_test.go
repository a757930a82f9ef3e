package sarray_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/sarray/pkg/sarray"
)

// requireViolation fails t unless fn panics with a contract violation
// wrapping want. Returns the violation for further assertions.
func requireViolation(t *testing.T, want error, fn func()) *sarray.ContractViolation {
	t.Helper()

	var recovered any

	func() {
		defer func() { recovered = recover() }()

		fn()
	}()

	require.NotNil(t, recovered, "expected a panic wrapping %v", want)

	err, ok := recovered.(error)
	require.True(t, ok, "panic value should be an error, got %T", recovered)
	require.ErrorIs(t, err, want)

	var violation *sarray.ContractViolation
	require.True(t, errors.As(err, &violation), "panic value should be a *ContractViolation")

	return violation
}

// descending20 returns an array holding 20, 19, ..., 1.
func descending20() *sarray.Array[int] {
	arr := sarray.New[int](20)
	for i := range 20 {
		arr.At(i).Set(20 - i)
	}

	return arr
}
