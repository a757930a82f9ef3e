package sarray

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by contract violation panics.
//
// Callers that recover a panic should use [errors.Is]:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        err, ok := r.(error)
//	        if ok && errors.Is(err, sarray.ErrInvalidDeref) {
//	            // ...
//	        }
//	    }
//	}()
var (
	// ErrInvalidDeref indicates [Ref.Get] was called on an invalid Ref.
	//
	// This is a programming error. Use [Ref.ValueOr] or check [Ref.Valid].
	ErrInvalidDeref = errors.New("sarray: dereference of invalid ref")

	// ErrInvalidSwap indicates a swap where at least one Ref is invalid.
	//
	// This is a programming error.
	ErrInvalidSwap = errors.New("sarray: swap with invalid ref")
)

// noIndex marks a Ref that was not produced by indexing (the zero Ref).
const noIndex = -1

// ContractViolation is the panic value for precondition violations.
//
// Left and Right hold the indices the offending Refs were requested with,
// or -1 when a Ref did not come from an index. Right is -1 for a
// single-operand violation.
type ContractViolation struct {
	Err   error
	Left  int
	Right int
	Len   int
}

func (v *ContractViolation) Error() string {
	if v.Right == noIndex {
		return fmt.Sprintf("%v (index %d, len %d)", v.Err, v.Left, v.Len)
	}

	return fmt.Sprintf("%v (indices %d and %d, len %d)", v.Err, v.Left, v.Right, v.Len)
}

func (v *ContractViolation) Unwrap() error {
	return v.Err
}
