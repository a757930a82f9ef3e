package testutil

import (
	"cmp"
	"errors"
	"slices"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/sarray/pkg/sarray"
	"github.com/calvinalkan/sarray/pkg/sarray/model"
)

// Harness holds a model and a real Array that receive the same operations.
type Harness struct {
	Model *model.ArrayModel[int64]
	Real  *sarray.Array[int64]
}

// NewHarness returns a harness over two arrays of the given length.
func NewHarness(length int) *Harness {
	return &Harness{
		Model: model.New[int64](length),
		Real:  sarray.New[int64](length),
	}
}

// RunConfig configures a model-vs-real run.
type RunConfig struct {
	// MaxOps is the maximum number of operations to execute.
	MaxOps int

	// CompareEveryN runs a full state comparison every N operations.
	// Set to 0 to compare only at the end.
	CompareEveryN int
}

// DefaultMaxFuzzOperations bounds a single fuzz iteration.
const DefaultMaxFuzzOperations = 256

// Run executes operations from gen against both sides of a fresh harness
// and fails tb on the first divergence.
func Run(tb testing.TB, length int, gen *OpGenerator, cfg RunConfig) {
	tb.Helper()

	if cfg.MaxOps <= 0 {
		tb.Fatalf("Run requires MaxOps > 0")
	}

	harness := NewHarness(length)

	for opIndex := 1; opIndex <= cfg.MaxOps && gen.HasMore(); opIndex++ {
		op := gen.NextOp()

		modelResult := ApplyModel(harness, op)
		realResult := ApplyReal(harness, op)

		if diff := gocmp.Diff(modelResult, realResult); diff != "" {
			tb.Fatalf("op #%d %s: result mismatch (-model +real):\n%s", opIndex, op, diff)
		}

		if cfg.CompareEveryN > 0 && opIndex%cfg.CompareEveryN == 0 {
			CompareState(tb, harness, op)
		}
	}

	CompareState(tb, harness, nil)
}

// CompareState fails tb if the model and real arrays hold different values.
func CompareState(tb testing.TB, harness *Harness, after Operation) {
	tb.Helper()

	if diff := gocmp.Diff(harness.Model.Values, harness.Real.Unsafe().Slice()); diff != "" {
		tb.Fatalf("state mismatch after %v (-model +real):\n%s", after, diff)
	}
}

// ApplyModel applies op to the model.
func ApplyModel(harness *Harness, op Operation) OperationResult {
	m := harness.Model

	switch op := op.(type) {
	case OpGet:
		v, ok := m.Get(op.Index)

		return OperationResult{Value: v, Violation: !ok}
	case OpValueOr:
		return OperationResult{Value: m.ValueOr(op.Index, op.Default)}
	case OpSet:
		m.Set(op.Index, op.Value)
	case OpAssign:
		m.Assign(op.Dst, op.Src)
	case OpSwap:
		return OperationResult{Violation: !m.Swap(op.I, op.J)}
	case OpCompare:
		return OperationResult{Value: int64(cmp.Compare(m.ValueOr(op.I, 0), m.ValueOr(op.J, 0)))}
	case OpFill:
		m.Fill(op.Value)
	case OpSort:
		m.Sort(op.Desc)
	case OpReverse:
		m.Reverse()
	case OpFind:
		return OperationResult{Pos: m.Find(op.Value)}
	}

	return OperationResult{}
}

// ApplyReal applies op to the real Array.
func ApplyReal(harness *Harness, op Operation) OperationResult {
	arr := harness.Real

	var result OperationResult

	result.Violation = CatchViolation(func() {
		switch op := op.(type) {
		case OpGet:
			result.Value = arr.At(op.Index).Get()
		case OpValueOr:
			result.Value = arr.At(op.Index).ValueOr(op.Default)
		case OpSet:
			arr.At(op.Index).Set(op.Value)
		case OpAssign:
			arr.At(op.Dst).Assign(arr.At(op.Src))
		case OpSwap:
			sarray.Swap(arr.At(op.I), arr.At(op.J))
		case OpCompare:
			result.Value = int64(sarray.Compare(arr.At(op.I), arr.At(op.J)))
		case OpFill:
			sarray.Fill(arr.Begin(), arr.End(), op.Value)
		case OpSort:
			applySort(arr, op)
		case OpReverse:
			sarray.Reverse(arr.Begin(), arr.End())
		case OpFind:
			result.Pos = sarray.Find(arr.Begin(), arr.End(), op.Value).Pos()
		}
	})

	return result
}

func applySort(arr *sarray.Array[int64], op OpSort) {
	cmpFn := cmp.Compare[int64]
	if op.Desc {
		cmpFn = func(a, b int64) int { return cmp.Compare(b, a) }
	}

	if op.Unsafe {
		slices.SortFunc(arr.Unsafe().Slice(), cmpFn)

		return
	}

	sarray.SortFunc(arr.Begin(), arr.End(), cmpFn)
}

// CatchViolation runs fn and reports whether it panicked with a contract
// violation. Any other panic is propagated.
func CatchViolation(fn func()) (violated bool) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}

		err, ok := recovered.(error)

		var violation *sarray.ContractViolation
		if !ok || !errors.As(err, &violation) {
			panic(recovered)
		}

		violated = true
	}()

	fn()

	return false
}
