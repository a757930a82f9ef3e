package testutil

import "fmt"

// Operation is a single public-API call applied to both the model and the
// real Array.
type Operation interface {
	Name() string
	String() string
}

// OpGet represents At(i).Get().
type OpGet struct{ Index int }

// Name returns the operation name.
func (OpGet) Name() string      { return "Get" }
func (op OpGet) String() string { return fmt.Sprintf("Get(%d)", op.Index) }

// OpValueOr represents At(i).ValueOr(def).
type OpValueOr struct {
	Index   int
	Default int64
}

// Name returns the operation name.
func (OpValueOr) Name() string { return "ValueOr" }
func (op OpValueOr) String() string {
	return fmt.Sprintf("ValueOr(%d, %d)", op.Index, op.Default)
}

// OpSet represents At(i).Set(v).
type OpSet struct {
	Index int
	Value int64
}

// Name returns the operation name.
func (OpSet) Name() string      { return "Set" }
func (op OpSet) String() string { return fmt.Sprintf("Set(%d, %d)", op.Index, op.Value) }

// OpAssign represents At(dst).Assign(At(src)).
type OpAssign struct {
	Dst int
	Src int
}

// Name returns the operation name.
func (OpAssign) Name() string      { return "Assign" }
func (op OpAssign) String() string { return fmt.Sprintf("Assign(%d <- %d)", op.Dst, op.Src) }

// OpSwap represents Swap(At(i), At(j)).
type OpSwap struct {
	I int
	J int
}

// Name returns the operation name.
func (OpSwap) Name() string      { return "Swap" }
func (op OpSwap) String() string { return fmt.Sprintf("Swap(%d, %d)", op.I, op.J) }

// OpCompare represents Compare(At(i), At(j)).
type OpCompare struct {
	I int
	J int
}

// Name returns the operation name.
func (OpCompare) Name() string      { return "Compare" }
func (op OpCompare) String() string { return fmt.Sprintf("Compare(%d, %d)", op.I, op.J) }

// OpFill represents Fill(Begin(), End(), v).
type OpFill struct{ Value int64 }

// Name returns the operation name.
func (OpFill) Name() string      { return "Fill" }
func (op OpFill) String() string { return fmt.Sprintf("Fill(%d)", op.Value) }

// OpSort sorts the whole array through the iterator path, or through
// Unsafe() when Unsafe is set.
type OpSort struct {
	Desc   bool
	Unsafe bool
}

// Name returns the operation name.
func (OpSort) Name() string { return "Sort" }
func (op OpSort) String() string {
	return fmt.Sprintf("Sort(desc=%v, unsafe=%v)", op.Desc, op.Unsafe)
}

// OpReverse represents Reverse(Begin(), End()).
type OpReverse struct{}

// Name returns the operation name.
func (OpReverse) Name() string   { return "Reverse" }
func (OpReverse) String() string { return "Reverse()" }

// OpFind represents Find(Begin(), End(), v).
type OpFind struct{ Value int64 }

// Name returns the operation name.
func (OpFind) Name() string      { return "Find" }
func (op OpFind) String() string { return fmt.Sprintf("Find(%d)", op.Value) }

// OperationResult is the observable outcome of an operation.
type OperationResult struct {
	Value     int64
	Pos       int
	Violation bool
}
