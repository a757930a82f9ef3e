package cli

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/calvinalkan/sarray/pkg/sarray"

	flag "github.com/spf13/pflag"
)

// ErrDemoFailed is returned when a demo check does not hold.
var ErrDemoFailed = errors.New("demo checks failed")

const demoLength = 20

// DemoCmd returns the demo command.
func DemoCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("demo", flag.ContinueOnError),
		Usage: "demo",
		Short: "Run the 20-element walkthrough",
		Long: `Run a fixed walkthrough over a 20-element int array and print each check.

The walkthrough probes out-of-range indices, writes through refs, swaps two
refs, sorts through iterators, sorts through the unchecked view and reads
with fallbacks. The array length is always 20, regardless of --len.`,
		Exec: func(ctx context.Context, io *IO, _ []string) error {
			return execDemo(ctx, io)
		},
	}
}

type demo struct {
	io     *IO
	failed int
}

func (d *demo) check(desc string, got, want any) {
	if got == want {
		d.io.Printf("ok    %-36s %v\n", desc, got)

		return
	}

	d.failed++
	d.io.Printf("FAIL  %-36s got %v, want %v\n", desc, got, want)
}

func execDemo(ctx context.Context, io *IO) error {
	d := &demo{io: io}
	x := sarray.New[int](demoLength)

	d.check("x.At(0).Valid()", x.At(0).Valid(), true)
	d.check("x.At(-1).Valid()", x.At(-1).Valid(), false)
	d.check("x.At(20).Valid()", x.At(20).Valid(), false)
	d.check("x.At(100000000).Valid()", x.At(100000000).Valid(), false)
	d.check("AtIndex(x, int8(-1)).Valid()", sarray.AtIndex(x, int8(-1)).Valid(), false)
	d.check("AtIndex(x, uint64(MaxUint64)).Valid()", sarray.AtIndex(x, uint64(math.MaxUint64)).Valid(), false)
	d.check("x.At(0).Get()", x.At(0).Get(), 0)

	x.At(1).Set(5)
	d.check("x.At(1).Get() after Set(5)", x.At(1).Get(), 5)
	d.check("x.At(19).Get()", x.At(19).Get(), 0)

	x.At(100).Set(7)
	d.check("x.At(100).Set(7) leaves x.At(0)", x.At(0).Get(), 0)

	if err := ctx.Err(); err != nil {
		return err
	}

	for i, ref := range x.All() {
		ref.Set(demoLength - i)
	}

	m1, m2 := x.At(1), x.At(2)
	sarray.Swap(m1, m2)
	d.check("x.At(1) after Swap", x.At(1).Get(), 18)
	d.check("x.At(2) after Swap", x.At(2).Get(), 19)

	violation := catchViolation(func() { sarray.Swap(x.At(0), x.At(-1)) })
	d.check("Swap(x.At(0), x.At(-1)) violates", errors.Is(violation, sarray.ErrInvalidSwap), true)
	d.check("x.At(0) after failed Swap", x.At(0).Get(), 20)

	sarray.Sort(x.Begin(), x.End())
	d.check("x.At(0) after Sort", x.At(0).Get(), 1)
	d.check("x.At(1) after Sort", x.At(1).Get(), 2)

	slices.SortFunc(x.Unsafe().Slice(), func(a, b int) int { return cmp.Compare(b, a) })
	d.check("x.At(19) after unsafe sort", x.At(19).Get(), 1)
	d.check("x.At(18) after unsafe sort", x.At(18).Get(), 2)

	d.check("x.At(0).ValueOr(10)", x.At(0).ValueOr(10), 20)
	d.check("x.At(100).ValueOr(66)", x.At(100).ValueOr(66), 66)

	if d.failed > 0 {
		return fmt.Errorf("%w: %d", ErrDemoFailed, d.failed)
	}

	return nil
}

// catchViolation runs fn and returns the contract violation it panicked
// with, or nil.
func catchViolation(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		var violation *sarray.ContractViolation

		rErr, ok := r.(error)
		if !ok || !errors.As(rErr, &violation) {
			panic(r)
		}

		err = violation
	}()

	fn()

	return nil
}
