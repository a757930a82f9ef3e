// Package session evaluates text commands against a single sarray.Array.
//
// It backs both the interactive REPL and scripted execution.
package session

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/calvinalkan/sarray/pkg/sarray"
)

// command is a single session command.
type command struct {
	usage string
	short string
	run   func(s *Session, args []string) error
}

// commands maps command names to their implementations. Populated in init
// because the handlers read it for their usage strings.
var commands map[string]command

func init() {
	commands = map[string]command{
		"len":    {usage: "len", short: "Print the array length", run: (*Session).cmdLen},
		"show":   {usage: "show", short: "Print all elements", run: (*Session).cmdShow},
		"get":    {usage: "get <i>", short: "Read element i (invalid i is a contract violation)", run: (*Session).cmdGet},
		"set":    {usage: "set <i> <v>", short: "Write v through the ref at i", run: (*Session).cmdSet},
		"or":     {usage: "or <i> <default>", short: "Read element i, or default when out of range", run: (*Session).cmdOr},
		"valid":  {usage: "valid <i>", short: "Report whether i is a valid index", run: (*Session).cmdValid},
		"swap":   {usage: "swap <i> <j>", short: "Swap the refs at i and j", run: (*Session).cmdSwap},
		"assign": {usage: "assign <dst> <src>", short: "Assign the value at src to dst", run: (*Session).cmdAssign},
		"fill":   {usage: "fill <v>", short: "Set every element to v", run: (*Session).cmdFill},
		"ramp":   {usage: "ramp <start> <step>", short: "Set element i to start + i*step", run: (*Session).cmdRamp},
		"sort":   {usage: "sort [asc|desc]", short: "Sort through the checked iterator path", run: (*Session).cmdSort},
		"usort":  {usage: "usort [asc|desc]", short: "Sort through the unchecked view", run: (*Session).cmdUnsafeSort},
		"find":   {usage: "find <v>", short: "Print the first position holding v, or end", run: (*Session).cmdFind},
		"walk":   {usage: "walk [from] [to]", short: "Walk positions [from, to) with an iterator", run: (*Session).cmdWalk},
		"reset":  {usage: "reset", short: "Set every element back to zero", run: (*Session).cmdReset},
		"help":   {usage: "help", short: "Show this help", run: (*Session).cmdHelp},
	}
}

// Session holds one array and evaluates commands against it.
type Session struct {
	arr *sarray.Array[int64]
	out io.Writer
}

// New returns a session over a zero-valued array of the given length.
func New(length int, out io.Writer) *Session {
	return &Session{arr: sarray.New[int64](length), out: out}
}

// Array returns the session's array.
func (s *Session) Array() *sarray.Array[int64] {
	return s.arr
}

// Commands returns all command names, sorted.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Eval runs a single command line. Blank lines and lines starting with '#'
// are ignored.
//
// Contract violations raised by the array are recovered and returned as
// errors wrapping [ErrContractViolation]; the array is left as it was
// before the violating operation.
func (s *Session) Eval(line string) (err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	name := strings.ToLower(fields[0])

	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}

		var violation *sarray.ContractViolation
		if e, isErr := recovered.(error); isErr && errors.As(e, &violation) {
			err = fmt.Errorf("%w: %w", ErrContractViolation, violation)

			return
		}

		panic(recovered)
	}()

	return cmd.run(s, fields[1:])
}

func (s *Session) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Session) ref(arg string) (sarray.Ref[int64], error) {
	idx, err := parseInt(arg)
	if err != nil {
		return sarray.Ref[int64]{}, err
	}

	return sarray.AtIndex(s.arr, idx), nil
}

func parseInt(arg string) (int64, error) {
	v, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, arg)
	}

	return v, nil
}

func parseArgs(name string, args []string, n int) ([]int64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: %s", ErrUsage, commands[name].usage)
	}

	out := make([]int64, n)

	for i, arg := range args {
		v, err := parseInt(arg)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

func parseOrder(name string, args []string) (func(a, b int64) int, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("%w: %s", ErrUsage, commands[name].usage)
	}

	if len(args) == 0 || args[0] == "asc" {
		return cmp.Compare[int64], nil
	}

	if args[0] == "desc" {
		return func(a, b int64) int { return cmp.Compare(b, a) }, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUsage, commands[name].usage)
}

func (s *Session) cmdLen(_ []string) error {
	s.println(s.arr.Len())

	return nil
}

func (s *Session) cmdShow(_ []string) error {
	s.println(fmt.Sprint(s.arr.Unsafe().Slice()))

	return nil
}

func (s *Session) cmdGet(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s", ErrUsage, commands["get"].usage)
	}

	ref, err := s.ref(args[0])
	if err != nil {
		return err
	}

	s.println(ref.Get())

	return nil
}

func (s *Session) cmdSet(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: %s", ErrUsage, commands["set"].usage)
	}

	ref, err := s.ref(args[0])
	if err != nil {
		return err
	}

	v, err := parseInt(args[1])
	if err != nil {
		return err
	}

	ref.Set(v)

	if !ref.Valid() {
		s.println("index", args[0], "out of range: write kept in a detached ref")
	}

	return nil
}

func (s *Session) cmdOr(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: %s", ErrUsage, commands["or"].usage)
	}

	ref, err := s.ref(args[0])
	if err != nil {
		return err
	}

	def, err := parseInt(args[1])
	if err != nil {
		return err
	}

	s.println(ref.ValueOr(def))

	return nil
}

func (s *Session) cmdValid(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s", ErrUsage, commands["valid"].usage)
	}

	ref, err := s.ref(args[0])
	if err != nil {
		return err
	}

	s.println(ref.Valid())

	return nil
}

func (s *Session) cmdSwap(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: %s", ErrUsage, commands["swap"].usage)
	}

	left, err := s.ref(args[0])
	if err != nil {
		return err
	}

	right, err := s.ref(args[1])
	if err != nil {
		return err
	}

	sarray.Swap(left, right)

	return nil
}

func (s *Session) cmdAssign(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: %s", ErrUsage, commands["assign"].usage)
	}

	dst, err := s.ref(args[0])
	if err != nil {
		return err
	}

	src, err := s.ref(args[1])
	if err != nil {
		return err
	}

	dst.Assign(src)

	return nil
}

func (s *Session) cmdFill(args []string) error {
	vals, err := parseArgs("fill", args, 1)
	if err != nil {
		return err
	}

	sarray.Fill(s.arr.Begin(), s.arr.End(), vals[0])

	return nil
}

func (s *Session) cmdRamp(args []string) error {
	vals, err := parseArgs("ramp", args, 2)
	if err != nil {
		return err
	}

	start, step := vals[0], vals[1]

	for i, ref := range s.arr.All() {
		ref.Set(start + int64(i)*step)
	}

	return nil
}

func (s *Session) cmdSort(args []string) error {
	cmpFn, err := parseOrder("sort", args)
	if err != nil {
		return err
	}

	sarray.SortFunc(s.arr.Begin(), s.arr.End(), cmpFn)

	return nil
}

func (s *Session) cmdUnsafeSort(args []string) error {
	cmpFn, err := parseOrder("usort", args)
	if err != nil {
		return err
	}

	slices.SortFunc(s.arr.Unsafe().Slice(), cmpFn)

	return nil
}

func (s *Session) cmdFind(args []string) error {
	vals, err := parseArgs("find", args, 1)
	if err != nil {
		return err
	}

	it := sarray.Find(s.arr.Begin(), s.arr.End(), vals[0])
	if it.Equal(s.arr.End()) {
		s.println("end")

		return nil
	}

	s.println(it.Pos())

	return nil
}

// maxWalk bounds the number of positions a single walk prints.
const maxWalk = 10000

func (s *Session) cmdWalk(args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("%w: %s", ErrUsage, commands["walk"].usage)
	}

	bounds := []int64{-1, int64(s.arr.Len()) + 1}

	for i, arg := range args {
		v, err := parseInt(arg)
		if err != nil {
			return err
		}

		bounds[i] = v
	}

	from, to := bounds[0], bounds[1]
	if from < to && (to-from < 0 || to-from > maxWalk) {
		return fmt.Errorf("%w: walk spans more than %d positions", ErrUsage, maxWalk)
	}

	first := s.arr.Begin().Add(int(from))
	last := s.arr.Begin().Add(int(to))

	for it := first; it.Less(last); it = it.Next() {
		if it.Valid() {
			s.println(fmt.Sprintf("%d: %d", it.Pos(), it.Ref().Get()))

			continue
		}

		s.println(fmt.Sprintf("%d: invalid", it.Pos()))
	}

	return nil
}

func (s *Session) cmdReset(_ []string) error {
	var zero int64

	sarray.Fill(s.arr.Begin(), s.arr.End(), zero)

	return nil
}

func (s *Session) cmdHelp(_ []string) error {
	s.println("Commands:")

	for _, name := range Commands() {
		cmd := commands[name]
		s.println(fmt.Sprintf("  %-22s %s", cmd.usage, cmd.short))
	}

	return nil
}
