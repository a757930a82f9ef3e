package testutil

import "math"

// Operation kinds, selected by the first byte of each generated op.
const (
	opKindGet = iota
	opKindValueOr
	opKindSet
	opKindAssign
	opKindSwap
	opKindCompare
	opKindFill
	opKindSort
	opKindReverse
	opKindFind
	opKindCount
)

// OpGenerator derives a deterministic operation stream from fuzz bytes.
type OpGenerator struct {
	stream *ByteStream
	length int
}

// NewOpGenerator returns a generator for an array of the given length.
func NewOpGenerator(data []byte, length int) *OpGenerator {
	return &OpGenerator{stream: NewByteStream(data), length: length}
}

// HasMore reports whether the fuzz input still has unread bytes.
func (g *OpGenerator) HasMore() bool {
	return g.stream.HasMore()
}

// NextOp returns the next operation.
func (g *OpGenerator) NextOp() Operation {
	switch g.stream.NextInt(opKindCount) {
	case opKindGet:
		return OpGet{Index: g.nextIndex()}
	case opKindValueOr:
		return OpValueOr{Index: g.nextIndex(), Default: g.stream.NextInt64()}
	case opKindSet:
		return OpSet{Index: g.nextIndex(), Value: g.stream.NextInt64()}
	case opKindAssign:
		return OpAssign{Dst: g.nextIndex(), Src: g.nextIndex()}
	case opKindSwap:
		return OpSwap{I: g.nextIndex(), J: g.nextIndex()}
	case opKindCompare:
		return OpCompare{I: g.nextIndex(), J: g.nextIndex()}
	case opKindFill:
		return OpFill{Value: g.stream.NextInt64()}
	case opKindSort:
		return OpSort{Desc: g.stream.NextBool(), Unsafe: g.stream.NextBool()}
	case opKindReverse:
		return OpReverse{}
	default:
		return OpFind{Value: g.stream.NextInt64()}
	}
}

// nextIndex returns an in-range index most of the time, and otherwise one
// of the boundary or extreme out-of-range values.
func (g *OpGenerator) nextIndex() int {
	selector := g.stream.NextByte()

	if selector < 224 || g.length == 0 {
		if g.length == 0 {
			return int(selector%4) - 2
		}

		return int(selector) % g.length
	}

	switch selector % 6 {
	case 0:
		return -1
	case 1:
		return g.length
	case 2:
		return g.length + 1
	case 3:
		return math.MaxInt
	case 4:
		return math.MinInt
	default:
		return 100000000
	}
}
