// Fuzz tests comparing sarray against an in-memory reference model.
// Catches logic bugs in indexing, Ref semantics and the iterator algorithms.
//
// Failures mean: an operation returned a different value, violated (or
// failed to violate) a contract differently, or left different contents.

package sarray_test

import (
	"testing"

	"github.com/calvinalkan/sarray/pkg/sarray/internal/testutil"
)

func FuzzArray_Matches_Model_When_Random_Ops_Applied(f *testing.F) {
	f.Add(uint8(20), []byte{0x00, 0x01, 0x02})
	f.Add(uint8(20), []byte{0xFF, 0xFE, 0xFD, 0xFC})
	f.Add(uint8(1), []byte("sarray-ops"))
	f.Add(uint8(0), []byte("empty-array"))
	f.Add(uint8(64), make([]byte, 64))

	f.Fuzz(func(t *testing.T, length uint8, fuzzBytes []byte) {
		gen := testutil.NewOpGenerator(fuzzBytes, int(length))

		testutil.Run(t, int(length), gen, testutil.RunConfig{
			MaxOps:        testutil.DefaultMaxFuzzOperations,
			CompareEveryN: 8,
		})
	})
}

// Deterministic property run over fixed pseudo-random inputs, so the model
// comparison executes under plain `go test` as well.
func Test_Array_Matches_Model_When_Seeded_Ops_Applied(t *testing.T) {
	t.Parallel()

	for seed := range 32 {
		data := make([]byte, 512)

		state := uint32(seed*2654435761 + 1)
		for i := range data {
			state ^= state << 13
			state ^= state >> 17
			state ^= state << 5
			data[i] = byte(state)
		}

		length := seed % 25

		testutil.Run(t, length, testutil.NewOpGenerator(data, length), testutil.RunConfig{
			MaxOps:        testutil.DefaultMaxFuzzOperations,
			CompareEveryN: 4,
		})
	}
}
