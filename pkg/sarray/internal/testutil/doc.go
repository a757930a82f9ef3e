// Package testutil provides test-only infrastructure for sarray property
// and fuzz testing.
//
// It includes deterministic byte streams, an operation generator and a
// model/real harness used by the sarray tests.
package testutil
