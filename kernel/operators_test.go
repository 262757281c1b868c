// Package kernel_test contains unit tests for the operator primitives.
package kernel_test

import (
	"testing"

	"github.com/katalvlaran/graphalg/kernel"
	"github.com/stretchr/testify/require"
)

// TestPlusTimesSemiring verifies the classical semiring's arithmetic.
func TestPlusTimesSemiring(t *testing.T) {
	sr := kernel.PlusTimesSemiring[int32]()
	require.EqualValues(t, 7, sr.Add.Op(3, 4))
	require.EqualValues(t, 0, sr.Add.Identity)
	require.EqualValues(t, 12, sr.Mul(3, 4))
}

// TestMinPlusSemiring verifies the tropical semiring's identity and combine.
func TestMinPlusSemiring(t *testing.T) {
	sr := kernel.MinPlusSemiring[int32]()
	require.EqualValues(t, 3, sr.Add.Op(3, 9))
	require.EqualValues(t, 7, sr.Mul(3, 4))
	require.EqualValues(t, 3, sr.Add.Op(sr.Add.Identity, 3))
}

// TestLorLandSemiring verifies the boolean reachability semiring.
func TestLorLandSemiring(t *testing.T) {
	sr := kernel.LorLandSemiring()
	require.True(t, sr.Add.Op(true, false))
	require.False(t, sr.Mul(true, false))
	require.False(t, sr.Add.Identity)
}

// TestIndexUnaryOperators verifies the predicate family used by Select.
func TestIndexUnaryOperators(t *testing.T) {
	require.True(t, kernel.GreaterThan[int32]()(0, 0, 5, 3))
	require.False(t, kernel.GreaterThan[int32]()(0, 0, 2, 3))
	require.True(t, kernel.LessThan[int32]()(0, 0, 2, 3))
	require.True(t, kernel.ValueEqual[int32]()(0, 0, 3, 3))
	require.True(t, kernel.ValueNotEqual[int32]()(0, 0, 4, 3))
	require.True(t, kernel.OffDiagonal[int32]()(1, 2, 0, 0))
	require.False(t, kernel.OffDiagonal[int32]()(2, 2, 0, 0))
}

// TestFirstSecond verifies the overwrite-flavored accumulators.
func TestFirstSecond(t *testing.T) {
	require.EqualValues(t, 1, kernel.First[int32]()(1, 2))
	require.EqualValues(t, 2, kernel.Second[int32]()(1, 2))
}
