// Package kernel_test contains unit tests for Select.
package kernel_test

import (
	"testing"

	"github.com/katalvlaran/graphalg/kernel"
	"github.com/stretchr/testify/require"
)

// TestSelectVector_GreaterThan verifies that only elements passing the
// predicate are copied into dst.
func TestSelectVector_GreaterThan(t *testing.T) {
	ctx := kernel.NewContext()
	src, err := kernel.NewSparseVector[int32](ctx, 4)
	require.NoError(t, err)
	require.NoError(t, src.SetElement(0, 1))
	require.NoError(t, src.SetElement(1, 5))
	require.NoError(t, src.SetElement(2, 9))

	dst, err := kernel.NewSparseVector[int32](ctx, 4)
	require.NoError(t, err)

	require.NoError(t, kernel.SelectVector(src, dst, kernel.GreaterThan[int32](), 4, nil))

	require.Equal(t, 2, dst.NumStored())
	_, ok, err := dst.GetElementValue(0)
	require.NoError(t, err)
	require.False(t, ok)
	_, ok, err = dst.GetElementValue(1)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestSelectMatrix_OffDiagonal verifies that self-loop cells are excluded.
func TestSelectMatrix_OffDiagonal(t *testing.T) {
	ctx := kernel.NewContext()
	src, err := kernel.NewSparseMatrix[int32](ctx, 3, 3)
	require.NoError(t, err)
	require.NoError(t, src.SetElement(0, 0, 1))
	require.NoError(t, src.SetElement(0, 1, 2))
	require.NoError(t, src.SetElement(2, 2, 3))

	dst, err := kernel.NewSparseMatrix[int32](ctx, 3, 3)
	require.NoError(t, err)

	require.NoError(t, kernel.SelectMatrix(src, dst, kernel.OffDiagonal[int32](), 0, nil))

	require.Equal(t, 1, dst.NumStored())
	_, ok, err := dst.GetElementValue(0, 1)
	require.NoError(t, err)
	require.True(t, ok)
}
