// Package kernel_test contains unit tests for Apply and its scalar-binary
// variants.
package kernel_test

import (
	"testing"

	"github.com/katalvlaran/graphalg/kernel"
	"github.com/stretchr/testify/require"
)

// TestApplyVector_Unmasked verifies a plain unary apply over every present
// element.
func TestApplyVector_Unmasked(t *testing.T) {
	ctx := kernel.NewContext()
	src, err := kernel.NewSparseVector[int32](ctx, 4)
	require.NoError(t, err)
	require.NoError(t, src.SetElement(0, 2))
	require.NoError(t, src.SetElement(3, 5))

	dst, err := kernel.NewSparseVector[int32](ctx, 4)
	require.NoError(t, err)

	double := func(a int32) int32 { return a * 2 }
	require.NoError(t, kernel.ApplyVector(src, dst, double, nil, nil))

	val, present, err := dst.GetElementValue(0)
	require.NoError(t, err)
	require.True(t, present)
	require.EqualValues(t, 4, val)

	val, present, err = dst.GetElementValue(3)
	require.NoError(t, err)
	require.True(t, present)
	require.EqualValues(t, 10, val)

	_, present, err = dst.GetElementValue(1)
	require.NoError(t, err)
	require.False(t, present)
}

// TestApplyVector_Masked verifies that masked-out indices are never written.
func TestApplyVector_Masked(t *testing.T) {
	ctx := kernel.NewContext()
	src, err := kernel.NewSparseVector[int32](ctx, 3)
	require.NoError(t, err)
	require.NoError(t, src.SetElement(0, 1))
	require.NoError(t, src.SetElement(1, 1))
	require.NoError(t, src.SetElement(2, 1))

	dst, err := kernel.NewSparseVector[int32](ctx, 3)
	require.NoError(t, err)

	mask, err := kernel.NewVectorMask(ctx, 3)
	require.NoError(t, err)
	require.NoError(t, mask.SetElement(1, true))

	require.NoError(t, kernel.ApplyVector(src, dst, func(a int32) int32 { return a + 100 }, nil, mask))

	_, present, err := dst.GetElementValue(0)
	require.NoError(t, err)
	require.False(t, present)

	val, present, err := dst.GetElementValue(1)
	require.NoError(t, err)
	require.True(t, present)
	require.EqualValues(t, 101, val)
}

// TestApplyVector_DimensionMismatch verifies src/dst length checking.
func TestApplyVector_DimensionMismatch(t *testing.T) {
	ctx := kernel.NewContext()
	src, err := kernel.NewSparseVector[int32](ctx, 3)
	require.NoError(t, err)
	dst, err := kernel.NewSparseVector[int32](ctx, 4)
	require.NoError(t, err)

	require.ErrorIs(t, kernel.ApplyVector(src, dst, func(a int32) int32 { return a }, nil, nil), kernel.ErrDimensionMismatch)
}

// TestApplyBinaryScalarVector_WithAccumulator verifies that the accumulator
// combines the new value with whatever already sits in dst.
func TestApplyBinaryScalarVector_WithAccumulator(t *testing.T) {
	ctx := kernel.NewContext()
	src, err := kernel.NewSparseVector[int32](ctx, 2)
	require.NoError(t, err)
	require.NoError(t, src.SetElement(0, 3))

	dst, err := kernel.NewSparseVector[int32](ctx, 2)
	require.NoError(t, err)
	require.NoError(t, dst.SetElement(0, 10))

	plus := kernel.Plus[int32]()
	require.NoError(t, kernel.ApplyBinaryScalarVector(src, dst, plus, 5, plus, nil))

	val, _, err := dst.GetElementValue(0)
	require.NoError(t, err)
	require.EqualValues(t, 18, val) // (3+5) accumulated onto existing 10
}

// TestApplyMatrix_Unmasked verifies unary apply over present matrix cells.
func TestApplyMatrix_Unmasked(t *testing.T) {
	ctx := kernel.NewContext()
	src, err := kernel.NewSparseMatrix[int32](ctx, 2, 2)
	require.NoError(t, err)
	require.NoError(t, src.SetElement(0, 1, 4))

	dst, err := kernel.NewSparseMatrix[int32](ctx, 2, 2)
	require.NoError(t, err)

	require.NoError(t, kernel.ApplyMatrix(src, dst, func(a int32) int32 { return a * 10 }, nil, nil))

	val, present, err := dst.GetElementValue(0, 1)
	require.NoError(t, err)
	require.True(t, present)
	require.EqualValues(t, 40, val)
}
