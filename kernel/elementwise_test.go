// Package kernel_test contains unit tests for the element-wise add/multiply
// family.
package kernel_test

import (
	"testing"

	"github.com/katalvlaran/graphalg/kernel"
	"github.com/stretchr/testify/require"
)

// TestElementWiseAddVector_UnionSemantics verifies present-in-either
// survives, and both-present combines via the monoid.
func TestElementWiseAddVector_UnionSemantics(t *testing.T) {
	ctx := kernel.NewContext()
	a, err := kernel.NewSparseVector[int32](ctx, 3)
	require.NoError(t, err)
	require.NoError(t, a.SetElement(0, 1))
	require.NoError(t, a.SetElement(1, 2))

	b, err := kernel.NewSparseVector[int32](ctx, 3)
	require.NoError(t, err)
	require.NoError(t, b.SetElement(1, 10))
	require.NoError(t, b.SetElement(2, 20))

	dst, err := kernel.NewSparseVector[int32](ctx, 3)
	require.NoError(t, err)

	require.NoError(t, kernel.ElementWiseAddVector(a, b, dst, kernel.PlusMonoid[int32](), nil))

	v0, ok, err := dst.GetElementValue(0)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 1, v0)

	v1, ok, err := dst.GetElementValue(1)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 12, v1)

	v2, ok, err := dst.GetElementValue(2)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 20, v2)
}

// TestElementWiseAddVector_Masked verifies the mask restricts which cells
// of the union are actually written.
func TestElementWiseAddVector_Masked(t *testing.T) {
	ctx := kernel.NewContext()
	a, err := kernel.NewSparseVector[int32](ctx, 3)
	require.NoError(t, err)
	require.NoError(t, a.SetElement(0, 1))
	b, err := kernel.NewSparseVector[int32](ctx, 3)
	require.NoError(t, err)
	require.NoError(t, b.SetElement(2, 9))

	dst, err := kernel.NewSparseVector[int32](ctx, 3)
	require.NoError(t, err)

	mask, err := kernel.NewVectorMask(ctx, 3)
	require.NoError(t, err)
	require.NoError(t, mask.SetElement(0, true))

	require.NoError(t, kernel.ElementWiseAddVector(a, b, dst, kernel.PlusMonoid[int32](), mask))

	_, ok, err := dst.GetElementValue(0)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = dst.GetElementValue(2)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestElementWiseMultiplyVector_IntersectionSemantics verifies absent-in-
// either is absent in the result.
func TestElementWiseMultiplyVector_IntersectionSemantics(t *testing.T) {
	ctx := kernel.NewContext()
	a, err := kernel.NewSparseVector[int32](ctx, 3)
	require.NoError(t, err)
	require.NoError(t, a.SetElement(0, 2))
	require.NoError(t, a.SetElement(1, 3))

	b, err := kernel.NewSparseVector[int32](ctx, 3)
	require.NoError(t, err)
	require.NoError(t, b.SetElement(1, 5))

	dst, err := kernel.NewSparseVector[int32](ctx, 3)
	require.NoError(t, err)

	require.NoError(t, kernel.ElementWiseMultiplyVector(a, b, dst, kernel.Times[int32](), nil))

	require.Equal(t, 1, dst.NumStored())
	v1, ok, err := dst.GetElementValue(1)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 15, v1)
}

// TestElementWiseAddMatrix_UnionSemantics is the matrix analogue of
// TestElementWiseAddVector_UnionSemantics.
func TestElementWiseAddMatrix_UnionSemantics(t *testing.T) {
	ctx := kernel.NewContext()
	a, err := kernel.NewSparseMatrix[int32](ctx, 2, 2)
	require.NoError(t, err)
	require.NoError(t, a.SetElement(0, 0, 1))

	b, err := kernel.NewSparseMatrix[int32](ctx, 2, 2)
	require.NoError(t, err)
	require.NoError(t, b.SetElement(0, 0, 4))
	require.NoError(t, b.SetElement(1, 1, 9))

	dst, err := kernel.NewSparseMatrix[int32](ctx, 2, 2)
	require.NoError(t, err)

	require.NoError(t, kernel.ElementWiseAddMatrix(a, b, dst, kernel.PlusMonoid[int32](), nil))

	v, ok, err := dst.GetElementValue(0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 5, v)

	v, ok, err = dst.GetElementValue(1, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 9, v)
}

// TestElementWiseMultiplyMatrix_IntersectionSemantics is the matrix
// analogue of TestElementWiseMultiplyVector_IntersectionSemantics.
func TestElementWiseMultiplyMatrix_IntersectionSemantics(t *testing.T) {
	ctx := kernel.NewContext()
	a, err := kernel.NewSparseMatrix[int32](ctx, 2, 2)
	require.NoError(t, err)
	require.NoError(t, a.SetElement(0, 1, 3))

	b, err := kernel.NewSparseMatrix[int32](ctx, 2, 2)
	require.NoError(t, err)
	require.NoError(t, b.SetElement(0, 1, 7))
	require.NoError(t, b.SetElement(1, 0, 2))

	dst, err := kernel.NewSparseMatrix[int32](ctx, 2, 2)
	require.NoError(t, err)

	require.NoError(t, kernel.ElementWiseMultiplyMatrix(a, b, dst, kernel.Times[int32](), nil))

	require.Equal(t, 1, dst.NumStored())
	v, ok, err := dst.GetElementValue(0, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 21, v)
}

// TestElementWise_DimensionMismatch verifies shape checking for both
// vector and matrix element-wise operators.
func TestElementWise_DimensionMismatch(t *testing.T) {
	ctx := kernel.NewContext()
	a, err := kernel.NewSparseVector[int32](ctx, 2)
	require.NoError(t, err)
	b, err := kernel.NewSparseVector[int32](ctx, 3)
	require.NoError(t, err)
	dst, err := kernel.NewSparseVector[int32](ctx, 2)
	require.NoError(t, err)

	err = kernel.ElementWiseAddVector(a, b, dst, kernel.PlusMonoid[int32](), nil)
	require.ErrorIs(t, err, kernel.ErrDimensionMismatch)
}
