// Package container_test contains unit tests for TypedContainerFamily.
package container_test

import (
	"testing"

	"github.com/katalvlaran/graphalg/container"
	"github.com/katalvlaran/graphalg/kernel"
	"github.com/stretchr/testify/require"
)

// TestVectorFamily_ShapeUniformity checks that all thirteen per-type
// containers report identical shape at construction and after resize.
func TestVectorFamily_ShapeUniformity(t *testing.T) {
	ctx := kernel.NewContext()
	f, err := container.NewVectorFamily(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, 4, container.VectorOf[int32](f).Length())
	require.Equal(t, 4, container.VectorOf[bool](f).Length())
	require.Equal(t, 4, container.VectorOf[uint64](f).Length())

	require.NoError(t, f.Resize(10))
	require.Equal(t, 10, f.Length())
	require.Equal(t, 10, container.VectorOf[float64](f).Length())
	require.Equal(t, 10, container.VectorOf[uint](f).Length())
}

// TestVectorFamily_TypeParallelWrites checks that writing to the u8
// container leaves the i32 container at that index absent/default.
func TestVectorFamily_TypeParallelWrites(t *testing.T) {
	ctx := kernel.NewContext()
	f, err := container.NewVectorFamily(ctx, 4)
	require.NoError(t, err)

	require.NoError(t, container.VectorOf[uint8](f).SetElement(0, 7))

	val, err := container.VectorOf[int32](f).GetElementValueOrDefault(0)
	require.NoError(t, err)
	require.Zero(t, val)

	u8val, err := container.VectorOf[uint8](f).GetElementValueOrDefault(0)
	require.NoError(t, err)
	require.EqualValues(t, 7, u8val)
}

// TestVectorFamily_IsElementSetAny verifies the cross-type occupied
// predicate VertexStore relies on to reject duplicate writes.
func TestVectorFamily_IsElementSetAny(t *testing.T) {
	ctx := kernel.NewContext()
	f, err := container.NewVectorFamily(ctx, 2)
	require.NoError(t, err)

	ok, err := f.IsElementSetAny(0)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, container.VectorOf[float32](f).SetElement(0, 1.5))
	ok, err = f.IsElementSetAny(0)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, f.ClearIndexAll(0))
	ok, err = f.IsElementSetAny(0)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestMatrixFamily_ShapeUniformity mirrors TestVectorFamily_ShapeUniformity
// for the matrix-shaped family backing AdjacencyMatrix.
func TestMatrixFamily_ShapeUniformity(t *testing.T) {
	ctx := kernel.NewContext()
	f, err := container.NewMatrixFamily(ctx, 3, 3)
	require.NoError(t, err)
	rows, cols := f.Shape()
	require.Equal(t, 3, rows)
	require.Equal(t, 3, cols)

	require.NoError(t, f.Resize(6, 6))
	rows, cols = container.MatrixOf[int32](f).Rows(), container.MatrixOf[int32](f).Cols()
	require.Equal(t, 6, rows)
	require.Equal(t, 6, cols)
}

// TestMatrixFamily_ClearRowColAll verifies fan-out clearing used by
// delete-vertex.
func TestMatrixFamily_ClearRowColAll(t *testing.T) {
	ctx := kernel.NewContext()
	f, err := container.NewMatrixFamily(ctx, 3, 3)
	require.NoError(t, err)
	require.NoError(t, container.MatrixOf[uint8](f).SetElement(0, 1, 5))
	require.NoError(t, container.MatrixOf[uint8](f).SetElement(1, 0, 6))

	f.ClearRowColAll(0, 0)

	ok, err := f.IsElementSetAny(0, 1)
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = f.IsElementSetAny(1, 0)
	require.NoError(t, err)
	require.False(t, ok)
}
