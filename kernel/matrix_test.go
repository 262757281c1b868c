// Package kernel_test contains unit tests for the SparseMatrix container.
package kernel_test

import (
	"testing"

	"github.com/katalvlaran/graphalg/kernel"
	"github.com/stretchr/testify/require"
)

// TestSparseMatrix_SetGetDrop verifies the basic present/absent lifecycle.
func TestSparseMatrix_SetGetDrop(t *testing.T) {
	ctx := kernel.NewContext()
	m, err := kernel.NewSparseMatrix[int64](ctx, 3, 3)
	require.NoError(t, err)

	require.NoError(t, m.SetElement(1, 2, 7))
	val, present, err := m.GetElementValue(1, 2)
	require.NoError(t, err)
	require.True(t, present)
	require.EqualValues(t, 7, val)

	require.NoError(t, m.DropElement(1, 2))
	_, present, err = m.GetElementValue(1, 2)
	require.NoError(t, err)
	require.False(t, present)
}

// TestSparseMatrix_OutOfRange verifies bounds checking.
func TestSparseMatrix_OutOfRange(t *testing.T) {
	ctx := kernel.NewContext()
	m, err := kernel.NewSparseMatrix[bool](ctx, 2, 2)
	require.NoError(t, err)

	require.Error(t, m.SetElement(-1, 0, true))
	require.Error(t, m.SetElement(0, 2, true))
}

// TestSparseMatrix_ResizeOnlyGrows verifies shrinking either dimension is
// rejected.
func TestSparseMatrix_ResizeOnlyGrows(t *testing.T) {
	ctx := kernel.NewContext()
	m, err := kernel.NewSparseMatrix[float32](ctx, 2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Resize(4, 4))
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 4, m.Cols())

	require.Error(t, m.Resize(1, 4))
	require.Error(t, m.Resize(4, 1))
}

// TestSparseMatrix_DropRowCol verifies row/column fan-out clearing.
func TestSparseMatrix_DropRowCol(t *testing.T) {
	ctx := kernel.NewContext()
	m, err := kernel.NewSparseMatrix[int32](ctx, 3, 3)
	require.NoError(t, err)
	require.NoError(t, m.SetElement(1, 0, 1))
	require.NoError(t, m.SetElement(1, 1, 2))
	require.NoError(t, m.SetElement(0, 1, 3))

	m.DropRow(1)
	require.Equal(t, 1, m.NumStored())

	m.DropCol(1)
	require.Equal(t, 0, m.NumStored())
}

// TestSparseMatrix_ExtractAndInsertRowCol verifies extracting a row into a
// SparseVector and inserting a SparseVector as a column.
func TestSparseMatrix_ExtractAndInsertRowCol(t *testing.T) {
	ctx := kernel.NewContext()
	m, err := kernel.NewSparseMatrix[int32](ctx, 2, 3)
	require.NoError(t, err)
	require.NoError(t, m.SetElement(0, 0, 1))
	require.NoError(t, m.SetElement(0, 2, 3))

	row, err := m.ExtractRow(0)
	require.NoError(t, err)
	require.Equal(t, 2, row.NumStored())

	col, err := kernel.NewSparseVector[int32](ctx, 2)
	require.NoError(t, err)
	require.NoError(t, col.SetElement(0, 9))
	require.NoError(t, col.SetElement(1, 10))
	require.NoError(t, m.InsertVectorIntoCol(1, col))

	val, present, err := m.GetElementValue(1, 1)
	require.NoError(t, err)
	require.True(t, present)
	require.EqualValues(t, 10, val)
}

// TestSparseMatrix_Clone verifies deep-copy isolation.
func TestSparseMatrix_Clone(t *testing.T) {
	ctx := kernel.NewContext()
	m, err := kernel.NewSparseMatrix[int32](ctx, 2, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetElement(0, 0, 5))

	clone := m.Clone()
	require.NoError(t, clone.SetElement(1, 1, 6))
	require.Equal(t, 1, m.NumStored())
	require.Equal(t, 2, clone.NumStored())
}
