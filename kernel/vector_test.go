// Package kernel_test contains unit tests for the SparseVector container.
package kernel_test

import (
	"testing"

	"github.com/katalvlaran/graphalg/kernel"
	"github.com/stretchr/testify/require"
)

// TestSparseVector_SetGetDrop verifies the basic present/absent lifecycle.
func TestSparseVector_SetGetDrop(t *testing.T) {
	ctx := kernel.NewContext()
	v, err := kernel.NewSparseVector[int32](ctx, 4)
	require.NoError(t, err)

	_, present, err := v.GetElementValue(0)
	require.NoError(t, err)
	require.False(t, present)

	require.NoError(t, v.SetElement(2, 42))
	val, present, err := v.GetElementValue(2)
	require.NoError(t, err)
	require.True(t, present)
	require.EqualValues(t, 42, val)

	require.NoError(t, v.DropElement(2))
	_, present, err = v.GetElementValue(2)
	require.NoError(t, err)
	require.False(t, present)
}

// TestSparseVector_GetElementValueOrDefault verifies absent reads as zero.
func TestSparseVector_GetElementValueOrDefault(t *testing.T) {
	ctx := kernel.NewContext()
	v, err := kernel.NewSparseVector[float64](ctx, 3)
	require.NoError(t, err)

	val, err := v.GetElementValueOrDefault(1)
	require.NoError(t, err)
	require.Zero(t, val)
}

// TestSparseVector_OutOfRange verifies bounds checking on SetElement and
// GetElementValue.
func TestSparseVector_OutOfRange(t *testing.T) {
	ctx := kernel.NewContext()
	v, err := kernel.NewSparseVector[uint8](ctx, 2)
	require.NoError(t, err)

	require.Error(t, v.SetElement(-1, 1))
	require.Error(t, v.SetElement(2, 1))
	_, _, err = v.GetElementValue(5)
	require.Error(t, err)
}

// TestSparseVector_ResizeOnlyGrows verifies shrinking is rejected.
func TestSparseVector_ResizeOnlyGrows(t *testing.T) {
	ctx := kernel.NewContext()
	v, err := kernel.NewSparseVector[int](ctx, 5)
	require.NoError(t, err)

	require.NoError(t, v.Resize(10))
	require.Equal(t, 10, v.Length())

	require.Error(t, v.Resize(3))
	require.Equal(t, 10, v.Length())
}

// TestSparseVector_ElementListAndClone verifies export and deep-copy
// isolation between a vector and its clone.
func TestSparseVector_ElementListAndClone(t *testing.T) {
	ctx := kernel.NewContext()
	v, err := kernel.NewSparseVector[int32](ctx, 4)
	require.NoError(t, err)
	require.NoError(t, v.SetElement(0, 10))
	require.NoError(t, v.SetElement(3, 30))

	require.Equal(t, 2, v.NumStored())
	elems := v.ElementList()
	require.Len(t, elems, 2)

	clone := v.Clone()
	require.NoError(t, clone.SetElement(1, 99))
	require.Equal(t, 2, v.NumStored())
	require.Equal(t, 3, clone.NumStored())
}
