// SPDX-License-Identifier: MIT
package container

import (
	"fmt"

	"github.com/katalvlaran/graphalg/kernel"
	"github.com/katalvlaran/graphalg/scalar"
)

// MatrixFamily holds one kernel.SparseMatrix per scalar.Type, all sharing
// the same rows×cols shape. It backs an AdjacencyMatrix: one family per
// edge-type.
type MatrixFamily struct {
	ctx *kernel.Context

	boolMat    *kernel.SparseMatrix[bool]
	int8Mat    *kernel.SparseMatrix[int8]
	int16Mat   *kernel.SparseMatrix[int16]
	int32Mat   *kernel.SparseMatrix[int32]
	int64Mat   *kernel.SparseMatrix[int64]
	uint8Mat   *kernel.SparseMatrix[uint8]
	uint16Mat  *kernel.SparseMatrix[uint16]
	uint32Mat  *kernel.SparseMatrix[uint32]
	uint64Mat  *kernel.SparseMatrix[uint64]
	float32Mat *kernel.SparseMatrix[float32]
	float64Mat *kernel.SparseMatrix[float64]
	intMat     *kernel.SparseMatrix[int]
	uintMat    *kernel.SparseMatrix[uint]
}

// NewMatrixFamily allocates a rows×cols MatrixFamily: thirteen empty
// sparse matrices, all against ctx, all of identical shape.
func NewMatrixFamily(ctx *kernel.Context, rows, cols int) (*MatrixFamily, error) {
	f := &MatrixFamily{ctx: ctx}
	var err error
	if f.boolMat, err = kernel.NewSparseMatrix[bool](ctx, rows, cols); err != nil {
		return nil, err
	}
	if f.int8Mat, err = kernel.NewSparseMatrix[int8](ctx, rows, cols); err != nil {
		return nil, err
	}
	if f.int16Mat, err = kernel.NewSparseMatrix[int16](ctx, rows, cols); err != nil {
		return nil, err
	}
	if f.int32Mat, err = kernel.NewSparseMatrix[int32](ctx, rows, cols); err != nil {
		return nil, err
	}
	if f.int64Mat, err = kernel.NewSparseMatrix[int64](ctx, rows, cols); err != nil {
		return nil, err
	}
	if f.uint8Mat, err = kernel.NewSparseMatrix[uint8](ctx, rows, cols); err != nil {
		return nil, err
	}
	if f.uint16Mat, err = kernel.NewSparseMatrix[uint16](ctx, rows, cols); err != nil {
		return nil, err
	}
	if f.uint32Mat, err = kernel.NewSparseMatrix[uint32](ctx, rows, cols); err != nil {
		return nil, err
	}
	if f.uint64Mat, err = kernel.NewSparseMatrix[uint64](ctx, rows, cols); err != nil {
		return nil, err
	}
	if f.float32Mat, err = kernel.NewSparseMatrix[float32](ctx, rows, cols); err != nil {
		return nil, err
	}
	if f.float64Mat, err = kernel.NewSparseMatrix[float64](ctx, rows, cols); err != nil {
		return nil, err
	}
	if f.intMat, err = kernel.NewSparseMatrix[int](ctx, rows, cols); err != nil {
		return nil, err
	}
	if f.uintMat, err = kernel.NewSparseMatrix[uint](ctx, rows, cols); err != nil {
		return nil, err
	}
	return f, nil
}

// Shape returns the shared (rows, cols) of every container in the family.
func (f *MatrixFamily) Shape() (int, int) {
	return f.boolMat.Rows(), f.boolMat.Cols()
}

// Resize grows every one of the thirteen containers to rows×cols, in the
// same fixed order NewMatrixFamily constructs them in.
func (f *MatrixFamily) Resize(rows, cols int) error {
	for _, m := range f.all() {
		if err := m.resize(rows, cols); err != nil {
			return fmt.Errorf("MatrixFamily.Resize: %w", err)
		}
	}
	return nil
}

type typedMatrix interface {
	resize(rows, cols int) error
}

type matAdapter[T scalar.Scalar] struct{ m *kernel.SparseMatrix[T] }

func (a matAdapter[T]) resize(rows, cols int) error { return a.m.Resize(rows, cols) }

func (f *MatrixFamily) all() []typedMatrix {
	return []typedMatrix{
		matAdapter[bool]{f.boolMat},
		matAdapter[int8]{f.int8Mat},
		matAdapter[int16]{f.int16Mat},
		matAdapter[int32]{f.int32Mat},
		matAdapter[int64]{f.int64Mat},
		matAdapter[uint8]{f.uint8Mat},
		matAdapter[uint16]{f.uint16Mat},
		matAdapter[uint32]{f.uint32Mat},
		matAdapter[uint64]{f.uint64Mat},
		matAdapter[float32]{f.float32Mat},
		matAdapter[float64]{f.float64Mat},
		matAdapter[int]{f.intMat},
		matAdapter[uint]{f.uintMat},
	}
}

// MatrixOf returns the typed SparseMatrix for scalar type T.
func MatrixOf[T scalar.Scalar](f *MatrixFamily) *kernel.SparseMatrix[T] {
	var zero T
	switch any(zero).(type) {
	case bool:
		return any(f.boolMat).(*kernel.SparseMatrix[T])
	case int8:
		return any(f.int8Mat).(*kernel.SparseMatrix[T])
	case int16:
		return any(f.int16Mat).(*kernel.SparseMatrix[T])
	case int32:
		return any(f.int32Mat).(*kernel.SparseMatrix[T])
	case int64:
		return any(f.int64Mat).(*kernel.SparseMatrix[T])
	case uint8:
		return any(f.uint8Mat).(*kernel.SparseMatrix[T])
	case uint16:
		return any(f.uint16Mat).(*kernel.SparseMatrix[T])
	case uint32:
		return any(f.uint32Mat).(*kernel.SparseMatrix[T])
	case uint64:
		return any(f.uint64Mat).(*kernel.SparseMatrix[T])
	case float32:
		return any(f.float32Mat).(*kernel.SparseMatrix[T])
	case float64:
		return any(f.float64Mat).(*kernel.SparseMatrix[T])
	case int:
		return any(f.intMat).(*kernel.SparseMatrix[T])
	case uint:
		return any(f.uintMat).(*kernel.SparseMatrix[T])
	default:
		return nil
	}
}

// IsElementSetAny reports whether (row, col) carries a value in any one of
// the thirteen containers.
func (f *MatrixFamily) IsElementSetAny(row, col int) (bool, error) {
	for _, m := range []interface {
		IsElement(int, int) (bool, error)
	}{f.boolMat, f.int8Mat, f.int16Mat, f.int32Mat, f.int64Mat, f.uint8Mat, f.uint16Mat, f.uint32Mat, f.uint64Mat, f.float32Mat, f.float64Mat, f.intMat, f.uintMat} {
		ok, err := m.IsElement(row, col)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// ClearRowColAll drops every cell in row and in col, across all thirteen
// containers. Used by delete-vertex fan-out across adjacency matrices,
// where every edge touching the deleted vertex (as either endpoint) must
// go. Not for single-edge deletion: use ClearCellAll for that.
func (f *MatrixFamily) ClearRowColAll(row, col int) {
	for _, m := range []interface {
		DropRow(int)
		DropCol(int)
	}{f.boolMat, f.int8Mat, f.int16Mat, f.int32Mat, f.int64Mat, f.uint8Mat, f.uint16Mat, f.uint32Mat, f.uint64Mat, f.float32Mat, f.float64Mat, f.intMat, f.uintMat} {
		m.DropRow(row)
		m.DropCol(col)
	}
}

// ClearCellAll drops the single (row, col) cell, across all thirteen
// containers. Used by single-edge deletion, which must not disturb any
// other edge sharing row or col.
func (f *MatrixFamily) ClearCellAll(row, col int) error {
	for _, m := range []interface {
		DropElement(int, int) error
	}{f.boolMat, f.int8Mat, f.int16Mat, f.int32Mat, f.int64Mat, f.uint8Mat, f.uint16Mat, f.uint32Mat, f.uint64Mat, f.float32Mat, f.float64Mat, f.intMat, f.uintMat} {
		if err := m.DropElement(row, col); err != nil {
			return err
		}
	}
	return nil
}
