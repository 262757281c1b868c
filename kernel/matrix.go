// SPDX-License-Identifier: MIT
package kernel

import (
	"fmt"

	"github.com/katalvlaran/graphalg/scalar"
)

// matrixErrorf wraps an underlying error with SparseMatrix method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("SparseMatrix.%s(%d,%d): %w", method, row, col, err)
}

// coord is the map key for a sparse matrix entry.
type coord struct{ row, col int }

// SparseMatrix is a sparse, map-backed square-or-rectangular matrix of
// element type T, used by AdjacencyMatrix as the per-edge-type weight
// store. Only present cells occupy memory.
type SparseMatrix[T scalar.Scalar] struct {
	ctx        *Context
	rows, cols int
	data       map[coord]T
}

// NewSparseMatrix allocates a rows×cols SparseMatrix against ctx.
// Complexity: O(1).
func NewSparseMatrix[T scalar.Scalar](ctx *Context, rows, cols int) (*SparseMatrix[T], error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidShape
	}
	return &SparseMatrix[T]{ctx: ctx, rows: rows, cols: cols, data: make(map[coord]T)}, nil
}

// Rows returns the row count.
func (m *SparseMatrix[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *SparseMatrix[T]) Cols() int { return m.cols }

// Resize grows the matrix to rows×cols. Shrinking either dimension is
// rejected.
// Complexity: O(1).
func (m *SparseMatrix[T]) Resize(rows, cols int) error {
	if rows < m.rows || cols < m.cols {
		return matrixErrorf("Resize", rows, cols, ErrInvalidShape)
	}
	m.rows, m.cols = rows, cols
	return nil
}

func (m *SparseMatrix[T]) checkCoord(row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return ErrOutOfRange
	}
	return nil
}

// SetElement writes value at (row, col).
// Complexity: O(1).
func (m *SparseMatrix[T]) SetElement(row, col int, value T) error {
	if err := m.checkCoord(row, col); err != nil {
		return matrixErrorf("SetElement", row, col, err)
	}
	m.data[coord{row, col}] = value
	return nil
}

// GetElementValue returns the value at (row, col) and whether it is present.
// Complexity: O(1).
func (m *SparseMatrix[T]) GetElementValue(row, col int) (T, bool, error) {
	var zero T
	if err := m.checkCoord(row, col); err != nil {
		return zero, false, matrixErrorf("GetElementValue", row, col, err)
	}
	val, ok := m.data[coord{row, col}]
	return val, ok, nil
}

// GetElementValueOrDefault returns the value at (row, col), or T's zero
// value if absent.
// Complexity: O(1).
func (m *SparseMatrix[T]) GetElementValueOrDefault(row, col int) (T, error) {
	var zero T
	if err := m.checkCoord(row, col); err != nil {
		return zero, matrixErrorf("GetElementValueOrDefault", row, col, err)
	}
	return m.data[coord{row, col}], nil
}

// IsElement reports whether (row, col) currently holds a stored value.
// Complexity: O(1).
func (m *SparseMatrix[T]) IsElement(row, col int) (bool, error) {
	if err := m.checkCoord(row, col); err != nil {
		return false, matrixErrorf("IsElement", row, col, err)
	}
	_, ok := m.data[coord{row, col}]
	return ok, nil
}

// DropElement removes the cell at (row, col), if any. A no-op if absent.
// Complexity: O(1).
func (m *SparseMatrix[T]) DropElement(row, col int) error {
	if err := m.checkCoord(row, col); err != nil {
		return matrixErrorf("DropElement", row, col, err)
	}
	delete(m.data, coord{row, col})
	return nil
}

// DropRow removes every cell in row, if any. Used by delete-vertex fan-out
// across every AdjacencyMatrix row/column.
// Complexity: O(nnz) worst case (full scan); acceptable at the substrate's
// target scale since deletes are not assumed hot-path.
func (m *SparseMatrix[T]) DropRow(row int) {
	for c := range m.data {
		if c.row == row {
			delete(m.data, c)
		}
	}
}

// DropCol removes every cell in col, if any.
// Complexity: O(nnz).
func (m *SparseMatrix[T]) DropCol(col int) {
	for c := range m.data {
		if c.col == col {
			delete(m.data, c)
		}
	}
}

// NumStored reports the number of present cells (the matrix's nnz).
func (m *SparseMatrix[T]) NumStored() int { return len(m.data) }

// MatrixElement pairs a present coordinate with its stored value.
type MatrixElement[T any] struct {
	Row, Col int
	Value    T
}

// ElementList exports every present (row, col, value) triple. Order is
// unspecified.
// Complexity: O(nnz).
func (m *SparseMatrix[T]) ElementList() []MatrixElement[T] {
	out := make([]MatrixElement[T], 0, len(m.data))
	for c, val := range m.data {
		out = append(out, MatrixElement[T]{Row: c.row, Col: c.col, Value: val})
	}
	return out
}

// ExtractRow returns a new length-Cols() SparseVector holding row's entries.
// Complexity: O(nnz).
func (m *SparseMatrix[T]) ExtractRow(row int) (*SparseVector[T], error) {
	if row < 0 || row >= m.rows {
		return nil, matrixErrorf("ExtractRow", row, 0, ErrOutOfRange)
	}
	v, err := NewSparseVector[T](m.ctx, m.cols)
	if err != nil {
		return nil, err
	}
	for c, val := range m.data {
		if c.row == row {
			v.data[c.col] = val
		}
	}
	return v, nil
}

// ExtractCol returns a new length-Rows() SparseVector holding col's entries.
// Complexity: O(nnz).
func (m *SparseMatrix[T]) ExtractCol(col int) (*SparseVector[T], error) {
	if col < 0 || col >= m.cols {
		return nil, matrixErrorf("ExtractCol", 0, col, ErrOutOfRange)
	}
	v, err := NewSparseVector[T](m.ctx, m.rows)
	if err != nil {
		return nil, err
	}
	for c, val := range m.data {
		if c.col == col {
			v.data[c.row] = val
		}
	}
	return v, nil
}

// InsertVectorIntoRow overwrites row with vec's entries (vec.Length() must
// equal Cols()); existing entries in row are cleared first.
// Complexity: O(Cols() + nnz(vec)).
func (m *SparseMatrix[T]) InsertVectorIntoRow(row int, vec *SparseVector[T]) error {
	if row < 0 || row >= m.rows {
		return matrixErrorf("InsertVectorIntoRow", row, 0, ErrOutOfRange)
	}
	if vec.Length() != m.cols {
		return matrixErrorf("InsertVectorIntoRow", row, 0, ErrDimensionMismatch)
	}
	m.DropRow(row)
	for col, val := range vec.data {
		m.data[coord{row, col}] = val
	}
	return nil
}

// InsertVectorIntoCol overwrites col with vec's entries (vec.Length() must
// equal Rows()); existing entries in col are cleared first.
// Complexity: O(Rows() + nnz(vec)).
func (m *SparseMatrix[T]) InsertVectorIntoCol(col int, vec *SparseVector[T]) error {
	if col < 0 || col >= m.cols {
		return matrixErrorf("InsertVectorIntoCol", 0, col, ErrOutOfRange)
	}
	if vec.Length() != m.rows {
		return matrixErrorf("InsertVectorIntoCol", 0, col, ErrDimensionMismatch)
	}
	m.DropCol(col)
	for row, val := range vec.data {
		m.data[coord{row, col}] = val
	}
	return nil
}

// Clone returns a deep copy sharing the same Context.
// Complexity: O(nnz).
func (m *SparseMatrix[T]) Clone() *SparseMatrix[T] {
	data := make(map[coord]T, len(m.data))
	for k, v := range m.data {
		data[k] = v
	}
	return &SparseMatrix[T]{ctx: m.ctx, rows: m.rows, cols: m.cols, data: data}
}
