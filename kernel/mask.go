// SPDX-License-Identifier: MIT
package kernel

// Selector is an element-index selector: either the whole shape, or an
// explicit index list. The zero value is not a valid Selector; use
// AllIndices or Indices.
type Selector struct {
	all     bool
	indices []int
}

// AllIndices selects every index/coordinate of the target shape.
func AllIndices() Selector {
	return Selector{all: true}
}

// Indices selects exactly the given indices.
func Indices(idx ...int) Selector {
	cp := make([]int, len(idx))
	copy(cp, idx)
	return Selector{indices: cp}
}

// IsAll reports whether the selector denotes the whole shape.
func (s Selector) IsAll() bool { return s.all }

// List returns the explicit index list; empty (and meaningless) when IsAll
// is true.
func (s Selector) List() []int { return s.indices }

// VectorMask is a sparse boolean vector restricting which cells of a vector
// operator's result get written. Kernel operators treat a nil *VectorMask
// as selecting every index; graph/ substitutes a full-selector mask
// whenever a caller omits one.
type VectorMask struct {
	*SparseVector[bool]
}

// NewVectorMask allocates a length-n VectorMask with every entry absent
// (i.e. masking everything out) until explicitly set.
func NewVectorMask(ctx *Context, length int) (*VectorMask, error) {
	v, err := NewSparseVector[bool](ctx, length)
	if err != nil {
		return nil, err
	}
	return &VectorMask{v}, nil
}

// FullVectorMask allocates a length-n VectorMask with every entry present
// and true: the "select everything" mask used by unmasked operators.
func FullVectorMask(ctx *Context, length int) (*VectorMask, error) {
	m, err := NewVectorMask(ctx, length)
	if err != nil {
		return nil, err
	}
	for i := 0; i < length; i++ {
		_ = m.SetElement(i, true)
	}
	return m, nil
}

// Passes reports whether idx is selected by the mask: true entries pass,
// everything else (absent or explicit false) is masked out.
func (m *VectorMask) Passes(idx int) bool {
	v, ok, err := m.GetElementValue(idx)
	return err == nil && ok && v
}

// MatrixMask is the matrix analogue of VectorMask, restricting which cells
// of a matrix operator's result get written.
type MatrixMask struct {
	*SparseMatrix[bool]
}

// NewMatrixMask allocates a rows×cols MatrixMask with every entry absent.
func NewMatrixMask(ctx *Context, rows, cols int) (*MatrixMask, error) {
	m, err := NewSparseMatrix[bool](ctx, rows, cols)
	if err != nil {
		return nil, err
	}
	return &MatrixMask{m}, nil
}

// FullMatrixMask allocates a rows×cols MatrixMask with every cell present
// and true: the default mask for unmasked matrix operators.
func FullMatrixMask(ctx *Context, rows, cols int) (*MatrixMask, error) {
	m, err := NewMatrixMask(ctx, rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			_ = m.SetElement(r, c, true)
		}
	}
	return m, nil
}

// Passes reports whether (row, col) is selected by the mask.
func (m *MatrixMask) Passes(row, col int) bool {
	v, ok, err := m.GetElementValue(row, col)
	return err == nil && ok && v
}
