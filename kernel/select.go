// SPDX-License-Identifier: MIT
package kernel

import "github.com/katalvlaran/graphalg/scalar"

// SelectVector writes src[i] into dst[i] for every i where op(i, 0, src[i],
// thunk) holds, restricted further by mask. Unselected dst cells are left
// untouched (callers wanting a clean slate should pass a freshly allocated
// dst).
// Complexity: O(src.Length()).
func SelectVector[T scalar.Scalar](src, dst *SparseVector[T], op IndexUnaryOperator[T], thunk T, mask *VectorMask) error {
	if src.Length() != dst.Length() {
		return ErrDimensionMismatch
	}
	for i := 0; i < src.Length(); i++ {
		if mask != nil && !mask.Passes(i) {
			continue
		}
		val, ok, err := src.GetElementValue(i)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if op(i, 0, val, thunk) {
			if err := dst.SetElement(i, val); err != nil {
				return err
			}
		}
	}
	return nil
}

// SelectMatrix writes src[r,c] into dst[r,c] for every present cell where
// op(r, c, src[r,c], thunk) holds, restricted further by mask.
// Complexity: O(nnz(src)).
func SelectMatrix[T scalar.Scalar](src, dst *SparseMatrix[T], op IndexUnaryOperator[T], thunk T, mask *MatrixMask) error {
	if src.Rows() != dst.Rows() || src.Cols() != dst.Cols() {
		return ErrDimensionMismatch
	}
	for _, el := range src.ElementList() {
		if mask != nil && !mask.Passes(el.Row, el.Col) {
			continue
		}
		if op(el.Row, el.Col, el.Value, thunk) {
			if err := dst.SetElement(el.Row, el.Col, el.Value); err != nil {
				return err
			}
		}
	}
	return nil
}
