// SPDX-License-Identifier: MIT
package kernel

import "github.com/katalvlaran/graphalg/scalar"

// MatrixVectorMultiply computes dst = mat ⊕.⊗ vec under semiring, restricted
// to mask: dst[r] = reduce_c(mat[r,c] ⊗ vec[c]) over present c, using
// semiring.Add to combine. A row with no contributing cell leaves dst[r]
// untouched rather than writing semiring.Add.Identity, so a masked-out
// destination keeps whatever it already held.
// Complexity: O(nnz(mat)).
func MatrixVectorMultiply[T scalar.Scalar](mat *SparseMatrix[T], vec, dst *SparseVector[T], semiring Semiring[T], mask *VectorMask) error {
	if mat.Cols() != vec.Length() || mat.Rows() != dst.Length() {
		return ErrDimensionMismatch
	}
	rowHasValue := make(map[int]bool, dst.Length())
	for _, el := range mat.ElementList() {
		if mask != nil && !mask.Passes(el.Row) {
			continue
		}
		vv, ok, err := vec.GetElementValue(el.Col)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		contribution := semiring.Mul(el.Value, vv)
		if rowHasValue[el.Row] {
			existing, _, err := dst.GetElementValue(el.Row)
			if err != nil {
				return err
			}
			contribution = semiring.Add.Op(existing, contribution)
		}
		if err := dst.SetElement(el.Row, contribution); err != nil {
			return err
		}
		rowHasValue[el.Row] = true
	}
	return nil
}

// VectorMatrixMultiply computes dst = vec ⊕.⊗ mat (row-vector times matrix):
// dst[c] = reduce_r(vec[r] ⊗ mat[r,c]) over present r, restricted to mask.
// Complexity: O(nnz(mat)).
func VectorMatrixMultiply[T scalar.Scalar](vec *SparseVector[T], mat *SparseMatrix[T], dst *SparseVector[T], semiring Semiring[T], mask *VectorMask) error {
	if mat.Rows() != vec.Length() || mat.Cols() != dst.Length() {
		return ErrDimensionMismatch
	}
	colHasValue := make(map[int]bool, dst.Length())
	for _, el := range mat.ElementList() {
		if mask != nil && !mask.Passes(el.Col) {
			continue
		}
		vv, ok, err := vec.GetElementValue(el.Row)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		contribution := semiring.Mul(vv, el.Value)
		if colHasValue[el.Col] {
			existing, _, err := dst.GetElementValue(el.Col)
			if err != nil {
				return err
			}
			contribution = semiring.Add.Op(existing, contribution)
		}
		if err := dst.SetElement(el.Col, contribution); err != nil {
			return err
		}
		colHasValue[el.Col] = true
	}
	return nil
}

// MatrixMatrixMultiply computes dst = a ⊕.⊗ b under semiring, restricted to
// mask: dst[r,c] = reduce_k(a[r,k] ⊗ b[k,c]) over k where both a[r,k] and
// b[k,c] are present.
// Complexity: O(nnz(a) * avg-row-density(b)); acceptable at the substrate's
// target scale of sparse adjacency structures.
func MatrixMatrixMultiply[T scalar.Scalar](a, b, dst *SparseMatrix[T], semiring Semiring[T], mask *MatrixMask) error {
	if a.Cols() != b.Rows() || a.Rows() != dst.Rows() || b.Cols() != dst.Cols() {
		return ErrDimensionMismatch
	}
	type rc struct{ r, c int }
	hasValue := make(map[rc]bool)
	for _, ela := range a.ElementList() {
		bRow, err := b.ExtractRow(ela.Col)
		if err != nil {
			return err
		}
		for _, elb := range bRow.ElementList() {
			if mask != nil && !mask.Passes(ela.Row, elb.Index) {
				continue
			}
			contribution := semiring.Mul(ela.Value, elb.Value)
			key := rc{ela.Row, elb.Index}
			if hasValue[key] {
				existing, _, err := dst.GetElementValue(key.r, key.c)
				if err != nil {
					return err
				}
				contribution = semiring.Add.Op(existing, contribution)
			}
			if err := dst.SetElement(key.r, key.c, contribution); err != nil {
				return err
			}
			hasValue[key] = true
		}
	}
	return nil
}
