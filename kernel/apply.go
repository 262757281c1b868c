// SPDX-License-Identifier: MIT
package kernel

import "github.com/katalvlaran/graphalg/scalar"

// ApplyVector writes op(src[i]) into dst[i] for every i masked in by mask,
// combining with whatever already sits in dst via acc (acc may be nil to
// overwrite outright). src and dst may be the same vector only when the
// caller guarantees no aliasing hazard; this function itself performs no
// aliasing detection — that discipline lives in graph/'s operator surface,
// which is the only place two references into one store are ever
// materialized.
//
// Complexity: O(src.Length()).
func ApplyVector[T scalar.Scalar](src, dst *SparseVector[T], op UnaryOperator[T], acc AccumulatorBinaryOperator[T], mask *VectorMask) error {
	if src.Length() != dst.Length() {
		return ErrDimensionMismatch
	}
	for i := 0; i < src.Length(); i++ {
		if mask != nil && !mask.Passes(i) {
			continue
		}
		sv, ok, err := src.GetElementValue(i)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		result := op(sv)
		if acc != nil {
			if existing, ok, err := dst.GetElementValue(i); err == nil && ok {
				result = acc(existing, result)
			}
		}
		if err := dst.SetElement(i, result); err != nil {
			return err
		}
	}
	return nil
}

// ApplyBinaryScalarVector is the binary-with-scalar apply flavor: it writes
// op(src[i], scalar) into dst[i] for every masked-in i.
// Complexity: O(src.Length()).
func ApplyBinaryScalarVector[T scalar.Scalar](src, dst *SparseVector[T], op BinaryOperator[T], rhs T, acc AccumulatorBinaryOperator[T], mask *VectorMask) error {
	return ApplyVector(src, dst, func(a T) T { return op(a, rhs) }, acc, mask)
}

// ApplyMatrix writes op(src[r,c]) into dst[r,c] for every masked-in (r,c).
// Complexity: O(nnz(src)).
func ApplyMatrix[T scalar.Scalar](src, dst *SparseMatrix[T], op UnaryOperator[T], acc AccumulatorBinaryOperator[T], mask *MatrixMask) error {
	if src.Rows() != dst.Rows() || src.Cols() != dst.Cols() {
		return ErrDimensionMismatch
	}
	for _, el := range src.ElementList() {
		if mask != nil && !mask.Passes(el.Row, el.Col) {
			continue
		}
		result := op(el.Value)
		if acc != nil {
			if existing, ok, err := dst.GetElementValue(el.Row, el.Col); err == nil && ok {
				result = acc(existing, result)
			}
		}
		if err := dst.SetElement(el.Row, el.Col, result); err != nil {
			return err
		}
	}
	return nil
}

// ApplyBinaryScalarMatrix is the binary-with-scalar apply flavor for
// matrices.
// Complexity: O(nnz(src)).
func ApplyBinaryScalarMatrix[T scalar.Scalar](src, dst *SparseMatrix[T], op BinaryOperator[T], rhs T, acc AccumulatorBinaryOperator[T], mask *MatrixMask) error {
	return ApplyMatrix(src, dst, func(a T) T { return op(a, rhs) }, acc, mask)
}
