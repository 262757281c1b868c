// SPDX-License-Identifier: MIT
package kernel

import "github.com/katalvlaran/graphalg/scalar"

// ElementWiseAddVector computes dst = a ⊕ b using monoid.Op over the union
// of a's and b's present indices (GraphBLAS monoid-eWiseAdd semantics:
// present-in-either survives, with monoid.Op combining where both are
// present), restricted to mask.
// Complexity: O(nnz(a) + nnz(b)).
func ElementWiseAddVector[T scalar.Scalar](a, b, dst *SparseVector[T], monoid Monoid[T], mask *VectorMask) error {
	if a.Length() != b.Length() || a.Length() != dst.Length() {
		return ErrDimensionMismatch
	}
	seen := make(map[int]struct{}, a.NumStored()+b.NumStored())
	for _, el := range a.ElementList() {
		seen[el.Index] = struct{}{}
	}
	for _, el := range b.ElementList() {
		seen[el.Index] = struct{}{}
	}
	for idx := range seen {
		if mask != nil && !mask.Passes(idx) {
			continue
		}
		av, aok, err := a.GetElementValue(idx)
		if err != nil {
			return err
		}
		bv, bok, err := b.GetElementValue(idx)
		if err != nil {
			return err
		}
		var result T
		switch {
		case aok && bok:
			result = monoid.Op(av, bv)
		case aok:
			result = av
		default:
			result = bv
		}
		if err := dst.SetElement(idx, result); err != nil {
			return err
		}
	}
	return nil
}

// ElementWiseMultiplyVector computes dst = a ⊗ b restricted to the
// intersection of a's and b's present indices (GraphBLAS eWiseMult
// semantics: absent in either ⇒ absent in the result), further restricted
// to mask.
// Complexity: O(min(nnz(a), nnz(b))).
func ElementWiseMultiplyVector[T scalar.Scalar](a, b, dst *SparseVector[T], op BinaryOperator[T], mask *VectorMask) error {
	if a.Length() != b.Length() || a.Length() != dst.Length() {
		return ErrDimensionMismatch
	}
	smaller, other := a, b
	if b.NumStored() < a.NumStored() {
		smaller, other = b, a
	}
	for _, el := range smaller.ElementList() {
		if mask != nil && !mask.Passes(el.Index) {
			continue
		}
		ov, ok, err := other.GetElementValue(el.Index)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		var result T
		if smaller == a {
			result = op(el.Value, ov)
		} else {
			result = op(ov, el.Value)
		}
		if err := dst.SetElement(el.Index, result); err != nil {
			return err
		}
	}
	return nil
}

// ElementWiseAddMatrix is the matrix analogue of ElementWiseAddVector.
// Complexity: O(nnz(a) + nnz(b)).
func ElementWiseAddMatrix[T scalar.Scalar](a, b, dst *SparseMatrix[T], monoid Monoid[T], mask *MatrixMask) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() || a.Rows() != dst.Rows() || a.Cols() != dst.Cols() {
		return ErrDimensionMismatch
	}
	type rc struct{ r, c int }
	seen := make(map[rc]struct{}, a.NumStored()+b.NumStored())
	for _, el := range a.ElementList() {
		seen[rc{el.Row, el.Col}] = struct{}{}
	}
	for _, el := range b.ElementList() {
		seen[rc{el.Row, el.Col}] = struct{}{}
	}
	for k := range seen {
		if mask != nil && !mask.Passes(k.r, k.c) {
			continue
		}
		av, aok, err := a.GetElementValue(k.r, k.c)
		if err != nil {
			return err
		}
		bv, bok, err := b.GetElementValue(k.r, k.c)
		if err != nil {
			return err
		}
		var result T
		switch {
		case aok && bok:
			result = monoid.Op(av, bv)
		case aok:
			result = av
		default:
			result = bv
		}
		if err := dst.SetElement(k.r, k.c, result); err != nil {
			return err
		}
	}
	return nil
}

// ElementWiseMultiplyMatrix is the matrix analogue of
// ElementWiseMultiplyVector.
// Complexity: O(min(nnz(a), nnz(b))).
func ElementWiseMultiplyMatrix[T scalar.Scalar](a, b, dst *SparseMatrix[T], op BinaryOperator[T], mask *MatrixMask) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() || a.Rows() != dst.Rows() || a.Cols() != dst.Cols() {
		return ErrDimensionMismatch
	}
	smaller, other := a, b
	swapped := false
	if b.NumStored() < a.NumStored() {
		smaller, other = b, a
		swapped = true
	}
	for _, el := range smaller.ElementList() {
		if mask != nil && !mask.Passes(el.Row, el.Col) {
			continue
		}
		ov, ok, err := other.GetElementValue(el.Row, el.Col)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		var result T
		if swapped {
			result = op(ov, el.Value)
		} else {
			result = op(el.Value, ov)
		}
		if err := dst.SetElement(el.Row, el.Col, result); err != nil {
			return err
		}
	}
	return nil
}
