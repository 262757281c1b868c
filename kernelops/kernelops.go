// SPDX-License-Identifier: MIT

// Package kernelops is the thin forwarding layer between graph-level
// operator requests and the kernel package's sparse-linear-algebra
// primitives. Every function here does no validation of its own beyond
// what kernel already performs. graph/ routes its operator calls through
// here, though it still imports kernel for operator, mask and context
// types.
package kernelops

import (
	"github.com/katalvlaran/graphalg/kernel"
	"github.com/katalvlaran/graphalg/scalar"
)

// ApplyVectorUnary forwards a unary apply over a VertexVector-shaped
// SparseVector.
func ApplyVectorUnary[T scalar.Scalar](src, dst *kernel.SparseVector[T], op kernel.UnaryOperator[T], acc kernel.AccumulatorBinaryOperator[T], mask *kernel.VectorMask) error {
	return kernel.ApplyVector(src, dst, op, acc, mask)
}

// ApplyVectorBinaryScalar forwards a binary-with-scalar apply over a
// SparseVector.
func ApplyVectorBinaryScalar[T scalar.Scalar](src, dst *kernel.SparseVector[T], op kernel.BinaryOperator[T], rhs T, acc kernel.AccumulatorBinaryOperator[T], mask *kernel.VectorMask) error {
	return kernel.ApplyBinaryScalarVector(src, dst, op, rhs, acc, mask)
}

// ApplyMatrixUnary forwards a unary apply over an AdjacencyMatrix-shaped
// SparseMatrix.
func ApplyMatrixUnary[T scalar.Scalar](src, dst *kernel.SparseMatrix[T], op kernel.UnaryOperator[T], acc kernel.AccumulatorBinaryOperator[T], mask *kernel.MatrixMask) error {
	return kernel.ApplyMatrix(src, dst, op, acc, mask)
}

// ApplyMatrixBinaryScalar forwards a binary-with-scalar apply over a
// SparseMatrix.
func ApplyMatrixBinaryScalar[T scalar.Scalar](src, dst *kernel.SparseMatrix[T], op kernel.BinaryOperator[T], rhs T, acc kernel.AccumulatorBinaryOperator[T], mask *kernel.MatrixMask) error {
	return kernel.ApplyBinaryScalarMatrix(src, dst, op, rhs, acc, mask)
}

// ElementWiseAddVector forwards monoid-evaluated element-wise addition.
func ElementWiseAddVector[T scalar.Scalar](a, b, dst *kernel.SparseVector[T], monoid kernel.Monoid[T], mask *kernel.VectorMask) error {
	return kernel.ElementWiseAddVector(a, b, dst, monoid, mask)
}

// ElementWiseMultiplyVector forwards binary-operator-evaluated element-wise
// multiplication.
func ElementWiseMultiplyVector[T scalar.Scalar](a, b, dst *kernel.SparseVector[T], op kernel.BinaryOperator[T], mask *kernel.VectorMask) error {
	return kernel.ElementWiseMultiplyVector(a, b, dst, op, mask)
}

// ElementWiseAddMatrix is the matrix analogue of ElementWiseAddVector.
func ElementWiseAddMatrix[T scalar.Scalar](a, b, dst *kernel.SparseMatrix[T], monoid kernel.Monoid[T], mask *kernel.MatrixMask) error {
	return kernel.ElementWiseAddMatrix(a, b, dst, monoid, mask)
}

// ElementWiseMultiplyMatrix is the matrix analogue of
// ElementWiseMultiplyVector.
func ElementWiseMultiplyMatrix[T scalar.Scalar](a, b, dst *kernel.SparseMatrix[T], op kernel.BinaryOperator[T], mask *kernel.MatrixMask) error {
	return kernel.ElementWiseMultiplyMatrix(a, b, dst, op, mask)
}

// SelectVector forwards an index-unary select over a SparseVector.
func SelectVector[T scalar.Scalar](src, dst *kernel.SparseVector[T], op kernel.IndexUnaryOperator[T], thunk T, mask *kernel.VectorMask) error {
	return kernel.SelectVector(src, dst, op, thunk, mask)
}

// SelectMatrix forwards an index-unary select over a SparseMatrix.
func SelectMatrix[T scalar.Scalar](src, dst *kernel.SparseMatrix[T], op kernel.IndexUnaryOperator[T], thunk T, mask *kernel.MatrixMask) error {
	return kernel.SelectMatrix(src, dst, op, thunk, mask)
}

// MatrixVectorMultiply forwards semiring matrix-vector multiply.
func MatrixVectorMultiply[T scalar.Scalar](mat *kernel.SparseMatrix[T], vec, dst *kernel.SparseVector[T], semiring kernel.Semiring[T], mask *kernel.VectorMask) error {
	return kernel.MatrixVectorMultiply(mat, vec, dst, semiring, mask)
}

// VectorMatrixMultiply forwards semiring vector-matrix multiply.
func VectorMatrixMultiply[T scalar.Scalar](vec *kernel.SparseVector[T], mat *kernel.SparseMatrix[T], dst *kernel.SparseVector[T], semiring kernel.Semiring[T], mask *kernel.VectorMask) error {
	return kernel.VectorMatrixMultiply(vec, mat, dst, semiring, mask)
}

// MatrixMatrixMultiply forwards semiring matrix-matrix multiply.
func MatrixMatrixMultiply[T scalar.Scalar](a, b, dst *kernel.SparseMatrix[T], semiring kernel.Semiring[T], mask *kernel.MatrixMask) error {
	return kernel.MatrixMatrixMultiply(a, b, dst, semiring, mask)
}
