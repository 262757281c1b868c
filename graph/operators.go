// SPDX-License-Identifier: MIT

// Package graph's operator surface mirrors kernel's categories (apply,
// element-wise add/multiply, select, semiring multiply) but resolved
// through vertex-type/edge-type indices instead of raw container pointers.
// Every entry point takes operand container(s), an operator (and for apply,
// an optional accumulator), a product container, and an optional mask; a
// nil mask is replaced by a full-selector mask (a fresh one sized to the
// vertex capacity for vector operators, the EdgeStore's own for matrix
// operators) so masked and unmasked calls share one kernel path.
//
// Two immutable operand references and one mutable product reference may
// name the same VectorFamily/MatrixFamily (even the same *kernel.SparseVector
// when operand and product share a ScalarType): Go's garbage-collected
// pointers make that safe to hold, but callers must still not expect a
// coherent read of a container mid-write to it from a second goroutine —
// this surface is single-threaded per Graph, as kernel.Context assumes.
package graph

import (
	"github.com/katalvlaran/graphalg/container"
	"github.com/katalvlaran/graphalg/errtax"
	"github.com/katalvlaran/graphalg/kernel"
	"github.com/katalvlaran/graphalg/kernelops"
	"github.com/katalvlaran/graphalg/scalar"
)

// ApplyVertexVector applies op (and, if acc is non-nil, accumulates into
// the existing product value) from the type-T container of srcTypeIdx's
// family into the type-T container of dstTypeIdx's family. mask, if nil,
// defaults to a full selector sized to the current vertex capacity.
func ApplyVertexVector[T scalar.Scalar](g *Graph, srcTypeIdx, dstTypeIdx int, op kernel.UnaryOperator[T], acc kernel.AccumulatorBinaryOperator[T], mask *kernel.VectorMask) error {
	srcFam, err := g.vertices.VectorFamilyForType(srcTypeIdx)
	if err != nil {
		return err
	}
	dstFam, err := g.vertices.VectorFamilyForType(dstTypeIdx)
	if err != nil {
		return err
	}
	if mask == nil {
		mask, err = kernel.FullVectorMask(g.ctx, g.VertexCapacity())
		if err != nil {
			return errtax.Wrap("graph.ApplyVertexVector", err)
		}
	}
	if err := kernelops.ApplyVectorUnary[T](container.VectorOf[T](srcFam), container.VectorOf[T](dstFam), op, acc, mask); err != nil {
		return errtax.Wrap("graph.ApplyVertexVector", err)
	}
	return nil
}

// ApplyVertexVectorBinaryScalar applies op against rhs from srcTypeIdx's
// type-T container into dstTypeIdx's, with optional accumulator and mask.
func ApplyVertexVectorBinaryScalar[T scalar.Scalar](g *Graph, srcTypeIdx, dstTypeIdx int, op kernel.BinaryOperator[T], rhs T, acc kernel.AccumulatorBinaryOperator[T], mask *kernel.VectorMask) error {
	srcFam, err := g.vertices.VectorFamilyForType(srcTypeIdx)
	if err != nil {
		return err
	}
	dstFam, err := g.vertices.VectorFamilyForType(dstTypeIdx)
	if err != nil {
		return err
	}
	if mask == nil {
		mask, err = kernel.FullVectorMask(g.ctx, g.VertexCapacity())
		if err != nil {
			return errtax.Wrap("graph.ApplyVertexVectorBinaryScalar", err)
		}
	}
	if err := kernelops.ApplyVectorBinaryScalar[T](container.VectorOf[T](srcFam), container.VectorOf[T](dstFam), op, rhs, acc, mask); err != nil {
		return errtax.Wrap("graph.ApplyVertexVectorBinaryScalar", err)
	}
	return nil
}

// ApplyAdjacencyMatrix is ApplyVertexVector's matrix analogue, operating on
// two edge-types' AdjacencyMatrix families.
func ApplyAdjacencyMatrix[T scalar.Scalar](g *Graph, srcTypeIdx, dstTypeIdx int, op kernel.UnaryOperator[T], acc kernel.AccumulatorBinaryOperator[T], mask *kernel.MatrixMask) error {
	srcFam, err := g.edges.MatrixFamilyForType(srcTypeIdx)
	if err != nil {
		return err
	}
	dstFam, err := g.edges.MatrixFamilyForType(dstTypeIdx)
	if err != nil {
		return err
	}
	if mask == nil {
		mask = g.edges.FullMask()
	}
	if err := kernelops.ApplyMatrixUnary[T](container.MatrixOf[T](srcFam), container.MatrixOf[T](dstFam), op, acc, mask); err != nil {
		return errtax.Wrap("graph.ApplyAdjacencyMatrix", err)
	}
	return nil
}

// ElementWiseAddVertexVectors evaluates monoid over the type-T containers
// of aTypeIdx and bTypeIdx's families, writing into dstTypeIdx's. Scenario:
// two vertex-types' VertexVectors over the shared vertex keys, added under a caller's
// chosen monoid (e.g. PlusMonoid), with an optional mask restricting which
// indices get written.
func ElementWiseAddVertexVectors[T scalar.Scalar](g *Graph, aTypeIdx, bTypeIdx, dstTypeIdx int, monoid kernel.Monoid[T], mask *kernel.VectorMask) error {
	aFam, err := g.vertices.VectorFamilyForType(aTypeIdx)
	if err != nil {
		return err
	}
	bFam, err := g.vertices.VectorFamilyForType(bTypeIdx)
	if err != nil {
		return err
	}
	dstFam, err := g.vertices.VectorFamilyForType(dstTypeIdx)
	if err != nil {
		return err
	}
	if mask == nil {
		mask, err = kernel.FullVectorMask(g.ctx, g.VertexCapacity())
		if err != nil {
			return errtax.Wrap("graph.ElementWiseAddVertexVectors", err)
		}
	}
	if err := kernelops.ElementWiseAddVector[T](container.VectorOf[T](aFam), container.VectorOf[T](bFam), container.VectorOf[T](dstFam), monoid, mask); err != nil {
		return errtax.Wrap("graph.ElementWiseAddVertexVectors", err)
	}
	return nil
}

// ElementWiseMultiplyVertexVectors is ElementWiseAddVertexVectors using a
// plain BinaryOperator (intersection semantics) instead of a Monoid.
func ElementWiseMultiplyVertexVectors[T scalar.Scalar](g *Graph, aTypeIdx, bTypeIdx, dstTypeIdx int, op kernel.BinaryOperator[T], mask *kernel.VectorMask) error {
	aFam, err := g.vertices.VectorFamilyForType(aTypeIdx)
	if err != nil {
		return err
	}
	bFam, err := g.vertices.VectorFamilyForType(bTypeIdx)
	if err != nil {
		return err
	}
	dstFam, err := g.vertices.VectorFamilyForType(dstTypeIdx)
	if err != nil {
		return err
	}
	if mask == nil {
		mask, err = kernel.FullVectorMask(g.ctx, g.VertexCapacity())
		if err != nil {
			return errtax.Wrap("graph.ElementWiseMultiplyVertexVectors", err)
		}
	}
	if err := kernelops.ElementWiseMultiplyVector[T](container.VectorOf[T](aFam), container.VectorOf[T](bFam), container.VectorOf[T](dstFam), op, mask); err != nil {
		return errtax.Wrap("graph.ElementWiseMultiplyVertexVectors", err)
	}
	return nil
}

// ElementWiseAddAdjacencyMatrices is ElementWiseAddVertexVectors' matrix
// analogue over two edge-types' families.
func ElementWiseAddAdjacencyMatrices[T scalar.Scalar](g *Graph, aTypeIdx, bTypeIdx, dstTypeIdx int, monoid kernel.Monoid[T], mask *kernel.MatrixMask) error {
	aFam, err := g.edges.MatrixFamilyForType(aTypeIdx)
	if err != nil {
		return err
	}
	bFam, err := g.edges.MatrixFamilyForType(bTypeIdx)
	if err != nil {
		return err
	}
	dstFam, err := g.edges.MatrixFamilyForType(dstTypeIdx)
	if err != nil {
		return err
	}
	if mask == nil {
		mask = g.edges.FullMask()
	}
	if err := kernelops.ElementWiseAddMatrix[T](container.MatrixOf[T](aFam), container.MatrixOf[T](bFam), container.MatrixOf[T](dstFam), monoid, mask); err != nil {
		return errtax.Wrap("graph.ElementWiseAddAdjacencyMatrices", err)
	}
	return nil
}

// ElementWiseMultiplyAdjacencyMatrices is ElementWiseMultiplyVertexVectors'
// matrix analogue.
func ElementWiseMultiplyAdjacencyMatrices[T scalar.Scalar](g *Graph, aTypeIdx, bTypeIdx, dstTypeIdx int, op kernel.BinaryOperator[T], mask *kernel.MatrixMask) error {
	aFam, err := g.edges.MatrixFamilyForType(aTypeIdx)
	if err != nil {
		return err
	}
	bFam, err := g.edges.MatrixFamilyForType(bTypeIdx)
	if err != nil {
		return err
	}
	dstFam, err := g.edges.MatrixFamilyForType(dstTypeIdx)
	if err != nil {
		return err
	}
	if mask == nil {
		mask = g.edges.FullMask()
	}
	if err := kernelops.ElementWiseMultiplyMatrix[T](container.MatrixOf[T](aFam), container.MatrixOf[T](bFam), container.MatrixOf[T](dstFam), op, mask); err != nil {
		return errtax.Wrap("graph.ElementWiseMultiplyAdjacencyMatrices", err)
	}
	return nil
}

// SelectVertexVector writes srcTypeIdx's type-T container into dstTypeIdx's,
// keeping only elements where op(row, col, val, thunk) holds.
func SelectVertexVector[T scalar.Scalar](g *Graph, srcTypeIdx, dstTypeIdx int, op kernel.IndexUnaryOperator[T], thunk T, mask *kernel.VectorMask) error {
	srcFam, err := g.vertices.VectorFamilyForType(srcTypeIdx)
	if err != nil {
		return err
	}
	dstFam, err := g.vertices.VectorFamilyForType(dstTypeIdx)
	if err != nil {
		return err
	}
	if mask == nil {
		mask, err = kernel.FullVectorMask(g.ctx, g.VertexCapacity())
		if err != nil {
			return errtax.Wrap("graph.SelectVertexVector", err)
		}
	}
	if err := kernelops.SelectVector[T](container.VectorOf[T](srcFam), container.VectorOf[T](dstFam), op, thunk, mask); err != nil {
		return errtax.Wrap("graph.SelectVertexVector", err)
	}
	return nil
}

// SelectAdjacencyMatrix is SelectVertexVector's matrix analogue, useful for
// e.g. OffDiagonal selection to drop self-loops from an adjacency matrix.
func SelectAdjacencyMatrix[T scalar.Scalar](g *Graph, srcTypeIdx, dstTypeIdx int, op kernel.IndexUnaryOperator[T], thunk T, mask *kernel.MatrixMask) error {
	srcFam, err := g.edges.MatrixFamilyForType(srcTypeIdx)
	if err != nil {
		return err
	}
	dstFam, err := g.edges.MatrixFamilyForType(dstTypeIdx)
	if err != nil {
		return err
	}
	if mask == nil {
		mask = g.edges.FullMask()
	}
	if err := kernelops.SelectMatrix[T](container.MatrixOf[T](srcFam), container.MatrixOf[T](dstFam), op, thunk, mask); err != nil {
		return errtax.Wrap("graph.SelectAdjacencyMatrix", err)
	}
	return nil
}

// MatrixVectorMultiply evaluates semiring over matTypeIdx's AdjacencyMatrix
// and vecTypeIdx's VertexVector, writing into dstTypeIdx's VertexVector.
func MatrixVectorMultiply[T scalar.Scalar](g *Graph, matTypeIdx, vecTypeIdx, dstTypeIdx int, semiring kernel.Semiring[T], mask *kernel.VectorMask) error {
	matFam, err := g.edges.MatrixFamilyForType(matTypeIdx)
	if err != nil {
		return err
	}
	vecFam, err := g.vertices.VectorFamilyForType(vecTypeIdx)
	if err != nil {
		return err
	}
	dstFam, err := g.vertices.VectorFamilyForType(dstTypeIdx)
	if err != nil {
		return err
	}
	if mask == nil {
		mask, err = kernel.FullVectorMask(g.ctx, g.VertexCapacity())
		if err != nil {
			return errtax.Wrap("graph.MatrixVectorMultiply", err)
		}
	}
	if err := kernelops.MatrixVectorMultiply[T](container.MatrixOf[T](matFam), container.VectorOf[T](vecFam), container.VectorOf[T](dstFam), semiring, mask); err != nil {
		return errtax.Wrap("graph.MatrixVectorMultiply", err)
	}
	return nil
}

// VectorMatrixMultiply evaluates semiring over vecTypeIdx's VertexVector
// and matTypeIdx's AdjacencyMatrix, writing into dstTypeIdx's VertexVector.
func VectorMatrixMultiply[T scalar.Scalar](g *Graph, vecTypeIdx, matTypeIdx, dstTypeIdx int, semiring kernel.Semiring[T], mask *kernel.VectorMask) error {
	vecFam, err := g.vertices.VectorFamilyForType(vecTypeIdx)
	if err != nil {
		return err
	}
	matFam, err := g.edges.MatrixFamilyForType(matTypeIdx)
	if err != nil {
		return err
	}
	dstFam, err := g.vertices.VectorFamilyForType(dstTypeIdx)
	if err != nil {
		return err
	}
	if mask == nil {
		mask, err = kernel.FullVectorMask(g.ctx, g.VertexCapacity())
		if err != nil {
			return errtax.Wrap("graph.VectorMatrixMultiply", err)
		}
	}
	if err := kernelops.VectorMatrixMultiply[T](container.VectorOf[T](vecFam), container.MatrixOf[T](matFam), container.VectorOf[T](dstFam), semiring, mask); err != nil {
		return errtax.Wrap("graph.VectorMatrixMultiply", err)
	}
	return nil
}

// MatrixMatrixMultiply evaluates semiring over aTypeIdx's and bTypeIdx's
// AdjacencyMatrix families, writing into dstTypeIdx's — e.g. squaring an
// adjacency matrix under the (OR, AND) semiring to compute two-hop
// reachability.
func MatrixMatrixMultiply[T scalar.Scalar](g *Graph, aTypeIdx, bTypeIdx, dstTypeIdx int, semiring kernel.Semiring[T], mask *kernel.MatrixMask) error {
	aFam, err := g.edges.MatrixFamilyForType(aTypeIdx)
	if err != nil {
		return err
	}
	bFam, err := g.edges.MatrixFamilyForType(bTypeIdx)
	if err != nil {
		return err
	}
	dstFam, err := g.edges.MatrixFamilyForType(dstTypeIdx)
	if err != nil {
		return err
	}
	if mask == nil {
		mask = g.edges.FullMask()
	}
	if err := kernelops.MatrixMatrixMultiply[T](container.MatrixOf[T](aFam), container.MatrixOf[T](bFam), container.MatrixOf[T](dstFam), semiring, mask); err != nil {
		return errtax.Wrap("graph.MatrixMatrixMultiply", err)
	}
	return nil
}
