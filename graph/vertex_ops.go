// SPDX-License-Identifier: MIT
package graph

import (
	"github.com/katalvlaran/graphalg/container"
	"github.com/katalvlaran/graphalg/errtax"
	"github.com/katalvlaran/graphalg/indexer"
	"github.com/katalvlaran/graphalg/scalar"
	"github.com/katalvlaran/graphalg/vertexstore"
)

// AddNewVertexByKey assigns or reuses vertexKey, propagating any forced
// capacity growth to every AdjacencyMatrix before returning.
func AddNewVertexByKey[T scalar.Scalar](g *Graph, vertexTypeKey, vertexKey string, value T) (indexer.AssignedIndex, error) {
	assigned, err := vertexstore.AddNewKeyDefinedVertex[T](g.vertices, vertexTypeKey, vertexKey, value)
	if err != nil {
		return indexer.AssignedIndex{}, err
	}
	if err := g.propagateVertexGrowth(assigned.NewCapacity); err != nil {
		return indexer.AssignedIndex{}, err
	}
	return assigned, nil
}

// AddNewVertexByIndex writes value at the already-valid vertexIdx in
// vertexTypeIdx's family. Indices are validated here (the by_index tier);
// no capacity growth is possible since vertexIdx must already be bound.
func AddNewVertexByIndex[T scalar.Scalar](g *Graph, vertexTypeIdx, vertexIdx int, value T) error {
	if !g.vertices.IsValidVertexIndex(vertexIdx) {
		return errtax.New("graph.AddNewVertexByIndex", errtax.ErrVertexMustExist).WithIndex(vertexIdx)
	}
	return AddNewVertexByUncheckedIndex[T](g, vertexTypeIdx, vertexIdx, value)
}

// AddNewVertexByUncheckedIndex skips the vertex-index validity check,
// for inner-loop call sites that already guarantee vertexIdx is live.
func AddNewVertexByUncheckedIndex[T scalar.Scalar](g *Graph, vertexTypeIdx, vertexIdx int, value T) error {
	return vertexstore.AddNewIndexDefinedVertex[T](g.vertices, vertexTypeIdx, vertexIdx, value)
}

// AddOrUpdateVertexByKey assigns or reuses vertexKey and writes value
// unconditionally, propagating any forced capacity growth.
func AddOrUpdateVertexByKey[T scalar.Scalar](g *Graph, vertexTypeKey, vertexKey string, value T) (*indexer.AssignedIndex, error) {
	assigned, err := vertexstore.AddOrUpdateVertexByKey[T](g.vertices, vertexTypeKey, vertexKey, value)
	if err != nil {
		return nil, err
	}
	if assigned != nil {
		if err := g.propagateVertexGrowth(assigned.NewCapacity); err != nil {
			return nil, err
		}
	}
	return assigned, nil
}

// AddOrUpdateVertexByIndex validates vertexIdx then writes value
// unconditionally.
func AddOrUpdateVertexByIndex[T scalar.Scalar](g *Graph, vertexTypeIdx, vertexIdx int, value T) error {
	if !g.vertices.IsValidVertexIndex(vertexIdx) {
		return errtax.New("graph.AddOrUpdateVertexByIndex", errtax.ErrVertexMustExist).WithIndex(vertexIdx)
	}
	return AddOrUpdateVertexByUncheckedIndex[T](g, vertexTypeIdx, vertexIdx, value)
}

// AddOrUpdateVertexByUncheckedIndex writes value at vertexIdx without
// validating it first.
func AddOrUpdateVertexByUncheckedIndex[T scalar.Scalar](g *Graph, vertexTypeIdx, vertexIdx int, value T) error {
	return vertexstore.AddOrUpdateVertexByIndex[T](g.vertices, vertexTypeIdx, vertexIdx, value)
}

// VertexValueByKey resolves vertexKey then reads via VertexValueByIndex.
func VertexValueByKey[T scalar.Scalar](g *Graph, vertexTypeIdx int, vertexKey string) (T, bool, error) {
	var zero T
	idx, ok := g.vertices.VertexIndexForKey(vertexKey)
	if !ok {
		return zero, false, errtax.New("graph.VertexValueByKey", errtax.ErrVertexKeyNotFound).WithKey(vertexKey)
	}
	return VertexValueByIndex[T](g, vertexTypeIdx, idx)
}

// VertexValueByIndex validates vertexIdx then reads the type-T value.
func VertexValueByIndex[T scalar.Scalar](g *Graph, vertexTypeIdx, vertexIdx int) (T, bool, error) {
	var zero T
	if !g.vertices.IsValidVertexIndex(vertexIdx) {
		return zero, false, errtax.New("graph.VertexValueByIndex", errtax.ErrVertexMustExist).WithIndex(vertexIdx)
	}
	return VertexValueByUncheckedIndex[T](g, vertexTypeIdx, vertexIdx)
}

// VertexValueByUncheckedIndex reads the type-T value at vertexIdx without
// validating it against the element Indexer first.
func VertexValueByUncheckedIndex[T scalar.Scalar](g *Graph, vertexTypeIdx, vertexIdx int) (T, bool, error) {
	return vertexstore.VertexValueByIndex[T](g.vertices, vertexTypeIdx, vertexIdx)
}

// TryVertexValueByKey is VertexValueByKey but fails errtax.ErrVertexMustExist
// instead of reporting present=false.
func TryVertexValueByKey[T scalar.Scalar](g *Graph, vertexTypeIdx int, vertexKey string) (T, error) {
	val, ok, err := VertexValueByKey[T](g, vertexTypeIdx, vertexKey)
	if err != nil {
		return val, err
	}
	if !ok {
		var zero T
		return zero, errtax.New("graph.TryVertexValueByKey", errtax.ErrVertexMustExist).WithKey(vertexKey)
	}
	return val, nil
}

// VertexValueOrDefaultByKey resolves vertexKey then returns the type-T
// value, or T's zero value if absent.
func VertexValueOrDefaultByKey[T scalar.Scalar](g *Graph, vertexTypeIdx int, vertexKey string) (T, error) {
	val, _, err := VertexValueByKey[T](g, vertexTypeIdx, vertexKey)
	return val, err
}

// VertexValueOrDefaultByIndex returns the type-T value at vertexIdx, or
// T's zero value if absent.
func VertexValueOrDefaultByIndex[T scalar.Scalar](g *Graph, vertexTypeIdx, vertexIdx int) (T, error) {
	return vertexstore.VertexValueOrDefaultByIndex[T](g.vertices, vertexTypeIdx, vertexIdx)
}

// VertexVectorFamily exposes the raw VectorFamily behind vertexTypeIdx, for
// the apply/element-wise/select operator surface.
func (g *Graph) VertexVectorFamily(vertexTypeIdx int) (*container.VectorFamily, error) {
	return g.vertices.VectorFamilyForType(vertexTypeIdx)
}
