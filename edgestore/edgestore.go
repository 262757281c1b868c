// SPDX-License-Identifier: MIT

// Package edgestore owns the edge-type Indexer and one MatrixFamily
// ("AdjacencyMatrix") per edge-type, symmetric to vertexstore on the
// edge-type axis.
package edgestore

import (
	"github.com/katalvlaran/graphalg/container"
	"github.com/katalvlaran/graphalg/errtax"
	"github.com/katalvlaran/graphalg/indexer"
	"github.com/katalvlaran/graphalg/kernel"
	"github.com/katalvlaran/graphalg/scalar"
)

// EdgeStore owns an edge-type Indexer and a MatrixFamily per edge-type,
// each kept at shape (vertexCapacity, vertexCapacity), plus the
// select-entire mask unmasked matrix operators default to.
type EdgeStore struct {
	ctx *kernel.Context

	edgeTypeIndexer *indexer.Indexer
	vertexCapacity  int

	adjacencyMatrices map[int]*container.MatrixFamily // keyed by edge-type index
	fullMask          *kernel.MatrixMask
}

// New constructs an empty EdgeStore sized for vertexCapacity vertices and
// preallocated for initialEdgeTypeCapacity edge-types, using
// indexer.DefaultGrowthFactor.
func New(ctx *kernel.Context, vertexCapacity, initialEdgeTypeCapacity int) (*EdgeStore, error) {
	return NewWithGrowthFactor(ctx, vertexCapacity, initialEdgeTypeCapacity, indexer.DefaultGrowthFactor)
}

// NewWithGrowthFactor is New with an explicit growth factor applied to the
// edge-type Indexer.
func NewWithGrowthFactor(ctx *kernel.Context, vertexCapacity, initialEdgeTypeCapacity int, growthFactor float64) (*EdgeStore, error) {
	mask, err := kernel.FullMatrixMask(ctx, vertexCapacity, vertexCapacity)
	if err != nil {
		return nil, err
	}
	return &EdgeStore{
		ctx:               ctx,
		edgeTypeIndexer:   indexer.NewWithCapacityAndGrowthFactor(initialEdgeTypeCapacity, growthFactor),
		vertexCapacity:    vertexCapacity,
		adjacencyMatrices: make(map[int]*container.MatrixFamily, initialEdgeTypeCapacity),
		fullMask:          mask,
	}, nil
}

// VertexCapacity returns the shared vertex-axis shape of every adjacency
// matrix.
func (es *EdgeStore) VertexCapacity() int {
	return es.vertexCapacity
}

// FullMask returns the select-entire-adjacency-matrix mask, the default
// for unmasked matrix operators.
func (es *EdgeStore) FullMask() *kernel.MatrixMask {
	return es.fullMask
}

// EdgeTypeIndexForKey resolves an edge-type key to its index.
func (es *EdgeStore) EdgeTypeIndexForKey(key string) (int, bool) {
	return es.edgeTypeIndexer.IndexForKey(key)
}

// AddNewEdgeType registers edgeTypeKey and allocates its MatrixFamily at
// the current vertex capacity.
func (es *EdgeStore) AddNewEdgeType(edgeTypeKey string) (indexer.AssignedIndex, error) {
	assigned, err := es.edgeTypeIndexer.AddNewKey(edgeTypeKey)
	if err != nil {
		return indexer.AssignedIndex{}, errtax.New("EdgeStore.AddNewEdgeType", errtax.ErrKeyAlreadyExists).WithKey(edgeTypeKey)
	}
	fam, ferr := container.NewMatrixFamily(es.ctx, es.vertexCapacity, es.vertexCapacity)
	if ferr != nil {
		es.edgeTypeIndexer.ReleaseByKey(edgeTypeKey)
		return indexer.AssignedIndex{}, errtax.Wrap("EdgeStore.AddNewEdgeType", ferr)
	}
	es.adjacencyMatrices[assigned.Index] = fam
	return assigned, nil
}

// DropEdgeType releases edgeTypeKey and discards its MatrixFamily
// entirely, freeing every weight stored under that type in one step. Not
// named in the original contract but a natural counterpart to
// AddNewEdgeType once types are allowed to be added dynamically.
func (es *EdgeStore) DropEdgeType(edgeTypeKey string) error {
	idx, ok := es.edgeTypeIndexer.IndexForKey(edgeTypeKey)
	if !ok {
		return errtax.New("EdgeStore.DropEdgeType", errtax.ErrEdgeTypeKeyNotFound).WithKey(edgeTypeKey)
	}
	delete(es.adjacencyMatrices, idx)
	es.edgeTypeIndexer.ReleaseByKey(edgeTypeKey)
	return nil
}

func (es *EdgeStore) edgeTypeFamily(edgeTypeIdx int) (*container.MatrixFamily, error) {
	fam, ok := es.adjacencyMatrices[edgeTypeIdx]
	if !ok {
		return nil, errtax.New("EdgeStore", errtax.ErrEdgeTypeMustExist).WithIndex(edgeTypeIdx)
	}
	return fam, nil
}

// MatrixFamilyForType exposes the raw MatrixFamily for edgeTypeIdx, for
// graph/'s operator surface.
func (es *EdgeStore) MatrixFamilyForType(edgeTypeIdx int) (*container.MatrixFamily, error) {
	return es.edgeTypeFamily(edgeTypeIdx)
}

// vertexValidator is satisfied by vertexstore.VertexStore; kept narrow so
// edgestore never imports vertexstore, avoiding an import cycle at the
// Graph composition boundary.
type vertexValidator interface {
	IsValidVertexIndex(idx int) bool
}

// AddNewEdge writes weight at (tail, head) in edgeTypeIdx's family,
// failing errtax.ErrVertexMustExist if either endpoint is not a valid
// vertex index, and errtax.ErrEdgeAlreadyExists if the cell already carries
// a value of any type.
func AddNewEdge[T scalar.Scalar](es *EdgeStore, vertices vertexValidator, edgeTypeIdx, tail, head int, weight T) error {
	fam, err := es.edgeTypeFamily(edgeTypeIdx)
	if err != nil {
		return err
	}
	if !vertices.IsValidVertexIndex(tail) || !vertices.IsValidVertexIndex(head) {
		return errtax.New("EdgeStore.AddNewEdge", errtax.ErrVertexMustExist).WithIndex(tail)
	}
	occupied, err := fam.IsElementSetAny(tail, head)
	if err != nil {
		return errtax.Wrap("EdgeStore.AddNewEdge", err)
	}
	if occupied {
		return errtax.New("EdgeStore.AddNewEdge", errtax.ErrEdgeAlreadyExists).WithIndex(tail)
	}
	if err := container.MatrixOf[T](fam).SetElement(tail, head, weight); err != nil {
		return errtax.Wrap("EdgeStore.AddNewEdge", err)
	}
	return nil
}

// AddOrReplaceEdge writes weight at (tail, head) unconditionally,
// overwriting any prior value. Still requires both endpoints be valid
// vertex indices. Never implicitly deletes other edges incident to tail or
// head: that only happens via explicit vertex deletion.
func AddOrReplaceEdge[T scalar.Scalar](es *EdgeStore, vertices vertexValidator, edgeTypeIdx, tail, head int, weight T) error {
	fam, err := es.edgeTypeFamily(edgeTypeIdx)
	if err != nil {
		return err
	}
	if !vertices.IsValidVertexIndex(tail) || !vertices.IsValidVertexIndex(head) {
		return errtax.New("EdgeStore.AddOrReplaceEdge", errtax.ErrVertexMustExist).WithIndex(tail)
	}
	if err := container.MatrixOf[T](fam).SetElement(tail, head, weight); err != nil {
		return errtax.Wrap("EdgeStore.AddOrReplaceEdge", err)
	}
	return nil
}

// EdgeWeightByIndex returns the type-T weight at (tail, head) in
// edgeTypeIdx's family and whether it is present.
func EdgeWeightByIndex[T scalar.Scalar](es *EdgeStore, edgeTypeIdx, tail, head int) (T, bool, error) {
	var zero T
	fam, err := es.edgeTypeFamily(edgeTypeIdx)
	if err != nil {
		return zero, false, err
	}
	val, ok, err := container.MatrixOf[T](fam).GetElementValue(tail, head)
	if err != nil {
		return zero, false, errtax.Wrap("EdgeStore.EdgeWeightByIndex", err)
	}
	return val, ok, nil
}

// EdgeWeightOrDefaultByIndex returns the type-T weight at (tail, head), or
// T's zero value if absent.
func EdgeWeightOrDefaultByIndex[T scalar.Scalar](es *EdgeStore, edgeTypeIdx, tail, head int) (T, error) {
	val, _, err := EdgeWeightByIndex[T](es, edgeTypeIdx, tail, head)
	return val, err
}

// DeleteEdgeByIndex drops the (tail, head) cell from every container in
// edgeTypeIdx's family, leaving every other edge in tail's row and head's
// column untouched. A no-op if no edge is present there.
func (es *EdgeStore) DeleteEdgeByIndex(edgeTypeIdx, tail, head int) error {
	fam, err := es.edgeTypeFamily(edgeTypeIdx)
	if err != nil {
		return err
	}
	if err := fam.ClearCellAll(tail, head); err != nil {
		return errtax.Wrap("EdgeStore.DeleteEdgeByIndex", err)
	}
	return nil
}

// ClearVertexFromAllAdjacency drops every cell in row vertexIdx and column
// vertexIdx, across every edge-type's family. Used by Graph's delete-vertex
// fan-out (no edge anywhere keeps the deleted vertex as tail
// or head).
func (es *EdgeStore) ClearVertexFromAllAdjacency(vertexIdx int) {
	for _, fam := range es.adjacencyMatrices {
		fam.ClearRowColAll(vertexIdx, vertexIdx)
	}
}

// ResizeAdjacencyMatrices grows every registered edge-type's family, and
// rebuilds the select-entire mask, to newVertexCapacity×newVertexCapacity.
// Called whenever the vertex element Indexer grows.
func (es *EdgeStore) ResizeAdjacencyMatrices(newVertexCapacity int) error {
	for typeIdx, fam := range es.adjacencyMatrices {
		if err := fam.Resize(newVertexCapacity, newVertexCapacity); err != nil {
			return errtax.New("EdgeStore.ResizeAdjacencyMatrices", errtax.ErrDimensionMismatch).WithIndex(typeIdx)
		}
	}
	mask, err := kernel.FullMatrixMask(es.ctx, newVertexCapacity, newVertexCapacity)
	if err != nil {
		return errtax.Wrap("EdgeStore.ResizeAdjacencyMatrices", err)
	}
	es.fullMask = mask
	es.vertexCapacity = newVertexCapacity
	return nil
}
