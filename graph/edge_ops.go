// SPDX-License-Identifier: MIT
package graph

import (
	"github.com/katalvlaran/graphalg/container"
	"github.com/katalvlaran/graphalg/edgestore"
	"github.com/katalvlaran/graphalg/errtax"
	"github.com/katalvlaran/graphalg/scalar"
)

// AddNewEdgeByKey resolves edgeTypeKey, tailKey, and headKey then delegates
// to AddNewEdgeByIndex.
func AddNewEdgeByKey[T scalar.Scalar](g *Graph, edgeTypeKey, tailKey, headKey string, weight T) error {
	edgeTypeIdx, ok := g.edges.EdgeTypeIndexForKey(edgeTypeKey)
	if !ok {
		return errtax.New("graph.AddNewEdgeByKey", errtax.ErrEdgeTypeKeyNotFound).WithKey(edgeTypeKey)
	}
	tail, ok := g.vertices.VertexIndexForKey(tailKey)
	if !ok {
		return errtax.New("graph.AddNewEdgeByKey", errtax.ErrVertexKeyNotFound).WithKey(tailKey)
	}
	head, ok := g.vertices.VertexIndexForKey(headKey)
	if !ok {
		return errtax.New("graph.AddNewEdgeByKey", errtax.ErrVertexKeyNotFound).WithKey(headKey)
	}
	return AddNewEdgeByIndex[T](g, edgeTypeIdx, tail, head, weight)
}

// AddNewEdgeByIndex validates both endpoints then delegates to
// AddNewEdgeByUncheckedIndex.
func AddNewEdgeByIndex[T scalar.Scalar](g *Graph, edgeTypeIdx, tail, head int, weight T) error {
	if !g.vertices.IsValidVertexIndex(tail) || !g.vertices.IsValidVertexIndex(head) {
		return errtax.New("graph.AddNewEdgeByIndex", errtax.ErrVertexMustExist).WithIndex(tail)
	}
	return AddNewEdgeByUncheckedIndex[T](g, edgeTypeIdx, tail, head, weight)
}

// AddNewEdgeByUncheckedIndex is the inner-loop tier: it still enforces
// EdgeAlreadyExists (a correctness invariant, not an index-validity check)
// but trusts the caller that tail and head are live vertex indices.
func AddNewEdgeByUncheckedIndex[T scalar.Scalar](g *Graph, edgeTypeIdx, tail, head int, weight T) error {
	fam, err := g.edges.MatrixFamilyForType(edgeTypeIdx)
	if err != nil {
		return err
	}
	occupied, err := fam.IsElementSetAny(tail, head)
	if err != nil {
		return errtax.Wrap("graph.AddNewEdgeByUncheckedIndex", err)
	}
	if occupied {
		return errtax.New("graph.AddNewEdgeByUncheckedIndex", errtax.ErrEdgeAlreadyExists).WithIndex(tail)
	}
	if err := container.MatrixOf[T](fam).SetElement(tail, head, weight); err != nil {
		return errtax.Wrap("graph.AddNewEdgeByUncheckedIndex", err)
	}
	return nil
}

// AddOrReplaceEdgeByKey resolves edgeTypeKey, tailKey, and headKey then
// delegates to AddOrReplaceEdgeByIndex.
func AddOrReplaceEdgeByKey[T scalar.Scalar](g *Graph, edgeTypeKey, tailKey, headKey string, weight T) error {
	edgeTypeIdx, ok := g.edges.EdgeTypeIndexForKey(edgeTypeKey)
	if !ok {
		return errtax.New("graph.AddOrReplaceEdgeByKey", errtax.ErrEdgeTypeKeyNotFound).WithKey(edgeTypeKey)
	}
	tail, ok := g.vertices.VertexIndexForKey(tailKey)
	if !ok {
		return errtax.New("graph.AddOrReplaceEdgeByKey", errtax.ErrVertexKeyNotFound).WithKey(tailKey)
	}
	head, ok := g.vertices.VertexIndexForKey(headKey)
	if !ok {
		return errtax.New("graph.AddOrReplaceEdgeByKey", errtax.ErrVertexKeyNotFound).WithKey(headKey)
	}
	return AddOrReplaceEdgeByIndex[T](g, edgeTypeIdx, tail, head, weight)
}

// AddOrReplaceEdgeByIndex validates both endpoints then overwrites the
// adjacency cell unconditionally. Never implicitly deletes any other edge
// incident to tail or head: that only happens via explicit vertex delete.
func AddOrReplaceEdgeByIndex[T scalar.Scalar](g *Graph, edgeTypeIdx, tail, head int, weight T) error {
	return edgestore.AddOrReplaceEdge[T](g.edges, g.vertices, edgeTypeIdx, tail, head, weight)
}

// EdgeWeightByKey resolves edgeTypeKey, tailKey, and headKey then delegates
// to EdgeWeightByIndex.
func EdgeWeightByKey[T scalar.Scalar](g *Graph, edgeTypeKey, tailKey, headKey string) (T, bool, error) {
	var zero T
	edgeTypeIdx, ok := g.edges.EdgeTypeIndexForKey(edgeTypeKey)
	if !ok {
		return zero, false, errtax.New("graph.EdgeWeightByKey", errtax.ErrEdgeTypeKeyNotFound).WithKey(edgeTypeKey)
	}
	tail, ok := g.vertices.VertexIndexForKey(tailKey)
	if !ok {
		return zero, false, errtax.New("graph.EdgeWeightByKey", errtax.ErrVertexKeyNotFound).WithKey(tailKey)
	}
	head, ok := g.vertices.VertexIndexForKey(headKey)
	if !ok {
		return zero, false, errtax.New("graph.EdgeWeightByKey", errtax.ErrVertexKeyNotFound).WithKey(headKey)
	}
	return edgestore.EdgeWeightByIndex[T](g.edges, edgeTypeIdx, tail, head)
}

// EdgeWeightByIndex returns the type-T weight at (tail, head) in
// edgeTypeIdx's family.
func EdgeWeightByIndex[T scalar.Scalar](g *Graph, edgeTypeIdx, tail, head int) (T, bool, error) {
	return edgestore.EdgeWeightByIndex[T](g.edges, edgeTypeIdx, tail, head)
}

// EdgeWeightOrDefaultByIndex returns the type-T weight at (tail, head), or
// T's zero value if absent.
func EdgeWeightOrDefaultByIndex[T scalar.Scalar](g *Graph, edgeTypeIdx, tail, head int) (T, error) {
	return edgestore.EdgeWeightOrDefaultByIndex[T](g.edges, edgeTypeIdx, tail, head)
}

// DeleteEdgeByIndex drops the edge at (tail, head) from edgeTypeIdx's
// family.
func (g *Graph) DeleteEdgeByIndex(edgeTypeIdx, tail, head int) error {
	return g.edges.DeleteEdgeByIndex(edgeTypeIdx, tail, head)
}

// DeleteEdgeByKey resolves edgeTypeKey, tailKey, and headKey then delegates
// to DeleteEdgeByIndex.
func (g *Graph) DeleteEdgeByKey(edgeTypeKey, tailKey, headKey string) error {
	edgeTypeIdx, ok := g.edges.EdgeTypeIndexForKey(edgeTypeKey)
	if !ok {
		return errtax.New("graph.DeleteEdgeByKey", errtax.ErrEdgeTypeKeyNotFound).WithKey(edgeTypeKey)
	}
	tail, ok := g.vertices.VertexIndexForKey(tailKey)
	if !ok {
		return errtax.New("graph.DeleteEdgeByKey", errtax.ErrVertexKeyNotFound).WithKey(tailKey)
	}
	head, ok := g.vertices.VertexIndexForKey(headKey)
	if !ok {
		return errtax.New("graph.DeleteEdgeByKey", errtax.ErrVertexKeyNotFound).WithKey(headKey)
	}
	return g.DeleteEdgeByIndex(edgeTypeIdx, tail, head)
}

// AdjacencyMatrixFamily exposes the raw MatrixFamily behind edgeTypeIdx,
// for the apply/element-wise/select/multiply operator surface.
func (g *Graph) AdjacencyMatrixFamily(edgeTypeIdx int) (*container.MatrixFamily, error) {
	return g.edges.MatrixFamilyForType(edgeTypeIdx)
}
