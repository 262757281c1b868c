// SPDX-License-Identifier: MIT

// Package graph composes vertexstore.VertexStore and edgestore.EdgeStore
// behind one capacity-coupled handle, and exposes the typed operator
// surface (add/read/delete, select, element-wise, apply, semiring
// multiply) that dispatches by_key -> by_index -> by_unchecked_index.
package graph

import (
	"github.com/katalvlaran/graphalg/edgestore"
	"github.com/katalvlaran/graphalg/errtax"
	"github.com/katalvlaran/graphalg/indexer"
	"github.com/katalvlaran/graphalg/kernel"
	"github.com/katalvlaran/graphalg/vertexstore"
)

// Graph is a single capacity-coupled view over a VertexStore and an
// EdgeStore sharing one kernel Context. Any operation that grows the
// vertex element Indexer also grows every AdjacencyMatrix before
// returning, keeping both stores' shapes in lockstep.
type Graph struct {
	ctx      *kernel.Context
	vertices *vertexstore.VertexStore
	edges    *edgestore.EdgeStore
}

type config struct {
	growthFactor float64
}

// Option configures New.
type Option func(*config)

// WithGrowthFactor overrides indexer.DefaultGrowthFactor for every Indexer
// owned by this Graph (vertex-type, vertex-element, and edge-type).
func WithGrowthFactor(factor float64) Option {
	return func(c *config) { c.growthFactor = factor }
}

// New constructs an empty Graph preallocated for the given vertex,
// vertex-type, and edge-type capacities.
func New(initialVertexCapacity, initialVertexTypeCapacity, initialEdgeTypeCapacity int, opts ...Option) (*Graph, error) {
	cfg := config{growthFactor: indexer.DefaultGrowthFactor}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx := kernel.NewContext()
	vs := vertexstore.NewWithGrowthFactor(ctx, initialVertexCapacity, initialVertexTypeCapacity, cfg.growthFactor)
	es, err := edgestore.NewWithGrowthFactor(ctx, vs.VertexCapacity(), initialEdgeTypeCapacity, cfg.growthFactor)
	if err != nil {
		return nil, errtax.Wrap("graph.New", err)
	}
	return &Graph{ctx: ctx, vertices: vs, edges: es}, nil
}

// Context exposes the shared kernel Context, for callers building their own
// masks against this Graph's containers.
func (g *Graph) Context() *kernel.Context { return g.ctx }

// Vertices exposes the underlying VertexStore for callers (and generic
// helper functions in this package) that need direct container access.
func (g *Graph) Vertices() *vertexstore.VertexStore { return g.vertices }

// Edges exposes the underlying EdgeStore.
func (g *Graph) Edges() *edgestore.EdgeStore { return g.edges }

// VertexCapacity returns the shared vertex address-space size both stores
// are kept at.
func (g *Graph) VertexCapacity() int { return g.vertices.VertexCapacity() }

// IsValidVertexIndex reports whether idx names a live vertex slot.
func (g *Graph) IsValidVertexIndex(idx int) bool { return g.vertices.IsValidVertexIndex(idx) }

// VertexIndexForKey resolves a vertex key to its index.
func (g *Graph) VertexIndexForKey(key string) (int, bool) { return g.vertices.VertexIndexForKey(key) }

// VertexKeyForIndex resolves a vertex index back to its key.
func (g *Graph) VertexKeyForIndex(idx int) (string, bool) { return g.vertices.VertexKeyForIndex(idx) }

// VertexTypeIndexForKey resolves a vertex-type key to its index.
func (g *Graph) VertexTypeIndexForKey(key string) (int, bool) {
	return g.vertices.VertexTypeIndexForKey(key)
}

// EdgeTypeIndexForKey resolves an edge-type key to its index.
func (g *Graph) EdgeTypeIndexForKey(key string) (int, bool) {
	return g.edges.EdgeTypeIndexForKey(key)
}

// AddNewVertexType registers vertexTypeKey in the VertexStore.
func (g *Graph) AddNewVertexType(vertexTypeKey string) (indexer.AssignedIndex, error) {
	return g.vertices.AddNewVertexType(vertexTypeKey)
}

// AddNewEdgeType registers edgeTypeKey in the EdgeStore.
func (g *Graph) AddNewEdgeType(edgeTypeKey string) (indexer.AssignedIndex, error) {
	return g.edges.AddNewEdgeType(edgeTypeKey)
}

// propagateVertexGrowth resizes every AdjacencyMatrix to newCapacity
// whenever a vertex mutation grew the element Indexer. Called by every
// vertex-mutating wrapper below so the two stores' vertex-axis shapes never
// drift apart.
func (g *Graph) propagateVertexGrowth(newCapacity *int) error {
	if newCapacity == nil {
		return nil
	}
	if err := g.edges.ResizeAdjacencyMatrices(*newCapacity); err != nil {
		return errtax.Wrap("Graph.propagateVertexGrowth", err)
	}
	return nil
}

// DeleteVertexByIndex clears vertexIdx from every edge-type's
// AdjacencyMatrix and from every vertex-type's VertexVector, then releases
// the index, in that order: edge fan-out happens before the slot goes back
// onto the free-list, so neither store can see the index reused while the
// other is still cleaning it up.
func (g *Graph) DeleteVertexByIndex(vertexIdx int) error {
	if !g.vertices.IsValidVertexIndex(vertexIdx) {
		return errtax.New("Graph.DeleteVertexByIndex", errtax.ErrVertexMustExist).WithIndex(vertexIdx)
	}
	g.edges.ClearVertexFromAllAdjacency(vertexIdx)
	if err := g.vertices.ClearVertexAcrossTypes(vertexIdx); err != nil {
		return errtax.Wrap("Graph.DeleteVertexByIndex", err)
	}
	g.vertices.ReleaseVertexIndex(vertexIdx)
	return nil
}

// DeleteVertexByKey resolves vertexKey then delegates to
// DeleteVertexByIndex.
func (g *Graph) DeleteVertexByKey(vertexKey string) error {
	idx, ok := g.vertices.VertexIndexForKey(vertexKey)
	if !ok {
		return errtax.New("Graph.DeleteVertexByKey", errtax.ErrVertexKeyNotFound).WithKey(vertexKey)
	}
	return g.DeleteVertexByIndex(idx)
}
