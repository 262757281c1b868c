// Package graphalg is an in-memory, typed property graph engine whose
// storage and query model is expressed entirely in terms of sparse linear
// algebra.
//
// 🚀 What is graphalg?
//
//	A thread-safety-aware, low-dependency library that brings together:
//
//	  • Stable key↔index bookkeeping with slot reuse (indexer/)
//	  • One sparse container per numeric type, kept shape-coherent (container/)
//	  • Vertex- and edge-typed stores built on top of that family (vertexstore/, edgestore/)
//	  • A capacity-coupled Graph and a typed operator surface — add / read /
//	    delete / select / element-wise / semiring / apply — dispatched by
//	    key, by index, or by unchecked index (graph/)
//	  • A small reference sparse-linear-algebra kernel (kernel/, kernelops/)
//	    standing in for the GraphBLAS-style engine the substrate is written
//	    against
//
// Vertices and directed edges carry typed scalar weights; vertex sets and
// edge sets are sparse vectors and matrices over a fixed set of thirteen
// numeric value types (bool, i8..i64, u8..u64, f32, f64, isize, usize).
// Traversal, filtering, and transformation happen by invoking linear-algebra
// operators on those vectors and matrices, not by walking pointers.
//
// Under the hood, everything is organized under subpackages:
//
//	scalar/      — the thirteen-member ScalarType set and its Go constraint
//	kernel/      — sparse vector/matrix containers, operators, masks (the
//	               consumed "kernel library" of the design, reference impl)
//	kernelops/   — thin forwarders from graph-level requests into kernel/
//	errtax/      — tagged error categories with source attribution
//	indexer/     — stable bidirectional Key↔Index mapping with slot reuse
//	container/   — TypedContainerFamily: one sparse container per ScalarType
//	vertexstore/ — vertex-type indexer + element indexer + VertexVectors
//	edgestore/   — edge-type indexer + AdjacencyMatrices + full-selector mask
//	graph/       — Graph composition, capacity coupling, operator surface
//
// Persistence, cross-process sharing, distributed execution, and traversal
// algorithms (BFS/DFS/shortest-path/MST and friends) are deliberately out of
// scope. This is a storage and dispatch substrate, not a graph-algorithms
// library.
//
//	go get github.com/katalvlaran/graphalg
package graphalg
