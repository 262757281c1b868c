// SPDX-License-Identifier: MIT

// Package kernel is a self-contained sparse-linear-algebra engine: creation
// of a shared context; sparse vectors/matrices parameterized by scalar
// type; set/get/drop/resize; binary operators, monoids, semirings,
// index-unary operators; apply, element-wise add/multiply, select;
// element-index selectors; mask types.
//
// Everything above this package only talks to the small surface declared
// here, so a future binding onto an external GraphBLAS-style engine would
// only need to replace this package. See
// _examples/original_source/src/graph/graph/graph.rs for the shape this
// mirrors (graphblas_sparse_linear_algebra::context::Context, held as a
// single shared, immutable-after-init handle).
package kernel

// Context is the shared, immutable-after-construction handle every sparse
// container and operator call in a Graph is evaluated against. It is shared
// across every container belonging to one Graph and never mutated after
// construction.
//
// This kernel has no actual resource to hold (no GPU context, no worker
// pool) — Context exists so the rest of the substrate has a single, stable
// place to plumb one through, matching the shape of the engine it stands
// in for.
type Context struct {
	// nonBlocking mirrors graphblas_sparse_linear_algebra's Mode: reserved
	// for a future binding where it would select synchronous vs. deferred
	// kernel execution. This kernel always executes synchronously.
	nonBlocking bool
}

// NewContext constructs a fresh kernel Context.
func NewContext() *Context {
	return &Context{nonBlocking: true}
}
