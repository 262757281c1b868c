// SPDX-License-Identifier: MIT
package kernel

import "errors"

// Sentinel errors for the kernel package. Do not %w these directly when
// crossing into errtax — errtax.Wrap is the one boundary that does that.
var (
	// ErrInvalidShape indicates a requested length/shape is negative.
	ErrInvalidShape = errors.New("kernel: invalid shape")

	// ErrOutOfRange indicates an element index is outside the container's shape.
	ErrOutOfRange = errors.New("kernel: index out of range")

	// ErrDimensionMismatch indicates two operands have incompatible shapes.
	ErrDimensionMismatch = errors.New("kernel: dimension mismatch")

	// ErrNilContext indicates a nil *Context was used to construct a container.
	ErrNilContext = errors.New("kernel: context is nil")
)
