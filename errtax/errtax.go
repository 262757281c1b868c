// Package errtax implements a three-way error taxonomy shared across
// indexer/, vertexstore/, edgestore/, and graph/: every public
// entry point returns errors built here, so that a caller can always
// distinguish user mistakes from logic-invariant violations from wrapped
// kernel failures with a single errors.Is/errors.As check.
//
// Every sentinel below is a plain errors.New value so errors.Is keeps
// working after wrapping, and Wrap attaches call-site context the same way
// a method-scoped errorf helper does elsewhere in this module.
package errtax

import (
	"errors"
	"fmt"
)

// Category classifies a SubstrateError into one of three families: user
// mistakes, invariant/logic violations, and system/kernel failures.
type Category uint8

const (
	// CategoryUser marks an error caused by caller input: an unknown key, a
	// duplicate key, etc. The caller can recover by fixing its input.
	CategoryUser Category = iota
	// CategoryLogic marks a violated invariant, a missing required entity,
	// or a dimension mismatch: the caller's request was structurally
	// inconsistent with the current graph state.
	CategoryLogic
	// CategorySystem marks a failure propagated from the kernel library,
	// wrapped with location context.
	CategorySystem
)

// String names the category for log lines and error messages.
func (c Category) String() string {
	switch c {
	case CategoryUser:
		return "user"
	case CategoryLogic:
		return "logic"
	case CategorySystem:
		return "system"
	default:
		return "unknown"
	}
}

// Sentinel errors. Each entry point returns one of these, optionally wrapped
// via Wrap to attach the offending key/index/value-type. Tests and callers
// match on these with errors.Is.
var (
	// User errors.
	ErrKeyAlreadyExists  = errors.New("errtax: key already exists")
	ErrKeyNotFound       = errors.New("errtax: key not found")
	ErrVertexKeyNotFound = errors.New("errtax: vertex key not found")
	ErrEdgeTypeKeyNotFound = errors.New("errtax: edge-type key not found")

	// Logic errors.
	ErrVertexMustExist    = errors.New("errtax: vertex must exist")
	ErrVertexAlreadyExists = errors.New("errtax: vertex already exists")
	ErrEdgeAlreadyExists  = errors.New("errtax: edge already exists")
	ErrEdgeMustExist      = errors.New("errtax: edge must exist")
	ErrEdgeTypeMustExist  = errors.New("errtax: edge type must exist")
	ErrVertexTypeMustExist = errors.New("errtax: vertex type must exist")
	ErrIndexOutOfBounds   = errors.New("errtax: index out of bounds")
	ErrDimensionMismatch  = errors.New("errtax: dimension mismatch")
	ErrOther              = errors.New("errtax: unexpected error")

	// System / kernel errors.
	ErrKernel = errors.New("errtax: kernel failure")
)

func categoryOf(sentinel error) Category {
	switch sentinel {
	case ErrKeyAlreadyExists, ErrKeyNotFound, ErrVertexKeyNotFound, ErrEdgeTypeKeyNotFound:
		return CategoryUser
	case ErrKernel:
		return CategorySystem
	default:
		return CategoryLogic
	}
}

// SubstrateError is the concrete error type returned by public entry
// points. It carries the sentinel (for errors.Is), the category it belongs
// to, and the offending key/index/value-type so messages are self
// describing.
type SubstrateError struct {
	Category Category
	Op       string // entry point name, e.g. "VertexStore.AddNewVertex"
	Key      string // offending key, if any
	Index    int    // offending index, -1 if not applicable
	ValueType string // scalar type tag, if any
	sentinel error
	cause    error
}

// Error implements the error interface.
func (e *SubstrateError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.sentinel)
	if e.Key != "" {
		msg += fmt.Sprintf(" (key=%q)", e.Key)
	}
	if e.Index >= 0 {
		msg += fmt.Sprintf(" (index=%d)", e.Index)
	}
	if e.ValueType != "" {
		msg += fmt.Sprintf(" (type=%s)", e.ValueType)
	}
	if e.cause != nil && e.cause != e.sentinel {
		msg += fmt.Sprintf(": %s", e.cause)
	}
	return msg
}

// Unwrap lets errors.Is/errors.As see through to the sentinel (and, for
// kernel wraps, to the original cause).
func (e *SubstrateError) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	return e.sentinel
}

// Is reports whether target is this error's sentinel. Checked by
// errors.Is before it falls back to Unwrap, so errors.Is(err, ErrKernel)
// still matches a Wrap'd error even though Unwrap returns the wrapped
// cause rather than ErrKernel itself.
func (e *SubstrateError) Is(target error) bool {
	return target == e.sentinel
}

// New builds a SubstrateError for sentinel, attributed to op, with no
// key/index/type context. Use the With* setters (chainable) to attach
// context at the call site.
func New(op string, sentinel error) *SubstrateError {
	return &SubstrateError{
		Category: categoryOf(sentinel),
		Op:       op,
		Index:    -1,
		sentinel: sentinel,
	}
}

// Wrap builds a CategorySystem SubstrateError around a kernel-propagated
// cause, tagging it ErrKernel: errors.Is(err, ErrKernel) matches via the
// Is method, and errors.Is/errors.As against the original cause still
// works via Unwrap.
func Wrap(op string, cause error) *SubstrateError {
	return &SubstrateError{
		Category: CategorySystem,
		Op:       op,
		Index:    -1,
		sentinel: ErrKernel,
		cause:    cause,
	}
}

// WithKey attaches the offending key and returns the receiver for chaining.
func (e *SubstrateError) WithKey(key string) *SubstrateError {
	e.Key = key
	return e
}

// WithIndex attaches the offending index and returns the receiver for chaining.
func (e *SubstrateError) WithIndex(idx int) *SubstrateError {
	e.Index = idx
	return e
}

// WithValueType attaches the scalar-type tag and returns the receiver for chaining.
func (e *SubstrateError) WithValueType(tag string) *SubstrateError {
	e.ValueType = tag
	return e
}
