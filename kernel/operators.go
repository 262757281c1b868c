// SPDX-License-Identifier: MIT
package kernel

import (
	"math"

	"github.com/katalvlaran/graphalg/scalar"
)

// BinaryOperator combines two operands of type T into a result of type T.
// This is the kernel library's binary-operator primitive.
type BinaryOperator[T scalar.Scalar] func(a, b T) T

// UnaryOperator transforms a single operand, used by Apply.
type UnaryOperator[T scalar.Scalar] func(a T) T

// AccumulatorBinaryOperator combines a newly computed value with whatever
// already occupies the destination cell. The apply entry points take one;
// nil means "overwrite" (GraphBLAS's REPLACE).
type AccumulatorBinaryOperator[T scalar.Scalar] = BinaryOperator[T]

// Monoid is a BinaryOperator paired with its identity element, the unit
// element-wise add/multiply reduce through.
type Monoid[T scalar.Scalar] struct {
	Op       BinaryOperator[T]
	Identity T
}

// Semiring pairs an additive Monoid with a multiplicative BinaryOperator,
// the structure matrix-vector, vector-matrix and matrix-matrix multiply are
// parameterized over.
type Semiring[T scalar.Scalar] struct {
	Add Monoid[T]
	Mul BinaryOperator[T]
}

// IndexUnaryOperator is the predicate family behind Select: given an
// element's coordinates, its value, and a caller-supplied thunk, it decides
// whether the element survives the selection.
type IndexUnaryOperator[T scalar.Scalar] func(row, col int, val T, thunk T) bool

// Plus is the additive BinaryOperator over any Numeric type.
func Plus[T scalar.Numeric]() BinaryOperator[T] {
	return func(a, b T) T { return a + b }
}

// Times is the multiplicative BinaryOperator over any Numeric type.
func Times[T scalar.Numeric]() BinaryOperator[T] {
	return func(a, b T) T { return a * b }
}

// Min returns the smaller of two operands.
func Min[T scalar.Numeric]() BinaryOperator[T] {
	return func(a, b T) T {
		if a < b {
			return a
		}
		return b
	}
}

// Max returns the larger of two operands.
func Max[T scalar.Numeric]() BinaryOperator[T] {
	return func(a, b T) T {
		if a > b {
			return a
		}
		return b
	}
}

// First discards b and returns a, the identity projection GraphBLAS calls
// FIRST; useful as an overwrite accumulator.
func First[T scalar.Scalar]() BinaryOperator[T] {
	return func(a, b T) T { return a }
}

// Second discards a and returns b; the natural "overwrite with new value"
// accumulator.
func Second[T scalar.Scalar]() BinaryOperator[T] {
	return func(a, b T) T { return b }
}

// PlusMonoid builds the (+, 0) Monoid used by element-wise addition.
func PlusMonoid[T scalar.Numeric]() Monoid[T] {
	var zero T
	return Monoid[T]{Op: Plus[T](), Identity: zero}
}

// TimesMonoid builds the (*, 1) Monoid.
func TimesMonoid[T scalar.Numeric]() Monoid[T] {
	return Monoid[T]{Op: Times[T](), Identity: one[T]()}
}

// one returns the multiplicative identity for T. Implemented via a type
// switch since Go generics have no numeric literal polymorphism for
// arbitrary constraint unions.
func one[T scalar.Numeric]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(1)).(T)
	case float64:
		return any(float64(1)).(T)
	default:
		return T(1)
	}
}

// PlusTimesSemiring builds the classical (+, *) semiring over Numeric
// types. The multiply functions have no default semiring; callers pass
// this or another explicitly.
func PlusTimesSemiring[T scalar.Numeric]() Semiring[T] {
	return Semiring[T]{Add: PlusMonoid[T](), Mul: Times[T]()}
}

// MinPlusSemiring builds the (min, +) tropical semiring, useful for
// shortest-path-flavored matrix multiply.
func MinPlusSemiring[T scalar.Numeric]() Semiring[T] {
	return Semiring[T]{Add: Monoid[T]{Op: Min[T](), Identity: maxValue[T]()}, Mul: Plus[T]()}
}

// maxValue returns the identity element for the Min monoid: the largest
// representable value of T, so that min(x, maxValue) == x for every x.
func maxValue[T scalar.Numeric]() T {
	var zero T
	switch any(zero).(type) {
	case int8:
		return any(int8(math.MaxInt8)).(T)
	case int16:
		return any(int16(math.MaxInt16)).(T)
	case int32:
		return any(int32(math.MaxInt32)).(T)
	case int64:
		return any(int64(math.MaxInt64)).(T)
	case int:
		return any(int(math.MaxInt64)).(T)
	case uint8:
		return any(uint8(math.MaxUint8)).(T)
	case uint16:
		return any(uint16(math.MaxUint16)).(T)
	case uint32:
		return any(uint32(math.MaxUint32)).(T)
	case uint64:
		return any(uint64(math.MaxUint64)).(T)
	case uint:
		return any(uint(math.MaxUint64)).(T)
	case float32:
		return any(float32(math.MaxFloat32)).(T)
	case float64:
		return any(float64(math.MaxFloat64)).(T)
	default:
		return zero
	}
}

// And is the logical-AND BinaryOperator over bool.
func And() BinaryOperator[bool] {
	return func(a, b bool) bool { return a && b }
}

// Or is the logical-OR BinaryOperator over bool.
func Or() BinaryOperator[bool] {
	return func(a, b bool) bool { return a || b }
}

// Xor is the logical-XOR BinaryOperator over bool.
func Xor() BinaryOperator[bool] {
	return func(a, b bool) bool { return a != b }
}

// LorLandSemiring is the boolean (OR, AND) semiring GraphBLAS calls
// LOR_LAND_BOOL, used for reachability-flavored matrix multiply.
func LorLandSemiring() Semiring[bool] {
	return Semiring[bool]{Add: Monoid[bool]{Op: Or(), Identity: false}, Mul: And()}
}

// GreaterThan is an IndexUnaryOperator selecting elements strictly greater
// than thunk, ignoring coordinates.
func GreaterThan[T scalar.Numeric]() IndexUnaryOperator[T] {
	return func(_, _ int, val T, thunk T) bool { return val > thunk }
}

// LessThan is an IndexUnaryOperator selecting elements strictly less than
// thunk, ignoring coordinates.
func LessThan[T scalar.Numeric]() IndexUnaryOperator[T] {
	return func(_, _ int, val T, thunk T) bool { return val < thunk }
}

// ValueEqual is an IndexUnaryOperator selecting elements equal to thunk,
// ignoring coordinates.
func ValueEqual[T scalar.Scalar]() IndexUnaryOperator[T] {
	return func(_, _ int, val T, thunk T) bool { return val == thunk }
}

// ValueNotEqual is an IndexUnaryOperator selecting elements not equal to
// thunk, ignoring coordinates.
func ValueNotEqual[T scalar.Scalar]() IndexUnaryOperator[T] {
	return func(_, _ int, val T, thunk T) bool { return val != thunk }
}

// OffDiagonal is a coordinate-only IndexUnaryOperator selecting elements
// whose row and column differ, ignoring value and thunk. Useful for
// selecting strictly off-diagonal adjacency cells (excluding self-loops).
func OffDiagonal[T scalar.Scalar]() IndexUnaryOperator[T] {
	return func(row, col int, _ T, _ T) bool { return row != col }
}
