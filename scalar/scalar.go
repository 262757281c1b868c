// Package scalar defines the closed set of numeric value types the
// substrate supports, and the generic constraint used to parameterize every
// sparse container and operator over that set.
//
// The set is fixed at thirteen members (bool, the four fixed-width integer
// widths in both signs, the two floating-point widths, and the two
// platform-width integers). Adding a member requires extending every
// TypedContainerFamily and every dispatch switch in this module; see
// DESIGN.md for the accepted tradeoff of parallel typed containers over a
// tagged-union value representation.
package scalar

import "fmt"

// Type tags one of the thirteen supported scalar kinds. It is the runtime
// counterpart to the Go type parameter T used throughout kernel/ and
// container/: call sites that only have a Type value (e.g. parsed from a
// schema) use it to pick the matching field out of a TypedContainerFamily.
type Type uint8

// The closed set of ScalarTypes, in declaration order. Order is part of the
// contract: TypedContainerFamily iterates in this order wherever a
// deterministic per-type sweep is required (e.g. resize, shape checks).
const (
	Bool Type = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Int
	Uint

	numTypes // sentinel, not a valid ScalarType
)

// NumTypes is the cardinality of the ScalarType set (13).
const NumTypes = int(numTypes)

// All lists every ScalarType in declaration order. Safe to range over when a
// dispatch site needs to visit all thirteen containers of a family.
var All = [NumTypes]Type{
	Bool, Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64,
	Float32, Float64, Int, Uint,
}

// String renders a human-readable tag, used by error messages that must
// carry the involved value-type tag.
func (t Type) String() string {
	switch t {
	case Bool:
		return "bool"
	case Int8:
		return "i8"
	case Int16:
		return "i16"
	case Int32:
		return "i32"
	case Int64:
		return "i64"
	case Uint8:
		return "u8"
	case Uint16:
		return "u16"
	case Uint32:
		return "u32"
	case Uint64:
		return "u64"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	case Int:
		return "isize"
	case Uint:
		return "usize"
	default:
		return fmt.Sprintf("scalar.Type(%d)", uint8(t))
	}
}

// Valid reports whether t is one of the thirteen declared members.
func (t Type) Valid() bool {
	return t < numTypes
}

// Scalar is the generic constraint satisfied by every supported value type.
// Every sparse container, operator, and family field in kernel/ and
// container/ is parameterized over Scalar.
type Scalar interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~int | ~uint
}

// Numeric is Scalar minus bool: the subset that supports the arithmetic
// monoids/semirings (Plus, Times, Min, Max) defined in kernel/operators.go.
// Bool gets its own logical operators (And, Or, Xor) instead.
type Numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~int | ~uint
}

// TypeOf returns the ScalarType tag matching the generic parameter T, via an
// explicit value of that type. Used at dispatch sites that only carry the
// concrete Go type via a zero value, e.g. when registering a container in a
// TypedContainerFamily.
func TypeOf[T Scalar](zero T) Type {
	switch any(zero).(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	case int:
		return Int
	case uint:
		return Uint
	default:
		return numTypes
	}
}
