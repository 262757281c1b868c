// SPDX-License-Identifier: MIT

// Package container implements TypedContainerFamily: a set of thirteen
// shape-identical sparse containers, one per scalar.Type, resized and
// dispatched as a single unit.
package container

import (
	"fmt"

	"github.com/katalvlaran/graphalg/kernel"
	"github.com/katalvlaran/graphalg/scalar"
)

// VectorFamily holds one kernel.SparseVector per scalar.Type, all sharing
// the same length. It backs a VertexVector: one family per vertex-type.
type VectorFamily struct {
	ctx *kernel.Context

	boolVec    *kernel.SparseVector[bool]
	int8Vec    *kernel.SparseVector[int8]
	int16Vec   *kernel.SparseVector[int16]
	int32Vec   *kernel.SparseVector[int32]
	int64Vec   *kernel.SparseVector[int64]
	uint8Vec   *kernel.SparseVector[uint8]
	uint16Vec  *kernel.SparseVector[uint16]
	uint32Vec  *kernel.SparseVector[uint32]
	uint64Vec  *kernel.SparseVector[uint64]
	float32Vec *kernel.SparseVector[float32]
	float64Vec *kernel.SparseVector[float64]
	intVec     *kernel.SparseVector[int]
	uintVec    *kernel.SparseVector[uint]
}

// NewVectorFamily allocates a length-n VectorFamily: thirteen empty sparse
// vectors, all against ctx, all of length n.
func NewVectorFamily(ctx *kernel.Context, length int) (*VectorFamily, error) {
	f := &VectorFamily{ctx: ctx}
	var err error
	if f.boolVec, err = kernel.NewSparseVector[bool](ctx, length); err != nil {
		return nil, err
	}
	if f.int8Vec, err = kernel.NewSparseVector[int8](ctx, length); err != nil {
		return nil, err
	}
	if f.int16Vec, err = kernel.NewSparseVector[int16](ctx, length); err != nil {
		return nil, err
	}
	if f.int32Vec, err = kernel.NewSparseVector[int32](ctx, length); err != nil {
		return nil, err
	}
	if f.int64Vec, err = kernel.NewSparseVector[int64](ctx, length); err != nil {
		return nil, err
	}
	if f.uint8Vec, err = kernel.NewSparseVector[uint8](ctx, length); err != nil {
		return nil, err
	}
	if f.uint16Vec, err = kernel.NewSparseVector[uint16](ctx, length); err != nil {
		return nil, err
	}
	if f.uint32Vec, err = kernel.NewSparseVector[uint32](ctx, length); err != nil {
		return nil, err
	}
	if f.uint64Vec, err = kernel.NewSparseVector[uint64](ctx, length); err != nil {
		return nil, err
	}
	if f.float32Vec, err = kernel.NewSparseVector[float32](ctx, length); err != nil {
		return nil, err
	}
	if f.float64Vec, err = kernel.NewSparseVector[float64](ctx, length); err != nil {
		return nil, err
	}
	if f.intVec, err = kernel.NewSparseVector[int](ctx, length); err != nil {
		return nil, err
	}
	if f.uintVec, err = kernel.NewSparseVector[uint](ctx, length); err != nil {
		return nil, err
	}
	return f, nil
}

// Length returns the shared length of every container in the family.
func (f *VectorFamily) Length() int {
	return f.boolVec.Length()
}

// Resize grows every one of the thirteen containers to newLength in a
// fixed order (bool, then the ten numeric widths, then isize/usize). A
// mid-sequence failure can only come from kernel.SparseVector.Resize
// rejecting shrinkage, which every prior call in the same invocation also
// rejects identically, so no rollback bookkeeping is needed: either all
// thirteen succeed or the family was already asked to shrink and none does.
func (f *VectorFamily) Resize(newLength int) error {
	for _, v := range f.all() {
		if err := v.resize(newLength); err != nil {
			return fmt.Errorf("VectorFamily.Resize: %w", err)
		}
	}
	return nil
}

// typedVector is the minimal resize-capable surface shared by every
// per-type field, used only to drive the uniform-order Resize sweep.
type typedVector interface {
	resize(newLength int) error
}

type vecAdapter[T scalar.Scalar] struct{ v *kernel.SparseVector[T] }

func (a vecAdapter[T]) resize(n int) error { return a.v.Resize(n) }

func (f *VectorFamily) all() []typedVector {
	return []typedVector{
		vecAdapter[bool]{f.boolVec},
		vecAdapter[int8]{f.int8Vec},
		vecAdapter[int16]{f.int16Vec},
		vecAdapter[int32]{f.int32Vec},
		vecAdapter[int64]{f.int64Vec},
		vecAdapter[uint8]{f.uint8Vec},
		vecAdapter[uint16]{f.uint16Vec},
		vecAdapter[uint32]{f.uint32Vec},
		vecAdapter[uint64]{f.uint64Vec},
		vecAdapter[float32]{f.float32Vec},
		vecAdapter[float64]{f.float64Vec},
		vecAdapter[int]{f.intVec},
		vecAdapter[uint]{f.uintVec},
	}
}

// VectorOf returns the typed SparseVector for scalar type T. Call with an
// explicit type parameter: container.VectorOf[int32](family).
func VectorOf[T scalar.Scalar](f *VectorFamily) *kernel.SparseVector[T] {
	var zero T
	switch any(zero).(type) {
	case bool:
		return any(f.boolVec).(*kernel.SparseVector[T])
	case int8:
		return any(f.int8Vec).(*kernel.SparseVector[T])
	case int16:
		return any(f.int16Vec).(*kernel.SparseVector[T])
	case int32:
		return any(f.int32Vec).(*kernel.SparseVector[T])
	case int64:
		return any(f.int64Vec).(*kernel.SparseVector[T])
	case uint8:
		return any(f.uint8Vec).(*kernel.SparseVector[T])
	case uint16:
		return any(f.uint16Vec).(*kernel.SparseVector[T])
	case uint32:
		return any(f.uint32Vec).(*kernel.SparseVector[T])
	case uint64:
		return any(f.uint64Vec).(*kernel.SparseVector[T])
	case float32:
		return any(f.float32Vec).(*kernel.SparseVector[T])
	case float64:
		return any(f.float64Vec).(*kernel.SparseVector[T])
	case int:
		return any(f.intVec).(*kernel.SparseVector[T])
	case uint:
		return any(f.uintVec).(*kernel.SparseVector[T])
	default:
		return nil
	}
}

// IsElementSetAny reports whether idx carries a value in any one of the
// thirteen containers — the cross-type "slot occupied" predicate
// VertexStore uses to reject duplicate vertex writes regardless of which
// scalar type the first write used.
func (f *VectorFamily) IsElementSetAny(idx int) (bool, error) {
	for _, v := range []interface {
		IsElement(int) (bool, error)
	}{f.boolVec, f.int8Vec, f.int16Vec, f.int32Vec, f.int64Vec, f.uint8Vec, f.uint16Vec, f.uint32Vec, f.uint64Vec, f.float32Vec, f.float64Vec, f.intVec, f.uintVec} {
		ok, err := v.IsElement(idx)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// ClearIndexAll drops idx from every one of the thirteen containers. Used
// by delete-vertex fan-out.
func (f *VectorFamily) ClearIndexAll(idx int) error {
	for _, v := range []interface {
		DropElement(int) error
	}{f.boolVec, f.int8Vec, f.int16Vec, f.int32Vec, f.int64Vec, f.uint8Vec, f.uint16Vec, f.uint32Vec, f.uint64Vec, f.float32Vec, f.float64Vec, f.intVec, f.uintVec} {
		if err := v.DropElement(idx); err != nil {
			return err
		}
	}
	return nil
}
