// SPDX-License-Identifier: MIT

// Package vertexstore owns the vertex-type Indexer, the element (vertex)
// Indexer, and one VectorFamily ("VertexVector") per vertex-type.
package vertexstore

import (
	"github.com/katalvlaran/graphalg/container"
	"github.com/katalvlaran/graphalg/errtax"
	"github.com/katalvlaran/graphalg/indexer"
	"github.com/katalvlaran/graphalg/kernel"
	"github.com/katalvlaran/graphalg/scalar"
)

// VertexStore owns a vertex-type Indexer, an element (vertex) Indexer, and
// a VectorFamily per vertex-type, kept at length element_indexer.Capacity().
type VertexStore struct {
	ctx *kernel.Context

	vertexTypeIndexer *indexer.Indexer
	elementIndexer    *indexer.Indexer

	vertexVectors map[int]*container.VectorFamily // keyed by vertex-type index
}

// New constructs an empty VertexStore preallocated for the given vertex
// and vertex-type capacities, using indexer.DefaultGrowthFactor.
func New(ctx *kernel.Context, initialVertexCapacity, initialVertexTypeCapacity int) *VertexStore {
	return NewWithGrowthFactor(ctx, initialVertexCapacity, initialVertexTypeCapacity, indexer.DefaultGrowthFactor)
}

// NewWithGrowthFactor is New with an explicit growth factor applied to both
// the vertex-type and the element Indexer.
func NewWithGrowthFactor(ctx *kernel.Context, initialVertexCapacity, initialVertexTypeCapacity int, growthFactor float64) *VertexStore {
	return &VertexStore{
		ctx:               ctx,
		vertexTypeIndexer: indexer.NewWithCapacityAndGrowthFactor(initialVertexTypeCapacity, growthFactor),
		elementIndexer:    indexer.NewWithCapacityAndGrowthFactor(initialVertexCapacity, growthFactor),
		vertexVectors:     make(map[int]*container.VectorFamily, initialVertexTypeCapacity),
	}
}

// VertexCapacity returns the current element (vertex) address-space size.
func (vs *VertexStore) VertexCapacity() int {
	return vs.elementIndexer.Capacity()
}

// IsValidVertexIndex reports whether idx currently names a live vertex
// slot.
func (vs *VertexStore) IsValidVertexIndex(idx int) bool {
	return vs.elementIndexer.IsValidIndex(idx)
}

// VertexIndexForKey resolves a vertex key to its index, if bound.
func (vs *VertexStore) VertexIndexForKey(key string) (int, bool) {
	return vs.elementIndexer.IndexForKey(key)
}

// VertexKeyForIndex resolves a vertex index back to its key, if bound.
func (vs *VertexStore) VertexKeyForIndex(idx int) (string, bool) {
	return vs.elementIndexer.KeyForIndex(idx)
}

// AddNewVertexType registers vertexTypeKey and allocates its VectorFamily
// at the current vertex capacity. Fails with errtax.ErrKeyAlreadyExists if
// the type is already registered.
func (vs *VertexStore) AddNewVertexType(vertexTypeKey string) (indexer.AssignedIndex, error) {
	assigned, err := vs.vertexTypeIndexer.AddNewKey(vertexTypeKey)
	if err != nil {
		return indexer.AssignedIndex{}, errtax.New("VertexStore.AddNewVertexType", errtax.ErrKeyAlreadyExists).WithKey(vertexTypeKey)
	}
	fam, ferr := container.NewVectorFamily(vs.ctx, vs.elementIndexer.Capacity())
	if ferr != nil {
		vs.vertexTypeIndexer.ReleaseByKey(vertexTypeKey)
		return indexer.AssignedIndex{}, errtax.Wrap("VertexStore.AddNewVertexType", ferr)
	}
	vs.vertexVectors[assigned.Index] = fam
	return assigned, nil
}

// vertexTypeFamily resolves a vertex-type index to its VectorFamily,
// returning errtax.ErrVertexTypeMustExist if the type was never
// registered.
func (vs *VertexStore) vertexTypeFamily(vertexTypeIdx int) (*container.VectorFamily, error) {
	fam, ok := vs.vertexVectors[vertexTypeIdx]
	if !ok {
		return nil, errtax.New("VertexStore", errtax.ErrVertexTypeMustExist).WithIndex(vertexTypeIdx)
	}
	return fam, nil
}

// AddNewKeyDefinedVertex assigns or reuses vertexKey in the element
// Indexer, grows every VectorFamily in step if the assignment forced
// growth, then writes value into the type-T container of vertexTypeKey's
// family. Fails with errtax.ErrVertexAlreadyExists if any container at that
// vertex-type/vertex slot already carries a value, without mutating state.
func AddNewKeyDefinedVertex[T scalar.Scalar](vs *VertexStore, vertexTypeKey, vertexKey string, value T) (indexer.AssignedIndex, error) {
	vertexTypeIdx, ok := vs.vertexTypeIndexer.IndexForKey(vertexTypeKey)
	if !ok {
		return indexer.AssignedIndex{}, errtax.New("VertexStore.AddNewKeyDefinedVertex", errtax.ErrVertexTypeMustExist).WithKey(vertexTypeKey)
	}
	return addNewVertexAtTypeIndex(vs, vertexTypeIdx, vertexKey, value)
}

// AddNewVertexWithTypeIndexAndVertexKey is AddNewKeyDefinedVertex taking
// the vertex-type via index instead of key.
func AddNewVertexWithTypeIndexAndVertexKey[T scalar.Scalar](vs *VertexStore, vertexTypeIdx int, vertexKey string, value T) (indexer.AssignedIndex, error) {
	return addNewVertexAtTypeIndex(vs, vertexTypeIdx, vertexKey, value)
}

// addNewVertexAtTypeIndex writes value at vertexKey's slot in
// vertexTypeIdx's family. vertexKey is global across every vertex-type: a
// key already bound by some other type is reused at its existing index
// (the same vertex carries a parallel value for the new type) rather than
// rejected; only an already-occupied cell in THIS type's family fails with
// errtax.ErrVertexAlreadyExists. A fresh index allocated for a brand-new
// key is rolled back on any later failure; a reused index never is, since
// releasing it would also undo the vertex's bindings under every other
// type.
func addNewVertexAtTypeIndex[T scalar.Scalar](vs *VertexStore, vertexTypeIdx int, vertexKey string, value T) (indexer.AssignedIndex, error) {
	fam, err := vs.vertexTypeFamily(vertexTypeIdx)
	if err != nil {
		return indexer.AssignedIndex{}, err
	}

	_, existedBefore := vs.elementIndexer.IndexForKey(vertexKey)
	assigned, _ := vs.elementIndexer.AddOrReuseKey(vertexKey)
	if assigned.NewCapacity != nil {
		if rerr := vs.resizeVertexVectors(*assigned.NewCapacity); rerr != nil {
			if !existedBefore {
				vs.elementIndexer.ReleaseByKey(vertexKey)
			}
			return indexer.AssignedIndex{}, errtax.Wrap("VertexStore.AddNewKeyDefinedVertex", rerr)
		}
	}

	occupied, err := fam.IsElementSetAny(assigned.Index)
	if err != nil {
		if !existedBefore {
			vs.elementIndexer.ReleaseByKey(vertexKey)
		}
		return indexer.AssignedIndex{}, errtax.Wrap("VertexStore.AddNewKeyDefinedVertex", err)
	}
	if occupied {
		if !existedBefore {
			vs.elementIndexer.ReleaseByKey(vertexKey)
		}
		return indexer.AssignedIndex{}, errtax.New("VertexStore.AddNewKeyDefinedVertex", errtax.ErrVertexAlreadyExists).WithKey(vertexKey).WithIndex(assigned.Index)
	}
	if err := container.VectorOf[T](fam).SetElement(assigned.Index, value); err != nil {
		if !existedBefore {
			vs.elementIndexer.ReleaseByKey(vertexKey)
		}
		return indexer.AssignedIndex{}, errtax.Wrap("VertexStore.AddNewKeyDefinedVertex", err)
	}
	return assigned, nil
}

// AddNewIndexDefinedVertex writes value at vertexIdx (which must already be
// a valid element index) in vertexTypeIdx's family, failing
// errtax.ErrVertexAlreadyExists if that slot is already occupied.
func AddNewIndexDefinedVertex[T scalar.Scalar](vs *VertexStore, vertexTypeIdx, vertexIdx int, value T) error {
	fam, err := vs.vertexTypeFamily(vertexTypeIdx)
	if err != nil {
		return err
	}
	if !vs.elementIndexer.IsValidIndex(vertexIdx) {
		return errtax.New("VertexStore.AddNewIndexDefinedVertex", errtax.ErrVertexMustExist).WithIndex(vertexIdx)
	}
	occupied, err := fam.IsElementSetAny(vertexIdx)
	if err != nil {
		return errtax.Wrap("VertexStore.AddNewIndexDefinedVertex", err)
	}
	if occupied {
		return errtax.New("VertexStore.AddNewIndexDefinedVertex", errtax.ErrVertexAlreadyExists).WithIndex(vertexIdx)
	}
	if err := container.VectorOf[T](fam).SetElement(vertexIdx, value); err != nil {
		return errtax.Wrap("VertexStore.AddNewIndexDefinedVertex", err)
	}
	return nil
}

// AddOrUpdateVertexByKey assigns or reuses vertexKey, then writes value
// unconditionally (overwriting any existing value at that slot for type T).
// Returns a non-nil *indexer.AssignedIndex only when a new slot was
// allocated.
func AddOrUpdateVertexByKey[T scalar.Scalar](vs *VertexStore, vertexTypeKey, vertexKey string, value T) (*indexer.AssignedIndex, error) {
	vertexTypeIdx, ok := vs.vertexTypeIndexer.IndexForKey(vertexTypeKey)
	if !ok {
		return nil, errtax.New("VertexStore.AddOrUpdateVertexByKey", errtax.ErrVertexTypeMustExist).WithKey(vertexTypeKey)
	}
	fam, err := vs.vertexTypeFamily(vertexTypeIdx)
	if err != nil {
		return nil, err
	}

	_, existedBefore := vs.elementIndexer.IndexForKey(vertexKey)
	wasNew := !existedBefore

	assigned, err := vs.elementIndexer.AddOrReuseKey(vertexKey)
	if err != nil {
		return nil, errtax.Wrap("VertexStore.AddOrUpdateVertexByKey", err)
	}
	if assigned.NewCapacity != nil {
		if rerr := vs.resizeVertexVectors(*assigned.NewCapacity); rerr != nil {
			return nil, errtax.Wrap("VertexStore.AddOrUpdateVertexByKey", rerr)
		}
	}
	if err := container.VectorOf[T](fam).SetElement(assigned.Index, value); err != nil {
		return nil, errtax.Wrap("VertexStore.AddOrUpdateVertexByKey", err)
	}
	if wasNew {
		return &assigned, nil
	}
	return nil, nil
}

// AddOrUpdateVertexByIndex writes value at the already-valid vertexIdx,
// overwriting any existing value. vertexIdx must already be bound; use
// AddOrUpdateVertexByKey to mint a fresh one.
func AddOrUpdateVertexByIndex[T scalar.Scalar](vs *VertexStore, vertexTypeIdx, vertexIdx int, value T) error {
	fam, err := vs.vertexTypeFamily(vertexTypeIdx)
	if err != nil {
		return err
	}
	if !vs.elementIndexer.IsValidIndex(vertexIdx) {
		return errtax.New("VertexStore.AddOrUpdateVertexByIndex", errtax.ErrVertexMustExist).WithIndex(vertexIdx)
	}
	if err := container.VectorOf[T](fam).SetElement(vertexIdx, value); err != nil {
		return errtax.Wrap("VertexStore.AddOrUpdateVertexByIndex", err)
	}
	return nil
}

// VertexValueByIndex returns the type-T value at vertexIdx in
// vertexTypeIdx's family and whether it is present.
func VertexValueByIndex[T scalar.Scalar](vs *VertexStore, vertexTypeIdx, vertexIdx int) (T, bool, error) {
	var zero T
	fam, err := vs.vertexTypeFamily(vertexTypeIdx)
	if err != nil {
		return zero, false, err
	}
	val, ok, err := container.VectorOf[T](fam).GetElementValue(vertexIdx)
	if err != nil {
		return zero, false, errtax.Wrap("VertexStore.VertexValueByIndex", err)
	}
	return val, ok, nil
}

// VertexValueByKey resolves vertexKey then delegates to
// VertexValueByIndex.
func VertexValueByKey[T scalar.Scalar](vs *VertexStore, vertexTypeIdx int, vertexKey string) (T, bool, error) {
	var zero T
	idx, ok := vs.elementIndexer.IndexForKey(vertexKey)
	if !ok {
		return zero, false, errtax.New("VertexStore.VertexValueByKey", errtax.ErrVertexKeyNotFound).WithKey(vertexKey)
	}
	return VertexValueByIndex[T](vs, vertexTypeIdx, idx)
}

// TryVertexValueByIndex is VertexValueByIndex but returns an
// errtax.ErrVertexMustExist error when no type-T value is present, instead
// of a present=false flag.
func TryVertexValueByIndex[T scalar.Scalar](vs *VertexStore, vertexTypeIdx, vertexIdx int) (T, error) {
	var zero T
	val, ok, err := VertexValueByIndex[T](vs, vertexTypeIdx, vertexIdx)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, errtax.New("VertexStore.TryVertexValueByIndex", errtax.ErrVertexMustExist).WithIndex(vertexIdx)
	}
	return val, nil
}

// VertexValueOrDefaultByIndex returns the type-T value at vertexIdx, or
// T's zero value if absent.
func VertexValueOrDefaultByIndex[T scalar.Scalar](vs *VertexStore, vertexTypeIdx, vertexIdx int) (T, error) {
	val, _, err := VertexValueByIndex[T](vs, vertexTypeIdx, vertexIdx)
	return val, err
}

// ClearVertexAcrossTypes drops vertexIdx from every container of every
// registered vertex-type's family, without releasing the index itself.
// Graph composes this with EdgeStore's adjacency fan-out before finally
// releasing the element index, so the two stores' invariants fall in a
// well-defined order.
func (vs *VertexStore) ClearVertexAcrossTypes(vertexIdx int) error {
	for _, fam := range vs.vertexVectors {
		if err := fam.ClearIndexAll(vertexIdx); err != nil {
			return errtax.Wrap("VertexStore.ClearVertexAcrossTypes", err)
		}
	}
	return nil
}

// ReleaseVertexIndex releases vertexIdx in the element Indexer, pushing it
// onto the free-list for reuse. A no-op if vertexIdx is not bound.
func (vs *VertexStore) ReleaseVertexIndex(vertexIdx int) {
	vs.elementIndexer.Release(vertexIdx)
}

// DeleteVertex clears vertexIdx from every vertex-type's family and
// releases it in the element Indexer. Exposed for standalone VertexStore
// use (including tests); Graph.DeleteVertexByIndex instead sequences
// ClearVertexAcrossTypes with EdgeStore's own fan-out before releasing.
func (vs *VertexStore) DeleteVertex(vertexIdx int) error {
	if err := vs.ClearVertexAcrossTypes(vertexIdx); err != nil {
		return err
	}
	vs.ReleaseVertexIndex(vertexIdx)
	return nil
}

// resizeVertexVectors grows every registered vertex-type's family to
// newCapacity. Called internally whenever the element Indexer grows.
func (vs *VertexStore) resizeVertexVectors(newCapacity int) error {
	for typeIdx, fam := range vs.vertexVectors {
		if err := fam.Resize(newCapacity); err != nil {
			return errtax.New("VertexStore.resizeVertexVectors", errtax.ErrDimensionMismatch).WithIndex(typeIdx)
		}
	}
	return nil
}

// ResizeVertexVectors is the exported form, usable by Graph when it needs
// to force every family to a capacity ahead of a batch of writes.
func (vs *VertexStore) ResizeVertexVectors(newCapacity int) error {
	return vs.resizeVertexVectors(newCapacity)
}

// VectorFamilyForType exposes the raw VectorFamily for vertexTypeIdx, for
// callers (graph/'s operator surface) that need direct container access for
// apply/element-wise/select operators.
func (vs *VertexStore) VectorFamilyForType(vertexTypeIdx int) (*container.VectorFamily, error) {
	return vs.vertexTypeFamily(vertexTypeIdx)
}

// VertexTypeIndexForKey resolves a vertex-type key to its index.
func (vs *VertexStore) VertexTypeIndexForKey(key string) (int, bool) {
	return vs.vertexTypeIndexer.IndexForKey(key)
}
