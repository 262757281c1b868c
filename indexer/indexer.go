// Package indexer implements a stable bidirectional key↔index mapping with
// slot reuse.
//
// An Indexer hands out dense, non-negative indices for externally-visible
// string keys. Released indices go onto a LIFO free-list and are reused
// before any fresh index is minted, so the address space stays compact
// under churn. Capacity only ever grows; shrinking is not supported.
//
// Locking follows a single sync.RWMutex held for the duration of any
// mutating call. The vertex and edge stores built on top of an Indexer add
// no locking of their own.
package indexer

import (
	"sync"

	"github.com/katalvlaran/graphalg/errtax"
)

// DefaultGrowthFactor is the minimum capacity multiplier applied when an
// Indexer must grow to mint a fresh index.
const DefaultGrowthFactor = 1.5

// AssignedIndex is the return carrier for index allocation. NewCapacity is
// non-nil only when the assignment forced the Indexer to grow, so callers
// know to propagate a resize to every sibling container family.
type AssignedIndex struct {
	Index       int
	NewCapacity *int
}

// Indexer is a stable bidirectional Key↔Index map with LIFO slot reuse.
//
// The zero value is not usable; construct with New or NewWithCapacity.
type Indexer struct {
	mu sync.RWMutex

	keyToIndex map[string]int
	indexToKey map[int]string

	freeList []int // LIFO: recently released slots are reused first
	next     int   // next fresh index if freeList is empty
	capacity int   // current address-space size

	growthFactor float64

	valid map[int]struct{} // valid-indices set; also the default select-all mask
}

// New constructs an empty Indexer with capacity 0; the first assignment
// grows it.
func New() *Indexer {
	return NewWithCapacity(0)
}

// NewWithCapacity constructs an empty Indexer preallocated to hold initial
// entries without an immediate grow, using DefaultGrowthFactor.
func NewWithCapacity(initial int) *Indexer {
	return NewWithCapacityAndGrowthFactor(initial, DefaultGrowthFactor)
}

// NewWithCapacityAndGrowthFactor is NewWithCapacity with an explicit growth
// factor; values below 1.0 fall back to DefaultGrowthFactor.
func NewWithCapacityAndGrowthFactor(initial int, growthFactor float64) *Indexer {
	if initial < 0 {
		initial = 0
	}
	return &Indexer{
		keyToIndex:   make(map[string]int, initial),
		indexToKey:   make(map[int]string, initial),
		freeList:     nil,
		next:         0,
		capacity:     initial,
		growthFactor: growthFactor,
		valid:        make(map[int]struct{}, initial),
	}
}

// Capacity returns the current address-space size. Every sibling
// TypedContainerFamily keyed by this Indexer must match this value.
func (ix *Indexer) Capacity() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.capacity
}

// Len returns the number of currently valid (key, index) pairs.
func (ix *Indexer) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.valid)
}

// growCapacity computes the next capacity for a target size:
// max(target, ceil(current * growthFactor)).
// Caller must hold ix.mu for writing.
func growCapacity(current, target int, growthFactor float64) int {
	if growthFactor < 1.0 {
		growthFactor = DefaultGrowthFactor
	}
	byFactor := int(float64(current)*growthFactor + 0.999999) // ceil
	if byFactor < target {
		return target
	}
	return byFactor
}

// allocate assigns a fresh index, popping the free-list (LIFO) if
// non-empty, else extending next and growing capacity if needed. Caller
// must hold ix.mu for writing. Returns the assigned index and, if capacity
// grew, the new capacity.
func (ix *Indexer) allocate() (int, *int) {
	if n := len(ix.freeList); n > 0 {
		idx := ix.freeList[n-1]
		ix.freeList = ix.freeList[:n-1]
		return idx, nil
	}

	idx := ix.next
	ix.next++

	if ix.next > ix.capacity {
		newCap := growCapacity(ix.capacity, ix.next, ix.growthFactor)
		ix.capacity = newCap
		return idx, &newCap
	}
	return idx, nil
}

// AddNewKey assigns a fresh index to key, failing if key is already mapped.
// Complexity: O(1) amortized.
func (ix *Indexer) AddNewKey(key string) (AssignedIndex, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if _, exists := ix.keyToIndex[key]; exists {
		return AssignedIndex{}, errtax.New("Indexer.AddNewKey", errtax.ErrKeyAlreadyExists).WithKey(key)
	}

	idx, newCap := ix.allocate()
	ix.keyToIndex[key] = idx
	ix.indexToKey[idx] = key
	ix.valid[idx] = struct{}{}

	return AssignedIndex{Index: idx, NewCapacity: newCap}, nil
}

// AddOrReuseKey returns the existing index for key if already mapped
// (NewCapacity is always nil in that case), otherwise behaves exactly like
// AddNewKey.
// Complexity: O(1) amortized.
func (ix *Indexer) AddOrReuseKey(key string) (AssignedIndex, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if idx, exists := ix.keyToIndex[key]; exists {
		return AssignedIndex{Index: idx}, nil
	}

	idx, newCap := ix.allocate()
	ix.keyToIndex[key] = idx
	ix.indexToKey[idx] = key
	ix.valid[idx] = struct{}{}

	return AssignedIndex{Index: idx, NewCapacity: newCap}, nil
}

// IndexForKey returns the index mapped to key, if any.
// Complexity: O(1).
func (ix *Indexer) IndexForKey(key string) (int, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	idx, ok := ix.keyToIndex[key]
	return idx, ok
}

// TryIndexForKey returns the index mapped to key, or ErrKeyNotFound.
// Complexity: O(1).
func (ix *Indexer) TryIndexForKey(key string) (int, error) {
	idx, ok := ix.IndexForKey(key)
	if !ok {
		return 0, errtax.New("Indexer.TryIndexForKey", errtax.ErrKeyNotFound).WithKey(key)
	}
	return idx, nil
}

// IsValidIndex reports whether idx currently names a live slot.
// Complexity: O(1).
func (ix *Indexer) IsValidIndex(idx int) bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	_, ok := ix.valid[idx]
	return ok
}

// TryIndexValidity returns nil if idx is valid, else ErrIndexOutOfBounds.
// Complexity: O(1).
func (ix *Indexer) TryIndexValidity(idx int) error {
	if !ix.IsValidIndex(idx) {
		return errtax.New("Indexer.TryIndexValidity", errtax.ErrIndexOutOfBounds).WithIndex(idx)
	}
	return nil
}

// KeyForIndex returns the key bound to idx, if any.
// Complexity: O(1).
func (ix *Indexer) KeyForIndex(idx int) (string, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	key, ok := ix.indexToKey[idx]
	return key, ok
}

// KeyForIndexUnchecked returns the key bound to idx without validity
// checking; returns "" if idx is not bound. Reserved for inner-loop call
// sites that already guarantee validity, mirroring an unchecked-index
// dispatch tier above this package.
// Complexity: O(1).
func (ix *Indexer) KeyForIndexUnchecked(idx int) string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.indexToKey[idx]
}

// Release removes idx's mapping, if present, pushing idx onto the
// free-list and clearing it from the valid-indices set. Releasing an
// unbound index is a no-op, not an error.
// Complexity: O(1).
func (ix *Indexer) Release(idx int) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.releaseLocked(idx)
}

// ReleaseByKey is Release by key instead of index; a no-op for unknown keys.
// Complexity: O(1).
func (ix *Indexer) ReleaseByKey(key string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	idx, ok := ix.keyToIndex[key]
	if !ok {
		return
	}
	ix.releaseLocked(idx)
}

// releaseLocked does the actual bookkeeping; caller must hold ix.mu.
func (ix *Indexer) releaseLocked(idx int) {
	key, ok := ix.indexToKey[idx]
	if !ok {
		return
	}
	delete(ix.indexToKey, idx)
	delete(ix.keyToIndex, key)
	delete(ix.valid, idx)
	ix.freeList = append(ix.freeList, idx) // LIFO: appended, popped from the tail
}

// MaskWithValidIndices returns a snapshot of currently valid indices, for
// use as the mask argument of unmasked operators. The returned slice is a
// defensive copy: the caller may not mutate Indexer state through it.
// Complexity: O(n) in the number of valid indices.
func (ix *Indexer) MaskWithValidIndices() []int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]int, 0, len(ix.valid))
	for idx := range ix.valid {
		out = append(out, idx)
	}
	return out
}
