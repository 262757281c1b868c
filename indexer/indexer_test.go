package indexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalg/errtax"
	"github.com/katalvlaran/graphalg/indexer"
)

// TestIndexer_AssignAndLookup verifies the basic key<->index bijection.
func TestIndexer_AssignAndLookup(t *testing.T) {
	ix := indexer.New()

	assigned, err := ix.AddNewKey("a")
	require.NoError(t, err)
	require.Equal(t, 0, assigned.Index)

	idx, err := ix.TryIndexForKey("a")
	require.NoError(t, err)
	require.Equal(t, assigned.Index, idx)

	key, ok := ix.KeyForIndex(assigned.Index)
	require.True(t, ok)
	require.Equal(t, "a", key)
}

// TestIndexer_DuplicateKeyRejected verifies S6-style duplicate add rejection.
func TestIndexer_DuplicateKeyRejected(t *testing.T) {
	ix := indexer.New()
	_, err := ix.AddNewKey("a")
	require.NoError(t, err)

	_, err = ix.AddNewKey("a")
	require.ErrorIs(t, err, errtax.ErrKeyAlreadyExists)

	// Value at the existing slot is unaffected: the key still resolves to
	// the original index.
	idx, ok := ix.IndexForKey("a")
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

// TestIndexer_AddOrReuseKey verifies idempotent reuse semantics.
func TestIndexer_AddOrReuseKey(t *testing.T) {
	ix := indexer.New()
	first, err := ix.AddOrReuseKey("a")
	require.NoError(t, err)

	second, err := ix.AddOrReuseKey("a")
	require.NoError(t, err)
	require.Equal(t, first.Index, second.Index)
	require.Nil(t, second.NewCapacity)
}

// TestIndexer_ReleaseThenReuse verifies that reuse after free picks
// the most recently released slot (LIFO).
func TestIndexer_ReleaseThenReuse(t *testing.T) {
	ix := indexer.New()
	a, err := ix.AddNewKey("a")
	require.NoError(t, err)
	b, err := ix.AddNewKey("b")
	require.NoError(t, err)
	c, err := ix.AddNewKey("c")
	require.NoError(t, err)

	ix.ReleaseByKey("b")
	require.False(t, ix.IsValidIndex(b.Index))

	d, err := ix.AddNewKey("d")
	require.NoError(t, err)
	require.Equal(t, b.Index, d.Index, "LIFO reuse must hand back the most recently freed slot")

	// 'a' and 'c' remain untouched.
	require.True(t, ix.IsValidIndex(a.Index))
	require.True(t, ix.IsValidIndex(c.Index))
}

// TestIndexer_ReleaseUnknownIsNoop verifies that releasing an unknown
// key/index never errors.
func TestIndexer_ReleaseUnknownIsNoop(t *testing.T) {
	ix := indexer.New()
	require.NotPanics(t, func() {
		ix.Release(42)
		ix.ReleaseByKey("nope")
	})
}

// TestIndexer_GrowthReportsNewCapacity verifies that allocating
// past the preallocated capacity grows it and reports the new capacity.
func TestIndexer_GrowthReportsNewCapacity(t *testing.T) {
	ix := indexer.NewWithCapacity(1)
	require.Equal(t, 1, ix.Capacity())

	first, err := ix.AddNewKey("a")
	require.NoError(t, err)
	require.Nil(t, first.NewCapacity, "first assignment fits inside the preallocated capacity")

	second, err := ix.AddNewKey("b")
	require.NoError(t, err)
	require.NotNil(t, second.NewCapacity, "second assignment must force a grow")
	require.GreaterOrEqual(t, *second.NewCapacity, 2)
	require.Equal(t, *second.NewCapacity, ix.Capacity())
}

// TestIndexer_FreeListPurity verifies that no slot is both
// on the free-list and in the valid-indices mask.
func TestIndexer_FreeListPurity(t *testing.T) {
	ix := indexer.New()
	a, err := ix.AddNewKey("a")
	require.NoError(t, err)
	ix.Release(a.Index)

	mask := ix.MaskWithValidIndices()
	for _, idx := range mask {
		require.NotEqual(t, a.Index, idx)
	}
}
