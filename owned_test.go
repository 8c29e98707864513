package foundation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOwned_Release(t *testing.T) {
	require := require.New(t)

	owned := NewOwned(&myStruct{})
	require.True(owned.IsValid())
	ms := owned.Get()
	require.Equal(uint32(1), ms.RetainCount())

	owned.Release()
	require.False(owned.IsValid())
	require.Equal(1, ms.cleanups)

	// the reference is given up once only
	require.PanicsWithValue("owned reference is given up already", owned.Release)
	require.Panics(func() { owned.Get() })
	require.Panics(func() { owned.Take() })
	require.Panics(func() { owned.Autorelease() })
}

func TestOwned_Autorelease(t *testing.T) {
	require := require.New(t)
	resetSharedPoolManager(t)

	var borrowed *myStruct
	WithPool(func() {
		owned := NewOwned(&myStruct{})
		borrowed = owned.Autorelease()
		require.False(owned.IsValid())

		// valid until the pool is drained
		require.Equal(uint32(1), borrowed.RetainCount())
		require.Zero(borrowed.cleanups)
	})
	require.Equal(1, borrowed.cleanups)
}

func TestOwned_Take(t *testing.T) {
	require := require.New(t)

	// adopt the reference the caller owns, e.g. a copy
	owned := Own(newMyStruct())
	ms := owned.Take()
	require.False(owned.IsValid())
	require.Equal(uint32(1), ms.RetainCount())
	require.Zero(ms.cleanups)

	ms.Release()
	require.Equal(1, ms.cleanups)

	// destroyed objects can not be adopted
	require.Panics(func() { Own(ms) })
}
