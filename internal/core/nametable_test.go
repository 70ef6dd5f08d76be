package core

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestNameTable_Lookup(t *testing.T) {
	nt := NewNameTable([]string{"alpha", "beta", "gamma"})

	name, ok := nt.Lookup(1)
	require.True(t, ok)
	require.Equal(t, "beta", name)

	_, ok = nt.Lookup(3)
	require.False(t, ok)

	_, ok = nt.Lookup(-1)
	require.False(t, ok)

	require.Equal(t, 3, nt.Len())
}

func TestNameTable_LookupByName(t *testing.T) {
	nt := NewNameTable([]string{"alpha", "beta", "gamma"})

	idx, ok := nt.LookupByName("gamma")
	require.True(t, ok)
	require.Equal(t, 2, idx)

	_, ok = nt.LookupByName("delta")
	require.False(t, ok)
}

func TestNameTable_LookupByHash(t *testing.T) {
	nt := NewNameTable([]string{"alpha", "beta"})

	h := xxhash.Sum64String("beta")
	indices := nt.LookupByHash(h)
	require.Equal(t, []int{1}, indices)

	require.Empty(t, nt.LookupByHash(xxhash.Sum64String("not-present")))
}
