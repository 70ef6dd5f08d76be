package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueTable_Lookup(t *testing.T) {
	vt := NewValueTable(map[Address]string{
		{Segment: 1, Index: 2}: "hi",
	})

	s, ok := vt.Lookup(Address{Segment: 1, Index: 2})
	require.True(t, ok)
	require.Equal(t, "hi", s)

	_, ok = vt.Lookup(Address{Segment: 9, Index: 9})
	require.False(t, ok)
}

func TestValueTable_Nil(t *testing.T) {
	vt := NewValueTable(nil)
	_, ok := vt.Lookup(Address{})
	require.False(t, ok)
}
