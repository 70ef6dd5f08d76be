package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroAddress(t *testing.T) {
	require.True(t, ZeroAddress.IsZero())
	require.True(t, Address{}.IsZero())
	require.False(t, Address{Segment: 1}.IsZero())
	require.False(t, Address{Index: 1}.IsZero())
}

func TestReadAddress(t *testing.T) {
	buf := []byte{0x02, 0x00, 0x07, 0x00}
	addr := ReadAddress(buf)
	require.Equal(t, Address{Segment: 2, Index: 7}, addr)
}

func TestExtract(t *testing.T) {
	// word = 0b1011_0110_0101_1101: low 2 bits, next 14 bits.
	word := uint16(0b1011011001011101)
	require.Equal(t, uint16(0b01), Extract(word, 0, 2))
	require.Equal(t, uint16(word>>2), Extract(word, 2, 14))
}

func TestDecodeTypeWord(t *testing.T) {
	// type_code=3 (0b11), ext_code=5 (0b00000000000101) at bits [2,16).
	word := uint16(3) | uint16(5)<<2
	typeCode, extCode := DecodeTypeWord(word)
	require.Equal(t, uint16(3), typeCode)
	require.Equal(t, uint16(5), extCode)
}

func TestDecodeExtensionWord(t *testing.T) {
	// flags=0 (required), ext_index=200 at bits [4,16).
	word := uint16(200) << 4
	flags, extIndex := DecodeExtensionWord(word)
	require.Equal(t, uint16(0), flags)
	require.Equal(t, uint16(200), extIndex)
}

func TestDecodeExtensionWord_NonZeroFlags(t *testing.T) {
	word := uint16(0b1111)
	flags, extIndex := DecodeExtensionWord(word)
	require.Equal(t, uint16(0b1111), flags)
	require.Equal(t, uint16(0), extIndex)
}
