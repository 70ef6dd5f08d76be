package datacenter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/datacenter/internal/core"
)

func TestTypedValue_Accessors(t *testing.T) {
	require.True(t, NullValue().IsNull())

	v := Int32Value(42)
	n, ok := v.Int32()
	require.True(t, ok)
	require.EqualValues(t, 42, n)
	_, ok = v.Single()
	require.False(t, ok)

	b := BooleanValue(true)
	bv, ok := b.Boolean()
	require.True(t, ok)
	require.True(t, bv)

	s := StringValue("hi")
	sv, ok := s.String()
	require.True(t, ok)
	require.Equal(t, "hi", sv)
}

func TestTypedValue_SingleNaNPreserved(t *testing.T) {
	bits := uint32(0x7fc00001) // a specific NaN payload, not the canonical one
	v := SingleValue(math.Float32frombits(bits))
	f, ok := v.Single()
	require.True(t, ok)
	require.Equal(t, bits, math.Float32bits(f))
}

func TestDecodeAttributeValue_UnsupportedCombination(t *testing.T) {
	rec := core.AttributeRecord{NameIndexPlusOne: 1, TypeWord: typeWord(1, 5), Primitive: 0}
	_, err := decodeAttributeValue(rec, core.Address{}, core.NewValueTable(nil))
	require.Error(t, err)
}

func TestDecodeAttributeValue_StringMissing(t *testing.T) {
	rec := core.AttributeRecord{NameIndexPlusOne: 1, TypeWord: typeWord(3, 0), Primitive: 0}
	_, err := decodeAttributeValue(rec, core.Address{Segment: 9, Index: 9}, core.NewValueTable(nil))
	require.Error(t, err)
}

func TestTypedValueFromFallback_Unsupported(t *testing.T) {
	_, err := typedValueFromFallback(3.14) // float64, not float32
	require.Error(t, err)
	var invalidErr *core.InvalidArgumentError
	require.ErrorAs(t, err, &invalidErr)
}
