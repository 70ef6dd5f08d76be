package datacenter

import (
	"fmt"
	"math"

	"github.com/scigolib/datacenter/internal/core"
)

// ValueKind identifies which variant of the typed-value union a TypedValue
// holds.
type ValueKind int

const (
	// KindNull marks the sentinel "no value" result returned by Attr when
	// the requested attribute is absent.
	KindNull ValueKind = iota
	KindInt32
	KindSingle
	KindBoolean
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt32:
		return "int32"
	case KindSingle:
		return "single"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// TypedValue is an attribute value tagged by ValueKind. The zero value is
// KindNull. Floats are bit-preserved: reading a Single never canonicalizes
// NaN payloads.
type TypedValue struct {
	kind ValueKind
	i32  int32
	f32  float32
	b    bool
	s    string
}

// Kind returns the value's tag.
func (v TypedValue) Kind() ValueKind { return v.kind }

// IsNull reports whether v is the "no value" sentinel.
func (v TypedValue) IsNull() bool { return v.kind == KindNull }

// Int32Value builds a TypedValue holding a 32-bit signed integer.
func Int32Value(n int32) TypedValue { return TypedValue{kind: KindInt32, i32: n} }

// SingleValue builds a TypedValue holding a single-precision float, bit for
// bit as given.
func SingleValue(f float32) TypedValue { return TypedValue{kind: KindSingle, f32: f} }

// BooleanValue builds a TypedValue holding a boolean.
func BooleanValue(b bool) TypedValue { return TypedValue{kind: KindBoolean, b: b} }

// StringValue builds a TypedValue holding a string.
func StringValue(s string) TypedValue { return TypedValue{kind: KindString, s: s} }

// NullValue is the sentinel returned for an absent attribute.
func NullValue() TypedValue { return TypedValue{kind: KindNull} }

// Int32 returns the held int32 and true, or (0, false) if v is not KindInt32.
func (v TypedValue) Int32() (int32, bool) {
	if v.kind != KindInt32 {
		return 0, false
	}
	return v.i32, true
}

// Single returns the held float32 and true, or (0, false) if v is not KindSingle.
func (v TypedValue) Single() (float32, bool) {
	if v.kind != KindSingle {
		return 0, false
	}
	return v.f32, true
}

// Boolean returns the held bool and true, or (false, false) if v is not KindBoolean.
func (v TypedValue) Boolean() (bool, bool) {
	if v.kind != KindBoolean {
		return false, false
	}
	return v.b, true
}

// String returns the held string and true, or ("", false) if v is not KindString.
func (v TypedValue) String() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// decodeAttributeValue applies the (type_code, ext_code, primitive) decoding
// table. For string-typed attributes, stringAddr must be the Address
// re-read from the same 4 bytes as primitive.
func decodeAttributeValue(rec core.AttributeRecord, stringAddr core.Address, values *core.ValueTable) (TypedValue, error) {
	typeCode, extCode := core.DecodeTypeWord(rec.TypeWord)

	switch {
	case typeCode == 1 && extCode == 0:
		return Int32Value(int32(rec.Primitive)), nil
	case typeCode == 1 && extCode == 1:
		return BooleanValue(rec.Primitive != 0), nil
	case typeCode == 2 && extCode == 0:
		return SingleValue(math.Float32frombits(rec.Primitive)), nil
	case typeCode == 3:
		s, ok := values.Lookup(stringAddr)
		if !ok {
			return TypedValue{}, core.NewStructuralError("attribute string value",
				"no value at address (%d,%d)", stringAddr.Segment, stringAddr.Index)
		}
		return StringValue(s), nil
	default:
		return TypedValue{}, core.NewStructuralError("attribute type word",
			"unsupported (type_code=%d, ext_code=%d)", typeCode, extCode)
	}
}

// typedValueFromFallback builds a TypedValue matching AttrOrDefault's
// fallback argument, which must be one of int32, float32, bool, or string.
func typedValueFromFallback(fallback interface{}) (TypedValue, error) {
	switch f := fallback.(type) {
	case int32:
		return Int32Value(f), nil
	case float32:
		return SingleValue(f), nil
	case bool:
		return BooleanValue(f), nil
	case string:
		return StringValue(f), nil
	default:
		return TypedValue{}, &core.InvalidArgumentError{
			Reason: fmt.Sprintf("unsupported fallback type %T, want int32/float32/bool/string", fallback),
		}
	}
}
