package types

import (
	"fmt"
	"strconv"
)

// Value is a dynamically typed scalar: a boolean, int32, float32, float64,
// string or opaque object reference. The zero Value is the "nothing" state.
//
// A Value built from a string keeps the string as its payload and, when the
// text reads as a boolean literal or a number, also records the parsed value.
// Comparisons and arithmetic then use the parsed value instead of the text.
//
// Values are immutable; every operation returns a new Value.
type Value struct {
	typ    TypeCode // primary tag
	parsed TypeCode // TYPE_STR only: type recovered from the text, or TYPE_NONE
	b      bool
	i      int32
	f      float32
	d      float64
	s      string
	null   bool // TYPE_STR only: the null string
	ref    any  // TYPE_OBJ payload
}

var (
	// Nothing is the empty value
	Nothing = Value{}

	// Zero is the integer 0
	Zero = FromInt32(0)
)

// Empty returns the "nothing" value
func Empty() Value {
	return Nothing
}

// FromBool creates a boolean value
func FromBool(b bool) Value {
	return Value{typ: TYPE_BOOL, b: b}
}

// FromInt32 creates an integer value
func FromInt32(i int32) Value {
	return Value{typ: TYPE_INT, i: i}
}

// FromFloat32 creates a single precision value
func FromFloat32(f float32) Value {
	return Value{typ: TYPE_FLOAT, f: f}
}

// FromFloat64 creates a double precision value
func FromFloat64(d float64) Value {
	return Value{typ: TYPE_DOUBLE, d: d}
}

// FromObject wraps an opaque reference. Go strings, booleans, numbers and
// Values are routed to their typed constructors, so an object payload is
// never a plain string. A nil reference is a valid object meaning "no object".
func FromObject(ref any) Value {
	if ref == nil {
		return Value{typ: TYPE_OBJ}
	}
	if v, ok := fromPrimitive(ref); ok {
		return v
	}
	return Value{typ: TYPE_OBJ, ref: ref}
}

// FromAny converts a Go value into a Value. nil becomes Nothing; anything
// without a primitive mapping becomes an object.
func FromAny(x any) Value {
	if x == nil {
		return Nothing
	}
	return FromObject(x)
}

// fromPrimitive maps Go primitives onto typed constructors. Wider integers
// that do not fit int32 become doubles.
func fromPrimitive(x any) (Value, bool) {
	switch t := x.(type) {
	case Value:
		return t, true
	case *Value:
		if t == nil {
			return Nothing, true
		}
		return *t, true
	case bool:
		return FromBool(t), true
	case int32:
		return FromInt32(t), true
	case int8:
		return FromInt32(int32(t)), true
	case int16:
		return FromInt32(int32(t)), true
	case uint8:
		return FromInt32(int32(t)), true
	case uint16:
		return FromInt32(int32(t)), true
	case int:
		return fromInt64(int64(t)), true
	case int64:
		return fromInt64(t), true
	case uint32:
		return fromInt64(int64(t)), true
	case uint:
		if uint64(t) > 1<<53 {
			return FromFloat64(float64(t)), true
		}
		return fromInt64(int64(t)), true
	case uint64:
		if t > 1<<53 {
			return FromFloat64(float64(t)), true
		}
		return fromInt64(int64(t)), true
	case float32:
		return FromFloat32(t), true
	case float64:
		return FromFloat64(t), true
	case string:
		return FromString(t), true
	case *string:
		return FromStringPtr(t), true
	default:
		return Value{}, false
	}
}

// Type returns the primary type code
func (v Value) Type() TypeCode {
	return v.typ
}

// ParsedType returns the type recovered from a string payload, or TYPE_NONE
// for plain strings and non-string values
func (v Value) ParsedType() TypeCode {
	if v.typ != TYPE_STR {
		return TYPE_NONE
	}
	return v.parsed
}

// effective is the type that drives coercion and comparison rules
func (v Value) effective() TypeCode {
	if v.typ == TYPE_STR && v.parsed != TYPE_NONE {
		return v.parsed
	}
	return v.typ
}

// IsNothing reports whether v is the empty value
func (v Value) IsNothing() bool {
	return v.typ == TYPE_NONE
}

// IsString reports whether v holds a string payload, tagged or not
func (v Value) IsString() bool {
	return v.typ == TYPE_STR
}

// isPlainString reports whether v is a string without a parsed type
func (v Value) isPlainString() bool {
	return v.typ == TYPE_STR && v.parsed == TYPE_NONE
}

// IsNumeric reports whether v is a number or a string holding one
func (v Value) IsNumeric() bool {
	return v.effective().IsNumeric()
}

// HasValue is false for Nothing, the null string and the nil object
func (v Value) HasValue() bool {
	switch v.typ {
	case TYPE_NONE:
		return false
	case TYPE_STR:
		return v.parsed != TYPE_NONE || !v.null
	case TYPE_OBJ:
		return v.ref != nil
	default:
		return true
	}
}

// Boxed returns the payload as a Go value: nil, bool, int32, float32,
// float64, string or the object reference. Tagged strings box as their text.
func (v Value) Boxed() any {
	switch v.typ {
	case TYPE_BOOL:
		return v.b
	case TYPE_INT:
		return v.i
	case TYPE_FLOAT:
		return v.f
	case TYPE_DOUBLE:
		return v.d
	case TYPE_STR:
		if v.null {
			return nil
		}
		return v.s
	case TYPE_OBJ:
		return v.ref
	default:
		return nil
	}
}

// TypeName returns the debug tag of v, e.g. "[Int32]" or "[Int32 from String]"
func (v Value) TypeName() string {
	if v.typ == TYPE_NONE {
		return "None"
	}
	if v.typ == TYPE_STR && v.parsed != TYPE_NONE {
		return "[" + v.parsed.String() + " from String]"
	}
	return "[" + v.typ.String() + "]"
}

// String renders v for display. Nothing renders as "Unknown", the null
// string as "null" and the empty string as "Empty"; tagged strings render
// their text verbatim.
func (v Value) String() string {
	switch v.typ {
	case TYPE_NONE:
		return "Unknown"
	case TYPE_BOOL:
		return formatBool(v.b)
	case TYPE_INT:
		return strconv.FormatInt(int64(v.i), 10)
	case TYPE_FLOAT:
		return formatFloat(float64(v.f), 32)
	case TYPE_DOUBLE:
		return formatFloat(v.d, 64)
	case TYPE_STR:
		if v.parsed != TYPE_NONE {
			return v.s
		}
		if v.null {
			return "null"
		}
		if v.s == "" {
			return "Empty"
		}
		return v.s
	case TYPE_OBJ:
		if v.ref == nil {
			return "null"
		}
		return fmt.Sprint(v.ref)
	default:
		return "Unknown"
	}
}

// GoString implements fmt.GoStringer for %#v
func (v Value) GoString() string {
	switch v.typ {
	case TYPE_NONE:
		return "None"
	case TYPE_STR:
		if v.null {
			return v.TypeName() + " null"
		}
		return v.TypeName() + " " + strconv.Quote(v.s)
	default:
		return v.TypeName() + " " + v.String()
	}
}
