package types

// FromString creates a string value and tags it with the type its text
// reads as. The text is tried as a boolean literal, then as an int32, then
// as a double; the first match wins.
func FromString(s string) Value {
	v := Value{typ: TYPE_STR, s: s}

	if b, ok := parseBoolLiteral(s); ok {
		v.parsed = TYPE_BOOL
		v.b = b
		return v
	}

	if i, ok := parseInt32(s); ok {
		v.parsed = TYPE_INT
		v.i = i
		return v
	}

	if d, ok := parseFloat64(s); ok {
		v.parsed = TYPE_DOUBLE
		v.d = d
		return v
	}

	return v
}

// FromStringPtr creates a string value; nil yields the null string
func FromStringPtr(s *string) Value {
	if s == nil {
		return NullString()
	}
	return FromString(*s)
}

// NullString returns the null string. It differs from "" in equality,
// ordering and HasValue.
func NullString() Value {
	return Value{typ: TYPE_STR, null: true}
}

// comparisonIndex is the number a plain string stands for when it meets a
// number or a boolean: its length in bytes, 0 for null and "".
func (v Value) comparisonIndex() int {
	return len(v.s)
}

// compareStrings orders plain strings ordinally; the null string sorts
// before every other string
func compareStrings(a, b Value) int {
	switch {
	case a.null && b.null:
		return 0
	case a.null:
		return -1
	case b.null:
		return 1
	case a.s < b.s:
		return -1
	case a.s > b.s:
		return 1
	default:
		return 0
	}
}
