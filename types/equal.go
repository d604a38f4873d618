package types

import "cmp"

// Equal reports lenient equality. Operands of different types are compared
// through the coercions in convert.go; the result is the same for (a, b)
// and (b, a). Equal never fails.
func Equal(a, b Value) bool {
	if a.class() > b.class() {
		a, b = b, a
	}

	switch a.class() {
	case classNone:
		return b.class() == classNone

	case classBool:
		return a.b == b.AsBool()

	case classNumber:
		switch b.class() {
		case classNumber:
			return compareNumbers(a, b) == 0
		case classString:
			return compareNumberIndex(a, b.comparisonIndex()) == 0
		default:
			return b.ref == nil && compareNumberIndex(a, 0) == 0
		}

	case classString:
		if b.class() == classString {
			return compareStrings(a, b) == 0
		}
		// a plain string is never the same reference as an object
		return a.null && b.ref == nil

	default:
		return sameRef(a.ref, b.ref)
	}
}

// Equal is the method form of the package-level Equal
func (v Value) Equal(other Value) bool {
	return Equal(v, other)
}

// EqualStrict is Equal restricted to operands of the same type. A string
// tagged as an Int32 only strictly matches another string tagged the same
// way. Nothing on either side falls back to lenient equality.
func EqualStrict(a, b Value) (bool, error) {
	if a.IsNothing() || b.IsNothing() {
		return Equal(a, b), nil
	}
	if a.typ != b.typ || a.ParsedType() != b.ParsedType() {
		return false, &Error{Code: E_TYPE, Op: "strict equality", Left: a, Right: b}
	}
	return Equal(a, b), nil
}

// compareNumbers orders two numeric operands. Two Int32s compare as
// integers; anything against a Float32 compares at float32 precision;
// everything else compares as float64. NaN sorts first and equals NaN.
func compareNumbers(a, b Value) int {
	ta, tb := a.effective(), b.effective()

	switch {
	case ta == TYPE_INT && tb == TYPE_INT:
		return cmp.Compare(a.i, b.i)
	case ta == TYPE_FLOAT || tb == TYPE_FLOAT:
		return cmp.Compare(narrowFloat(a), narrowFloat(b))
	}
	return cmp.Compare(wideFloat(a), wideFloat(b))
}

// compareNumberIndex orders a numeric operand against a string's
// comparison index
func compareNumberIndex(a Value, n int) int {
	if a.effective() == TYPE_INT {
		return cmp.Compare(int64(a.i), int64(n))
	}
	return cmp.Compare(wideFloat(a), float64(n))
}

func narrowFloat(v Value) float32 {
	if v.effective() == TYPE_FLOAT {
		return v.f
	}
	return float32(wideFloat(v))
}

func wideFloat(v Value) float64 {
	switch v.effective() {
	case TYPE_INT:
		return float64(v.i)
	case TYPE_FLOAT:
		return float64(v.f)
	default:
		return v.d
	}
}
