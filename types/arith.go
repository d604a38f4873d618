package types

// ============================================================================
// ARITHMETIC
// ============================================================================

// Negate returns the logical NOT of a boolean and the negation of a number,
// keeping the operand's width. Strings tagged with a number or a boolean
// negate as that type. Everything else is returned unchanged.
func (v Value) Negate() Value {
	switch v.effective() {
	case TYPE_BOOL:
		return FromBool(!v.b)
	case TYPE_INT:
		return FromInt32(-v.i)
	case TYPE_FLOAT:
		return FromFloat32(-v.f)
	case TYPE_DOUBLE:
		return FromFloat64(-v.d)
	default:
		return v
	}
}

// Add combines v and other. Nothing is the identity on both sides, booleans
// combine with OR, a plain string on either side concatenates and numbers
// add with promotion to the wider type. Int32 addition wraps.
func (v Value) Add(other Value) Value {
	switch {
	case v.IsNothing():
		return other
	case other.IsNothing():
		return v
	}

	if v.effective() == TYPE_BOOL {
		if other.effective() == TYPE_BOOL {
			return FromBool(v.b || other.b)
		}
		return other
	}
	if other.effective() == TYPE_BOOL {
		return v
	}

	if v.isPlainString() || other.isPlainString() {
		left, _ := v.AsString()
		right, _ := other.AsString()
		return FromString(left + right)
	}

	if v.IsNumeric() && other.IsNumeric() {
		return arith(v, other,
			func(a, b int32) int32 { return a + b },
			func(a, b float32) float32 { return a + b },
			func(a, b float64) float64 { return a + b },
		)
	}

	return v
}

// Subtract removes other from v. Nothing on the left yields Nothing and on
// the right yields v; booleans combine as v AND NOT other; numbers subtract
// with promotion. For any other pair the result is Zero when the operands
// are equal and v otherwise.
func (v Value) Subtract(other Value) Value {
	switch {
	case v.IsNothing():
		return Nothing
	case other.IsNothing():
		return v
	}

	if v.effective() == TYPE_BOOL {
		if other.effective() == TYPE_BOOL {
			return FromBool(v.b && !other.b)
		}
		return other
	}
	if other.effective() == TYPE_BOOL {
		return v
	}

	if v.IsNumeric() && other.IsNumeric() {
		return arith(v, other,
			func(a, b int32) int32 { return a - b },
			func(a, b float32) float32 { return a - b },
			func(a, b float64) float64 { return a - b },
		)
	}

	if Equal(v, other) {
		return Zero
	}
	return v
}

// arith applies a numeric operator after promotion: Int32 op Int32 stays
// Int32, Float32 against Int32 or Float32 stays Float32, anything involving
// a Float64 becomes Float64.
func arith(a, b Value,
	intOp func(int32, int32) int32,
	floatOp func(float32, float32) float32,
	doubleOp func(float64, float64) float64,
) Value {
	ta, tb := a.effective(), b.effective()

	switch {
	case ta == TYPE_INT && tb == TYPE_INT:
		return FromInt32(intOp(a.i, b.i))
	case ta == TYPE_DOUBLE || tb == TYPE_DOUBLE:
		return FromFloat64(doubleOp(wideFloat(a), wideFloat(b)))
	default:
		return FromFloat32(floatOp(narrowFloat(a), narrowFloat(b)))
	}
}
