package types

import (
	"fmt"
	"math"
)

// AsBool is total. Numbers are true from 1 upward, so 0.5 and NaN are
// false; plain strings are true when non-empty; objects when non-nil.
func (v Value) AsBool() bool {
	switch v.effective() {
	case TYPE_BOOL:
		return v.b
	case TYPE_INT:
		return v.i >= 1
	case TYPE_FLOAT:
		return v.f >= 1
	case TYPE_DOUBLE:
		return v.d >= 1
	case TYPE_STR:
		return !v.null && v.s != ""
	case TYPE_OBJ:
		return v.ref != nil
	default:
		return false
	}
}

// AsInt32 coerces v to an int32. Floats truncate toward zero; plain
// strings yield their comparison index.
func (v Value) AsInt32() (int32, error) {
	switch v.effective() {
	case TYPE_NONE:
		return 0, nil
	case TYPE_BOOL:
		return boolInt(v.b), nil
	case TYPE_INT:
		return v.i, nil
	case TYPE_FLOAT:
		if i, ok := truncInt32(float64(v.f)); ok {
			return i, nil
		}
	case TYPE_DOUBLE:
		if i, ok := truncInt32(v.d); ok {
			return i, nil
		}
	case TYPE_STR:
		if n := v.comparisonIndex(); n <= math.MaxInt32 {
			return int32(n), nil
		}
	case TYPE_OBJ:
		if v.ref == nil {
			return 0, nil
		}
	}
	return 0, castError("AsInt32", v, TYPE_INT)
}

// AsFloat32 coerces v to a float32. Doubles outside the float32 range
// become infinities.
func (v Value) AsFloat32() (float32, error) {
	switch v.effective() {
	case TYPE_FLOAT:
		return v.f, nil
	case TYPE_DOUBLE:
		return float32(v.d), nil
	}
	d, err := v.asFloat("AsFloat32", TYPE_FLOAT)
	return float32(d), err
}

// AsFloat64 coerces v to a float64
func (v Value) AsFloat64() (float64, error) {
	return v.asFloat("AsFloat64", TYPE_DOUBLE)
}

func (v Value) asFloat(op string, target TypeCode) (float64, error) {
	switch v.effective() {
	case TYPE_NONE:
		return 0, nil
	case TYPE_BOOL:
		return float64(boolInt(v.b)), nil
	case TYPE_INT:
		return float64(v.i), nil
	case TYPE_FLOAT:
		return float64(v.f), nil
	case TYPE_DOUBLE:
		return v.d, nil
	case TYPE_STR:
		return float64(v.comparisonIndex()), nil
	case TYPE_OBJ:
		if v.ref == nil {
			return 0, nil
		}
	}
	return 0, castError(op, v, target)
}

// AsString returns the text form of v. ok is false for the null marker:
// Nothing, the null string and the nil object.
func (v Value) AsString() (s string, ok bool) {
	switch v.typ {
	case TYPE_NONE:
		return "", false
	case TYPE_BOOL:
		return formatBool(v.b), true
	case TYPE_STR:
		return v.s, !v.null
	case TYPE_OBJ:
		if v.ref == nil {
			return "", false
		}
		return fmt.Sprint(v.ref), true
	default:
		return v.String(), true
	}
}
