package types

import "cmp"

// Compare orders a and b, returning -1, 0 or +1. Nothing sorts before
// everything else. Compare(a, b) == 0 exactly when Equal(a, b), and
// Compare(b, a) == -Compare(a, b).
//
// Ordering a number or a string against a non-nil object, or two distinct
// objects, is not defined and fails with E_COMPARE.
func Compare(a, b Value) (int, error) {
	if a.class() > b.class() {
		c, err := compareOrdered(b, a)
		return -c, err
	}
	return compareOrdered(a, b)
}

// compareOrdered requires a.class() <= b.class()
func compareOrdered(a, b Value) (int, error) {
	switch a.class() {
	case classNone:
		if b.class() == classNone {
			return 0, nil
		}
		return -1, nil

	case classBool:
		return compareBools(a.b, b.AsBool()), nil

	case classNumber:
		switch b.class() {
		case classNumber:
			return compareNumbers(a, b), nil
		case classString:
			return compareNumberIndex(a, b.comparisonIndex()), nil
		}
		if b.ref == nil {
			return compareNumberIndex(a, 0), nil
		}

	case classString:
		if b.class() == classString {
			return compareStrings(a, b), nil
		}
		if b.ref == nil {
			if a.null {
				return 0, nil
			}
			return 1, nil
		}

	default:
		switch {
		case sameRef(a.ref, b.ref):
			return 0, nil
		case a.ref == nil:
			return -1, nil
		case b.ref == nil:
			return 1, nil
		}
	}

	return 0, compareError(a, b)
}

func compareBools(a, b bool) int {
	return cmp.Compare(boolInt(a), boolInt(b))
}

// Compare is the method form of the package-level Compare
func (v Value) Compare(other Value) (int, error) {
	return Compare(v, other)
}

// Less reports a < b
func Less(a, b Value) (bool, error) {
	c, err := Compare(a, b)
	return c < 0, err
}

// LessOrEqual reports a <= b
func LessOrEqual(a, b Value) (bool, error) {
	c, err := Compare(a, b)
	return err == nil && c <= 0, err
}

// Greater reports a > b
func Greater(a, b Value) (bool, error) {
	c, err := Compare(a, b)
	return c > 0, err
}

// GreaterOrEqual reports a >= b
func GreaterOrEqual(a, b Value) (bool, error) {
	c, err := Compare(a, b)
	return err == nil && c >= 0, err
}
