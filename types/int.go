package types

import (
	"math"
	"strconv"
	"strings"
)

// fromInt64 keeps values that fit in int32 as integers and widens the rest
// to doubles
func fromInt64(n int64) Value {
	if n >= math.MinInt32 && n <= math.MaxInt32 {
		return FromInt32(int32(n))
	}
	return FromFloat64(float64(n))
}

// parseInt32 accepts an optional sign followed by decimal digits, with
// surrounding whitespace ignored
func parseInt32(s string) (int32, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(t, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// truncInt32 truncates toward zero. NaN, infinities and values outside the
// int32 range have no integer form.
func truncInt32(x float64) (int32, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	t := math.Trunc(x)
	if t < math.MinInt32 || t > math.MaxInt32 {
		return 0, false
	}
	return int32(t), true
}
