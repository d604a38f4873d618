package types

import (
	"math"
	"strconv"
	"strings"
)

// formatFloat renders a float with invariant formatting: shortest
// round-trip digits, '.' as the decimal separator. Magnitudes in
// [1e-5, 1e15) and zero use fixed notation, everything else an exponent
// such as 1E+15 or 1E-07.
func formatFloat(x float64, bitSize int) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "+Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	}
	if abs := math.Abs(x); abs == 0 || (abs >= 1e-5 && abs < 1e15) {
		return strconv.FormatFloat(x, 'f', -1, bitSize)
	}
	return strconv.FormatFloat(x, 'E', -1, bitSize)
}

// parseFloat64 parses invariant-culture floating point text: optional sign,
// digits with a '.' separator, optional exponent, or Inf/Infinity/NaN.
// Go-only syntax (digit separators, hex mantissas) is rejected.
func parseFloat64(s string) (float64, bool) {
	t := strings.TrimSpace(s)
	if t == "" || strings.ContainsAny(t, "_xXpP") {
		return 0, false
	}
	x, err := strconv.ParseFloat(t, 64)
	if err != nil {
		// out of range still yields ±Inf, which is a valid double
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return x, true
		}
		return 0, false
	}
	return x, true
}
