package types

import "strings"

// Canonical boolean literals
const (
	TrueString  = "True"
	FalseString = "False"
)

func formatBool(b bool) string {
	if b {
		return TrueString
	}
	return FalseString
}

// parseBoolLiteral matches "true" and "false" case-insensitively. The text
// is not trimmed.
func parseBoolLiteral(s string) (bool, bool) {
	if strings.EqualFold(s, TrueString) {
		return true, true
	}
	if strings.EqualFold(s, FalseString) {
		return false, true
	}
	return false, false
}

// boolInt is the integer form of a boolean
func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
