package types

// ErrorCode classifies a failed Value operation
type ErrorCode int

const (
	E_NONE    ErrorCode = 0
	E_CAST    ErrorCode = 1 // coercion to a number is not defined for the operand
	E_COMPARE ErrorCode = 2 // ordering is not defined for the operands
	E_TYPE    ErrorCode = 3 // strict equality across different types
	E_INVARG  ErrorCode = 4 // invalid property key
)

// String returns the name of the error code
func (e ErrorCode) String() string {
	switch e {
	case E_NONE:
		return "E_NONE"
	case E_CAST:
		return "E_CAST"
	case E_COMPARE:
		return "E_COMPARE"
	case E_TYPE:
		return "E_TYPE"
	case E_INVARG:
		return "E_INVARG"
	default:
		return "E_UNKNOWN"
	}
}

// Message returns a human-readable message for an error code
func (e ErrorCode) Message() string {
	switch e {
	case E_NONE:
		return "No error"
	case E_CAST:
		return "Invalid cast"
	case E_COMPARE:
		return "Unsupported comparison"
	case E_TYPE:
		return "Type mismatch"
	case E_INVARG:
		return "Invalid argument"
	default:
		return "Unknown error"
	}
}

// ErrorFromString converts a string like "E_CAST" to an ErrorCode
func ErrorFromString(s string) (ErrorCode, bool) {
	switch s {
	case "E_NONE":
		return E_NONE, true
	case "E_CAST":
		return E_CAST, true
	case "E_COMPARE":
		return E_COMPARE, true
	case "E_TYPE":
		return E_TYPE, true
	case "E_INVARG":
		return E_INVARG, true
	default:
		return E_NONE, false
	}
}
