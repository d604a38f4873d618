package types

import (
	"errors"
	"fmt"
)

// Sentinel errors; every *Error unwraps to the one matching its code
var (
	ErrInvalidCast           = errors.New(E_CAST.Message())
	ErrUnsupportedComparison = errors.New(E_COMPARE.Message())
	ErrTypeMismatch          = errors.New(E_TYPE.Message())
	ErrInvalidKey            = errors.New("invalid property key")
)

// Error reports a failed operation together with its operands
type Error struct {
	Code   ErrorCode
	Op     string
	Left   Value
	Right  Value  // Nothing for unary operations
	Target string // destination type name for casts
}

func (e *Error) Error() string {
	switch {
	case e.Code == E_CAST:
		return fmt.Sprintf("%s: %s: cannot convert %#v to %s", e.Code, e.Op, e.Left, e.Target)
	case e.Code == E_INVARG:
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, ErrInvalidKey)
	default:
		return fmt.Sprintf("%s: %s: %s (%#v, %#v)", e.Code, e.Op, e.Code.Message(), e.Left, e.Right)
	}
}

// Unwrap returns the sentinel for the error code
func (e *Error) Unwrap() error {
	switch e.Code {
	case E_CAST:
		return ErrInvalidCast
	case E_COMPARE:
		return ErrUnsupportedComparison
	case E_TYPE:
		return ErrTypeMismatch
	case E_INVARG:
		return ErrInvalidKey
	default:
		return nil
	}
}

// CodeOf extracts the ErrorCode from err, or E_NONE when err carries none
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	switch {
	case errors.Is(err, ErrInvalidCast):
		return E_CAST
	case errors.Is(err, ErrUnsupportedComparison):
		return E_COMPARE
	case errors.Is(err, ErrTypeMismatch):
		return E_TYPE
	case errors.Is(err, ErrInvalidKey):
		return E_INVARG
	}
	return E_NONE
}

func castError(op string, v Value, target TypeCode) error {
	return &Error{Code: E_CAST, Op: op, Left: v, Target: target.String()}
}

func compareError(a, b Value) error {
	return &Error{Code: E_COMPARE, Op: "compare", Left: a, Right: b}
}
