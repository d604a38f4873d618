package eval

import (
	"fmt"

	"dataobject/parser"
	"dataobject/types"
)

// Error reports a failed evaluation together with the expression that
// raised it
type Error struct {
	Expr string
	Pos  parser.Position
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("error evaluating %q at line %d, column %d: %v", e.Expr, e.Pos.Line, e.Pos.Column, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Code returns the error code of the underlying failure
func (e *Error) Code() types.ErrorCode {
	return types.CodeOf(e.Err)
}

func wrap(expr parser.Expr, err error) error {
	return &Error{
		Expr: parser.Unparse(expr),
		Pos:  expr.Position(),
		Err:  err,
	}
}
