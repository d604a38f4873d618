package eval

import (
	"dataobject/parser"
	"dataobject/types"
)

type binaryOp struct {
	name string
	fn   func(left, right types.Value) (types.Value, error)
}

var binaryOps = map[parser.TokenType]binaryOp{
	parser.TOKEN_PLUS:      {"add", evalAdd},
	parser.TOKEN_MINUS:     {"subtract", evalSubtract},
	parser.TOKEN_EQ:        {"equal", evalEqual},
	parser.TOKEN_NE:        {"not_equal", evalNotEqual},
	parser.TOKEN_EQ_STRICT: {"strict_equal", evalStrictEqual},
	parser.TOKEN_NE_STRICT: {"strict_not_equal", evalStrictNotEqual},
	parser.TOKEN_LT:        {"compare.lt", evalLessThan},
	parser.TOKEN_LE:        {"compare.le", evalLessThanEqual},
	parser.TOKEN_GT:        {"compare.gt", evalGreaterThan},
	parser.TOKEN_GE:        {"compare.ge", evalGreaterThanEqual},
}

// ============================================================================
// ARITHMETIC
// ============================================================================

func evalUnaryMinus(operand types.Value) types.Value {
	return operand.Negate()
}

func evalAdd(left, right types.Value) (types.Value, error) {
	return left.Add(right), nil
}

func evalSubtract(left, right types.Value) (types.Value, error) {
	return left.Subtract(right), nil
}

// ============================================================================
// EQUALITY
// ============================================================================

func evalEqual(left, right types.Value) (types.Value, error) {
	return types.FromBool(types.Equal(left, right)), nil
}

func evalNotEqual(left, right types.Value) (types.Value, error) {
	return types.FromBool(!types.Equal(left, right)), nil
}

func evalStrictEqual(left, right types.Value) (types.Value, error) {
	eq, err := types.EqualStrict(left, right)
	if err != nil {
		return types.Nothing, err
	}
	return types.FromBool(eq), nil
}

func evalStrictNotEqual(left, right types.Value) (types.Value, error) {
	eq, err := types.EqualStrict(left, right)
	if err != nil {
		return types.Nothing, err
	}
	return types.FromBool(!eq), nil
}

// ============================================================================
// ORDERING
// ============================================================================

func compareWith(pred func(a, b types.Value) (bool, error)) func(left, right types.Value) (types.Value, error) {
	return func(left, right types.Value) (types.Value, error) {
		ok, err := pred(left, right)
		if err != nil {
			return types.Nothing, err
		}
		return types.FromBool(ok), nil
	}
}

var (
	evalLessThan         = compareWith(types.Less)
	evalLessThanEqual    = compareWith(types.LessOrEqual)
	evalGreaterThan      = compareWith(types.Greater)
	evalGreaterThanEqual = compareWith(types.GreaterOrEqual)
)
