package eval

import (
	"dataobject/parser"
	"dataobject/props"
	"dataobject/trace"
	"dataobject/types"
)

// Evaluator walks the AST and evaluates statements against a property bag
type Evaluator struct {
	bag *props.Bag
}

// NewEvaluator creates an evaluator reading and writing bag. A nil bag
// starts empty.
func NewEvaluator(bag *props.Bag) *Evaluator {
	if bag == nil {
		bag = props.New()
	}
	return &Evaluator{bag: bag}
}

// Bag returns the property bag the evaluator works on
func (e *Evaluator) Bag() *props.Bag {
	return e.bag
}

// Run parses and executes a program and returns the value of the last
// statement. An empty program yields types.Nothing.
func (e *Evaluator) Run(source string) (types.Value, error) {
	stmts, err := parser.Parse(source)
	if err != nil {
		return types.Nothing, err
	}
	return e.ExecProgram(stmts)
}

// ExecProgram executes statements in order, stopping at the first error
func (e *Evaluator) ExecProgram(stmts []parser.Stmt) (types.Value, error) {
	result := types.Nothing
	for _, stmt := range stmts {
		val, err := e.Exec(stmt)
		if err != nil {
			return types.Nothing, err
		}
		result = val
	}
	return result, nil
}

// Exec executes one statement. An assignment yields the assigned value.
func (e *Evaluator) Exec(stmt parser.Stmt) (types.Value, error) {
	switch s := stmt.(type) {
	case *parser.AssignStmt:
		val, err := e.Eval(s.Value)
		if err != nil {
			return types.Nothing, err
		}
		if err := e.bag.Set(s.Name, val); err != nil {
			return types.Nothing, wrap(s.Value, err)
		}
		trace.Assign(s.Name, val)
		return val, nil

	case *parser.ExprStmt:
		return e.Eval(s.Expr)

	default:
		return types.Nothing, nil
	}
}

// Eval evaluates an expression
func (e *Evaluator) Eval(expr parser.Expr) (types.Value, error) {
	switch n := expr.(type) {
	case *parser.LiteralExpr:
		return n.Value, nil

	case *parser.IdentifierExpr:
		val, err := e.bag.Get(n.Name)
		if err != nil {
			return types.Nothing, wrap(n, err)
		}
		return val, nil

	case *parser.ParenExpr:
		return e.Eval(n.Expr)

	case *parser.UnaryExpr:
		return e.evalUnary(n)

	case *parser.BinaryExpr:
		return e.evalBinary(n)

	default:
		return types.Nothing, nil
	}
}

func (e *Evaluator) evalUnary(n *parser.UnaryExpr) (types.Value, error) {
	operand, err := e.Eval(n.Operand)
	if err != nil {
		return types.Nothing, err
	}

	result := evalUnaryMinus(operand)
	trace.Op("negate", operand, types.Nothing, result)
	return result, nil
}

func (e *Evaluator) evalBinary(n *parser.BinaryExpr) (types.Value, error) {
	left, err := e.Eval(n.Left)
	if err != nil {
		return types.Nothing, err
	}
	right, err := e.Eval(n.Right)
	if err != nil {
		return types.Nothing, err
	}

	op, ok := binaryOps[n.Operator]
	if !ok {
		return types.Nothing, wrap(n, &types.Error{Code: types.E_INVARG, Op: n.Operator.String(), Left: left, Right: right})
	}

	result, err := op.fn(left, right)
	if err != nil {
		trace.Failure(op.name, err)
		return types.Nothing, wrap(n, err)
	}
	trace.Op(op.name, left, right, result)
	return result, nil
}
