package parser

import (
	"strings"

	"dataobject/types"
)

// UnparseProgram converts AST statements back to source code, one
// statement per line
func UnparseProgram(stmts []Stmt) []string {
	if len(stmts) == 0 {
		return []string{}
	}

	lines := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		lines = append(lines, UnparseStmt(stmt))
	}
	return lines
}

// UnparseStmt converts a statement to source code
func UnparseStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *AssignStmt:
		return s.Name + " = " + Unparse(s.Value)
	case *ExprStmt:
		return Unparse(s.Expr)
	default:
		return ""
	}
}

// Unparse converts an expression to source code
func Unparse(expr Expr) string {
	return unparseExpr(expr, PREC_LOWEST)
}

// unparseExpr renders expr, parenthesizing when it binds looser than the
// surrounding operator
func unparseExpr(expr Expr, parentPrec int) string {
	switch e := expr.(type) {
	case *LiteralExpr:
		return unparseValue(e.Value)

	case *IdentifierExpr:
		return e.Name

	case *ParenExpr:
		return "(" + unparseExpr(e.Expr, PREC_LOWEST) + ")"

	case *UnaryExpr:
		return e.Operator.String() + unparseExpr(e.Operand, PREC_UNARY)

	case *BinaryExpr:
		prec := precedences[e.Operator]
		// left-associative: the right operand needs parens at equal precedence
		s := unparseExpr(e.Left, prec) + " " + e.Operator.String() + " " + unparseExpr(e.Right, prec+1)
		if prec < parentPrec {
			return "(" + s + ")"
		}
		return s

	default:
		return ""
	}
}

// unparseValue renders a literal so that parsing it yields the same value
func unparseValue(v types.Value) string {
	switch v.Type() {
	case types.TYPE_NONE:
		return "nothing"
	case types.TYPE_BOOL:
		if v.AsBool() {
			return "true"
		}
		return "false"
	case types.TYPE_FLOAT:
		return floatText(v.String()) + "f"
	case types.TYPE_DOUBLE:
		return floatText(v.String())
	case types.TYPE_STR:
		s, ok := v.AsString()
		if !ok {
			return "null"
		}
		return quote(s)
	default:
		return v.String()
	}
}

// floatText makes sure integral floats still lex as floats
func floatText(s string) string {
	if strings.ContainsAny(s, ".eEIN") {
		return s
	}
	return s + ".0"
}

func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
