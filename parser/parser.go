package parser

import (
	"errors"
	"strconv"
	"strings"

	"dataobject/types"
)

// Operator precedence levels (higher = tighter binding)
const (
	PREC_LOWEST     = iota
	PREC_EQUALITY   // == != === !==
	PREC_RELATIONAL // < <= > >=
	PREC_ADDITIVE   // + -
	PREC_UNARY      // -
)

var precedences = map[TokenType]int{
	TOKEN_EQ:        PREC_EQUALITY,
	TOKEN_NE:        PREC_EQUALITY,
	TOKEN_EQ_STRICT: PREC_EQUALITY,
	TOKEN_NE_STRICT: PREC_EQUALITY,
	TOKEN_LT:        PREC_RELATIONAL,
	TOKEN_LE:        PREC_RELATIONAL,
	TOKEN_GT:        PREC_RELATIONAL,
	TOKEN_GE:        PREC_RELATIONAL,
	TOKEN_PLUS:      PREC_ADDITIVE,
	TOKEN_MINUS:     PREC_ADDITIVE,
}

// Parser parses expression programs into an AST
type Parser struct {
	lexer   *Lexer
	current Token
	peek    Token
}

// NewParser creates a new Parser instance
func NewParser(input string) *Parser {
	p := &Parser{
		lexer: NewLexer(input),
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses a complete program
func Parse(input string) ([]Stmt, error) {
	return NewParser(input).ParseProgram()
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

// ParseProgram parses statements separated by ';'. A trailing ';' is
// allowed; an empty program has no statements.
func (p *Parser) ParseProgram() ([]Stmt, error) {
	var statements []Stmt

	for p.current.Type != TOKEN_EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)

		switch p.current.Type {
		case TOKEN_SEMICOLON:
			p.nextToken()
		case TOKEN_EOF:
		default:
			return nil, p.unexpected("';' or end of input")
		}
	}

	return statements, nil
}

// parseStatement parses an assignment or an expression statement
func (p *Parser) parseStatement() (Stmt, error) {
	pos := p.current.Position

	if p.current.Type == TOKEN_IDENTIFIER && p.peek.Type == TOKEN_ASSIGN {
		name := p.current.Value
		p.nextToken() // consume name
		p.nextToken() // consume '='

		value, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		return &AssignStmt{Pos: pos, Name: name, Value: value}, nil
	}

	expr, err := p.ParseExpression(PREC_LOWEST)
	if err != nil {
		return nil, err
	}
	return &ExprStmt{Pos: pos, Expr: expr}, nil
}

// ParseExpression parses operators binding tighter than precedence
func (p *Parser) ParseExpression(precedence int) (Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for precedence < p.currentPrecedence() {
		op := p.current
		p.nextToken()

		right, err := p.ParseExpression(precedences[op.Type])
		if err != nil {
			return nil, err
		}

		left = &BinaryExpr{
			Pos:      op.Position,
			Left:     left,
			Operator: op.Type,
			Right:    right,
		}
	}

	return left, nil
}

func (p *Parser) currentPrecedence() int {
	if prec, ok := precedences[p.current.Type]; ok {
		return prec
	}
	return PREC_LOWEST
}

// parsePrefix parses literals, property reads, groups and unary minus
func (p *Parser) parsePrefix() (Expr, error) {
	tok := p.current

	switch tok.Type {
	case TOKEN_INT, TOKEN_FLOAT, TOKEN_STRING, TOKEN_TRUE, TOKEN_FALSE, TOKEN_NULL, TOKEN_NOTHING:
		val, err := p.ParseLiteral()
		if err != nil {
			return nil, err
		}
		return &LiteralExpr{Pos: tok.Position, Value: val}, nil

	case TOKEN_IDENTIFIER:
		p.nextToken()
		return &IdentifierExpr{Pos: tok.Position, Name: tok.Value}, nil

	case TOKEN_MINUS:
		p.nextToken()
		operand, err := p.ParseExpression(PREC_UNARY)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Pos: tok.Position, Operator: TOKEN_MINUS, Operand: operand}, nil

	case TOKEN_LPAREN:
		p.nextToken()
		inner, err := p.ParseExpression(PREC_LOWEST)
		if err != nil {
			return nil, err
		}
		if p.current.Type != TOKEN_RPAREN {
			return nil, p.unexpected("')'")
		}
		p.nextToken()
		return &ParenExpr{Pos: tok.Position, Expr: inner}, nil

	default:
		return nil, p.unexpected("expression")
	}
}

// ParseLiteral parses a literal value
func (p *Parser) ParseLiteral() (types.Value, error) {
	tok := p.current

	switch tok.Type {
	case TOKEN_INT:
		return p.parseIntLiteral()
	case TOKEN_FLOAT:
		return p.parseFloatLiteral()
	case TOKEN_STRING:
		p.nextToken()
		return types.FromString(tok.Literal), nil
	case TOKEN_TRUE:
		p.nextToken()
		return types.FromBool(true), nil
	case TOKEN_FALSE:
		p.nextToken()
		return types.FromBool(false), nil
	case TOKEN_NULL:
		p.nextToken()
		return types.NullString(), nil
	case TOKEN_NOTHING:
		p.nextToken()
		return types.Nothing, nil
	default:
		return types.Nothing, p.unexpected("literal")
	}
}

// parseIntLiteral parses an integer literal. Literals beyond the int32
// range become doubles.
func (p *Parser) parseIntLiteral() (types.Value, error) {
	tok := p.current

	n, err := strconv.ParseInt(tok.Value, 10, 32)
	if err == nil {
		p.nextToken()
		return types.FromInt32(int32(n)), nil
	}
	if !errors.Is(err, strconv.ErrRange) {
		return types.Nothing, p.errorf(tok.Position, "invalid integer %q", tok.Value)
	}

	d, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		return types.Nothing, p.errorf(tok.Position, "invalid integer %q", tok.Value)
	}
	p.nextToken()
	return types.FromFloat64(d), nil
}

// parseFloatLiteral parses a float literal; an f suffix selects single
// precision
func (p *Parser) parseFloatLiteral() (types.Value, error) {
	tok := p.current
	text := tok.Value

	single := strings.HasSuffix(text, "f") || strings.HasSuffix(text, "F")
	bits := 64
	if single {
		text = text[:len(text)-1]
		bits = 32
	}

	x, err := strconv.ParseFloat(text, bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return types.Nothing, p.errorf(tok.Position, "invalid float %q", tok.Value)
	}
	p.nextToken()

	if single {
		return types.FromFloat32(float32(x)), nil
	}
	return types.FromFloat64(x), nil
}
