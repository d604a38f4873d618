package parser

import "fmt"

// ParseError reports a syntax error at a source position
type ParseError struct {
	Pos     Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

func (p *Parser) errorf(pos Position, format string, args ...any) error {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// unexpected reports the current token as out of place
func (p *Parser) unexpected(what string) error {
	tok := p.current
	switch tok.Type {
	case TOKEN_EOF:
		return p.errorf(tok.Position, "expected %s, got end of input", what)
	case TOKEN_ILLEGAL:
		return p.errorf(tok.Position, "illegal token %q", tok.Value)
	default:
		return p.errorf(tok.Position, "expected %s, got %q", what, tok.Value)
	}
}
