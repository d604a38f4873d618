package parser

import (
	"unicode"
)

// Lexer tokenizes expression source
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int
}

// NewLexer creates a new Lexer instance
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespace skips over whitespace and // comments
func (l *Lexer) skipWhitespace() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}

	if isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())) {
		tok := l.readNumber()
		tok.Position = pos
		return tok
	}
	if isLetter(l.ch) {
		tok := l.readIdentifier()
		tok.Position = pos
		return tok
	}
	if l.ch == '"' {
		return l.readString()
	}

	tok := Token{Position: pos}

	switch l.ch {
	case 0:
		tok.Type = TOKEN_EOF
	case '+':
		tok.Type = TOKEN_PLUS
	case '-':
		tok.Type = TOKEN_MINUS
	case '(':
		tok.Type = TOKEN_LPAREN
	case ')':
		tok.Type = TOKEN_RPAREN
	case ';':
		tok.Type = TOKEN_SEMICOLON
	case '<':
		tok.Type = l.either('=', TOKEN_LE, TOKEN_LT)
	case '>':
		tok.Type = l.either('=', TOKEN_GE, TOKEN_GT)
	case '=':
		tok.Type = l.either('=', TOKEN_EQ, TOKEN_ASSIGN)
		if tok.Type == TOKEN_EQ {
			tok.Type = l.either('=', TOKEN_EQ_STRICT, TOKEN_EQ)
		}
	case '!':
		if l.peekChar() != '=' {
			tok.Type = TOKEN_ILLEGAL
			break
		}
		l.readChar()
		tok.Type = l.either('=', TOKEN_NE_STRICT, TOKEN_NE)
	default:
		tok.Type = TOKEN_ILLEGAL
	}

	if tok.Type != TOKEN_EOF {
		l.readChar()
	}
	tok.Value = l.input[pos.Offset:l.position]
	return tok
}

// either consumes the current char and returns yes when the next char is
// next, otherwise returns no without consuming
func (l *Lexer) either(next byte, yes, no TokenType) TokenType {
	if l.peekChar() == next {
		l.readChar()
		return yes
	}
	return no
}

// readIdentifier reads a property name or keyword
func (l *Lexer) readIdentifier() Token {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	ident := l.input[start:l.position]
	return Token{Type: LookupKeyword(ident), Value: ident}
}

// readNumber reads digits with an optional fraction, exponent and f suffix.
// Anything beyond plain digits makes it a FLOAT token.
func (l *Lexer) readNumber() Token {
	start := l.position
	typ := TOKEN_INT

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		typ = TOKEN_FLOAT
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) || next == '+' || next == '-' {
			typ = TOKEN_FLOAT
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			if !isDigit(l.ch) {
				return Token{Type: TOKEN_ILLEGAL, Value: l.input[start:l.position]}
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}

	if l.ch == 'f' || l.ch == 'F' {
		typ = TOKEN_FLOAT
		l.readChar()
	}

	return Token{Type: typ, Value: l.input[start:l.position]}
}

// isLetter returns true if the character is a letter or underscore
func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

// isDigit returns true if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
