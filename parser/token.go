package parser

// TokenType represents different types of lexical tokens
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota
	TOKEN_ILLEGAL

	// Literals
	TOKEN_INT    // 42
	TOKEN_FLOAT  // 3.14, 3.14f, 1e3
	TOKEN_STRING // "hello"

	// Keywords
	TOKEN_TRUE
	TOKEN_FALSE
	TOKEN_NULL
	TOKEN_NOTHING

	// Identifiers
	TOKEN_IDENTIFIER

	// Operators
	TOKEN_PLUS  // +
	TOKEN_MINUS // -

	TOKEN_EQ        // ==
	TOKEN_NE        // !=
	TOKEN_EQ_STRICT // ===
	TOKEN_NE_STRICT // !==
	TOKEN_LT        // <
	TOKEN_GT        // >
	TOKEN_LE        // <=
	TOKEN_GE        // >=

	TOKEN_ASSIGN // =

	// Delimiters
	TOKEN_LPAREN    // (
	TOKEN_RPAREN    // )
	TOKEN_SEMICOLON // ;
)

// Position represents a position in the source code
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents a lexical token
type Token struct {
	Type     TokenType
	Value    string
	Literal  string // Decoded string value (for TOKEN_STRING)
	Position Position
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_ILLEGAL:
		return "ILLEGAL"
	case TOKEN_INT:
		return "INT"
	case TOKEN_FLOAT:
		return "FLOAT"
	case TOKEN_STRING:
		return "STRING"
	case TOKEN_TRUE:
		return "TRUE"
	case TOKEN_FALSE:
		return "FALSE"
	case TOKEN_NULL:
		return "NULL"
	case TOKEN_NOTHING:
		return "NOTHING"
	case TOKEN_IDENTIFIER:
		return "IDENTIFIER"
	case TOKEN_PLUS:
		return "+"
	case TOKEN_MINUS:
		return "-"
	case TOKEN_EQ:
		return "=="
	case TOKEN_NE:
		return "!="
	case TOKEN_EQ_STRICT:
		return "==="
	case TOKEN_NE_STRICT:
		return "!=="
	case TOKEN_LT:
		return "<"
	case TOKEN_GT:
		return ">"
	case TOKEN_LE:
		return "<="
	case TOKEN_GE:
		return ">="
	case TOKEN_ASSIGN:
		return "="
	case TOKEN_LPAREN:
		return "("
	case TOKEN_RPAREN:
		return ")"
	case TOKEN_SEMICOLON:
		return ";"
	default:
		return "UNKNOWN"
	}
}

// Keywords maps keyword strings to their token types
var keywords = map[string]TokenType{
	"true":    TOKEN_TRUE,
	"false":   TOKEN_FALSE,
	"null":    TOKEN_NULL,
	"nothing": TOKEN_NOTHING,
}

// LookupKeyword checks if an identifier is a keyword. Keywords are
// case-sensitive, so "True" is a property name.
func LookupKeyword(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENTIFIER
}
