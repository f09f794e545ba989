package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType int

// String returns a string representation of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(tt))
}

// Token types - the closed set of Monkey token categories
const (
	// Special tokens
	TokenIllegal TokenType = iota
	TokenEOF

	// Identifiers + literals
	TokenIdentifier
	TokenInt
	TokenFloat

	// Operators
	TokenAssign
	TokenPlus
	TokenMinus
	TokenMul
	TokenDiv
	TokenGt
	TokenGe
	TokenLt
	TokenLe
	TokenNot
	TokenEq
	TokenNe

	// Delimiters
	TokenComma
	TokenSemicolon

	// Brackets
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace

	// Keywords
	TokenLet
	TokenFunction
	TokenIf
	TokenElse
	TokenReturn
	TokenTrue
	TokenFalse
)

// tokenNames provides string representations for token types
var tokenNames = map[TokenType]string{
	TokenIllegal: "ILLEGAL",
	TokenEOF:     "EOF",

	TokenIdentifier: "IDENTIFIER",
	TokenInt:        "INT",
	TokenFloat:      "FLOAT",

	TokenAssign: "ASSIGN",
	TokenPlus:   "PLUS",
	TokenMinus:  "MINUS",
	TokenMul:    "MUL",
	TokenDiv:    "DIV",
	TokenGt:     "GT",
	TokenGe:     "GE",
	TokenLt:     "LT",
	TokenLe:     "LE",
	TokenNot:    "NOT",
	TokenEq:     "EQ",
	TokenNe:     "NE",

	TokenComma:     "COMMA",
	TokenSemicolon: "SEMICOLON",

	TokenLParen: "LPAREN",
	TokenRParen: "RPAREN",
	TokenLBrace: "LBRACE",
	TokenRBrace: "RBRACE",

	TokenLet:      "LET",
	TokenFunction: "FUNCTION",
	TokenIf:       "IF",
	TokenElse:     "ELSE",
	TokenReturn:   "RETURN",
	TokenTrue:     "TRUE",
	TokenFalse:    "FALSE",
}

// keywords maps identifier spellings to their keyword token types
var keywords = map[string]TokenType{
	"let":    TokenLet,
	"fn":     TokenFunction,
	"if":     TokenIf,
	"else":   TokenElse,
	"return": TokenReturn,
	"true":   TokenTrue,
	"false":  TokenFalse,
}

// lookupIdent checks if identifier is a keyword
func lookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdentifier
}

// Position represents a position in the source code
type Position struct {
	Line   int // 1-based line number
	Column int // 0-based column of the character on its line
}

// String returns a string representation of the position
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexical token with position information.
// Pos always points at the first character of the literal, including
// for multi-character tokens such as "==", "10.0" or "foobar".
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("{Type: %s, Literal: %q, Pos: %s}", t.Type, t.Literal, t.Pos)
}
