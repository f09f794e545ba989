package lexer

import "testing"

func TestTokenTypeString(t *testing.T) {
	tests := []struct {
		tokenType TokenType
		expected  string
	}{
		{TokenIllegal, "ILLEGAL"},
		{TokenEOF, "EOF"},
		{TokenIdentifier, "IDENTIFIER"},
		{TokenInt, "INT"},
		{TokenFloat, "FLOAT"},
		{TokenAssign, "ASSIGN"},
		{TokenEq, "EQ"},
		{TokenNe, "NE"},
		{TokenSemicolon, "SEMICOLON"},
		{TokenLet, "LET"},
		{TokenFunction, "FUNCTION"},
		{TokenFalse, "FALSE"},
		{TokenType(-1), "UNKNOWN(-1)"},
	}

	for i, tt := range tests {
		if got := tt.tokenType.String(); got != tt.expected {
			t.Fatalf("tests[%d] - String() wrong. expected=%q, got=%q", i, tt.expected, got)
		}
	}
}

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident    string
		expected TokenType
	}{
		{"let", TokenLet},
		{"fn", TokenFunction},
		{"if", TokenIf},
		{"else", TokenElse},
		{"return", TokenReturn},
		{"true", TokenTrue},
		{"false", TokenFalse},
		{"letter", TokenIdentifier},
		{"Let", TokenIdentifier},
		{"x", TokenIdentifier},
	}

	for i, tt := range tests {
		if got := lookupIdent(tt.ident); got != tt.expected {
			t.Fatalf("tests[%d] - lookupIdent(%q) wrong. expected=%s, got=%s",
				i, tt.ident, tt.expected, got)
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{
		Type:    TokenIdentifier,
		Literal: "five",
		Pos:     Position{Line: 1, Column: 4},
	}

	expected := `{Type: IDENTIFIER, Literal: "five", Pos: 1:4}`
	if got := tok.String(); got != expected {
		t.Fatalf("token String() wrong. expected=%q, got=%q", expected, got)
	}
}
