package parser

import (
	"testing"

	"github.com/reidswan/monkey/internal/lexer"
)

func TestLetStatement(t *testing.T) {
	input := `let x = 5;`

	program := New(lexer.New(input)).Parse()

	if len(program.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", program.Errors)
	}
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}

	assertLetStatement(t, program.Statements[0], "x")
}

func TestLetStatements(t *testing.T) {
	input := `
let x = 5;
let y = 10;
let foobar = 838383;`

	program := New(lexer.New(input)).Parse()

	if len(program.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", program.Errors)
	}
	if len(program.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(program.Statements))
	}

	expected := []string{"x", "y", "foobar"}
	for i, name := range expected {
		assertLetStatement(t, program.Statements[i], name)
	}
}

func assertLetStatement(t *testing.T, stmt Statement, name string) {
	t.Helper()

	letStmt, ok := stmt.(*LetStatement)
	if !ok {
		t.Fatalf("statement is %T, want *LetStatement", stmt)
	}
	if letStmt.Token.Type != lexer.TokenLet || letStmt.Token.Literal != "let" {
		t.Fatalf("statement token is %s, want LET", letStmt.Token)
	}
	if letStmt.Name.Value != name {
		t.Fatalf("statement name is %q, want %q", letStmt.Name.Value, name)
	}
	if letStmt.Name.Token.Literal != name {
		t.Fatalf("name token literal is %q, want %q", letStmt.Name.Token.Literal, name)
	}
}

func TestMissingIdentifier(t *testing.T) {
	input := `let = 5;`

	program := New(lexer.New(input)).Parse()

	if len(program.Statements) != 0 {
		t.Fatalf("expected 0 statements, got %d", len(program.Statements))
	}
	if len(program.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(program.Errors), program.Errors)
	}

	err := program.Errors[0]
	if err.Message != "expected a IDENTIFIER token but got ASSIGN" {
		t.Fatalf("unexpected message: %q", err.Message)
	}
	if err.Pos == nil {
		t.Fatal("error has no position")
	}
	// The position of the "=" token that was found instead.
	if err.Pos.Line != 1 || err.Pos.Column != 4 {
		t.Fatalf("error position is %s, want 1:4", err.Pos)
	}
}

func TestMissingAssign(t *testing.T) {
	input := `let x 5;`

	program := New(lexer.New(input)).Parse()

	if len(program.Statements) != 0 {
		t.Fatalf("expected 0 statements, got %d", len(program.Statements))
	}
	if len(program.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(program.Errors), program.Errors)
	}

	err := program.Errors[0]
	if err.Message != "expected a ASSIGN token but got INT" {
		t.Fatalf("unexpected message: %q", err.Message)
	}
	if err.Pos == nil || err.Pos.Line != 1 || err.Pos.Column != 6 {
		t.Fatalf("error position is %v, want 1:6", err.Pos)
	}
}

func TestUnexpectedToken(t *testing.T) {
	input := `foobar;`

	program := New(lexer.New(input)).Parse()

	if len(program.Statements) != 0 {
		t.Fatalf("expected 0 statements, got %d", len(program.Statements))
	}
	if len(program.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(program.Errors), program.Errors)
	}

	err := program.Errors[0]
	if err.Message != "unexpected token: IDENTIFIER" {
		t.Fatalf("unexpected message: %q", err.Message)
	}
	if err.Pos == nil || err.Pos.Line != 1 || err.Pos.Column != 0 {
		t.Fatalf("error position is %v, want 1:0", err.Pos)
	}
}

func TestUnexpectedEndOfInput(t *testing.T) {
	input := `let x = 5`

	program := New(lexer.New(input)).Parse()

	if len(program.Statements) != 0 {
		t.Fatalf("expected 0 statements, got %d", len(program.Statements))
	}
	if len(program.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(program.Errors), program.Errors)
	}

	err := program.Errors[0]
	if err.Message != "unexpected end of input" {
		t.Fatalf("unexpected message: %q", err.Message)
	}
	if err.Pos != nil {
		t.Fatalf("end-of-input error should have no position, got %s", err.Pos)
	}
}

func TestResynchronization(t *testing.T) {
	// A failing statement must not take the rest of the program with
	// it: parsing resumes at the next statement boundary.
	input := `let = 1; let y = 2; foobar; let z = 3;`

	program := New(lexer.New(input)).Parse()

	if len(program.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(program.Errors), program.Errors)
	}
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}

	assertLetStatement(t, program.Statements[0], "y")
	assertLetStatement(t, program.Statements[1], "z")
}

func TestErrorsDoNotAbortParse(t *testing.T) {
	input := "let = 1;\nlet a = 2;\n5;\nlet b = 3;"

	program := New(lexer.New(input)).Parse()

	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
	if len(program.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(program.Errors), program.Errors)
	}

	assertLetStatement(t, program.Statements[0], "a")
	assertLetStatement(t, program.Statements[1], "b")

	// Errors arrive in source order with their own positions.
	if program.Errors[0].Pos == nil || program.Errors[0].Pos.Line != 1 {
		t.Fatalf("first error position is %v, want line 1", program.Errors[0].Pos)
	}
	if program.Errors[1].Pos == nil || program.Errors[1].Pos.Line != 3 {
		t.Fatalf("second error position is %v, want line 3", program.Errors[1].Pos)
	}
}

func TestParseErrorFormatting(t *testing.T) {
	withPos := &ParseError{
		Message: "expected a IDENTIFIER token but got ASSIGN",
		Pos:     &lexer.Position{Line: 1, Column: 4},
	}
	if got := withPos.Error(); got != "parse error at 1:4: expected a IDENTIFIER token but got ASSIGN" {
		t.Fatalf("unexpected error string: %q", got)
	}

	withoutPos := &ParseError{Message: "unexpected end of input"}
	if got := withoutPos.Error(); got != "parse error: unexpected end of input" {
		t.Fatalf("unexpected error string: %q", got)
	}
}

func TestEmptyInput(t *testing.T) {
	program := New(lexer.New("")).Parse()

	if len(program.Statements) != 0 || len(program.Errors) != 0 {
		t.Fatalf("expected empty program, got %d statements and %d errors",
			len(program.Statements), len(program.Errors))
	}
}

func TestCommentOnlyInput(t *testing.T) {
	program := New(lexer.New("// nothing to see here")).Parse()

	if len(program.Statements) != 0 || len(program.Errors) != 0 {
		t.Fatalf("expected empty program, got %d statements and %d errors",
			len(program.Statements), len(program.Errors))
	}
}
