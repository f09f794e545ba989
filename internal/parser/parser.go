package parser

import (
	"fmt"

	"github.com/reidswan/monkey/internal/lexer"
)

// ParseError represents a recoverable parsing error. Pos is nil only
// when the error occurred at true end of input, with no token to blame.
type ParseError struct {
	Message string
	Pos     *lexer.Position
}

func (e *ParseError) Error() string {
	if e.Pos != nil {
		return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Parser consumes a lexer's token stream with a single token of
// lookahead and never backtracks. One lexer feeds exactly one parser.
type Parser struct {
	lexer   *lexer.Lexer
	current lexer.Token
	peek    lexer.Token
}

// New creates a parser over the given lexer and primes the two-token
// lookahead buffer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{lexer: l}

	// Read the first two tokens
	p.nextToken()
	p.nextToken()

	return p
}

// Parse drains the token stream and returns the resulting program.
// Malformed input never panics; failures are collected on the program's
// error list and parsing resumes at the next statement boundary.
func (p *Parser) Parse() *Program {
	program := &Program{
		Statements: make([]Statement, 0),
		Errors:     make([]*ParseError, 0),
	}

	for !p.currentTokenIs(lexer.TokenEOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			program.Errors = append(program.Errors, err)
			p.synchronize()
			continue
		}
		program.Statements = append(program.Statements, stmt)
		p.nextToken()
	}

	return program
}

// nextToken advances the parser to the next token
func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

// currentTokenIs checks if the current token is of the given type
func (p *Parser) currentTokenIs(tokenType lexer.TokenType) bool {
	return p.current.Type == tokenType
}

// expectPeek advances onto the peek token when it matches the expected
// type; otherwise it reports the mismatch against the peek token's
// position, without consuming it.
func (p *Parser) expectPeek(tokenType lexer.TokenType) (lexer.Token, *ParseError) {
	if p.peek.Type != tokenType {
		pos := p.peek.Pos
		return lexer.Token{}, &ParseError{
			Message: fmt.Sprintf("expected a %s token but got %s", tokenType, p.peek.Type),
			Pos:     &pos,
		}
	}
	p.nextToken()
	return p.current, nil
}

// synchronize discards tokens until the next statement boundary: past
// the next semicolon, or up to a statement-starting keyword, or EOF.
func (p *Parser) synchronize() {
	p.nextToken()
	for !p.currentTokenIs(lexer.TokenEOF) {
		switch p.current.Type {
		case lexer.TokenSemicolon:
			p.nextToken()
			return
		case lexer.TokenLet:
			return
		}
		p.nextToken()
	}
}

// parseStatement dispatches on the statement-starting token
func (p *Parser) parseStatement() (Statement, *ParseError) {
	switch p.current.Type {
	case lexer.TokenLet:
		return p.parseLetStatement()
	default:
		pos := p.current.Pos
		return nil, &ParseError{
			Message: fmt.Sprintf("unexpected token: %s", p.current.Type),
			Pos:     &pos,
		}
	}
}

// parseLetStatement parses: let IDENTIFIER = ... ;
// On success the current token is the terminating semicolon.
func (p *Parser) parseLetStatement() (Statement, *ParseError) {
	letTok := p.current

	name, err := p.expectPeek(lexer.TokenIdentifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPeek(lexer.TokenAssign); err != nil {
		return nil, err
	}

	// Expression parsing does not exist yet: discard the value tokens
	// through the terminating semicolon.
	p.nextToken()
	for !p.currentTokenIs(lexer.TokenSemicolon) {
		if p.currentTokenIs(lexer.TokenEOF) {
			return nil, &ParseError{Message: "unexpected end of input"}
		}
		p.nextToken()
	}

	return &LetStatement{
		Token: letTok,
		Name:  &Identifier{Token: name, Value: name.Literal},
	}, nil
}
