// Package parser implements the Monkey statement parser and AST definitions
package parser

import (
	"strings"

	"github.com/reidswan/monkey/internal/lexer"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// Pos returns the position of the node's first token
	Pos() lexer.Position
	// String returns a source-like representation of the node
	String() string
}

// Statement represents all statement nodes
type Statement interface {
	Node
	statementNode()
}

// Expression represents all expression nodes
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of the AST: the statements that parsed in source
// order, plus every parse error encountered along the way. A program
// with errors still exposes all successfully parsed statements.
type Program struct {
	Statements []Statement
	Errors     []*ParseError
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 0}
}

func (p *Program) String() string {
	var out strings.Builder
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// ====== Statements ======

// LetStatement represents a variable binding: let <name> = <value>;
// Value stays nil until expression parsing exists.
type LetStatement struct {
	Token lexer.Token // the LET token
	Name  *Identifier
	Value Expression
}

func (ls *LetStatement) Pos() lexer.Position { return ls.Token.Pos }
func (ls *LetStatement) String() string {
	var out strings.Builder
	out.WriteString(ls.Token.Literal)
	out.WriteString(" ")
	out.WriteString(ls.Name.String())
	out.WriteString(" = ")
	if ls.Value != nil {
		out.WriteString(ls.Value.String())
	}
	out.WriteString(";")
	return out.String()
}
func (ls *LetStatement) statementNode() {}

// ====== Expressions ======
//
// The parser does not build expressions yet; the variants below lay out
// the representation a precedence-climbing expression parser will
// populate, so statements keep their shape when that lands.

// Identifier represents a name reference
type Identifier struct {
	Token lexer.Token // the IDENTIFIER token
	Value string
}

func (i *Identifier) Pos() lexer.Position { return i.Token.Pos }
func (i *Identifier) String() string      { return i.Value }
func (i *Identifier) expressionNode()     {}

// IntegerLiteral represents an integer literal
type IntegerLiteral struct {
	Token lexer.Token
	Value int64
}

func (il *IntegerLiteral) Pos() lexer.Position { return il.Token.Pos }
func (il *IntegerLiteral) String() string      { return il.Token.Literal }
func (il *IntegerLiteral) expressionNode()     {}

// FloatLiteral represents a floating point literal
type FloatLiteral struct {
	Token lexer.Token
	Value float64
}

func (fl *FloatLiteral) Pos() lexer.Position { return fl.Token.Pos }
func (fl *FloatLiteral) String() string      { return fl.Token.Literal }
func (fl *FloatLiteral) expressionNode()     {}

// Boolean represents the literals true and false
type Boolean struct {
	Token lexer.Token
	Value bool
}

func (b *Boolean) Pos() lexer.Position { return b.Token.Pos }
func (b *Boolean) String() string      { return b.Token.Literal }
func (b *Boolean) expressionNode()     {}

// PrefixExpression represents a unary operation such as !x or -x
type PrefixExpression struct {
	Token    lexer.Token // the operator token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) Pos() lexer.Position { return pe.Token.Pos }
func (pe *PrefixExpression) String() string {
	return "(" + pe.Operator + pe.Right.String() + ")"
}
func (pe *PrefixExpression) expressionNode() {}

// InfixExpression represents a binary operation such as x + y
type InfixExpression struct {
	Token    lexer.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) Pos() lexer.Position { return ie.Token.Pos }
func (ie *InfixExpression) String() string {
	return "(" + ie.Left.String() + " " + ie.Operator + " " + ie.Right.String() + ")"
}
func (ie *InfixExpression) expressionNode() {}

// CallExpression represents a function call such as add(x, y)
type CallExpression struct {
	Token     lexer.Token // the LPAREN token
	Function  Expression
	Arguments []Expression
}

func (ce *CallExpression) Pos() lexer.Position { return ce.Token.Pos }
func (ce *CallExpression) String() string {
	args := make([]string, 0, len(ce.Arguments))
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}
	return ce.Function.String() + "(" + strings.Join(args, ", ") + ")"
}
func (ce *CallExpression) expressionNode() {}
