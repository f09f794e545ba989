// Package lexer implements the Monkey lexical analyzer.
package lexer

// Lexer scans source text into a forward-only token stream. A Lexer is
// single-use: once it has produced an EOF token it keeps returning EOF,
// and re-scanning requires a fresh instance.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination; 0 means end of input
	line         int  // current line number (1-based)
	lineStart    int  // byte offset of the first character of the current line
}

// New creates a new lexer over the given source text.
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL represents "end of input"
		l.position = len(l.input)
		l.readPosition = l.position + 1
		return
	}
	l.ch = l.input[l.readPosition]
	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.lineStart = l.readPosition
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// pos returns the position of the current character. The column is
// derived from byte offsets, so multi-character tokens need no
// after-the-fact correction.
func (l *Lexer) pos() Position {
	return Position{Line: l.line, Column: l.position - l.lineStart}
}

// skipWhitespace skips ASCII whitespace characters, including newlines
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// skipLineComment consumes input through the end of the current line
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// NextToken scans the input and returns the next token. Comments and
// whitespace are skipped, never emitted.
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	// Token positions point at the first character of the literal, so
	// capture the position before consuming anything.
	startPos := l.pos()

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenEq, Literal: "==", Pos: startPos}
		} else {
			tok = l.newTokenFromChar(TokenAssign, startPos)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenNe, Literal: "!=", Pos: startPos}
		} else {
			tok = l.newTokenFromChar(TokenNot, startPos)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenGe, Literal: ">=", Pos: startPos}
		} else {
			tok = l.newTokenFromChar(TokenGt, startPos)
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenLe, Literal: "<=", Pos: startPos}
		} else {
			tok = l.newTokenFromChar(TokenLt, startPos)
		}
	case '/':
		if l.peekChar() == '/' {
			l.skipLineComment()
			return l.NextToken()
		}
		tok = l.newTokenFromChar(TokenDiv, startPos)
	case '+':
		tok = l.newTokenFromChar(TokenPlus, startPos)
	case '-':
		tok = l.newTokenFromChar(TokenMinus, startPos)
	case '*':
		tok = l.newTokenFromChar(TokenMul, startPos)
	case ',':
		tok = l.newTokenFromChar(TokenComma, startPos)
	case ';':
		tok = l.newTokenFromChar(TokenSemicolon, startPos)
	case '(':
		tok = l.newTokenFromChar(TokenLParen, startPos)
	case ')':
		tok = l.newTokenFromChar(TokenRParen, startPos)
	case '{':
		tok = l.newTokenFromChar(TokenLBrace, startPos)
	case '}':
		tok = l.newTokenFromChar(TokenRBrace, startPos)
	case 0:
		return Token{Type: TokenEOF, Literal: "", Pos: startPos}
	default:
		if isDigit(l.ch) || l.ch == '.' {
			return l.readNumber(startPos)
		}
		return l.readIdentifier(startPos)
	}

	l.readChar()
	return tok
}

// newTokenFromChar creates a single-character token at the given position
func (l *Lexer) newTokenFromChar(tokenType TokenType, pos Position) Token {
	return Token{Type: tokenType, Literal: string(l.ch), Pos: pos}
}

// readNumber scans an integer or float literal. At most one decimal
// point is allowed; a second point yields an illegal token whose
// literal is everything matched so far plus the offending point, and
// scanning resumes after it.
func (l *Lexer) readNumber(start Position) Token {
	position := l.position
	sawPoint := false

	for isDigit(l.ch) || l.ch == '.' {
		if l.ch == '.' {
			if sawPoint {
				literal := l.input[position:l.position] + "."
				l.readChar()
				return Token{Type: TokenIllegal, Literal: literal, Pos: start}
			}
			sawPoint = true
		}
		l.readChar()
	}

	literal := l.input[position:l.position]
	if sawPoint {
		return Token{Type: TokenFloat, Literal: literal, Pos: start}
	}
	return Token{Type: TokenInt, Literal: literal, Pos: start}
}

// readIdentifier scans an identifier and resolves keywords through the
// keyword table. A character that cannot start an identifier yields an
// illegal token holding just that character.
func (l *Lexer) readIdentifier(start Position) Token {
	position := l.position

	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}

	literal := l.input[position:l.position]
	if literal == "" {
		literal = string(l.ch)
		l.readChar()
		return Token{Type: TokenIllegal, Literal: literal, Pos: start}
	}

	return Token{Type: lookupIdent(literal), Literal: literal, Pos: start}
}

// isLetter checks if character is ASCII letter
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isDigit checks if character is ASCII digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
