// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

// Package lexer tokenizes gogo source text: maximal-munch operators,
// keyword-over-identifier priority, the INT/FLOAT/IMAG/STRING/CHAR literal
// grammars, and NEWLINE as a first-class significant token.
package lexer

import (
	"fmt"
	"strings"

	"github.com/gogo-parse/gogo/token"
)

// LexError is raised when the lexer meets a byte that starts no valid token.
type LexError struct {
	Pos token.Position
	Ch  rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%v: Illegal character %q", e.Pos, e.Ch)
}

// FullToken is one scanned token: its kind, its source lexeme, and its
// start position.
type FullToken struct {
	Pos token.Position
	Tok token.Token
	Lit string
}

// Lexer tokenizes one source string. A Lexer is single-use: construct a
// fresh one per call to Tokenize (or per Parse invocation), never share one
// across calls — no state leaks from one invocation into the next.
type Lexer struct {
	src        string
	offset     int
	line, col  int
}

// New returns a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

func (l *Lexer) pos() token.Position {
	return token.Position{Line: l.line, Column: l.col, Offset: l.offset}
}

func (l *Lexer) peek() byte {
	if l.offset >= len(l.src) {
		return 0
	}
	return l.src[l.offset]
}

func (l *Lexer) peekAt(n int) byte {
	if l.offset+n >= len(l.src) {
		return 0
	}
	return l.src[l.offset+n]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.offset]
	l.offset++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

// Tokenize scans src in full and returns every token including a trailing
// EOF, or the first LexError encountered: scanning stops at the first bad
// byte rather than attempting any error recovery.
func Tokenize(src string) ([]FullToken, error) {
	l := New(src)
	var toks []FullToken
	for {
		t, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.Tok == token.EOF {
			return toks, nil
		}
	}
}

func isDigit(ch byte) bool  { return ch >= '0' && ch <= '9' }
func isLetter(ch byte) bool { return ch == '_' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' }

func (l *Lexer) next() (FullToken, error) {
	// spaces and tabs are whitespace and discarded; newline is not.
	for l.peek() == ' ' || l.peek() == '\t' || l.peek() == '\r' {
		l.advance()
	}
	start := l.pos()
	if l.offset >= len(l.src) {
		return FullToken{start, token.EOF, ""}, nil
	}
	ch := l.peek()

	switch {
	case ch == '\n':
		l.advance()
		return FullToken{start, token.NEWLINE, "\n"}, nil
	case ch == '/' && l.peekAt(1) == '/':
		return l.scanComment(start), nil
	case isDigit(ch):
		return l.scanNumber(start)
	case isLetter(ch):
		return l.scanIdent(start), nil
	case ch == '"':
		return l.scanString(start)
	case ch == '\'':
		return l.scanChar(start)
	}
	return l.scanOperator(start)
}

func (l *Lexer) scanComment(start token.Position) FullToken {
	var b strings.Builder
	b.WriteString("//")
	l.advance()
	l.advance()
	for l.peek() != '\n' && l.offset < len(l.src) {
		b.WriteByte(l.advance())
	}
	if l.peek() == '\n' {
		l.advance()
		b.WriteByte('\n')
	}
	return FullToken{start, token.COMMENT, b.String()}
}

func (l *Lexer) scanIdent(start token.Position) FullToken {
	var b strings.Builder
	for isLetter(l.peek()) || isDigit(l.peek()) {
		b.WriteByte(l.advance())
	}
	name := b.String()
	return FullToken{start, token.Lookup(name), name}
}

// scanNumber implements the INT/FLOAT/IMAG literal grammars:
//
//	IMAG  ::= [0-9]+(\.[0-9]+)?i
//	FLOAT ::= [0-9]+\.[0-9]+
//	INT   ::= [0-9]+(e[0-9]+)?
func (l *Lexer) scanNumber(start token.Position) (FullToken, error) {
	var b strings.Builder
	for isDigit(l.peek()) {
		b.WriteByte(l.advance())
	}
	isFloat := false
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		isFloat = true
		b.WriteByte(l.advance()) // .
		for isDigit(l.peek()) {
			b.WriteByte(l.advance())
		}
	}
	if l.peek() == 'i' {
		b.WriteByte(l.advance())
		return FullToken{start, token.IMAG, b.String()}, nil
	}
	if !isFloat && l.peek() == 'e' && isDigit(l.peekAt(1)) {
		b.WriteByte(l.advance()) // e
		for isDigit(l.peek()) {
			b.WriteByte(l.advance())
		}
	}
	if isFloat {
		return FullToken{start, token.FLOAT, b.String()}, nil
	}
	return FullToken{start, token.INT, b.String()}, nil
}

func (l *Lexer) scanString(start token.Position) (FullToken, error) {
	var b strings.Builder
	b.WriteByte(l.advance()) // opening quote
	for {
		if l.offset >= len(l.src) || l.peek() == '\n' {
			return FullToken{}, &LexError{start, '"'}
		}
		ch := l.peek()
		if ch == '"' {
			b.WriteByte(l.advance())
			break
		}
		if ch == '\\' {
			b.WriteByte(l.advance())
			if l.offset < len(l.src) {
				b.WriteByte(l.advance())
			}
			continue
		}
		b.WriteByte(l.advance())
	}
	return FullToken{start, token.STRING, b.String()}, nil
}

func (l *Lexer) scanChar(start token.Position) (FullToken, error) {
	var b strings.Builder
	b.WriteByte(l.advance()) // opening quote
	for {
		if l.offset >= len(l.src) || l.peek() == '\n' {
			return FullToken{}, &LexError{start, '\''}
		}
		ch := l.peek()
		if ch == '\'' {
			b.WriteByte(l.advance())
			break
		}
		if ch == '\\' {
			b.WriteByte(l.advance())
			if l.offset < len(l.src) {
				b.WriteByte(l.advance())
			}
			continue
		}
		b.WriteByte(l.advance())
	}
	return FullToken{start, token.CHAR, b.String()}, nil
}

// operators lists every punctuation/operator lexeme, longest first so a
// simple linear scan implements maximal munch (&^= before &^ before &, :=
// before :, ... before ., and so on).
var operators = []struct {
	lit string
	tok token.Token
}{
	{"&^=", token.AND_NOT_ASSIGN},
	{"<<=", token.SHL_ASSIGN},
	{">>=", token.SHR_ASSIGN},
	{"...", token.ELLIPSIS},

	{"&^", token.AND_NOT},
	{"<<", token.SHL},
	{">>", token.SHR},
	{"+=", token.ADD_ASSIGN},
	{"-=", token.SUB_ASSIGN},
	{"*=", token.MUL_ASSIGN},
	{"/=", token.QUO_ASSIGN},
	{"%=", token.REM_ASSIGN},
	{"&=", token.AND_ASSIGN},
	{"|=", token.OR_ASSIGN},
	{"^=", token.XOR_ASSIGN},
	{"&&", token.LAND},
	{"||", token.LOR},
	{"<-", token.ARROW},
	{"++", token.INC},
	{"--", token.DEC},
	{"==", token.EQL},
	{"!=", token.NEQ},
	{"<=", token.LEQ},
	{">=", token.GEQ},
	{":=", token.DEFINE},

	{"+", token.ADD},
	{"-", token.SUB},
	{"*", token.MUL},
	{"/", token.QUO},
	{"%", token.REM},
	{"&", token.AND},
	{"|", token.OR},
	{"^", token.XOR},
	{"<", token.LSS},
	{">", token.GTR},
	{"=", token.ASSIGN},
	{"!", token.NOT},
	{"(", token.LPAREN},
	{"[", token.LBRACK},
	{"{", token.LBRACE},
	{",", token.COMMA},
	{".", token.PERIOD},
	{")", token.RPAREN},
	{"]", token.RBRACK},
	{"}", token.RBRACE},
	{";", token.SEMICOLON},
	{":", token.COLON},
}

func (l *Lexer) scanOperator(start token.Position) (FullToken, error) {
	rest := l.src[l.offset:]
	for _, op := range operators {
		if strings.HasPrefix(rest, op.lit) {
			for range op.lit {
				l.advance()
			}
			return FullToken{start, op.tok, op.lit}, nil
		}
	}
	ch := l.advance()
	return FullToken{}, &LexError{start, rune(ch)}
}
