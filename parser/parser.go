// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

// Package parser builds the gogo AST (package ast) from the token stream
// produced by package lexer: precedence-climbing for binary/unary
// operators, NEWLINE permitted (but not required) inside parens/braces, and
// the function-type-vs-composite-literal and type-switch disambiguations
// anchored on syntactic context rather than lookahead tables.
package parser

import (
	"fmt"

	"github.com/gogo-parse/gogo/ast"
	"github.com/gogo-parse/gogo/lexer"
	"github.com/gogo-parse/gogo/token"
)

// ParseError is raised when no grammar production matches the current
// token. It carries the offending token's kind, lexeme and position so
// callers can build diagnostics.
type ParseError struct {
	Pos token.Position
	Tok token.Token
	Lit string
	Msg string
}

func (e *ParseError) Error() string {
	if e.Lit != "" {
		return fmt.Sprintf("%v: %s (got %v %q)", e.Pos, e.Msg, e.Tok, e.Lit)
	}
	return fmt.Sprintf("%v: %s (got %v)", e.Pos, e.Msg, e.Tok)
}

// Parse tokenizes and parses src. A trailing newline is appended if missing.
// The result is a *ast.File when src opens with a package clause; otherwise
// it is whichever single node or ast.NodeList the top-level sequence
// reduces to, enabling round-tripping of bare snippets.
func Parse(src string) (ast.Node, error) {
	if len(src) == 0 || src[len(src)-1] != '\n' {
		src += "\n"
	}
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	return p.parseTop()
}

type parser struct {
	toks []lexer.FullToken
	pos  int

	// noCompositeLit is set while parsing the header of an if/for/switch
	// statement, where a `{` must close the header and open the block
	// rather than open a composite literal.
	noCompositeLit bool
}

func (p *parser) cur() lexer.FullToken  { return p.toks[p.pos] }
func (p *parser) curTok() token.Token   { return p.toks[p.pos].Tok }
func (p *parser) advance() lexer.FullToken {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) errorf(format string, args ...any) error {
	t := p.cur()
	return &ParseError{Pos: t.Pos, Tok: t.Tok, Lit: t.Lit, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(tok token.Token) (lexer.FullToken, error) {
	if p.curTok() != tok {
		return lexer.FullToken{}, p.errorf("expected %v", tok)
	}
	return p.advance(), nil
}

// skipNewlines consumes zero or more NEWLINE tokens. NEWLINE carries no
// semantic weight once a production has decided to allow it; it is never
// stored on the tree, since the unparser's layout rules are fully
// deterministic and never replay the source's original blank lines.
func (p *parser) skipNewlines() {
	for p.curTok() == token.NEWLINE {
		p.advance()
	}
}

// skipTerminator consumes one-or-more NEWLINE tokens acting as a statement
// terminator, or does nothing if the next token is EOF/RBRACE (a statement
// at the end of a block needs no trailing terminator of its own).
func (p *parser) skipTerminator() {
	if p.curTok() == token.NEWLINE {
		p.skipNewlines()
		return
	}
}

// ---- top level --------------------------------------------------------

func (p *parser) parseTop() (ast.Node, error) {
	p.skipNewlines()
	if p.curTok() == token.PACKAGE {
		return p.parseFile()
	}
	return p.parseBareTop()
}

func (p *parser) parseFile() (*ast.File, error) {
	pkgPos := p.cur().Pos
	p.advance() // 'package'
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	p.skipTerminator()

	f := &ast.File{
		NamePos: pkgPos,
		Name:    &ast.Package{PackagePos: pkgPos, Name: nameTok.Lit},
	}
	for {
		p.skipNewlines()
		if p.curTok() == token.EOF {
			break
		}
		decl, err := p.parseTopDecl()
		if err != nil {
			return nil, err
		}
		f.Decls = append(f.Decls, decl)
		p.skipTerminator()
	}
	return f, nil
}

func (p *parser) parseTopDecl() (ast.Decl, error) {
	switch p.curTok() {
	case token.COMMENT:
		t := p.advance()
		return &ast.Comment{Slash: t.Pos, Text: trimComment(t.Lit)}, nil
	case token.IMPORT:
		return p.parseGenDecl(token.IMPORT)
	case token.VAR, token.CONST, token.TYPE:
		return p.parseGenDecl(p.curTok())
	case token.FUNC:
		return p.parseFuncDecl()
	}
	return nil, p.errorf("expected a top-level declaration")
}

// parseBareTop parses a source with no package clause: a sequence of
// statements/declarations, returned as a single node if there is exactly
// one, or an ast.StmtList otherwise.
func (p *parser) parseBareTop() (ast.Node, error) {
	var stmts []ast.Stmt
	for {
		p.skipNewlines()
		if p.curTok() == token.EOF {
			break
		}
		var s ast.Stmt
		var err error
		switch p.curTok() {
		case token.VAR, token.CONST, token.TYPE:
			gd, gerr := p.parseGenDecl(p.curTok())
			if gerr != nil {
				return nil, gerr
			}
			s, err = &ast.DeclStmt{Decl: gd}, nil
		case token.FUNC:
			s, err = p.parseFuncDecl()
		default:
			s, err = p.parseStmt()
		}
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
		p.skipTerminator()
	}
	if len(stmts) == 1 {
		return stmts[0], nil
	}
	return ast.StmtList(stmts), nil
}

func trimComment(lit string) string {
	s := lit
	if len(s) >= 2 && s[0] == '/' && s[1] == '/' {
		s = s[2:]
	}
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	return s
}
