// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

package parser

import (
	"github.com/gogo-parse/gogo/ast"
	"github.com/gogo-parse/gogo/token"
)

// parseGenDecl parses a grouped or single import/var/const/type
// declaration. The `(` form sets Lparen so the unparser can reproduce the
// same single-line-vs-grouped choice for var/const/type as it does for
// imports.
func (p *parser) parseGenDecl(tok token.Token) (*ast.GenDecl, error) {
	pos := p.cur().Pos
	p.advance() // the keyword

	gd := &ast.GenDecl{TokPos: pos, Tok: tok}
	if p.curTok() == token.LPAREN {
		gd.Lparen = true
		p.advance()
		p.skipNewlines()
		for p.curTok() != token.RPAREN {
			spec, err := p.parseSpec(tok)
			if err != nil {
				return nil, err
			}
			gd.Specs = append(gd.Specs, spec)
			p.skipTerminator()
			p.skipNewlines()
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return gd, nil
	}
	spec, err := p.parseSpec(tok)
	if err != nil {
		return nil, err
	}
	gd.Specs = []ast.Spec{spec}
	return gd, nil
}

func (p *parser) parseSpec(tok token.Token) (ast.Spec, error) {
	switch tok {
	case token.IMPORT:
		return p.parseImportSpec()
	case token.VAR, token.CONST:
		return p.parseValueSpec()
	case token.TYPE:
		return p.parseTypeSpec()
	}
	return nil, p.errorf("unknown declaration keyword")
}

func (p *parser) parseImportSpec() (*ast.ImportSpec, error) {
	pos := p.cur().Pos
	spec := &ast.ImportSpec{NamePos: pos}
	switch p.curTok() {
	case token.IDENT:
		t := p.advance()
		spec.Name = &ast.Ident{NamePos: t.Pos, Name: t.Lit}
	case token.PERIOD:
		t := p.advance()
		spec.Name = &ast.Ident{NamePos: t.Pos, Name: "."}
	}
	str, err := p.expect(token.STRING)
	if err != nil {
		return nil, err
	}
	lit := str.Lit
	spec.Path = &ast.BasicLit{ValuePos: str.Pos, Kind: ast.STRING, Value: &lit}
	return spec, nil
}

func (p *parser) parseValueSpec() (*ast.ValueSpec, error) {
	pos := p.cur().Pos
	names, err := p.parseIdentNameList()
	if err != nil {
		return nil, err
	}
	vs := &ast.ValueSpec{NamePos: pos, Names: names}
	if p.curTok() != token.ASSIGN && p.curTok() != token.NEWLINE && p.curTok() != token.SEMICOLON && p.curTok() != token.EOF && p.curTok() != token.RPAREN {
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		vs.Type = typ
	}
	if p.curTok() == token.ASSIGN {
		p.advance()
		values, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		vs.Values = values
	}
	return vs, nil
}

func (p *parser) parseIdentNameList() ([]string, error) {
	first, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	names := []string{first.Lit}
	for p.curTok() == token.COMMA {
		p.advance()
		id, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		names = append(names, id.Lit)
	}
	return names, nil
}

func (p *parser) parseTypeSpec() (*ast.TypeSpec, error) {
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.TypeSpec{
		NamePos: nameTok.Pos,
		Name:    &ast.Ident{NamePos: nameTok.Pos, Name: nameTok.Lit},
		Type:    typ,
	}, nil
}

func (p *parser) parseFuncDecl() (*ast.FuncDecl, error) {
	pos := p.cur().Pos
	p.advance() // 'func'

	var recv *ast.FieldList
	if p.curTok() == token.LPAREN {
		r, err := p.parseFieldList(token.LPAREN, token.RPAREN, fieldModeParam)
		if err != nil {
			return nil, err
		}
		recv = r
	}
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	typ, err := p.parseFuncSignature()
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	body, err := p.parseBlockStmt()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDecl{
		FuncPos: pos,
		Recv:    recv,
		Name:    nameTok.Lit,
		Type:    typ,
		Body:    body,
	}, nil
}

// parseFuncSignature parses the `(params) results` portion of a function
// type or literal, the part after the 'func' keyword (and, for FuncDecl,
// after the name).
func (p *parser) parseFuncSignature() (*ast.FuncType, error) {
	pos := p.cur().Pos
	params, err := p.parseFieldList(token.LPAREN, token.RPAREN, fieldModeParam)
	if err != nil {
		return nil, err
	}
	ft := &ast.FuncType{Func: pos, Params: params}
	switch p.curTok() {
	case token.LBRACE, token.NEWLINE, token.EOF, token.SEMICOLON, token.RPAREN, token.RBRACE, token.COMMA:
		// no results
	case token.LPAREN:
		results, err := p.parseFieldList(token.LPAREN, token.RPAREN, fieldModeParam)
		if err != nil {
			return nil, err
		}
		ft.Results = results
	default:
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		ft.Results = &ast.FieldList{List: []*ast.Field{{Type: typ}}}
	}
	return ft, nil
}

type fieldMode int

const (
	fieldModeParam fieldMode = iota
	fieldModeStruct
	fieldModeInterface
)

// parseFieldList parses a FieldList opened by `open` and closed by `close`,
// accepting both comma and newline as separators between entries so the
// same routine serves parameter lists, struct bodies and interface bodies.
//
// Known scope cut: unlike real Go, a comma-joined name
// group sharing one trailing type (`func f(a, b int)`) is not supported;
// every field repeats its own type. This keeps the name/type disambiguation
// a one-token lookahead instead of Go's full backtracking parameter-list
// grammar, and no fixture in this spec exercises the grouped form.
func (p *parser) parseFieldList(open, closeTok token.Token, mode fieldMode) (*ast.FieldList, error) {
	openPos := p.cur().Pos
	if _, err := p.expect(open); err != nil {
		return nil, err
	}
	p.skipNewlines()
	fl := &ast.FieldList{Opening: openPos}
	for p.curTok() != closeTok {
		f, err := p.parseField(mode)
		if err != nil {
			return nil, err
		}
		fl.List = append(fl.List, f)
		switch p.curTok() {
		case token.COMMA:
			p.advance()
			p.skipNewlines()
		case token.NEWLINE:
			p.skipNewlines()
		default:
			goto done
		}
	}
done:
	closePos := p.cur().Pos
	if _, err := p.expect(closeTok); err != nil {
		return nil, err
	}
	fl.Closing = closePos
	return fl, nil
}

func (p *parser) parseField(mode fieldMode) (*ast.Field, error) {
	if p.curTok() == token.ELLIPSIS {
		dots := p.advance().Pos
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.Field{Type: &ast.Ellipsis{Dots: dots, Type: typ}}, nil
	}
	if mode == fieldModeInterface && p.curTok() == token.IDENT {
		// Either an embedded interface name (bare type) or a method
		// signature `Name(params) results`.
		nameTok := p.advance()
		if p.curTok() == token.LPAREN {
			sig, err := p.parseFuncSignature()
			if err != nil {
				return nil, err
			}
			name := nameTok.Lit
			return &ast.Field{Name: &name, Type: sig}, nil
		}
		return &ast.Field{Type: &ast.Ident{NamePos: nameTok.Pos, Name: nameTok.Lit}}, nil
	}
	if p.curTok() == token.IDENT {
		// Lookahead of exactly one token: if the identifier is
		// immediately followed by a separator or the closing token,
		// it is the field's unnamed type; otherwise it is the name
		// and a type expression follows.
		nameTok := p.cur()
		save := p.pos
		p.advance()
		switch p.curTok() {
		case token.COMMA, token.NEWLINE, token.RPAREN, token.RBRACE, token.EOF:
			p.pos = save
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			return &ast.Field{Type: typ}, nil
		case token.ELLIPSIS:
			p.advance()
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			name := nameTok.Lit
			return &ast.Field{Name: &name, Type: &ast.Ellipsis{Type: typ}}, nil
		default:
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			name := nameTok.Lit
			return &ast.Field{Name: &name, Type: typ}, nil
		}
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.Field{Type: typ}, nil
}
