// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

package parser

import (
	"github.com/gogo-parse/gogo/ast"
	"github.com/gogo-parse/gogo/token"
)

// parseType parses one TypeExpr: a named type (possibly package-qualified),
// a pointer type, an array/slice type, a map type, a struct type, an
// interface type, or a function type.
func (p *parser) parseType() (ast.TypeExpr, error) {
	switch p.curTok() {
	case token.MUL:
		star := p.advance().Pos
		x, err := p.parsePointerBase()
		if err != nil {
			return nil, err
		}
		return &ast.StarExpr{Star: star, X: x}, nil
	case token.LBRACK:
		return p.parseArrayType()
	case token.MAP:
		return p.parseMapType()
	case token.STRUCT:
		return p.parseStructType()
	case token.INTERFACE:
		return p.parseInterfaceType()
	case token.FUNC:
		pos := p.advance().Pos
		ft, err := p.parseFuncSignature()
		if err != nil {
			return nil, err
		}
		ft.Func = pos
		return ft, nil
	case token.LPAREN:
		p.advance()
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	case token.IDENT:
		return p.parseTypeName()
	}
	if p.curTok().IsKeyword() {
		// predeclared type names (int, string, bool, ...) lex as
		// their own keyword token but behave like any other Ident
		// at type position.
		t := p.advance()
		return &ast.Ident{NamePos: t.Pos, Name: t.Tok.String()}, nil
	}
	return nil, p.errorf("expected a type")
}

// parsePointerBase parses the pointee of a pointer type `*T`. ast.StarExpr's
// X field is typed Expr so the same node serves both pointer types and
// dereference expressions; that restricts a pointer type's pointee to the
// forms that are also Expr-shaped, i.e. a named (possibly qualified) type or
// a nested pointer. `*[]T` / `*map[K]V` style pointer-to-composite types
// are out of scope (see DESIGN.md).
func (p *parser) parsePointerBase() (ast.Expr, error) {
	switch p.curTok() {
	case token.MUL:
		star := p.advance().Pos
		x, err := p.parsePointerBase()
		if err != nil {
			return nil, err
		}
		return &ast.StarExpr{Star: star, X: x}, nil
	case token.IDENT:
		t, err := p.parseTypeName()
		if err != nil {
			return nil, err
		}
		return t.(ast.Expr), nil
	}
	if p.curTok().IsKeyword() {
		t := p.advance()
		return &ast.Ident{NamePos: t.Pos, Name: t.Tok.String()}, nil
	}
	return nil, p.errorf("expected a pointer base type")
}

func (p *parser) parseTypeName() (ast.TypeExpr, error) {
	first, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	id := &ast.Ident{NamePos: first.Pos, Name: first.Lit}
	if p.curTok() != token.PERIOD {
		return id, nil
	}
	p.advance()
	sel, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	return &ast.SelectorExpr{X: id, Sel: &ast.Ident{NamePos: sel.Pos, Name: sel.Lit}}, nil
}

func (p *parser) parseArrayType() (ast.TypeExpr, error) {
	lbrack := p.advance().Pos // '['
	var length ast.Expr
	if p.curTok() != token.RBRACK {
		l, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		length = l
	}
	if _, err := p.expect(token.RBRACK); err != nil {
		return nil, err
	}
	elt, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.ArrayType{Lbrack: lbrack, Len: length, Elt: elt}, nil
}

func (p *parser) parseMapType() (ast.TypeExpr, error) {
	mapPos := p.advance().Pos // 'map'
	if _, err := p.expect(token.LBRACK); err != nil {
		return nil, err
	}
	key, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACK); err != nil {
		return nil, err
	}
	value, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.MapType{Map: mapPos, Key: key, Value: value}, nil
}

func (p *parser) parseStructType() (ast.TypeExpr, error) {
	structPos := p.advance().Pos // 'struct'
	fields, err := p.parseFieldList(token.LBRACE, token.RBRACE, fieldModeStruct)
	if err != nil {
		return nil, err
	}
	return &ast.StructType{Struct: structPos, Fields: fields}, nil
}

func (p *parser) parseInterfaceType() (ast.TypeExpr, error) {
	ifacePos := p.advance().Pos // 'interface'
	methods, err := p.parseFieldList(token.LBRACE, token.RBRACE, fieldModeInterface)
	if err != nil {
		return nil, err
	}
	return &ast.InterfaceType{Interface: ifacePos, Methods: methods}, nil
}
