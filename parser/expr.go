// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

package parser

import (
	"github.com/gogo-parse/gogo/ast"
	"github.com/gogo-parse/gogo/token"
)

func (p *parser) parseExprList() ([]ast.Expr, error) {
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	list := []ast.Expr{first}
	for p.curTok() == token.COMMA {
		p.advance()
		p.skipNewlines()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, nil
}

func (p *parser) parseExpr() (ast.Expr, error) {
	return p.parseBinaryExpr(token.LowestPrec + 1)
}

// parseBinaryExpr implements precedence-climbing using Go's canonical
// five-level operator precedence table (see DESIGN.md for why this is used
// instead of a flattened one).
func (p *parser) parseBinaryExpr(prec int) (ast.Expr, error) {
	x, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	for {
		opPrec := p.curTok().Precedence()
		if opPrec < prec {
			return x, nil
		}
		opTok := p.cur()
		p.advance()
		p.skipNewlines()
		y, err := p.parseBinaryExpr(opPrec + 1)
		if err != nil {
			return nil, err
		}
		x = &ast.BinaryExpr{X: x, OpPos: opTok.Pos, Op: opTok.Tok, Y: y}
	}
}

// parseUnaryExpr handles the right-associative prefix operators
// (-, ^, !, &), plus '*' for a pointer dereference (rendered as StarExpr,
// a distinct node from UnaryExpr).
func (p *parser) parseUnaryExpr() (ast.Expr, error) {
	switch p.curTok() {
	case token.SUB, token.XOR, token.NOT, token.AND:
		opTok := p.advance()
		x, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{OpPos: opTok.Pos, Op: opTok.Tok, X: x}, nil
	case token.MUL:
		star := p.advance().Pos
		x, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		return &ast.StarExpr{Star: star, X: x}, nil
	}
	return p.parsePrimaryExpr()
}

// parsePrimaryExpr parses an operand followed by any chain of selector,
// index, slice, call, and type-assertion suffixes.
func (p *parser) parsePrimaryExpr() (ast.Expr, error) {
	x, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	for {
		switch p.curTok() {
		case token.PERIOD:
			p.advance()
			if p.curTok() == token.LPAREN {
				lparen := p.advance().Pos
				if p.curTok() == token.TYPE {
					p.advance()
					if _, err := p.expect(token.RPAREN); err != nil {
						return nil, err
					}
					x = &ast.TypeAssertExpr{X: x, Lparen: lparen, Type: nil}
					continue
				}
				typ, err := p.parseType()
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(token.RPAREN); err != nil {
					return nil, err
				}
				x = &ast.TypeAssertExpr{X: x, Lparen: lparen, Type: typ}
				continue
			}
			sel, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			x = &ast.SelectorExpr{X: x, Sel: &ast.Ident{NamePos: sel.Pos, Name: sel.Lit}}
		case token.LBRACK:
			x, err = p.parseIndexOrSlice(x)
			if err != nil {
				return nil, err
			}
		case token.LPAREN:
			x, err = p.parseCallExpr(x)
			if err != nil {
				return nil, err
			}
		default:
			return x, nil
		}
	}
}

func (p *parser) parseIndexOrSlice(x ast.Expr) (ast.Expr, error) {
	lbrack := p.advance().Pos
	var low ast.Expr
	if p.curTok() != token.COLON && p.curTok() != token.RBRACK {
		l, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		low = l
	}
	if p.curTok() != token.COLON {
		if _, err := p.expect(token.RBRACK); err != nil {
			return nil, err
		}
		return &ast.IndexExpr{X: x, Lbrack: lbrack, Index: low}, nil
	}
	p.advance() // ':'
	se := &ast.SliceExpr{X: x, Lbrack: lbrack, Low: low}
	if p.curTok() != token.COLON && p.curTok() != token.RBRACK {
		h, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		se.High = h
	}
	if p.curTok() == token.COLON {
		p.advance()
		se.Slice3 = true
		m, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		se.Max = m
	}
	if _, err := p.expect(token.RBRACK); err != nil {
		return nil, err
	}
	return se, nil
}

func (p *parser) parseCallExpr(fun ast.Expr) (ast.Expr, error) {
	lparen := p.advance().Pos
	p.skipNewlines()
	call := &ast.CallExpr{Fun: fun, Lparen: lparen}
	for p.curTok() != token.RPAREN {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if p.curTok() == token.ELLIPSIS {
			p.advance()
			call.Ellipsis = true
		}
		p.skipNewlines()
		if p.curTok() == token.COMMA {
			p.advance()
			p.skipNewlines()
			continue
		}
		break
	}
	p.skipNewlines()
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return call, nil
}

func (p *parser) parseOperand() (ast.Expr, error) {
	switch p.curTok() {
	case token.IDENT:
		t := p.advance()
		id := &ast.Ident{NamePos: t.Pos, Name: t.Lit}
		if p.curTok() == token.LBRACE && p.allowCompositeLit() {
			return p.parseCompositeLit(id)
		}
		return id, nil
	case token.INT:
		t := p.advance()
		lit := t.Lit
		return &ast.BasicLit{ValuePos: t.Pos, Kind: ast.INT, Value: &lit}, nil
	case token.FLOAT:
		t := p.advance()
		lit := t.Lit
		return &ast.BasicLit{ValuePos: t.Pos, Kind: ast.FLOAT, Value: &lit}, nil
	case token.IMAG:
		t := p.advance()
		lit := t.Lit
		return &ast.BasicLit{ValuePos: t.Pos, Kind: ast.IMAG, Value: &lit}, nil
	case token.CHAR:
		t := p.advance()
		lit := t.Lit
		return &ast.BasicLit{ValuePos: t.Pos, Kind: ast.CHAR, Value: &lit}, nil
	case token.STRING:
		t := p.advance()
		lit := t.Lit
		return &ast.BasicLit{ValuePos: t.Pos, Kind: ast.STRING, Value: &lit}, nil
	case token.TRUE:
		t := p.advance()
		return &ast.BasicLit{ValuePos: t.Pos, Kind: ast.TRUE}, nil
	case token.FALSE:
		t := p.advance()
		return &ast.BasicLit{ValuePos: t.Pos, Kind: ast.FALSE}, nil
	case token.LPAREN:
		lparen := p.advance().Pos
		wasControl := p.noCompositeLit
		p.noCompositeLit = false
		x, err := p.parseExpr()
		p.noCompositeLit = wasControl
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.ParenExpr{Lparen: lparen, X: x}, nil
	case token.FUNC:
		pos := p.advance().Pos
		sig, err := p.parseFuncSignature()
		if err != nil {
			return nil, err
		}
		sig.Func = pos
		p.skipNewlines()
		body, err := p.parseBlockStmt()
		if err != nil {
			return nil, err
		}
		return &ast.FuncLit{Type: sig, Body: body}, nil
	case token.LBRACK, token.MAP, token.STRUCT, token.INTERFACE:
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if p.curTok() == token.LBRACE {
			return p.parseCompositeLit(typ)
		}
		return nil, p.errorf("expected a composite literal after type")
	case token.MUL:
		star := p.advance().Pos
		x, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		return &ast.StarExpr{Star: star, X: x}, nil
	}
	return nil, p.errorf("expected an expression")
}

// allowCompositeLit reports whether a `{` immediately following the
// current operand should open a CompositeLit, or should instead be left
// for the caller to consume as a block — the same exprLev trick go/parser
// itself uses for if/for/switch headers.
func (p *parser) allowCompositeLit() bool { return !p.noCompositeLit }

func (p *parser) parseCompositeLit(typ ast.TypeExpr) (ast.Expr, error) {
	lbrace := p.advance().Pos
	p.skipNewlines()
	cl := &ast.CompositeLit{Type: typ, Lbrace: lbrace}
	for p.curTok() != token.RBRACE {
		el, err := p.parseCompositeElem()
		if err != nil {
			return nil, err
		}
		cl.Elts = append(cl.Elts, el)
		p.skipNewlines()
		if p.curTok() == token.COMMA {
			p.advance()
			p.skipNewlines()
			continue
		}
		break
	}
	p.skipNewlines()
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return cl, nil
}

// parseCompositeElem parses one element of a composite literal, including
// a nested literal with its type elided (`{1, 2}` inside `[][]int{...}`)
// and key:value pairs.
func (p *parser) parseCompositeElem() (ast.Expr, error) {
	key, err := p.parseElemValue()
	if err != nil {
		return nil, err
	}
	if p.curTok() != token.COLON {
		return key, nil
	}
	p.advance()
	p.skipNewlines()
	value, err := p.parseElemValue()
	if err != nil {
		return nil, err
	}
	return &ast.KeyValueExpr{Key: key, Value: value}, nil
}

func (p *parser) parseElemValue() (ast.Expr, error) {
	if p.curTok() == token.LBRACE {
		return p.parseCompositeLit(nil)
	}
	return p.parseExpr()
}
