// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

package parser

import (
	"github.com/gogo-parse/gogo/ast"
	"github.com/gogo-parse/gogo/token"
)

func (p *parser) parseBlockStmt() (*ast.BlockStmt, error) {
	lbrace, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	b := &ast.BlockStmt{Lbrace: lbrace.Pos}
	for p.curTok() != token.RBRACE {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		b.List = append(b.List, s)
		p.skipTerminator()
		p.skipNewlines()
	}
	rbrace := p.advance()
	b.Rbrace = rbrace.Pos
	return b, nil
}

func (p *parser) parseStmt() (ast.Stmt, error) {
	switch p.curTok() {
	case token.COMMENT:
		// Comments inside a block carry no AST representation
		// (BlockStmt.List holds only Stmt); drop them. Top-level
		// comments are preserved directly as *ast.Comment in
		// File.Decls instead.
		p.advance()
		p.skipTerminator()
		p.skipNewlines()
		return p.parseStmt()
	case token.VAR, token.CONST, token.TYPE:
		gd, err := p.parseGenDecl(p.curTok())
		if err != nil {
			return nil, err
		}
		return &ast.DeclStmt{Decl: gd}, nil
	case token.RETURN:
		return p.parseReturnStmt()
	case token.BREAK, token.CONTINUE, token.GOTO, token.FALLTHROUGH:
		return p.parseBranchStmt()
	case token.IF:
		return p.parseIfStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.SWITCH:
		return p.parseSwitchStmt()
	case token.LBRACE:
		return p.parseBlockStmt()
	case token.IDENT:
		if p.toks[p.pos+1].Tok == token.COLON {
			return p.parseLabeledStmt()
		}
	}
	return p.parseSimpleStmt()
}

func (p *parser) parseReturnStmt() (ast.Stmt, error) {
	pos := p.advance().Pos
	rs := &ast.ReturnStmt{Return: pos}
	if !p.atStmtEnd() {
		results, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		rs.Results = results
	}
	return rs, nil
}

func (p *parser) parseBranchStmt() (ast.Stmt, error) {
	t := p.advance()
	bs := &ast.BranchStmt{TokPos: t.Pos, Tok: t.Tok}
	if (t.Tok == token.BREAK || t.Tok == token.CONTINUE || t.Tok == token.GOTO) && p.curTok() == token.IDENT {
		lbl := p.advance()
		bs.Label = &lbl.Lit
	}
	return bs, nil
}

func (p *parser) parseLabeledStmt() (ast.Stmt, error) {
	labelTok := p.advance()
	colon := p.advance() // ':'
	return &ast.LabeledStmt{Label: labelTok.Lit, Colon: colon.Pos}, nil
}

func (p *parser) atStmtEnd() bool {
	switch p.curTok() {
	case token.NEWLINE, token.SEMICOLON, token.EOF, token.RBRACE:
		return true
	}
	return false
}

// parseSimpleStmt parses an expression statement, an assignment, or a
// postfix ++/-- statement; it is also used, without its own terminator,
// for the init/post clauses of for/if/switch headers.
func (p *parser) parseSimpleStmt() (ast.Stmt, error) {
	lhs, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	switch p.curTok() {
	case token.INC, token.DEC:
		opTok := p.advance()
		return &ast.ExprStmt{X: &ast.UnaryExpr{OpPos: opTok.Pos, Op: opTok.Tok, X: lhs[0], Right: true}}, nil
	}
	if token.IsAssignOp(p.curTok()) {
		tokTok := p.cur()
		p.advance()
		p.skipNewlines()
		rhs, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		return &ast.AssignStmt{Lhs: lhs, TokPos: tokTok.Pos, Tok: tokTok.Tok, Rhs: rhs}, nil
	}
	if len(lhs) != 1 {
		return nil, p.errorf("expected one of ,=:=,++,-- after expression list")
	}
	return &ast.ExprStmt{X: lhs[0]}, nil
}

// withControlHeader runs fn, which parses the header of an if/for/switch,
// with composite literals suppressed, and restores the previous setting
// afterwards.
func (p *parser) withControlHeader(fn func() error) error {
	saved := p.noCompositeLit
	p.noCompositeLit = true
	err := fn()
	p.noCompositeLit = saved
	return err
}

func (p *parser) parseIfStmt() (ast.Stmt, error) {
	pos := p.advance().Pos
	ifs := &ast.IfStmt{If: pos}
	err := p.withControlHeader(func() error {
		init, cond, err := p.parseHeaderInitAndExpr(token.SEMICOLON)
		if err != nil {
			return err
		}
		ifs.Init = init
		ifs.Cond = cond
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	body, err := p.parseBlockStmt()
	if err != nil {
		return nil, err
	}
	ifs.Body = body
	if p.curTok() == token.ELSE {
		p.advance()
		p.skipNewlines()
		if p.curTok() == token.IF {
			elseIf, err := p.parseIfStmt()
			if err != nil {
				return nil, err
			}
			ifs.Else = elseIf
		} else {
			elseBlock, err := p.parseBlockStmt()
			if err != nil {
				return nil, err
			}
			ifs.Else = elseBlock
		}
	}
	return ifs, nil
}

// parseHeaderInitAndExpr parses "[SimpleStmt ;] Expr" as used by if/switch
// headers, distinguishing an init clause from a bare condition by the
// presence of sep (SEMICOLON) after the first simple statement.
func (p *parser) parseHeaderInitAndExpr(sep token.Token) (ast.Stmt, ast.Expr, error) {
	if p.curTok() == token.LBRACE {
		return nil, nil, nil
	}
	first, err := p.parseSimpleStmtOrExpr()
	if err != nil {
		return nil, nil, err
	}
	if p.curTok() != sep {
		es, ok := first.(*ast.ExprStmt)
		if !ok {
			return nil, nil, p.errorf("expected a condition expression")
		}
		return nil, es.X, nil
	}
	p.advance()
	p.skipNewlines()
	cond, err := p.parseExpr()
	if err != nil {
		return nil, nil, err
	}
	return first, cond, nil
}

// parseSimpleStmtOrExpr is identical to parseSimpleStmt; the separate name
// only marks that callers are inside a control header. Composite literals
// inside a parenthesized sub-expression are re-enabled by parseOperand's
// `(` case, not here.
func (p *parser) parseSimpleStmtOrExpr() (ast.Stmt, error) {
	return p.parseSimpleStmt()
}

func (p *parser) parseForStmt() (ast.Stmt, error) {
	pos := p.advance().Pos
	if p.curTok() == token.RANGE {
		return p.parseRangeStmtNoVars(pos)
	}
	// Try the range forms `for x := range e` / `for x, y := range e` by
	// speculative lookahead: parse a simple statement, then check for a
	// trailing `range` keyword having been consumed as the RHS marker.
	var init, post ast.Stmt
	var condExpr ast.Expr
	err := p.withControlHeader(func() error {
		if p.curTok() == token.LBRACE {
			return nil
		}
		if rs, ok, err := p.tryParseRangeClause(pos); err != nil {
			return err
		} else if ok {
			init = rs
			return errRangeHandled
		}
		first, err := p.parseSimpleStmt()
		if err != nil {
			return err
		}
		if p.curTok() != token.SEMICOLON {
			// `for Cond { }` form: first must be a bare expr.
			es, ok := first.(*ast.ExprStmt)
			if !ok {
				return p.errorf("expected a condition expression")
			}
			condExpr = es.X
			return nil
		}
		init = first
		p.advance() // ';'
		p.skipNewlines()
		if p.curTok() != token.SEMICOLON {
			c, err := p.parseExpr()
			if err != nil {
				return err
			}
			condExpr = c
		}
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return err
		}
		p.skipNewlines()
		if p.curTok() != token.LBRACE {
			ps, err := p.parseSimpleStmt()
			if err != nil {
				return err
			}
			post = ps
		}
		return nil
	})
	if err == errRangeHandled {
		rangeStmt := init.(*ast.RangeStmt)
		p.skipNewlines()
		body, berr := p.parseBlockStmt()
		if berr != nil {
			return nil, berr
		}
		rangeStmt.Body = body
		return rangeStmt, nil
	}
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	body, err := p.parseBlockStmt()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{For: pos, Init: init, Cond: condExpr, Post: post, Body: body}, nil
}

// sentinel used to unwind withControlHeader once a range clause has been
// fully consumed, since its shape differs enough from the three-clause for
// loop that threading it through the same return values would be awkward.
var errRangeHandled = &ParseError{Msg: "internal: range clause handled"}

func (p *parser) parseRangeStmtNoVars(forPos token.Position) (ast.Stmt, error) {
	var x ast.Expr
	err := p.withControlHeader(func() error {
		p.advance() // 'range'
		e, err := p.parseExpr()
		if err != nil {
			return err
		}
		x = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	body, err := p.parseBlockStmt()
	if err != nil {
		return nil, err
	}
	return &ast.RangeStmt{For: forPos, Tok: token.ILLEGAL, X: x, Body: body}, nil
}

// tryParseRangeClause detects `for key[, value] := range x` / `for key[,
// value] = range x` by scanning ahead for a `range` keyword before the next
// `;`/`{`. On a match it consumes the whole clause (but not the body) and
// returns the *ast.RangeStmt; otherwise it leaves the parser position
// unchanged.
func (p *parser) tryParseRangeClause(forPos token.Position) (ast.Stmt, bool, error) {
	save := p.pos
	var key, value ast.Expr
	exprs, err := p.parseExprListNoRange()
	if err != nil || (p.curTok() != token.DEFINE && p.curTok() != token.ASSIGN) {
		p.pos = save
		return nil, false, nil
	}
	tokTok := p.cur()
	p.advance()
	if p.curTok() != token.RANGE {
		p.pos = save
		return nil, false, nil
	}
	p.advance() // 'range'
	x, err := p.parseExpr()
	if err != nil {
		return nil, false, err
	}
	if len(exprs) >= 1 {
		key = exprs[0]
	}
	if len(exprs) >= 2 {
		value = exprs[1]
	}
	return &ast.RangeStmt{For: forPos, Key: key, Value: value, Tok: tokTok.Tok, X: x}, true, nil
}

func (p *parser) parseExprListNoRange() ([]ast.Expr, error) {
	return p.parseExprList()
}

func (p *parser) parseSwitchStmt() (ast.Stmt, error) {
	pos := p.advance().Pos
	sw := &ast.SwitchStmt{Switch: pos}
	err := p.withControlHeader(func() error {
		init, tag, err := p.parseSwitchHeader()
		if err != nil {
			return err
		}
		sw.Init = init
		sw.Tag = tag
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	p.skipNewlines()
	body := &ast.BlockStmt{}
	for p.curTok() != token.RBRACE {
		cc, err := p.parseCaseClause()
		if err != nil {
			return nil, err
		}
		body.List = append(body.List, cc)
		p.skipNewlines()
	}
	rbrace := p.advance()
	body.Rbrace = rbrace.Pos
	sw.Body = body
	return sw, nil
}

// parseSwitchHeader parses the optional "[SimpleStmt ;] [Tag]" that
// precedes a switch body. It additionally recognizes the type-switch guard
// `t := i.(type)` (or a bare `i.(type)`), which is syntactically a full
// assignment/expression statement rather than a plain Expr, so Tag is
// typed as ast.Node rather than ast.Expr to admit this one
// statement-shaped case.
func (p *parser) parseSwitchHeader() (ast.Stmt, ast.Node, error) {
	if p.curTok() == token.LBRACE {
		return nil, nil, nil
	}
	first, err := p.parseSimpleStmt()
	if err != nil {
		return nil, nil, err
	}
	if p.curTok() != token.SEMICOLON {
		if es, ok := first.(*ast.ExprStmt); ok {
			return nil, es.X, nil
		}
		return nil, first, nil
	}
	p.advance()
	p.skipNewlines()
	if p.curTok() == token.LBRACE {
		return first, nil, nil
	}
	tagStmt, err := p.parseSimpleStmt()
	if err != nil {
		return nil, nil, err
	}
	if es, ok := tagStmt.(*ast.ExprStmt); ok {
		return first, es.X, nil
	}
	return first, tagStmt, nil
}

func (p *parser) parseCaseClause() (ast.Stmt, error) {
	pos := p.cur().Pos
	cc := &ast.CaseClause{Case: pos}
	switch p.curTok() {
	case token.CASE:
		p.advance()
		list, err := p.parseCaseExprList()
		if err != nil {
			return nil, err
		}
		cc.List = list
	case token.DEFAULT:
		p.advance()
	default:
		return nil, p.errorf("expected 'case' or 'default'")
	}
	colon, err := p.expect(token.COLON)
	if err != nil {
		return nil, err
	}
	cc.Colon = colon.Pos
	p.skipNewlines()
	for p.curTok() != token.CASE && p.curTok() != token.DEFAULT && p.curTok() != token.RBRACE {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		cc.Body = append(cc.Body, s)
		p.skipTerminator()
		p.skipNewlines()
	}
	return cc, nil
}

// parseCaseExprList parses the comma-separated list after `case`, which may
// hold either value expressions or type expressions (a type-switch arm);
// both shapes are syntactically Expr-compatible since a bare type name
// parses the same as an Ident expression.
func (p *parser) parseCaseExprList() ([]ast.Expr, error) {
	first, err := p.parseCaseExprOrType()
	if err != nil {
		return nil, err
	}
	list := []ast.Expr{first}
	for p.curTok() == token.COMMA {
		p.advance()
		p.skipNewlines()
		e, err := p.parseCaseExprOrType()
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, nil
}

func (p *parser) parseCaseExprOrType() (ast.Expr, error) {
	if p.curTok() == token.MUL {
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return typ.(ast.Expr), nil
	}
	if p.curTok().IsKeyword() && p.curTok() != token.TRUE && p.curTok() != token.FALSE {
		t := p.advance()
		return &ast.Ident{NamePos: t.Pos, Name: t.Tok.String()}, nil
	}
	return p.parseExpr()
}
