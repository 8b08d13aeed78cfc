// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

package unparse

import (
	"strings"

	"github.com/gogo-parse/gogo/ast"
)

func blockString(b *ast.BlockStmt, level int) string {
	if len(b.List) == 0 {
		return "{}"
	}
	var out strings.Builder
	out.WriteString("{\n")
	for _, s := range b.List {
		out.WriteString(indent(level + 1))
		out.WriteString(stmtString(s, level+1))
		out.WriteByte('\n')
	}
	out.WriteString(indent(level) + "}")
	return out.String()
}

func stmtString(s ast.Stmt, level int) string {
	switch n := s.(type) {
	case *ast.BlockStmt:
		return blockString(n, level)
	case *ast.ExprStmt:
		return exprString(n.X, level)
	case *ast.AssignStmt:
		return assignStmtString(n, level)
	case *ast.ReturnStmt:
		if len(n.Results) == 0 {
			return "return"
		}
		return "return " + exprListString(n.Results, level)
	case *ast.BranchStmt:
		return branchStmtString(n)
	case *ast.LabeledStmt:
		return n.Label + ":"
	case *ast.IfStmt:
		return ifStmtString(n, level)
	case *ast.ForStmt:
		return forStmtString(n, level)
	case *ast.RangeStmt:
		return rangeStmtString(n, level)
	case *ast.SwitchStmt:
		return switchStmtString(n, level)
	case *ast.CaseClause:
		return caseClauseString(n, level)
	case *ast.DeclStmt:
		return declString(n.Decl, level)
	case *ast.FuncDecl:
		return funcDeclString(n, level)
	}
	panic(unhandled(s))
}

// assignStmtString implements blank-identifier elision: an LHS of exactly
// `_` drops both the LHS and the operator, so `_ = f()` round-trips from
// source written as the bare call `f()`.
func assignStmtString(n *ast.AssignStmt, level int) string {
	if isBlankLhs(n.Lhs) {
		return exprListString(n.Rhs, level)
	}
	return exprListString(n.Lhs, level) + " " + n.Tok.String() + " " + exprListString(n.Rhs, level)
}

func isBlankLhs(lhs []ast.Expr) bool {
	if len(lhs) != 1 {
		return false
	}
	id, ok := lhs[0].(*ast.Ident)
	return ok && id.Name == "_"
}

func branchStmtString(n *ast.BranchStmt) string {
	kw := n.Tok.String()
	if n.Label != nil {
		return kw + " " + *n.Label
	}
	return kw
}

func ifStmtString(n *ast.IfStmt, level int) string {
	var b strings.Builder
	b.WriteString("if ")
	if n.Init != nil {
		b.WriteString(stmtString(n.Init, level))
		b.WriteString("; ")
	}
	b.WriteString(exprString(n.Cond, level))
	b.WriteString(" ")
	b.WriteString(blockString(n.Body, level))
	if n.Else != nil {
		b.WriteString(" else ")
		switch e := n.Else.(type) {
		case *ast.IfStmt:
			b.WriteString(ifStmtString(e, level))
		case *ast.BlockStmt:
			b.WriteString(blockString(e, level))
		default:
			panic(unhandled(n.Else))
		}
	}
	return b.String()
}

func forStmtString(n *ast.ForStmt, level int) string {
	var b strings.Builder
	b.WriteString("for")
	switch {
	case n.Init == nil && n.Cond == nil && n.Post == nil:
		// infinite loop: bare `for {`
	case n.Init == nil && n.Post == nil:
		b.WriteString(" ")
		b.WriteString(exprString(n.Cond, level))
	default:
		b.WriteString(" ")
		if n.Init != nil {
			b.WriteString(stmtString(n.Init, level))
		}
		b.WriteString("; ")
		if n.Cond != nil {
			b.WriteString(exprString(n.Cond, level))
		}
		b.WriteString("; ")
		if n.Post != nil {
			b.WriteString(stmtString(n.Post, level))
		}
	}
	b.WriteString(" ")
	b.WriteString(blockString(n.Body, level))
	return b.String()
}

func rangeStmtString(n *ast.RangeStmt, level int) string {
	var b strings.Builder
	b.WriteString("for ")
	if n.Key != nil {
		b.WriteString(exprString(n.Key, level))
		if n.Value != nil {
			b.WriteString(", ")
			b.WriteString(exprString(n.Value, level))
		}
		b.WriteString(" " + n.Tok.String() + " ")
	}
	b.WriteString("range ")
	b.WriteString(exprString(n.X, level))
	b.WriteString(" ")
	b.WriteString(blockString(n.Body, level))
	return b.String()
}

func switchStmtString(n *ast.SwitchStmt, level int) string {
	var b strings.Builder
	b.WriteString("switch ")
	if n.Init != nil {
		b.WriteString(stmtString(n.Init, level))
		b.WriteString("; ")
	}
	if n.Tag != nil {
		b.WriteString(switchTagString(n.Tag, level))
		b.WriteString(" ")
	}
	b.WriteString("{\n")
	for _, s := range n.Body.List {
		cc := s.(*ast.CaseClause)
		b.WriteString(indent(level))
		b.WriteString(caseClauseString(cc, level))
		b.WriteByte('\n')
	}
	b.WriteString(indent(level) + "}")
	return b.String()
}

// switchTagString renders a switch's Tag, which is either a plain Expr or
// the full guard statement of a type switch (`t := i.(type)`).
func switchTagString(tag ast.Node, level int) string {
	switch n := tag.(type) {
	case ast.Expr:
		return exprString(n, level)
	case ast.Stmt:
		return stmtString(n, level)
	}
	panic(unhandled(tag))
}

// caseClauseString renders the `case`/`default` keyword at the given level
// (the same level as the enclosing switch, matching gofmt) with its body
// indented one level deeper than that.
func caseClauseString(n *ast.CaseClause, level int) string {
	var b strings.Builder
	if len(n.List) == 0 {
		b.WriteString("default:")
	} else {
		b.WriteString("case ")
		b.WriteString(exprListString(n.List, level))
		b.WriteString(":")
	}
	for _, s := range n.Body {
		b.WriteByte('\n')
		b.WriteString(indent(level + 1))
		b.WriteString(stmtString(s, level+1))
	}
	return b.String()
}
