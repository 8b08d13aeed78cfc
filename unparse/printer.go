// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

// Package unparse renders a gogo ast.Node back into formatted Go source
// under a deterministic layout: four-space indentation, a blank line
// between every FuncDecl and its neighbouring declarations, outdented case
// clauses, and the other fixed spacing rules
// the renderers below enforce per node kind. Every renderer is pure: it
// takes an indent level and returns a string, rather than writing through
// shared mutable cursor state, so a multi-line value (a composite literal,
// a struct body) can be embedded inside a larger expression without the two
// fighting over position.
package unparse

import (
	"fmt"
	"strings"

	"github.com/gogo-parse/gogo/ast"
)

const indentUnit = "    "

func indent(level int) string { return strings.Repeat(indentUnit, level) }

// Unparse renders node, terminated by exactly one trailing newline.
// Passing an ast.NodeList (as returned by parser.Parse for a package-less
// snippet) renders each element on its own line, or comma-separated for an
// ast.ExprList.
func Unparse(node ast.Node) string {
	var out string
	switch n := node.(type) {
	case *ast.File:
		out = renderFile(n)
	case ast.NodeList:
		out = renderNodeList(n)
	case ast.Decl:
		out = declString(n, 0)
	case ast.Stmt:
		out = stmtString(n, 0)
	case ast.Expr:
		out = exprString(n, 0)
	case ast.TypeExpr:
		out = typeString(n, 0)
	default:
		panic(fmt.Sprintf("unparse: unhandled node %T", node))
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

func renderNodeList(list ast.NodeList) string {
	switch l := list.(type) {
	case ast.ExprList:
		parts := make([]string, len(l))
		for i, e := range l {
			parts[i] = exprString(e, 0)
		}
		return strings.Join(parts, ", ")
	case ast.StmtList:
		var b strings.Builder
		for i, s := range l {
			b.WriteString(stmtString(s, 0))
			b.WriteByte('\n')
			if i < len(l)-1 {
				_, curFunc := s.(*ast.FuncDecl)
				_, nextFunc := l[i+1].(*ast.FuncDecl)
				if curFunc || nextFunc {
					b.WriteByte('\n')
				}
			}
		}
		return b.String()
	default:
		panic(fmt.Sprintf("unparse: unhandled NodeList %T", list))
	}
}
