// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

package unparse

import (
	"strings"

	"github.com/gogo-parse/gogo/ast"
)

func exprListString(exprs []ast.Expr, level int) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = exprString(e, level)
	}
	return strings.Join(parts, ", ")
}

func exprString(e ast.Expr, level int) string {
	switch n := e.(type) {
	case *ast.Ident:
		return n.Name
	case *ast.BasicLit:
		return basicLitString(n)
	case *ast.BinaryExpr:
		return exprString(n.X, level) + " " + n.Op.String() + " " + exprString(n.Y, level)
	case *ast.UnaryExpr:
		if n.Right {
			return exprString(n.X, level) + n.Op.String()
		}
		return n.Op.String() + exprString(n.X, level)
	case *ast.ParenExpr:
		return "(" + exprString(n.X, level) + ")"
	case *ast.SelectorExpr:
		return exprString(n.X, level) + "." + n.Sel.Name
	case *ast.IndexExpr:
		return exprString(n.X, level) + "[" + exprString(n.Index, level) + "]"
	case *ast.SliceExpr:
		return sliceExprString(n, level)
	case *ast.CallExpr:
		return callExprString(n, level)
	case *ast.StarExpr:
		return "*" + exprString(n.X, level)
	case *ast.TypeAssertExpr:
		if n.Type == nil {
			return exprString(n.X, level) + ".(type)"
		}
		return exprString(n.X, level) + ".(" + typeString(n.Type, level) + ")"
	case *ast.CompositeLit:
		return compositeLitString(n, level)
	case *ast.KeyValueExpr:
		return exprString(n.Key, level) + ": " + exprString(n.Value, level)
	case *ast.FuncLit:
		return "func" + funcSignatureString(n.Type, level) + " " + blockString(n.Body, level)
	}
	panic(unhandled(e))
}

func basicLitString(n *ast.BasicLit) string {
	switch n.Kind {
	case ast.TRUE:
		return "true"
	case ast.FALSE:
		return "false"
	default:
		return *n.Value
	}
}

func sliceExprString(n *ast.SliceExpr, level int) string {
	var b strings.Builder
	b.WriteString(exprString(n.X, level))
	b.WriteByte('[')
	if n.Low != nil {
		b.WriteString(exprString(n.Low, level))
	}
	b.WriteByte(':')
	if n.High != nil {
		b.WriteString(exprString(n.High, level))
	}
	if n.Slice3 {
		b.WriteByte(':')
		b.WriteString(exprString(n.Max, level))
	}
	b.WriteByte(']')
	return b.String()
}

func callExprString(n *ast.CallExpr, level int) string {
	var b strings.Builder
	b.WriteString(exprString(n.Fun, level))
	b.WriteByte('(')
	for i, a := range n.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(exprString(a, level))
	}
	if n.Ellipsis {
		b.WriteString("...")
	}
	b.WriteByte(')')
	return b.String()
}

// compositeLitString renders an empty literal as `T{}`; with elements, one
// per indented line, separated by `,\n`, with a trailing comma on the last
// element (gofmt's own convention for multi-line composite literals).
func compositeLitString(n *ast.CompositeLit, level int) string {
	typeStr := ""
	if n.Type != nil {
		typeStr = typeString(n.Type, level)
	}
	if len(n.Elts) == 0 {
		return typeStr + "{}"
	}
	var b strings.Builder
	b.WriteString(typeStr)
	b.WriteString("{\n")
	for _, elt := range n.Elts {
		b.WriteString(indent(level + 1))
		b.WriteString(exprString(elt, level+1))
		b.WriteString(",\n")
	}
	b.WriteString(indent(level) + "}")
	return b.String()
}
