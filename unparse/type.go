// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

package unparse

import (
	"fmt"

	"github.com/gogo-parse/gogo/ast"
)

func typeString(t ast.TypeExpr, level int) string {
	switch n := t.(type) {
	case *ast.Ident:
		return n.Name
	case *ast.SelectorExpr:
		return exprString(n.X, level) + "." + n.Sel.Name
	case *ast.StarExpr:
		return "*" + typeString(mustType(n.X), level)
	case *ast.Ellipsis:
		return "..." + typeString(n.Type, level)
	case *ast.ArrayType:
		lenStr := ""
		if n.Len != nil {
			lenStr = exprString(n.Len, level)
		}
		return "[" + lenStr + "]" + typeString(n.Elt, level)
	case *ast.MapType:
		return "map[" + typeString(n.Key, level) + "]" + typeString(n.Value, level)
	case *ast.StructType:
		if len(n.Fields.List) == 0 {
			return "struct{}"
		}
		return "struct " + fieldListBody(n.Fields.List, level)
	case *ast.InterfaceType:
		if len(n.Methods.List) == 0 {
			return "interface{}"
		}
		return "interface " + fieldListBody(n.Methods.List, level)
	case *ast.FuncType:
		return "func" + funcSignatureString(n, level)
	}
	panic(unhandled(t))
}

// mustType asserts that an expression double-used as a type (StarExpr's X,
// which is an Expr field shared between pointer types and dereferences) is
// itself type-shaped; the parser never builds a StarExpr type with a
// non-type operand.
func mustType(x ast.Expr) ast.TypeExpr {
	t, ok := x.(ast.TypeExpr)
	if !ok {
		panic("unparse: StarExpr operand is not a TypeExpr")
	}
	return t
}

func unhandled(n any) string {
	return fmt.Sprintf("unparse: unhandled node %T", n)
}
