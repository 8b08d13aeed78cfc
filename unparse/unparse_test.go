// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

package unparse

import (
	"strings"
	"testing"

	"github.com/gogo-parse/gogo/ast"
	"github.com/gogo-parse/gogo/token"
)

func strPtr(s string) *string { return &s }

// TestUnparseTotality exercises the "totality of unparser" property on a
// sample of AST variants (expressions, types and simple statements): each
// must render to the expected text without panicking. Each case is built by
// hand rather than through the parser, so the unparser's dispatch tables
// are checked independently of parsing.
func TestUnparseTotality(t *testing.T) {
	ident := func(n string) *ast.Ident { return &ast.Ident{Name: n} }
	intLit := func(s string) *ast.BasicLit { return &ast.BasicLit{Kind: ast.INT, Value: strPtr(s)} }

	cases := []struct {
		name string
		node ast.Node
		want string
	}{
		{"ident-type", ident("Foo"), "Foo\n"},
		{"basic-lit-true", &ast.BasicLit{Kind: ast.TRUE}, "true\n"},
		{"basic-lit-false", &ast.BasicLit{Kind: ast.FALSE}, "false\n"},
		{
			"binary-expr",
			&ast.BinaryExpr{X: ident("a"), Op: token.ADD, Y: ident("b")},
			"a + b\n",
		},
		{
			"unary-expr-prefix",
			&ast.UnaryExpr{Op: token.NOT, X: ident("ok")},
			"!ok\n",
		},
		{
			"unary-expr-postfix",
			&ast.UnaryExpr{Op: token.INC, X: ident("i"), Right: true},
			"i++\n",
		},
		{
			"paren-expr",
			&ast.ParenExpr{X: &ast.BinaryExpr{X: ident("a"), Op: token.ADD, Y: ident("b")}},
			"(a + b)\n",
		},
		{
			"selector-expr",
			&ast.SelectorExpr{X: ident("a"), Sel: ident("Field")},
			"a.Field\n",
		},
		{
			"index-expr",
			&ast.IndexExpr{X: ident("a"), Index: intLit("0")},
			"a[0]\n",
		},
		{
			"slice-expr-full",
			&ast.SliceExpr{X: ident("a"), Low: intLit("1"), High: intLit("2")},
			"a[1:2]\n",
		},
		{
			"slice-expr-3",
			&ast.SliceExpr{X: ident("a"), Low: intLit("1"), High: intLit("2"), Max: intLit("3"), Slice3: true},
			"a[1:2:3]\n",
		},
		{
			"call-expr-ellipsis",
			&ast.CallExpr{Fun: ident("f"), Args: []ast.Expr{ident("xs")}, Ellipsis: true},
			"f(xs...)\n",
		},
		{
			"star-expr",
			&ast.StarExpr{X: ident("T")},
			"*T\n",
		},
		{
			"type-assert-with-type",
			&ast.TypeAssertExpr{X: ident("x"), Type: ident("string")},
			"x.(string)\n",
		},
		{
			"type-assert-type-switch",
			&ast.TypeAssertExpr{X: ident("x"), Type: nil},
			"x.(type)\n",
		},
		{
			"composite-lit-empty",
			&ast.CompositeLit{Type: ident("T")},
			"T{}\n",
		},
		{
			"composite-lit-elems",
			&ast.CompositeLit{Type: ident("T"), Elts: []ast.Expr{intLit("1"), intLit("2")}},
			"T{\n    1,\n    2,\n}\n",
		},
		{
			"key-value-expr",
			&ast.KeyValueExpr{Key: ident("k"), Value: intLit("1")},
			"k: 1\n",
		},
		{
			"array-type-slice",
			&ast.ArrayType{Elt: ident("int")},
			"[]int\n",
		},
		{
			"array-type-fixed",
			&ast.ArrayType{Len: intLit("3"), Elt: ident("int")},
			"[3]int\n",
		},
		{
			"map-type",
			&ast.MapType{Key: ident("string"), Value: ident("int")},
			"map[string]int\n",
		},
		{
			"struct-type-empty",
			&ast.StructType{Fields: &ast.FieldList{}},
			"struct{}\n",
		},
		{
			"struct-type-fields",
			&ast.StructType{Fields: &ast.FieldList{List: []*ast.Field{
				{Name: strPtr("X"), Type: ident("int")},
			}}},
			"struct {\n    X int\n}\n",
		},
		{
			"interface-type-empty",
			&ast.InterfaceType{Methods: &ast.FieldList{}},
			"interface{}\n",
		},
		{
			"ellipsis-type",
			&ast.Ellipsis{Type: ident("int")},
			"...int\n",
		},
		{
			"func-type",
			&ast.FuncType{Params: &ast.FieldList{}},
			"func()\n",
		},
		{
			"branch-break",
			&ast.BranchStmt{Tok: token.BREAK},
			"break\n",
		},
		{
			"branch-continue-labeled",
			&ast.BranchStmt{Tok: token.CONTINUE, Label: strPtr("loop")},
			"continue loop\n",
		},
		{
			"labeled-stmt",
			&ast.LabeledStmt{Label: "loop"},
			"loop:\n",
		},
		{
			"assign-blank-identifier-elided",
			&ast.AssignStmt{Lhs: []ast.Expr{ident("_")}, Tok: token.ASSIGN, Rhs: []ast.Expr{ident("f")}},
			"f\n",
		},
		{
			"empty-block",
			&ast.BlockStmt{},
			"{}\n",
		},
		{
			"for-infinite",
			&ast.ForStmt{Body: &ast.BlockStmt{}},
			"for {}\n",
		},
		{
			"for-cond-only",
			&ast.ForStmt{Cond: ident("ok"), Body: &ast.BlockStmt{}},
			"for ok {}\n",
		},
		{
			"range-no-vars",
			&ast.RangeStmt{Tok: token.ILLEGAL, X: ident("xs"), Body: &ast.BlockStmt{}},
			"for range xs {}\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Unparse(tc.node)
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUnparseFuncDeclBlankLineRule(t *testing.T) {
	file := &ast.File{
		Name: &ast.Package{Name: "main"},
		Decls: []ast.Decl{
			&ast.GenDecl{
				Tok: token.IMPORT,
				Specs: []ast.Spec{
					&ast.ImportSpec{Path: &ast.BasicLit{Kind: ast.STRING, Value: strPtr(`"fmt"`)}},
				},
			},
			&ast.FuncDecl{
				Name: "main",
				Type: &ast.FuncType{Params: &ast.FieldList{}},
				Body: &ast.BlockStmt{},
			},
		},
	}
	got := Unparse(file)
	want := "package main\n\nimport \"fmt\"\n\nfunc main() {}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnparseAlwaysEndsInOneNewline(t *testing.T) {
	got := Unparse(&ast.Ident{Name: "x"})
	if !strings.HasSuffix(got, "\n") || strings.HasSuffix(got, "\n\n") {
		t.Errorf("got %q, want exactly one trailing newline", got)
	}
}
