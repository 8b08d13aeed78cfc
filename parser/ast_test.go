// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogo-parse/gogo/ast"
	"github.com/gogo-parse/gogo/token"
)

// ignorePositions drops every token.Position field from the comparison:
// these tests assert tree *shape*, not source offsets.
var ignorePositions = cmpopts.IgnoreTypes(token.Position{})

func strPtr(s string) *string { return &s }

func TestParseValueSpecShape(t *testing.T) {
	node, err := Parse("var b, c int = 1, 2\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &ast.DeclStmt{
		Decl: &ast.GenDecl{
			Tok: token.VAR,
			Specs: []ast.Spec{
				&ast.ValueSpec{
					Names: []string{"b", "c"},
					Type:  &ast.Ident{Name: "int"},
					Values: []ast.Expr{
						&ast.BasicLit{Kind: ast.INT, Value: strPtr("1")},
						&ast.BasicLit{Kind: ast.INT, Value: strPtr("2")},
					},
				},
			},
		},
	}
	if diff := cmp.Diff(want, node, ignorePositions); diff != "" {
		t.Errorf("unexpected AST shape (-want +got):\n%s", diff)
	}
}

func TestParseBinaryExprPrecedence(t *testing.T) {
	// a + b * c must bind as a + (b * c), not (a + b) * c.
	node, err := Parse("a + b * c\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &ast.BinaryExpr{
		X:  &ast.Ident{Name: "a"},
		Op: token.ADD,
		Y: &ast.BinaryExpr{
			X:  &ast.Ident{Name: "b"},
			Op: token.MUL,
			Y:  &ast.Ident{Name: "c"},
		},
	}
	got, ok := node.(*ast.ExprStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ExprStmt", node)
	}
	if diff := cmp.Diff(want, got.X, ignorePositions); diff != "" {
		t.Errorf("unexpected precedence shape (-want +got):\n%s", diff)
	}
}

func TestParseTypeSwitchGuardShape(t *testing.T) {
	src := "switch t := i.(type) {\ndefault:\n}\n"
	node, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sw, ok := node.(*ast.SwitchStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.SwitchStmt", node)
	}
	want := &ast.AssignStmt{
		Lhs: []ast.Expr{&ast.Ident{Name: "t"}},
		Tok: token.DEFINE,
		Rhs: []ast.Expr{
			&ast.TypeAssertExpr{X: &ast.Ident{Name: "i"}, Type: nil},
		},
	}
	if diff := cmp.Diff(want, sw.Tag, ignorePositions); diff != "" {
		t.Errorf("unexpected switch tag shape (-want +got):\n%s", diff)
	}
}
