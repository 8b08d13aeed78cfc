// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

package ast

import "github.com/gogo-parse/gogo/token"

// NodeList is satisfied by ExprList and StmtList: a source snippet with no
// package clause may parse to more than one top-level node, and the
// unparser needs a single renderer for "a sequence of nodes" rather than
// special-casing slices at every call site.
type NodeList interface {
	Node
	At(i int) Node
	Len() int
}

// ExprList is a bare sequence of top-level expressions, rendered comma
// separated on one line.
type ExprList []Expr

// StmtList is a bare sequence of top-level statements, rendered one per
// line.
type StmtList []Stmt

func (l ExprList) Len() int          { return len(l) }
func (l StmtList) Len() int          { return len(l) }
func (l ExprList) At(i int) Node     { return l[i] }
func (l StmtList) At(i int) Node     { return l[i] }
func (l ExprList) Pos() token.Position {
	if len(l) == 0 {
		return token.Position{}
	}
	return l[0].Pos()
}
func (l StmtList) Pos() token.Position {
	if len(l) == 0 {
		return token.Position{}
	}
	return l[0].Pos()
}
