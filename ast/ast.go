// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

// Package ast declares the tagged-variant syntax tree produced by the gogo
// parser and consumed by the gogo unparser. The variant set is closed and
// modeled on the shape of go/ast: every node the parser can build has a
// struct here, and every struct here has a renderer in package unparse.
package ast

import "github.com/gogo-parse/gogo/token"

// Node is implemented by every AST variant.
type Node interface {
	// Pos returns the position of the first token belonging to the node,
	// except for the variants that store no such position: AssignStmt
	// reports its operator, LabeledStmt its colon, and CompositeLit its
	// opening brace.
	Pos() token.Position
}

// Expr, Stmt, Decl, Spec and TypeExpr are marker sub-interfaces used to keep
// field types in this package honest about what shape of node is expected,
// the same role go/ast.Expr / go/ast.Stmt / go/ast.Decl play.
type (
	Expr     interface{ Node; exprNode() }
	Stmt     interface{ Node; stmtNode() }
	Decl     interface{ Node; declNode() }
	Spec     interface{ Node; specNode() }
	TypeExpr interface{ Node; typeExprNode() }
)

// ---- File level ----------------------------------------------------------

// File is the root node when a source carries a package clause.
type File struct {
	NamePos token.Position
	Name    *Package
	Decls   []Decl
}

// Package represents `package X`.
type Package struct {
	PackagePos token.Position
	Name       string
}

// Comment is a single `// ...` line comment. Text excludes the leading `//`
// and the trailing newline; the unparser re-appends the newline on render.
type Comment struct {
	Slash token.Position
	Text  string
}

func (f *File) Pos() token.Position    { return f.NamePos }
func (p *Package) Pos() token.Position { return p.PackagePos }
func (c *Comment) Pos() token.Position { return c.Slash }

// Comment doubles as a Decl so a bare line comment can sit directly in
// File.Decls alongside imports and function declarations.
func (*Comment) declNode() {}

// ---- Declarations ---------------------------------------------------------

// GenDecl is a grouped `import`/`var`/`const`/`type` declaration.
type GenDecl struct {
	TokPos token.Position
	Tok    token.Token // IMPORT, VAR, CONST, or TYPE
	Lparen bool        // true if the specs were written inside ( )
	Specs  []Spec
}

// ImportSpec is one entry of an import declaration.
type ImportSpec struct {
	NamePos token.Position
	Name    *Ident // optional: alias identifier, or "." for dot-import
	// Path is always a *BasicLit(STRING); grouping multiple imports
	// together is represented at the GenDecl level, not here.
	Path *BasicLit
}

// ValueSpec is one `var`/`const` entry, e.g. `a, b int = 1, 2`.
type ValueSpec struct {
	NamePos token.Position
	Names   []string
	Type    TypeExpr // optional
	Values  []Expr
}

// TypeSpec is one `type` entry, e.g. `type Point struct { ... }`.
type TypeSpec struct {
	NamePos token.Position
	Name    *Ident
	Type    TypeExpr
}

// FuncDecl is a function or method declaration.
type FuncDecl struct {
	FuncPos token.Position
	Recv    *FieldList // optional, methods only
	Name    string
	Type    *FuncType
	Body    *BlockStmt
}

// DeclStmt wraps a GenDecl appearing inside a block.
type DeclStmt struct {
	Decl *GenDecl
}

func (d *GenDecl) Pos() token.Position    { return d.TokPos }
func (s *ImportSpec) Pos() token.Position { return s.NamePos }
func (s *ValueSpec) Pos() token.Position  { return s.NamePos }
func (s *TypeSpec) Pos() token.Position   { return s.NamePos }
func (d *FuncDecl) Pos() token.Position   { return d.FuncPos }
func (s *DeclStmt) Pos() token.Position   { return s.Decl.Pos() }

func (*GenDecl) declNode()  {}
func (*FuncDecl) declNode() {}

// FuncDecl doubles as a Stmt so a bare top-level function declaration (no
// enclosing package clause) can sit directly in a StmtList alongside
// ordinary statements.
func (*FuncDecl) stmtNode() {}

func (*ImportSpec) specNode() {}
func (*ValueSpec) specNode()  {}
func (*TypeSpec) specNode()   {}

func (*DeclStmt) stmtNode() {}

// ---- Expressions ------------------------------------------------------

// Ident is an identifier.
type Ident struct {
	NamePos token.Position
	Name    string
}

// LitKind classifies a BasicLit.
type LitKind int

const (
	INT LitKind = iota
	FLOAT
	IMAG
	CHAR
	STRING
	TRUE
	FALSE
)

// BasicLit is a literal of one of the kinds above. Value is nil for TRUE and
// FALSE, since the kind alone determines the rendered text.
type BasicLit struct {
	ValuePos token.Position
	Kind     LitKind
	Value    *string
}

// BinaryExpr is `x OP y`.
type BinaryExpr struct {
	X     Expr
	OpPos token.Position
	Op    token.Token
	Y     Expr
}

// UnaryExpr is `OP x` (Right == false) or `x OP` (Right == true, i.e. ++/--).
type UnaryExpr struct {
	OpPos token.Position
	Op    token.Token
	X     Expr
	Right bool
}

// ParenExpr is `(x)`.
type ParenExpr struct {
	Lparen token.Position
	X      Expr
}

// SelectorExpr is `x.sel`.
type SelectorExpr struct {
	X   Expr
	Sel *Ident
}

// IndexExpr is `x[index]`.
type IndexExpr struct {
	X      Expr
	Lbrack token.Position
	Index  Expr
}

// SliceExpr is `x[low:high]`, `x[low:high:max]`, or any combination with an
// omitted bound (Low/High/Max nil).
type SliceExpr struct {
	X      Expr
	Lbrack token.Position
	Low    Expr
	High   Expr
	Max    Expr
	Slice3 bool
}

// CallExpr is `fun(args...)`.
type CallExpr struct {
	Fun      Expr
	Lparen   token.Position
	Args     []Expr
	Ellipsis bool // true for f(xs...)
}

// StarExpr is `*x`, either a pointer type or a dereference.
type StarExpr struct {
	Star token.Position
	X    Expr
}

// TypeAssertExpr is `x.(T)`, or `x.(type)` inside a type switch when Type is
// nil.
type TypeAssertExpr struct {
	X      Expr
	Lparen token.Position
	Type   TypeExpr // nil for x.(type)
}

// CompositeLit is `T{ elts... }`.
type CompositeLit struct {
	Type       TypeExpr
	Lbrace     token.Position
	Elts       []Expr
	Incomplete bool
}

// KeyValueExpr is `key: value` inside a CompositeLit.
type KeyValueExpr struct {
	Key   Expr
	Value Expr
}

// FuncLit is a function literal `func(...) ... { ... }`.
type FuncLit struct {
	Type *FuncType
	Body *BlockStmt
}

// Ellipsis represents `...T` in a field list (variadic parameter type).
type Ellipsis struct {
	Dots token.Position
	Type TypeExpr
}

func (x *Ident) Pos() token.Position          { return x.NamePos }
func (x *BasicLit) Pos() token.Position       { return x.ValuePos }
func (x *BinaryExpr) Pos() token.Position     { return x.X.Pos() }
func (x *UnaryExpr) Pos() token.Position      { return x.OpPos }
func (x *ParenExpr) Pos() token.Position      { return x.Lparen }
func (x *SelectorExpr) Pos() token.Position   { return x.X.Pos() }
func (x *IndexExpr) Pos() token.Position      { return x.X.Pos() }
func (x *SliceExpr) Pos() token.Position      { return x.X.Pos() }
func (x *CallExpr) Pos() token.Position       { return x.Fun.Pos() }
func (x *StarExpr) Pos() token.Position       { return x.Star }
func (x *TypeAssertExpr) Pos() token.Position { return x.X.Pos() }
func (x *CompositeLit) Pos() token.Position   { return x.Lbrace }
func (x *KeyValueExpr) Pos() token.Position   { return x.Key.Pos() }
func (x *FuncLit) Pos() token.Position        { return x.Type.Pos() }
func (x *Ellipsis) Pos() token.Position       { return x.Dots }

func (*Ident) exprNode()          {}
func (*BasicLit) exprNode()       {}
func (*BinaryExpr) exprNode()     {}
func (*UnaryExpr) exprNode()      {}
func (*ParenExpr) exprNode()      {}
func (*SelectorExpr) exprNode()   {}
func (*IndexExpr) exprNode()      {}
func (*SliceExpr) exprNode()      {}
func (*CallExpr) exprNode()       {}
func (*StarExpr) exprNode()       {}
func (*TypeAssertExpr) exprNode() {}
func (*CompositeLit) exprNode()   {}
func (*KeyValueExpr) exprNode()   {}
func (*FuncLit) exprNode()        {}

// Ident doubles as a TypeExpr (a named type reference), same duality as
// go/ast.Ident.
func (*Ident) typeExprNode()        {}
func (*SelectorExpr) typeExprNode() {} // qualified type, e.g. pkg.T
func (*StarExpr) typeExprNode()     {} // pointer type *T

// ---- Types ----------------------------------------------------------------

// FuncType is a function signature, `func(params) results`.
type FuncType struct {
	Func    token.Position
	Params  *FieldList
	Results *FieldList // nil if no results
}

// ArrayType is `[len]elt` (array) or `[]elt` (slice, Len == nil).
type ArrayType struct {
	Lbrack token.Position
	Len    Expr // nil for a slice
	Elt    TypeExpr
}

// MapType is `map[key]value`.
type MapType struct {
	Map   token.Position
	Key   TypeExpr
	Value TypeExpr
}

// StructType is `struct { fields... }`.
type StructType struct {
	Struct     token.Position
	Fields     *FieldList
	Incomplete bool
}

// InterfaceType is `interface { methods... }`.
type InterfaceType struct {
	Interface  token.Position
	Methods    *FieldList
	Incomplete bool
}

// FieldList is a parenthesized or braced list of Fields: function
// parameters/results, struct fields, interface methods.
type FieldList struct {
	Opening token.Position
	List    []*Field
	Closing token.Position
}

// Field is one entry of a FieldList. Name is nil for a positional/unnamed
// field (an unnamed return type, or an embedded receiver type).
type Field struct {
	Name *string
	Type TypeExpr
}

func (t *FuncType) Pos() token.Position      { return t.Func }
func (t *ArrayType) Pos() token.Position     { return t.Lbrack }
func (t *MapType) Pos() token.Position       { return t.Map }
func (t *StructType) Pos() token.Position    { return t.Struct }
func (t *InterfaceType) Pos() token.Position { return t.Interface }
func (l *FieldList) Pos() token.Position     { return l.Opening }
func (f *Field) Pos() token.Position         { return f.Type.Pos() }

func (*FuncType) typeExprNode()      {}
func (*ArrayType) typeExprNode()     {}
func (*MapType) typeExprNode()       {}
func (*StructType) typeExprNode()    {}
func (*InterfaceType) typeExprNode() {}

func (*Ellipsis) typeExprNode() {} // only valid inside a Field.Type

// ---- Statements -------------------------------------------------------

// BlockStmt is `{ list... }`.
type BlockStmt struct {
	Lbrace token.Position
	List   []Stmt
	Rbrace token.Position
}

// ExprStmt wraps a bare expression used as a statement, e.g. a call.
type ExprStmt struct {
	X Expr
}

// AssignStmt is `lhs TOK rhs`. Lhs and Rhs each hold one or more expressions
// for multi-value assignment/definition.
type AssignStmt struct {
	Lhs    []Expr
	TokPos token.Position
	Tok    token.Token
	Rhs    []Expr
}

// ReturnStmt is `return results...`.
type ReturnStmt struct {
	Return  token.Position
	Results []Expr
}

// BranchStmt is `break`/`continue`/`goto`/`fallthrough`, with an optional
// label for break/continue/goto.
type BranchStmt struct {
	TokPos token.Position
	Tok    token.Token
	Label  *string
}

// LabeledStmt is a free-standing `label:`; the labeled statement that
// follows it is a sibling in the enclosing block, not a child.
type LabeledStmt struct {
	Label string
	Colon token.Position
}

// IfStmt is `if init; cond { body } else elseBranch`. Else is either another
// *IfStmt (an `else if`) or a *BlockStmt, or nil.
type IfStmt struct {
	If   token.Position
	Init Stmt // optional
	Cond Expr
	Body *BlockStmt
	Else Stmt // *IfStmt, *BlockStmt, or nil
}

// ForStmt is the three-clause `for init; cond; post { body }`, with any
// clause optionally omitted.
type ForStmt struct {
	For  token.Position
	Init Stmt // optional
	Cond Expr // optional
	Post Stmt // optional
	Body *BlockStmt
}

// RangeStmt is `for key, value := range x { body }`. Key and Value are nil,
// and Tok is ILLEGAL, for the no-iteration-variable form `for range x {}`.
type RangeStmt struct {
	For   token.Position
	Key   Expr
	Value Expr
	Tok   token.Token // DEFINE, ASSIGN, or ILLEGAL
	X     Expr
	Body  *BlockStmt
}

// SwitchStmt is `switch init; tag { body }`, where Body holds only
// *CaseClause statements. Tag may be a *TypeAssertExpr with a nil Type for a
// type switch.
type SwitchStmt struct {
	Switch token.Position
	Init   Stmt // optional
	// Tag is either an Expr (a plain value tag, e.g. `switch x {`), a
	// Node that is itself a type-switch guard assignment
	// (`t := i.(type)`), or nil. Both shapes render identically:
	// `switch <tag> {`.
	Tag  Node
	Body *BlockStmt
}

// CaseClause is one `case list:` / `default:` arm. An empty List is the
// default arm.
type CaseClause struct {
	Case  token.Position
	List  []Expr
	Colon token.Position
	Body  []Stmt
}

func (s *BlockStmt) Pos() token.Position   { return s.Lbrace }
func (s *ExprStmt) Pos() token.Position    { return s.X.Pos() }
func (s *AssignStmt) Pos() token.Position  { return s.TokPos }
func (s *ReturnStmt) Pos() token.Position  { return s.Return }
func (s *BranchStmt) Pos() token.Position  { return s.TokPos }
func (s *LabeledStmt) Pos() token.Position { return s.Colon }
func (s *IfStmt) Pos() token.Position      { return s.If }
func (s *ForStmt) Pos() token.Position     { return s.For }
func (s *RangeStmt) Pos() token.Position   { return s.For }
func (s *SwitchStmt) Pos() token.Position  { return s.Switch }
func (s *CaseClause) Pos() token.Position  { return s.Case }

func (*BlockStmt) stmtNode()   {}
func (*ExprStmt) stmtNode()    {}
func (*AssignStmt) stmtNode()  {}
func (*ReturnStmt) stmtNode()  {}
func (*BranchStmt) stmtNode()  {}
func (*LabeledStmt) stmtNode() {}
func (*IfStmt) stmtNode()      {}
func (*ForStmt) stmtNode()     {}
func (*RangeStmt) stmtNode()   {}
func (*SwitchStmt) stmtNode()  {}
func (*CaseClause) stmtNode()  {}
