// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

package unparse

import (
	"strings"

	"github.com/gogo-parse/gogo/ast"
)

func declString(d ast.Decl, level int) string {
	switch n := d.(type) {
	case *ast.GenDecl:
		return genDeclString(n, level)
	case *ast.FuncDecl:
		return funcDeclString(n, level)
	case *ast.Comment:
		return "//" + n.Text
	}
	panic(unhandled(d))
}

// genDeclString renders the single-line `import "fmt"` form or the
// parenthesized grouped form, the same choice applied to var/const/type
// groups.
func genDeclString(d *ast.GenDecl, level int) string {
	kw := d.Tok.String()
	if !d.Lparen {
		return kw + " " + specString(d.Specs[0], level)
	}
	var b strings.Builder
	b.WriteString(kw + " (\n")
	for _, s := range d.Specs {
		b.WriteString(indent(level + 1))
		b.WriteString(specString(s, level+1))
		b.WriteByte('\n')
	}
	b.WriteString(indent(level) + ")")
	return b.String()
}

func specString(s ast.Spec, level int) string {
	switch n := s.(type) {
	case *ast.ImportSpec:
		if n.Name != nil {
			return n.Name.Name + " " + *n.Path.Value
		}
		return *n.Path.Value
	case *ast.ValueSpec:
		var b strings.Builder
		b.WriteString(strings.Join(n.Names, ", "))
		if n.Type != nil {
			b.WriteString(" ")
			b.WriteString(typeString(n.Type, level))
		}
		if len(n.Values) > 0 {
			b.WriteString(" = ")
			b.WriteString(exprListString(n.Values, level))
		}
		return b.String()
	case *ast.TypeSpec:
		return n.Name.Name + " " + typeString(n.Type, level)
	}
	panic(unhandled(s))
}

func funcDeclString(d *ast.FuncDecl, level int) string {
	var b strings.Builder
	b.WriteString("func ")
	if d.Recv != nil {
		b.WriteString("(")
		b.WriteString(fieldListInline(d.Recv.List))
		b.WriteString(") ")
	}
	b.WriteString(d.Name)
	b.WriteString(funcSignatureString(d.Type, level))
	b.WriteString(" ")
	b.WriteString(blockString(d.Body, level))
	return b.String()
}

func funcSignatureString(ft *ast.FuncType, level int) string {
	params := "(" + fieldListInline(ft.Params.List) + ")"
	if ft.Results == nil || len(ft.Results.List) == 0 {
		return params
	}
	if len(ft.Results.List) == 1 && ft.Results.List[0].Name == nil {
		return params + " " + typeString(ft.Results.List[0].Type, level)
	}
	return params + " (" + fieldListInline(ft.Results.List) + ")"
}

func fieldListInline(fields []*ast.Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fieldString(f, 0)
	}
	return strings.Join(parts, ", ")
}

func fieldString(f *ast.Field, level int) string {
	if f.Name != nil {
		return *f.Name + " " + typeString(f.Type, level)
	}
	return typeString(f.Type, level)
}

// fieldListBody renders the one-field-per-line form used by struct and
// interface bodies: "{}" when empty, otherwise a braced block indented one
// level deeper than the keyword that introduces it.
func fieldListBody(fields []*ast.Field, level int) string {
	if len(fields) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, f := range fields {
		b.WriteString(indent(level + 1))
		b.WriteString(fieldString(f, level+1))
		b.WriteByte('\n')
	}
	b.WriteString(indent(level) + "}")
	return b.String()
}
