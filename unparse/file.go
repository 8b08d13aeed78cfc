// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

package unparse

import "github.com/gogo-parse/gogo/ast"

// renderFile lays out a *ast.File: a blank line between the package clause
// and the first declaration, and a blank line around every FuncDecl, but no
// blank line between two adjacent non-func declarations (so a run of
// single-line imports stays tight).
func renderFile(f *ast.File) string {
	var b []byte
	b = append(b, "package "...)
	b = append(b, f.Name.Name...)
	b = append(b, '\n')
	if len(f.Decls) > 0 {
		b = append(b, '\n')
	}
	for i, d := range f.Decls {
		b = append(b, topDeclString(d)...)
		if i < len(f.Decls)-1 {
			_, curFunc := d.(*ast.FuncDecl)
			_, nextFunc := f.Decls[i+1].(*ast.FuncDecl)
			if curFunc || nextFunc {
				b = append(b, '\n')
			}
		}
	}
	return string(b)
}

func topDeclString(d ast.Decl) string {
	if c, ok := d.(*ast.Comment); ok {
		return "//" + c.Text + "\n"
	}
	return declString(d, 0) + "\n"
}
