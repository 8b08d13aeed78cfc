// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

package main

import (
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/gogo-parse/gogo/parser"
	"github.com/gogo-parse/gogo/unparse"
)

func runFmt(args []string) int {
	fs := newFlagSet("fmt")
	write := fs.Bool("w", false, "write result to the source file instead of stdout")
	diff := fs.Bool("d", false, "print a unified diff instead of the formatted source")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		usage()
		return 2
	}
	path := fs.Arg(0)

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	node, err := parser.Parse(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	out := unparse.Unparse(node)

	switch {
	case *diff && *write:
		fmt.Fprintln(os.Stderr, "gogo fmt: -d and -w are mutually exclusive")
		return 2
	case *diff:
		return printDiff(path, string(src), out)
	case *write:
		if out == string(src) {
			return 0
		}
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	default:
		fmt.Print(out)
		return 0
	}
}

// printDiff matches write.go's Fprint-to-disk path but compares against our
// own unparser instead of writing it, using go-difflib's unified-diff
// renderer (the only real diff library in the retrieval pack).
func printDiff(path, before, after string) int {
	if before == after {
		return 0
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path + ".gogo",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Print(text)
	return 1
}
