// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

package main

import (
	"fmt"
	"go/build"
	"os"
	"path/filepath"
	"strings"

	"github.com/kisielk/gotool"

	"github.com/gogo-parse/gogo/parser"
	"github.com/gogo-parse/gogo/unparse"
)

// runCheck parses every named file (or package pattern, expanded via
// gotool into an import-path list) and reports a "position: message"
// diagnostic for anything that fails to parse or fails its own
// round-trip, exiting nonzero if anything failed.
func runCheck(args []string) int {
	fs := newFlagSet("check")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		usage()
		return 2
	}

	files, err := expandFiles(fs.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	failed := false
	for _, path := range files {
		if err := checkFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		return 1
	}
	return 0
}

func checkFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	node, err := parser.Parse(string(src))
	if err != nil {
		return err
	}
	out := unparse.Unparse(node)
	reparsed, err := parser.Parse(out)
	if err != nil {
		return fmt.Errorf("round-trip output fails to reparse: %v", err)
	}
	if unparse.Unparse(reparsed) != out {
		return fmt.Errorf("round-trip is not stable")
	}
	return nil
}

// expandFiles turns a mix of literal .go paths and package patterns
// (".", "./...", an import path) into a flat file list. Literal paths pass
// through unchanged; anything else is resolved via gotool.ImportPaths and
// then expanded to the *.go files of the resolved package directory, the
// same two-step load.go uses before handing files to go/packages.
func expandFiles(args []string) ([]string, error) {
	var literals, patterns []string
	for _, a := range args {
		if strings.HasSuffix(a, ".go") {
			literals = append(literals, a)
		} else {
			patterns = append(patterns, a)
		}
	}
	if len(patterns) == 0 {
		return literals, nil
	}
	var files []string
	files = append(files, literals...)
	for _, importPath := range gotool.ImportPaths(patterns) {
		pkg, err := build.Import(importPath, ".", 0)
		if err != nil {
			return nil, fmt.Errorf("cannot load %s: %v", importPath, err)
		}
		for _, name := range pkg.GoFiles {
			files = append(files, filepath.Join(pkg.Dir, name))
		}
	}
	return files, nil
}
