// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

package main

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestScripts drives the cmd/gogo binary end to end through testdata/*.txtar
// scripts, the standard rogpeppe/go-internal/testscript harness for
// black-box CLI testing, usually paired with go-cmp for structural
// assertions elsewhere in a test suite.
func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
	})
}

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"gogo": func() { main() },
	})
}
