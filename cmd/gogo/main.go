// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

// Command gogo is a small driver over the gogo lexer/parser/unparser: a
// formatter (`gogo fmt`) and a round-trip checker (`gogo check`), in a
// single-shot, flag-driven style.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 2
	}
	switch args[0] {
	case "fmt":
		return runFmt(args[1:])
	case "check":
		return runCheck(args[1:])
	default:
		usage()
		return 2
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: gogo fmt [-w] [-d] <file>")
	fmt.Fprintln(os.Stderr, "       gogo check <files or patterns...>")
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = usage
	return fs
}
