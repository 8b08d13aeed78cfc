// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

package parser

import (
	"testing"

	"github.com/gogo-parse/gogo/lexer"
	"github.com/gogo-parse/gogo/unparse"
)

// TestRoundTrip exercises ten concrete end-to-end scenarios: for each
// canonicalized source, unparse(parse(src)) must equal src byte for byte.
func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			"minimal-file",
			"package main\n",
		},
		{
			"hello-world",
			"package main\n\nimport \"fmt\"\n\nfunc main() {\n    fmt.Println(\"Hello, World!\")\n}\n",
		},
		{
			"multiple-single-line-imports",
			"package main\n\nimport \"fmt\"\nimport \"rsc.io/quote\"\n",
		},
		{
			"grouped-import",
			"package main\n\nimport (\n    \"fmt\"\n    \"math\"\n)\n",
		},
		{
			"multi-name-value-spec",
			"var b, c int = 1, 2\n",
		},
		{
			"three-clause-for",
			"for j := 7; j <= 9; j++ {\n    fmt.Println(j)\n}\n",
		},
		{
			"if-else-if-chain",
			"if num := 9; num < 0 {\n    fmt.Println(num, \"is negative\")\n} else if num < 10 {\n    fmt.Println(num, \"has 1 digit\")\n} else {\n    fmt.Println(num, \"has multiple digits\")\n}\n",
		},
		{
			"switch-type-switch-and-default",
			"switch t := i.(type) {\ncase bool:\n    fmt.Println(\"bool\")\ncase int, float32:\n    fmt.Println(\"number\")\ndefault:\n    fmt.Println(\"other\")\n}\n",
		},
		{
			"variadic-and-spread",
			"func sum(nums ...int) int {\n    total := 0\n    for _, n := range nums {\n        total += n\n    }\n    return total\n}\n\nsum(nums...)\n",
		},
		{
			"closure-returning-two-funcs",
			"return func() int {\n    i++\n    return i\n}, func() int {\n    j--\n    return j\n}\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			node, err := Parse(tc.src)
			if err != nil {
				t.Fatalf("Parse(%q): unexpected error: %v", tc.name, err)
			}
			got := unparse.Unparse(node)
			if got != tc.src {
				t.Errorf("round-trip mismatch:\n got:  %q\n want: %q", got, tc.src)
			}
		})
	}
}

// TestIdempotence checks a second universal property: reparsing and
// reprinting an already-canonical source is a no-op.
func TestIdempotence(t *testing.T) {
	srcs := []string{
		"package main\n\nimport \"fmt\"\n\nfunc main() {\n    fmt.Println(\"Hello, World!\")\n}\n",
		"if num := 9; num < 0 {\n    fmt.Println(num, \"is negative\")\n} else if num < 10 {\n    fmt.Println(num, \"has 1 digit\")\n} else {\n    fmt.Println(num, \"has multiple digits\")\n}\n",
	}
	for _, src := range srcs {
		node, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		once := unparse.Unparse(node)
		reparsed, err := Parse(once)
		if err != nil {
			t.Fatalf("Parse(unparse(parse(src))): %v", err)
		}
		twice := unparse.Unparse(reparsed)
		if once != twice {
			t.Errorf("not idempotent:\n once:  %q\n twice: %q", once, twice)
		}
	}
}

func TestParseInvalidInput(t *testing.T) {
	_, err := Parse("package ~\n")
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if _, ok := err.(*lexer.LexError); !ok {
		t.Fatalf("got error of type %T, want *lexer.LexError", err)
	}
}

func TestParseNoTrailingNewlineIsAppended(t *testing.T) {
	node, err := Parse("package main")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := unparse.Unparse(node)
	want := "package main\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
