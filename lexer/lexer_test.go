// Copyright (c) 2024, the gogo authors
// See LICENSE for licensing information

package lexer

import (
	"testing"

	"github.com/gogo-parse/gogo/token"
)

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Token
	}{
		{"ident-and-keyword", "foo func", []token.Token{token.IDENT, token.FUNC, token.EOF}},
		{"int", "123", []token.Token{token.INT, token.EOF}},
		{"float", "3.14", []token.Token{token.FLOAT, token.EOF}},
		{"imag", "2i", []token.Token{token.IMAG, token.EOF}},
		{"imag-float", "2.5i", []token.Token{token.IMAG, token.EOF}},
		{"int-exponent", "1e10", []token.Token{token.INT, token.EOF}},
		{"string", `"hi"`, []token.Token{token.STRING, token.EOF}},
		{"char", `'a'`, []token.Token{token.CHAR, token.EOF}},
		{"newline-significant", "a\nb", []token.Token{token.IDENT, token.NEWLINE, token.IDENT, token.EOF}},
		{"comment", "// hi\na", []token.Token{token.COMMENT, token.IDENT, token.EOF}},
		{"maximal-munch-and-not", "a &^= b", []token.Token{token.IDENT, token.AND_NOT_ASSIGN, token.IDENT, token.EOF}},
		{"maximal-munch-ellipsis", "a...", []token.Token{token.IDENT, token.ELLIPSIS, token.EOF}},
		{"maximal-munch-define", "a:=1", []token.Token{token.IDENT, token.DEFINE, token.INT, token.EOF}},
		{"predeclared-type", "int", []token.Token{token.INT_T, token.EOF}},
		{"bool-literals", "true false", []token.Token{token.TRUE, token.FALSE, token.EOF}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(tc.src)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tc.src, err)
			}
			if len(toks) != len(tc.want) {
				t.Fatalf("Tokenize(%q) = %d tokens, want %d", tc.src, len(toks), len(tc.want))
			}
			for i, want := range tc.want {
				if toks[i].Tok != want {
					t.Errorf("token %d: got %v, want %v", i, toks[i].Tok, want)
				}
			}
		})
	}
}

func TestTokenizeLiterals(t *testing.T) {
	toks, err := Tokenize(`"hi\"there" 'a' 42 3.5`)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	want := []string{`"hi\"there"`, `'a'`, "42", "3.5"}
	for i, w := range want {
		if toks[i].Lit != w {
			t.Errorf("token %d: got lit %q, want %q", i, toks[i].Lit, w)
		}
	}
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	_, err := Tokenize("package ~\n")
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	lexErr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("got error of type %T, want *LexError", err)
	}
	if lexErr.Ch != '~' {
		t.Errorf("got illegal char %q, want '~'", lexErr.Ch)
	}
}

func TestTokenizeIllegalCharacterLocality(t *testing.T) {
	// Two inputs differing only after the illegal character must produce
	// identical errors: the error depends only on what came before it.
	err1, err2 := mustLexError(t, "a ~ b"), mustLexError(t, "a ~ c")
	if err1.Error() != err2.Error() {
		t.Errorf("errors differ: %q vs %q", err1.Error(), err2.Error())
	}
}

func mustLexError(t *testing.T, src string) *LexError {
	t.Helper()
	_, err := Tokenize(src)
	lexErr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("Tokenize(%q): got %v, want *LexError", src, err)
	}
	return lexErr
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize(`"no closing quote`)
	if _, ok := err.(*LexError); !ok {
		t.Fatalf("got %v, want *LexError", err)
	}
}
