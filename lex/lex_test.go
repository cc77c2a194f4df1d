package lex_test

import (
	"testing"

	"github.com/nschonni/ruby-sass/lex"
)

func TestIdent(t *testing.T) {
	cases := map[string]bool{
		"color":    true,
		"-moz-box": true,
		"_private": true,
		"3d":       false,
	}
	for in, want := range cases {
		got := lex.Ident.MatchString(in)
		if got != want {
			t.Errorf("Ident.MatchString(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIDVsHash(t *testing.T) {
	if !lex.ID.MatchString("#main") {
		t.Errorf("ID.MatchString(%q) = false, want true", "#main")
	}
	if lex.Hash.MatchString("#main") {
		t.Errorf("Hash.MatchString(%q) = true, want false", "#main")
	}
	if !lex.Hash.MatchString("#fff") {
		t.Errorf("Hash.MatchString(%q) = false, want true", "#fff")
	}
}

func TestStringDoubleOpen(t *testing.T) {
	loc := lex.StringDoubleOpen.FindStringSubmatch(`"plain"`)
	if loc == nil || loc[1] != "plain" || loc[2] != `"` {
		t.Fatalf("unexpected submatches: %#v", loc)
	}

	loc = lex.StringDoubleOpen.FindStringSubmatch(`"hello #{$x}"`)
	if loc == nil || loc[1] != "hello " || loc[2] != "#{" {
		t.Fatalf("unexpected submatches for interpolated string: %#v", loc)
	}
}

func TestDescribeKnownAndUnknown(t *testing.T) {
	if got := lex.Describe(lex.Colon); got != `":"` {
		t.Errorf("Describe(Colon) = %q", got)
	}
	unknown := lex.QuotedLiteral
	if got := lex.Describe(unknown); got == "" {
		t.Errorf("Describe(unknown) returned empty string")
	}
}
