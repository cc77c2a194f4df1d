package literal

import (
	"testing"

	"github.com/nschonni/ruby-sass/scanner"
)

func TestParseNumber(t *testing.T) {
	s := scanner.New("3px")
	p := &Parser{s: s}
	v, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	got := v.(*Value).Text
	if got != "3px" {
		t.Errorf("Text = %q, want %q", got, "3px")
	}
	if !s.AtEOF() {
		t.Errorf("scanner did not consume all input, rest = %q", s.Rest())
	}
}

func TestParseStringWithInterpolation(t *testing.T) {
	s := scanner.New(`"hello #{name}!"`)
	p := &Parser{s: s}
	v, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	got := v.(*Value).Text
	if got != `"hello #{name}!"` {
		t.Errorf("Text = %q, want %q", got, `"hello #{name}!"`)
	}
}

func TestParseUntilStopsBeforeKeyword(t *testing.T) {
	s := scanner.New("1 through 3")
	p := &Parser{s: s}
	v, err := p.ParseUntil("to", "through")
	if err != nil {
		t.Fatalf("ParseUntil() = %v", err)
	}
	if got := v.(*Value).Text; got != "1" {
		t.Errorf("Text = %q, want %q", got, "1")
	}
	if got := s.Rest(); got != " through 3" {
		t.Errorf("rest = %q, want %q", got, " through 3")
	}
}

func TestParseMixinDefinitionArglist(t *testing.T) {
	s := scanner.New("(!radius, !color = red)")
	p := &Parser{s: s}
	args, err := p.ParseMixinDefinitionArglist()
	if err != nil {
		t.Fatalf("ParseMixinDefinitionArglist() = %v", err)
	}
	got := args.(*Args).Text
	want := "!radius, !color = red"
	if got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
	if !s.AtEOF() {
		t.Errorf("scanner did not consume the closing paren, rest = %q", s.Rest())
	}
}

func TestParseMixinIncludeArglist(t *testing.T) {
	s := scanner.New("(3px, red)")
	p := &Parser{s: s}
	args, err := p.ParseMixinIncludeArglist()
	if err != nil {
		t.Fatalf("ParseMixinIncludeArglist() = %v", err)
	}
	if got := args.(*Args).Text; got != "3px, red" {
		t.Errorf("Text = %q, want %q", got, "3px, red")
	}
}

func TestParseInterpolatedAlone(t *testing.T) {
	s := scanner.New("#{1 + 1} rest")
	p := &Parser{s: s}
	v, err := p.ParseInterpolated()
	if err != nil {
		t.Fatalf("ParseInterpolated() = %v", err)
	}
	if got := v.(*Value).Text; got != "#{1 + 1}" {
		t.Errorf("Text = %q, want %q", got, "#{1 + 1}")
	}
	if s.Rest() != " rest" {
		t.Errorf("rest = %q, want %q", s.Rest(), " rest")
	}
}

func TestParseFailsOnUnrecognizedTerm(t *testing.T) {
	s := scanner.New("%weird")
	p := &Parser{s: s}
	if _, err := p.Parse(); err == nil {
		t.Fatal("expected an error, got nil")
	}
}
