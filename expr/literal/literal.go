// Package literal implements a minimal expr.Parser: it recognizes the
// literal token shapes the dialect's own scanner already knows about
// (numbers, quoted strings with #{...} interpolation, bare variable
// references, identifiers, parenthesized groups, and comma-separated
// argument lists) and nothing resembling real SassScript operator
// precedence or evaluation. It exists so a caller of the parser package
// has a working default to hand to parser.Parse without first authoring
// a real expression sub-parser; it is not a substitute for one.
package literal

import (
	"fmt"
	"regexp"

	"github.com/nschonni/ruby-sass/expr"
	"github.com/nschonni/ruby-sass/lex"
	"github.com/nschonni/ruby-sass/scanner"
)

// Value is the opaque expression node this parser produces: the raw
// source text of the term sequence it matched.
type Value struct{ Text string }

func (*Value) IsExpression() {}

// Args is the opaque parenthesized argument list this parser produces
// for mixin parameter and argument lists: the raw source text between
// the parens, exclusive.
type Args struct{ Text string }

func (*Args) IsArgList() {}

// Error is the syntax error this parser raises, matching the shape
// parser.Error uses so callers can format both uniformly.
type Error struct {
	Message string
	Line    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (line %d)", e.Message, e.Line)
}

// Parser is a minimal expr.Parser over literal token shapes, sharing a
// scanner with the grammar engine that constructed it.
type Parser struct {
	s *scanner.Scanner
}

// New constructs a Parser over s. It satisfies expr.NewFunc.
func New(s *scanner.Scanner) expr.Parser {
	return &Parser{s: s}
}

func (p *Parser) Parse() (expr.Expression, error) {
	return p.parseUntil(nil)
}

func (p *Parser) ParseUntil(stopWords ...string) (expr.Expression, error) {
	return p.parseUntil(stopWords)
}

func (p *Parser) parseUntil(stopWords []string) (expr.Expression, error) {
	start := p.s.Pos()
	p.s.Scan(lex.S)
	if err := p.term(); err != nil {
		return nil, err
	}
	for {
		bookmark := p.s.Bookmark()
		p.s.Scan(lex.S)
		if p.atStop(stopWords) || !p.startsTerm() {
			p.s.Restore(bookmark)
			break
		}
		if err := p.term(); err != nil {
			return nil, err
		}
	}
	return &Value{Text: p.s.Source()[start:p.s.Pos()]}, nil
}

// atStop reports whether the scanner sits at end of input, a natural
// terminator, or one of stopWords.
func (p *Parser) atStop(stopWords []string) bool {
	if p.s.AtEOF() || p.s.Peek(lex.Semicolon) || p.s.Peek(lex.RBrace) ||
		p.s.Peek(lex.RParen) || p.s.Peek(lex.LBrace) || p.s.Peek(lex.Comma) {
		return true
	}
	for _, w := range stopWords {
		if p.s.PeekLiteral(w) {
			return true
		}
	}
	return false
}

// startsTerm reports whether the scanner sits at the start of a term
// this parser recognizes.
func (p *Parser) startsTerm() bool {
	return p.s.Peek(lex.Number) || p.s.Peek(lex.StringDoubleOpen) ||
		p.s.Peek(lex.StringSingleOpen) || p.s.Peek(lex.Bang) ||
		p.s.Peek(lex.Ident) || p.s.Peek(lex.Interp) || p.s.Peek(lex.LParen) ||
		p.s.Peek(lex.Plus) || p.s.Peek(lex.Slash)
}

// term consumes one recognized term: a number, a quoted string (with
// #{...} interpolation bodies recursively re-entering this parser), a
// "!name" variable reference, a bare identifier, a standalone "#{...}",
// or a parenthesized group.
func (p *Parser) term() error {
	switch {
	case p.s.Peek(lex.Number):
		p.s.Scan(lex.Number)
		return nil
	case p.s.Peek(lex.StringDoubleOpen), p.s.Peek(lex.StringSingleOpen):
		return p.stringLiteral()
	case p.s.Peek(lex.Bang):
		p.s.Scan(lex.Bang)
		_, err := p.expect(lex.Ident, "a variable name")
		return err
	case p.s.Peek(lex.Interp):
		_, err := p.ParseInterpolated()
		return err
	case p.s.Peek(lex.Ident):
		p.s.Scan(lex.Ident)
		return nil
	case p.s.Peek(lex.LParen):
		p.s.Scan(lex.LParen)
		p.s.Scan(lex.S)
		if err := p.term(); err != nil {
			return err
		}
		p.s.Scan(lex.S)
		_, err := p.expect(lex.RParen, `")"`)
		return err
	case p.s.Peek(lex.Plus), p.s.Peek(lex.Slash):
		p.s.Scan(lex.Plus)
		p.s.Scan(lex.Slash)
		p.s.Scan(lex.S)
		return p.term()
	default:
		return p.fail("a number, string, variable, or identifier")
	}
}

// stringLiteral consumes a quoted string, including any number of
// "#{...}" interpolation bodies embedded within it, exactly as the
// grammar engine's own interp_string production does.
func (p *Parser) stringLiteral() error {
	openPat, midPat := lex.StringDoubleOpen, lex.StringDoubleMid
	if p.s.Peek(lex.StringSingleOpen) {
		openPat, midPat = lex.StringSingleOpen, lex.StringSingleMid
	}
	if _, err := p.expect(openPat, "a string"); err != nil {
		return err
	}
	terminator := p.s.Group(2)
	// The open/mid patterns consume the "#{" as part of matching the
	// terminator, so the interpolation body is parsed directly (not via
	// ParseInterpolated, which expects an unconsumed leading "#{") and
	// only the matching "}" remains to be consumed here.
	for terminator == "#{" {
		if _, err := p.parseUntil(nil); err != nil {
			return err
		}
		p.s.Scan(lex.S)
		if _, err := p.expect(lex.RBrace, `"}"`); err != nil {
			return err
		}
		if _, err := p.expect(midPat, "a string"); err != nil {
			return err
		}
		terminator = p.s.Group(2)
	}
	return nil
}

func (p *Parser) ParseInterpolated() (expr.Expression, error) {
	start := p.s.Pos()
	if _, err := p.expect(lex.Interp, `"#{"`); err != nil {
		return nil, err
	}
	if _, err := p.parseUntil(nil); err != nil {
		return nil, err
	}
	p.s.Scan(lex.S)
	if _, err := p.expect(lex.RBrace, `"}"`); err != nil {
		return nil, err
	}
	return &Value{Text: p.s.Source()[start:p.s.Pos()]}, nil
}

func (p *Parser) ParseMixinDefinitionArglist() (expr.ArgList, error) {
	return p.parenList(true)
}

func (p *Parser) ParseMixinIncludeArglist() (expr.ArgList, error) {
	return p.parenList(false)
}

// parenList consumes "(" arg (, arg)* ")". When allowDefaults is true
// each arg may be "!name" optionally followed by "= default"; otherwise
// each arg is a plain expression. Either way only the raw text is kept.
func (p *Parser) parenList(allowDefaults bool) (expr.ArgList, error) {
	if _, err := p.expect(lex.LParen, `"("`); err != nil {
		return nil, err
	}
	start := p.s.Pos()
	p.s.Scan(lex.S)
	for !p.s.Peek(lex.RParen) {
		if allowDefaults && p.s.Peek(lex.Bang) {
			p.s.Scan(lex.Bang)
			if _, err := p.expect(lex.Ident, "a parameter name"); err != nil {
				return nil, err
			}
			p.s.Scan(lex.S)
			if p.s.Peek(lex.Equals) {
				p.s.Scan(lex.Equals)
				p.s.Scan(lex.S)
				if err := p.term(); err != nil {
					return nil, err
				}
			}
		} else {
			if err := p.term(); err != nil {
				return nil, err
			}
		}
		p.s.Scan(lex.S)
		if p.s.Peek(lex.Comma) {
			p.s.Scan(lex.Comma)
			p.s.Scan(lex.S)
			continue
		}
		break
	}
	end := p.s.Pos()
	if _, err := p.expect(lex.RParen, `")"`); err != nil {
		return nil, err
	}
	return &Args{Text: p.s.Source()[start:end]}, nil
}

// expect consumes pattern or raises an *Error naming what was expected.
func (p *Parser) expect(pattern *regexp.Regexp, what string) (string, error) {
	if got, ok := p.s.Scan(pattern); ok {
		return got, nil
	}
	return "", p.fail(what)
}

func (p *Parser) fail(what string) error {
	return &Error{Line: p.s.Line(), Message: fmt.Sprintf("expected %s", what)}
}
