package parser

import (
	"github.com/nschonni/ruby-sass/expr"
	"github.com/nschonni/ruby-sass/lex"
	"github.com/nschonni/ruby-sass/scanner"
)

// stubExpression and stubArgList are opaque payloads good enough for
// assertions in these tests: the grammar engine never looks inside
// them, so the stub just records the raw text it consumed.
type stubExpression struct{ text string }

func (*stubExpression) IsExpression() {}

type stubArgList struct{ text string }

func (*stubArgList) IsArgList() {}

// stubExprParser is a minimal expr.Parser good enough to drive the
// grammar engine's tests without implementing the real expression
// grammar: it consumes characters up to a terminator and wraps the
// consumed text in a stub node, mirroring benbjohnson-css's own
// hand-rolled test scanners rather than a mocking library.
type stubExprParser struct {
	s *scanner.Scanner
}

func newStubExprParser(s *scanner.Scanner) expr.Parser {
	return &stubExprParser{s: s}
}

func (p *stubExprParser) Parse() (expr.Expression, error) {
	return p.parseUntil(nil)
}

func (p *stubExprParser) ParseUntil(stopWords ...string) (expr.Expression, error) {
	return p.parseUntil(stopWords)
}

func (p *stubExprParser) parseUntil(stopWords []string) (expr.Expression, error) {
	start := p.s.Pos()
	for {
		if p.s.AtEOF() || p.s.Peek(lex.Semicolon) || p.s.Peek(lex.RBrace) || p.s.Peek(lex.RParen) || p.s.Peek(lex.LBrace) {
			break
		}
		stopped := false
		for _, w := range stopWords {
			if p.s.PeekLiteral(w) {
				stopped = true
				break
			}
		}
		if stopped {
			break
		}
		if _, ok := p.s.Scan(lex.S); ok {
			continue
		}
		p.s.Scan(lex.AnyCharOrNL)
	}
	return &stubExpression{text: p.s.Source()[start:p.s.Pos()]}, nil
}

func (p *stubExprParser) ParseInterpolated() (expr.Expression, error) {
	if _, ok := p.s.Scan(lex.Interp); !ok {
		return nil, &Error{Line: p.s.Line(), Message: `expected "#{"`}
	}
	start := p.s.Pos()
	depth := 1
	for depth > 0 {
		if p.s.AtEOF() {
			return nil, &Error{Line: p.s.Line(), Message: `unterminated interpolation`}
		}
		switch {
		case p.s.Peek(lex.LBrace):
			p.s.Scan(lex.LBrace)
			depth++
		case p.s.Peek(lex.RBrace):
			end := p.s.Pos()
			p.s.Scan(lex.RBrace)
			depth--
			if depth == 0 {
				return &stubExpression{text: p.s.Source()[start:end]}, nil
			}
		default:
			p.s.Scan(lex.AnyCharOrNL)
		}
	}
	return &stubExpression{text: p.s.Source()[start:p.s.Pos()]}, nil
}

func (p *stubExprParser) ParseMixinDefinitionArglist() (expr.ArgList, error) {
	return p.parseParenList()
}

func (p *stubExprParser) ParseMixinIncludeArglist() (expr.ArgList, error) {
	return p.parseParenList()
}

func (p *stubExprParser) parseParenList() (expr.ArgList, error) {
	if _, ok := p.s.Scan(lex.LParen); !ok {
		return nil, &Error{Line: p.s.Line(), Message: `expected "("`}
	}
	start := p.s.Pos()
	depth := 1
	for depth > 0 {
		if p.s.AtEOF() {
			return nil, &Error{Line: p.s.Line(), Message: `unterminated argument list`}
		}
		switch {
		case p.s.Peek(lex.LParen):
			p.s.Scan(lex.LParen)
			depth++
		case p.s.Peek(lex.RParen):
			end := p.s.Pos()
			p.s.Scan(lex.RParen)
			depth--
			if depth == 0 {
				return &stubArgList{text: p.s.Source()[start:end]}, nil
			}
		default:
			p.s.Scan(lex.AnyCharOrNL)
		}
	}
	return &stubArgList{text: ""}, nil
}
