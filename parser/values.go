package parser

import (
	"regexp"

	"github.com/nschonni/ruby-sass/lex"
)

// captured runs body with a fresh capture buffer live and returns the
// exact source text it consumed, propagating any error body returns.
func (e *Engine) captured(body func() error) (string, error) {
	var err error
	text := e.s.Capture(func() { err = body() })
	return text, err
}

// parseValueTokens collects a CSS component-value list: one term, then
// zero or more (operator, term) pairs, per §4.2.6. It stops as soon as
// neither a term nor an operator-followed-by-term can be matched;
// callers that need a hard terminator (";", "}", ")") check for it
// themselves afterward. Every consumed character is represented by
// some entry of the returned slice, so concatenating it reproduces the
// consumed source exactly.
func (e *Engine) parseValueTokens() ([]string, error) {
	var tokens []string

	first, ok, err := e.term()
	if err != nil {
		return nil, err
	}
	if !ok {
		return tokens, nil
	}
	tokens = append(tokens, first)

	for {
		bookmark := e.s.Bookmark()
		mark := len(tokens)

		op, ok := e.operator()
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, op)

		next, ok, err := e.term()
		if err != nil {
			return nil, err
		}
		if !ok {
			e.s.Restore(bookmark)
			tokens = tokens[:mark]
			return tokens, nil
		}
		tokens = append(tokens, next)
	}
}

// operator matches one permissive infix operator: whitespace, or one
// of "/", ",", ":", ".", "=" with optional whitespace on either side.
// Per §9's open question, ":" and "." are kept as legacy-permissive
// operators inside value grammar. Surrounding whitespace is folded
// into the same token so that e.g. "Arial, sans-serif" and "0 / 2"
// resolve as a single operator between their two terms, rather than
// leaving trailing whitespace for the next term to trip over.
func (e *Engine) operator() (string, bool) {
	lead, _ := e.s.Scan(lex.S)

	punct, ok := e.scanAny(lex.Slash, lex.Comma, lex.Colon, lex.Dot, lex.Equals)
	if !ok {
		if lead != "" {
			return lead, true
		}
		return "", false
	}

	trail, _ := e.s.Scan(lex.S)
	return lead + punct + trail, true
}

// scanAny tries each pattern in order and returns the first match.
func (e *Engine) scanAny(patterns ...*regexp.Regexp) (string, bool) {
	for _, p := range patterns {
		if text, ok := e.s.Scan(p); ok {
			return text, true
		}
	}
	return "", false
}

// term matches one CSS component value: a number, URI, function call,
// interpolated string, unicode range, identifier, hash literal, or
// interpolation; failing those, a unary "+"/"-" prefix followed by a
// number or function call. Returns ("", false, nil) if nothing
// matches.
func (e *Engine) term() (string, bool, error) {
	switch {
	case e.s.Peek(lex.Number):
		text, _ := e.s.Scan(lex.Number)
		return text, true, nil
	case e.s.Peek(lex.URI):
		text, _ := e.s.Scan(lex.URI)
		return text, true, nil
	case e.s.Peek(lex.Function):
		return e.function()
	case e.s.Peek(lex.StringDoubleOpen), e.s.Peek(lex.StringSingleOpen):
		return e.interpString()
	case e.s.Peek(lex.UnicodeRange):
		text, _ := e.s.Scan(lex.UnicodeRange)
		return text, true, nil
	case e.s.Peek(lex.Interp):
		return e.interpolationTerm()
	case e.s.Peek(lex.Hash):
		text, _ := e.s.Scan(lex.Hash)
		return text, true, nil
	case e.s.Peek(lex.Ident):
		text, _ := e.s.Scan(lex.Ident)
		return text, true, nil
	case e.s.Peek(unarySign):
		return e.unaryTerm()
	default:
		return "", false, nil
	}
}

var unarySign = regexp.MustCompile(`^[+-]`)

// unaryTerm matches a unary "+"/"-" prefix followed by a number or a
// function call.
func (e *Engine) unaryTerm() (string, bool, error) {
	bookmark := e.s.Bookmark()
	sign, ok := e.s.Scan(unarySign)
	if !ok {
		return "", false, nil
	}
	switch {
	case e.s.Peek(lex.Number):
		text, _ := e.s.Scan(lex.Number)
		return sign + text, true, nil
	case e.s.Peek(lex.Function):
		text, ok, err := e.function()
		if err != nil || !ok {
			return "", false, err
		}
		return sign + text, true, nil
	default:
		e.s.Restore(bookmark)
		return "", false, nil
	}
}

// function matches a function call: FUNCTION primitive (identifier
// immediately followed by "("), optional whitespace, an expr, ")".
func (e *Engine) function() (string, bool, error) {
	text, err := e.captured(func() error {
		if _, err := e.expect(lex.Function, ""); err != nil {
			return err
		}
		e.skipInlineSpace()
		if _, err := e.parseValueTokens(); err != nil {
			return err
		}
		e.skipInlineSpace()
		_, err := e.expect(lex.RParen, `")"`)
		return err
	})
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

// interpolationTerm matches "#{expr}" by delegating to the expression
// sub-parser's interpolation entry, capturing the raw text consumed so
// the surrounding token list can still reconstruct the source.
func (e *Engine) interpolationTerm() (string, bool, error) {
	text, err := e.captured(func() error {
		_, err := e.exprParser.ParseInterpolated()
		return err
	})
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

// interpString matches an interp_string per §4.2.7: a quoted opener,
// and if it ended at "#{" rather than the closing quote, repeated
// (interpolation, continuation) pairs until the closing quote is
// reached. Continuation detection relies on group 2 of the opener/
// continuation match: it is either the closing quote or the literal
// "#{".
func (e *Engine) interpString() (string, bool, error) {
	text, err := e.captured(func() error {
		var open, mid *regexp.Regexp
		switch {
		case e.s.Peek(lex.StringDoubleOpen):
			open, mid = lex.StringDoubleOpen, lex.StringDoubleMid
		case e.s.Peek(lex.StringSingleOpen):
			open, mid = lex.StringSingleOpen, lex.StringSingleMid
		default:
			return e.fail("a string")
		}

		if _, err := e.expect(open, "a string"); err != nil {
			return err
		}
		terminator := e.s.Group(2)

		// The open/mid patterns consume the "#{" themselves as part of
		// matching the terminator, so the interpolation body is parsed
		// directly (via Parse, not ParseInterpolated) and only the
		// matching "}" remains to be consumed here.
		for terminator == "#{" {
			if _, err := e.exprParser.Parse(); err != nil {
				return err
			}
			e.skipInlineSpace()
			if _, err := e.expect(lex.RBrace, `"}"`); err != nil {
				return err
			}
			if _, err := e.expect(mid, "a string"); err != nil {
				return err
			}
			terminator = e.s.Group(2)
		}
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}
