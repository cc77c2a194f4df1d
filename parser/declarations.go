package parser

import (
	"errors"

	"github.com/nschonni/ruby-sass/ast"
	"github.com/nschonni/ruby-sass/lex"
)

// ambiguousNestingError is a sentinel returned by tryDeclaration for a
// property immediately followed by a value and a nested block with no
// separating whitespace. It always sets usePropertyException, since
// this shape is ambiguous with a pseudo-class selector: if the
// ruleset retry also fails (e.g. the supposed pseudo-class name is not
// one of the recognized ones), this message wins over the ruleset's
// own error.
var ambiguousNestingError = errors.New("ambiguous property nesting")

// declarationOrRuleset is the grammar's single backtracking point: a
// line beginning with an identifier may be a property declaration
// ("color: red") or a selector-based rule ("a:hover { ... }"), and
// the choice can require arbitrarily much lookahead to resolve. The
// algorithm tries declaration first, and falls back to ruleset only
// if declaration either failed outright or matched but left the
// scanner somewhere other than immediately before ";", "}", or end of
// input (a declaration that parsed its own nested block is accepted
// as is).
func (e *Engine) declarationOrRuleset() (ast.Node, error) {
	bookmark := e.s.Bookmark()
	savedException := e.usePropertyException
	defer func() { e.usePropertyException = savedException }()

	e.usePropertyException = false
	decl, declErr := e.tryDeclaration()

	var candidateA error
	switch {
	case declErr == ambiguousNestingError:
		e.usePropertyException = true
		candidateA = &Error{
			Line:    e.s.Line(),
			Message: "a space is required between a property and its definition when it has other properties nested beneath it",
		}
	case declErr == nil && decl != nil:
		peekBookmark := e.s.Bookmark()
		e.skipInlineSpace()
		ok := e.s.Peek(lex.Semicolon) || e.s.Peek(lex.RBrace) || e.s.AtEOF() || decl.Children != nil
		e.s.Restore(peekBookmark)
		if ok {
			return decl, nil
		}
		candidateA = e.fail(`";" or "}"`)
	case declErr != nil:
		candidateA = declErr
	}

	exceptionAtFailure := e.usePropertyException
	e.s.Restore(bookmark)

	rule, ok, ruleErr := e.tryRuleset()
	if ruleErr == nil && ok {
		return rule, nil
	}

	if candidateA == nil {
		candidateA = e.fail("a property or selector")
	}

	if exceptionAtFailure {
		return nil, candidateA
	}
	if ruleErr != nil {
		return nil, ruleErr
	}
	return nil, candidateA
}

// tryDeclaration attempts the "declaration" alternative. It returns
// (nil, nil) only when the very first token does not look like the
// start of a property at all; once a property name has been
// consumed, failures are committed errors.
func (e *Engine) tryDeclaration() (*ast.Declaration, error) {
	line := e.s.Line()

	star := ""
	if e.s.Peek(lex.Star) {
		star, _ = e.s.Scan(lex.Star)
		e.usePropertyException = true
	}

	property, ok, err := e.property()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	if star != "" {
		property = append([]string{star}, property...)
	}

	switch {
	case e.s.Peek(lex.Equals):
		e.s.Scan(lex.Equals)
		e.usePropertyException = true
		e.skipInlineSpace()
		raw, err := e.captured(func() error {
			_, err := e.exprParser.Parse()
			return err
		})
		if err != nil {
			return nil, err
		}
		return &ast.Declaration{LineNo: line, Property: property, Value: []string{raw}}, nil

	case e.s.Peek(lex.Colon):
		e.s.Scan(lex.Colon)
		wsBookmark := e.s.Bookmark()
		hadSpace := false
		if _, ok := e.s.Scan(lex.S); ok {
			hadSpace = true
		} else {
			e.s.Restore(wsBookmark)
		}
		if hadSpace {
			e.usePropertyException = true
		}

		value, err := e.parseValueTokens()
		if err != nil {
			return nil, err
		}
		if len(value) > 0 && !isIdentToken(value[0]) {
			e.usePropertyException = true
		}

		if text, ok := e.s.Scan(lex.Important); ok {
			value = append(value, text)
		}

		decl := &ast.Declaration{LineNo: line, Property: property, Value: value}

		bracePeek := e.s.Bookmark()
		e.skipInlineSpace()
		needsBlock := e.s.Peek(lex.LBrace)
		e.s.Restore(bracePeek)

		if needsBlock {
			if !hadSpace && len(value) > 0 {
				return nil, ambiguousNestingError
			}
			e.skipInlineSpace()
			children, err := e.block()
			if err != nil {
				return nil, err
			}
			decl.Children = children
		}

		return decl, nil

	default:
		return nil, e.fail(`":" or "="`)
	}
}

// property matches a property name: identifier(s) and interpolations
// alternating with no separating whitespace.
func (e *Engine) property() ([]string, bool, error) {
	var tokens []string
	for {
		switch {
		case e.s.Peek(lex.Ident):
			text, _ := e.s.Scan(lex.Ident)
			tokens = append(tokens, text)
		case e.s.Peek(lex.Interp):
			text, ok, err := e.interpolationTerm()
			if err != nil {
				return nil, false, err
			}
			if !ok {
				return tokens, len(tokens) > 0, nil
			}
			tokens = append(tokens, text)
		default:
			return tokens, len(tokens) > 0, nil
		}
	}
}

// isIdentToken reports whether token looks like a bare identifier, as
// opposed to a punctuation- or digit-leading token; used to decide
// whether a non-identifier first value token signals a property-style
// commitment.
func isIdentToken(token string) bool {
	return lex.Ident.MatchString(token) && lex.Ident.FindString(token) == token
}
