package parser

import (
	"strings"

	"github.com/nschonni/ruby-sass/ast"
	"github.com/nschonni/ruby-sass/expr"
	"github.com/nschonni/ruby-sass/lex"
)

// directive parses any construct beginning with "@". The leading "@"
// has already been peeked by child but not yet consumed. Recognized
// keywords get a specialized node; anything else falls back to a
// generic Directive whose prelude is captured verbatim.
func (e *Engine) directive() (ast.Node, error) {
	line := e.s.Line()
	bookmark := e.s.Bookmark()

	if _, err := e.expect(lex.At, `"@"`); err != nil {
		return nil, err
	}
	name, err := e.expect(lex.Ident, "an at-rule name")
	if err != nil {
		return nil, err
	}

	switch name {
	case "mixin":
		return e.mixinDefinition(line)
	case "include":
		return e.mixinInvocation(line)
	case "debug":
		return e.debugDirective(line)
	case "for":
		return e.forDirective(line)
	case "while":
		return e.whileDirective(line)
	case "if":
		return e.ifDirective(line)
	case "import":
		return e.importDirective(line)
	default:
		e.s.Restore(bookmark)
		return e.genericDirective(line)
	}
}

// mixinDefinition parses "@mixin" name(params) { ... }".
func (e *Engine) mixinDefinition(line int) (ast.Node, error) {
	e.skipInlineSpace()
	name, err := e.expect(lex.Ident, "a mixin name")
	if err != nil {
		return nil, err
	}

	e.skipInlineSpace()
	var params expr.ArgList
	if e.s.Peek(lex.LParen) {
		params, err = e.exprParser.ParseMixinDefinitionArglist()
		if err != nil {
			return nil, err
		}
	}

	e.skipInlineSpace()
	children, err := e.block()
	if err != nil {
		return nil, err
	}

	return &ast.MixinDefinition{LineNo: line, Name: name, Params: params, Children: children}, nil
}

// mixinInvocation parses "@include name(args)".
func (e *Engine) mixinInvocation(line int) (ast.Node, error) {
	e.skipInlineSpace()
	name, err := e.expect(lex.Ident, "a mixin name")
	if err != nil {
		return nil, err
	}

	e.skipInlineSpace()
	var args expr.ArgList
	if e.s.Peek(lex.LParen) {
		args, err = e.exprParser.ParseMixinIncludeArglist()
		if err != nil {
			return nil, err
		}
	}

	return &ast.MixinInvocation{LineNo: line, Name: name, Args: args}, nil
}

// debugDirective parses "@debug expr".
func (e *Engine) debugDirective(line int) (ast.Node, error) {
	e.skipInlineSpace()
	value, err := e.exprParser.Parse()
	if err != nil {
		return nil, err
	}
	return &ast.Debug{LineNo: line, Expr: value}, nil
}

// forDirective parses "@for !var from X (to|through) Y { ... }".
func (e *Engine) forDirective(line int) (ast.Node, error) {
	e.skipInlineSpace()
	if _, err := e.expect(lex.Bang, `"!"`); err != nil {
		return nil, err
	}
	varName, err := e.expect(lex.Ident, "a variable name")
	if err != nil {
		return nil, err
	}

	e.skipInlineSpace()
	if !e.s.ScanLiteral("from") {
		return nil, e.fail(`"from"`)
	}
	e.skipInlineSpace()

	from, err := e.exprParser.ParseUntil("to", "through")
	if err != nil {
		return nil, err
	}

	e.skipInlineSpace()
	inclusive := false
	switch {
	case e.s.ScanLiteral("through"):
		inclusive = true
	case e.s.ScanLiteral("to"):
	default:
		return nil, e.fail(`"to" or "through"`)
	}
	e.skipInlineSpace()

	to, err := e.exprParser.Parse()
	if err != nil {
		return nil, err
	}

	e.skipInlineSpace()
	children, err := e.block()
	if err != nil {
		return nil, err
	}

	return &ast.For{
		LineNo:    line,
		Var:       varName,
		From:      from,
		To:        to,
		Inclusive: inclusive,
		Children:  children,
	}, nil
}

// whileDirective parses "@while cond { ... }".
func (e *Engine) whileDirective(line int) (ast.Node, error) {
	e.skipInlineSpace()
	cond, err := e.exprParser.Parse()
	if err != nil {
		return nil, err
	}
	e.skipInlineSpace()
	children, err := e.block()
	if err != nil {
		return nil, err
	}
	return &ast.While{LineNo: line, Cond: cond, Children: children}, nil
}

// ifDirective parses "@if cond { ... }".
func (e *Engine) ifDirective(line int) (ast.Node, error) {
	e.skipInlineSpace()
	cond, err := e.exprParser.Parse()
	if err != nil {
		return nil, err
	}
	e.skipInlineSpace()
	children, err := e.block()
	if err != nil {
		return nil, err
	}
	return &ast.If{LineNo: line, Cond: cond, Children: children}, nil
}

// importDirective parses "@import path", where path is a single quoted
// literal or a "url(...)" literal with no trailing media query. An
// import with a media query, or any other trailing content, is left
// for genericDirective to capture instead.
func (e *Engine) importDirective(line int) (ast.Node, error) {
	bookmark := e.s.Bookmark()

	e.skipInlineSpace()
	var path string
	switch {
	case e.s.Peek(lex.QuotedLiteral):
		text, _ := e.s.Scan(lex.QuotedLiteral)
		path = strings.Trim(text, `"'`)
	case e.s.Peek(lex.URI):
		e.s.Scan(lex.URI)
		path = strings.Trim(e.s.Group(1), `"'`)
	default:
		e.s.Restore(bookmark)
		return e.genericDirectiveFrom(line, "import")
	}

	e.skipInlineSpace()
	if !e.s.Peek(lex.Semicolon) && !e.s.AtEOF() && !e.s.Peek(lex.RBrace) {
		e.s.Restore(bookmark)
		return e.genericDirectiveFrom(line, "import")
	}

	return &ast.Import{LineNo: line, Path: path}, nil
}

// genericDirective captures the raw text of an unrecognized at-rule: its
// name plus everything up to (but not including) a top-level ";" or
// "{", with an optional trailing block.
func (e *Engine) genericDirective(line int) (ast.Node, error) {
	if _, err := e.expect(lex.At, `"@"`); err != nil {
		return nil, err
	}
	name, err := e.expect(lex.Ident, "an at-rule name")
	if err != nil {
		return nil, err
	}
	return e.genericDirectiveFrom(line, name)
}

// genericDirectiveFrom builds a generic Directive given an already-
// consumed "@name", capturing the remainder of its prelude.
func (e *Engine) genericDirectiveFrom(line int, name string) (ast.Node, error) {
	var b strings.Builder
	b.WriteString("@")
	b.WriteString(name)

	depth := 0
	for {
		switch {
		case e.s.Peek(lex.Semicolon) && depth == 0:
			goto done
		case e.s.Peek(lex.LBrace) && depth == 0:
			goto done
		case e.s.AtEOF():
			goto done
		case e.s.Peek(lex.LParen):
			text, _ := e.s.Scan(lex.LParen)
			depth++
			b.WriteString(text)
		case e.s.Peek(lex.RParen):
			text, _ := e.s.Scan(lex.RParen)
			if depth > 0 {
				depth--
			}
			b.WriteString(text)
		default:
			if text, ok := e.s.Scan(lex.QuotedLiteral); ok {
				b.WriteString(text)
				continue
			}
			text, ok := e.s.Scan(lex.AnyCharOrNL)
			if !ok {
				goto done
			}
			b.WriteString(text)
		}
	}
done:

	text := strings.TrimSpace(b.String())

	var children []ast.Node
	if e.s.Peek(lex.LBrace) {
		var err error
		children, err = e.block()
		if err != nil {
			return nil, err
		}
	}

	return &ast.Directive{LineNo: line, Text: text, Children: children}, nil
}
