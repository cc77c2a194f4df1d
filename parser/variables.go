package parser

import (
	"github.com/nschonni/ruby-sass/ast"
	"github.com/nschonni/ruby-sass/lex"
)

// variable parses "!name [||] = expr". The leading "!" has already
// been peeked by child but not yet consumed.
func (e *Engine) variable() (ast.Node, error) {
	line := e.s.Line()

	if _, err := e.expect(lex.Bang, `"!"`); err != nil {
		return nil, err
	}
	name, err := e.expect(lex.Ident, "a variable name")
	if err != nil {
		return nil, err
	}

	e.skipInlineSpace()

	guarded := false
	if e.s.Peek(lex.Guard) {
		e.s.Scan(lex.Guard)
		guarded = true
		e.skipInlineSpace()
	}

	if _, err := e.expect(lex.Equals, `"="`); err != nil {
		return nil, err
	}
	e.skipInlineSpace()

	value, err := e.exprParser.Parse()
	if err != nil {
		return nil, err
	}

	return &ast.Variable{LineNo: line, Name: name, Expr: value, Guarded: guarded}, nil
}
