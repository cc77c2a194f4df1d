// Package parser implements the grammar engine: a recursive-descent
// parser for the dialect described in the lex and ast packages. Each
// nonterminal is a method on Engine that either returns a constructed
// AST fragment or a "no match" signal (nil, nil) so that its caller
// may try another alternative; an error is returned only once a
// production has committed and a required token is absent.
package parser

import (
	"strings"

	"github.com/nschonni/ruby-sass/ast"
	"github.com/nschonni/ruby-sass/expr"
	"github.com/nschonni/ruby-sass/lex"
	"github.com/nschonni/ruby-sass/scanner"
)

// Engine holds the mutable state shared across the grammar's
// recursive-descent productions: the scanner, the expression
// sub-parser it delegates to, and the property-exception flag used by
// the declaration/ruleset disambiguator.
type Engine struct {
	s          *scanner.Scanner
	exprParser expr.Parser

	usePropertyException bool
}

// New constructs a grammar engine over source. newExpr builds the
// expression sub-parser implementation that will share this engine's
// scanner.
func New(source string, newExpr expr.NewFunc) *Engine {
	s := scanner.New(source)
	return &Engine{s: s, exprParser: newExpr(s)}
}

// Parse parses source into a stylesheet AST, or returns a syntax
// error. newExpr supplies the expression sub-parser implementation;
// this package does not implement the expression grammar itself.
func Parse(source string, newExpr expr.NewFunc) (*ast.Root, error) {
	return New(source, newExpr).Parse()
}

// Parse runs the grammar engine's single public entry point:
// stylesheet -> block_contents, followed by a check that the entire
// source was consumed.
func (e *Engine) Parse() (*ast.Root, error) {
	root := &ast.Root{LineNo: 1}
	if err := e.blockContents(&root.Children); err != nil {
		return nil, err
	}
	if !e.s.AtEOF() {
		return nil, e.fail("selector or at-rule")
	}
	return root, nil
}

// blockContents repeatedly attaches children to parent, consuming
// leading whitespace and comments (attaching block comments to
// parent) before each one, until it hits a closing brace or EOF.
// Between children it requires either a ";" separator or that the
// preceding child already introduced a nested block.
func (e *Engine) blockContents(parent *[]ast.Node) error {
	for {
		e.skipWhitespaceAndComments(parent)

		if e.s.AtEOF() || e.s.Peek(lex.RBrace) {
			return nil
		}

		child, err := e.child()
		if err != nil {
			return err
		}
		*parent = append(*parent, child)

		e.skipInlineSpace()
		switch {
		case e.s.Peek(lex.Semicolon):
			e.s.Scan(lex.Semicolon)
		case hasOwnBlock(child):
			// A nested block stands in for the separator.
		case e.s.AtEOF() || e.s.Peek(lex.RBrace):
			// A trailing child with no block needs no separator.
		default:
			return e.fail(`";"`)
		}
	}
}

// child parses exactly one block-level construct: a variable binding,
// an at-rule directive, or the ambiguous declaration-or-ruleset.
func (e *Engine) child() (ast.Node, error) {
	switch {
	case e.s.Peek(lex.Bang):
		return e.variable()
	case e.s.Peek(lex.At):
		return e.directive()
	default:
		return e.declarationOrRuleset()
	}
}

// hasOwnBlock reports whether node already introduced a nested block,
// making a trailing ";" separator optional.
func hasOwnBlock(node ast.Node) bool {
	switch v := node.(type) {
	case *ast.Rule:
		return true
	case *ast.MixinDefinition, *ast.For, *ast.While, *ast.If:
		return true
	case *ast.Directive:
		return v.Children != nil
	case *ast.Declaration:
		return v.Children != nil
	default:
		return false
	}
}

// block parses a "{ ... }" block of children.
func (e *Engine) block() ([]ast.Node, error) {
	if _, err := e.expect(lex.LBrace, `"{"`); err != nil {
		return nil, err
	}
	children := []ast.Node{}
	if err := e.blockContents(&children); err != nil {
		return nil, err
	}
	if _, err := e.expect(lex.RBrace, `"}"`); err != nil {
		return nil, err
	}
	return children, nil
}

// skipWhitespaceAndComments consumes contiguous whitespace and
// comments, attaching preserved block comments to parent.
func (e *Engine) skipWhitespaceAndComments(parent *[]ast.Node) {
	for {
		if _, ok := e.s.Scan(lex.S); ok {
			continue
		}
		if line := e.s.Line(); true {
			if text, ok := e.s.ScanComment(lex.Comment); ok {
				*parent = append(*parent, &ast.Comment{LineNo: line, Text: normalizeIndent(text)})
				continue
			}
		}
		if _, ok := e.s.ScanComment(lex.SingleLineComment); ok {
			continue
		}
		return
	}
}

// skipInlineSpace consumes whitespace without recording it anywhere;
// used between tokens where it carries no grammatical weight.
func (e *Engine) skipInlineSpace() {
	for {
		if _, ok := e.s.Scan(lex.S); !ok {
			return
		}
	}
}

// normalizeIndent replaces leading tabs on every line of a preserved
// comment with spaces.
func normalizeIndent(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		j := 0
		for j < len(line) && line[j] == '\t' {
			j++
		}
		if j > 0 {
			lines[i] = strings.Repeat(" ", j) + line[j:]
		}
	}
	return strings.Join(lines, "\n")
}
