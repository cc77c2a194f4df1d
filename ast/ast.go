// Package ast defines the abstract syntax tree produced by the grammar
// engine: a tagged-variant tree of stylesheet nodes, each carrying the
// line number on which its first token appeared.
package ast

import "github.com/nschonni/ruby-sass/expr"

// Node is any stylesheet AST node.
type Node interface {
	// Line returns the 1-based source line of the node's first token.
	Line() int
	node()
}

func (*Root) node()             {}
func (*Rule) node()              {}
func (*Directive) node()         {}
func (*Declaration) node()       {}
func (*Variable) node()          {}
func (*MixinDefinition) node()   {}
func (*MixinInvocation) node()   {}
func (*Debug) node()             {}
func (*For) node()               {}
func (*While) node()             {}
func (*If) node()                {}
func (*Import) node()            {}
func (*Comment) node()           {}

// Root is the top-level node of a parsed stylesheet.
type Root struct {
	LineNo   int
	Children []Node
}

func (n *Root) Line() int { return n.LineNo }

// Rule is a selector list followed by a block of children.
type Rule struct {
	LineNo   int
	Selector []string // flattened selector token list
	Children []Node
}

func (n *Rule) Line() int { return n.LineNo }

// Directive is a generic at-rule: one not recognized as one of the
// specialized forms (mixin, include, debug, for, while, if, import).
type Directive struct {
	LineNo   int
	Text     string // "@<name> <args>", trimmed
	Children []Node // nil if the directive had no brace block
}

func (n *Directive) Line() int { return n.LineNo }

// Declaration is a property/value pair, optionally followed by a
// nested block of further declarations.
type Declaration struct {
	LineNo   int
	Property []string // identifier/interpolation token list
	Value    []string // value token list; may be empty if Children is non-empty
	Children []Node   // non-nil only for declarations with a nested block
}

func (n *Declaration) Line() int { return n.LineNo }

// Variable is a "!name = expr" binding.
type Variable struct {
	LineNo  int
	Name    string
	Expr    expr.Expression
	Guarded bool // true if declared with the "||" guard marker
}

func (n *Variable) Line() int { return n.LineNo }

// MixinDefinition is an "@mixin name(params) { ... }" block.
type MixinDefinition struct {
	LineNo   int
	Name     string
	Params   expr.ArgList
	Children []Node
}

func (n *MixinDefinition) Line() int { return n.LineNo }

// MixinInvocation is an "@include name(args)" call.
type MixinInvocation struct {
	LineNo int
	Name   string
	Args   expr.ArgList
}

func (n *MixinInvocation) Line() int { return n.LineNo }

// Debug is an "@debug expr" directive.
type Debug struct {
	LineNo int
	Expr   expr.Expression
}

func (n *Debug) Line() int { return n.LineNo }

// For is an "@for !var from X (to|through) Y { ... }" loop.
type For struct {
	LineNo    int
	Var       string
	From      expr.Expression
	To        expr.Expression
	Inclusive bool // true when the terminator was "through"
	Children  []Node
}

func (n *For) Line() int { return n.LineNo }

// While is an "@while cond { ... }" loop.
type While struct {
	LineNo   int
	Cond     expr.Expression
	Children []Node
}

func (n *While) Line() int { return n.LineNo }

// If is an "@if cond { ... }" conditional.
type If struct {
	LineNo   int
	Cond     expr.Expression
	Children []Node
}

func (n *If) Line() int { return n.LineNo }

// Import is a plain "@import path" with no media query. An import
// carrying a media query is represented as a Directive instead.
type Import struct {
	LineNo int
	Path   string
}

func (n *Import) Line() int { return n.LineNo }

// Comment is a preserved block comment, with leading indentation on
// every continuation line normalized to spaces.
type Comment struct {
	LineNo int
	Text   string
}

func (n *Comment) Line() int { return n.LineNo }
