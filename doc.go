/*
Package sass implements a recursive-descent scanner and parser for an
extended CSS-like stylesheet dialect: standard CSS syntax augmented with
at-rule directives for control flow, mixins, variables, interpolated
expressions (#{...}), and nested blocks.

This is a low-level library. It turns a source string into an abstract
syntax tree (see the ast package) or a precise syntax error identifying
the offending location, the expected construct, and the text actually
found. It does not evaluate the tree, render CSS, resolve imports, or
touch the filesystem - those are left to callers.

Basics

Parsing is one pass over the source text. The scanner (see the scanner
package) is a position-tracking cursor that matches named regular
expression patterns (see the lex package) directly against the
remaining source; there is no separate tokenization step. The grammar
engine (see the parser package) drives the scanner through a set of mutually
recursive productions, one per nonterminal of the dialect's grammar.

Ambiguity

A line beginning with an identifier followed by a colon may be a
property declaration ("color: red") or a selector-based rule
("a:hover { ... }"). This is resolved at a single well-defined
backtracking point: the parser first attempts to read a declaration,
and falls back to a ruleset only if that attempt cannot be driven to a
clean terminator. See declarationOrRuleset in the parser package.

Expressions

Variable values, mixin arguments, loop bounds, and #{...} interpolation
bodies are delegated to a separate expression sub-grammar (SassScript)
that the parser package does not implement; see the expr package for the
delegation boundary. Callers supply an expr.Parser implementation built
on the same scanner so that the two parsers advance in lockstep.
*/
package sass
