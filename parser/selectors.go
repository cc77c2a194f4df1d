package parser

import (
	"strings"

	"github.com/nschonni/ruby-sass/ast"
	"github.com/nschonni/ruby-sass/lex"
)

// tryRuleset attempts the "ruleset" alternative of declarationOrRuleset:
// one or more comma-separated selectors, flattened into a single
// token list, followed by a mandatory braced block. It returns
// (nil, false, nil) if no selector could be matched at all; once a
// selector has matched, a missing block is a committed error.
func (e *Engine) tryRuleset() (*ast.Rule, bool, error) {
	line := e.s.Line()

	tokens, ok, err := e.selectorTokens()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	for {
		bookmark := e.s.Bookmark()
		lead := e.skipAndCapture()

		if !e.s.Peek(lex.Comma) {
			e.s.Restore(bookmark)
			break
		}
		comma, _ := e.s.Scan(lex.Comma)
		trail := e.skipAndCapture()

		next, ok, err := e.selectorTokens()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			e.s.Restore(bookmark)
			break
		}
		tokens = append(tokens, lead, comma, trail)
		tokens = append(tokens, next...)
	}

	e.skipInlineSpace()
	children, err := e.block()
	if err != nil {
		return nil, false, err
	}

	return &ast.Rule{LineNo: line, Selector: tokens, Children: children}, true, nil
}

// skipAndCapture consumes whitespace and returns the text consumed
// (possibly empty), so it can be folded back into a token list.
func (e *Engine) skipAndCapture() string {
	text, _ := e.captured(func() error {
		e.s.Scan(lex.S)
		return nil
	})
	return text
}

// selectorTokens matches one "selector": an optional leading
// combinator, zero-or-one simple_selector_sequence, then zero or more
// (combinator, simple_selector_sequence) pairs. Returns (nil, false,
// nil) if nothing at all could be matched.
func (e *Engine) selectorTokens() ([]string, bool, error) {
	var tokens []string

	if c, ok := e.combinator(); ok {
		tokens = append(tokens, c)
	}

	seq, ok, err := e.simpleSelectorSequence()
	if err != nil {
		return nil, false, err
	}
	if ok {
		tokens = append(tokens, seq...)
	}
	if len(tokens) == 0 {
		return nil, false, nil
	}

	for {
		bookmark := e.s.Bookmark()

		c, ok := e.combinator()
		if !ok {
			break
		}
		seq, ok2, err := e.simpleSelectorSequence()
		if err != nil {
			return nil, false, err
		}
		if !ok2 {
			e.s.Restore(bookmark)
			break
		}
		tokens = append(tokens, c)
		tokens = append(tokens, seq...)
	}

	return tokens, true, nil
}

// combinator matches "+", ">", "~", or whitespace.
func (e *Engine) combinator() (string, bool) {
	return e.scanAny(lex.Plus, lex.Greater, lex.Tilde, lex.S)
}

// simpleSelectorSequence matches one or more atoms with no separating
// whitespace: the first is one of {element name, #id, .class,
// attribute selector, :not(...), pseudo, &, interpolation}, or a CSS
// component-value term as a fallback (to support at-rule argument
// reuse of this production); subsequent atoms additionally allow "*".
func (e *Engine) simpleSelectorSequence() ([]string, bool, error) {
	first, ok, err := e.selectorAtom(false)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	tokens := []string{first}

	for {
		atom, ok, err := e.selectorAtom(true)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return tokens, true, nil
		}
		tokens = append(tokens, atom)
	}
}

// selectorAtom matches one selector atom. allowStar permits the "*"
// universal-selector token in non-leading position, per the "E*"
// idiom.
func (e *Engine) selectorAtom(allowStar bool) (string, bool, error) {
	switch {
	case e.s.Peek(lex.Not):
		return e.negation()
	case e.s.Peek(lex.LBrack):
		return e.attrib()
	case e.s.Peek(lex.Colon):
		return e.pseudo()
	case e.s.Peek(lex.ID):
		text, _ := e.s.Scan(lex.ID)
		return text, true, nil
	case e.s.Peek(lex.Dot):
		dot, _ := e.s.Scan(lex.Dot)
		name, err := e.expect(lex.Ident, "a class name")
		if err != nil {
			return "", false, err
		}
		return dot + name, true, nil
	case e.s.Peek(lex.Amp):
		text, _ := e.s.Scan(lex.Amp)
		return text, true, nil
	case e.s.Peek(lex.Interp):
		return e.interpolationTerm()
	case e.s.Peek(lex.Ident):
		text, _ := e.s.Scan(lex.Ident)
		return text, true, nil
	case allowStar && e.s.Peek(lex.Star):
		text, _ := e.s.Scan(lex.Star)
		return text, true, nil
	default:
		text, ok, err := e.term()
		return text, ok, err
	}
}

// attrib matches "[" optional-ws attribute-name optional-matcher
// (ident | interp_string) "]".
func (e *Engine) attrib() (string, bool, error) {
	text, err := e.captured(func() error {
		if _, err := e.expect(lex.LBrack, `"["`); err != nil {
			return err
		}
		e.skipInlineSpace()

		if _, err := e.attributeName(); err != nil {
			return err
		}

		e.skipInlineSpace()
		if _, ok := e.scanAny(lex.Includes, lex.DashMatch, lex.PrefixMatch, lex.SuffixMatch, lex.SubstringMatch, lex.Equals); ok {
			e.skipInlineSpace()
			switch {
			case e.s.Peek(lex.StringDoubleOpen), e.s.Peek(lex.StringSingleOpen):
				if _, _, err := e.interpString(); err != nil {
					return err
				}
			default:
				if _, err := e.expect(lex.Ident, "an attribute value"); err != nil {
					return err
				}
			}
			e.skipInlineSpace()
		}

		_, err := e.expect(lex.RBrack, `"]"`)
		return err
	})
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

// attributeName matches one of the namespace forms E|E, E|, *|E, |E,
// or a bare E.
func (e *Engine) attributeName() (string, error) {
	switch {
	case e.s.Peek(lex.Pipe):
		e.s.Scan(lex.Pipe)
		_, err := e.expect(lex.Ident, "an attribute name")
		return "", err
	case e.s.Peek(lex.Star):
		e.s.Scan(lex.Star)
		if _, err := e.expect(lex.Pipe, `"|"`); err != nil {
			return "", err
		}
		_, err := e.expect(lex.Ident, "an attribute name")
		return "", err
	default:
		if _, err := e.expect(lex.Ident, "an attribute name"); err != nil {
			return "", err
		}
		if e.s.Peek(lex.Pipe) {
			e.s.Scan(lex.Pipe)
			if e.s.Peek(lex.Ident) {
				e.s.Scan(lex.Ident)
			}
		}
		return "", nil
	}
}

// knownPseudoClasses is the fixed set of pseudo-class and pseudo-
// element names this grammar recognizes as selector atoms, both bare
// ("E:hover") and functional ("E:nth-child(...)"). An identifier after
// a colon that is not in this set is left for the ambiguity resolver:
// it is not a recognized pseudo, so pseudo() reports no match and lets
// declarationOrRuleset's declaration alternative win instead.
var knownPseudoClasses = map[string]bool{
	"hover": true, "active": true, "focus": true, "focus-within": true,
	"focus-visible": true, "visited": true, "any-link": true,
	"link": true, "target": true, "target-within": true, "root": true,
	"empty": true, "blank": true, "scope": true, "current": true,
	"enabled": true, "disabled": true, "checked": true, "indeterminate": true,
	"default": true, "valid": true, "invalid": true, "in-range": true,
	"out-of-range": true, "required": true, "optional": true,
	"read-only": true, "read-write": true, "user-invalid": true,
	"first-child": true, "last-child": true, "only-child": true,
	"first-of-type": true, "last-of-type": true, "only-of-type": true,
	"nth-child": true, "nth-last-child": true,
	"nth-of-type": true, "nth-last-of-type": true, "nth-col": true, "nth-last-col": true,
	"before": true, "after": true, "first-line": true, "first-letter": true,
	"selection": true, "placeholder": true, "marker": true,
	"backdrop": true, "cue": true, "part": true, "slotted": true,
	"lang": true, "dir": true, "is": true, "where": true, "has": true,
	"host": true, "host-context": true, "fullscreen": true,
	"defined": true, "paused": true, "playing": true, "muted": true, "volume-locked": true,
	"left": true, "right": true, "first": true,
}

// pseudo matches one or two colons, then either a functional pseudo
// (function-name, arguments, ")") or a bare identifier, provided the
// name is in knownPseudoClasses.
func (e *Engine) pseudo() (string, bool, error) {
	bookmark := e.s.Bookmark()

	name, ok := e.peekPseudoName()
	if !ok || !knownPseudoClasses[name] {
		e.s.Restore(bookmark)
		return "", false, nil
	}

	text, err := e.captured(func() error {
		if _, err := e.expect(lex.Colon, `":"`); err != nil {
			return err
		}
		if e.s.Peek(lex.Colon) {
			e.s.Scan(lex.Colon)
		}

		if e.s.Peek(lex.Function) {
			e.s.Scan(lex.Function)
			for {
				if e.s.Peek(lex.RParen) {
					break
				}
				switch {
				case e.s.Peek(unarySign):
					e.s.Scan(unarySign)
				case e.s.Peek(lex.Number):
					e.s.Scan(lex.Number)
				case e.s.Peek(lex.StringDoubleOpen), e.s.Peek(lex.StringSingleOpen):
					if _, _, err := e.interpString(); err != nil {
						return err
					}
				case e.s.Peek(lex.Interp):
					if _, _, err := e.interpolationTerm(); err != nil {
						return err
					}
				case e.s.Peek(lex.Ident):
					e.s.Scan(lex.Ident)
				case e.s.Peek(lex.S):
					e.s.Scan(lex.S)
				default:
					return e.fail("a pseudo-class argument")
				}
			}
			_, err := e.expect(lex.RParen, `")"`)
			return err
		}

		_, err := e.expect(lex.Ident, "a pseudo-class name")
		return err
	})
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

// peekPseudoName looks past one or two colons and reports the bare
// name that follows (stripping a trailing "(" for functional pseudos).
// It matches against Rest() directly rather than Scan-ing, since
// Restore does not unwind the capture stack (§4.1): Scan-ing here
// while a capture buffer is live (e.g. inside negation's call to
// selectorAtom) would double-append the peeked text once for the peek
// and once for the real scan that follows.
func (e *Engine) peekPseudoName() (string, bool) {
	rest := e.s.Rest()

	if !strings.HasPrefix(rest, ":") {
		return "", false
	}
	rest = rest[1:]
	if strings.HasPrefix(rest, ":") {
		rest = rest[1:]
	}

	if text := lex.Function.FindString(rest); text != "" {
		return text[:len(text)-1], true
	}
	if text := lex.Ident.FindString(rest); text != "" {
		return text, true
	}
	return "", false
}

// negation matches ":not(" one-of{element,id,class,attrib,pseudo} ")".
func (e *Engine) negation() (string, bool, error) {
	text, err := e.captured(func() error {
		if _, err := e.expect(lex.Not, `":not("`); err != nil {
			return err
		}
		_, ok, err := e.selectorAtom(false)
		if err != nil {
			return err
		}
		if !ok {
			return e.fail("a simple selector")
		}
		_, err = e.expect(lex.RParen, `")"`)
		return err
	})
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}
