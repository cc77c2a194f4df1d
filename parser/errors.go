package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nschonni/ruby-sass/lex"
)

// contextWindow is the number of characters of context shown on each
// side of a syntax error, per the Error Reporter's fixed windowing
// rules.
const contextWindow = 15

// Error is the one error kind the grammar engine raises: a syntax
// error carrying a human-readable message and the 1-based source line
// on which it occurred.
type Error struct {
	Message string
	Line    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (line %d)", e.Message, e.Line)
}

// fail constructs an *Error describing a failure to find "what" at the
// current scanner position, using the scanner's pending Expected label
// in preference to what if one is set.
func (e *Engine) fail(what string) error {
	expected := e.s.Expected()
	if expected == "" {
		expected = what
	}

	before := contextBefore(e.s.Source()[:e.s.Pos()])
	after := contextAfter(e.s.Rest())

	return &Error{
		Line: e.s.Line(),
		Message: fmt.Sprintf(
			`Invalid CSS after %q: expected %s, was %q`,
			before, expected, after,
		),
	}
}

// failPattern is like fail but names the pattern that was expected, via
// lex.Describe, instead of a literal string.
func (e *Engine) failPattern(pattern *regexp.Regexp) error {
	return e.fail(lex.Describe(pattern))
}

// expect consumes pattern or raises a syntax error naming what was
// expected.
func (e *Engine) expect(pattern *regexp.Regexp, what string) (string, error) {
	if got, ok := e.s.Scan(pattern); ok {
		return got, nil
	}
	if what == "" {
		return "", e.failPattern(pattern)
	}
	return "", e.fail(what)
}

// contextBefore returns up to the last contextWindow characters of
// consumed source, with a preceding newline and trailing whitespace
// elided, prefixed with "..." if the text was truncated.
func contextBefore(consumed string) string {
	s := strings.TrimRight(consumed, " \t\r\n\f")
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	truncated := false
	if len(s) > contextWindow {
		s = s[len(s)-contextWindow:]
		truncated = true
	}
	if truncated {
		return "..." + s
	}
	return s
}

// contextAfter returns up to the next contextWindow characters of
// remaining source, with a leading newline stripped and content past
// the next newline truncated, suffixed with "..." if truncated.
func contextAfter(rest string) string {
	s := strings.TrimPrefix(rest, "\n")
	truncated := false
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		if i < len(s)-1 {
			truncated = true
		}
		s = s[:i]
	}
	if len(s) > contextWindow {
		s = s[:contextWindow]
		truncated = true
	}
	if truncated {
		return s + "..."
	}
	return s
}
