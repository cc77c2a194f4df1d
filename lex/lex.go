// Package lex defines the named regular-expression patterns the scanner
// matches against the remaining source text. Each pattern is anchored to
// the start of the string ("\A" is simulated by always matching against
// scanner.Rest(), which is itself a suffix of the source) so that a
// failed match never advances the cursor.
package lex

import (
	"regexp"
	"strings"
)

// Whitespace and comments.
var (
	S                  = regexp.MustCompile(`^[ \t\r\n\f]+`)
	Comment            = regexp.MustCompile(`^/\*([^*]|\*[^/])*\**\*/`)
	SingleLineComment  = regexp.MustCompile(`^//[^\n]*`)
	CDO                = regexp.MustCompile(`^<!--`)
	CDC                = regexp.MustCompile(`^-->`)
)

// Identifiers, numbers, strings, URIs.
var (
	Ident        = regexp.MustCompile(`^-?[a-zA-Z_][a-zA-Z0-9_-]*`)
	Number       = regexp.MustCompile(`^[0-9]*\.?[0-9]+([eE][+-]?[0-9]+)?(%|[a-zA-Z]+)?`)
	Function     = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*\(`)
	Hash         = regexp.MustCompile(`^#[a-fA-F0-9]{3,8}\b`)
	ID           = regexp.MustCompile(`^#-?[a-zA-Z_][a-zA-Z0-9_-]*`)
	UnicodeRange = regexp.MustCompile(`^[uU]\+[0-9a-fA-F?]{1,6}(-[0-9a-fA-F]{1,6})?`)
	Interp       = regexp.MustCompile(`^#\{`)
)

// Punctuation and combinators.
var (
	Plus     = regexp.MustCompile(`^\+`)
	Greater  = regexp.MustCompile(`^>`)
	Tilde    = regexp.MustCompile(`^~`)
	Not      = regexp.MustCompile(`^:not\(`)
	Colon    = regexp.MustCompile(`^:`)
	Amp      = regexp.MustCompile(`^&`)
	Star     = regexp.MustCompile(`^\*`)
	Bang     = regexp.MustCompile(`^!`)
)

// Attribute and matcher operators.
var (
	Equals         = regexp.MustCompile(`^=`)
	Includes       = regexp.MustCompile(`^~=`)
	DashMatch      = regexp.MustCompile(`^\|=`)
	PrefixMatch    = regexp.MustCompile(`^\^=`)
	SuffixMatch    = regexp.MustCompile(`^\$=`)
	SubstringMatch = regexp.MustCompile(`^\*=`)
	Pipe           = regexp.MustCompile(`^\|`)
)

// Important.
var Important = regexp.MustCompile(`(?i)^!\s*important`)

// Quoted strings. Group 1 is the decoded body up to the terminator,
// group 2 is the terminator itself: either a closing quote (no
// interpolation in this segment) or "#{" (interpolation follows).
// Scanner.Group reports group 2 emptiness so the parser can tell which
// case it is in without re-matching.
var (
	StringDoubleOpen = regexp.MustCompile(`^"((?:[^"\\#]|\\.|#[^{])*)("|#\{)`)
	StringSingleOpen = regexp.MustCompile(`^'((?:[^'\\#]|\\.|#[^{])*)('|#\{)`)

	// Continuation patterns resume scanning after an interpolation's
	// closing brace, up to the next "#{" or the closing quote.
	StringDoubleMid = regexp.MustCompile(`^((?:[^"\\#]|\\.|#[^{])*)("|#\{)`)
	StringSingleMid = regexp.MustCompile(`^((?:[^'\\#]|\\.|#[^{])*)('|#\{)`)
)

// URI matches a url(...) token with a quoted or bare argument. Group 1
// is the raw argument text (quotes included, if any).
var URI = regexp.MustCompile(`^url\(\s*("(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'|[^)]*)\s*\)`)

// Brackets and separators.
var (
	LBrace    = regexp.MustCompile(`^\{`)
	RBrace    = regexp.MustCompile(`^\}`)
	LParen    = regexp.MustCompile(`^\(`)
	RParen    = regexp.MustCompile(`^\)`)
	LBrack    = regexp.MustCompile(`^\[`)
	RBrack    = regexp.MustCompile(`^\]`)
	Semicolon = regexp.MustCompile(`^;`)
	Comma     = regexp.MustCompile(`^,`)
	Dot       = regexp.MustCompile(`^\.`)
	Slash     = regexp.MustCompile(`^/`)
)

// At and variable markers.
var (
	At    = regexp.MustCompile(`^@`)
	Guard = regexp.MustCompile(`^\|\|`)
)

// Generic-argument scanning primitives, used to capture the raw text
// of a directive's prelude without understanding its grammar.
var (
	QuotedLiteral = regexp.MustCompile(`^(?:"[^"\n]*"|'[^'\n]*')`)
	AnyCharOrNL   = regexp.MustCompile(`(?s)^.`)
)

// names gives most patterns above a human-readable label for error
// messages. Patterns not present here fall back to Describe's literal
// rendering.
var names = map[*regexp.Regexp]string{
	S:                 "whitespace",
	Comment:            "a comment",
	SingleLineComment:  "a comment",
	CDO:                `"<!--"`,
	CDC:                `"-->"`,
	Ident:              "an identifier",
	Number:             "a number",
	Function:           "a function name",
	Hash:               "a hex color",
	ID:                 "an ID selector",
	UnicodeRange:       "a unicode range",
	Interp:             `"#{"`,
	Plus:               `"+"`,
	Greater:            `">"`,
	Tilde:              `"~"`,
	Not:                `":not("`,
	Colon:              `":"`,
	Amp:                `"&"`,
	Star:               `"*"`,
	Bang:               `"!"`,
	Equals:             `"="`,
	Includes:           `"~="`,
	DashMatch:          `"|="`,
	PrefixMatch:        `"^="`,
	SuffixMatch:        `"$="`,
	SubstringMatch:     `"*="`,
	Pipe:               `"|"`,
	Important:          "!important",
	StringDoubleOpen:   "a string",
	StringSingleOpen:   "a string",
	StringDoubleMid:    "a string",
	StringSingleMid:    "a string",
	URI:                "a URI",
	LBrace:             `"{"`,
	RBrace:             `"}"`,
	LParen:             `"("`,
	RParen:             `")"`,
	LBrack:             `"["`,
	RBrack:             `"]"`,
	Semicolon:          `";"`,
	Comma:              `","`,
	Dot:                `"."`,
	Slash:              `"/"`,
	At:                 `"@"`,
}

// Describe returns a human-readable name for a pattern, for use in
// "expected X" error messages. Unknown patterns fall back to their
// literal source with the leading anchor and trivial regex escapes
// stripped, quoted as a literal.
func Describe(pattern *regexp.Regexp) string {
	if name, ok := names[pattern]; ok {
		return name
	}
	return `"` + unescape(pattern.String()) + `"`
}

// unescape strips the leading "^" anchor and un-escapes characters that
// were only escaped to satisfy regexp syntax (e.g. "\+" -> "+").
func unescape(src string) string {
	src = strings.TrimPrefix(src, "^")
	out := make([]byte, 0, len(src))
	for i := 0; i < len(src); i++ {
		if src[i] == '\\' && i+1 < len(src) {
			i++
		}
		out = append(out, src[i])
	}
	return string(out)
}
