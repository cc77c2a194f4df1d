// Package scanner implements a position-tracking cursor over a source
// string, matching named regular-expression patterns at the current
// position and exposing bookmarks for the grammar engine's single
// backtracking point.
package scanner

import (
	"regexp"
	"strings"
)

// Bookmark is an opaque save point created by Scanner.Bookmark and
// consumed by Scanner.Restore. It captures position and line only; the
// capture stack is never rolled back, by contract of the single
// backtracking point in the grammar engine.
type Bookmark struct {
	pos  int
	line int
}

// Scanner is a position-tracking cursor over an immutable source
// string. A zero Scanner is not usable; construct one with New.
type Scanner struct {
	source string
	pos    int
	line   int

	lastGroups []string
	expected   string

	captureStack []*strings.Builder
}

// New returns a Scanner positioned at the start of source.
func New(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// Source returns the full source text the scanner was constructed with.
func (s *Scanner) Source() string { return s.source }

// Pos returns the current byte offset into the source.
func (s *Scanner) Pos() int { return s.pos }

// Line returns the current 1-based line number.
func (s *Scanner) Line() int { return s.line }

// AtEOF reports whether the scanner has consumed the entire source.
func (s *Scanner) AtEOF() bool { return s.pos >= len(s.source) }

// Rest returns the unconsumed suffix of the source.
func (s *Scanner) Rest() string { return s.source[s.pos:] }

// Group returns the i'th capture group of the most recent successful
// match (0 is the whole match). It returns "" if there was no such
// group or no successful match yet.
func (s *Scanner) Group(i int) string {
	if i < 0 || i >= len(s.lastGroups) {
		return ""
	}
	return s.lastGroups[i]
}

// Expected returns the most recently advertised expectation string, or
// "" if none is pending. It is cleared by every successful call to
// Scan or ScanComment.
func (s *Scanner) Expected() string { return s.expected }

// SetExpected records a human-readable expectation to be used by the
// caller's error reporter if the next match attempt fails.
func (s *Scanner) SetExpected(what string) { s.expected = what }

// Scan attempts to match pattern at the current position. On success
// it advances the position, updates the line count, records the
// match's capture groups, clears the pending expectation, appends the
// matched text to every live capture buffer, and returns the matched
// text and true. On failure it returns ("", false) and leaves all
// state untouched.
func (s *Scanner) Scan(pattern *regexp.Regexp) (string, bool) {
	return s.scan(pattern, false)
}

// ScanComment behaves like Scan but never appends to the capture
// stack, since comments are elided from every recorded production
// span.
func (s *Scanner) ScanComment(pattern *regexp.Regexp) (string, bool) {
	return s.scan(pattern, true)
}

func (s *Scanner) scan(pattern *regexp.Regexp, isComment bool) (string, bool) {
	loc := pattern.FindStringSubmatchIndex(s.Rest())
	if loc == nil || loc[0] != 0 {
		return "", false
	}

	matched := s.Rest()[:loc[1]]
	s.lastGroups = submatches(s.Rest(), loc)
	s.expected = ""
	s.advance(matched)

	if !isComment {
		for _, buf := range s.captureStack {
			buf.WriteString(matched)
		}
	}

	return matched, true
}

func submatches(text string, loc []int) []string {
	groups := make([]string, len(loc)/2)
	for i := range groups {
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 || end < 0 {
			continue
		}
		groups[i] = text[start:end]
	}
	return groups
}

func (s *Scanner) advance(matched string) {
	s.pos += len(matched)
	s.line += strings.Count(matched, "\n")
}

// Peek is the non-consuming lookahead equivalent of Scan: it reports
// whether pattern matches at the current position without changing any
// scanner state.
func (s *Scanner) Peek(pattern *regexp.Regexp) bool {
	loc := pattern.FindStringIndex(s.Rest())
	return loc != nil && loc[0] == 0
}

// PeekLiteral reports whether the given literal word appears at the
// current position and is not itself a prefix of a longer identifier
// (i.e. it is followed by EOF or a non-identifier byte).
func (s *Scanner) PeekLiteral(word string) bool {
	rest := s.Rest()
	if !strings.HasPrefix(rest, word) {
		return false
	}
	if len(rest) == len(word) {
		return true
	}
	next := rest[len(word)]
	return !isIdentByte(next)
}

// ScanLiteral consumes word if PeekLiteral(word) holds.
func (s *Scanner) ScanLiteral(word string) bool {
	if !s.PeekLiteral(word) {
		return false
	}
	s.expected = ""
	s.advance(word)
	for _, buf := range s.captureStack {
		buf.WriteString(word)
	}
	return true
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '-' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// Bookmark saves the current position and line for a later Restore.
func (s *Scanner) Bookmark() Bookmark {
	return Bookmark{pos: s.pos, line: s.line}
}

// Restore rewinds the scanner's position and line to a previously
// saved Bookmark. The capture stack is never rolled back.
func (s *Scanner) Restore(b Bookmark) {
	s.pos = b.pos
	s.line = b.line
}

// Capture pushes a new accumulating buffer, runs body, pops the
// buffer, and returns the exact source text consumed while it was
// live (comments excluded). Capture regions may nest: while any
// buffers are live, every successful token is appended to all of
// them.
func (s *Scanner) Capture(body func()) string {
	buf := &strings.Builder{}
	s.captureStack = append(s.captureStack, buf)
	body()
	s.captureStack = s.captureStack[:len(s.captureStack)-1]
	return buf.String()
}
