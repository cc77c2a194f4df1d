package scanner_test

import (
	"testing"

	"github.com/nschonni/ruby-sass/lex"
	"github.com/nschonni/ruby-sass/scanner"
)

func TestScanner_Scan(t *testing.T) {
	s := scanner.New("color: red;")

	if got, ok := s.Scan(lex.Ident); !ok || got != "color" {
		t.Fatalf("Scan(Ident) = %q, %v", got, ok)
	}
	if got, ok := s.Scan(lex.Colon); !ok || got != ":" {
		t.Fatalf("Scan(Colon) = %q, %v", got, ok)
	}
	if _, ok := s.Scan(lex.S); !ok {
		t.Fatalf("Scan(S) failed")
	}
	if got, ok := s.Scan(lex.Ident); !ok || got != "red" {
		t.Fatalf("Scan(Ident) = %q, %v", got, ok)
	}
	if s.AtEOF() {
		t.Fatalf("expected more input before ';'")
	}
}

func TestScanner_ScanFailureLeavesPositionUntouched(t *testing.T) {
	s := scanner.New("123")
	before := s.Pos()
	if _, ok := s.Scan(lex.Ident); ok {
		t.Fatalf("expected Ident not to match digits")
	}
	if s.Pos() != before {
		t.Fatalf("position moved on failed match: %d != %d", s.Pos(), before)
	}
}

func TestScanner_LineTracking(t *testing.T) {
	s := scanner.New("a\nb\nc")
	s.Scan(lex.Ident)
	if s.Line() != 1 {
		t.Fatalf("line = %d, want 1", s.Line())
	}
	s.Scan(lex.S)
	if s.Line() != 2 {
		t.Fatalf("line = %d, want 2", s.Line())
	}
}

func TestScanner_BookmarkRestore(t *testing.T) {
	s := scanner.New("a:hover")
	s.Scan(lex.Ident)
	mark := s.Bookmark()
	s.Scan(lex.Colon)
	s.Scan(lex.Ident)
	s.Restore(mark)
	if s.Pos() != 1 {
		t.Fatalf("Restore did not rewind position: %d", s.Pos())
	}
}

func TestScanner_CaptureStack(t *testing.T) {
	s := scanner.New("a b c")
	got := s.Capture(func() {
		s.Scan(lex.Ident)
		s.Scan(lex.S)
		s.Scan(lex.Ident)
	})
	if got != "a b" {
		t.Fatalf("Capture = %q, want %q", got, "a b")
	}
}

func TestScanner_CaptureExcludesComments(t *testing.T) {
	s := scanner.New("a/* hi */b")
	got := s.Capture(func() {
		s.Scan(lex.Ident)
		s.ScanComment(lex.Comment)
		s.Scan(lex.Ident)
	})
	if got != "ab" {
		t.Fatalf("Capture = %q, want %q (comment must be excluded)", got, "ab")
	}
}

func TestScanner_NestedCaptures(t *testing.T) {
	s := scanner.New("abc")
	var inner string
	outer := s.Capture(func() {
		s.Scan(lex.Ident)
		inner = s.Capture(func() {})
	})
	if outer != "abc" || inner != "" {
		t.Fatalf("outer=%q inner=%q", outer, inner)
	}
}

func TestScanner_GroupsAndExpected(t *testing.T) {
	s := scanner.New(`"hi" `)
	if _, ok := s.Scan(lex.StringDoubleOpen); !ok {
		t.Fatalf("expected StringDoubleOpen to match")
	}
	if got := s.Group(1); got != "hi" {
		t.Fatalf("Group(1) = %q, want %q", got, "hi")
	}
	if got := s.Group(2); got != `"` {
		t.Fatalf("Group(2) = %q, want closing quote", got)
	}

	s.SetExpected("a string")
	if s.Expected() != "a string" {
		t.Fatalf("SetExpected/Expected round trip failed")
	}
	s.Scan(lex.S) // any successful scan clears the pending expectation
	if s.Expected() != "" {
		t.Fatalf("Expected should be cleared after a successful scan")
	}
}

func TestScanner_PeekLiteral(t *testing.T) {
	s := scanner.New("through 3")
	if !s.PeekLiteral("through") {
		t.Fatalf("PeekLiteral(through) = false")
	}
	if s.PeekLiteral("thro") {
		t.Fatalf("PeekLiteral(thro) should not match a longer identifier")
	}
	if !s.ScanLiteral("through") {
		t.Fatalf("ScanLiteral(through) failed")
	}
	if s.Pos() != len("through") {
		t.Fatalf("ScanLiteral did not advance correctly: pos=%d", s.Pos())
	}
}
