package scan

import (
	"errors"
	"testing"
)

func TestReach(t *testing.T) {
	s := New(WithText("abcde [[AAA BBB]]"))

	if err := s.Reach("[["); err != nil {
		t.Fatalf("Reach failed: %v", err)
	}
	if s.Result() != "abcde " {
		t.Errorf("expected %q, got %q", "abcde ", s.Result())
	}
	if s.Offset() != 6 {
		t.Errorf("expected offset 6, got %d", s.Offset())
	}
	// The literal is not consumed.
	if !s.Compare("[[") {
		t.Error("expected cursor just before the literal")
	}

	if err := s.Reach("zzz"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGoBeyond(t *testing.T) {
	s := New(WithText("key=value"))

	if err := s.GoBeyond("="); err != nil {
		t.Fatalf("GoBeyond failed: %v", err)
	}
	if s.Result() != "key=" {
		t.Errorf("expected %q, got %q", "key=", s.Result())
	}
	if s.NotParsedText() != "value" {
		t.Errorf("expected %q remaining, got %q", "value", s.NotParsedText())
	}
}

// Scanning for any of x/d/z stops at the 'd' of "abcde".
func TestReachFirstOf(t *testing.T) {
	s := New(WithText("abcde [[AAA BBB]] { {x{y}z} }\n1, 2, 3"))

	if err := s.ReachFirstOf("xdz"); err != nil {
		t.Fatalf("ReachFirstOf failed: %v", err)
	}
	if s.Result() != "abc" {
		t.Errorf("expected %q, got %q", "abc", s.Result())
	}
	if s.Offset() != 3 {
		t.Errorf("expected offset 3, got %d", s.Offset())
	}

	if err := s.ReachFirstOf("#"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReachLastOf(t *testing.T) {
	s := New(WithText("a.b.c.d"))

	if err := s.ReachLastOf("."); err != nil {
		t.Fatalf("ReachLastOf failed: %v", err)
	}
	if s.Result() != "a.b.c" {
		t.Errorf("expected %q, got %q", "a.b.c", s.Result())
	}
	if s.Offset() != 5 {
		t.Errorf("expected offset 5, got %d", s.Offset())
	}
}

func TestReachFirstAmong(t *testing.T) {
	s := New(WithText("aaa foo bbb bar ccc"))

	if err := s.ReachFirstAmong("bar", "foo"); err != nil {
		t.Fatalf("ReachFirstAmong failed: %v", err)
	}
	if s.Result() != "aaa " {
		t.Errorf("expected %q, got %q", "aaa ", s.Result())
	}
	if !s.Compare("foo") {
		t.Error("expected cursor at the earliest-starting literal")
	}

	if err := s.ReachFirstAmong("xyz", "pqr"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSkip(t *testing.T) {
	s := New(WithText("///--- rest"))

	if err := s.Skip("/-"); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	if s.Result() != "///---" {
		t.Errorf("expected %q, got %q", "///---", s.Result())
	}

	// First byte not in set fails without movement.
	if err := s.Skip("/-"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if s.Offset() != 6 {
		t.Errorf("failed Skip moved cursor to %d", s.Offset())
	}
}

func TestSkipSpaces(t *testing.T) {
	s := New(WithText(" \t\r\n after"))

	if err := s.SkipSpaces(); err != nil {
		t.Fatalf("SkipSpaces failed: %v", err)
	}
	if !s.Compare("after") {
		t.Error("expected cursor at first non-space byte")
	}

	if err := s.SkipSpaces(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCompareCaseSensitivity(t *testing.T) {
	s := New(WithText("Hello World"))

	if !s.Compare("Hello") {
		t.Error("exact-case Compare should succeed")
	}
	if s.Compare("HELLO") {
		t.Error("case-sensitive Compare should reject different case")
	}

	s.SetCaseInsensitive(true)
	if !s.Compare("HELLO") || !s.Compare("hello") {
		t.Error("case-insensitive Compare should accept any case")
	}
}

func TestCompareAt(t *testing.T) {
	s := New(WithText("Hello World"))

	if !s.CompareAt("World", 6) {
		t.Error("CompareAt with offset should match")
	}
	if s.CompareAt("World", 5) {
		t.Error("CompareAt with wrong offset should not match")
	}
	if s.CompareAt("World", -1) {
		t.Error("CompareAt before buffer start should not match")
	}
	if s.Offset() != 0 {
		t.Error("CompareAt must not mutate state")
	}
}

func TestCompareStrChr(t *testing.T) {
	s := New(WithText("+rest"))

	if !s.CompareStrChr("if", "+-") {
		t.Error("expected char-class match")
	}
	if s.CompareStrChr("if", "*/") {
		t.Error("expected no match")
	}

	s.SetText("if (x)")
	if !s.CompareStrChr("if", "+-") {
		t.Error("expected literal match")
	}
}

func TestCompareList(t *testing.T) {
	s := New(WithText("return 0;"))

	if !s.CompareList("if", "for", "return") {
		t.Error("expected list match")
	}
	if s.CompareList("if", "for", "while") {
		t.Error("expected no list match")
	}
}

func TestResultIs(t *testing.T) {
	s := New(WithText("Token rest"))
	if err := s.Token(); err != nil {
		t.Fatalf("Token failed: %v", err)
	}

	if !s.ResultIs("Token") {
		t.Error("expected exact result match")
	}
	if s.ResultIs("TOKEN") {
		t.Error("case-sensitive ResultIs should reject different case")
	}

	s.SetCaseInsensitive(true)
	if !s.ResultIs("TOKEN") {
		t.Error("case-insensitive ResultIs should accept any case")
	}
}

func TestCaseInsensitiveSearch(t *testing.T) {
	s := New(WithText("SELECT name FROM users"), WithCaseInsensitive())

	if err := s.GoBeyond("from"); err != nil {
		t.Fatalf("GoBeyond failed: %v", err)
	}
	if s.NotParsedText() != " users" {
		t.Errorf("expected %q remaining, got %q", " users", s.NotParsedText())
	}
}

func TestCaseInsensitiveCharSet(t *testing.T) {
	s := New(WithText("ABC-def"), WithCaseInsensitive())

	if err := s.Skip("abc"); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	if s.Result() != "ABC" {
		t.Errorf("expected %q, got %q", "ABC", s.Result())
	}
}
