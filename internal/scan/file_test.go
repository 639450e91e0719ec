package scan

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/textscan/internal/textfile"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	mem := textfile.NewMemFS()
	text := "line one\nline two\r\n\ttabbed\nno terminator"

	s := New(WithText(text), WithFS(mem))
	if err := s.SaveFile("doc.txt"); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	s2 := New(WithFS(mem))
	if err := s2.LoadFile("doc.txt"); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if s2.Text() != text {
		t.Errorf("round trip changed text: %q != %q", s2.Text(), text)
	}
	if s2.Offset() != 0 {
		t.Errorf("expected fresh parse state, offset %d", s2.Offset())
	}
}

func TestSaveLoadOSFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	text := "alpha\nbeta\n"

	s := New(WithText(text))
	if err := s.SaveFile(path); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}
	if err := s.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if s.Text() != text {
		t.Errorf("round trip changed text: %q != %q", s.Text(), text)
	}
}

func TestLoadFileMissing(t *testing.T) {
	s := New(WithFS(textfile.NewMemFS()), WithText("keep"))
	if err := s.Forward(2); err != nil {
		t.Fatalf("Forward failed: %v", err)
	}

	if err := s.LoadFile("nope.txt"); err == nil {
		t.Fatal("expected error for missing file")
	}
	// The buffer survives a failed load.
	if s.Text() != "keep" || s.Offset() != 2 {
		t.Error("failed LoadFile mutated state")
	}
}

func TestReadLine(t *testing.T) {
	rs := strings.NewReader("one\ntwo\r\nthree")
	s := New()

	want := []string{"one", "two", "three"}
	for _, line := range want {
		if err := s.ReadLine(rs, ReadLineOptions{}); err != nil {
			t.Fatalf("ReadLine failed: %v", err)
		}
		if s.Text() != line {
			t.Errorf("expected %q, got %q", line, s.Text())
		}
	}

	if err := s.ReadLine(rs, ReadLineOptions{}); !errors.Is(err, ErrBufferEnd) {
		t.Errorf("expected ErrBufferEnd, got %v", err)
	}
}

func TestReadLineKeepTerminator(t *testing.T) {
	rs := strings.NewReader("one\ntwo")
	s := New()

	if err := s.ReadLine(rs, ReadLineOptions{KeepTerminator: true}); err != nil {
		t.Fatalf("ReadLine failed: %v", err)
	}
	if s.Text() != "one\n" {
		t.Errorf("expected %q, got %q", "one\n", s.Text())
	}
}

func TestReadLinePeek(t *testing.T) {
	rs := strings.NewReader("first\nsecond\n")
	s := New()

	if err := s.ReadLine(rs, ReadLineOptions{Peek: true}); err != nil {
		t.Fatalf("peek ReadLine failed: %v", err)
	}
	if s.Text() != "first" {
		t.Errorf("expected %q, got %q", "first", s.Text())
	}

	// The stream did not advance, so the same line comes back.
	if err := s.ReadLine(rs, ReadLineOptions{}); err != nil {
		t.Fatalf("ReadLine failed: %v", err)
	}
	if s.Text() != "first" {
		t.Errorf("expected %q again, got %q", "first", s.Text())
	}

	if err := s.ReadLine(rs, ReadLineOptions{}); err != nil {
		t.Fatalf("ReadLine failed: %v", err)
	}
	if s.Text() != "second" {
		t.Errorf("expected %q, got %q", "second", s.Text())
	}
}

func TestReadLineAppend(t *testing.T) {
	rs := strings.NewReader("head\ntail\n")
	s := New()

	if err := s.ReadLine(rs, ReadLineOptions{}); err != nil {
		t.Fatalf("ReadLine failed: %v", err)
	}
	if err := s.ReadLine(rs, ReadLineOptions{Append: true}); err != nil {
		t.Fatalf("append ReadLine failed: %v", err)
	}
	if s.Text() != "headtail" {
		t.Errorf("expected %q, got %q", "headtail", s.Text())
	}
}
