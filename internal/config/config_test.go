package config

import (
	"strings"
	"testing"

	"github.com/dshills/textscan/internal/scan"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Scanner.Separators != scan.DefaultSeparators {
		t.Errorf("expected default separators %q, got %q", scan.DefaultSeparators, cfg.Scanner.Separators)
	}
	if cfg.Scanner.MaxUndo != scan.DefaultMaxUndoEntries {
		t.Errorf("expected max undo %d, got %d", scan.DefaultMaxUndoEntries, cfg.Scanner.MaxUndo)
	}
	if cfg.Console.Level != "info" {
		t.Errorf("expected level info, got %q", cfg.Console.Level)
	}
	if cfg.Console.Color != "auto" {
		t.Errorf("expected color auto, got %q", cfg.Console.Color)
	}
}

func TestLoadFrom(t *testing.T) {
	src := `
[scanner]
separators = ",;"
case_insensitive = true
max_undo = 50

[console]
level = "debug"
color = "never"
`
	cfg, err := LoadFrom(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Scanner.Separators != ",;" {
		t.Errorf("expected separators %q, got %q", ",;", cfg.Scanner.Separators)
	}
	if !cfg.Scanner.CaseInsensitive {
		t.Error("expected case_insensitive true")
	}
	if cfg.Scanner.MaxUndo != 50 {
		t.Errorf("expected max_undo 50, got %d", cfg.Scanner.MaxUndo)
	}
	if cfg.Console.Level != "debug" {
		t.Errorf("expected level debug, got %q", cfg.Console.Level)
	}
	if cfg.Console.Color != "never" {
		t.Errorf("expected color never, got %q", cfg.Console.Color)
	}
}

func TestLoadFromPartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadFrom(strings.NewReader("[console]\nlevel = \"warn\"\n"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Console.Level != "warn" {
		t.Errorf("expected level warn, got %q", cfg.Console.Level)
	}
	if cfg.Scanner.Separators != scan.DefaultSeparators {
		t.Errorf("expected default separators, got %q", cfg.Scanner.Separators)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"bad toml", "not toml ["},
		{"bad color", "[console]\ncolor = \"sometimes\"\n"},
		{"bad level", "[console]\nlevel = \"loud\"\n"},
		{"negative undo", "[scanner]\nmax_undo = -1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadFrom(strings.NewReader(tc.src)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/textscan.toml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Console.Level != "info" {
		t.Errorf("expected defaults for missing file, got level %q", cfg.Console.Level)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TEXTSCAN_SEPARATORS", "|")
	t.Setenv("TEXTSCAN_IGNORE_QUOTED", "true")
	t.Setenv("TEXTSCAN_MAX_UNDO", "7")
	t.Setenv("TEXTSCAN_LEVEL", "error")

	cfg, err := Load("/nonexistent/textscan.toml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Scanner.Separators != "|" {
		t.Errorf("expected separators %q, got %q", "|", cfg.Scanner.Separators)
	}
	if !cfg.Scanner.IgnoreQuoted {
		t.Error("expected ignore_quoted true")
	}
	if cfg.Scanner.MaxUndo != 7 {
		t.Errorf("expected max_undo 7, got %d", cfg.Scanner.MaxUndo)
	}
	if cfg.Console.Level != "error" {
		t.Errorf("expected level error, got %q", cfg.Console.Level)
	}
}

func TestScanOptions(t *testing.T) {
	sc := ScannerConfig{
		Separators:      ",",
		CaseInsensitive: true,
		IgnoreQuoted:    true,
		IgnoreComments:  true,
		MaxUndo:         10,
	}
	s := scan.New(sc.ScanOptions()...)
	s.SetText("A,b")
	if err := s.GoBeyond("a,"); err != nil {
		t.Fatalf("expected case-insensitive match, got %v", err)
	}
	if s.Offset() != 2 {
		t.Errorf("expected offset 2, got %d", s.Offset())
	}
}
