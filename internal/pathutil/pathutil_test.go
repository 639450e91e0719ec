package pathutil

import (
	"path/filepath"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		path string
		dir  string
		name string
		ext  string
	}{
		{"dir/sub/file.txt", filepath.Join("dir", "sub"), "file", ".txt"},
		{"file.tar.gz", ".", "file.tar", ".gz"},
		{"noext", ".", "noext", ""},
		{"dir/.hidden", "dir", "", ".hidden"},
	}

	for _, tt := range tests {
		dir, name, ext := Split(tt.path)
		if dir != tt.dir || name != tt.name || ext != tt.ext {
			t.Errorf("Split(%q) = (%q, %q, %q), want (%q, %q, %q)",
				tt.path, dir, name, ext, tt.dir, tt.name, tt.ext)
		}
	}
}

func TestReplaceExt(t *testing.T) {
	if got := ReplaceExt("notes.txt", ".md"); got != "notes.md" {
		t.Errorf("expected notes.md, got %q", got)
	}
	if got := ReplaceExt("notes.txt", "md"); got != "notes.md" {
		t.Errorf("dotless ext: expected notes.md, got %q", got)
	}
	if got := ReplaceExt("notes", ".md"); got != "notes.md" {
		t.Errorf("no previous ext: expected notes.md, got %q", got)
	}
}

func TestEnsureExt(t *testing.T) {
	if got := EnsureExt("config", ".toml"); got != "config.toml" {
		t.Errorf("expected config.toml, got %q", got)
	}
	if got := EnsureExt("config.yaml", ".toml"); got != "config.yaml" {
		t.Errorf("existing ext must be kept, got %q", got)
	}
}

func TestIsBeneath(t *testing.T) {
	if !IsBeneath("a/b", "a/b/c/d.txt") {
		t.Error("expected nested path beneath root")
	}
	if IsBeneath("a/b", "a/other") {
		t.Error("sibling must not be beneath root")
	}
	if IsBeneath("a/b", "a") {
		t.Error("parent must not be beneath root")
	}
}

func TestRelative(t *testing.T) {
	if got := Relative("a/b", "a/b/c.txt"); got != filepath.Join("c.txt") {
		t.Errorf("expected c.txt, got %q", got)
	}
}
