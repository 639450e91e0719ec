// Package pathutil provides file path decomposition and normalization
// helpers shared by the command line tool and the scanner's file
// conveniences.
package pathutil

import (
	"path/filepath"
	"strings"
)

// Split decomposes a path into directory, bare name, and extension.
// The extension keeps its leading dot; the name excludes it.
func Split(path string) (dir, name, ext string) {
	dir, file := filepath.Split(path)
	ext = filepath.Ext(file)
	name = strings.TrimSuffix(file, ext)
	return filepath.Clean(dir), name, ext
}

// Normalize cleans the path and converts separators to the platform
// form.
func Normalize(path string) string {
	return filepath.Clean(filepath.FromSlash(path))
}

// ReplaceExt swaps the path's extension for ext, which may be given
// with or without a leading dot.
func ReplaceExt(path, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// EnsureExt appends ext when the path has no extension; an existing
// extension is kept.
func EnsureExt(path, ext string) string {
	if filepath.Ext(path) != "" {
		return path
	}
	return ReplaceExt(path, ext)
}

// IsBeneath reports whether target lies inside the directory root
// after normalization.
func IsBeneath(root, target string) bool {
	rel, err := filepath.Rel(Normalize(root), Normalize(target))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Relative returns target relative to base, falling back to the
// normalized target when no relative form exists.
func Relative(base, target string) string {
	rel, err := filepath.Rel(Normalize(base), Normalize(target))
	if err != nil {
		return Normalize(target)
	}
	return rel
}
