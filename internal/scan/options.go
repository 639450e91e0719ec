package scan

import "github.com/dshills/textscan/internal/textfile"

// Option configures a Scanner during creation.
type Option func(*Scanner)

// WithText sets the initial buffer content.
func WithText(text string) Option {
	return func(s *Scanner) {
		s.text = text
	}
}

// WithSeparators sets the default token separator set.
func WithSeparators(separators string) Option {
	return func(s *Scanner) {
		if separators != "" {
			s.separators = separators
		}
	}
}

// WithCaseInsensitive enables case-insensitive comparison and search.
func WithCaseInsensitive() Option {
	return func(s *Scanner) {
		s.caseInsensitive = true
	}
}

// WithIgnoreQuoted makes forward scans treat quoted substrings as opaque.
func WithIgnoreQuoted() Option {
	return func(s *Scanner) {
		s.ignoreQuoted = true
	}
}

// WithIgnoreComments makes forward scans treat // and /* */ comment
// spans as opaque.
func WithIgnoreComments() Option {
	return func(s *Scanner) {
		s.ignoreComments = true
	}
}

// WithMaxUndoEntries bounds the undo history.
func WithMaxUndoEntries(max int) Option {
	return func(s *Scanner) {
		if max > 0 {
			s.maxUndo = max
		}
	}
}

// WithFS sets the file system used by LoadFile and SaveFile.
func WithFS(fsys textfile.FS) Option {
	return func(s *Scanner) {
		if fsys != nil {
			s.fs = fsys
		}
	}
}

// Settings accessors; each setting can also be changed after creation.

// SetSeparators replaces the default token separator set.
func (s *Scanner) SetSeparators(separators string) {
	if separators != "" {
		s.separators = separators
	}
}

// Separators returns the default token separator set.
func (s *Scanner) Separators() string {
	return s.separators
}

// SetCaseInsensitive toggles case-insensitive comparison and search.
func (s *Scanner) SetCaseInsensitive(on bool) {
	s.caseInsensitive = on
}

// CaseInsensitive reports whether comparisons ignore ASCII case.
func (s *Scanner) CaseInsensitive() bool {
	return s.caseInsensitive
}

// SetIgnoreQuoted toggles skipping of quoted substrings in forward scans.
func (s *Scanner) SetIgnoreQuoted(on bool) {
	s.ignoreQuoted = on
}

// IgnoreQuoted reports whether forward scans skip quoted substrings.
func (s *Scanner) IgnoreQuoted() bool {
	return s.ignoreQuoted
}

// SetIgnoreComments toggles skipping of // and /* */ comment spans in
// forward scans.
func (s *Scanner) SetIgnoreComments(on bool) {
	s.ignoreComments = on
}

// IgnoreComments reports whether forward scans skip comment spans.
func (s *Scanner) IgnoreComments() bool {
	return s.ignoreComments
}
