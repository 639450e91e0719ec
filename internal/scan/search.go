package scan

import "strings"

// spaceChars is the whitespace set consumed by SkipSpaces.
const spaceChars = " \t\n\r"

// Reach advances the cursor to just before the next occurrence of the
// literal. The result is the skipped text; the literal itself is not
// consumed. Fails with ErrNotFound when the literal does not occur.
func (s *Scanner) Reach(literal string) error {
	m := s.find(s.cursor, literal)
	if m < 0 {
		return ErrNotFound
	}
	s.commit(m, s.text[s.cursor:m])
	return nil
}

// GoBeyond advances the cursor past the next occurrence of the literal.
// The result includes the literal.
func (s *Scanner) GoBeyond(literal string) error {
	m := s.find(s.cursor, literal)
	if m < 0 {
		return ErrNotFound
	}
	s.commit(m+len(literal), s.text[s.cursor:m+len(literal)])
	return nil
}

// ReachFirstOf advances the cursor to the first byte belonging to the
// character set. The result is the skipped text; the matched byte is
// not consumed.
func (s *Scanner) ReachFirstOf(charSet string) error {
	mask := s.opaqueMask(s.cursor)
	for i := s.cursor; i < len(s.text); i++ {
		if mask != nil && mask[i] {
			continue
		}
		if s.inSet(charSet, s.text[i]) {
			s.commit(i, s.text[s.cursor:i])
			return nil
		}
	}
	return ErrNotFound
}

// ReachLastOf advances the cursor to the last occurrence, scanning to
// the end of the buffer, of any byte in the character set. The cursor
// is left just before that byte.
func (s *Scanner) ReachLastOf(charSet string) error {
	mask := s.opaqueMask(s.cursor)
	last := -1
	for i := s.cursor; i < len(s.text); i++ {
		if mask != nil && mask[i] {
			continue
		}
		if s.inSet(charSet, s.text[i]) {
			last = i
		}
	}
	if last < 0 {
		return ErrNotFound
	}
	s.commit(last, s.text[s.cursor:last])
	return nil
}

// ReachFirstAmong advances the cursor to the earliest-starting match of
// any literal in the list. Ties go to the literal listed first. The
// match is excluded from the result and not consumed.
func (s *Scanner) ReachFirstAmong(literals ...string) error {
	mask := s.opaqueMask(s.cursor)
	for i := s.cursor; i < len(s.text); i++ {
		if mask != nil && mask[i] {
			continue
		}
		for _, lit := range literals {
			if s.matchAt(i, lit) {
				s.commit(i, s.text[s.cursor:i])
				return nil
			}
		}
	}
	return ErrNotFound
}

// Skip consumes a maximal run of bytes belonging to the character set,
// recording the run as the result. Fails with ErrNotFound if the byte
// at the cursor does not belong to the set.
func (s *Scanner) Skip(charSet string) error {
	if s.cursor >= len(s.text) || !s.inSet(charSet, s.text[s.cursor]) {
		return ErrNotFound
	}
	i := s.cursor + 1
	for i < len(s.text) && s.inSet(charSet, s.text[i]) {
		i++
	}
	s.commit(i, s.text[s.cursor:i])
	return nil
}

// SkipSpaces consumes a maximal run of whitespace at the cursor.
func (s *Scanner) SkipSpaces() error {
	return s.Skip(spaceChars)
}

// Compare reports whether the buffer content at the cursor equals the
// literal. No state is mutated.
func (s *Scanner) Compare(literal string) bool {
	return s.matchAt(s.cursor, literal)
}

// CompareAt reports whether the buffer content at cursor+offset equals
// the literal.
func (s *Scanner) CompareAt(literal string, offset int) bool {
	return s.matchAt(s.cursor+offset, literal)
}

// CompareStrChr reports whether the buffer at the cursor starts with
// the literal, or the byte at the cursor belongs to the character set.
func (s *Scanner) CompareStrChr(literal, charSet string) bool {
	if s.matchAt(s.cursor, literal) {
		return true
	}
	return s.cursor < len(s.text) && s.inSet(charSet, s.text[s.cursor])
}

// CompareList reports whether the buffer at the cursor matches any of
// the literals; the first match wins.
func (s *Scanner) CompareList(literals ...string) bool {
	for _, lit := range literals {
		if s.matchAt(s.cursor, lit) {
			return true
		}
	}
	return false
}

// ResultIs reports whether the current result equals the literal,
// honoring the case-insensitive setting.
func (s *Scanner) ResultIs(literal string) bool {
	if s.caseInsensitive {
		return strings.EqualFold(s.result, literal)
	}
	return s.result == literal
}
