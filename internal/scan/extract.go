package scan

import "strings"

// Extraction operations. Each one, on success, sets the result to the
// extracted span, pushes the pre-operation cursor onto the undo history,
// and advances the cursor past the consumed input (which may be wider
// than the result, e.g. trailing separators). On failure the scanner is
// left untouched.

// Token extracts the next token using the default separator set.
func (s *Scanner) Token() error {
	return s.tokenWith(s.separators)
}

// TokenAny extracts the next token using an explicit separator set.
func (s *Scanner) TokenAny(separators string) error {
	if separators == "" {
		separators = s.separators
	}
	return s.tokenWith(separators)
}

// tokenWith skips leading separators, collects a maximal run of
// non-separator bytes, then consumes (without including) the trailing
// separator run. Fails with ErrBufferEnd when no non-separator bytes
// remain. Separator bytes inside opaque spans do not split tokens.
func (s *Scanner) tokenWith(separators string) error {
	mask := s.opaqueMask(s.cursor)
	start, end := -1, -1
	i := s.cursor
	for ; i < len(s.text); i++ {
		sep := (mask == nil || !mask[i]) && s.inSet(separators, s.text[i])
		if start < 0 {
			if sep {
				continue
			}
			start = i
			continue
		}
		if end < 0 {
			if !sep {
				continue
			}
			end = i
			continue
		}
		if !sep {
			break
		}
	}
	if start < 0 {
		return ErrBufferEnd
	}
	if end < 0 {
		end = len(s.text)
	}
	s.commit(i, s.text[start:end])
	return nil
}

// Field collects bytes up to the next occurrence of the separator
// string, matched as a literal boundary. The separator is consumed but
// excluded from the result. Leading occurrences are not skipped, so a
// separator at the cursor yields an empty field. When no further
// separator exists the remainder becomes the field; Field fails only
// when the buffer is already exhausted.
func (s *Scanner) Field(separator string) error {
	if s.Complete() {
		return ErrBufferEnd
	}
	m := s.find(s.cursor, separator)
	if m < 0 {
		s.commit(len(s.text), s.text[s.cursor:])
		return nil
	}
	s.commit(m+len(separator), s.text[s.cursor:m])
	return nil
}

// Line collects bytes up to and including the next line terminator, or
// to the end of the buffer if none remains. The result excludes the
// terminator (both LF and CRLF forms).
func (s *Scanner) Line() error {
	if s.Complete() {
		return ErrBufferEnd
	}
	m := s.find(s.cursor, "\n")
	if m < 0 {
		s.commit(len(s.text), s.text[s.cursor:])
		return nil
	}
	line := strings.TrimSuffix(s.text[s.cursor:m], "\r")
	s.commit(m+1, line)
	return nil
}

// Remainder collects everything from the cursor to the end of the
// buffer. Fails with ErrBufferEnd if the scan is already complete.
func (s *Scanner) Remainder() error {
	if s.Complete() {
		return ErrBufferEnd
	}
	s.commit(len(s.text), s.text[s.cursor:])
	return nil
}

// Block extracts the first delimiter-bounded block after the cursor.
// See BlockN.
func (s *Scanner) Block(open, close string) error {
	return s.BlockN(open, close, 1)
}

// BlockN extracts the n-th delimiter-bounded block after the cursor,
// honoring nesting: the n-th occurrence of the open delimiter scanning
// forward introduces the block, and the close delimiter that returns
// its depth to zero terminates it. The result is the text strictly
// between the delimiters; the cursor lands just past the close.
//
// Fails with ErrNotFound when fewer than n open delimiters remain and
// with ErrUnbalanced when the chosen open has no matching close.
func (s *Scanner) BlockN(open, close string, n int) error {
	start, end, after, err := s.findBlock(s.cursor, open, close, n)
	if err != nil {
		return err
	}
	s.commit(after, s.text[start:end])
	return nil
}

// BlockAfter locates the literal anchor forward from the cursor, then
// extracts the first block following it. The operation is atomic: if
// either step fails the cursor does not move.
func (s *Scanner) BlockAfter(anchor, open, close string) error {
	m := s.find(s.cursor, anchor)
	if m < 0 {
		return ErrNotFound
	}
	start, end, after, err := s.findBlock(m+len(anchor), open, close, 1)
	if err != nil {
		return err
	}
	s.commit(after, s.text[start:end])
	return nil
}

// BackBlock extracts the first block found scanning backward from the
// cursor. See BackBlockN.
func (s *Scanner) BackBlock(open, close string) error {
	return s.BackBlockN(open, close, 1)
}

// BackBlockN extracts the n-th block found scanning backward from the
// cursor: close delimiters are counted right to left, and the n-th one
// is matched to its balanced open. The cursor lands immediately after
// the matched close, which is at or before its original position.
// Backward scans do not honor the opaque-span settings.
func (s *Scanner) BackBlockN(open, close string, n int) error {
	if open == "" || close == "" || n < 1 {
		return ErrNotFound
	}

	seen := 0
	closePos := -1
	for i := s.cursor - len(close); i >= 0; i-- {
		if s.matchAt(i, close) {
			seen++
			if seen == n {
				closePos = i
				break
			}
			i -= len(close) - 1
		}
	}
	if closePos < 0 {
		return ErrNotFound
	}

	depth := 1
	for j := closePos - 1; j >= 0; j-- {
		if s.matchAt(j, open) && j+len(open) <= closePos {
			depth--
			if depth == 0 {
				s.commit(closePos+len(close), s.text[j+len(open):closePos])
				return nil
			}
			j -= len(open) - 1
			continue
		}
		if s.matchAt(j, close) && j+len(close) <= closePos {
			depth++
			j -= len(close) - 1
		}
	}
	return ErrUnbalanced
}

// ParsedText returns the buffer content before the cursor.
func (s *Scanner) ParsedText() string {
	return s.text[:s.cursor]
}

// NotParsedText returns the buffer content at and after the cursor.
func (s *Scanner) NotParsedText() string {
	return s.text[s.cursor:]
}

// Selection returns the substring between two absolute offsets without
// touching the cursor or result. Fails with ErrOutOfRange for invalid
// bounds.
func (s *Scanner) Selection(start, end int) (string, error) {
	if start < 0 || start > end || end > len(s.text) {
		return "", ErrOutOfRange
	}
	return s.text[start:end], nil
}

// opaqueMask precomputes opacity for every offset at or after from.
// A nil mask means no opaque-span tracking is enabled and every
// position is matchable.
func (s *Scanner) opaqueMask(from int) []bool {
	tr := s.tracker()
	if !tr.active() {
		return nil
	}
	mask := make([]bool, len(s.text))
	for i := from; i < len(s.text); i++ {
		mask[i] = tr.step(s.text, i)
	}
	return mask
}

// findBlock locates the n-th open delimiter at or after from and its
// balanced close. It returns the content bounds and the offset just
// past the close delimiter.
func (s *Scanner) findBlock(from int, open, close string, n int) (contentStart, contentEnd, after int, err error) {
	if open == "" || close == "" || n < 1 {
		return 0, 0, 0, ErrNotFound
	}

	mask := s.opaqueMask(from)
	matchable := func(i int) bool { return mask == nil || !mask[i] }

	seen := 0
	openPos := -1
	for i := from; i+len(open) <= len(s.text); {
		if matchable(i) && s.matchAt(i, open) {
			seen++
			if seen == n {
				openPos = i
				break
			}
			i += len(open)
			continue
		}
		i++
	}
	if openPos < 0 {
		return 0, 0, 0, ErrNotFound
	}

	depth := 1
	for i := openPos + len(open); i < len(s.text); {
		if matchable(i) {
			// Close is checked first so identical open/close delimiters
			// pair up instead of nesting forever.
			if s.matchAt(i, close) {
				depth--
				if depth == 0 {
					return openPos + len(open), i, i + len(close), nil
				}
				i += len(close)
				continue
			}
			if s.matchAt(i, open) {
				depth++
				i += len(open)
				continue
			}
		}
		i++
	}
	return 0, 0, 0, ErrUnbalanced
}
