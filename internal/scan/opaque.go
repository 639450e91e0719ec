package scan

// opaqueTracker is a forward-only state machine that classifies buffer
// positions as opaque when they fall inside a quoted string or a C-style
// comment. Forward-scanning operations consult it position by position
// instead of doing recursive lookahead.
//
// Tracking starts at the scan origin with a clean state, so a scan that
// begins inside an already-open quote or comment will not recognize it.
type opaqueTracker struct {
	quoted   bool
	comments bool

	quote        byte // active quote character, 0 if none
	lineComment  bool
	blockComment bool
	skip         int // remaining chars already claimed opaque
}

// tracker returns an opaqueTracker configured from the scanner settings.
func (s *Scanner) tracker() opaqueTracker {
	return opaqueTracker{quoted: s.ignoreQuoted, comments: s.ignoreComments}
}

// active reports whether any opaque-span tracking is enabled.
func (t *opaqueTracker) active() bool {
	return t.quoted || t.comments
}

// step consumes the byte at offset i and reports whether it is opaque.
// It must be called for consecutive offsets in order.
func (t *opaqueTracker) step(text string, i int) bool {
	if !t.active() {
		return false
	}

	if t.skip > 0 {
		t.skip--
		return true
	}

	c := text[i]

	if t.lineComment {
		if c == '\n' {
			// The terminator ends the comment and stays matchable.
			t.lineComment = false
			return false
		}
		return true
	}

	if t.blockComment {
		if c == '*' && i+1 < len(text) && text[i+1] == '/' {
			t.blockComment = false
			t.skip = 1
		}
		return true
	}

	if t.quote != 0 {
		if c == '\\' {
			t.skip = 1
			return true
		}
		if c == t.quote {
			t.quote = 0
		}
		return true
	}

	if t.comments && c == '/' && i+1 < len(text) {
		switch text[i+1] {
		case '/':
			t.lineComment = true
			t.skip = 1
			return true
		case '*':
			t.blockComment = true
			t.skip = 1
			return true
		}
	}

	if t.quoted && (c == '"' || c == '\'') {
		t.quote = c
		return true
	}

	return false
}
