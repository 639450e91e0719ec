package scan

import (
	"strings"
	"sync/atomic"

	"github.com/dshills/textscan/internal/textfile"
)

// DefaultSeparators is the initial token separator set: space, tab,
// newline, carriage return.
const DefaultSeparators = " \t\n\r"

// DefaultMaxUndoEntries bounds the undo history unless overridden.
const DefaultMaxUndoEntries = 1000

// RevisionID uniquely identifies a buffer revision. A new ID is assigned
// every time the buffer text is replaced, so callers can detect that
// saved offsets refer to stale content.
type RevisionID uint64

var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}

// Scanner is a stateful cursor over an in-memory text buffer. It supports
// token, field, line, and nested-block extraction, forward and backward
// search, named bookmarks, and undo of extraction movements.
//
// Every successful extraction records the consumed span as the scanner
// result and pushes the pre-operation cursor onto the undo history.
// Failed operations leave the scanner untouched.
//
// A Scanner is not safe for concurrent use; callers that share one
// across goroutines must synchronize externally.
type Scanner struct {
	text     string
	cursor   int
	result   string
	history  []int
	marks    map[string]int
	revision RevisionID

	separators      string
	caseInsensitive bool
	ignoreQuoted    bool
	ignoreComments  bool
	maxUndo         int

	fs textfile.FS
}

// New creates a scanner, empty unless configured with WithText.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		marks:      make(map[string]int),
		separators: DefaultSeparators,
		maxUndo:    DefaultMaxUndoEntries,
		revision:   NewRevisionID(),
		fs:         textfile.OSFS{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SetText replaces the buffer. The cursor returns to the start and the
// result, undo history, and all bookmarks are discarded since saved
// offsets no longer refer to the new content.
func (s *Scanner) SetText(text string) {
	s.text = text
	s.cursor = 0
	s.result = ""
	s.history = nil
	s.marks = make(map[string]int)
	s.revision = NewRevisionID()
}

// Text returns the full buffer content.
func (s *Scanner) Text() string {
	return s.text
}

// Clear empties the buffer, equivalent to SetText("").
func (s *Scanner) Clear() {
	s.SetText("")
}

// Reset moves the cursor to the start and clears the result and undo
// history. The buffer and bookmarks are retained.
func (s *Scanner) Reset() {
	s.cursor = 0
	s.result = ""
	s.history = nil
}

// Offset returns the current cursor position.
func (s *Scanner) Offset() int {
	return s.cursor
}

// Len returns the buffer length in bytes.
func (s *Scanner) Len() int {
	return len(s.text)
}

// Revision returns the current buffer revision ID.
func (s *Scanner) Revision() RevisionID {
	return s.revision
}

// Result returns the text consumed by the most recent successful
// extraction, or "" if none has run yet.
func (s *Scanner) Result() string {
	return s.result
}

// Complete reports whether the cursor reached the end of the buffer.
func (s *Scanner) Complete() bool {
	return s.cursor == len(s.text)
}

// Forward advances the cursor by n bytes and records the consumed text
// as the result. Fails with ErrOutOfRange if the move would overrun the
// buffer.
func (s *Scanner) Forward(n int) error {
	if n < 0 || s.cursor+n > len(s.text) {
		return ErrOutOfRange
	}
	s.commit(s.cursor+n, s.text[s.cursor:s.cursor+n])
	return nil
}

// Backward moves the cursor back by n bytes. The result is set to the
// span now lying between the new and old cursor. Backward is a fresh
// movement, not an undo: it neither pushes nor pops the undo history.
func (s *Scanner) Backward(n int) error {
	if n < 0 || s.cursor-n < 0 {
		return ErrOutOfRange
	}
	s.cursor -= n
	s.result = s.text[s.cursor : s.cursor+n]
	return nil
}

// Undo pops n entries from the undo history, restoring the cursor to
// the oldest popped value. Fails with ErrNothingToUndo if fewer than n
// entries exist; no partial restore happens. The result is left as the
// undone operations set it.
func (s *Scanner) Undo(n int) error {
	if n < 1 {
		return ErrOutOfRange
	}
	if len(s.history) < n {
		return ErrNothingToUndo
	}
	s.cursor = s.history[len(s.history)-n]
	s.history = s.history[:len(s.history)-n]
	return nil
}

// UndoCount returns the number of undo entries available.
func (s *Scanner) UndoCount() int {
	return len(s.history)
}

// commit records a successful extraction: the pre-operation cursor is
// pushed onto the undo history, then the cursor and result are updated.
func (s *Scanner) commit(newCursor int, result string) {
	s.history = append(s.history, s.cursor)
	if len(s.history) > s.maxUndo {
		excess := len(s.history) - s.maxUndo
		s.history = s.history[excess:]
	}
	s.cursor = newCursor
	s.result = result
}

// matchAt reports whether the buffer content at offset i equals lit,
// honoring the case-insensitive setting. An empty literal never matches.
func (s *Scanner) matchAt(i int, lit string) bool {
	if lit == "" || i < 0 || i+len(lit) > len(s.text) {
		return false
	}
	seg := s.text[i : i+len(lit)]
	if s.caseInsensitive {
		return strings.EqualFold(seg, lit)
	}
	return seg == lit
}

// inSet reports whether byte c belongs to the character set, honoring
// the case-insensitive setting for ASCII letters.
func (s *Scanner) inSet(set string, c byte) bool {
	if strings.IndexByte(set, c) >= 0 {
		return true
	}
	if !s.caseInsensitive {
		return false
	}
	switch {
	case c >= 'a' && c <= 'z':
		return strings.IndexByte(set, c-'a'+'A') >= 0
	case c >= 'A' && c <= 'Z':
		return strings.IndexByte(set, c-'A'+'a') >= 0
	}
	return false
}

// find returns the offset of the next occurrence of lit at or after
// from, or -1 if none. Opaque spans (quoted text, comments) are skipped
// when the corresponding settings are enabled.
func (s *Scanner) find(from int, lit string) int {
	if lit == "" {
		return -1
	}
	if !s.ignoreQuoted && !s.ignoreComments && !s.caseInsensitive {
		idx := strings.Index(s.text[from:], lit)
		if idx < 0 {
			return -1
		}
		return from + idx
	}

	tr := s.tracker()
	for i := from; i+len(lit) <= len(s.text); i++ {
		if tr.step(s.text, i) {
			continue
		}
		if s.matchAt(i, lit) {
			return i
		}
	}
	return -1
}
