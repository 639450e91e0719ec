package scan

import "errors"

// Errors returned by scanner operations.
var (
	// ErrNotFound indicates a literal, character class, or delimiter was
	// not found in the remaining buffer.
	ErrNotFound = errors.New("not found")

	// ErrOutOfRange indicates a movement would place the cursor outside
	// the buffer bounds.
	ErrOutOfRange = errors.New("offset out of range")

	// ErrNothingToUndo indicates the undo history holds fewer entries
	// than requested.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrUnknownBookmark indicates a bookmark lookup found no entry.
	ErrUnknownBookmark = errors.New("unknown bookmark")

	// ErrUnbalanced indicates a block delimiter has no matching partner.
	ErrUnbalanced = errors.New("unbalanced delimiters")

	// ErrBufferEnd indicates the cursor already reached the end of the
	// buffer and no input remains to consume.
	ErrBufferEnd = errors.New("end of buffer")
)
