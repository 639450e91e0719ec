// Package scan provides a stateful cursor-based scanner over an
// in-memory text buffer.
//
// The scanner owns an immutable buffer, a cursor offset, the result of
// the most recent extraction, a bounded undo history, and a table of
// named bookmarks. Operations fall into four groups:
//
//   - Cursor movement: Forward, Backward, Undo, Reset
//   - Delimited extraction: Token, Field, Line, Remainder, Block,
//     BlockAfter, BackBlock, Selection
//   - Search and comparison: Reach, GoBeyond, ReachFirstOf, ReachLastOf,
//     ReachFirstAmong, Skip, Compare, CompareList, ResultIs
//   - Bookmarks: SetBookmark, MoveToBookmark, SelectionBetween
//
// # Operation Contract
//
// Every successful extraction sets the result to the extracted span,
// pushes the pre-operation cursor onto the undo history, and advances
// the cursor past the consumed input. Every failed operation returns a
// sentinel error and leaves the scanner exactly as it was: operations
// are atomic.
//
//	s := scan.New(scan.WithText("int f( int a ) { return 0; }"))
//	s.Block("(", ")")   // result " int a ", cursor past ")"
//	s.Undo(1)           // cursor back where it was
//
// # Blocks
//
// Block extraction honors nesting: the n-th occurrence of the open
// delimiter introduces the block, inner opens increment the depth, and
// the close that returns the depth to zero terminates it.
//
//	s := scan.New(scan.WithText("{ {x{y}z} }"))
//	s.Block("{", "}")   // result " {x{y}z} "
//
// # Opaque Spans
//
// With WithIgnoreQuoted or WithIgnoreComments enabled, forward scans
// treat quoted substrings and C-style comment spans as opaque:
// delimiters and literals inside them are never matched, though the
// spans remain part of the consumed text.
//
// # Errors
//
// Expected failures are reported through sentinel errors (ErrNotFound,
// ErrOutOfRange, ErrNothingToUndo, ErrUnknownBookmark, ErrUnbalanced,
// ErrBufferEnd) checkable with errors.Is. Only file and stream I/O can
// produce wrapped hard errors carrying path context.
//
// A Scanner is not safe for concurrent use.
package scan
