package scan

import (
	"errors"
	"fmt"
	"io"

	"github.com/dshills/textscan/internal/textfile"
)

// ReadLineOptions controls how ReadLine feeds a stream line into the
// scanner.
type ReadLineOptions struct {
	// KeepTerminator retains the line terminator in the buffer text.
	KeepTerminator bool

	// Peek restores the stream position after reading, so the same
	// line can be read again.
	Peek bool

	// Append appends the line to the buffer instead of replacing it.
	// Appending keeps the cursor, history, and bookmarks valid since
	// existing offsets are unaffected.
	Append bool
}

// LoadFile replaces the buffer with the file content and resets all
// parse state.
func (s *Scanner) LoadFile(path string) error {
	text, err := textfile.ReadText(s.fs, path)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	s.SetText(text)
	return nil
}

// SaveFile writes the buffer content to the file.
func (s *Scanner) SaveFile(path string) error {
	if err := textfile.WriteText(s.fs, path, s.text); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// ReadLine reads one line from the stream into the buffer. Fails with
// ErrBufferEnd at end of stream.
func (s *Scanner) ReadLine(rs io.ReadSeeker, opts ReadLineOptions) error {
	var line string
	var err error
	if opts.Peek {
		line, err = textfile.PeekLine(rs, opts.KeepTerminator)
	} else {
		line, err = textfile.ReadLine(rs, opts.KeepTerminator)
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrBufferEnd
		}
		return fmt.Errorf("read line: %w", err)
	}

	if opts.Append {
		s.text += line
		s.revision = NewRevisionID()
		return nil
	}
	s.SetText(line)
	return nil
}
