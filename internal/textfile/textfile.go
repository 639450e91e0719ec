// Package textfile provides plain text file and stream I/O for the
// scanner: whole-file read/write through a swappable file system
// abstraction, BOM stripping, line ending detection, and single-line
// reads from seekable streams with peek support.
package textfile

import (
	"fmt"
	"strings"
)

// utf8BOM is the byte order mark stripped from loaded text.
const utf8BOM = "\xef\xbb\xbf"

// LineEnding specifies a line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// String returns the escaped representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// DetectLineEnding returns the dominant line ending style of the text.
// Text without terminators reports LF.
func DetectLineEnding(text string) LineEnding {
	crlf := strings.Count(text, "\r\n")
	lf := strings.Count(text, "\n") - crlf
	cr := strings.Count(text, "\r") - crlf

	switch {
	case crlf >= lf && crlf >= cr && crlf > 0:
		return LineEndingCRLF
	case cr > lf:
		return LineEndingCR
	default:
		return LineEndingLF
	}
}

// ReadText reads the entire file as text, stripping a leading UTF-8 BOM.
func ReadText(fsys FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.TrimPrefix(string(data), utf8BOM), nil
}

// WriteText writes text to the file, creating or truncating it.
func WriteText(fsys FS, path, text string) error {
	if err := fsys.WriteFile(path, []byte(text)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
