package textfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadLine reads one line from the stream, leaving the stream position
// just past the consumed line. The terminator is stripped from the
// returned line (both LF and CRLF forms) unless keepTerminator is set.
// At end of stream it returns io.EOF.
func ReadLine(rs io.ReadSeeker, keepTerminator bool) (string, error) {
	return readLine(rs, keepTerminator, false)
}

// PeekLine reads one line without advancing the stream position.
func PeekLine(rs io.ReadSeeker, keepTerminator bool) (string, error) {
	return readLine(rs, keepTerminator, true)
}

func readLine(rs io.ReadSeeker, keepTerminator, peek bool) (string, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return "", fmt.Errorf("saving stream position: %w", err)
	}

	// bufio may consume past the line; the explicit seeks below put the
	// stream position where the caller expects it.
	raw, err := bufio.NewReader(rs).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading line: %w", err)
	}
	if raw == "" {
		if _, serr := rs.Seek(start, io.SeekStart); serr != nil {
			return "", fmt.Errorf("restoring stream position: %w", serr)
		}
		return "", io.EOF
	}

	pos := start + int64(len(raw))
	if peek {
		pos = start
	}
	if _, err := rs.Seek(pos, io.SeekStart); err != nil {
		return "", fmt.Errorf("restoring stream position: %w", err)
	}

	if keepTerminator {
		return raw, nil
	}
	line := strings.TrimSuffix(raw, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
