package console

import (
	"bufio"
	"io"
	"strings"
)

// LineReader reads user input one line at a time.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r for line-at-a-time reading.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line with the trailing newline (and any
// carriage return) stripped. A final unterminated line is returned with
// a nil error; the call after that returns io.EOF.
func (lr *LineReader) ReadLine() (string, error) {
	line, err := lr.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
