package pipeline

import (
	"bufio"
	"io"
	"strings"

	"github.com/thmsn/ffrenc/internal/config"
)

// InputSource yields input paths one at a time. It is either a single
// fixed path or a lazy, consume-once reader over newline-separated paths
// (blank lines skipped, surrounding whitespace trimmed). The stream is
// finite and not restartable; paths are produced strictly in order.
type InputSource struct {
	single  string
	yielded bool
	scanner *bufio.Scanner
}

// NewInputSource builds the source for the configured input: the stdin
// sentinel selects the line stream, anything else is a single path.
func NewInputSource(input string, stdin io.Reader) *InputSource {
	if input == config.StdinInput {
		return &InputSource{scanner: bufio.NewScanner(stdin)}
	}
	return &InputSource{single: input}
}

// Next returns the next input path, or ok=false when the source is drained.
func (s *InputSource) Next() (path string, ok bool) {
	if s.scanner == nil {
		if s.yielded {
			return "", false
		}
		s.yielded = true
		return s.single, true
	}
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			continue
		}
		return line, true
	}
	return "", false
}

// Err reports a read error on the underlying stream, if any.
func (s *InputSource) Err() error {
	if s.scanner == nil {
		return nil
	}
	return s.scanner.Err()
}
