package io

import (
	"bufio"
	"bytes"
	"io"
	"iter"
)

// TAPE_LINE_LIMIT is the longest line accepted as a tape.
const TAPE_LINE_LIMIT = 16 << 20

// Tape reads tape cases, one per line of Input.
type Tape struct {
	Input io.Reader

	err error
}

// scanLines splits on '\n' only; a '\r' before it is kept as line content.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return
	}

	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return
}

// Receive returns an iterator that yields each line of the input, without
// its newline. A final newline does not start another case.
// Each yielded line is a fresh copy.
func (tc *Tape) Receive() iter.Seq[[]byte] {
	return func(yield func(line []byte) bool) {
		scanner := bufio.NewScanner(tc.Input)
		scanner.Buffer(nil, TAPE_LINE_LIMIT)
		scanner.Split(scanLines)

		for scanner.Scan() {
			if !yield(bytes.Clone(scanner.Bytes())) {
				return
			}
		}

		tc.err = scanner.Err()
	}
}

// Err returns the first error encountered by the last Receive.
func (tc *Tape) Err() error {
	return tc.err
}
