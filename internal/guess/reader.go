package guess

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// tokenReader yields whitespace-delimited tokens from a stream.
type tokenReader struct {
	scanner *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &tokenReader{scanner: scanner}
}

// next blocks until a token is available. It returns ErrInputClosed once
// the stream is exhausted.
func (r *tokenReader) next() (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", fmt.Errorf("read guess: %w", err)
	}
	return "", ErrInputClosed
}

func parseGuess(token string) (int, error) {
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, newInputFormatError(token, err)
	}
	return value, nil
}
