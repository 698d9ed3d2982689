package importer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrRead reports that the input stream failed while being read.
var ErrRead = errors.New("read input")

// ReadLines returns every non-blank line of r, trimmed.
func ReadLines(r io.Reader) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return paths, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return paths, nil
}
