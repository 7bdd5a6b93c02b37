package protocols

import (
	"bufio"
	"io"
)

const maxLineSize = 64 * 1024

// ReadLines calls fn with every non-empty line of r, in order, until EOF
func ReadLines(r io.Reader, fn func(line string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		for _, line := range Lines(scanner.Text()) {
			fn(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return wrap(err)
	}
	return nil
}
