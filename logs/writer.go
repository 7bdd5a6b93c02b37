package logs

import (
	"io"
	"os"
)

// Writer is where the terminal handler writes; stdout is left to the
// interactive prompt and the terminal preview
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
