package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter tees writes to all given writers. The logger uses it
// to send log output to stdout and the rotated log file at once.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: writers,
	}
}

// Write pushes p to every writer. A failing writer does not stop the
// others; its error is combined into the returned error and n counts
// only the bytes that were actually written.
func (cw CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Combine(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
