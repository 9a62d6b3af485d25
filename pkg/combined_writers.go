package pkg

import (
	"fmt"
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes to all of its writers, one failing writer does not stop
// the others. Used to send logs to stdout and the log file at the same time.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: append([]io.Writer{}, writers...),
	}
}

// Write reports len(p) when at least one writer took the whole message, and the
// combined errors of the writers that failed.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	written := false
	for i, w := range cw.Writers {
		n, werr := w.Write(p)
		if werr == nil && n < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, fmt.Errorf("writer %d: %w", i, werr))
			continue
		}
		written = true
	}
	if !written {
		return 0, err
	}
	return len(p), err
}
