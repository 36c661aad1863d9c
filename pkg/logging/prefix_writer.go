package logging

import (
	"bytes"
	"io"
)

// PrefixWriter prepends a fixed prefix to every complete line written
// through it. Partial lines are held until their newline arrives.
type PrefixWriter struct {
	prefix  []byte
	writer  io.Writer
	pending []byte
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{
		prefix: []byte(prefix),
		writer: w,
	}
}

// Write implements io.Writer.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.pending = append(pw.pending, p...)

	for {
		idx := bytes.IndexByte(pw.pending, '\n')
		if idx < 0 {
			break
		}
		if err := pw.emit(pw.pending[:idx+1]); err != nil {
			return 0, err
		}
		pw.pending = pw.pending[idx+1:]
	}

	return len(p), nil
}

func (pw *PrefixWriter) emit(line []byte) error {
	out := make([]byte, 0, len(pw.prefix)+len(line))
	out = append(out, pw.prefix...)
	out = append(out, line...)
	_, err := pw.writer.Write(out)
	return err
}
