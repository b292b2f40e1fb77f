// Package solutionio writes completed word squares out, either to a
// destination file (comma-joined rows, one square per line, trailing
// newline) or, when no destination is configured, to stdout in the
// same comma-joined form.
package solutionio

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Writer appends solutions to an underlying writer, one per line.
type Writer struct {
	w   *bufio.Writer
	out io.Closer
}

// ToFile opens (creating/truncating) path for writing solutions.
func ToFile(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Writer{w: bufio.NewWriter(f), out: f}, nil
}

// ToStdout writes solutions to standard output; Close is a no-op
// beyond flushing, since the caller doesn't own os.Stdout.
func ToStdout() *Writer {
	return &Writer{w: bufio.NewWriter(os.Stdout)}
}

// Write appends one solution as its rows joined by commas.
func (sw *Writer) Write(solution []string) error {
	if _, err := sw.w.WriteString(strings.Join(solution, ",")); err != nil {
		return err
	}
	return sw.w.WriteByte('\n')
}

// Close flushes buffered output and, for file-backed writers, closes
// the underlying file.
func (sw *Writer) Close() error {
	if err := sw.w.Flush(); err != nil {
		return err
	}
	if sw.out != nil {
		return sw.out.Close()
	}
	return nil
}
