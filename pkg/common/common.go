// 16 Oct 2026

package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const GapChar byte = '-' // a minus sign is always used for gaps

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	return WrtTempBytes([]byte(s))
}

// WrtTempBytes is WrtTemp for binary data, like gzipped test input.
func WrtTempBytes(b []byte) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()
	if _, err := f_tmp.Write(b); err != nil {
		return "", fmt.Errorf("writing to temp file %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}

// WriteCloser wraps an io.Writer with a Close that does nothing.
// Handy when output might be os.Stdout, which we should not close.
func WriteCloser(w io.Writer) io.WriteCloser { return nopWriteCloser{w} }

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
