// Package zwrap takes a file pointer and optionally wraps it so reads
// come from a gzip decompressor. Upon calling Close, the decompressor
// is closed, followed by the underlying file.
// We decide by peeking at the first two bytes, so it works on pipes
// and standard input, where one cannot seek back.

package zwrap

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
)

var gzipMagic = []byte{0x1f, 0x8b}

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	rdr  io.Reader    // where Read takes bytes from
	zrdr *gzip.Reader // nil if the input was not compressed
}

// Close closes the decompressor, then the underlying ReadCloser.
func (fc *FpGzip) Close() error {
	var errs []error
	if fc.zrdr != nil {
		errs = append(errs, fc.zrdr.Close())
	}
	errs = append(errs, fc.fp.Close())
	return errors.Join(errs...)
}

// Read makes sure we read from the compressed stream if there is one.
func (fc *FpGzip) Read(p []byte) (int, error) { return fc.rdr.Read(p) }

// Compressed says if we are decompressing.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// Wrap insists that the source is gzipped. Although we use the name
// fp, it should be happy if it is fed an http stream.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, rdr: zrdr, zrdr: zrdr}, nil
}

// bufCloser reads through the peeking buffer, but closes the file.
type bufCloser struct {
	io.Reader
	io.Closer
}

// WrapMaybe looks at the start of the stream and only adds a
// decompressor if it sees the gzip magic number. A short or empty
// stream is passed through as it is.
func WrapMaybe(fp io.ReadCloser) (*FpGzip, error) {
	br := bufio.NewReader(fp)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if !bytes.Equal(head, gzipMagic) {
		return &FpGzip{fp: fp, rdr: br}, nil
	}
	return Wrap(bufCloser{Reader: br, Closer: fp})
}
