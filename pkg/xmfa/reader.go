// 14 Oct 2026

package xmfa

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/andrew-torda/xmfa/pkg/zwrap"
)

const (
	cmmtChar   = '>' // starts a coordinate line
	hdrChar    = '#' // starts a header line
	terminator = "=" // ends a block
)

// Options contains the choices passed in by the caller. A nil
// *Options is fine and gives the defaults.
type Options struct {
	// Strict turns on checks the format does not promise. The number
	// of ##SequenceFile, ##SequenceHeader and ##SequenceLength lines must
	// equal #SequenceCount, every record must name a sequence in that
	// range and the number of blocks must equal #IntervalCount.
	Strict bool
	Log    *slog.Logger // nil means no logging
}

// Reader owns the input stream. Its state is the line cursor plus one
// buffered line. The buffered line has had its line ending removed.
type Reader struct {
	meta   Metadata
	rdr    *bufio.Reader
	closer io.Closer // nil unless we opened the file ourselves
	line   string    // lookahead line
	eof    bool      // input is finished, line is empty
	nline  int       // number of the lookahead line, from 1
	nblock int       // blocks returned so far
	err    error     // sticky. Once set, every call returns it.
	strict bool
	log    *slog.Logger
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// NewReader reads the header from rdr and returns a Reader positioned
// at the first block. rdr is read through a bufio.Reader, so do not
// use it for anything else afterwards.
func NewReader(rdr io.Reader, opts *Options) (*Reader, error) {
	r := &Reader{rdr: bufio.NewReader(rdr), log: discard}
	if opts != nil {
		r.strict = opts.Strict
		if opts.Log != nil {
			r.log = opts.Log
		}
	}
	if err := r.readHeader(); err != nil {
		r.err = err
		return nil, err
	}
	return r, nil
}

// Open takes a filename and reads the header. The name "" or "-"
// means standard input. Compressed (gzip) files are recognised and
// decompressed on the fly. Call Close when finished.
func Open(fname string, opts *Options) (*Reader, error) {
	var fp io.ReadCloser // don't use a file. It could be stdin.
	if fname == "" || fname == "-" {
		fp = io.NopCloser(os.Stdin)
	} else {
		f, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		fp = f
	}
	zfp, err := zwrap.WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("opening %s: %w", fname, err)
	}
	r, err := NewReader(zfp, opts)
	if err != nil {
		zfp.Close()
		return nil, err
	}
	r.closer = zfp
	return r, nil
}

// Close releases the file if the Reader came from Open.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	c := r.closer
	r.closer = nil
	return c.Close()
}

// advance reads the next line into the buffer. At the end of input,
// the buffer is empty and eof is set. Only real read errors are
// returned.
func (r *Reader) advance() error {
	s, err := r.rdr.ReadString('\n')
	if err != nil && err != io.EOF {
		return r.fail(ErrRead, "", err)
	}
	if len(s) == 0 {
		r.line = ""
		r.eof = true
		return nil
	}
	r.nline++
	s = strings.TrimSuffix(s, "\n")
	r.line = strings.TrimSuffix(s, "\r")
	return nil
}

// Metadata returns what was read from the header. The slices are
// copies, so the caller may change them.
func (r *Reader) Metadata() Metadata {
	m := r.meta
	m.SequenceFileNames = slices.Clone(r.meta.SequenceFileNames)
	m.SequenceHeaders = slices.Clone(r.meta.SequenceHeaders)
	m.SequenceLengths = slices.Clone(r.meta.SequenceLengths)
	return m
}

// Peek says what kind of line is waiting in the buffer, without
// consuming it.
func (r *Reader) Peek() LineKind {
	switch {
	case r.eof:
		return KindEOF
	case r.line == terminator:
		return KindTerminator
	case len(r.line) > 0 && r.line[0] == cmmtChar:
		return KindCoord
	}
	return KindData
}

// LineNum is the number of the buffered line, counting from 1.
func (r *Reader) LineNum() int { return r.nline }

// NBlock is the number of blocks successfully read so far.
func (r *Reader) NBlock() int { return r.nblock }

// Err returns the error that stopped the Reader, or nil.
// The end of the input shows up here as an error satisfying
// errors.Is(err, io.EOF) once NextBlock has seen it.
func (r *Reader) Err() error { return r.err }

// ReadAll reads every remaining block. Reaching the end of the input
// is not an error. Anything after the last "=" that is not a block,
// even a blank line, is: ReadAll then returns the blocks it has with
// an ErrUnexpectedBlockStart that does not match io.EOF.
func (r *Reader) ReadAll() ([]Block, error) {
	var blocks []Block
	for {
		blk, err := r.NextBlock()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return blocks, nil
			}
			return blocks, err
		}
		blocks = append(blocks, blk)
	}
}
