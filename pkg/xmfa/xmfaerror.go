// 14 Oct 2026
// Errors from reading xmfa files. Every error that leaves the package
// is a *ParseError which remembers the line number and the line we
// were looking at. The kind is one of the Err... values below, so
// callers can say errors.Is(err, xmfa.ErrTruncatedBlock).

package xmfa

import (
	"errors"
	"strconv"
)

var (
	ErrMalformedHeader            = errors.New("malformed header line")
	ErrIncompleteHeader           = errors.New("incomplete header")
	ErrUnexpectedBlockStart       = errors.New("unexpected block start")
	ErrMalformedCoordinateLine    = errors.New("malformed coordinate line")
	ErrTruncatedBlock             = errors.New("truncated block")
	ErrUnexpectedContinuationLine = errors.New("sequence data before coordinate line")
	ErrCountMismatch              = errors.New("count mismatch") // strict mode only
	ErrRead                       = errors.New("read failure")
)

const maxMsgLen = 70

// ParseError says what went wrong, where, and on which line.
type ParseError struct {
	Kind error  // one of the Err... sentinels
	N    int    // line number, from 1. Zero if not known.
	Line string // The line that provoked the error
	Desc string // Description of error
	err  error  // underlying cause, often an io error
}

func firstPart(s string) string {
	l := len(s)
	if l > maxMsgLen {
		l = maxMsgLen
	}
	return s[:l]
}

// Error puts the kind, line number, description and the start of the
// offending line into one string.
func (e *ParseError) Error() string {
	errmsg := "xmfa: "
	if e.N != 0 {
		errmsg += "line " + strconv.Itoa(e.N) + ": "
	}
	errmsg += e.Kind.Error()
	if e.Desc != "" {
		errmsg += ": " + e.Desc
	}
	if e.err != nil {
		errmsg += ": " + e.err.Error()
	}
	if e.Line != "" {
		errmsg += "\nLine starting with\n" + firstPart(e.Line)
	}
	return errmsg
}

// Unwrap lets errors.Is see both the kind and any underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.err}
}

// fail builds a ParseError at the reader's current position.
func (r *Reader) fail(kind error, desc string, cause error) *ParseError {
	return &ParseError{
		Kind: kind,
		N:    r.nline,
		Line: r.line,
		Desc: desc,
		err:  cause,
	}
}
