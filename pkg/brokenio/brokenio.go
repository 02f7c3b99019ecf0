// brokenio is a wrapper around an io.Reader which misbehaves on
// request. Typical use: in a test, you have a strings.Reader with a
// perfectly good file. You write
//   rdr := brokenio.NewReader(strings.NewReader(s))
//   rdr.SetFailAfter(100)
// and everything functions as before until byte 100, after which you
// get ErrInjected.
// It can also hand out data in small pieces, which shakes out code
// that believes one Read gives one line.

package brokenio

import (
	"errors"
	"io"
	"math/rand"
)

// ErrInjected is returned when we decide to fail.
var ErrInjected = errors.New("brokenio: injected read failure")

// BrknRdr is modelled on the various Readers in the standard library,
// but with variables controlling when and how often it fails.
type BrknRdr struct {
	rdrOrig   io.Reader // Wrapped reader
	failAfter int       // Fail after this many bytes. Negative means never.
	chunk     int       // Hand out at most this many bytes per Read. 0 means no limit.
	probFail  float32   // Chance of failing on any one Read
	rnd       *rand.Rand
	nCalled   int
	nByte     int
}

// NewReader returns a new Reader - a wrapper around the old one.
// Until you set something, it behaves just like rIn.
func NewReader(rIn io.Reader) *BrknRdr {
	return &BrknRdr{rdrOrig: rIn, failAfter: -1}
}

// SetFailAfter makes every read fail once n bytes have been handed out.
func (r *BrknRdr) SetFailAfter(n int) { r.failAfter = n }

// SetChunk limits the size of each read.
func (r *BrknRdr) SetChunk(n int) { r.chunk = n }

// SetProbFail sets the probability of a read failing. It must be
// between zero and 1. We do not check if the argument is valid.
func (r *BrknRdr) SetProbFail(prob float32, seed int64) {
	r.probFail = prob
	r.rnd = rand.New(rand.NewSource(seed))
}

// NByte is the number of bytes passed through so far.
func (r *BrknRdr) NByte() int { return r.nByte }

// NCalled is the number of calls to Read that reached the wrapped reader.
func (r *BrknRdr) NCalled() int { return r.nCalled }

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *BrknRdr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrInjected
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	if r.chunk > 0 && len(p) > r.chunk {
		p = p[:r.chunk]
	}
	n, err = r.rdrOrig.Read(p)
	r.nCalled++
	r.nByte += n
	if err == nil && r.rnd != nil && r.rnd.Float32() < r.probFail {
		return n, ErrInjected
	}
	return n, err
}
