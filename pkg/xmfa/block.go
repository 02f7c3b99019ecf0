// 14 Oct 2026

package xmfa

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
)

// >1:800-999 + cluster2 s1:p800
var coordRE = regexp.MustCompile(`^>(\d+):(\d+)-(\d+) (.*)$`)

// parseCoord turns the buffered coordinate line into a new Record
// with an empty sequence.
func (r *Reader) parseCoord() (Record, error) {
	m := coordRE.FindStringSubmatch(r.line)
	if m == nil {
		return Record{}, r.fail(ErrMalformedCoordinateLine, "", nil)
	}
	var nums [3]uint64
	for i := range nums {
		n, err := strconv.ParseUint(m[i+1], 10, 64)
		if err != nil {
			return Record{}, r.fail(ErrMalformedCoordinateLine, "", err)
		}
		nums[i] = n
	}
	if r.strict && (nums[0] == 0 || nums[0] > r.meta.SequenceCount) {
		desc := fmt.Sprintf("sequence %d, but SequenceCount is %d", nums[0], r.meta.SequenceCount)
		return Record{}, r.fail(ErrCountMismatch, desc, nil)
	}
	return Record{SeqNum: nums[0], Start: nums[1], Stop: nums[2], Comment: m[4]}, nil
}

// NextBlock reads one block, up to and including its "=" line, and
// returns its records in file order. The line after the "=" is kept
// for the next call.
//
// When there are no more blocks, the error satisfies both
// errors.Is(err, ErrUnexpectedBlockStart) and errors.Is(err, io.EOF).
// If the buffered line is something other than a coordinate line, the
// error only matches ErrUnexpectedBlockStart.
// After any error, the Reader is finished and NextBlock keeps
// returning the same error.
func (r *Reader) NextBlock() (Block, error) {
	if r.err != nil {
		return nil, r.err
	}
	blk, err := r.nextBlock()
	if err != nil {
		r.err = err
		return nil, err
	}
	r.nblock++
	r.log.Debug("block", "n", r.nblock, "nrec", len(blk), "line", r.nline)
	return blk, nil
}

func (r *Reader) nextBlock() (Block, error) {
	if r.eof {
		if r.strict && uint64(r.nblock) != r.meta.IntervalCount {
			desc := fmt.Sprintf("read %d blocks, but IntervalCount is %d", r.nblock, r.meta.IntervalCount)
			return nil, r.fail(ErrCountMismatch, desc, nil)
		}
		return nil, r.fail(ErrUnexpectedBlockStart, "no more blocks", io.EOF)
	}
	if r.Peek() != KindCoord {
		return nil, r.fail(ErrUnexpectedBlockStart, "", nil)
	}
	return r.readRecords()
}

// readRecords collects records up to and including the "=" line.
// Sequence lines belong to the record above them, so a data line
// before any coordinate line is an error.
func (r *Reader) readRecords() (Block, error) {
	var blk Block
	for {
		switch r.Peek() {
		case KindTerminator:
			if err := r.advance(); err != nil {
				return nil, err
			}
			return blk, nil
		case KindCoord:
			rec, err := r.parseCoord()
			if err != nil {
				return nil, err
			}
			blk = append(blk, rec)
		default:
			if len(blk) == 0 {
				return nil, r.fail(ErrUnexpectedContinuationLine, "", nil)
			}
			cur := &blk[len(blk)-1]
			cur.Seq = append(cur.Seq, r.line...)
		}
		if err := r.advance(); err != nil {
			return nil, err
		}
		if r.eof {
			return nil, r.fail(ErrTruncatedBlock, `input finished before "="`, io.ErrUnexpectedEOF)
		}
	}
}
