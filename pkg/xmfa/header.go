// 14 Oct 2026

package xmfa

import (
	"fmt"
	"strconv"
	"strings"
)

// Header keys. Anything else in the header is an error.
const (
	keyFormatVersion  = "#FormatVersion"
	keySequenceCount  = "#SequenceCount"
	keySequenceIndex  = "##SequenceIndex"
	keyIntervalCount  = "#IntervalCount"
	keySequenceFile   = "##SequenceFile"
	keySequenceHeader = "##SequenceHeader"
	keySequenceLength = "##SequenceLength"
)

// parseUnitInt reads an unsigned integer that is followed directly by
// a unit, as in "1000bp". Whatever comes after the unit is ignored.
func parseUnitInt(s, unit string) (uint64, error) {
	i := strings.Index(s, unit)
	if i == -1 {
		return 0, fmt.Errorf("no %q in %q", unit, s)
	}
	n, err := strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// readHeader reads lines as long as they start with "#". The first
// line that does not is left in the buffer.
func (r *Reader) readHeader() error {
	var haveVersion, haveSeqCount, haveIntCount bool
	m := &r.meta
	if err := r.advance(); err != nil {
		return err
	}
	for !r.eof && len(r.line) > 0 && r.line[0] == hdrChar {
		key, val, found := strings.Cut(r.line, " ")
		if !found {
			return r.fail(ErrMalformedHeader, "no space in header line", nil)
		}
		r.log.Debug("header", "key", key, "line", r.nline)
		var err error
		switch key {
		case keyFormatVersion:
			m.FormatVersion = val
			haveVersion = true
		case keySequenceCount:
			m.SequenceCount, err = strconv.ParseUint(val, 10, 64)
			haveSeqCount = true
		case keySequenceIndex: // Ignore for now.
		case keyIntervalCount:
			m.IntervalCount, err = strconv.ParseUint(val, 10, 64)
			haveIntCount = true
		case keySequenceFile:
			m.SequenceFileNames = append(m.SequenceFileNames, val)
		case keySequenceHeader:
			m.SequenceHeaders = append(m.SequenceHeaders, val)
		case keySequenceLength:
			var n uint64
			if n, err = parseUnitInt(val, "bp"); err == nil {
				m.SequenceLengths = append(m.SequenceLengths, n)
			}
		default:
			return r.fail(ErrMalformedHeader, "unknown key "+key, nil)
		}
		if err != nil {
			return r.fail(ErrMalformedHeader, "bad number after "+key, err)
		}
		if err := r.advance(); err != nil {
			return err
		}
	}

	var missing []string
	if !haveVersion {
		missing = append(missing, "FormatVersion")
	}
	if !haveSeqCount {
		missing = append(missing, "SequenceCount")
	}
	if !haveIntCount {
		missing = append(missing, "IntervalCount")
	}
	if len(missing) > 0 {
		return r.fail(ErrIncompleteHeader, "missing "+strings.Join(missing, ", "), nil)
	}
	if r.strict {
		return r.checkCounts()
	}
	return nil
}

// checkCounts is only called in strict mode. It wants one file name,
// header and length for each sequence.
func (r *Reader) checkCounts() error {
	m := &r.meta
	lists := []struct {
		name string
		n    int
	}{
		{keySequenceFile, len(m.SequenceFileNames)},
		{keySequenceHeader, len(m.SequenceHeaders)},
		{keySequenceLength, len(m.SequenceLengths)},
	}
	for _, l := range lists {
		if uint64(l.n) != m.SequenceCount {
			desc := fmt.Sprintf("%d %s lines, but SequenceCount is %d", l.n, l.name, m.SequenceCount)
			return r.fail(ErrCountMismatch, desc, nil)
		}
	}
	return nil
}
