// 14 Oct 2026

// Package xmfa reads multiple genome alignments in xmfa (extended
// multi-fasta) format, as written by parsnp, mauve and friends.
//
// A file starts with a header where every line begins with "#". After
// that come blocks. Each block has one record per aligned genome. A
// record is a coordinate line like
//     >3:200-999 + cluster1 s1:p200
// followed by any number of lines of aligned sequence. A block ends
// with a line holding just "=".
//
// We read in two steps. NewReader (or Open) reads the header and stops
// on the first line that is not part of it. That line is kept, since
// it is the start of the first block. After that, each call to
// NextBlock reads exactly one block and keeps the line after the "="
// for the next call. Nothing is read ahead beyond that one line.
//
// A Reader is not safe for concurrent use. If you want to read files
// in parallel, make one Reader per file.
package xmfa

// Metadata is what we learn from the header. It is filled once, when
// the Reader is made. The three slices are filled independently, in
// the order the lines occur, and are not checked against SequenceCount
// unless Options.Strict is set.
type Metadata struct {
	FormatVersion     string   `json:"format_version" yaml:"format_version"`
	SequenceCount     uint64   `json:"sequence_count" yaml:"sequence_count"`
	SequenceFileNames []string `json:"sequence_file_names" yaml:"sequence_file_names"`
	SequenceHeaders   []string `json:"sequence_headers" yaml:"sequence_headers"`
	SequenceLengths   []uint64 `json:"sequence_lengths" yaml:"sequence_lengths"`
	IntervalCount     uint64   `json:"interval_count" yaml:"interval_count"`
}

// Record is one aligned segment of one genome within a block.
// SeqNum counts from 1, so SequenceFileNames[SeqNum-1] is its file.
// Start and Stop are passed through as they are. Reverse strand
// segments are not swapped.
type Record struct {
	SeqNum  uint64
	Start   uint64
	Stop    uint64
	Comment string // Everything after the range, like "+ cluster1 :p1"
	Seq     []byte // Sequence lines joined, no newlines
}

// Len is the number of aligned columns, including gaps.
func (rec *Record) Len() int { return len(rec.Seq) }

// Block is the list of records from one block, in file order.
type Block []Record

// LineKind says what sort of line is sitting in the Reader's buffer.
type LineKind byte

const (
	KindEOF        LineKind = iota // nothing left
	KindCoord                      // ">" coordinate line, a block can start here
	KindTerminator                 // "="
	KindData                       // anything else
)

func (k LineKind) String() string {
	switch k {
	case KindEOF:
		return "eof"
	case KindCoord:
		return "coordinate"
	case KindTerminator:
		return "terminator"
	}
	return "data"
}
