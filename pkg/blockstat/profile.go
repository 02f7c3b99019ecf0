// 16 Oct 2026

package blockstat

import (
	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/xmfa/pkg/common"
	"github.com/andrew-torda/xmfa/pkg/xmfa"
)

// Symbols gives the rows of a profile. Anything not listed, like
// ambiguity codes, is counted in the last row.
const Symbols = "acgtn-*"

const otherRow = len(Symbols) - 1

var symRow [256]uint8

func init() {
	for i := range symRow {
		symRow[i] = uint8(otherRow)
	}
	for i := 0; i < otherRow; i++ {
		c := Symbols[i]
		symRow[c] = uint8(i)
		if 'a' <= c && c <= 'z' {
			symRow[c-('a'-'A')] = uint8(i)
		}
	}
}

// Profile counts how often each symbol appears in each column.
// Mat looks like [len(Symbols)][width]. Counts are stored as
// float32 so they can be normalised in place.
func Profile(blk xmfa.Block) *matrix.FMatrix2d {
	width := 0
	for _, rec := range blk {
		width = max(width, rec.Len())
	}
	prof := matrix.NewFMatrix2d(len(Symbols), width)
	for _, rec := range blk {
		for i, c := range rec.Seq {
			prof.Mat[symRow[c]][i]++
		}
	}
	return prof
}

// Consensus returns the most common symbol in each column, in lower
// case. Gaps count like anything else, so a column that is mostly
// gaps gives a gap. Ties go to the symbol earlier in Symbols, and
// the "other" row comes out as 'n'.
func Consensus(blk xmfa.Block) []byte {
	prof := Profile(blk)
	_, width := prof.Size()
	ret := make([]byte, width)
	for col := 0; col < width; col++ {
		best := 0
		for row := 1; row < len(Symbols); row++ {
			if prof.Mat[row][col] > prof.Mat[best][col] {
				best = row
			}
		}
		c := Symbols[best]
		if best == otherRow {
			c = 'n'
		}
		if prof.Mat[best][col] == 0 {
			c = common.GapChar
		}
		ret[col] = c
	}
	return ret
}
