// 16 Oct 2026

// Package blockstat does some simple sums on one alignment block:
// how much of each record is gap, how similar the records are to
// each other and a column profile.
// Case is ignored when comparing. Parsnp writes SNP columns in upper
// case and everything else in lower case, but an "A" and an "a" are
// still the same base.
package blockstat

import (
	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/xmfa/pkg/common"
	"github.com/andrew-torda/xmfa/pkg/xmfa"
)

// Summary of one block.
type Summary struct {
	NRec      int               // number of records
	Width     int               // longest record, in columns
	Ragged    bool              // records are not all the same length
	Conserved int               // columns where every record has the same base, no gaps
	GapFrac   []float32         // per record, fraction of columns that are gaps
	Ident     *matrix.FMatrix2d // Ident.Mat[i][j] fraction identity of records i and j
	MeanIdent float32           // mean over pairs i < j. Zero if fewer than two records.
}

// lower is a cheap lower case for the characters we expect.
func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// pairIdent returns the identity of two aligned sequences. Only
// columns where neither has a gap are counted. If there are none, the
// identity is zero.
func pairIdent(a, b []byte) float32 {
	n := min(len(a), len(b))
	var nboth, nsame int
	for i := 0; i < n; i++ {
		if a[i] == common.GapChar || b[i] == common.GapChar {
			continue
		}
		nboth++
		if lower(a[i]) == lower(b[i]) {
			nsame++
		}
	}
	if nboth == 0 {
		return 0
	}
	return float32(nsame) / float32(nboth)
}

// Summarise works out a Summary for a block.
func Summarise(blk xmfa.Block) Summary {
	s := Summary{NRec: len(blk), GapFrac: make([]float32, len(blk))}
	for i, rec := range blk {
		if i > 0 && rec.Len() != s.Width {
			s.Ragged = true
		}
		s.Width = max(s.Width, rec.Len())
		ngap := 0
		for _, c := range rec.Seq {
			if c == common.GapChar {
				ngap++
			}
		}
		if rec.Len() > 0 {
			s.GapFrac[i] = float32(ngap) / float32(rec.Len())
		}
	}

	s.Ident = matrix.NewFMatrix2d(len(blk), len(blk))
	var sum float32
	npair := 0
	for i := range blk {
		s.Ident.Mat[i][i] = pairIdent(blk[i].Seq, blk[i].Seq)
		for j := i + 1; j < len(blk); j++ {
			x := pairIdent(blk[i].Seq, blk[j].Seq)
			s.Ident.Mat[i][j] = x
			s.Ident.Mat[j][i] = x
			sum += x
			npair++
		}
	}
	if npair > 0 {
		s.MeanIdent = sum / float32(npair)
	}
	s.Conserved = conserved(blk, s.Width)
	return s
}

// conserved counts columns where all records have the same, non-gap
// symbol. A record that is too short for a column counts as a gap.
func conserved(blk xmfa.Block, width int) int {
	if len(blk) == 0 {
		return 0
	}
	n := 0
cols:
	for col := 0; col < width; col++ {
		if col >= blk[0].Len() || blk[0].Seq[col] == common.GapChar {
			continue
		}
		c := lower(blk[0].Seq[col])
		for _, rec := range blk[1:] {
			if col >= rec.Len() || lower(rec.Seq[col]) != c {
				continue cols
			}
		}
		n++
	}
	return n
}
