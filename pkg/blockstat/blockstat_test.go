// 16 Oct 2026

package blockstat_test

import (
	"math"
	"strings"
	"testing"
	"unicode"

	"github.com/andrew-torda/xmfa/pkg/blockstat"
	"github.com/andrew-torda/xmfa/pkg/xmfa"
)

func approxEqual(x, y float32) bool {
	const eps = 0.0001
	return math.Abs(float64(x-y)) < eps
}

func mkBlock(seqs ...string) xmfa.Block {
	blk := make(xmfa.Block, len(seqs))
	for i, s := range seqs {
		blk[i] = xmfa.Record{SeqNum: uint64(i + 1), Seq: []byte(s)}
	}
	return blk
}

func TestSummarise(t *testing.T) {
	blk := mkBlock(
		"acgtacgt",
		"acgTacgt", // case does not matter
		"acgaac--",
		"--------",
	)
	s := blockstat.Summarise(blk)
	if s.NRec != 4 || s.Width != 8 || s.Ragged {
		t.Errorf("got %+v", s)
	}
	wantGap := []float32{0, 0, 0.25, 1}
	for i, w := range wantGap {
		if !approxEqual(s.GapFrac[i], w) {
			t.Errorf("gapfrac %d got %f want %f", i, s.GapFrac[i], w)
		}
	}
	m := s.Ident.Mat
	if !approxEqual(m[0][1], 1) || !approxEqual(m[1][0], 1) {
		t.Errorf("identical records got %f", m[0][1])
	}
	if !approxEqual(m[0][2], 5./6.) {
		t.Errorf("record 0 vs 2 got %f", m[0][2])
	}
	if m[0][3] != 0 || m[3][3] != 0 {
		t.Errorf("all gap record should have zero identity, got %f %f", m[0][3], m[3][3])
	}
	if !approxEqual(m[2][2], 1) {
		t.Errorf("self identity got %f", m[2][2])
	}
	wantMean := float32(1+5./6.+0+5./6.+0+0) / 6
	if !approxEqual(s.MeanIdent, wantMean) {
		t.Errorf("mean got %f want %f", s.MeanIdent, wantMean)
	}
	if s.Conserved != 0 { // the last record is all gaps
		t.Errorf("conserved got %d", s.Conserved)
	}
	if c := blockstat.Summarise(blk[:3]).Conserved; c != 5 {
		t.Errorf("conserved in first three got %d want 5", c)
	}
}

func TestRagged(t *testing.T) {
	s := blockstat.Summarise(mkBlock("acgt", "ac", ""))
	if !s.Ragged || s.Width != 4 {
		t.Errorf("got %+v", s)
	}
	if s.Conserved != 0 {
		t.Errorf("conserved got %d", s.Conserved)
	}
}

func TestSmallBlocks(t *testing.T) {
	s := blockstat.Summarise(nil)
	if s.NRec != 0 || s.MeanIdent != 0 || s.Conserved != 0 {
		t.Errorf("empty block got %+v", s)
	}
	s = blockstat.Summarise(mkBlock("acgt"))
	if s.MeanIdent != 0 || s.Conserved != 4 {
		t.Errorf("one record got %+v", s)
	}
}

func TestParsnp(t *testing.T) {
	r, err := xmfa.Open("../xmfa/testdata/parsnp.xmfa", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	blk, err := r.NextBlock()
	if err != nil {
		t.Fatal(err)
	}
	s := blockstat.Summarise(blk)
	// One SNP between genomes 1 and 2, one between 1 and 3, so two
	// between 2 and 3.
	m := s.Ident.Mat
	if !approxEqual(m[0][1], 799./800.) || !approxEqual(m[0][2], 799./800.) || !approxEqual(m[1][2], 798./800.) {
		t.Errorf("identities %v", m)
	}
	if s.Conserved != 798 {
		t.Errorf("conserved got %d", s.Conserved)
	}
}

func TestProfile(t *testing.T) {
	blk := mkBlock("aC-x", "ac-n", "tcgN")
	p := blockstat.Profile(blk)
	nrow, ncol := p.Size()
	if nrow != len(blockstat.Symbols) || ncol != 4 {
		t.Fatalf("size %d x %d", nrow, ncol)
	}
	const a, c, g, t_, n, gap, other = 0, 1, 2, 3, 4, 5, 6
	checks := []struct {
		row, col int
		want     float32
	}{
		{a, 0, 2}, {t_, 0, 1}, {c, 1, 3}, {gap, 2, 2}, {g, 2, 1}, {other, 3, 1}, {n, 3, 2},
	}
	for _, ck := range checks {
		if got := p.Mat[ck.row][ck.col]; got != ck.want {
			t.Errorf("row %d col %d got %f want %f", ck.row, ck.col, got, ck.want)
		}
	}
	if got := string(blockstat.Consensus(blk)); got != "ac-n" {
		t.Errorf("consensus got %q", got)
	}
}

func TestConsensusRagged(t *testing.T) {
	if got := string(blockstat.Consensus(mkBlock("ac", "acgg", "*"))); got != "acgg" {
		t.Errorf("got %q", got)
	}
	if got := string(blockstat.Consensus(mkBlock("**"))); got != "nn" {
		t.Errorf("other symbols should give n, got %q", got)
	}
}

// Every byte value lands in exactly one row, unknown ones in the last.
func TestProfileAllBytes(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	p := blockstat.Profile(mkBlock(string(all)))
	last := len(blockstat.Symbols) - 1
	for col, c := range all {
		want := strings.IndexByte(blockstat.Symbols[:last], byte(unicode.ToLower(rune(c))))
		if c >= 0x80 || want == -1 {
			want = last
		}
		for row := range blockstat.Symbols {
			got := p.Mat[row][col]
			if (row == want && got != 1) || (row != want && got != 0) {
				t.Fatalf("byte %d row %d got %f, wanted it in row %d", c, row, got, want)
			}
		}
	}
}
