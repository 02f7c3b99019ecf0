// 16 Oct 2026

package numblock_test

import (
	"os"
	"strings"
	"testing"

	"github.com/andrew-torda/xmfa/pkg/brokenio"
	"github.com/andrew-torda/xmfa/pkg/common"
	"github.com/andrew-torda/xmfa/pkg/numblock"
	"github.com/andrew-torda/xmfa/pkg/randxmfa"
)

var counts = []struct {
	s string
	n int
}{
	{"", 0},
	{"=", 1},
	{"=\n", 1},
	{"=\r\n=\n", 2},
	{"#FormatVersion x\n>1:0-3 a=b\nac=t\n==\n =\n= \n", 0},
	{">1:0-3 x\nacgt\n=\n>1:4-7 x\nacgt\n=", 2},
	{"\n\n=\n\n", 1},
}

func TestByReading(t *testing.T) {
	for _, c := range counts {
		br := brokenio.NewReader(strings.NewReader(c.s))
		br.SetChunk(1) // lines split across reads
		n, err := numblock.ByReading(br)
		if err != nil {
			t.Fatal(err)
		}
		if n != c.n {
			t.Errorf("%q: got %d want %d", c.s, n, c.n)
		}
	}
}

func TestByMmap(t *testing.T) {
	for _, c := range counts {
		fname, err := common.WrtTemp(c.s)
		if err != nil {
			t.Fatal(err)
		}
		n, err := numblock.ByMmap(fname)
		os.Remove(fname)
		if err != nil {
			t.Fatal(err)
		}
		if n != c.n {
			t.Errorf("%q: got %d want %d", c.s, n, c.n)
		}
	}
}

func TestParsnp(t *testing.T) {
	n, err := numblock.ByMmap("../xmfa/testdata/parsnp.xmfa")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("got %d blocks", n)
	}
}

func TestByMmapMissing(t *testing.T) {
	if _, err := numblock.ByMmap("does/not/exist"); err == nil {
		t.Error("expected an error")
	}
}

func setupbmark(b *testing.B) string {
	b.StopTimer()
	var sb strings.Builder
	args := randxmfa.Args{Wrtr: &sb, NSeq: 10, NBlock: 500, Len: 2000, Width: 80}
	if err := randxmfa.Write(&args); err != nil {
		b.Fatal(err)
	}
	fname, err := common.WrtTemp(sb.String())
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { os.Remove(fname) })
	b.StartTimer()
	return fname
}

func BenchmarkByMmap(b *testing.B) {
	fname := setupbmark(b)
	for i := 0; i < b.N; i++ {
		if n, _ := numblock.ByMmap(fname); n != 500 {
			b.Fatal("Expected 500 got", n)
		}
	}
}

func BenchmarkByReading(b *testing.B) {
	fname := setupbmark(b)
	for i := 0; i < b.N; i++ {
		fp, err := os.Open(fname)
		if err != nil {
			b.Fatal(err)
		}
		n, _ := numblock.ByReading(fp)
		fp.Close()
		if n != 500 {
			b.Fatal("Expected 500 got", n)
		}
	}
}
