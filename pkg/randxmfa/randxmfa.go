// 15 Oct 2026

// Package randxmfa writes random, but valid, xmfa files. They are
// for testing and benchmarking readers. Each block has one record per
// sequence, all records in a block have the same aligned length and
// coordinates run on from one block to the next.
package randxmfa

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"sync"
)

const FormatVersion = "randxmfa v1"

// Args is the set of arguments passed to Write
type Args struct {
	Iseed  int64     // random number seed
	Wrtr   io.Writer // where we write to
	NSeq   int       // number of sequences (genomes)
	NBlock int       // number of blocks
	Len    int       // aligned length of each block
	Width  int       // wrap sequence lines at this width. 0 means one line.
	NoGap  bool      // Do not add gaps
}

var (
	bases   = []byte{'a', 'c', 'g', 't'}
	withGap = []byte{'a', 'c', 'g', 't', 'a', 'c', 'g', 't', 'a', 'c', 'g', 't', '-'}
)

type rec struct {
	seqnum      int
	start, stop int
	seq         []byte
}

// getseq returns a random aligned sequence and the number of non-gap
// characters in it.
func getseq(n int, letters []byte, rnd *rand.Rand) ([]byte, int) {
	ret := make([]byte, n)
	nres := 0
	l := len(letters)
	for i := range ret {
		ret[i] = letters[rnd.Intn(l)]
		if ret[i] != '-' {
			nres++
		}
	}
	if nres == 0 { // all gaps would give a stop before the start
		ret[0] = bases[rnd.Intn(len(bases))]
		nres = 1
	}
	return ret, nres
}

// wrtBlocks takes blocks from the channel and writes them.
// The first error is saved and everything after that is drained.
func wrtBlocks(bChan <-chan []rec, w *bufio.Writer, width int, err *error, wg *sync.WaitGroup) {
	defer wg.Done()
	for blk := range bChan {
		if *err != nil {
			continue
		}
		for _, r := range blk {
			fmt.Fprintf(w, ">%d:%d-%d + cluster%d s1:p%d\n", r.seqnum, r.start, r.stop, r.seqnum, r.start)
			s := r.seq
			if width > 0 {
				for ; len(s) > width; s = s[width:] {
					w.Write(s[:width])
					w.WriteByte('\n')
				}
			}
			w.Write(s)
			w.WriteByte('\n')
		}
		if _, e := w.WriteString("=\n"); e != nil {
			*err = e
		}
	}
}

// header writes the header. Sequence lengths are worked out
// beforehand, so they agree with the blocks.
func header(w io.Writer, args *Args, lengths []int) {
	fmt.Fprintln(w, "#FormatVersion", FormatVersion)
	fmt.Fprintln(w, "#SequenceCount", args.NSeq)
	for i := 0; i < args.NSeq; i++ {
		fmt.Fprintf(w, "##SequenceIndex %d\n", i+1)
		fmt.Fprintf(w, "##SequenceFile genome%d.fna\n", i+1)
		fmt.Fprintf(w, "##SequenceHeader >genome%d random\n", i+1)
		fmt.Fprintf(w, "##SequenceLength %dbp\n", lengths[i])
	}
	fmt.Fprintln(w, "#IntervalCount", args.NBlock)
}

// Write writes a random xmfa file to args.Wrtr.
func Write(args *Args) error {
	if args.NSeq < 1 || args.NBlock < 0 || args.Len < 1 {
		return fmt.Errorf("randxmfa: need nseq >= 1, nblock >= 0, len >= 1. Got %d %d %d",
			args.NSeq, args.NBlock, args.Len)
	}
	letters := withGap
	if args.NoGap {
		letters = bases
	}
	rnd := rand.New(rand.NewSource(args.Iseed))

	blocks := make([][]rec, args.NBlock) // generate first, the header needs lengths
	pos := make([]int, args.NSeq)
	for ib := range blocks {
		blk := make([]rec, args.NSeq)
		for is := range blk {
			s, nres := getseq(args.Len, letters, rnd)
			blk[is] = rec{seqnum: is + 1, start: pos[is], stop: pos[is] + nres - 1, seq: s}
			pos[is] += nres
		}
		blocks[ib] = blk
	}

	w := bufio.NewWriter(args.Wrtr)
	header(w, args, pos)

	var wg sync.WaitGroup
	var err error
	bChan := make(chan []rec)
	wg.Add(1)
	go wrtBlocks(bChan, w, args.Width, &err, &wg)
	for _, blk := range blocks {
		bChan <- blk
	}
	close(bChan)
	wg.Wait()
	if err != nil {
		return err
	}
	return w.Flush()
}
