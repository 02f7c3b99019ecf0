// 16 Oct 2026

// Package numblock counts the blocks in an xmfa file without parsing
// it, by counting lines that hold only "=". This is much quicker than
// reading the blocks and is good enough to check #IntervalCount.
package numblock

import (
	"bufio"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// counter remembers where we are in a line across buffers.
type counter struct {
	n   int  // terminators seen
	col int  // characters so far on this line, not counting '\r'
	eq  bool // line so far is "="
}

func (c *counter) scan(b []byte) {
	for _, ch := range b {
		switch {
		case ch == '\n':
			if c.col == 1 && c.eq {
				c.n++
			}
			c.col = 0
			c.eq = false
		case ch == '\r':
		case c.col == 0:
			c.eq = ch == '='
			c.col++
		default:
			c.col++
		}
	}
}

// finish catches a last line with no newline.
func (c *counter) finish() int {
	if c.col == 1 && c.eq {
		c.n++
	}
	return c.n
}

// ByMmap maps the file into memory and counts terminator lines.
func ByMmap(fname string) (int, error) {
	var fp *os.File
	var err error
	var mm mmap.MMap
	if fp, err = os.Open(fname); err != nil {
		return 0, err
	}
	defer fp.Close()
	if fi, err := fp.Stat(); err != nil {
		return 0, err
	} else if fi.Size() == 0 { // mmap will not map zero bytes
		return 0, nil
	}
	if mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
		return 0, err
	}
	defer mm.Unmap()
	var c counter
	c.scan(mm)
	return c.finish(), nil
}

// ByReading counts terminator lines from a reader. It is for pipes and
// compressed input, where there is nothing to map.
func ByReading(rdr io.Reader) (int, error) {
	const bsize = 64 * 1024
	var c counter
	br := bufio.NewReaderSize(rdr, bsize)
	buf := make([]byte, bsize)
	for {
		n, err := br.Read(buf)
		c.scan(buf[:n])
		if err == io.EOF {
			return c.finish(), nil
		}
		if err != nil {
			return 0, err
		}
	}
}
