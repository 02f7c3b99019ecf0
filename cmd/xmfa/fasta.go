// 18 Oct 2026

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/andrew-torda/xmfa/internal/logger"
	"github.com/andrew-torda/xmfa/pkg/blockstat"
	"github.com/andrew-torda/xmfa/pkg/common"
	"github.com/andrew-torda/xmfa/pkg/xmfa"
)

// fastaOpts are the choices for writing blocks as fasta.
type fastaOpts struct {
	block     int // 1 based, 0 means every block
	width     int // characters per line
	noGap     bool
	consensus bool
}

// recName finds a name for a record. We use the ##SequenceHeader line
// if there is one, otherwise the sequence number.
func recName(meta *xmfa.Metadata, seqnum uint64) string {
	if seqnum >= 1 && seqnum <= uint64(len(meta.SequenceHeaders)) {
		if s := strings.TrimLeft(meta.SequenceHeaders[seqnum-1], "> "); s != "" {
			if i := strings.IndexByte(s, ' '); i != -1 {
				s = s[:i]
			}
			return s
		}
	}
	return fmt.Sprintf("seq%d", seqnum)
}

// wrtSeq writes one fasta entry, broken into lines of width
// characters. Gaps are removed if noGap is set. scratch is reused
// between calls and returned.
func wrtSeq(w io.Writer, cmmt string, s, scratch []byte, o *fastaOpts) ([]byte, error) {
	if o.noGap {
		scratch = scratch[:0]
		for _, c := range s {
			if c != common.GapChar {
				scratch = append(scratch, c)
			}
		}
		s = scratch
	}
	if _, err := fmt.Fprintf(w, ">%s\n", cmmt); err != nil {
		return scratch, err
	}
	for ; len(s) > o.width; s = s[o.width:] {
		w.Write(s[:o.width])
		io.WriteString(w, "\n")
	}
	w.Write(s)
	_, err := io.WriteString(w, "\n")
	return scratch, err
}

// wrtFasta reads blocks and writes the wanted ones.
func wrtFasta(w io.Writer, r *xmfa.Reader, o *fastaOpts) error {
	meta := r.Metadata()
	var scratch []byte
	for {
		blk, err := r.NextBlock()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		nb := r.NBlock()
		if o.block != 0 && nb != o.block {
			continue
		}
		if o.consensus {
			cmmt := fmt.Sprintf("consensus block %d", nb)
			if scratch, err = wrtSeq(w, cmmt, blockstat.Consensus(blk), scratch, o); err != nil {
				return err
			}
		} else {
			for _, rec := range blk {
				cmmt := fmt.Sprintf("%s %d:%d-%d %s", recName(&meta, rec.SeqNum), rec.SeqNum, rec.Start, rec.Stop, rec.Comment)
				if scratch, err = wrtSeq(w, cmmt, rec.Seq, scratch, o); err != nil {
					return err
				}
			}
		}
		if o.block != 0 {
			return nil
		}
	}
	if o.block != 0 {
		return fmt.Errorf("asked for block %d, but there are only %d", o.block, r.NBlock())
	}
	return nil
}

func fastaCmd(g *globals) *cli.Command {
	var o fastaOpts
	var outName string
	return &cli.Command{
		Name:      "fasta",
		Usage:     "write blocks as fasta",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "block", Usage: "only write this block, counting from 1", Destination: &o.block},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file, default standard output", Destination: &outName},
			&cli.IntFlag{Name: "width", Usage: "characters per line (default from config, else 60)", Destination: &o.width},
			&cli.BoolFlag{Name: "nogap", Usage: "remove gaps", Destination: &o.noGap},
			&cli.BoolFlag{Name: "consensus", Usage: "one consensus sequence per block", Destination: &o.consensus},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fname, err := fileArg(cmd)
			if err != nil {
				return err
			}
			if !cmd.IsSet("width") {
				o.width = g.cfg.Width()
			}
			if o.width < 1 || o.block < 0 {
				return cli.Exit("width must be at least 1 and block must not be negative", common.ExitUsageError)
			}
			r, err := g.open(ctx, fname)
			if err != nil {
				return err
			}
			defer r.Close()

			var out io.WriteCloser = common.WriteCloser(cmd.Root().Writer)
			if outName != "" && outName != "-" {
				f, err := os.Create(outName)
				if err != nil {
					return fmt.Errorf("creating output sequence file: %w", err)
				}
				out = f
			}
			w := bufio.NewWriter(out)
			err = wrtFasta(w, r, &o)
			err = errors.Join(err, w.Flush(), out.Close())
			if err == nil {
				logger.FromContext(ctx).Info("wrote fasta", "blocks", r.NBlock(), "out", outName)
			}
			return err
		},
	}
}
