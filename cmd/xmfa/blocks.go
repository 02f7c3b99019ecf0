package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/andrew-torda/xmfa/internal/logger"
	"github.com/andrew-torda/xmfa/pkg/blockstat"
	"github.com/andrew-torda/xmfa/pkg/xmfa"
)

// blockLine is one line of output, one per block.
type blockLine struct {
	Block     int     `json:"block"`
	Line      int     `json:"line"` // where the next block starts
	NRec      int     `json:"nrec"`
	Width     int     `json:"width"`
	Ragged    bool    `json:"ragged"`
	Conserved int     `json:"conserved"`
	MeanIdent float32 `json:"mean_ident"`
}

func blocksCmd(g *globals) *cli.Command {
	var asJSON bool
	return &cli.Command{
		Name:      "blocks",
		Usage:     "summarise each block of an xmfa file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "one json object per block", Destination: &asJSON},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fname, err := fileArg(cmd)
			if err != nil {
				return err
			}
			r, err := g.open(ctx, fname)
			if err != nil {
				return err
			}
			defer r.Close()
			w := bufio.NewWriter(cmd.Root().Writer)
			if !asJSON {
				fmt.Fprintln(w, "block\tnrec\twidth\tconserved\tmean_ident")
			}
			if err := wrtBlocks(w, r, asJSON); err != nil {
				w.Flush()
				return err
			}
			logger.FromContext(ctx).Info("finished", "file", fname, "blocks", r.NBlock())
			return w.Flush()
		},
	}
}

func wrtBlocks(w io.Writer, r *xmfa.Reader, asJSON bool) error {
	enc := json.NewEncoder(w)
	for {
		blk, err := r.NextBlock()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		s := blockstat.Summarise(blk)
		bl := blockLine{
			Block:     r.NBlock(),
			Line:      r.LineNum(),
			NRec:      s.NRec,
			Width:     s.Width,
			Ragged:    s.Ragged,
			Conserved: s.Conserved,
			MeanIdent: s.MeanIdent,
		}
		if asJSON {
			err = enc.Encode(bl)
		} else {
			ragged := ""
			if bl.Ragged {
				ragged = "*"
			}
			_, err = fmt.Fprintf(w, "%d\t%d\t%d%s\t%d\t%.4f\n", bl.Block, bl.NRec, bl.Width, ragged, bl.Conserved, bl.MeanIdent)
		}
		if err != nil {
			return err
		}
	}
}
