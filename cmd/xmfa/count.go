// 18 Oct 2026

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/andrew-torda/xmfa/internal/logger"
	"github.com/andrew-torda/xmfa/pkg/common"
	"github.com/andrew-torda/xmfa/pkg/numblock"
	"github.com/andrew-torda/xmfa/pkg/zwrap"
)

// countBlocks counts "=" lines. Plain files are mapped into memory,
// compressed ones have to be read.
func countBlocks(fname string) (int, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	zfp, err := zwrap.WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return 0, err
	}
	defer zfp.Close()
	if zfp.Compressed() {
		return numblock.ByReading(zfp)
	}
	return numblock.ByMmap(fname)
}

func countCmd(g *globals) *cli.Command {
	return &cli.Command{
		Name:      "count",
		Usage:     "count blocks quickly and compare with #IntervalCount",
		ArgsUsage: "FILE",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fname, err := fileArg(cmd)
			if err != nil {
				return err
			}
			if fname == "-" {
				return cli.Exit("count reads the file twice, so it cannot use standard input", common.ExitUsageError)
			}
			r, err := g.open(ctx, fname)
			if err != nil {
				return err
			}
			want := r.Metadata().IntervalCount
			r.Close()

			n, err := countBlocks(fname)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.Root().Writer, "blocks %d interval_count %d\n", n, want)
			if uint64(n) != want {
				logger.FromContext(ctx).Warn("block count does not match header", "file", fname, "blocks", n, "interval_count", want)
				if g.strict {
					return fmt.Errorf("%s: %d blocks, but #IntervalCount is %d", fname, n, want)
				}
			}
			return nil
		},
	}
}
