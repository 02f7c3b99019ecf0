package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/andrew-torda/xmfa/internal/logger"
	"github.com/andrew-torda/xmfa/pkg/common"
	"github.com/andrew-torda/xmfa/pkg/randxmfa"
)

func randCmd(g *globals) *cli.Command {
	var args randxmfa.Args
	return &cli.Command{
		Name:  "rand",
		Usage: "write a random xmfa file, for testing",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "nseq", Usage: "number of sequences", Value: 3, Destination: &args.NSeq},
			&cli.IntFlag{Name: "nblock", Usage: "number of blocks", Value: 10, Destination: &args.NBlock},
			&cli.IntFlag{Name: "len", Usage: "aligned length of each block", Value: 200, Destination: &args.Len},
			&cli.IntFlag{Name: "width", Usage: "wrap sequences, 0 for one line", Value: 80, Destination: &args.Width},
			&cli.Int64Flag{Name: "seed", Usage: "random number seed (default from the clock)", Destination: &args.Iseed},
			&cli.BoolFlag{Name: "nogap", Usage: "no gaps in sequences", Destination: &args.NoGap},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 0 {
				return cli.Exit("rand takes no arguments", common.ExitUsageError)
			}
			if !cmd.IsSet("seed") {
				args.Iseed = time.Now().UnixNano()
			}
			args.Wrtr = cmd.Root().Writer
			logger.FromContext(ctx).Debug("random xmfa", "nseq", args.NSeq, "nblock", args.NBlock, "seed", args.Iseed)
			return randxmfa.Write(&args)
		},
	}
}
