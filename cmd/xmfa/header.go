package main

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

func headerCmd(g *globals) *cli.Command {
	var asJSON bool
	return &cli.Command{
		Name:      "header",
		Usage:     "print the header of an xmfa file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "write json instead of yaml", Destination: &asJSON},
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
			m := r.Metadata()
			var b []byte
			if asJSON {
				if b, err = json.MarshalIndent(m, "", "  "); err == nil {
					b = append(b, '\n')
				}
			} else {
				b, err = yaml.Marshal(m)
			}
			if err != nil {
				return err
			}
			_, err = cmd.Root().Writer.Write(b)
			return err
		},
	}
}
