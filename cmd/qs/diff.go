package main

import (
	"fmt"

	"github.com/signadot/structq/libdiff"
	"github.com/signadot/structq/query"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := query.DecodeString(args[0], cfg.decodeOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := query.DecodeString(args[1], cfg.decodeOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	edits := libdiff.Diff(y1, y2)
	if !libdiff.Changed(edits) {
		return nil
	}
	if err := libdiff.Write(cc.Out, edits, cfg.colors(cc.Out), cfg.Context); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
