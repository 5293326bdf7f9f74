package main

import (
	"fmt"

	"github.com/signadot/structq/patch"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires a defaults file", cli.ErrUsage)
	}
	defaults, err := getObjFile(cc, args[0], cfg.parseOpts(args[0])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	overlay, err := decodeArgs(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	res, err := patch.Merge(defaults, overlay)
	if err != nil {
		return err
	}
	return cfg.output(cc, res)
}
