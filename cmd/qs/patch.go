package main

import (
	"fmt"

	"github.com/signadot/structq/patch"

	"github.com/scott-cotton/cli"
)

func patchQuery(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires an operations file", cli.ErrUsage)
	}
	ops, err := getObjFile(cc, args[0], cfg.parseOpts(args[0])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	doc, err := decodeArgs(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	res, err := patch.Apply(doc, ops)
	if err != nil {
		return err
	}
	return cfg.output(cc, res)
}
