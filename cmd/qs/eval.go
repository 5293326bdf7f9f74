package main

import (
	"fmt"

	"github.com/signadot/structq/eval"
	"github.com/signadot/structq/ir"

	"github.com/scott-cotton/cli"
)

func evalQuery(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	node, err := decodeArgs(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	res, err := eval.Eval(args[0], node)
	if err != nil {
		return err
	}
	if err := cfg.output(cc, res); err != nil {
		return err
	}
	if cfg.Match && !ir.Truth(res) {
		return cli.ExitCodeErr(1)
	}
	return nil
}
