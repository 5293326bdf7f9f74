package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/structq/encode"
	"github.com/signadot/structq/ir"
	"github.com/signadot/structq/params"
	"github.com/signadot/structq/query"

	"github.com/scott-cotton/cli"
)

// get prints a named parameter.  Failures are printed to stderr in the
// form of an http error body and give exit status 2.
func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a parameter name", cli.ErrUsage)
	}
	name := args[0]
	q, err := readQuery(cc, args[1:])
	if err != nil {
		return err
	}
	res, err := lookup(cfg, q, name)
	if err != nil {
		return reportParamsError(cc.Err, err)
	}
	return cfg.output(cc, res)
}

// reportParamsError writes the response body of a parameter error to w.
// Other errors are returned as they are.
func reportParamsError(w io.Writer, err error) error {
	var pe *params.Error
	if !errors.As(err, &pe) {
		return err
	}
	if err := encode.Encode(pe.Node(), w, encode.EncodeWire(true)); err != nil {
		return err
	}
	return cli.ExitCodeErr(2)
}

func lookup(cfg *GetConfig, q, name string) (*ir.Node, error) {
	node, err := query.DecodeString(q, cfg.decodeOpts()...)
	if err != nil {
		return nil, params.FromDecodeError(err)
	}
	if _, err := params.Object(node); err != nil {
		return nil, err
	}
	if cfg.Type != nil {
		return params.Require(node, name, *cfg.Type)
	}
	res, ok := params.Lookup(node, name)
	if !ok {
		return nil, &params.Error{Code: params.CodeMissing, Names: []string{name}}
	}
	return res, nil
}
