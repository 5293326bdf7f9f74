package main

import (
	"fmt"
	"io"

	"github.com/signadot/structq/ir"
	"github.com/signadot/structq/query"

	"github.com/scott-cotton/cli"
)

func encodeFiles(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		node, err := getObjFile(cc, file, cfg.parseOpts(file)...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := encodeNode(cc.Out, node); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

func encodeNode(w io.Writer, node *ir.Node) error {
	s, err := query.EncodeString(node)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}
