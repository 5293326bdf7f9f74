package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/structq/ir"
	"github.com/signadot/structq/parse"
	"github.com/signadot/structq/query"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, opts...)
}

// readQuery joins args with '&', or reads stdin when there are none.
func readQuery(cc *cli.Context, args []string) (string, error) {
	if len(args) != 0 {
		return strings.Join(args, "&"), nil
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return strings.TrimRight(string(d), "\r\n"), nil
}

func decodeArgs(cfg *MainConfig, cc *cli.Context, args []string) (*ir.Node, error) {
	q, err := readQuery(cc, args)
	if err != nil {
		return nil, err
	}
	node, err := query.DecodeString(q, cfg.decodeOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", q, err)
	}
	return node, nil
}
