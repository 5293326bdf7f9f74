package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/structq/query"

	"github.com/scott-cotton/cli"
)

func decode(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		return err
	}
	if !cfg.Pairs {
		node, err := decodeArgs(cfg.MainConfig, cc, args)
		if err != nil {
			return err
		}
		return cfg.output(cc, node)
	}
	pairs, err := readPairs(cc, args)
	if err != nil {
		return err
	}
	node, err := query.Decode(pairs, cfg.decodeOpts()...)
	if err != nil {
		return err
	}
	return cfg.output(cc, node)
}

// readPairs reads one key=value pair per line from files, or stdin when
// there are none.  Blank lines are skipped.
func readPairs(cc *cli.Context, files []string) ([]query.Pair, error) {
	if len(files) == 0 {
		return scanPairs(cc.In, "stdin")
	}
	var res []query.Pair
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		pairs, err := scanPairs(f, file)
		f.Close()
		if err != nil {
			return nil, err
		}
		res = append(res, pairs...)
	}
	return res, nil
}

func scanPairs(r io.Reader, name string) ([]query.Pair, error) {
	var res []query.Pair
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		k, v, _ := strings.Cut(line, "=")
		res = append(res, query.Pair{Key: k, Value: v})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}
	return res, nil
}
