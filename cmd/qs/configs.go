package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/structq/encode"
	"github.com/signadot/structq/format"
	"github.com/signadot/structq/ir"
	"github.com/signadot/structq/parse"
	"github.com/signadot/structq/query"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`
	Q bool `cli:"name=q aliases=query desc='output a query string'"`

	MaxPairs int  `cli:"name=max-pairs desc='maximum number of pairs to decode, 0 for no limit'"`
	MaxDepth int  `cli:"name=max-depth desc='maximum number of key components, 0 for no limit'"`
	Strict   bool `cli:"name=strict desc='reject unknown directives'"`
	Gops     bool `cli:"name=gops desc='start a gops agent'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) decodeOpts() []query.DecodeOption {
	res := []query.DecodeOption{
		query.MaxPairs(cfg.MaxPairs),
		query.MaxDepth(cfg.MaxDepth),
	}
	if cfg.Strict {
		res = append(res, query.StrictDirectives())
	}
	return res
}

// parseOpts are the options for reading path: -I if given, else the
// format its extension names, else yaml.
func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	fmat := format.YAMLFormat
	if f, ok := format.ForPath(path); ok {
		fmat = f
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{
		parse.ParseFormat(fmat),
		parse.ParseDecodeOptions(cfg.decodeOpts()...),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmt format.Format
	switch {
	case cfg.Y:
		fmt = format.YAMLFormat
	case cfg.Q:
		fmt = format.QueryFormat
	case cfg.J:
		fmt = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmt = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmt),
		encode.EncodeWire(cfg.WireOut),
	}
	if c := cfg.colors(w); c != nil {
		res = append(res, encode.EncodeColors(c))
	}
	return res
}

// colors returns the colors for w: always with -color, otherwise when w is
// a terminal and -color was not given as false.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return nil
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) output(cc *cli.Context, node *ir.Node) error {
	return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
}

type DecodeConfig struct {
	*MainConfig
	Pairs bool `cli:"name=pairs desc='read raw key=value lines, without percent-decoding'"`

	Decode *cli.Command
}

type EncodeConfig struct {
	*MainConfig

	Encode *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Context int `cli:"name=context desc='lines of context around changes, negative for all'"`

	Diff *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Match bool `cli:"name=m desc='exit with status 1 unless the result is truthy'"`

	Eval *cli.Command
}

type GetConfig struct {
	*MainConfig
	Type *ir.Type

	Get *cli.Command
}

func (cfg *GetConfig) typeOpt(_ *cli.Context, v string) (any, error) {
	var t ir.Type
	if err := t.UnmarshalText([]byte(v)); err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Type = &t
	return t, nil
}
