package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input file format: json/j, yaml/y, query/q",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y, query/q",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "qs").
		WithSynopsis("qs [opts] command [opts]").
		WithDescription(qsDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return qsMain(cfg, cc, args)
		}).
		WithSubs(
			DecodeCommand(cfg),
			EncodeCommand(cfg),
			DiffCommand(cfg),
			MergeCommand(cfg),
			PatchCommand(cfg),
			EvalCommand(cfg),
			GetCommand(cfg))
}

const qsDescription = `qs decodes structured query strings.

Keys use bracket syntax to build nested values and an optional directive
to type the value:

  a=1&a=2            {"a": ["1", "2"]}
  a[]=x              {"a": ["x"]}
  a[1]=y&a[0]=x      {"a": ["x", "y"]}
  a["0"]=x           {"a": {"0": "x"}}
  n:a=1&b:c=true     {"a": 1, "c": true}
  ^n:=5              5

Directives: n number, b boolean, u null, a empty array, o empty object.
Debug output is enabled with QS_DEBUG_KEYS, QS_DEBUG_COERCE, QS_DEBUG_TREE
and QS_DEBUG_OVERRIDE.`

func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("decode").
		WithAliases("d", "de").
		WithSynopsis("decode [-pairs] [query...]").
		WithDescription("decode query strings, joined with '&', or stdin").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return decode(cfg, cc, args)
		})
	cfg.Decode = cmd
	return cmd
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Encode, "encode").
		WithAliases("e", "en").
		WithSynopsis("encode [files]").
		WithDescription("encode json or yaml documents as query strings").
		WithRun(func(cc *cli.Context, args []string) error {
			return encodeFiles(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("di").
		WithOpts(opts...).
		WithSynopsis("diff [-context n] <query1> <query2>").
		WithDescription("diff decoded query strings, exiting with status 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge <defaults-file> [query...]").
		WithDescription("merge a decoded query over defaults; null members remove defaults").
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch <ops-file> [query...]").
		WithDescription("apply json patch operations to a decoded query").
		WithRun(func(cc *cli.Context, args []string) error {
			return patchQuery(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("eval").
		WithAliases("ev").
		WithSynopsis("eval [-m] <expr> [query...]").
		WithDescription("evaluate an expression over a decoded query").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalQuery(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		&cli.Opt{
			Name:        "type",
			Description: "required type: null, number, string, bool, object, array",
			Type:        cli.NamedFuncOpt(cfg.typeOpt, "(type)"),
		},
	}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get [-type t] <name> [query...]").
		WithDescription("get a named parameter, reporting missing or malformed ones").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}
