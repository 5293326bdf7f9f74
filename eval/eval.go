package eval

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/structq/ir"
	"github.com/signadot/structq/query"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrEval = errors.New("eval error")

// RootName is the variable holding the whole value.  It shadows a member
// of the same name, which remains reachable with lookup.
const RootName = "root"

// Env is the variable map handed to expr, which requires the unnamed map
// type.
type Env = map[string]any

// NewEnv returns the variables of expressions over v.
func NewEnv(v *ir.Node) Env {
	env := Env{}
	if v.Type == ir.ObjectType {
		for i := range v.Fields {
			env[v.Fields[i].String] = ir.ToAny(v.Values[i])
		}
	}
	env[RootName] = ir.ToAny(v)
	return env
}

// Compile compiles expression for evaluation over v.
func Compile(expression string, v *ir.Node) (*vm.Program, Env, error) {
	env := NewEnv(v)
	opts := append([]expr.Option{expr.Env(env)}, exprOpts(v)...)
	prg, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return prg, env, nil
}

// Eval evaluates expression over v.
func Eval(expression string, v *ir.Node) (*ir.Node, error) {
	prg, env, err := Compile(expression, v)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	node, err := ir.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrEval, expression, err)
	}
	return node, nil
}

// Match evaluates expression over v and reports whether the result is
// truthy.
func Match(expression string, v *ir.Node) (bool, error) {
	res, err := Eval(expression, v)
	if err != nil {
		return false, err
	}
	return ir.Truth(res), nil
}

// Get returns the member of v at path, a key in bracket syntax without a
// directive, or nil if there is none.
func Get(v *ir.Node, path string) (*ir.Node, error) {
	k, err := query.ParseKey(path)
	if err != nil {
		return nil, err
	}
	if k.Directive != "" {
		return nil, fmt.Errorf("%w: path %q has a directive", ErrEval, path)
	}
	cur := v
	for _, c := range k.Path {
		cur = member(cur, c)
		if cur == nil {
			return nil, nil
		}
	}
	return cur, nil
}

func member(v *ir.Node, c query.Component) *ir.Node {
	switch v.Type {
	case ir.ObjectType:
		return ir.Get(v, c.Text)
	case ir.ArrayType:
		if c.Quoted || !ir.IsIndex(c.Text) {
			return nil
		}
		i := 0
		for _, d := range c.Text {
			i = i*10 + int(d-'0')
			if i >= len(v.Values) {
				return nil
			}
		}
		return v.Values[i]
	}
	return nil
}

func exprOpts(v *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("lookup", func(params ...any) (any, error) {
			res, err := Get(v, params[0].(string))
			if err != nil || res == nil {
				return nil, err
			}
			return ir.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			res, err := Get(v, params[0].(string))
			if err != nil {
				return nil, err
			}
			return res != nil, nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
