package gomap

import (
	"encoding/json"

	"github.com/signadot/structq/ir"
	"github.com/signadot/structq/parse"
)

type IRToer interface {
	ToIR() (*ir.Node, error)
}

// ToIR converts v to a node.  Struct fields keep their declaration order.
func ToIR(v any) (*ir.Node, error) {
	if x, ok := v.(IRToer); ok {
		return x.ToIR()
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, parse.ParseJSON())
}
