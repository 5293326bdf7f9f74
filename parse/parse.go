package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/structq/format"
	"github.com/signadot/structq/ir"
	"github.com/signadot/structq/query"

	"github.com/goccy/go-yaml"
)

var ErrParse = errors.New("parse error")

// Parse reads d in the format selected by opts, YAML by default.  Since
// JSON is read as YAML, the two formats are interchangeable here.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.YAMLFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.QueryFormat:
		return query.DecodeBytes(d, pOpts.decodeOpts...)
	case format.JSONFormat, format.YAMLFormat:
	default:
		return nil, fmt.Errorf("%w: unsupported format %s", ErrParse, pOpts.format)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromYAML(v)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, item := range x {
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: keyString(item.Key), Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, elt := range x {
			val, err := fromYAML(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return node, nil
}

// keyString renders a YAML mapping key, which need not be a string.
func keyString(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	}
	return fmt.Sprint(k)
}
