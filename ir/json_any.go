package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
)

// ToAny converts node to the values produced by encoding/json when
// decoding into an any: map[string]any, []any, string, bool, nil and
// numbers. Integers which fit are int64, other integer literals are
// json.Number.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny is the inverse of ToAny.  Maps are given sorted keys since they
// carry no order of their own.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i), nil
		}
		if f, err := x.Float64(); err == nil && !math.IsInf(f, 0) {
			if _, ok := bigInt(string(x)); !ok {
				return FromFloat(f), nil
			}
		}
		return FromNumber(string(x)), nil
	case []any:
		vals := make([]*Node, len(x))
		for i := range x {
			elt, err := FromAny(x[i])
			if err != nil {
				return nil, err
			}
			vals[i] = elt
		}
		return FromSlice(vals), nil
	case []*Node:
		return FromSlice(x), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		kvs := make([]KeyVal, len(keys))
		for i, k := range keys {
			elt, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			kvs[i] = KeyVal{Key: k, Val: elt}
		}
		return FromKeyVals(kvs), nil
	case map[string]*Node:
		return FromMap(x), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

func fromUint(u uint64) *Node {
	if u <= math.MaxInt64 {
		return FromInt(int64(u))
	}
	return FromNumber(strconv.FormatUint(u, 10))
}
