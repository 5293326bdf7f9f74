package query

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/signadot/structq/ir"
)

// Encode renders v as pairs which Decode turns back into a value equal to
// v.  Scalars and empty arrays at the root use the override marker; an
// empty root object encodes as no pairs.
func Encode(v *ir.Node) ([]Pair, error) {
	switch v.Type {
	case ir.ObjectType:
		var (
			pairs []Pair
			err   error
		)
		for i, f := range v.Fields {
			pairs, err = encodeValue(pairs, []Component{memberComponent(f.String)}, v.Values[i])
			if err != nil {
				return nil, err
			}
		}
		return pairs, nil
	case ir.ArrayType:
		if len(v.Values) == 0 {
			return []Pair{{Key: OverrideMarker + DirectiveArray + ":"}}, nil
		}
		var (
			pairs []Pair
			err   error
		)
		for i, elt := range v.Values {
			pairs, err = encodeValue(pairs, []Component{indexComponent(i)}, elt)
			if err != nil {
				return nil, err
			}
		}
		return pairs, nil
	default:
		dir, text, err := leafText(v)
		if err != nil {
			return nil, err
		}
		return []Pair{{Key: OverrideMarker + dir + ":", Value: text}}, nil
	}
}

// EncodeString is Encode followed by FormatQuery.
func EncodeString(v *ir.Node) (string, error) {
	pairs, err := Encode(v)
	if err != nil {
		return "", err
	}
	return FormatQuery(pairs), nil
}

func encodeValue(pairs []Pair, path []Component, v *ir.Node) ([]Pair, error) {
	var err error
	switch v.Type {
	case ir.ObjectType:
		if len(v.Fields) == 0 {
			return append(pairs, leafPair(DirectiveObject, path, "")), nil
		}
		for i, f := range v.Fields {
			pairs, err = encodeValue(pairs, extend(path, memberComponent(f.String)), v.Values[i])
			if err != nil {
				return nil, err
			}
		}
		return pairs, nil
	case ir.ArrayType:
		if len(v.Values) == 0 {
			return append(pairs, leafPair(DirectiveArray, path, "")), nil
		}
		for i, elt := range v.Values {
			pairs, err = encodeValue(pairs, extend(path, indexComponent(i)), elt)
			if err != nil {
				return nil, err
			}
		}
		return pairs, nil
	default:
		dir, text, err := leafText(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", Key{Path: path}, err)
		}
		return append(pairs, leafPair(dir, path, text)), nil
	}
}

func leafPair(dir string, path []Component, text string) Pair {
	return Pair{Key: Key{Directive: dir, Path: path}.String(), Value: text}
}

func extend(path []Component, c Component) []Component {
	res := make([]Component, len(path)+1)
	copy(res, path)
	res[len(path)] = c
	return res
}

// memberComponent quotes object members which would otherwise be read as an
// index or as `[]`.
func memberComponent(name string) Component {
	return Component{Text: name, Quoted: name == "" || ir.IsIndex(name)}
}

func indexComponent(i int) Component {
	return Component{Text: strconv.Itoa(i)}
}

func leafText(v *ir.Node) (string, string, error) {
	switch v.Type {
	case ir.StringType:
		return DirectiveNone, v.String, nil
	case ir.BoolType:
		return DirectiveBool, strconv.FormatBool(v.Bool), nil
	case ir.NullType:
		return DirectiveNull, "", nil
	case ir.NumberType:
		switch {
		case v.Int64 != nil:
			return DirectiveNumber, strconv.FormatInt(*v.Int64, 10), nil
		case v.Float64 != nil:
			f := *v.Float64
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return "", "", fmt.Errorf("%w: non-finite number %v", ErrEncode, f)
			}
			s := strconv.FormatFloat(f, 'f', -1, 64)
			if !strings.Contains(s, ".") {
				s += ".0"
			}
			return DirectiveNumber, s, nil
		}
		if n, ok := new(big.Int).SetString(v.Number, 10); ok {
			return DirectiveNumber, n.String(), nil
		}
		return "", "", fmt.Errorf("%w: number literal %q", ErrEncode, v.Number)
	}
	return "", "", fmt.Errorf("%w: %s", ErrEncode, v.Type)
}
