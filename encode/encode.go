package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/structq/format"
	"github.com/signadot/structq/ir"
	"github.com/signadot/structq/query"

	"github.com/goccy/go-yaml"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		if err := encodeJSON(node, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	case format.QueryFormat:
		pairs, err := query.Encode(node)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return writeString(w, queryString(pairs, es)+"\n")
	default:
		return fmt.Errorf("%w: unsupported format %s", ErrEncoding, es.format)
	}
}

// Helper functions for writing
func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return writeString(w, applyValueColor(es, ir.StringType, quoteString(node.String)))
	case ir.NumberType:
		s, err := numberString(node)
		if err != nil {
			return err
		}
		return writeString(w, applyValueColor(es, ir.NumberType, s))
	case ir.BoolType:
		return writeString(w, applyValueColor(es, ir.BoolType, strconv.FormatBool(node.Bool)))
	case ir.NullType:
		return writeString(w, applyValueColor(es, ir.NullType, "null"))
	default:
		return fmt.Errorf("%w: unknown type %s", ErrEncoding, node.Type)
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Fields)
	if n == 0 {
		return writeString(w, applyColor(es, ir.ObjectType, SepColor, "{}"))
	}
	if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i := range n {
		if i > 0 {
			if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, node.Fields[i].String, es); err != nil {
			return err
		}
		if err := encodeJSON(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.ObjectType, SepColor, "}"))
}

func writeField(w io.Writer, f string, es *EncState) error {
	sep := ": "
	if es.wire {
		sep = ":"
	}
	return writeString(w, applyColor(es, ir.ObjectType, FieldColor, quoteString(f))+
		applyColor(es, ir.ObjectType, SepColor, sep))
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Values)
	if n == 0 {
		return writeString(w, applyColor(es, ir.ArrayType, SepColor, "[]"))
	}
	if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, elt := range node.Values {
		if i > 0 {
			if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeJSON(elt, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.ArrayType, SepColor, "]"))
}

// numberString formats floats with a decimal point or exponent so that
// they read back as floats.
func numberString(node *ir.Node) (string, error) {
	switch {
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10), nil
	case node.Float64 != nil:
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: non-finite number %v", ErrEncoding, f)
		}
		fmat := byte('f')
		if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
			fmat = 'e'
		}
		s := strconv.FormatFloat(f, fmat, -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s, nil
	case node.Number != "":
		return node.Number, nil
	}
	return "", fmt.Errorf("%w: empty number", ErrEncoding)
}

const hexDigits = "0123456789abcdef"

// quoteString quotes v as a JSON string without escaping HTML characters.
func quoteString(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); {
		c := v[i]
		if c < utf8.RuneSelf {
			switch c {
			case '"', '\\':
				b.WriteByte('\\')
				b.WriteByte(c)
			case '\n':
				b.WriteString(`\n`)
			case '\r':
				b.WriteString(`\r`)
			case '\t':
				b.WriteString(`\t`)
			default:
				if c < 0x20 {
					b.WriteString(`\u00`)
					b.WriteByte(hexDigits[c>>4])
					b.WriteByte(hexDigits[c&0xf])
				} else {
					b.WriteByte(c)
				}
			}
			i++
			continue
		}
		r, sz := utf8.DecodeRuneInString(v[i:])
		switch {
		case r == utf8.RuneError && sz == 1:
			b.WriteString(`\ufffd`)
		case r == '\u2028' || r == '\u2029':
			b.WriteString(`\u202`)
			b.WriteByte(hexDigits[r&0xf])
		default:
			b.WriteString(v[i : i+sz])
		}
		i += sz
	}
	b.WriteByte('"')
	return b.String()
}

// queryString formats pairs, colouring each pair by the type its
// directive produces.
func queryString(pairs []query.Pair, es *EncState) string {
	if es.Color == nil {
		return query.FormatQuery(pairs)
	}
	var b strings.Builder
	for i := range pairs {
		if i > 0 {
			b.WriteString(applyColor(es, ir.ObjectType, SepColor, "&"))
		}
		k, v, _ := strings.Cut(query.FormatQuery(pairs[i:i+1]), "=")
		t := ir.StringType
		if key, err := query.ParseKey(pairs[i].Key); err == nil && key.Directive != "" {
			t = directiveType(key.Directive)
			if rest, ok := strings.CutPrefix(k, key.Directive+":"); ok {
				b.WriteString(applyColor(es, t, DirectiveColor, key.Directive+":"))
				k = rest
			}
		}
		b.WriteString(applyColor(es, ir.ObjectType, FieldColor, k))
		b.WriteString(applyColor(es, ir.ObjectType, SepColor, "="))
		b.WriteString(applyValueColor(es, t, v))
	}
	return b.String()
}

func directiveType(dir string) ir.Type {
	switch strings.TrimPrefix(dir, query.OverrideMarker) {
	case query.DirectiveNull:
		return ir.NullType
	case query.DirectiveNumber:
		return ir.NumberType
	case query.DirectiveBool:
		return ir.BoolType
	case query.DirectiveArray:
		return ir.ArrayType
	case query.DirectiveObject:
		return ir.ObjectType
	}
	return ir.StringType
}

// yamlNumber carries an integer literal which fits no Go number type.
type yamlNumber string

func (n yamlNumber) MarshalYAML() ([]byte, error) {
	return []byte(n), nil
}

func toYAML(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			v, err := toYAML(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: node.Fields[i].String, Value: v}
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := toYAML(elt)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64, nil
		case node.Float64 != nil:
			return *node.Float64, nil
		}
		return yamlNumber(node.Number), nil
	case ir.StringType:
		return node.String, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NullType:
		return nil, nil
	}
	return nil, fmt.Errorf("%w: unknown type %s", ErrEncoding, node.Type)
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := toYAML(node)
	if err != nil {
		return err
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(es.indent))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}
