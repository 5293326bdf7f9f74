package query

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/signadot/structq/debug"
	"github.com/signadot/structq/ir"
)

// Pair is one raw key/value pair, as it appears after percent-decoding.
type Pair struct {
	Key   string
	Value string
}

// Decode builds a structured value from pairs.  The order of pairs is
// significant: it determines object member order, the order of repeated
// values and which override applies.
func Decode(pairs []Pair, opts ...DecodeOption) (*ir.Node, error) {
	ds := newDecState(opts)
	if ds.maxPairs > 0 && len(pairs) > ds.maxPairs {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManyPairs, len(pairs), ds.maxPairs)
	}
	keys := make([]Key, len(pairs))
	for i := range pairs {
		keys[i] = parseKeyOrLiteral(pairs[i].Key)
	}
	if res, ok, err := ds.override(pairs, keys); ok {
		return res, err
	}
	entries := make([]entry, len(pairs))
	for i := range pairs {
		k := keys[i]
		if ds.maxDepth > 0 && len(k.Path) > ds.maxDepth {
			return nil, fmt.Errorf("%w: key %q has %d components, limit %d",
				ErrTooDeep, pairs[i].Key, len(k.Path), ds.maxDepth)
		}
		leaf, err := ds.coerce(pairs[i], k.Directive)
		if err != nil {
			return nil, err
		}
		entries[i] = entry{path: k.Path, leaf: leaf}
	}
	t := buildTree(entries)
	if debug.Tree() {
		debug.Logf("tree:\n%s", t)
	}
	return simplify(t), nil
}

// override finds the first pair whose directive carries the override
// marker and coerces its value alone.
func (ds *decState) override(pairs []Pair, keys []Key) (*ir.Node, bool, error) {
	for i := range keys {
		dir, ok := strings.CutPrefix(keys[i].Directive, OverrideMarker)
		if !ok {
			continue
		}
		if debug.Override() {
			debug.Logf("override from key %q\n", pairs[i].Key)
		}
		res, err := ds.coerce(pairs[i], dir)
		return res, true, err
	}
	return nil, false, nil
}

func (ds *decState) coerce(p Pair, directive string) (*ir.Node, error) {
	c, known := lookupCoercer(directive)
	if !known && ds.strict {
		return nil, fmt.Errorf("%w %q in key %q", ErrUnknownDirective, directive, p.Key)
	}
	leaf, err := c(p.Value)
	if err != nil {
		return nil, &CoerceError{Key: p.Key, Directive: directive, Value: p.Value, Err: err}
	}
	if debug.Coerce() {
		debug.Logf("%q: %q -> %v\n", p.Key, p.Value, leaf)
	}
	return leaf, nil
}

// DecodeString decodes form-encoded text such as a URL's raw query.
func DecodeString(q string, opts ...DecodeOption) (*ir.Node, error) {
	if !utf8.ValidString(q) {
		return nil, ErrEncoding
	}
	return Decode(ParseQuery(q), opts...)
}

// DecodeBytes decodes form-encoded UTF-8 text such as a request body.
func DecodeBytes(d []byte, opts ...DecodeOption) (*ir.Node, error) {
	if !utf8.Valid(d) {
		return nil, ErrEncoding
	}
	return Decode(ParseQuery(string(d)), opts...)
}

// DecodeValues decodes v.  Since v does not record the order of distinct
// keys, they are taken in sorted order; values of one key keep their order.
func DecodeValues(v url.Values, opts ...DecodeOption) (*ir.Node, error) {
	var pairs []Pair
	for _, k := range slices.Sorted(maps.Keys(v)) {
		for _, val := range v[k] {
			pairs = append(pairs, Pair{Key: k, Value: val})
		}
	}
	return Decode(pairs, opts...)
}
