package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/structq/encode"
	"github.com/signadot/structq/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var (
	ErrMerge = errors.New("merge error")
	ErrPatch = errors.New("patch error")
)

// Merge applies overlay to base as a JSON merge patch: members of overlay
// replace those of base recursively and null members remove them.  overlay
// must be an object or an array.
func Merge(base, overlay *ir.Node) (*ir.Node, error) {
	b, err := toJSON(base)
	if err != nil {
		return nil, fmt.Errorf("%w: base: %w", ErrMerge, err)
	}
	o, err := toJSON(overlay)
	if err != nil {
		return nil, fmt.Errorf("%w: overlay: %w", ErrMerge, err)
	}
	d, err := jsonpatch.MergePatch(b, o)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMerge, err)
	}
	res, err := fromJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMerge, err)
	}
	return restoreOrder(res, base, overlay), nil
}

// Apply applies ops, an array of RFC 6902 operations, to doc.
func Apply(doc, ops *ir.Node) (*ir.Node, error) {
	if ops.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: operations must be an array, got %s", ErrPatch, ops.Type)
	}
	o, err := toJSON(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: operations: %w", ErrPatch, err)
	}
	p, err := jsonpatch.DecodePatch(o)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := toJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: document: %w", ErrPatch, err)
	}
	d, err = p.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := fromJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return restoreOrder(res, doc), nil
}

func toJSON(node *ir.Node) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fromJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return ir.FromAny(v)
}

// restoreOrder reorders the members of res's objects to follow their order
// in hints, in turn.
func restoreOrder(res *ir.Node, hints ...*ir.Node) *ir.Node {
	switch res.Type {
	case ir.ObjectType:
		rank := map[string]int{}
		for _, h := range hints {
			if h == nil || h.Type != ir.ObjectType {
				continue
			}
			for _, f := range h.Fields {
				if _, ok := rank[f.String]; !ok {
					rank[f.String] = len(rank)
				}
			}
		}
		kvs := make([]ir.KeyVal, len(res.Fields))
		for i := range res.Fields {
			key := res.Fields[i].String
			sub := make([]*ir.Node, 0, len(hints))
			for _, h := range hints {
				if h != nil {
					sub = append(sub, ir.Get(h, key))
				}
			}
			kvs[i] = ir.KeyVal{Key: key, Val: restoreOrder(res.Values[i], sub...)}
		}
		// res comes with sorted members, so a stable sort keeps unranked
		// members sorted.
		slices.SortStableFunc(kvs, func(a, b ir.KeyVal) int {
			ra, okA := rank[a.Key]
			rb, okB := rank[b.Key]
			switch {
			case okA && okB:
				return ra - rb
			case okA:
				return -1
			case okB:
				return 1
			}
			return 0
		})
		return ir.FromKeyVals(kvs)
	case ir.ArrayType:
		vals := make([]*ir.Node, len(res.Values))
		for i, elt := range res.Values {
			sub := make([]*ir.Node, 0, len(hints))
			for _, h := range hints {
				if h != nil && h.Type == ir.ArrayType && i < len(h.Values) {
					sub = append(sub, h.Values[i])
				}
			}
			vals[i] = restoreOrder(elt, sub...)
		}
		return ir.FromSlice(vals)
	}
	return res
}
