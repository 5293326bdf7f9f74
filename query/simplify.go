package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/signadot/structq/ir"
)

// simplify collapses t into a value.  The rules apply in order:
//
//  1. values ending at t: a single one is the result, several form an array
//  2. a quoted member makes t an object
//  3. a lone `[]` member makes t an array
//  4. members which are all decimal indices make t an array sorted by index
//  5. otherwise t is an object
func simplify(t *tree) *ir.Node {
	switch {
	case len(t.leaves) == 1:
		return t.leaves[0]
	case len(t.leaves) > 1:
		return ir.FromSlice(t.leaves)
	case t.anyQuoted():
		return t.object()
	case t.appendOnly():
		child := t.branches[0].child
		if len(child.leaves) != 0 {
			return ir.FromSlice(child.leaves)
		}
		return ir.FromSlice([]*ir.Node{simplify(child)})
	case t.indexed():
		return t.array()
	default:
		return t.object()
	}
}

func (t *tree) anyQuoted() bool {
	return slices.ContainsFunc(t.branches, func(b *branch) bool { return b.quoted })
}

func (t *tree) appendOnly() bool {
	return len(t.branches) == 1 && t.branches[0].text == ""
}

func (t *tree) indexed() bool {
	if len(t.branches) == 0 {
		return false
	}
	for _, b := range t.branches {
		if !ir.IsIndex(b.text) {
			return false
		}
	}
	return true
}

func (t *tree) array() *ir.Node {
	sorted := slices.Clone(t.branches)
	slices.SortStableFunc(sorted, func(a, b *branch) int {
		return compareIndex(a.text, b.text)
	})
	vals := make([]*ir.Node, len(sorted))
	for i, b := range sorted {
		vals[i] = simplify(b.child)
	}
	return ir.FromSlice(vals)
}

func (t *tree) object() *ir.Node {
	kvs := make([]ir.KeyVal, len(t.branches))
	for i, b := range t.branches {
		kvs[i] = ir.KeyVal{Key: b.text, Val: simplify(b.child)}
	}
	return ir.FromKeyVals(kvs)
}

// compareIndex orders decimal strings by value without bounding their size.
func compareIndex(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
