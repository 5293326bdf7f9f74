package query

import (
	"fmt"
	"strings"

	"github.com/signadot/structq/ir"
)

// entry is a coerced value together with the part of its path which is
// yet to be consumed.
type entry struct {
	path []Component
	leaf *ir.Node
}

// tree groups entries by their first path component.
type tree struct {
	// leaves holds values whose path ended at this node, in arrival order.
	leaves   []*ir.Node
	branches []*branch
	index    map[string]int
}

// branch is one keyed member of a tree.  quoted is set if any occurrence of
// text was quoted.
type branch struct {
	text    string
	quoted  bool
	entries []entry
	child   *tree
}

func buildTree(entries []entry) *tree {
	t := &tree{index: map[string]int{}}
	for _, e := range entries {
		if len(e.path) == 0 {
			t.leaves = append(t.leaves, e.leaf)
			continue
		}
		head := e.path[0]
		i, ok := t.index[head.Text]
		if !ok {
			i = len(t.branches)
			t.index[head.Text] = i
			t.branches = append(t.branches, &branch{text: head.Text})
		}
		b := t.branches[i]
		b.quoted = b.quoted || head.Quoted
		b.entries = append(b.entries, entry{path: e.path[1:], leaf: e.leaf})
	}
	for _, b := range t.branches {
		b.child = buildTree(b.entries)
		b.entries = nil
	}
	return t
}

func (t *tree) String() string {
	buf := &strings.Builder{}
	t.dump(buf, 0)
	return buf.String()
}

func (t *tree) dump(buf *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, leaf := range t.leaves {
		fmt.Fprintf(buf, "%s= %s\n", indent, leafString(leaf))
	}
	for _, b := range t.branches {
		q := ""
		if b.quoted {
			q = " (quoted)"
		}
		fmt.Fprintf(buf, "%s[%q]%s\n", indent, b.text, q)
		b.child.dump(buf, depth+1)
	}
}

func leafString(leaf *ir.Node) string {
	switch leaf.Type {
	case ir.StringType:
		return fmt.Sprintf("%q", leaf.String)
	case ir.NumberType:
		return leaf.NumberText()
	case ir.BoolType:
		return fmt.Sprintf("%t", leaf.Bool)
	case ir.NullType:
		return "null"
	case ir.ArrayType:
		return "[]"
	default:
		return "{}"
	}
}
