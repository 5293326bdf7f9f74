package libdiff

import (
	"strings"

	"github.com/signadot/structq/encode"
	"github.com/signadot/structq/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

// Edit is one line of a diff.  Line has no trailing newline.
type Edit struct {
	Op   Op
	Line string
}

// Diff returns the line edits turning the JSON rendering of from into that
// of to.  A nil node renders as no lines.
func Diff(from, to *ir.Node) []Edit {
	return DiffText(render(from), render(to))
}

// DiffText is Diff on already rendered text.
func DiffText(from, to string) []Edit {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []Edit
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, line := range splitLines(d.Text) {
			res = append(res, Edit{Op: op, Line: line})
		}
	}
	return res
}

// Changed reports whether edits contains anything other than equal lines.
func Changed(edits []Edit) bool {
	for i := range edits {
		if edits[i].Op != Equal {
			return true
		}
	}
	return false
}

func render(node *ir.Node) string {
	if node == nil {
		return ""
	}
	return encode.MustString(node) + "\n"
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
