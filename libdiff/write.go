package libdiff

import (
	"fmt"
	"io"

	"github.com/signadot/structq/encode"
	"github.com/signadot/structq/ir"
)

// Write renders edits one line each, prefixed by their Op.  With context
// >= 0, runs of equal lines further than context lines from a change are
// elided with a "@@" marker.  c may be nil.
func Write(w io.Writer, edits []Edit, c *encode.Colors, context int) error {
	keep := visible(edits, context)
	elided := false
	for i, e := range edits {
		if !keep[i] {
			if !elided {
				if _, err := fmt.Fprintln(w, colorize(c, encode.SepColor, "@@")); err != nil {
					return err
				}
			}
			elided = true
			continue
		}
		elided = false
		line := e.Op.String() + " " + e.Line
		switch e.Op {
		case Insert:
			line = colorize(c, encode.InsertColor, line)
		case Delete:
			line = colorize(c, encode.DeleteColor, line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func colorize(c *encode.Colors, attr encode.ColorAttr, s string) string {
	if c == nil {
		return s
	}
	return c.Color(ir.StringType, attr, s)
}

func visible(edits []Edit, context int) []bool {
	res := make([]bool, len(edits))
	if context < 0 {
		for i := range res {
			res[i] = true
		}
		return res
	}
	for i, e := range edits {
		if e.Op == Equal {
			continue
		}
		for j := max(0, i-context); j <= min(len(edits)-1, i+context); j++ {
			res[j] = true
		}
	}
	return res
}
