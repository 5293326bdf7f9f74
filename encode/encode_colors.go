package encode

import (
	"github.com/signadot/structq/ir"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
	// DirectiveColor marks the `n:` style prefix of a query key.  It is
	// looked up with the type the directive produces.
	DirectiveColor
	InsertColor
	DeleteColor
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

var typePalette = map[ir.Type]color.Attribute{
	ir.NullType:   color.FgMagenta,
	ir.BoolType:   color.FgCyan,
	ir.NumberType: color.FgHiBlue,
	ir.StringType: color.FgGreen,
	ir.ArrayType:  color.FgYellow,
	ir.ObjectType: color.FgYellow,
}

// NewColors returns the default palette.  A type's value and directive
// share a hue, the directive in bold.
func NewColors() *Colors {
	c := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		c.set(t, SepColor, color.New(color.Faint))
		c.set(t, InsertColor, color.New(color.FgGreen))
		c.set(t, DeleteColor, color.New(color.FgRed))
		if hue, ok := typePalette[t]; ok {
			c.set(t, ValueColor, color.New(hue))
			c.set(t, DirectiveColor, color.New(hue, color.Bold))
		}
	}
	c.set(ir.ObjectType, FieldColor, color.New(color.FgHiCyan))
	return c
}

// set uses Sprint so that '%' in v is not read as a verb.
func (c *Colors) set(t ir.Type, a ColorAttr, col *color.Color) {
	c.Map[Colorable{Type: t, Attr: a}] = func(v string, _ ...any) string {
		return col.Sprint(v)
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
