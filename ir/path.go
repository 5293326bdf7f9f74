package ir

import (
	"math/big"
	"strconv"
	"strings"
)

// Path returns the bracket path of y from its root, for example
// `items[0][name]`.  Field names which would otherwise read as an index,
// an append marker or contain bracket syntax are quoted.
func (y *Node) Path() string {
	if y.Parent == nil {
		return ""
	}
	prefix := y.Parent.Path()
	var seg string
	switch y.Parent.Type {
	case ObjectType:
		seg = PathField(y.ParentField)
	case ArrayType:
		seg = strconv.Itoa(y.ParentIndex)
	default:
		panic("parent but not in container")
	}
	if y.Parent.Parent == nil {
		return seg
	}
	return prefix + "[" + seg + "]"
}

// PathField renders a single field name as a path component.
func PathField(f string) string {
	if f != "" && !IsIndex(f) && strings.IndexAny(f, `"[]\`) == -1 {
		return f
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range f {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// IsIndex reports whether s is a non-empty run of ASCII digits.
func IsIndex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func bigInt(s string) (*big.Int, bool) {
	return new(big.Int).SetString(s, 10)
}
