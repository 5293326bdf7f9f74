package ir

import (
	"cmp"
	"math"
	"math/big"
	"slices"
	"strings"
)

// typeOrder ranks types for Compare.
var typeOrder = [...]Type{NullType, BoolType, NumberType, StringType, ArrayType, ObjectType}

// Compare orders nodes first by type (null, bool, number, string, array,
// object) and then by content.  Numbers compare by value whatever their
// representation; equal values order int64, then float64, then literal.
// Arrays and objects compare element-wise in order, so two objects with the
// same members in a different order are not equal.
func Compare(a, b *Node) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := cmp.Compare(typeRank(a.Type), typeRank(b.Type)); c != 0 {
		return c
	}
	switch a.Type {
	case BoolType:
		return cmpBool(a.Bool, b.Bool)
	case NumberType:
		if c := cmpNumberValue(a, b); c != 0 {
			return c
		}
		return cmp.Compare(numberRepr(a), numberRepr(b))
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return slices.CompareFunc(a.Values, b.Values, Compare)
	case ObjectType:
		return compareMembers(a, b)
	}
	return 0
}

// Equal reports whether a and b have the same type, values and member order.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func typeRank(t Type) int {
	if i := slices.Index(typeOrder[:], t); i >= 0 {
		return i
	}
	return len(typeOrder)
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}

func numberRepr(n *Node) int {
	switch {
	case n.Int64 != nil:
		return 0
	case n.Float64 != nil:
		return 1
	}
	return 2
}

func cmpNumberValue(a, b *Node) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	if a.Float64 != nil && b.Float64 != nil {
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	fa, okA := numberFloat(a)
	fb, okB := numberFloat(b)
	switch {
	case okA && okB:
		return fa.Cmp(fb)
	case okA != okB:
		// NaN and unreadable literals sort first.
		if okA {
			return 1
		}
		return -1
	}
	return strings.Compare(a.Number, b.Number)
}

func numberFloat(n *Node) (*big.Float, bool) {
	switch {
	case n.Int64 != nil:
		return new(big.Float).SetInt64(*n.Int64), true
	case n.Float64 != nil:
		if math.IsNaN(*n.Float64) {
			return nil, false
		}
		return big.NewFloat(*n.Float64), true
	}
	if i, ok := bigInt(n.Number); ok {
		return new(big.Float).SetInt(i), true
	}
	f, _, err := big.ParseFloat(n.Number, 10, 256, big.ToNearestEven)
	return f, err == nil
}

// compareMembers compares member by member, names before values.
func compareMembers(a, b *Node) int {
	n := min(len(a.Fields), len(b.Fields))
	for i := range n {
		if c := strings.Compare(a.Fields[i].String, b.Fields[i].String); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Fields), len(b.Fields))
}
