package query

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/signadot/structq/ir"
)

const (
	DirectiveNone   = ""
	DirectiveNull   = "u"
	DirectiveNumber = "n"
	DirectiveArray  = "a"
	DirectiveObject = "o"
	DirectiveBool   = "b"

	// OverrideMarker prefixes a directive to make its value the whole
	// decoded result.
	OverrideMarker = "^"
)

// Coercer converts the raw text of a value into a leaf.
type Coercer func(text string) (*ir.Node, error)

// CoerceFunc returns the Coercer for directive.  Directives which are not
// recognised leave the text as a string.
func CoerceFunc(directive string) Coercer {
	c, _ := lookupCoercer(directive)
	return c
}

func lookupCoercer(directive string) (Coercer, bool) {
	switch directive {
	case DirectiveNone:
		return coerceString, true
	case DirectiveNull:
		return coerceNull, true
	case DirectiveNumber:
		return coerceNumber, true
	case DirectiveArray:
		return coerceArray, true
	case DirectiveObject:
		return coerceObject, true
	case DirectiveBool:
		return coerceBool, true
	}
	return coerceString, false
}

func coerceString(text string) (*ir.Node, error) {
	return ir.FromString(text), nil
}

func coerceNull(string) (*ir.Node, error) {
	return ir.Null(), nil
}

func coerceArray(string) (*ir.Node, error) {
	return ir.EmptyArray(), nil
}

func coerceObject(string) (*ir.Node, error) {
	return ir.EmptyObject(), nil
}

func coerceBool(text string) (*ir.Node, error) {
	switch text {
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	}
	return ir.FromString(text), nil
}

// coerceNumber reads a float when text has a decimal point and an integer
// otherwise.  Integers beyond int64 are kept as exact literals.  Underscore
// digit separators, hex floats and floats out of float64 range are
// rejected.
func coerceNumber(text string) (*ir.Node, error) {
	s := strings.TrimSpace(text)
	if strings.Contains(s, ".") {
		if strings.ContainsAny(s, "xX_") {
			return nil, fmt.Errorf("%w: %q", strconv.ErrSyntax, s)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return ir.FromFloat(f), nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return ir.FromInt(i), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		if n, ok := new(big.Int).SetString(s, 10); ok {
			return ir.FromNumber(n.String()), nil
		}
	}
	return nil, err
}
