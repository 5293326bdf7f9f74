// Package params reads named parameters out of a decoded query and reports
// missing or malformed ones with stable error codes.
package params

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/signadot/structq/eval"
	"github.com/signadot/structq/gomap"
	"github.com/signadot/structq/ir"
	"github.com/signadot/structq/query"
)

const (
	CodeMissing = "parameter_missing"
	CodeFormat  = "invalid_parameter_format"
)

var (
	ErrMissing = errors.New("parameter missing")
	ErrFormat  = errors.New("invalid parameter format")
)

// Error names the parameters a request got wrong.  Names may be empty when
// the query as a whole is malformed.
type Error struct {
	Code  string
	Names []string
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeMissing:
		return fmt.Sprintf("%s: %s", ErrMissing, strings.Join(e.Names, ", "))
	default:
		if len(e.Names) == 0 {
			return ErrFormat.Error()
		}
		return fmt.Sprintf("%s: %s", ErrFormat, strings.Join(e.Names, ", "))
	}
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrMissing:
		return e.Code == CodeMissing
	case ErrFormat:
		return e.Code == CodeFormat
	}
	return false
}

// StatusCode is the HTTP status for e.
func (e *Error) StatusCode() int {
	return http.StatusBadRequest
}

// Node renders e as a response body: {"code": ..., "payload": {...}}.
func (e *Error) Node() *ir.Node {
	key := "format_error_parameters"
	if e.Code == CodeMissing {
		key = "missing_parameters"
	}
	names := make([]*ir.Node, len(e.Names))
	for i, n := range e.Names {
		names[i] = ir.FromString(n)
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "code", Val: ir.FromString(e.Code)},
		{Key: "payload", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: key, Val: ir.FromSlice(names)},
		})},
	})
}

func missing(names ...string) *Error {
	return &Error{Code: CodeMissing, Names: names}
}

func badFormat(names ...string) *Error {
	return &Error{Code: CodeFormat, Names: names}
}

// Object checks that v is an object, as a set of named parameters must be.
func Object(v *ir.Node) (*ir.Node, error) {
	if v == nil || v.Type != ir.ObjectType {
		return nil, badFormat()
	}
	return v, nil
}

// Lookup returns the member of v at name, if any.  Name may be a bracket
// path such as `filter[age]`; a name which does not parse as one is taken
// as a plain member name.
func Lookup(v *ir.Node, name string) (*ir.Node, bool) {
	res, err := eval.Get(v, name)
	if err != nil {
		res = ir.Get(v, name)
	}
	return res, res != nil
}

// Require returns the member of v at name, which must exist and have type
// t.  A format error names the member by its canonical path.
func Require(v *ir.Node, name string, t ir.Type) (*ir.Node, error) {
	res, ok := Lookup(v, name)
	if !ok {
		return nil, missing(name)
	}
	if res.Type != t {
		return nil, badFormat(memberPath(res, name))
	}
	return res, nil
}

func memberPath(res *ir.Node, name string) string {
	if p := res.Path(); p != "" {
		return p
	}
	return name
}

// String is Require for a string member.
func String(v *ir.Node, name string) (string, error) {
	res, err := Require(v, name, ir.StringType)
	if err != nil {
		return "", err
	}
	return res.String, nil
}

// Optional returns the member name of v if it has type t and nil
// otherwise.
func Optional(v *ir.Node, name string, t ir.Type) *ir.Node {
	res, ok := Lookup(v, name)
	if !ok || res.Type != t {
		return nil
	}
	return res
}

// Bind stores the members of v in the struct pointed to by p using its
// json tags.  A member of the wrong type is reported with ErrFormat.
func Bind(v *ir.Node, p any) error {
	if _, err := Object(v); err != nil {
		return err
	}
	err := gomap.FromIR(v, p)
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		name, _, _ := strings.Cut(te.Field, ".")
		if name == "" {
			return badFormat()
		}
		return badFormat(name)
	}
	return err
}

// FromDecodeError classifies an error from the query decoder.  A value
// which failed coercion names its parameter; other errors name none.
func FromDecodeError(err error) *Error {
	if err == nil {
		return nil
	}
	var pe *Error
	if errors.As(err, &pe) {
		return pe
	}
	var ce *query.CoerceError
	if errors.As(err, &ce) {
		return badFormat(parameterName(ce.Key))
	}
	return badFormat()
}

// parameterName is the top level member named by a raw key.
func parameterName(raw string) string {
	k, err := query.ParseKey(raw)
	if err != nil {
		return raw
	}
	return k.Path[0].Text
}
