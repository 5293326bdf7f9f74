package parse

import (
	"errors"
	"testing"

	"github.com/signadot/structq/encode"
	"github.com/signadot/structq/query"
)

type parseTest struct {
	in   string
	opts []ParseOption
	want string
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `null`, want: `null`},
		{in: `true`, want: `true`},
		{in: `22`, want: `22`},
		{in: `-3`, want: `-3`},
		{in: `2.5`, want: `2.5`},
		{in: `"hello"`, want: `"hello"`},
		{in: `hello`, want: `"hello"`},
		{in: `[a, [b, [c]]]`, want: `["a",["b",["c"]]]`},
		{in: `{"z": 1, "a": {"y": [], "b": {}}}`, want: `{"z":1,"a":{"y":[],"b":{}}}`},
		{in: "z: 1\na:\n  - x\n  - 0: zero\n", want: `{"z":1,"a":["x",{"0":"zero"}]}`},
		{in: `{"a": 1}`, opts: []ParseOption{ParseJSON()}, want: `{"a":1}`},
		{in: "b=2&a[]=x", opts: []ParseOption{ParseQuery()}, want: `{"b":"2","a":["x"]}`},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			node, err := Parse([]byte(pt.in), pt.opts...)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got := encode.MustString(node, encode.EncodeWire(true)); got != pt.want {
				t.Errorf("got %s, want %s", got, pt.want)
			}
		})
	}
}

func TestBadParse(t *testing.T) {
	for _, in := range []string{`[a`, `{a: 1`, "a: [b\n"} {
		if _, err := ParseString(in); !errors.Is(err, ErrParse) {
			t.Errorf("%q: expected ErrParse, got %v", in, err)
		}
	}
}

func TestParseQueryOptions(t *testing.T) {
	_, err := ParseString("a=1&b=2", ParseQuery(), ParseDecodeOptions(query.MaxPairs(1)))
	if !errors.Is(err, query.ErrTooManyPairs) {
		t.Errorf("expected ErrTooManyPairs, got %v", err)
	}
}
