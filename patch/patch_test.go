package patch

import (
	"errors"
	"testing"

	"github.com/signadot/structq/encode"
	"github.com/signadot/structq/parse"
	"github.com/signadot/structq/query"
)

func wire(t *testing.T, s string) string {
	t.Helper()
	node, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return encode.MustString(node, encode.EncodeWire(true))
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		overlay string
		want    string
	}{
		{
			name:    "defaults",
			base:    `{"size": 20, "page": 1, "sort": {"by": "name", "desc": false}}`,
			overlay: "n:size=50&u:page=&b:sort[desc]=true&filter[]=x",
			want:    `{"size":50,"sort":{"by":"name","desc":true},"filter":["x"]}`,
		},
		{
			name:    "big numbers",
			base:    `{"a": 1}`,
			overlay: "n:b=123456789012345678901234567890",
			want:    `{"a":1,"b":123456789012345678901234567890}`,
		},
		{
			name:    "array replaces object",
			base:    `{"a": {"x": 1}}`,
			overlay: "a[]=1",
			want:    `{"a":["1"]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, err := parse.ParseString(tt.base)
			if err != nil {
				t.Fatal(err)
			}
			overlay, err := query.DecodeString(tt.overlay)
			if err != nil {
				t.Fatal(err)
			}
			res, err := Merge(base, overlay)
			if err != nil {
				t.Fatal(err)
			}
			if got := encode.MustString(res, encode.EncodeWire(true)); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMergeScalarOverlay(t *testing.T) {
	base, _ := parse.ParseString(`{"a": 1}`)
	overlay, _ := query.DecodeString("^n:=5")
	if _, err := Merge(base, overlay); !errors.Is(err, ErrMerge) {
		t.Errorf("expected ErrMerge, got %v", err)
	}
}

func TestApply(t *testing.T) {
	doc, err := query.DecodeString("b=1&a[]=x&a[]=y")
	if err != nil {
		t.Fatal(err)
	}
	ops, err := parse.ParseString(`[
  {"op": "add", "path": "/a/-", "value": "z"},
  {"op": "replace", "path": "/b", "value": 2},
  {"op": "add", "path": "/c", "value": {"d": null}}
]`)
	if err != nil {
		t.Fatal(err)
	}
	res, err := Apply(doc, ops)
	if err != nil {
		t.Fatal(err)
	}
	want := wire(t, `{"b": 2, "a": ["x", "y", "z"], "c": {"d": null}}`)
	if got := encode.MustString(res, encode.EncodeWire(true)); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestApplyErrors(t *testing.T) {
	doc, _ := query.DecodeString("a=1")
	for _, s := range []string{
		`{"op": "add"}`,
		`[{"op": "remove", "path": "/missing"}]`,
		`[{"op": "test", "path": "/a", "value": "2"}]`,
	} {
		ops, err := parse.ParseString(s)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := Apply(doc, ops); !errors.Is(err, ErrPatch) {
			t.Errorf("%s: expected ErrPatch, got %v", s, err)
		}
	}
}
