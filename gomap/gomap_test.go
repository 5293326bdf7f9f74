package gomap

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/structq/encode"
	"github.com/signadot/structq/ir"
	"github.com/signadot/structq/query"
)

type page struct {
	Size   int      `json:"size"`
	Cursor string   `json:"cursor,omitempty"`
	Tags   []string `json:"tags"`
	Sort   struct {
		By   string `json:"by"`
		Desc bool   `json:"desc"`
	} `json:"sort"`
}

func TestLoad(t *testing.T) {
	var p page
	err := Load([]byte("n:size=10&tags[]=a&tags[]=b&sort[by]=name&b:sort[desc]=true"), &p)
	if err != nil {
		t.Fatal(err)
	}
	want := page{Size: 10, Tags: []string{"a", "b"}}
	want.Sort.By = "name"
	want.Sort.Desc = true
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	var p page
	err := Load([]byte("size=ten"), &p)
	var te *json.UnmarshalTypeError
	if !errors.As(err, &te) {
		t.Errorf("expected *json.UnmarshalTypeError, got %v", err)
	}
	err = Load([]byte("n:size=1&extra=x"), &p, DisallowUnknownFields())
	if err == nil {
		t.Errorf("expected unknown field error")
	}
	err = Load([]byte("n:a=1&n:b=2"), &p, LoadDecodeOptions(query.MaxPairs(1)))
	if !errors.Is(err, query.ErrTooManyPairs) {
		t.Errorf("expected ErrTooManyPairs, got %v", err)
	}
}

func TestToIR(t *testing.T) {
	p := page{Size: 3, Tags: []string{"x"}}
	node, err := ToIR(p)
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(node, encode.EncodeWire(true))
	want := `{"size":3,"tags":["x"],"sort":{"by":"","desc":false}}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

type custom struct{ n int }

func (c *custom) FromIR(node *ir.Node, _ ...FromOption) error {
	c.n = len(node.Fields)
	return nil
}

func TestIRFromer(t *testing.T) {
	c := &custom{}
	if err := Load([]byte("a=1&b=2"), c); err != nil {
		t.Fatal(err)
	}
	if c.n != 2 {
		t.Errorf("got %d", c.n)
	}
}
