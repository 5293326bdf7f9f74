package query_test

import (
	"errors"
	"math"
	"testing"

	"github.com/signadot/structq/ir"
	"github.com/signadot/structq/query"
)

func TestEncodeRoundTrip(t *testing.T) {
	obj := func(kvs ...ir.KeyVal) *ir.Node { return ir.FromKeyVals(kvs) }
	arr := func(vs ...*ir.Node) *ir.Node { return ir.FromSlice(vs) }
	kv := func(k string, v *ir.Node) ir.KeyVal { return ir.KeyVal{Key: k, Val: v} }

	tests := []struct {
		name string
		in   *ir.Node
	}{
		{"empty object", ir.EmptyObject()},
		{"empty array", ir.EmptyArray()},
		{"string", ir.FromString("a&b=c")},
		{"int", ir.FromInt(-7)},
		{"float", ir.FromFloat(3)},
		{"big", ir.FromNumber("123456789012345678901234567890")},
		{"bool", ir.FromBool(false)},
		{"null", ir.Null()},
		{"array", arr(ir.FromString("x"), ir.FromInt(1), ir.Null())},
		{"nested", obj(
			kv("b", arr(obj(kv("x", ir.FromBool(true))), ir.EmptyObject())),
			kv("a", obj(kv("0", ir.FromString("zero")), kv("", ir.FromFloat(0.5)))),
			kv("c", ir.EmptyArray()),
		)},
		{"odd names", obj(
			kv("a:b", ir.FromString("1")),
			kv(`q"[]\`, ir.FromString("2")),
			kv("^n", ir.FromString("3")),
		)},
		{"array of arrays", arr(arr(ir.FromString("a")), arr(ir.FromString("b"), ir.FromString("c")))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := query.EncodeString(tt.in)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := query.DecodeString(s)
			if err != nil {
				t.Fatalf("decode %q: %v", s, err)
			}
			if !ir.Equal(tt.in, got) {
				t.Errorf("%q decoded to %s, want %s", s, wire(got), wire(tt.in))
			}
		})
	}
}

func TestEncodePairs(t *testing.T) {
	v := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromFloat(2)})},
		{Key: "7", Val: ir.FromString("seven")},
	})
	s, err := query.EncodeString(v)
	if err != nil {
		t.Fatal(err)
	}
	if want := `n:a[0]=1&n:a[1]=2.0&%227%22=seven`; s != want {
		t.Errorf("got %q, want %q", s, want)
	}
}

func TestEncodeErrors(t *testing.T) {
	for _, v := range []*ir.Node{
		ir.FromFloat(math.NaN()),
		ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromFloat(math.Inf(1))}}),
		ir.FromNumber("1e400"),
	} {
		if _, err := query.Encode(v); !errors.Is(err, query.ErrEncode) {
			t.Errorf("expected ErrEncode, got %v", err)
		}
	}
}
