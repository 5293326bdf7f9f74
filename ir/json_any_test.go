package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromAny(t *testing.T) {
	var v any
	d := []byte(`{"b": [1, 2.5, "x", null, true], "a": {"big": 123456789012345678901234567890}}`)
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		t.Fatal(err)
	}
	node, err := FromAny(v)
	if err != nil {
		t.Fatal(err)
	}
	if node.Fields[0].String != "a" {
		t.Errorf("expected sorted fields, got %q first", node.Fields[0].String)
	}
	b := Get(node, "b")
	if b.Values[0].Int64 == nil || *b.Values[0].Int64 != 1 {
		t.Errorf("expected int 1")
	}
	if b.Values[1].Float64 == nil || *b.Values[1].Float64 != 2.5 {
		t.Errorf("expected float 2.5")
	}
	big := Get(Get(node, "a"), "big")
	if big.Number != "123456789012345678901234567890" {
		t.Errorf("expected literal, got %q", big.NumberText())
	}
	want := map[string]any{
		"a": map[string]any{"big": json.Number("123456789012345678901234567890")},
		"b": []any{int64(1), 2.5, "x", nil, true},
	}
	if diff := cmp.Diff(want, ToAny(node)); diff != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", diff)
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	if _, err := FromAny(struct{}{}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
	n, err := FromAny(uint64(1 << 63))
	if err != nil {
		t.Fatal(err)
	}
	if n.Number != "9223372036854775808" {
		t.Errorf("got %q", n.NumberText())
	}
}

func TestTruth(t *testing.T) {
	for _, tt := range []struct {
		node *Node
		want bool
	}{
		{Null(), false},
		{FromBool(true), true},
		{FromInt(0), false},
		{FromFloat(0.1), true},
		{FromNumber("100000000000000000000"), true},
		{FromString(""), false},
		{EmptyArray(), false},
		{FromKeyVals([]KeyVal{{Key: "a", Val: Null()}}), true},
	} {
		if got := Truth(tt.node); got != tt.want {
			t.Errorf("Truth(%v) = %t", ToAny(tt.node), got)
		}
	}
}
