package params

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/structq/encode"
	"github.com/signadot/structq/ir"
	"github.com/signadot/structq/query"
)

func decode(t *testing.T, q string) *ir.Node {
	t.Helper()
	v, err := query.DecodeString(q)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestRequire(t *testing.T) {
	v := decode(t, "id=j1&n:count=3&parameters[a]=x")
	id, err := String(v, "id")
	if err != nil || id != "j1" {
		t.Fatalf("String: %q, %v", id, err)
	}
	if _, err := Require(v, "parameters", ir.ObjectType); err != nil {
		t.Errorf("Require: %v", err)
	}
	_, err = String(v, "count")
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
	_, err = String(v, "type_id")
	if !errors.Is(err, ErrMissing) {
		t.Errorf("expected ErrMissing, got %v", err)
	}
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *Error")
	}
	if diff := cmp.Diff(&Error{Code: CodeMissing, Names: []string{"type_id"}}, pe); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if pe.StatusCode() != 400 {
		t.Errorf("status %d", pe.StatusCode())
	}
}

func TestRequireNested(t *testing.T) {
	v := decode(t, "filter[name]=ann&filter[age]=old&n:ids[]=1&n:ids[]=2&%220%22[x]=y")
	tests := []struct {
		name  string
		typ   ir.Type
		err   error
		names []string
	}{
		{"filter[name]", ir.StringType, nil, nil},
		{"ids[1]", ir.NumberType, nil, nil},
		{"filter[age]", ir.NumberType, ErrFormat, []string{"filter[age]"}},
		{"ids[0]", ir.StringType, ErrFormat, []string{"ids[0]"}},
		{`"0"[x]`, ir.NumberType, ErrFormat, []string{`"0"[x]`}},
		{"filter[city]", ir.StringType, ErrMissing, []string{"filter[city]"}},
		{"ids[5]", ir.NumberType, ErrMissing, []string{"ids[5]"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Require(v, tt.name, tt.typ)
			if tt.err == nil {
				if err != nil {
					t.Fatal(err)
				}
				return
			}
			var pe *Error
			if !errors.Is(err, tt.err) || !errors.As(err, &pe) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if diff := cmp.Diff(tt.names, pe.Names); diff != "" {
				t.Errorf("names (-want +got):\n%s", diff)
			}
		})
	}
	if _, ok := Lookup(v, "a:b[c"); ok {
		t.Errorf("unexpected member for an unparseable name")
	}
}

func TestOptional(t *testing.T) {
	v := decode(t, "n:type_id=3&name=x")
	if got := Optional(v, "type_id", ir.StringType); got != nil {
		t.Errorf("expected nil for a number")
	}
	if got := Optional(v, "name", ir.StringType); got == nil || got.String != "x" {
		t.Errorf("expected name")
	}
	if _, ok := Lookup(v, "nope"); ok {
		t.Errorf("unexpected member")
	}
}

func TestObject(t *testing.T) {
	if _, err := Object(decode(t, "=1&=2")); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat for an array, got %v", err)
	}
	if _, err := Object(decode(t, "a=1")); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}

func TestFromDecodeError(t *testing.T) {
	_, err := query.DecodeString("n:size[max]=big")
	pe := FromDecodeError(err)
	if diff := cmp.Diff(&Error{Code: CodeFormat, Names: []string{"size"}}, pe); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	_, err = query.DecodeBytes([]byte{0xff})
	if pe := FromDecodeError(err); pe.Code != CodeFormat || len(pe.Names) != 0 {
		t.Errorf("unexpected %#v", pe)
	}
	if FromDecodeError(nil) != nil {
		t.Errorf("expected nil")
	}
}

func TestErrorNode(t *testing.T) {
	e := &Error{Code: CodeMissing, Names: []string{"id"}}
	got := encode.MustString(e.Node(), encode.EncodeWire(true))
	want := `{"code":"parameter_missing","payload":{"missing_parameters":["id"]}}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestBind(t *testing.T) {
	var req struct {
		ID     string `json:"id"`
		Limits struct {
			Max int `json:"max"`
		} `json:"limits"`
	}
	if err := Bind(decode(t, "id=j1&n:limits[max]=5"), &req); err != nil {
		t.Fatal(err)
	}
	if req.ID != "j1" || req.Limits.Max != 5 {
		t.Errorf("unexpected %+v", req)
	}
	err := Bind(decode(t, "id=j1&limits[max]=five"), &req)
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if diff := cmp.Diff(&Error{Code: CodeFormat, Names: []string{"limits"}}, pe); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
