package ir

import "testing"

func TestPath(t *testing.T) {
	leaf := FromString("x")
	odd := FromInt(1)
	root := FromKeyVals([]KeyVal{
		{Key: "items", Val: FromSlice([]*Node{
			FromKeyVals([]KeyVal{{Key: "name", Val: leaf}}),
		})},
		{Key: "0", Val: FromKeyVals([]KeyVal{{Key: `a"b`, Val: odd}})},
	})
	tests := []struct {
		node *Node
		want string
	}{
		{root, ""},
		{root.Values[0], "items"},
		{leaf, "items[0][name]"},
		{odd, `"0"["a\"b"]`},
	}
	for _, tt := range tests {
		if got := tt.node.Path(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestIsIndex(t *testing.T) {
	for s, want := range map[string]bool{
		"":    false,
		"0":   true,
		"007": true,
		"-1":  false,
		"1a":  false,
		"١":   false,
	} {
		if got := IsIndex(s); got != want {
			t.Errorf("IsIndex(%q) = %t", s, got)
		}
	}
}

func TestTypeText(t *testing.T) {
	for _, ty := range Types() {
		d, _ := ty.MarshalText()
		var got Type
		if err := got.UnmarshalText(d); err != nil || got != ty {
			t.Errorf("%s: got %s, %v", ty, got, err)
		}
	}
	var got Type
	if err := got.UnmarshalText([]byte("string")); err != nil || got != StringType {
		t.Errorf("lower case: got %s, %v", got, err)
	}
	if err := got.UnmarshalText([]byte("tuple")); err == nil {
		t.Errorf("expected error")
	}
}
