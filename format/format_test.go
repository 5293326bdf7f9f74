package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
		{"q", QueryFormat},
		{"query", QueryFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("%s round tripped to %s", f, g)
		}
		if f.Suffix() == "" {
			t.Errorf("%s has no suffix", f)
		}
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"defaults.yaml", YAMLFormat, true},
		{"dir/ops.JSON", JSONFormat, true},
		{"req.qs", QueryFormat, true},
		{"conf.yml", YAMLFormat, true},
		{"-", 0, false},
		{"notes.txt", 0, false},
	}
	for _, tt := range tests {
		got, ok := ForPath(tt.path)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ForPath(%q) = %s, %t, want %s, %t", tt.path, got, ok, tt.want, tt.ok)
		}
	}
}
