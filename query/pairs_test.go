package query_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/structq/query"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		in   string
		want []query.Pair
	}{
		{"", nil},
		{"a=1", []query.Pair{{"a", "1"}}},
		{"b=2&a=1&b=3", []query.Pair{{"b", "2"}, {"a", "1"}, {"b", "3"}}},
		{"a&&b=", []query.Pair{{"a", ""}, {"b", ""}}},
		{"a=x=y", []query.Pair{{"a", "x=y"}}},
		{"a+b=c+d", []query.Pair{{"a b", "c d"}}},
		{"k%5B0%5D=%E2%82%AC", []query.Pair{{"k[0]", "€"}}},
		{"a=100%&b=%zz&c=%4", []query.Pair{{"a", "100%"}, {"b", "%zz"}, {"c", "%4"}}},
		{"a=%2B", []query.Pair{{"a", "+"}}},
		{"=v", []query.Pair{{"", "v"}}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := query.ParseQuery(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseQuery(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestFormatQuery(t *testing.T) {
	pairs := []query.Pair{
		{"n:a[b]", "1 2"},
		{"^s:", "x&y=z"},
		{"c", "é"},
	}
	s := query.FormatQuery(pairs)
	if want := "n:a[b]=1+2&^s:=x%26y%3Dz&c=%C3%A9"; s != want {
		t.Errorf("got %q, want %q", s, want)
	}
	if diff := cmp.Diff(pairs, query.ParseQuery(s)); diff != "" {
		t.Errorf("ParseQuery(FormatQuery) mismatch (-want +got):\n%s", diff)
	}
}
