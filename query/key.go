package query

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/signadot/structq/debug"
)

// Component is one element of a bracket path.  Two components name the same
// member when their Text is equal; Quoted records that the member was
// written as `"text"`, which forces its container to be an object.
type Component struct {
	Text   string
	Quoted bool
}

// Key is a parsed raw key: an optional directive selecting a coercion and a
// non-empty bracket path.
type Key struct {
	Directive string
	Path      []Component
}

// ParseKey parses `directive:name[sub]["quoted"]...`.  The directive ends at
// the first colon not escaped by a backslash; keys which are empty or start
// with a quote have no directive.
func ParseKey(raw string) (Key, error) {
	dir, src := splitDirective(raw)
	path, err := parseBracketPath(src)
	if err != nil {
		return Key{}, fmt.Errorf("%w in %q: %w", ErrKeySyntax, raw, err)
	}
	return Key{Directive: dir, Path: path}, nil
}

// literalKey is the key used when raw is not valid bracket syntax.
func literalKey(raw string) Key {
	return Key{Path: []Component{{Text: raw}}}
}

func parseKeyOrLiteral(raw string) Key {
	k, err := ParseKey(raw)
	if err != nil {
		if debug.Keys() {
			debug.Logf("%v: using literal key\n", err)
		}
		return literalKey(raw)
	}
	return k
}

func splitDirective(raw string) (string, string) {
	if raw == "" || raw[0] == '"' {
		return "", raw
	}
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++
		case ':':
			return raw[:i], raw[i+1:]
		}
	}
	return "", raw
}

func parseBracketPath(s string) ([]Component, error) {
	c, n, err := parseComponent(s)
	if err != nil {
		return nil, err
	}
	path := []Component{c}
	i := n
	for i < len(s) {
		if s[i] != '[' {
			return nil, fmt.Errorf("expected '[' at offset %d", i)
		}
		c, n, err = parseComponent(s[i+1:])
		if err != nil {
			return nil, err
		}
		j := i + 1 + n
		if j >= len(s) || s[j] != ']' {
			return nil, fmt.Errorf("expected ']' at offset %d", j)
		}
		path = append(path, c)
		i = j + 1
	}
	return path, nil
}

// parseComponent parses one component at the start of s and returns it with
// the number of bytes consumed.
func parseComponent(s string) (Component, int, error) {
	var b strings.Builder
	if len(s) > 0 && s[0] == '"' {
		i := 1
		for i < len(s) {
			switch s[i] {
			case '"':
				return Component{Text: b.String(), Quoted: true}, i + 1, nil
			case '\\':
				n, err := unescapeAt(&b, s, i)
				if err != nil {
					return Component{}, 0, err
				}
				i += n
			default:
				b.WriteByte(s[i])
				i++
			}
		}
		return Component{}, 0, errUnterminated
	}
	i := 0
scan:
	for i < len(s) {
		switch s[i] {
		case '"', '[', ']':
			break scan
		case '\\':
			n, err := unescapeAt(&b, s, i)
			if err != nil {
				return Component{}, 0, err
			}
			i += n
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return Component{Text: b.String()}, i, nil
}

// unescapeAt writes the character escaped by the backslash at s[i].
func unescapeAt(b *strings.Builder, s string, i int) (int, error) {
	if i+1 >= len(s) {
		return 0, errEscape
	}
	_, sz := utf8.DecodeRuneInString(s[i+1:])
	b.WriteString(s[i+1 : i+1+sz])
	return 1 + sz, nil
}

// String renders k in canonical key syntax, escaping as needed so that
// ParseKey(k.String()) yields k.
func (k Key) String() string {
	var b strings.Builder
	if k.Directive != "" {
		b.WriteString(k.Directive)
		b.WriteByte(':')
	}
	for i, c := range k.Path {
		if i > 0 {
			b.WriteByte('[')
		}
		writeComponent(&b, c, i == 0)
		if i > 0 {
			b.WriteByte(']')
		}
	}
	return b.String()
}

func writeComponent(b *strings.Builder, c Component, first bool) {
	if c.Quoted {
		b.WriteByte('"')
		for _, r := range c.Text {
			if r == '"' || r == '\\' {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
		b.WriteByte('"')
		return
	}
	for _, r := range c.Text {
		switch r {
		case '"', '[', ']', '\\':
			b.WriteByte('\\')
		case ':':
			if first {
				b.WriteByte('\\')
			}
		}
		b.WriteRune(r)
	}
}
