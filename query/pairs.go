package query

import (
	"net/url"
	"strings"
)

// ParseQuery splits form-encoded text into pairs.  Unlike url.ParseQuery it
// keeps the order of pairs and, like it, keeps duplicates and blank values.
// Malformed percent escapes are kept as written and bytes which do not form
// UTF-8 after unescaping are replaced with U+FFFD.
func ParseQuery(s string) []Pair {
	var res []Pair
	for seg := range strings.SplitSeq(s, "&") {
		if seg == "" {
			continue
		}
		k, v, _ := strings.Cut(seg, "=")
		res = append(res, Pair{Key: unescape(k), Value: unescape(v)})
	}
	return res
}

func unescape(s string) string {
	if strings.IndexAny(s, "%+") == -1 {
		return s
	}
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '+':
			b = append(b, ' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b = append(b, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		default:
			b = append(b, c)
		}
	}
	return strings.ToValidUTF8(string(b), "\uFFFD")
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

var keyUnescaper = strings.NewReplacer("%5B", "[", "%5D", "]", "%3A", ":", "%5E", "^")

// FormatQuery renders pairs as form-encoded text.  Brackets, colons and
// carets in keys are left readable.
func FormatQuery(pairs []Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(keyUnescaper.Replace(url.QueryEscape(p.Key)))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
