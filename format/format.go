package format

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
	QueryFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":     JSONFormat,
		"json":  JSONFormat,
		"y":     YAMLFormat,
		"yaml":  YAMLFormat,
		"q":     QueryFormat,
		"query": QueryFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case QueryFormat:
		return []byte("query"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case QueryFormat:
		return ".query"
	default:
		return ""
	}
}

var suffixes = map[string]Format{
	".json":  JSONFormat,
	".yaml":  YAMLFormat,
	".yml":   YAMLFormat,
	".query": QueryFormat,
	".qs":    QueryFormat,
}

// ForPath guesses the format of a file from its extension.
func ForPath(p string) (Format, bool) {
	f, ok := suffixes[strings.ToLower(path.Ext(p))]
	return f, ok
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{JSONFormat, YAMLFormat, QueryFormat}
}
