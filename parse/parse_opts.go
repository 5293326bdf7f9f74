package parse

import (
	"github.com/signadot/structq/format"
	"github.com/signadot/structq/query"
)

type parseOpts struct {
	format     format.Format
	decodeOpts []query.DecodeOption
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseQuery() ParseOption {
	return ParseFormat(format.QueryFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseDecodeOptions passes opts to the query decoder when parsing
// form-encoded text.
func ParseDecodeOptions(opts ...query.DecodeOption) ParseOption {
	return func(o *parseOpts) { o.decodeOpts = append(o.decodeOpts, opts...) }
}
