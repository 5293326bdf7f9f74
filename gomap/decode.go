// Package gomap maps between IR nodes and Go values by way of their JSON
// encodings, so that encoding/json struct tags apply.
package gomap

import (
	"bytes"
	"encoding/json"

	"github.com/signadot/structq/encode"
	"github.com/signadot/structq/format"
	"github.com/signadot/structq/ir"
	"github.com/signadot/structq/parse"
	"github.com/signadot/structq/query"
)

type fromOpts struct {
	format        format.Format
	decodeOpts    []query.DecodeOption
	unknownFields bool
}

func (do *fromOpts) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(do.format),
		parse.ParseDecodeOptions(do.decodeOpts...),
	}
}

type FromOption func(*fromOpts)

func LoadFormat(f format.Format) FromOption { return func(o *fromOpts) { o.format = f } }

// LoadDecodeOptions passes opts to the query decoder when loading
// form-encoded text.
func LoadDecodeOptions(opts ...query.DecodeOption) FromOption {
	return func(o *fromOpts) { o.decodeOpts = append(o.decodeOpts, opts...) }
}

// DisallowUnknownFields makes members with no matching struct field an
// error.
func DisallowUnknownFields() FromOption {
	return func(o *fromOpts) { o.unknownFields = true }
}

type IRFromer interface {
	FromIR(*ir.Node, ...FromOption) error
}

// Load parses d and stores the result in the value pointed to by p.
func Load(d []byte, p any, opts ...FromOption) error {
	do := &fromOpts{format: format.QueryFormat}
	for _, f := range opts {
		f(do)
	}
	node, err := parse.Parse(d, do.parseOpts()...)
	if err != nil {
		return err
	}
	return FromIR(node, p, opts...)
}

// FromIR stores node in the value pointed to by p.  If p implements
// IRFromer it is given node directly.
func FromIR(node *ir.Node, p any, opts ...FromOption) error {
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(node, opts...)
	}
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	b := bytes.NewBuffer(nil)
	if err := encode.Encode(node, b, encode.EncodeWire(true)); err != nil {
		return err
	}
	dec := json.NewDecoder(b)
	if do.unknownFields {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(p)
}
