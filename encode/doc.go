// Package encode renders decoded values as JSON, YAML or query text.
//
// # Usage
//
//	// indented JSON
//	err := encode.Encode(node, os.Stdout)
//
//	// compact JSON
//	s := encode.MustString(node, encode.EncodeWire(true))
//
//	// YAML, coloured JSON, or query text
//	err = encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//	err = encode.Encode(node, w, encode.EncodeColors(encode.NewColors()))
//	err = encode.Encode(node, w, encode.EncodeFormat(format.QueryFormat))
//
// JSON output keeps object member order.
//
// # Related Packages
//
//   - github.com/signadot/structq/ir - value representation
//   - github.com/signadot/structq/query - decoding and query text
package encode
