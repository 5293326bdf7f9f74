// Package format names the text formats decoded values can be rendered in.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	name := f.String() // "yaml"
//
// # Related Packages
//
//   - github.com/signadot/structq/encode - render values in a Format
package format
