// Package patch layers and edits decoded values with JSON merge patches
// (RFC 7386) and JSON patches (RFC 6902).
//
// A typical use layers request parameters over defaults:
//
//	defaults, _ := parse.ParseString(`{"page": 1, "size": 20}`)
//	req, _ := query.DecodeString("n:size=50&u:page=")
//	res, err := patch.Merge(defaults, req) // {"size": 50}
//
// Object members of results follow the order of the inputs, with members
// which appear in neither in sorted order at the end.
package patch
