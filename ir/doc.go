// Package ir provides the value representation for decoded query parameters.
//
// # Overview
//
// A Node is a recursive tagged union holding one JSON-compatible value:
//
//   - NullType: null
//   - BoolType: Bool
//   - NumberType: Int64, Float64, or the literal in Number for integers
//     which do not fit in an int64
//   - StringType: String
//   - ArrayType: Values, in order
//   - ObjectType: Fields (string nodes) and Values, in insertion order
//
// Each node records its Parent together with its ParentIndex and, for object
// members, its ParentField, so a node can report its bracket Path.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "id", Val: ir.FromString("job-1")},
//	    {Key: "tags", Val: ir.FromSlice([]*ir.Node{ir.FromString("a")})},
//	})
//
// FromMap sorts its keys; FromKeyVals keeps the given order.
//
// # Converting
//
// ToAny and FromAny convert to and from the generic values produced by
// encoding/json.
package ir
