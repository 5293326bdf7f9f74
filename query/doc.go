// Package query decodes flat key/value pairs, such as a URL query string,
// into structured values.
//
// # Key Syntax
//
// A key is an optional directive followed by a bracket path:
//
//	name                 a member of the root object
//	name[sub][0]         nested members; all-index members make arrays
//	name[]               append to the array at name
//	name["0"]            a quoted member, forcing an object
//	n:count              a directive: the value is a number
//
// A backslash escapes the next character anywhere in a key.  Keys which are
// not valid bracket syntax are used literally as a single member name.
//
// # Directives
//
//	n   number (float if the text contains '.', else integer)
//	b   boolean for "true" and "false", else the text
//	u   null
//	a   empty array
//	o   empty object
//
// Other directives leave the text as a string unless StrictDirectives is
// given.  A directive prefixed with '^', as in `^n:=12`, makes that one
// value the entire result; the first such pair wins and all other pairs are
// ignored.
//
// # Shapes
//
// Repeated keys collect into arrays (`a=1&a=2`), members which are all
// decimal indices become arrays sorted by index without filling gaps
// (`a[4]=x&a[0]=y` is ["y","x"]), and anything else becomes an object in
// first-seen member order.
//
// # Usage
//
//	v, err := query.DecodeString(r.URL.RawQuery)
//	if errors.Is(err, query.ErrCoerce) {
//	    // malformed typed parameter
//	}
//
// Encode is the inverse of Decode.
package query
