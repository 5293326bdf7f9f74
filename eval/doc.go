// Package eval evaluates expr-lang expressions over decoded values.
//
// The members of a decoded object are variables of the expression and
// the whole value is available as root:
//
//	v, _ := query.DecodeString("n:age=42&name=ann&tags[]=a")
//	ok, err := eval.Match(`age > 40 && "a" in tags`, v)
//
// Functions:
//
//	lookup(path) the member at a bracket path such as "a[0][b]", or nil
//	has(path)    whether a member exists at path
//	getenv(name) the value of an environment variable
package eval
