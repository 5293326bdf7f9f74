// Package parse reads JSON, YAML and form-encoded text into IR nodes.
//
// # Usage
//
//	// Parse YAML or JSON
//	node, err := parse.Parse([]byte(`{"name": "alice", "tags": ["a", "b"]}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse a query string
//	node, err := parse.Parse([]byte("name=alice&tags[]=a&tags[]=b"), parse.ParseQuery())
//
// Object members keep the order in which they appear in the input.
package parse
