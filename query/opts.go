package query

type DecodeOption func(*decState)

type decState struct {
	maxPairs int
	maxDepth int
	strict   bool
}

// MaxPairs limits the number of pairs accepted by a decode.  Zero means no
// limit.
func MaxPairs(n int) DecodeOption {
	return func(ds *decState) { ds.maxPairs = n }
}

// MaxDepth limits the number of components in a key path.  Zero means no
// limit.
func MaxDepth(n int) DecodeOption {
	return func(ds *decState) { ds.maxDepth = n }
}

// StrictDirectives makes unrecognised directives an error instead of
// leaving values as strings.
func StrictDirectives() DecodeOption {
	return func(ds *decState) { ds.strict = true }
}

func newDecState(opts []DecodeOption) *decState {
	ds := &decState{}
	for _, opt := range opts {
		opt(ds)
	}
	return ds
}
