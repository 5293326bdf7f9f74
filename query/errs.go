package query

import (
	"errors"
	"fmt"
)

var (
	ErrKeySyntax        = errors.New("key syntax error")
	ErrCoerce           = errors.New("invalid typed value")
	ErrEncoding         = errors.New("invalid utf-8")
	ErrTooManyPairs     = errors.New("too many pairs")
	ErrTooDeep          = errors.New("key path too deep")
	ErrUnknownDirective = errors.New("unknown directive")
	ErrEncode           = errors.New("cannot encode value")

	errUnterminated = errors.New("unterminated quote")
	errEscape       = errors.New("dangling escape")
)

// CoerceError reports a value which could not be converted as its key's
// directive requires.
type CoerceError struct {
	Key       string
	Directive string
	Value     string
	Err       error
}

func (e *CoerceError) Error() string {
	return fmt.Sprintf("%s: key %q: directive %q on %q: %v", ErrCoerce, e.Key, e.Directive, e.Value, e.Err)
}

func (e *CoerceError) Unwrap() []error {
	return []error{ErrCoerce, e.Err}
}
