package ir

import "errors"

var (
	ErrUnsupported = errors.New("unsupported value")
	ErrNotFound    = errors.New("not found")
)
