package format

import "errors"

var (
	ErrBadTemplate     = errors.New("format: malformed template")
	ErrUnknownArgument = errors.New("format: unknown argument")
	ErrBadArgument     = errors.New("format: argument type mismatch")
)
