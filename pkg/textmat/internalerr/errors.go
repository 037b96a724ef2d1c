package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrTermNotFound  = errors.New("term not found")
	ErrInvalidBounds = errors.New("invalid bounds")
	ErrInvalidConfig = errors.New("invalid configuration")
)
