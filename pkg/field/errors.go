package field

import "errors"

var (
	// ErrUnknownType is returned by New for a type without a preset.
	ErrUnknownType = errors.New("field: unknown field type")
	// ErrInvalidPattern is returned by New when the pattern does not compile.
	ErrInvalidPattern = errors.New("field: invalid pattern")
	// ErrInvalidBounds is returned by New for negative or inverted length bounds.
	ErrInvalidBounds = errors.New("field: invalid length bounds")
)
