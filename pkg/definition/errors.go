package definition

import "errors"

var (
	// ErrUnsupportedFormat is returned for files whose extension is not one of
	// .json, .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("definition: unsupported format")
	// ErrDuplicateForm is returned when two files declare the same form id.
	ErrDuplicateForm = errors.New("definition: duplicate form")
	// ErrInvalidDefinition is returned for malformed form or field entries.
	ErrInvalidDefinition = errors.New("definition: invalid definition")
	// ErrFormNotFound is returned when a form id is not in the store.
	ErrFormNotFound = errors.New("definition: form not found")
)
