package msg

import "errors"

// Validation errors reject bad input before any printer state changes.
// Callers can match them with errors.Is.
var (
	// ErrInvalidDimension indicates a non-positive column or row value.
	ErrInvalidDimension = errors.New("dimension must be a positive integer")

	// ErrUnknownColorName indicates a colour or style name missing from the lookup table.
	ErrUnknownColorName = errors.New("unknown color or style name")

	// ErrInvalidArgument indicates a malformed rule argument, such as an empty
	// fill string or a non-positive length.
	ErrInvalidArgument = errors.New("invalid argument")
)
