package chip

import "errors"

// ErrEmptySeparator is returned when a widget is constructed with an empty
// separator string.
var ErrEmptySeparator = errors.New("separator cannot be empty")

// ErrInvalidIcon is returned when the configured icon is not exactly one
// character.
var ErrInvalidIcon = errors.New("icon must be a single character")
