package defs

import "errors"

// ErrInvalidLevel is returned for a levels file that cannot be used.
var ErrInvalidLevel = errors.New("invalid level definition")
