package deltae

import "errors"

// The two error kinds the package returns for user-supplied data. Both are
// recoverable; use errors.Is to tell them apart. Structural defects (matrix
// index out of range) panic instead, since they indicate a bug in the core
// rather than bad input.
var (
	// ErrOutOfBounds indicates a value outside its domain's numeric range.
	ErrOutOfBounds = errors.New("value is out of range")
	// ErrBadFormat indicates textual input that does not parse into the
	// expected count or type of numeric fields.
	ErrBadFormat = errors.New("value is malformed")
)
