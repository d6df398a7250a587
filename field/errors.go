package field

import "errors"

var (
	// ErrMalformedScalar indicates bytes that are not a canonical scalar
	// encoding: wrong length, invalid hex, or a value at or above the
	// field modulus.
	ErrMalformedScalar = errors.New("field: malformed scalar")
)
