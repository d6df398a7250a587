package tx

import "errors"

var (
	// ErrTruncated indicates an encoding shorter than its declared contents.
	ErrTruncated = errors.New("tx: truncated encoding")

	// ErrTrailingBytes indicates unconsumed bytes after a complete record.
	ErrTrailingBytes = errors.New("tx: trailing bytes after encoding")

	// ErrAmountOverflow indicates an amount sum that wrapped around the
	// field modulus. Amounts near the modulus are outside the protocol's
	// value range.
	ErrAmountOverflow = errors.New("tx: amount sum exceeds field modulus")

	// ErrInsufficientInput indicates the selected inputs do not cover the
	// payment amount plus fee. This is a caller contract violation: the
	// selector must only hand over covering inputs.
	ErrInsufficientInput = errors.New("tx: inputs do not cover amount plus fee")

	// ErrNotConserved indicates outputs plus fee do not equal total input.
	ErrNotConserved = errors.New("tx: outputs plus fee do not equal inputs")
)
