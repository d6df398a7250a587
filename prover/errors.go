package prover

import "errors"

var (
	// ErrMalformedResponse indicates prover output that is not exactly
	// three comma-joined hex fields.
	ErrMalformedResponse = errors.New("prover: malformed response")

	// ErrProvingFailed indicates the prover ran but produced no usable
	// output.
	ErrProvingFailed = errors.New("prover: proving failed")
)
