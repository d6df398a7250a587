package wallet

import "errors"

var (
	// ErrInsufficientFunds indicates no covering UTXO set exists under the
	// two-input limit. This is a normal outcome, not a fault.
	ErrInsufficientFunds = errors.New("wallet: insufficient funds")

	// ErrAddressMismatch indicates the prover attested a different address
	// than the expected signer or sender. Fatal: the transaction must not
	// be submitted.
	ErrAddressMismatch = errors.New("wallet: prover attested address does not match expected sender")

	// ErrSubmissionFailed indicates the ledger rejected the finished
	// transaction.
	ErrSubmissionFailed = errors.New("wallet: submission failed")
)
