// Package ledger implements the JSON-RPC 2.0 client for the remote shielded
// ledger: balance lookup, paginated UTXO listing, linked-list UTXO
// traversal, single-UTXO fetch, and transaction submission.
//
// Every scalar-bearing field on the wire is the canonical 32-byte encoding
// rendered as lowercase hex; composite records (outputs, transactions) are
// hex-rendered canonical encodings from the tx package.
package ledger

import "context"

// LedgerService is the wallet's view of the remote ledger. The wallet
// pipeline and the CLI depend on this interface; RPCClient is the production
// implementation and MockLedgerService the test double.
type LedgerService interface {
	// GetBalance returns the hex-encoded balance held by owner.
	GetBalance(ctx context.Context, owner string) (string, error)

	// GetUTXOsPaginated returns one page of hex-encoded UTXOs owned by
	// owner, starting after lastUTXOID, plus the cursor for the next page.
	// An empty cursor means the listing is exhausted.
	GetUTXOsPaginated(ctx context.Context, lastUTXOID, owner string) ([]string, string, error)

	// GetNextUTXOID performs one hop of the per-owner UTXO chain: given the
	// current id it returns the next id, or an empty string when the chain
	// is exhausted.
	GetNextUTXOID(ctx context.Context, id, owner string) (string, error)

	// GetUTXO returns the hex-encoded output stored under the given id.
	GetUTXO(ctx context.Context, id string) (string, error)

	// GetTail returns the hex-encoded tail marker of the UTXO chain.
	GetTail(ctx context.Context) (string, error)

	// SubmitTransaction hands a hex-encoded proved transaction to the
	// ledger. The ledger is the authority on UTXO validity at submission
	// time; a rejection surfaces as an *RPCError.
	SubmitTransaction(ctx context.Context, txHex string) error
}
