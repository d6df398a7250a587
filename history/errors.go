package history

import "errors"

var (
	// ErrNilParam indicates a required parameter was nil.
	ErrNilParam = errors.New("history: nil parameter")

	// ErrInvalidHash indicates a key that is not a 32-byte content hash.
	ErrInvalidHash = errors.New("history: invalid tx hash")

	// ErrNotFound indicates no record exists under the given hash.
	ErrNotFound = errors.New("history: record not found")
)
