package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrConnectionFailed indicates the client could not reach the ledger
	// endpoint.
	ErrConnectionFailed = errors.New("ledger: connection failed")

	// ErrInvalidResponse indicates the ledger returned a response that
	// could not be decoded.
	ErrInvalidResponse = errors.New("ledger: invalid response")

	// ErrNoResult indicates a response carrying neither a result nor an
	// error, which the protocol forbids.
	ErrNoResult = errors.New("ledger: response missing both result and error")
)

// RPCError is a failure reported by the ledger itself. The server's error
// payload is preserved verbatim so callers can inspect or display it.
type RPCError struct {
	Method  string
	Payload json.RawMessage
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("ledger: rpc error from %s: %s", e.Method, string(e.Payload))
}
