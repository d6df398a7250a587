package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

// RPCClient is a JSON-RPC 2.0 client for the shielded ledger service.
// It handles request serialization and response parsing; all high-level
// ledger methods are built on top of the call method.
type RPCClient struct {
	url    string
	client *http.Client
	nextID atomic.Int64
}

// Compile-time interface check.
var _ LedgerService = (*RPCClient)(nil)

// rpcRequest represents a JSON-RPC 2.0 request payload. Parameters are
// passed by name.
type rpcRequest struct {
	JSONRPC string         `json:"jsonrpc"`
	Method  string         `json:"method"`
	Params  map[string]any `json:"params"`
	ID      int64          `json:"id"`
}

// rpcResponse represents a JSON-RPC 2.0 response payload.
type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   json.RawMessage `json:"error"`
	ID      int64           `json:"id"`
}

// NewRPCClient creates a client for the given configuration. The underlying
// http.Client pools connections and bounds every call with cfg.Timeout.
func NewRPCClient(cfg Config) *RPCClient {
	return &RPCClient{
		url: cfg.URL,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

// call invokes a JSON-RPC method on the ledger. A server-reported error is
// returned as *RPCError with the payload preserved verbatim; a response with
// neither result nor error is ErrNoResult. If result is non-nil the response
// result is unmarshaled into it.
func (c *RPCClient) call(ctx context.Context, method string, params map[string]any, result any) error {
	if params == nil {
		params = map[string]any{}
	}
	reqBody := rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      c.nextID.Add(1),
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("ledger: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("ledger: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: HTTP %d: %s", ErrConnectionFailed, resp.StatusCode, string(respBody))
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrInvalidResponse, err)
	}

	if len(rpcResp.Error) > 0 && string(rpcResp.Error) != "null" {
		return &RPCError{Method: method, Payload: rpcResp.Error}
	}
	if len(rpcResp.Result) == 0 || string(rpcResp.Result) == "null" {
		return fmt.Errorf("%w: method %s", ErrNoResult, method)
	}

	if result != nil {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return fmt.Errorf("%w: unmarshal result: %w", ErrInvalidResponse, err)
		}
	}
	return nil
}

// GetBalance implements LedgerService.
func (c *RPCClient) GetBalance(ctx context.Context, owner string) (string, error) {
	var balance string
	err := c.call(ctx, "get_balance_by_owner", map[string]any{"addr": owner}, &balance)
	if err != nil {
		return "", err
	}
	return balance, nil
}

// utxoPage is the wire shape of one paginated UTXO listing response.
type utxoPage struct {
	UTXOs      []string `json:"utxos"`
	LastUTXOID string   `json:"last_utxo_id"`
}

// GetUTXOsPaginated implements LedgerService.
func (c *RPCClient) GetUTXOsPaginated(ctx context.Context, lastUTXOID, owner string) ([]string, string, error) {
	var page utxoPage
	err := c.call(ctx, "get_list_of_utxo_by_owner_paginated", map[string]any{
		"last_utxo_id": lastUTXOID,
		"owner":        owner,
	}, &page)
	if err != nil {
		return nil, "", err
	}
	return page.UTXOs, page.LastUTXOID, nil
}

// GetNextUTXOID implements LedgerService.
func (c *RPCClient) GetNextUTXOID(ctx context.Context, id, owner string) (string, error) {
	var next string
	err := c.call(ctx, "get_next_id_of_utxo_by_owner", map[string]any{
		"id":    id,
		"owner": owner,
	}, &next)
	if err != nil {
		return "", err
	}
	return next, nil
}

// GetUTXO implements LedgerService.
func (c *RPCClient) GetUTXO(ctx context.Context, id string) (string, error) {
	var utxo string
	err := c.call(ctx, "get_utxo", map[string]any{"id": id}, &utxo)
	if err != nil {
		return "", err
	}
	return utxo, nil
}

// GetTail implements LedgerService.
func (c *RPCClient) GetTail(ctx context.Context) (string, error) {
	var tail string
	err := c.call(ctx, "get_tail", nil, &tail)
	if err != nil {
		return "", err
	}
	return tail, nil
}

// SubmitTransaction implements LedgerService. Fire-and-forget: the response
// result is discarded, only failure matters.
func (c *RPCClient) SubmitTransaction(ctx context.Context, txHex string) error {
	var ack json.RawMessage
	return c.call(ctx, "submit_transaction", map[string]any{"tx": txHex}, &ack)
}
