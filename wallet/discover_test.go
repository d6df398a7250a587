package wallet

import (
	"context"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shieldorg/libshield-go/field"
	"github.com/shieldorg/libshield-go/ledger"
	"github.com/shieldorg/libshield-go/tx"
)

func idHex(v uint64) string {
	e := field.FromUint64(v)
	return field.EncodeHex(&e)
}

func outHex(amount, owner uint64) string {
	o := tx.Out{Amount: field.FromUint64(amount), Owner: field.FromUint64(owner)}
	return hex.EncodeToString(o.Encode())
}

// chainLedger serves a fixed per-owner chain and UTXO contents.
func chainLedger(chain map[string]string, utxos map[string]string, tail string) *ledger.MockLedgerService {
	return &ledger.MockLedgerService{
		GetTailFn: func(ctx context.Context) (string, error) {
			return tail, nil
		},
		GetNextUTXOIDFn: func(ctx context.Context, id, owner string) (string, error) {
			return chain[id], nil
		},
		GetUTXOFn: func(ctx context.Context, id string) (string, error) {
			return utxos[id], nil
		},
	}
}

func TestDiscoverWalksChainInOrder(t *testing.T) {
	// seed(8) -> 100 -> 101 -> 0 (zero terminator)
	chain := map[string]string{
		idHex(8):   idHex(100),
		idHex(100): idHex(101),
		idHex(101): idHex(0),
	}
	utxos := map[string]string{
		idHex(100): outHex(10, 7),
		idHex(101): outHex(20, 7),
	}
	w := New(chainLedger(chain, utxos, ""), nil)

	entries, err := w.DiscoverUTXOs(context.Background(), field.FromUint64(7))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	ten := field.FromUint64(10)
	twenty := field.FromUint64(20)
	assert.True(t, entries[0].Out.Amount.Equal(&ten))
	assert.True(t, entries[1].Out.Amount.Equal(&twenty))
}

func TestDiscoverStopsOnEmptyResponse(t *testing.T) {
	chain := map[string]string{idHex(8): idHex(100)} // next of 100 is absent
	utxos := map[string]string{idHex(100): outHex(5, 7)}
	w := New(chainLedger(chain, utxos, ""), nil)

	entries, err := w.DiscoverUTXOs(context.Background(), field.FromUint64(7))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDiscoverBoundedByHopCap(t *testing.T) {
	// A server that never terminates: every id points to id+1.
	next := uint64(1000)
	svc := &ledger.MockLedgerService{
		GetTailFn: func(ctx context.Context) (string, error) { return "", nil },
		GetNextUTXOIDFn: func(ctx context.Context, id, owner string) (string, error) {
			next++
			return idHex(next), nil
		},
		GetUTXOFn: func(ctx context.Context, id string) (string, error) {
			return outHex(1, 7), nil
		},
	}
	w := New(svc, nil)
	w.Params.MaxHops = 10

	entries, err := w.DiscoverUTXOs(context.Background(), field.FromUint64(7))
	require.NoError(t, err)
	assert.Len(t, entries, 10)
}

func TestDiscoverStopsAtTailMarker(t *testing.T) {
	chain := map[string]string{
		idHex(8):   idHex(100),
		idHex(100): idHex(101), // never reached: 100 is the tail
	}
	utxos := map[string]string{idHex(100): outHex(5, 7)}
	w := New(chainLedger(chain, utxos, idHex(100)), nil)

	entries, err := w.DiscoverUTXOs(context.Background(), field.FromUint64(7))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDiscoverSkipsMalformedUTXO(t *testing.T) {
	chain := map[string]string{
		idHex(8):   idHex(100),
		idHex(100): idHex(101),
		idHex(101): idHex(0),
	}
	utxos := map[string]string{
		idHex(100): "not-hex",
		idHex(101): outHex(20, 7),
	}
	w := New(chainLedger(chain, utxos, ""), nil)

	entries, err := w.DiscoverUTXOs(context.Background(), field.FromUint64(7))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	twenty := field.FromUint64(20)
	assert.True(t, entries[0].Out.Amount.Equal(&twenty))
}

func TestDiscoverPropagatesRPCError(t *testing.T) {
	svc := &ledger.MockLedgerService{
		GetTailFn: func(ctx context.Context) (string, error) { return "", nil },
		GetNextUTXOIDFn: func(ctx context.Context, id, owner string) (string, error) {
			return "", &ledger.RPCError{Method: "get_next_id_of_utxo_by_owner", Payload: []byte(`"boom"`)}
		},
	}
	w := New(svc, nil)

	_, err := w.DiscoverUTXOs(context.Background(), field.FromUint64(7))
	require.Error(t, err)
	var rpcErr *ledger.RPCError
	assert.ErrorAs(t, err, &rpcErr)
}

func TestListUTXOsPaginates(t *testing.T) {
	pages := map[string]struct {
		utxos []string
		next  string
	}{
		idHex(0): {utxos: []string{outHex(10, 7), outHex(20, 7)}, next: "cursor1"},
		"cursor1": {utxos: []string{outHex(30, 7)}, next: ""},
	}
	calls := 0
	svc := &ledger.MockLedgerService{
		GetUTXOsPaginatedFn: func(ctx context.Context, lastUTXOID, owner string) ([]string, string, error) {
			calls++
			p, ok := pages[lastUTXOID]
			if !ok {
				return nil, "", fmt.Errorf("unexpected cursor %q", lastUTXOID)
			}
			return p.utxos, p.next, nil
		},
	}
	w := New(svc, nil)

	outs, err := w.ListUTXOs(context.Background(), field.FromUint64(7))
	require.NoError(t, err)
	assert.Len(t, outs, 3)
	assert.Equal(t, 2, calls)
}

func TestBalance(t *testing.T) {
	want := field.FromUint64(55)
	svc := &ledger.MockLedgerService{
		GetBalanceFn: func(ctx context.Context, owner string) (string, error) {
			return field.EncodeHex(&want), nil
		},
	}
	w := New(svc, nil)

	got, err := w.Balance(context.Background(), field.FromUint64(7))
	require.NoError(t, err)
	assert.True(t, got.Equal(&want))
}
