package wallet

import (
	"context"
	"fmt"

	"github.com/shieldorg/libshield-go/field"
	"github.com/shieldorg/libshield-go/tx"
)

// UTXOEntry pairs a discovered UTXO id with its decoded output.
type UTXOEntry struct {
	ID  field.Element
	Out tx.Out
}

// DiscoverUTXOs walks the owner's UTXO chain from the well-known seed id,
// fetching and decoding every referenced output. The walk stops on an empty
// next-id response, the zero terminator, the ledger's tail marker, or the
// hop cap — whichever comes first. Discovery order is chain order.
//
// Discovery is best-effort per record: a UTXO that fails to decode is
// skipped, because one malformed record must not abort the whole listing.
// RPC failures are not best-effort and abort the walk.
func (w *Wallet) DiscoverUTXOs(ctx context.Context, owner field.Element) ([]UTXOEntry, error) {
	ownerHex := field.EncodeHex(&owner)

	tailHex, err := w.Ledger.GetTail(ctx)
	if err != nil {
		return nil, fmt.Errorf("wallet: fetch chain tail: %w", err)
	}

	var ids []field.Element
	current := field.FromUint64(w.Params.SeedID)
	for hop := 0; hop < w.Params.MaxHops; hop++ {
		nextHex, err := w.Ledger.GetNextUTXOID(ctx, field.EncodeHex(&current), ownerHex)
		if err != nil {
			return nil, fmt.Errorf("wallet: chain hop %d: %w", hop, err)
		}
		if nextHex == "" {
			break
		}
		next, err := field.DecodeHex(nextHex)
		if err != nil {
			return nil, fmt.Errorf("wallet: chain hop %d: %w", hop, err)
		}
		if next.IsZero() {
			break
		}
		ids = append(ids, next)
		if nextHex == tailHex {
			break
		}
		current = next
	}
	w.logf("Found %d UTXO ids", len(ids))

	entries := make([]UTXOEntry, 0, len(ids))
	for _, id := range ids {
		idHex := field.EncodeHex(&id)
		utxoHex, err := w.Ledger.GetUTXO(ctx, idHex)
		if err != nil {
			return nil, fmt.Errorf("wallet: fetch utxo %s: %w", idHex, err)
		}
		out, err := tx.DecodeOutHex(utxoHex)
		if err != nil {
			w.logf("Skipping malformed UTXO %s: %v", idHex, err)
			continue
		}
		entries = append(entries, UTXOEntry{ID: id, Out: out})
	}
	w.logf("Fetched %d UTXOs", len(entries))
	return entries, nil
}

// ListUTXOs returns all decodable UTXOs owned by owner using the ledger's
// cursor-paginated listing. The zero scalar is the initial cursor; the
// listing ends on an empty page or an empty next cursor. Malformed records
// are skipped.
func (w *Wallet) ListUTXOs(ctx context.Context, owner field.Element) ([]tx.Out, error) {
	ownerHex := field.EncodeHex(&owner)
	zero := field.Zero()
	cursor := field.EncodeHex(&zero)

	var outs []tx.Out
	for {
		page, next, err := w.Ledger.GetUTXOsPaginated(ctx, cursor, ownerHex)
		if err != nil {
			return nil, fmt.Errorf("wallet: list utxos: %w", err)
		}
		if len(page) == 0 {
			break
		}
		for _, utxoHex := range page {
			out, err := tx.DecodeOutHex(utxoHex)
			if err != nil {
				w.logf("Skipping malformed UTXO: %v", err)
				continue
			}
			outs = append(outs, out)
		}
		if next == "" {
			break
		}
		cursor = next
	}
	return outs, nil
}

// Balance returns the owner's balance as reported by the ledger.
func (w *Wallet) Balance(ctx context.Context, owner field.Element) (field.Element, error) {
	ownerHex := field.EncodeHex(&owner)
	balanceHex, err := w.Ledger.GetBalance(ctx, ownerHex)
	if err != nil {
		return field.Element{}, fmt.Errorf("wallet: get balance: %w", err)
	}
	balance, err := field.DecodeHex(balanceHex)
	if err != nil {
		return field.Element{}, fmt.Errorf("wallet: decode balance: %w", err)
	}
	return balance, nil
}
