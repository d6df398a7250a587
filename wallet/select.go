package wallet

import (
	"fmt"

	"github.com/shieldorg/libshield-go/field"
	"github.com/shieldorg/libshield-go/tx"
)

// SelectUTXOs picks one or two discovered UTXOs whose combined value covers
// amount plus the protocol fee.
//
// First pass: the first single UTXO in discovery order whose amount covers
// the requirement, paired with a zero-id placeholder. Second pass: the first
// unordered pair in discovery order whose sum covers it. Greedy first-fit
// trades minimal change for O(n)/O(n²) bounds, which is fine for small
// wallet UTXO sets. When no cover exists the selection fails with
// ErrInsufficientFunds — a normal outcome the caller reports, not a fault.
func (w *Wallet) SelectUTXOs(entries []UTXOEntry, amount field.Element) (tx.Input, tx.Input, error) {
	fee := field.FromUint64(w.Params.Fee)
	var required field.Element
	required.Add(&amount, &fee)
	if required.Cmp(&amount) < 0 {
		return tx.Input{}, tx.Input{}, fmt.Errorf("wallet: requested amount: %w", tx.ErrAmountOverflow)
	}

	for _, e := range entries {
		if e.Out.Amount.Cmp(&required) >= 0 {
			return tx.Input{ID: e.ID, Out: e.Out}, tx.Input{}, nil
		}
	}

	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			var sum field.Element
			sum.Add(&entries[i].Out.Amount, &entries[j].Out.Amount)
			if sum.Cmp(&entries[i].Out.Amount) < 0 {
				// Wrapped past the modulus; this pair cannot be valued.
				continue
			}
			if sum.Cmp(&required) >= 0 {
				return tx.Input{ID: entries[i].ID, Out: entries[i].Out},
					tx.Input{ID: entries[j].ID, Out: entries[j].Out}, nil
			}
		}
	}

	return tx.Input{}, tx.Input{}, fmt.Errorf("%w: no covering set of at most two UTXOs", ErrInsufficientFunds)
}
